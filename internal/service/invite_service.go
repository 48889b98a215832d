package service

import (
	"log"
	"time"

	"Station_Hub/internal/model"
	"Station_Hub/internal/pkg"
	"Station_Hub/internal/pkg/errs"
	"Station_Hub/internal/repository/mysql"

	"gorm.io/gorm"
)

const codeRetryLimit = 5

type InviteService struct {
	db   *gorm.DB
	smtp *pkg.SMTPConfig // nil 表示不发通知邮件
}

func NewInviteService(smtp *pkg.SMTPConfig) *InviteService {
	return &InviteService{db: mysql.DB, smtp: smtp}
}

// InviteOptions 创建邀请的可选项，零值表示不限制
type InviteOptions struct {
	InvitedPrincipal string // 指定兑换人
	RoleSlug         string // 入站角色，默认 crew
	MaxUses          int    // 0 不限次数
	ExpiresInHours   int    // 0 永久有效
	NotifyEmail      string // 发邀请码到该邮箱
}

// CreateInvite 需要 promote 权限；入站角色同样受指派天花板约束
func (s *InviteService) CreateInvite(stationID uint64, actor string, opts InviteOptions) (*model.Invite, error) {
	roleSlug := opts.RoleSlug
	if roleSlug == "" {
		roleSlug = model.RoleCrew
	}

	var created *model.Invite
	var stationName string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		stationRepo := &mysql.StationRepository{DB: tx}
		st, err := stationRepo.FindByID(stationID)
		if err != nil {
			return asNotFound(err, "station not found")
		}
		stationName = st.Name

		actorM, actorRole, err := loadMemberWithRole(tx, stationID, actor)
		if err != nil {
			if errs.IsKind(err, errs.KindNotFound) {
				return errs.PermissionDenied("missing promote capability")
			}
			return err
		}
		if !ResolveCapabilities(actorM, actorRole).Has(model.CapPromote) {
			return errs.PermissionDenied("missing promote capability")
		}

		roleRepo := &mysql.RoleRepository{DB: tx}
		role, err := roleRepo.FindBySlug(stationID, roleSlug)
		if err != nil {
			return asNotFound(err, "role not found")
		}
		if role.Slug == model.RoleCaptain {
			return errs.PermissionDenied("the captain role is not assignable")
		}
		if !canAssignPriority(EffectivePriority(actorM, actorRole), role.Priority) {
			return errs.PermissionDenied("cannot invite at or above co-captain priority")
		}

		inviteRepo := &mysql.InviteRepository{DB: tx}
		var code string
		for i := 0; i < codeRetryLimit; i++ {
			candidate, err := pkg.NewInviteCode()
			if err != nil {
				return err
			}
			exists, err := inviteRepo.CodeExists(candidate)
			if err != nil {
				return err
			}
			if !exists {
				code = candidate
				break
			}
		}
		if code == "" {
			return errs.Conflict("could not allocate invite code")
		}

		inv := &model.Invite{
			StationID:  stationID,
			Code:       code,
			RoleOnJoin: role.Slug,
			CreatedBy:  actor,
			IsActive:   true,
		}
		if opts.InvitedPrincipal != "" {
			inv.InvitedPrincipal = &opts.InvitedPrincipal
		}
		if opts.MaxUses > 0 {
			inv.MaxUses = &opts.MaxUses
		}
		if opts.ExpiresInHours > 0 {
			t := time.Now().Add(time.Duration(opts.ExpiresInHours) * time.Hour)
			inv.ExpiresAt = &t
		}
		if err := inviteRepo.Create(inv); err != nil {
			return err
		}
		created = inv
		return appendAudit(tx, stationID, "invite.create", actor, inv.InvitedPrincipal, map[string]any{
			"role": role.Slug, "max_uses": opts.MaxUses,
		})
	})
	if err != nil {
		return nil, err
	}

	// 通知邮件尽力而为，失败不影响已创建的邀请
	if s.smtp != nil && opts.NotifyEmail != "" {
		body := pkg.InviteCodeHTML(stationName, created.Code, created.ExpiresAt)
		if err := pkg.SendEmail(*s.smtp, opts.NotifyEmail, "Station invite", body); err != nil {
			log.Printf("invite mail send err: %v", err)
		}
	}
	return created, nil
}

// validateInviteUse 固定顺序校验，每个失败原因都是独立错误，客户端能解释为什么被拒
func validateInviteUse(inv *model.Invite, principal string, now time.Time) error {
	if !inv.IsActive {
		return errs.InvalidState("invite deactivated")
	}
	if inv.ExpiresAt != nil && !inv.ExpiresAt.After(now) {
		return errs.InvalidState("invite expired")
	}
	if inv.MaxUses != nil && inv.UsedCount >= *inv.MaxUses {
		return errs.InvalidState("invite usage limit reached")
	}
	if inv.InvitedPrincipal != nil && *inv.InvitedPrincipal != principal {
		return errs.PermissionDenied("invite is for another user")
	}
	return nil
}

// UseInvite 兑换邀请码入站，返回站点与实际入站角色
func (s *InviteService) UseInvite(code, principal string) (*model.Station, string, error) {
	var station *model.Station
	var joinedRole string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		inviteRepo := &mysql.InviteRepository{DB: tx}
		inv, err := inviteRepo.FindByCodeForUpdate(code)
		if err != nil {
			return asNotFound(err, "invite not found")
		}
		if err := validateInviteUse(inv, principal, now); err != nil {
			return err
		}

		memberRepo := &mysql.MembershipRepository{DB: tx}
		exists, err := memberRepo.Exists(inv.StationID, principal)
		if err != nil {
			return err
		}
		if exists {
			return errs.Conflict("already a member")
		}

		banned, err := hasActiveRestriction(tx, inv.StationID, principal, model.ModerationBan, now)
		if err != nil {
			return err
		}
		if banned {
			return errs.InvalidState("banned")
		}

		stationRepo := &mysql.StationRepository{DB: tx}
		st, err := stationRepo.FindByID(inv.StationID)
		if err != nil {
			return asNotFound(err, "station not found")
		}
		if st.IsArchived() {
			return errs.InvalidState("station archived")
		}

		// 入站角色：邀请里的角色可能已被删，删了就按默认 crew 进
		m := &model.Membership{StationID: inv.StationID, Principal: principal, SystemRole: model.RoleCrew}
		joinedRole = model.RoleCrew
		roleRepo := &mysql.RoleRepository{DB: tx}
		if role, err := roleRepo.FindBySlug(inv.StationID, inv.RoleOnJoin); err == nil {
			if role.IsSystem {
				m.SystemRole = role.Slug
			} else {
				m.CustomRoleID = &role.ID
			}
			joinedRole = role.Slug
		}
		if err := memberRepo.Create(m); err != nil {
			return err
		}
		if err := stationRepo.IncrMemberCount(inv.StationID, 1); err != nil {
			return err
		}
		if err := inviteRepo.IncrUsed(inv.ID); err != nil {
			return err
		}
		station = st
		return appendAudit(tx, inv.StationID, "invite.use", principal, nil, map[string]any{
			"code": inv.Code, "role": joinedRole,
		})
	})
	if err != nil {
		return nil, "", err
	}
	return station, joinedRole, nil
}

// Deactivate 手动失效，之后即使没用完也拒绝兑换
func (s *InviteService) Deactivate(inviteID uint64, actor string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		inviteRepo := &mysql.InviteRepository{DB: tx}
		var inv model.Invite
		if err := tx.First(&inv, inviteID).Error; err != nil {
			return asNotFound(err, "invite not found")
		}
		if _, err := requirePermission(tx, inv.StationID, actor, model.CapPromote, "missing promote capability"); err != nil {
			return err
		}
		if err := inviteRepo.Deactivate(inv.ID); err != nil {
			return err
		}
		return appendAudit(tx, inv.StationID, "invite.deactivate", actor, nil, map[string]any{"code": inv.Code})
	})
}

func (s *InviteService) ListByStation(stationID uint64, actor string, page, size int) ([]model.Invite, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 50
	}
	if _, err := requirePermission(s.db, stationID, actor, model.CapPromote, "missing promote capability"); err != nil {
		return nil, err
	}
	repo := &mysql.InviteRepository{DB: s.db}
	return repo.ListByStation(stationID, (page-1)*size, size)
}
