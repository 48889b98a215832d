package service

import (
	"time"

	"Station_Hub/internal/model"
	"Station_Hub/internal/pkg/errs"
	"Station_Hub/internal/repository/mysql"

	"gorm.io/gorm"
)

type ModerationService struct {
	db *gorm.DB
}

func NewModerationService() *ModerationService {
	return &ModerationService{db: mysql.DB}
}

// restrictionsNow 惰性过期：筛出此刻仍然生效的记录，不依赖任何后台任务
func restrictionsNow(actions []model.ModerationAction, now time.Time) []model.ModerationAction {
	var out []model.ModerationAction
	for i := range actions {
		if actions[i].RestrictsAt(now) {
			out = append(out, actions[i])
		}
	}
	return out
}

// hasRestrictionKind 给定记录里是否有指定类型仍生效
func hasRestrictionKind(actions []model.ModerationAction, kind string, now time.Time) bool {
	for i := range actions {
		if actions[i].Kind == kind && actions[i].RestrictsAt(now) {
			return true
		}
	}
	return false
}

func hasActiveRestriction(tx *gorm.DB, stationID uint64, principal, kind string, now time.Time) (bool, error) {
	repo := &mysql.ModerationRepository{DB: tx}
	actions, err := repo.ActiveByTarget(stationID, principal)
	if err != nil {
		return false, err
	}
	return hasRestrictionKind(actions, kind, now), nil
}

// Ban 封禁：移除目标成员关系并减成员数，封禁记录可永久（duration 为 nil）
func (s *ModerationService) Ban(stationID uint64, moderator, target, reason string, durationHours *int) error {
	if target == "" {
		return errs.Validation("target principal required")
	}
	// 永久封禁用 nil 表达，0 或负数一律拒绝
	if durationHours != nil && *durationHours <= 0 {
		return errs.Validation("ban duration must be positive")
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		stationRepo := &mysql.StationRepository{DB: tx}
		st, err := stationRepo.FindByID(stationID)
		if err != nil {
			return asNotFound(err, "station not found")
		}
		if target == st.OwnerPrincipal {
			return errs.PermissionDenied("the captain cannot be banned")
		}
		if _, err := requirePermission(tx, stationID, moderator, model.CapBan, "missing ban capability"); err != nil {
			return err
		}

		now := time.Now()
		banned, err := hasActiveRestriction(tx, stationID, target, model.ModerationBan, now)
		if err != nil {
			return err
		}
		if banned {
			return errs.Conflict("already banned")
		}

		// 被封禁者如在站内，移除成员关系；禁言不会走到这里
		memberRepo := &mysql.MembershipRepository{DB: tx}
		affected, err := memberRepo.Delete(stationID, target)
		if err != nil {
			return err
		}
		if affected > 0 {
			if err := stationRepo.IncrMemberCount(stationID, -1); err != nil {
				return err
			}
		}

		var expiresAt *time.Time
		if durationHours != nil {
			t := now.Add(time.Duration(*durationHours) * time.Hour)
			expiresAt = &t
		}
		modRepo := &mysql.ModerationRepository{DB: tx}
		if err := modRepo.Create(&model.ModerationAction{
			StationID:       stationID,
			TargetPrincipal: target,
			Kind:            model.ModerationBan,
			Reason:          reason,
			IssuedBy:        moderator,
			ExpiresAt:       expiresAt,
			IsActive:        true,
		}); err != nil {
			return err
		}

		details := map[string]any{"reason": reason}
		if durationHours != nil {
			details["duration_hours"] = *durationHours
		}
		return appendAudit(tx, stationID, "member.ban", moderator, &target, details)
	})
}

// Unban 解封只软关闭记录，不恢复成员关系——要回来得重新加入或被邀请
func (s *ModerationService) Unban(stationID uint64, moderator, target string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := requirePermission(tx, stationID, moderator, model.CapBan, "missing ban capability"); err != nil {
			return err
		}
		modRepo := &mysql.ModerationRepository{DB: tx}
		actions, err := modRepo.ActiveByTarget(stationID, target)
		if err != nil {
			return err
		}
		var ban *model.ModerationAction
		for i := range actions {
			if actions[i].Kind == model.ModerationBan {
				ban = &actions[i]
				break
			}
		}
		if ban == nil {
			return errs.NotFound("no active ban")
		}
		if err := modRepo.Lift(ban.ID, moderator); err != nil {
			return err
		}
		return appendAudit(tx, stationID, "member.unban", moderator, &target, nil)
	})
}

// Mute 禁言：必须带时长（封禁才允许永久），不动成员关系和成员数
func (s *ModerationService) Mute(stationID uint64, moderator, target string, durationHours int, reason string) error {
	if target == "" {
		return errs.Validation("target principal required")
	}
	if durationHours <= 0 {
		return errs.Validation("mute duration required")
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		stationRepo := &mysql.StationRepository{DB: tx}
		st, err := stationRepo.FindByID(stationID)
		if err != nil {
			return asNotFound(err, "station not found")
		}
		if target == st.OwnerPrincipal {
			return errs.PermissionDenied("the captain cannot be muted")
		}
		if _, err := requirePermission(tx, stationID, moderator, model.CapBan, "missing ban capability"); err != nil {
			return err
		}

		expiresAt := time.Now().Add(time.Duration(durationHours) * time.Hour)
		modRepo := &mysql.ModerationRepository{DB: tx}
		if err := modRepo.Create(&model.ModerationAction{
			StationID:       stationID,
			TargetPrincipal: target,
			Kind:            model.ModerationMute,
			Reason:          reason,
			IssuedBy:        moderator,
			ExpiresAt:       &expiresAt,
			IsActive:        true,
		}); err != nil {
			return err
		}
		return appendAudit(tx, stationID, "member.mute", moderator, &target, map[string]any{
			"reason":         reason,
			"duration_hours": durationHours,
		})
	})
}

// Unmute 提前解除禁言（自然过期不需要任何操作）
func (s *ModerationService) Unmute(stationID uint64, moderator, target string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := requirePermission(tx, stationID, moderator, model.CapBan, "missing ban capability"); err != nil {
			return err
		}
		modRepo := &mysql.ModerationRepository{DB: tx}
		actions, err := modRepo.ActiveByTarget(stationID, target)
		if err != nil {
			return err
		}
		lifted := 0
		for i := range actions {
			if actions[i].Kind == model.ModerationMute {
				if err := modRepo.Lift(actions[i].ID, moderator); err != nil {
					return err
				}
				lifted++
			}
		}
		if lifted == 0 {
			return errs.NotFound("no active mute")
		}
		return appendAudit(tx, stationID, "member.unmute", moderator, &target, nil)
	})
}

// Restrictions 查询目标此刻仍生效的处罚
func (s *ModerationService) Restrictions(stationID uint64, principal string) ([]model.ModerationAction, error) {
	repo := &mysql.ModerationRepository{DB: s.db}
	actions, err := repo.ActiveByTarget(stationID, principal)
	if err != nil {
		return nil, err
	}
	return restrictionsNow(actions, time.Now()), nil
}

// History 站内处罚历史（含已失效），需要 ban 权限
func (s *ModerationService) History(stationID uint64, actor string, page, size int) ([]model.ModerationAction, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 50
	}
	if _, err := requirePermission(s.db, stationID, actor, model.CapBan, "missing ban capability"); err != nil {
		return nil, err
	}
	repo := &mysql.ModerationRepository{DB: s.db}
	return repo.ListByStation(stationID, (page-1)*size, size)
}
