package service

import (
	"time"

	"Station_Hub/internal/model"
	"Station_Hub/internal/pkg"
	"Station_Hub/internal/pkg/errs"
	"Station_Hub/internal/repository/mysql"

	"gorm.io/gorm"
)

const slugRetryLimit = 5

type StationService struct {
	db *gorm.DB
}

func NewStationService() *StationService {
	return &StationService{db: mysql.DB}
}

// CreateStation 建站：站点、四个系统角色、站长成员关系一个事务落库
func (s *StationService) CreateStation(ownerPrincipal, name, description string) (*model.Station, error) {
	if name == "" {
		return nil, errs.Validation("station name required")
	}
	if ownerPrincipal == "" {
		return nil, errs.Validation("owner principal required")
	}

	var created *model.Station
	err := s.db.Transaction(func(tx *gorm.DB) error {
		stationRepo := &mysql.StationRepository{DB: tx}

		// slug 冲突重试：检查后插入。建站低频，窄竞争窗口可接受
		base := pkg.Slugify(name)
		var slug string
		for i := 1; i <= slugRetryLimit; i++ {
			candidate := pkg.SlugWithSuffix(base, i)
			exists, err := stationRepo.SlugExists(candidate)
			if err != nil {
				return err
			}
			if !exists {
				slug = candidate
				break
			}
		}
		if slug == "" {
			return errs.Conflict("station slug taken, pick another name")
		}

		st := &model.Station{
			Slug:           slug,
			Name:           name,
			Description:    description,
			OwnerPrincipal: ownerPrincipal,
			MemberCount:    1,
			Status:         model.StationActive,
		}
		if err := stationRepo.Create(st); err != nil {
			return err
		}

		roleRepo := &mysql.RoleRepository{DB: tx}
		if err := roleRepo.CreateBatch(model.SeedSystemRoles(st.ID)); err != nil {
			return err
		}

		memberRepo := &mysql.MembershipRepository{DB: tx}
		if err := memberRepo.Create(&model.Membership{
			StationID:  st.ID,
			Principal:  ownerPrincipal,
			SystemRole: model.RoleCaptain,
		}); err != nil {
			return err
		}

		if err := appendAudit(tx, st.ID, "station.create", ownerPrincipal, nil, map[string]any{"slug": slug}); err != nil {
			return err
		}
		created = st
		return nil
	})
	return created, err
}

// Join 开放加入，入站角色为默认 crew
func (s *StationService) Join(stationID uint64, principal string) (*model.Membership, error) {
	var m *model.Membership
	err := s.db.Transaction(func(tx *gorm.DB) error {
		stationRepo := &mysql.StationRepository{DB: tx}
		st, err := stationRepo.FindByID(stationID)
		if err != nil {
			return asNotFound(err, "station not found")
		}
		if st.IsArchived() {
			return errs.InvalidState("station archived")
		}

		memberRepo := &mysql.MembershipRepository{DB: tx}
		exists, err := memberRepo.Exists(stationID, principal)
		if err != nil {
			return err
		}
		if exists {
			return errs.Conflict("already a member")
		}

		banned, err := hasActiveRestriction(tx, stationID, principal, model.ModerationBan, time.Now())
		if err != nil {
			return err
		}
		if banned {
			return errs.InvalidState("banned from this station")
		}

		m = &model.Membership{StationID: stationID, Principal: principal, SystemRole: model.RoleCrew}
		if err := memberRepo.Create(m); err != nil {
			return err
		}
		return stationRepo.IncrMemberCount(stationID, 1)
	})
	return m, err
}

// Leave 退出站点；站长不可退出（所有权不在本子系统内转移）
func (s *StationService) Leave(stationID uint64, principal string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		stationRepo := &mysql.StationRepository{DB: tx}
		st, err := stationRepo.FindByID(stationID)
		if err != nil {
			return asNotFound(err, "station not found")
		}
		if st.OwnerPrincipal == principal {
			return errs.PermissionDenied("the captain cannot leave their own station")
		}

		memberRepo := &mysql.MembershipRepository{DB: tx}
		affected, err := memberRepo.Delete(stationID, principal)
		if err != nil {
			return err
		}
		if affected == 0 {
			return errs.NotFound("not a member")
		}
		return stationRepo.IncrMemberCount(stationID, -1)
	})
}

func (s *StationService) GetBySlug(slug string) (*model.Station, error) {
	repo := &mysql.StationRepository{DB: s.db}
	st, err := repo.FindBySlug(slug)
	if err != nil {
		return nil, asNotFound(err, "station not found")
	}
	return st, nil
}

func (s *StationService) List(page, size int) ([]model.Station, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 50 {
		size = 20
	}
	repo := &mysql.StationRepository{DB: s.db}
	return repo.List((page-1)*size, size)
}

// Archive 归档站点，之后拒绝内容写入，管理操作仍然放行
func (s *StationService) Archive(stationID uint64, actor string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		stationRepo := &mysql.StationRepository{DB: tx}
		if _, err := stationRepo.FindByID(stationID); err != nil {
			return asNotFound(err, "station not found")
		}
		if _, err := requirePermission(tx, stationID, actor, model.CapSettings, "missing settings capability"); err != nil {
			return err
		}
		if err := stationRepo.UpdateStatus(stationID, model.StationArchived); err != nil {
			return err
		}
		return appendAudit(tx, stationID, "station.archive", actor, nil, nil)
	})
}

// ListMembers 成员列表，游标分页
func (s *StationService) ListMembers(stationID uint64, cursor uint64, limit int) ([]model.Membership, uint64, error) {
	repo := &mysql.MembershipRepository{DB: s.db}
	return repo.ListByStation(stationID, cursor, limit)
}
