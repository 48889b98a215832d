package service

import (
	"Station_Hub/internal/model"
	"Station_Hub/internal/pkg"
	"Station_Hub/internal/pkg/errs"
	"Station_Hub/internal/repository/mysql"

	"gorm.io/gorm"
)

type RoleService struct {
	db *gorm.DB
}

func NewRoleService() *RoleService {
	return &RoleService{db: mysql.DB}
}

// parseCapabilities 校验并转换权限标签，未知标签直接报参数错
func parseCapabilities(tags []string) (model.CapabilitySet, error) {
	set := make(model.CapabilitySet, 0, len(tags))
	for _, t := range tags {
		c := model.Capability(t)
		if !model.SystemRoleCapabilities(model.RoleCaptain).Has(c) {
			return nil, errs.Validation("unknown capability: " + t)
		}
		if !set.Has(c) {
			set = append(set, c)
		}
	}
	return set, nil
}

// CreateCustomRole 自定义角色：priority 必须 < 100，slug 站内唯一
func (s *RoleService) CreateCustomRole(stationID uint64, actor, name, colorHint string, capabilities []string, priority int) (*model.Role, error) {
	if name == "" {
		return nil, errs.Validation("role name required")
	}
	if priority <= 0 {
		return nil, errs.Validation("role priority must be positive")
	}
	if priority > model.MaxCustomRolePriority {
		return nil, errs.InvalidState("custom role priority must be below 100")
	}
	caps, err := parseCapabilities(capabilities)
	if err != nil {
		return nil, err
	}

	var created *model.Role
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := requirePermission(tx, stationID, actor, model.CapRoles, "missing roles capability"); err != nil {
			return err
		}
		roleRepo := &mysql.RoleRepository{DB: tx}
		slug := pkg.Slugify(name)
		exists, err := roleRepo.SlugExists(stationID, slug)
		if err != nil {
			return err
		}
		if exists {
			return errs.Conflict("role slug already exists in this station")
		}
		role := &model.Role{
			StationID:    stationID,
			Slug:         slug,
			Name:         name,
			ColorHint:    colorHint,
			Capabilities: caps,
			Priority:     priority,
		}
		if err := roleRepo.Create(role); err != nil {
			return err
		}
		created = role
		return appendAudit(tx, stationID, "role.create", actor, nil, map[string]any{
			"role": slug, "priority": priority,
		})
	})
	return created, err
}

// RoleUpdate 角色更新入参，nil 字段表示不改
type RoleUpdate struct {
	Name         *string
	ColorHint    *string
	Capabilities []string
	Priority     *int
}

// UpdateCustomRole 系统角色不可改
func (s *RoleService) UpdateCustomRole(stationID, roleID uint64, actor string, upd RoleUpdate) (*model.Role, error) {
	var updated *model.Role
	err := s.db.Transaction(func(tx *gorm.DB) error {
		roleRepo := &mysql.RoleRepository{DB: tx}
		role, err := roleRepo.FindByID(roleID)
		if err != nil {
			return asNotFound(err, "role not found")
		}
		if role.StationID != stationID {
			return errs.NotFound("role not found")
		}
		if role.IsSystem {
			return errs.PermissionDenied("system roles are immutable")
		}
		if _, err := requirePermission(tx, stationID, actor, model.CapRoles, "missing roles capability"); err != nil {
			return err
		}

		if upd.Priority != nil {
			if *upd.Priority <= 0 {
				return errs.Validation("role priority must be positive")
			}
			if *upd.Priority > model.MaxCustomRolePriority {
				return errs.InvalidState("custom role priority must be below 100")
			}
			role.Priority = *upd.Priority
		}
		if upd.Name != nil {
			if *upd.Name == "" {
				return errs.Validation("role name required")
			}
			role.Name = *upd.Name
		}
		if upd.ColorHint != nil {
			role.ColorHint = *upd.ColorHint
		}
		if upd.Capabilities != nil {
			caps, err := parseCapabilities(upd.Capabilities)
			if err != nil {
				return err
			}
			role.Capabilities = caps
		}
		if err := roleRepo.Save(role); err != nil {
			return err
		}
		updated = role
		return appendAudit(tx, stationID, "role.update", actor, nil, map[string]any{"role": role.Slug})
	})
	return updated, err
}

// DeleteCustomRole 删除自定义角色，所有持有者强制回落到 crew——这是必做副作用
func (s *RoleService) DeleteCustomRole(stationID, roleID uint64, actor string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		roleRepo := &mysql.RoleRepository{DB: tx}
		role, err := roleRepo.FindByID(roleID)
		if err != nil {
			return asNotFound(err, "role not found")
		}
		if role.StationID != stationID {
			return errs.NotFound("role not found")
		}
		if role.IsSystem {
			return errs.PermissionDenied("system roles cannot be deleted")
		}
		if _, err := requirePermission(tx, stationID, actor, model.CapRoles, "missing roles capability"); err != nil {
			return err
		}

		memberRepo := &mysql.MembershipRepository{DB: tx}
		reassigned, err := memberRepo.ReassignCustomRole(roleID)
		if err != nil {
			return err
		}
		if err := roleRepo.Delete(roleID); err != nil {
			return err
		}
		return appendAudit(tx, stationID, "role.delete", actor, nil, map[string]any{
			"role": role.Slug, "reassigned": reassigned,
		})
	})
}

// AssignRole 指派角色。除通用 promote 权限外，还有副站长天花板：
// 非站长不能指派 priority >= 90 的角色；captain 角色任何人都不可指派。
func (s *RoleService) AssignRole(stationID uint64, assigner, target, roleSlug string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		assignerM, assignerRole, err := loadMemberWithRole(tx, stationID, assigner)
		if err != nil {
			if errs.IsKind(err, errs.KindNotFound) {
				return errs.PermissionDenied("missing promote capability")
			}
			return err
		}
		if !ResolveCapabilities(assignerM, assignerRole).Has(model.CapPromote) {
			return errs.PermissionDenied("missing promote capability")
		}

		stationRepo := &mysql.StationRepository{DB: tx}
		st, err := stationRepo.FindByID(stationID)
		if err != nil {
			return asNotFound(err, "station not found")
		}
		if target == st.OwnerPrincipal {
			return errs.PermissionDenied("the captain's role cannot be changed")
		}

		memberRepo := &mysql.MembershipRepository{DB: tx}
		targetM, err := memberRepo.Find(stationID, target)
		if err != nil {
			return asNotFound(err, "target is not a member")
		}

		roleRepo := &mysql.RoleRepository{DB: tx}
		role, err := roleRepo.FindBySlug(stationID, roleSlug)
		if err != nil {
			return asNotFound(err, "role not found")
		}
		if role.Slug == model.RoleCaptain {
			return errs.PermissionDenied("the captain role is not assignable")
		}
		if !canAssignPriority(EffectivePriority(assignerM, assignerRole), role.Priority) {
			return errs.PermissionDenied("cannot assign a role at or above co-captain priority")
		}

		if role.IsSystem {
			err = memberRepo.UpdateRole(targetM.ID, role.Slug, nil)
		} else {
			err = memberRepo.UpdateRole(targetM.ID, targetM.SystemRole, &role.ID)
		}
		if err != nil {
			return err
		}
		return appendAudit(tx, stationID, "role.assign", assigner, &target, map[string]any{"role": role.Slug})
	})
}

// Check 只读权限查询：该成员此刻是否持有某项权限，非成员一律 false
func (s *RoleService) Check(stationID uint64, principal, capability string) (bool, error) {
	caps, err := parseCapabilities([]string{capability})
	if err != nil {
		return false, err
	}
	return checkPermission(s.db, stationID, principal, caps[0])
}

func (s *RoleService) ListRoles(stationID uint64) ([]model.Role, error) {
	stationRepo := &mysql.StationRepository{DB: s.db}
	if _, err := stationRepo.FindByID(stationID); err != nil {
		return nil, asNotFound(err, "station not found")
	}
	roleRepo := &mysql.RoleRepository{DB: s.db}
	return roleRepo.ListByStation(stationID)
}
