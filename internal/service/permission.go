package service

import (
	"errors"

	"Station_Hub/internal/model"
	"Station_Hub/internal/pkg/errs"
	"Station_Hub/internal/repository/mysql"

	"gorm.io/gorm"
)

// ResolveCapabilities 权限裁决：成员挂了自定义角色时，结论就是该角色的权限集，
// 不与被遮蔽的系统角色做并集；否则回落到系统角色固定表。
func ResolveCapabilities(m *model.Membership, custom *model.Role) model.CapabilitySet {
	if custom != nil {
		return custom.Capabilities
	}
	return model.SystemRoleCapabilities(m.SystemRole)
}

// EffectivePriority 成员当前有效优先级，自定义角色优先
func EffectivePriority(m *model.Membership, custom *model.Role) int {
	if custom != nil {
		return custom.Priority
	}
	return model.SystemRolePriority[m.SystemRole]
}

// loadMemberWithRole 取成员及其自定义角色（如有）。
// 自定义角色已被删时按系统角色兜底。
func loadMemberWithRole(tx *gorm.DB, stationID uint64, principal string) (*model.Membership, *model.Role, error) {
	memberRepo := &mysql.MembershipRepository{DB: tx}
	m, err := memberRepo.Find(stationID, principal)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errs.NotFound("not a member of this station")
		}
		return nil, nil, err
	}
	if m.CustomRoleID == nil {
		return m, nil, nil
	}
	roleRepo := &mysql.RoleRepository{DB: tx}
	role, err := roleRepo.FindByID(*m.CustomRoleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return m, nil, nil
		}
		return nil, nil, err
	}
	return m, role, nil
}

// checkPermission (station, principal, capability) -> allow/deny。非成员一律拒绝。
func checkPermission(tx *gorm.DB, stationID uint64, principal string, capability model.Capability) (bool, error) {
	m, role, err := loadMemberWithRole(tx, stationID, principal)
	if err != nil {
		if errs.IsKind(err, errs.KindNotFound) {
			return false, nil
		}
		return false, err
	}
	return ResolveCapabilities(m, role).Has(capability), nil
}

// requirePermission 同 checkPermission，拒绝时带上调用方给的消息
func requirePermission(tx *gorm.DB, stationID uint64, principal string, capability model.Capability, msg string) (*model.Membership, error) {
	m, role, err := loadMemberWithRole(tx, stationID, principal)
	if err != nil {
		if errs.IsKind(err, errs.KindNotFound) {
			return nil, errs.PermissionDenied(msg)
		}
		return nil, err
	}
	if !ResolveCapabilities(m, role).Has(capability) {
		return nil, errs.PermissionDenied(msg)
	}
	return m, nil
}

// canAssignPriority 角色指派的硬性天花板。
// 注意：这是对通用权限模型的刻意例外，不要并进 checkPermission：
// 站长（priority 100）可以指派任何角色，其余人（包括副站长）不能指派
// priority >= 90 的角色——不许造出平级或更高级的成员。
func canAssignPriority(assignerPriority, targetPriority int) bool {
	if assignerPriority >= model.SystemRolePriority[model.RoleCaptain] {
		return true
	}
	return targetPriority < model.SystemRolePriority[model.RoleCoCaptain]
}
