package mysql

import (
	"Station_Hub/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MembershipRepository struct {
	DB *gorm.DB
}

func (r *MembershipRepository) Create(m *model.Membership) error {
	return r.DB.Create(m).Error
}

func (r *MembershipRepository) Find(stationID uint64, principal string) (*model.Membership, error) {
	var m model.Membership
	err := r.DB.Where("station_id = ? AND principal = ?", stationID, principal).First(&m).Error
	return &m, err
}

// FindForUpdate select for update，事务内改角色/加声望时用，避免竞争
func (r *MembershipRepository) FindForUpdate(stationID uint64, principal string) (*model.Membership, error) {
	var m model.Membership
	err := r.DB.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("station_id = ? AND principal = ?", stationID, principal).First(&m).Error
	return &m, err
}

func (r *MembershipRepository) Exists(stationID uint64, principal string) (bool, error) {
	var n int64
	err := r.DB.Model(&model.Membership{}).
		Where("station_id = ? AND principal = ?", stationID, principal).
		Count(&n).Error
	return n > 0, err
}

// Delete 返回删除行数，0 表示本来就不是成员
func (r *MembershipRepository) Delete(stationID uint64, principal string) (int64, error) {
	tx := r.DB.Where("station_id = ? AND principal = ?", stationID, principal).
		Delete(&model.Membership{})
	return tx.RowsAffected, tx.Error
}

// UpdateRole 指派角色：系统角色和自定义角色引用一起写，保证最多一个自定义引用
func (r *MembershipRepository) UpdateRole(id uint64, systemRole string, customRoleID *uint64) error {
	return r.DB.Model(&model.Membership{}).Where("id = ?", id).
		Updates(map[string]any{"system_role": systemRole, "custom_role_id": customRoleID}).Error
}

// ReassignCustomRole 自定义角色被删时，所有持有者整体回落到 crew
func (r *MembershipRepository) ReassignCustomRole(roleID uint64) (int64, error) {
	tx := r.DB.Model(&model.Membership{}).Where("custom_role_id = ?", roleID).
		Updates(map[string]any{"custom_role_id": nil, "system_role": model.RoleCrew})
	return tx.RowsAffected, tx.Error
}

func (r *MembershipRepository) IncrKarma(id uint64, delta int64) error {
	return r.DB.Model(&model.Membership{}).Where("id = ?", id).
		UpdateColumn("karma_earned_here", gorm.Expr("karma_earned_here + ?", delta)).Error
}

// ListByStation 游标分页，limit+1 探测下一页
func (r *MembershipRepository) ListByStation(stationID uint64, cursor uint64, limit int) ([]model.Membership, uint64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	q := r.DB.Where("station_id = ?", stationID)
	if cursor > 0 {
		q = q.Where("id < ?", cursor)
	}
	var rows []model.Membership
	if err := q.Order("id DESC").Limit(limit + 1).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	var next uint64
	if len(rows) > limit {
		next = rows[limit-1].ID
		rows = rows[:limit]
	}
	return rows, next, nil
}
