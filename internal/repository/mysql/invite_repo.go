package mysql

import (
	"Station_Hub/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InviteRepository struct {
	DB *gorm.DB
}

func (r *InviteRepository) Create(inv *model.Invite) error {
	return r.DB.Create(inv).Error
}

// FindByCodeForUpdate 兑换走事务加锁，maxUses 判断不许被并发穿透
func (r *InviteRepository) FindByCodeForUpdate(code string) (*model.Invite, error) {
	var inv model.Invite
	err := r.DB.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("code = ?", code).First(&inv).Error
	return &inv, err
}

func (r *InviteRepository) CodeExists(code string) (bool, error) {
	var n int64
	err := r.DB.Model(&model.Invite{}).Where("code = ?", code).Count(&n).Error
	return n > 0, err
}

func (r *InviteRepository) IncrUsed(id uint64) error {
	return r.DB.Model(&model.Invite{}).Where("id = ?", id).
		UpdateColumn("used_count", gorm.Expr("used_count + 1")).Error
}

func (r *InviteRepository) Deactivate(id uint64) error {
	return r.DB.Model(&model.Invite{}).Where("id = ?", id).Update("is_active", false).Error
}

func (r *InviteRepository) ListByStation(stationID uint64, offset, limit int) ([]model.Invite, error) {
	var list []model.Invite
	err := r.DB.Where("station_id = ?", stationID).
		Order("id DESC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}
