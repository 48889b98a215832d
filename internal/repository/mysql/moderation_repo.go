package mysql

import (
	"time"

	"Station_Hub/internal/model"

	"gorm.io/gorm"
)

type ModerationRepository struct {
	DB *gorm.DB
}

func (r *ModerationRepository) Create(a *model.ModerationAction) error {
	return r.DB.Create(a).Error
}

// ActiveByTarget 取 isActive 的记录；是否真的还生效由上层用 RestrictsAt 惰性判断
func (r *ModerationRepository) ActiveByTarget(stationID uint64, principal string) ([]model.ModerationAction, error) {
	var list []model.ModerationAction
	err := r.DB.Where("station_id = ? AND target_principal = ? AND is_active = ?", stationID, principal, true).
		Order("issued_at DESC").Find(&list).Error
	return list, err
}

// Lift 软关闭，从不硬删
func (r *ModerationRepository) Lift(id uint64, liftedBy string) error {
	now := time.Now()
	return r.DB.Model(&model.ModerationAction{}).Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]any{"is_active": false, "lifted_by": liftedBy, "lifted_at": now}).Error
}

// ListByStation 站内处罚历史（含已失效），分页
func (r *ModerationRepository) ListByStation(stationID uint64, offset, limit int) ([]model.ModerationAction, error) {
	var list []model.ModerationAction
	err := r.DB.Where("station_id = ?", stationID).
		Order("issued_at DESC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}
