package mysql

import (
	"context"
	"encoding/json"
	"time"

	"Station_Hub/internal/model"

	"gorm.io/gorm"
)

type AuditRepository struct {
	DB *gorm.DB
}

type AuditOutboxRepository struct {
	DB *gorm.DB
}

// Append 审计流水 + 外发事件同事务写入
func (r *AuditRepository) Append(entry *model.AuditLog) error {
	if err := r.DB.Create(entry).Error; err != nil {
		return err
	}
	return r.insertOutbox(entry)
}

func (r *AuditRepository) insertOutbox(entry *model.AuditLog) error {
	payload, _ := json.Marshal(map[string]any{
		"event_time": time.Now().UTC().Format(time.RFC3339Nano),
		"station_id": entry.StationID,
		"action":     entry.Action,
		"actor":      entry.ActorPrincipal,
		"target":     entry.TargetPrincipal,
		"details":    entry.Details,
	})
	ob := &model.AuditOutbox{
		StationID: entry.StationID,
		Action:    entry.Action,
		Payload:   string(payload),
		Status:    0,
	}
	return r.DB.Create(ob).Error
}

func (r *AuditRepository) ListByStation(stationID uint64, offset, limit int) ([]model.AuditLog, error) {
	var list []model.AuditLog
	err := r.DB.Where("station_id = ?", stationID).
		Order("id DESC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

// List 待投递事件批量查询
func (r *AuditOutboxRepository) List(ctx context.Context, batchSize int) ([]model.AuditOutbox, error) {
	var list []model.AuditOutbox
	if err := r.DB.WithContext(ctx).
		Where("status = 0").
		Order("id ASC").
		Limit(batchSize).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// RetryUpdate 投递失败记一次重试
func (r *AuditOutboxRepository) RetryUpdate(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.AuditOutbox{}).Where("id = ?", id).
		Updates(map[string]any{"status": 2, "retry": gorm.Expr("retry + 1")}).Error
}

// SuccessUpdate 投递成功落状态
func (r *AuditOutboxRepository) SuccessUpdate(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.AuditOutbox{}).Where("id = ?", id).
		Update("status", 1).Error
}
