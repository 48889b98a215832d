package model

import "time"

const (
	ModerationBan  = "ban"
	ModerationMute = "mute"
)

// ModerationAction 封禁/禁言记录。不做后台过期任务，读取时用 RestrictsAt 惰性判断；
// 记录只会被显式 lift（软关闭），从不硬删，保留历史。
type ModerationAction struct {
	ID              uint64 `gorm:"primaryKey"`
	StationID       uint64 `gorm:"not null;index:idx_station_target,priority:1"`
	TargetPrincipal string `gorm:"size:32;not null;index:idx_station_target,priority:2"`
	Kind            string `gorm:"size:8;not null"` // ban / mute
	Reason          string `gorm:"type:text"`
	IssuedBy        string `gorm:"size:32;not null"`
	IssuedAt        time.Time `gorm:"autoCreateTime"`
	ExpiresAt       *time.Time // ban 可为 nil（永久）；mute 必填
	IsActive        bool       `gorm:"not null;default:true"`
	LiftedBy        *string    `gorm:"size:32"`
	LiftedAt        *time.Time
}

func (ModerationAction) TableName() string { return "moderation_actions" }

// RestrictsAt 此刻是否仍然生效：isActive 且（无过期时间或尚未过期）。
// 纯函数，时间由调用方传入，方便测试。
func (a *ModerationAction) RestrictsAt(now time.Time) bool {
	if !a.IsActive {
		return false
	}
	return a.ExpiresAt == nil || a.ExpiresAt.After(now)
}
