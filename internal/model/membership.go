package model

import "time"

// Membership 站内成员关系。站长的记录永远是 systemRole=captain，本子系统不允许降级或移除。
type Membership struct {
	ID              uint64  `gorm:"primaryKey"`
	StationID       uint64  `gorm:"not null;index;uniqueIndex:uk_station_principal"`
	Principal       string  `gorm:"size:32;not null;index;uniqueIndex:uk_station_principal"`
	SystemRole      string  `gorm:"size:16;not null;default:'crew'"`
	CustomRoleID    *uint64 `gorm:"index"` // 最多引用一个自定义角色
	KarmaEarnedHere int64   `gorm:"not null;default:0"`
	JoinedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time
}

func (Membership) TableName() string { return "memberships" }
