package model

import "time"

// Invite 邀请码。maxUses/expiresAt/invitedPrincipal 均可选；
// 一旦失效或过期，即使 usedCount < maxUses 也拒绝兑换。
type Invite struct {
	ID               uint64  `gorm:"primaryKey"`
	StationID        uint64  `gorm:"not null;index"`
	Code             string  `gorm:"uniqueIndex;size:16;not null"`
	InvitedPrincipal *string `gorm:"size:32"` // 指定兑换人，nil 表示任何人
	RoleOnJoin       string  `gorm:"size:64;not null;default:'crew'"`
	MaxUses          *int    // nil 表示不限次数
	UsedCount        int     `gorm:"not null;default:0"`
	ExpiresAt        *time.Time
	IsActive         bool   `gorm:"not null;default:true"`
	CreatedBy        string `gorm:"size:32;not null"`
	CreatedAt        time.Time
}

func (Invite) TableName() string { return "invites" }
