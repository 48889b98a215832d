package model

import "time"

const (
	StationActive   int8 = 0
	StationArchived int8 = 1
)

type Station struct {
	ID             uint64 `gorm:"primaryKey"`
	Slug           string `gorm:"uniqueIndex;size:64;not null"`
	Name           string `gorm:"size:64;not null"`
	Description    string `gorm:"type:text"`
	OwnerPrincipal string `gorm:"size:32;not null;index"`
	MemberCount    int64  `gorm:"not null;default:0"`
	PostCount      int64  `gorm:"not null;default:0"`
	Status         int8   `gorm:"not null;default:0"` // 0=active 1=archived
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Station) TableName() string { return "stations" }

func (s *Station) IsArchived() bool { return s.Status == StationArchived }
