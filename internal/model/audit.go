package model

import "time"

// AuditLog 特权操作流水，只追加，不改不删。
type AuditLog struct {
	ID              uint64  `gorm:"primaryKey"`
	StationID       uint64  `gorm:"not null;index:idx_station_time,priority:1"`
	Action          string  `gorm:"size:32;not null"`
	ActorPrincipal  string  `gorm:"size:32;not null"`
	TargetPrincipal *string `gorm:"size:32"`
	Details         string  `gorm:"type:json"`
	CreatedAt       time.Time `gorm:"index:idx_station_time,priority:2"`
}

func (AuditLog) TableName() string { return "audit_logs" }

// AuditOutbox 审计事件外发表，与审计流水同事务写入，由 relayer 异步投递到 Kafka
type AuditOutbox struct {
	ID        uint64 `gorm:"primaryKey"`
	StationID uint64 `gorm:"not null"`
	Action    string `gorm:"size:32;not null"`
	Payload   string `gorm:"type:json;not null"`
	Status    int8   `gorm:"not null;default:0;comment:'0=pending,1=sent,2=failed'"`
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AuditOutbox) TableName() string { return "audit_outbox" }
