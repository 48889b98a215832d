package model

import "time"

const (
	VoteUp   int8 = 1
	VoteDown int8 = -1
)

const (
	VoteTargetPost    = "post"
	VoteTargetComment = "comment"
)

// Vote 每个 principal 对每个目标最多一票。同方向重投=撤票；反方向=原子翻转。
type Vote struct {
	ID             uint64 `gorm:"primaryKey"`
	TargetType     string `gorm:"size:8;not null;uniqueIndex:uk_target_voter,priority:1"`
	TargetID       uint64 `gorm:"not null;uniqueIndex:uk_target_voter,priority:2"`
	VoterPrincipal string `gorm:"size:32;not null;uniqueIndex:uk_target_voter,priority:3"`
	Direction      int8   `gorm:"not null"` // 1=up -1=down
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Vote) TableName() string { return "votes" }
