package model

import "time"

// 已知的帖子类型；type 是开放字符串集，未列出的类型走奖励表兜底
const (
	PostTypeFeedback   = "feedback"
	PostTypeBug        = "bug"
	PostTypeFeature    = "feature"
	PostTypeDiscussion = "discussion"
	PostTypeQuestion   = "question"
	PostTypeUpdate     = "update" // 仅站长可发
)

type Post struct {
	ID              uint64 `gorm:"primaryKey;index:idx_station_time_id,priority:3,sort:desc"`
	StationID       uint64 `gorm:"not null;index:idx_station_time_id,priority:1"`
	AuthorPrincipal string `gorm:"size:32;not null;index"`
	Type            string `gorm:"size:16;not null"`
	Title           string `gorm:"size:200;not null"`
	Content         string `gorm:"type:text"`
	IsOwnerPost     bool   `gorm:"not null;default:false"`
	IsPinned        bool   `gorm:"not null;default:false"`
	Upvotes         int64  `gorm:"not null;default:0"`
	Downvotes       int64  `gorm:"not null;default:0"`
	CommentCount    int64  `gorm:"not null;default:0"`
	Status          int    `gorm:"not null;default:0"` // 0=normal 1=deleted
	CreatedAt       time.Time `gorm:"index:idx_station_time_id,priority:2,sort:desc"`
	UpdatedAt       time.Time
}

func (Post) TableName() string { return "posts" }
