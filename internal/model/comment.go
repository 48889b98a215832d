package model

import "time"

// MaxCommentDepth 评论最大嵌套层级，超过直接拒绝
const MaxCommentDepth = 3

// Comment 树形评论。depth = parent.depth + 1，封顶 3；
// 删除评论会连带整棵回复子树，并从帖子的 commentCount 扣掉子树大小。
type Comment struct {
	ID              uint64  `gorm:"primaryKey"`
	PostID          uint64  `gorm:"not null;index"`
	StationID       uint64  `gorm:"not null;index"`
	AuthorPrincipal string  `gorm:"size:32;not null;index"`
	Content         string  `gorm:"type:text;not null"`
	ParentID        *uint64 `gorm:"index"` // nil 表示顶层评论
	Depth           int     `gorm:"not null;default:0"`
	Upvotes         int64   `gorm:"not null;default:0"`
	Downvotes       int64   `gorm:"not null;default:0"`
	CreatedAt       time.Time
}

func (Comment) TableName() string { return "comments" }
