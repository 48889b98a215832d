package model

import (
	"math"
	"time"
)

// KarmaLedger 跨站声望账本，每个 principal 全局一条。
type KarmaLedger struct {
	ID                   uint64 `gorm:"primaryKey"`
	Principal            string `gorm:"uniqueIndex;size:32;not null"`
	ExternalKarma        int64  `gorm:"not null;default:0"`
	UniqueStationsHelped int    `gorm:"not null;default:0"`
	PromotionBoost       float64 `gorm:"not null;default:1"`
	UpdatedAt            time.Time
}

func (KarmaLedger) TableName() string { return "karma_ledger" }

// 贡献类型 -> 声望分。update 是站长公告，不计分。
var karmaRewards = map[string]int64{
	PostTypeFeedback:   5,
	PostTypeBug:        8,
	PostTypeFeature:    5,
	PostTypeDiscussion: 2,
	PostTypeQuestion:   2,
	PostTypeUpdate:     0,
	"vote":             1,
}

// KarmaForType 查奖励表，未知类型兜底 2 分
func KarmaForType(t string) int64 {
	if v, ok := karmaRewards[t]; ok {
		return v
	}
	return 2
}

// ComputePromotionBoost 晋升加成：karma <= 0 时为 1，
// 之后随 karma/50 以 log10 递减增长，封顶 3 倍。
func ComputePromotionBoost(externalKarma int64) float64 {
	if externalKarma <= 0 {
		return 1
	}
	boost := 1 + math.Log10(math.Max(1, float64(externalKarma)/50))
	return math.Min(3, boost)
}
