package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKarmaForType(t *testing.T) {
	assert.Equal(t, int64(5), KarmaForType(PostTypeFeedback))
	assert.Equal(t, int64(8), KarmaForType(PostTypeBug))
	assert.Equal(t, int64(5), KarmaForType(PostTypeFeature))
	assert.Equal(t, int64(2), KarmaForType(PostTypeDiscussion))
	assert.Equal(t, int64(2), KarmaForType(PostTypeQuestion))
	assert.Equal(t, int64(1), KarmaForType("vote"))

	// 站长公告不计分
	assert.Equal(t, int64(0), KarmaForType(PostTypeUpdate))

	// 未知类型兜底 2 分
	assert.Equal(t, int64(2), KarmaForType("something-new"))
}

func TestComputePromotionBoost(t *testing.T) {
	assert.Equal(t, float64(1), ComputePromotionBoost(0))
	assert.Equal(t, float64(1), ComputePromotionBoost(-10))

	// karma/50 < 1 时 log10 被钳到 0，加成仍是 1
	assert.Equal(t, float64(1), ComputePromotionBoost(30))
	assert.Equal(t, float64(1), ComputePromotionBoost(50))

	// 500/50 = 10，log10(10) = 1
	assert.InDelta(t, 2.0, ComputePromotionBoost(500), 1e-9)

	// 封顶 3 倍
	assert.Equal(t, float64(3), ComputePromotionBoost(10_000_000))

	// 单调不减
	prev := float64(0)
	for _, k := range []int64{0, 10, 50, 100, 500, 5000, 50000} {
		b := ComputePromotionBoost(k)
		assert.GreaterOrEqual(t, b, prev)
		prev = b
	}
}
