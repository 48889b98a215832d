package service

import (
	"testing"
	"time"

	"Station_Hub/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestRestrictionsNow(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	actions := []model.ModerationAction{
		{ID: 1, Kind: model.ModerationBan, IsActive: true},                      // 永久
		{ID: 2, Kind: model.ModerationMute, IsActive: true, ExpiresAt: &past},   // 已自然过期
		{ID: 3, Kind: model.ModerationMute, IsActive: true, ExpiresAt: &future}, // 仍生效
		{ID: 4, Kind: model.ModerationBan, IsActive: false},                     // 已解除
	}

	effective := restrictionsNow(actions, now)
	ids := make([]uint64, 0, len(effective))
	for _, a := range effective {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []uint64{1, 3}, ids)

	assert.Empty(t, restrictionsNow(nil, now))
}

func TestHasRestrictionKind(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)

	actions := []model.ModerationAction{
		{Kind: model.ModerationMute, IsActive: true, ExpiresAt: &past},
		{Kind: model.ModerationBan, IsActive: true},
	}

	assert.True(t, hasRestrictionKind(actions, model.ModerationBan, now))
	// 禁言已过期，惰性判断下不再算数
	assert.False(t, hasRestrictionKind(actions, model.ModerationMute, now))
	assert.False(t, hasRestrictionKind(nil, model.ModerationBan, now))
}
