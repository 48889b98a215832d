package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRestrictsAt(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	// 永久封禁：无过期时间
	permanent := &ModerationAction{Kind: ModerationBan, IsActive: true}
	assert.True(t, permanent.RestrictsAt(now))
	assert.True(t, permanent.RestrictsAt(now.Add(24*365*time.Hour)))

	// 未过期
	timed := &ModerationAction{Kind: ModerationMute, IsActive: true, ExpiresAt: &future}
	assert.True(t, timed.RestrictsAt(now))

	// 已过期，记录还在但不再生效
	expired := &ModerationAction{Kind: ModerationMute, IsActive: true, ExpiresAt: &past}
	assert.False(t, expired.RestrictsAt(now))

	// 已解除
	lifted := &ModerationAction{Kind: ModerationBan, IsActive: false}
	assert.False(t, lifted.RestrictsAt(now))

	// 正好到期的瞬间按失效算
	exact := &ModerationAction{Kind: ModerationMute, IsActive: true, ExpiresAt: &now}
	assert.False(t, exact.RestrictsAt(now))
}
