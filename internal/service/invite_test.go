package service

import (
	"testing"
	"time"

	"Station_Hub/internal/model"
	"Station_Hub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInviteUse(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	t.Run("open invite passes", func(t *testing.T) {
		inv := &model.Invite{IsActive: true}
		require.NoError(t, validateInviteUse(inv, "alice", now))
	})

	t.Run("deactivated", func(t *testing.T) {
		inv := &model.Invite{IsActive: false}
		err := validateInviteUse(inv, "alice", now)
		assert.True(t, errs.IsKind(err, errs.KindInvalidState))
		assert.EqualError(t, err, "invite deactivated")
	})

	t.Run("expired", func(t *testing.T) {
		inv := &model.Invite{IsActive: true, ExpiresAt: &past}
		err := validateInviteUse(inv, "alice", now)
		assert.True(t, errs.IsKind(err, errs.KindInvalidState))
		assert.EqualError(t, err, "invite expired")
	})

	t.Run("usage limit", func(t *testing.T) {
		max := 3
		inv := &model.Invite{IsActive: true, MaxUses: &max, UsedCount: 3}
		err := validateInviteUse(inv, "alice", now)
		assert.True(t, errs.IsKind(err, errs.KindInvalidState))
		assert.EqualError(t, err, "invite usage limit reached")
	})

	t.Run("targeted invite rejects others", func(t *testing.T) {
		target := "bob"
		inv := &model.Invite{IsActive: true, InvitedPrincipal: &target}
		err := validateInviteUse(inv, "alice", now)
		assert.True(t, errs.IsKind(err, errs.KindPermissionDenied))
		require.NoError(t, validateInviteUse(inv, "bob", now))
	})

	t.Run("under limit and unexpired passes", func(t *testing.T) {
		max := 3
		inv := &model.Invite{IsActive: true, MaxUses: &max, UsedCount: 2, ExpiresAt: &future}
		require.NoError(t, validateInviteUse(inv, "alice", now))
	})

	// 多个条件同时不满足时按固定顺序报第一个
	t.Run("deactivated wins over expired", func(t *testing.T) {
		inv := &model.Invite{IsActive: false, ExpiresAt: &past}
		assert.EqualError(t, validateInviteUse(inv, "alice", now), "invite deactivated")
	})
}
