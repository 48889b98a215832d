package service

import (
	"testing"

	"Station_Hub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteTransition(t *testing.T) {
	up := &model.Vote{Direction: model.VoteUp}
	down := &model.Vote{Direction: model.VoteDown}

	// 无票 -> 计票
	assert.Equal(t, voteOutcome{VoteActionUpvoted, 1, 0}, voteTransition(nil, model.VoteUp))
	assert.Equal(t, voteOutcome{VoteActionDownvoted, 0, 1}, voteTransition(nil, model.VoteDown))

	// 同向重投 -> 撤票
	assert.Equal(t, voteOutcome{VoteActionRemoved, -1, 0}, voteTransition(up, model.VoteUp))
	assert.Equal(t, voteOutcome{VoteActionRemoved, 0, -1}, voteTransition(down, model.VoteDown))

	// 反向 -> 一步翻转两个计数
	assert.Equal(t, voteOutcome{VoteActionChanged, 1, -1}, voteTransition(down, model.VoteUp))
	assert.Equal(t, voteOutcome{VoteActionChanged, -1, 1}, voteTransition(up, model.VoteDown))
}

// 任意操作序列下净得分等于逐步累加的增量，不存在漂移
func TestVoteTransitionNoDrift(t *testing.T) {
	var upCount, downCount int64
	var existing *model.Vote

	apply := func(direction int8) {
		out := voteTransition(existing, direction)
		upCount += out.UpDelta
		downCount += out.DownDelta
		switch out.Action {
		case VoteActionRemoved:
			existing = nil
		default:
			existing = &model.Vote{Direction: direction}
		}
	}

	for _, d := range []int8{model.VoteUp, model.VoteDown, model.VoteDown, model.VoteUp, model.VoteUp} {
		apply(d)
		assert.GreaterOrEqual(t, upCount, int64(0))
		assert.GreaterOrEqual(t, downCount, int64(0))
	}
	// up, 翻转 down, 撤销, up, 撤销 -> 归零
	assert.Equal(t, int64(0), upCount)
	assert.Equal(t, int64(0), downCount)
	assert.Nil(t, existing)
}

func TestParseDirection(t *testing.T) {
	d, err := parseDirection("up")
	require.NoError(t, err)
	assert.Equal(t, model.VoteUp, d)

	d, err = parseDirection("down")
	require.NoError(t, err)
	assert.Equal(t, model.VoteDown, d)

	_, err = parseDirection("sideways")
	assert.Error(t, err)
}
