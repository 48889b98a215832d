package service

import (
	"errors"
	"testing"

	"Station_Hub/internal/model"
	"Station_Hub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildDepth(t *testing.T) {
	// 顶层评论
	depth, err := childDepth(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, depth)

	// 逐层往下，到 3 为止
	for parentDepth := 0; parentDepth < model.MaxCommentDepth; parentDepth++ {
		depth, err := childDepth(&model.Comment{Depth: parentDepth})
		require.NoError(t, err)
		assert.Equal(t, parentDepth+1, depth)
	}

	// 给第 3 层回复会到第 4 层，拒绝
	_, err = childDepth(&model.Comment{Depth: model.MaxCommentDepth})
	assert.True(t, errs.IsKind(err, errs.KindInvalidState))
}

func TestCollectSubtree(t *testing.T) {
	// 1 -> {2, 3}, 2 -> {4}, 3 -> {5, 6}
	tree := map[uint64][]uint64{
		1: {2, 3},
		2: {4},
		3: {5, 6},
	}
	childIDs := func(id uint64) ([]uint64, error) {
		return tree[id], nil
	}

	ids, err := collectSubtree(1, childIDs)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{1, 2, 3, 4, 5, 6}, ids)

	// 子树中段
	ids, err = collectSubtree(3, childIDs)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{3, 5, 6}, ids)

	// 叶子只含自己
	ids, err = collectSubtree(4, childIDs)
	require.NoError(t, err)
	assert.Equal(t, []uint64{4}, ids)
}

func TestCollectSubtreeCycleSafe(t *testing.T) {
	// 脏数据成环也不能死循环
	tree := map[uint64][]uint64{
		1: {2},
		2: {1},
	}
	ids, err := collectSubtree(1, func(id uint64) ([]uint64, error) {
		return tree[id], nil
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{1, 2}, ids)
}

func TestCollectSubtreePropagatesError(t *testing.T) {
	boom := errors.New("db gone")
	_, err := collectSubtree(1, func(id uint64) ([]uint64, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}
