package pkg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInviteCodeAlphabet(t *testing.T) {
	assert.Len(t, InviteCodeAlphabet, 56)

	// 无重复字符，且不含易混淆字符
	seen := make(map[rune]bool)
	for _, r := range InviteCodeAlphabet {
		assert.False(t, seen[r], "duplicate char %c", r)
		seen[r] = true
	}
	for _, bad := range "0O1Ilo" {
		assert.False(t, strings.ContainsRune(InviteCodeAlphabet, bad), "ambiguous char %c", bad)
	}
}

func TestNewInviteCode(t *testing.T) {
	codes := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := NewInviteCode()
		require.NoError(t, err)
		require.Len(t, code, InviteCodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(InviteCodeAlphabet, r))
		}
		codes[code] = true
	}
	// 100 个码撞出重复的概率可以忽略
	assert.Greater(t, len(codes), 99)
}
