package pkg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "my-station", Slugify("My Station"))
	assert.Equal(t, "my-station", Slugify("  My   Station!!  "))
	assert.Equal(t, "caps-and-123", Slugify("CAPS and 123"))
	assert.Equal(t, "a-b-c", Slugify("a_b_c"))

	// 全符号名兜底
	assert.Equal(t, "station", Slugify("!!!"))
	assert.Equal(t, "station", Slugify(""))

	// 超长截断且不留悬挂 '-'
	long := Slugify(strings.Repeat("ab ", 40))
	assert.LessOrEqual(t, len(long), 48)
	assert.False(t, strings.HasSuffix(long, "-"))
}

func TestSlugWithSuffix(t *testing.T) {
	assert.Equal(t, "base", SlugWithSuffix("base", 0))
	assert.Equal(t, "base", SlugWithSuffix("base", 1))
	assert.Equal(t, "base-2", SlugWithSuffix("base", 2))
	assert.Equal(t, "base-10", SlugWithSuffix("base", 10))
}
