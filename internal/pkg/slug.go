package pkg

import (
	"strconv"
	"strings"
)

const maxSlugLen = 48

// Slugify 名称转 URL 安全 slug：小写、非字母数字折叠成 '-'
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true // 抑制开头的 '-'
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	s := strings.Trim(b.String(), "-")
	if len(s) > maxSlugLen {
		s = strings.Trim(s[:maxSlugLen], "-")
	}
	if s == "" {
		s = "station"
	}
	return s
}

// SlugWithSuffix slug 冲突时追加递增后缀，如 my-station-2
func SlugWithSuffix(slug string, n int) string {
	if n <= 1 {
		return slug
	}
	return slug + "-" + strconv.Itoa(n)
}
