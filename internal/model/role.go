package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Capability 单项权限标签，闭集
type Capability string

const (
	CapView     Capability = "view"
	CapPost     Capability = "post"
	CapPin      Capability = "pin"
	CapDelete   Capability = "delete"
	CapSettings Capability = "settings"
	CapPromote  Capability = "promote"
	CapBan      Capability = "ban"
	CapRoles    Capability = "roles"
)

// CapabilitySet 权限集合，入库存 JSON 数组
type CapabilitySet []Capability

func (s CapabilitySet) Has(c Capability) bool {
	for _, x := range s {
		if x == c {
			return true
		}
	}
	return false
}

func (s CapabilitySet) Value() (driver.Value, error) {
	if s == nil {
		s = CapabilitySet{}
	}
	return json.Marshal(s)
}

func (s *CapabilitySet) Scan(v any) error {
	switch data := v.(type) {
	case []byte:
		return json.Unmarshal(data, s)
	case string:
		return json.Unmarshal([]byte(data), s)
	default:
		return fmt.Errorf("cannot scan capability set from %T", v)
	}
}

// 四个系统角色，建站时固定生成，不可改不可删
const (
	RoleCrew      = "crew"
	RoleModerator = "moderator"
	RoleCoCaptain = "co-captain"
	RoleCaptain   = "captain"
)

// 自定义角色优先级必须 < 100（100 只属于站长）
const MaxCustomRolePriority = 99

// SystemRolePriority 系统角色优先级固定表
var SystemRolePriority = map[string]int{
	RoleCrew:      10,
	RoleModerator: 50,
	RoleCoCaptain: 90,
	RoleCaptain:   100,
}

var systemRoleCaps = map[string]CapabilitySet{
	RoleCrew:      {CapView, CapPost},
	RoleModerator: {CapView, CapPost, CapPin, CapDelete},
	RoleCoCaptain: {CapView, CapPost, CapPin, CapDelete, CapSettings, CapPromote, CapBan},
	RoleCaptain:   {CapView, CapPost, CapPin, CapDelete, CapSettings, CapPromote, CapBan, CapRoles},
}

// SystemRoleCapabilities 系统角色固定权限表，未知角色名视为无权限
func SystemRoleCapabilities(name string) CapabilitySet {
	caps, ok := systemRoleCaps[name]
	if !ok {
		return nil
	}
	out := make(CapabilitySet, len(caps))
	copy(out, caps)
	return out
}

// IsSystemRole 是否是内置角色名
func IsSystemRole(name string) bool {
	_, ok := SystemRolePriority[name]
	return ok
}

type Role struct {
	ID           uint64 `gorm:"primaryKey"`
	StationID    uint64 `gorm:"not null;index;uniqueIndex:uk_station_role_slug"`
	Slug         string `gorm:"size:64;not null;uniqueIndex:uk_station_role_slug"`
	Name         string `gorm:"size:64;not null"`
	ColorHint    string `gorm:"size:16"`
	Capabilities CapabilitySet `gorm:"type:json;not null"`
	Priority     int    `gorm:"not null"`
	IsDefault    bool   `gorm:"not null;default:false"`
	IsSystem     bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Role) TableName() string { return "roles" }

// SeedSystemRoles 生成某个站的四个系统角色，crew 为默认入站角色
func SeedSystemRoles(stationID uint64) []Role {
	names := map[string]string{
		RoleCrew:      "Crew",
		RoleModerator: "Moderator",
		RoleCoCaptain: "Co-Captain",
		RoleCaptain:   "Captain",
	}
	out := make([]Role, 0, 4)
	for _, slug := range []string{RoleCaptain, RoleCoCaptain, RoleModerator, RoleCrew} {
		out = append(out, Role{
			StationID:    stationID,
			Slug:         slug,
			Name:         names[slug],
			Capabilities: SystemRoleCapabilities(slug),
			Priority:     SystemRolePriority[slug],
			IsDefault:    slug == RoleCrew,
			IsSystem:     true,
		})
	}
	return out
}
