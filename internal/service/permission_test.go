package service

import (
	"testing"

	"Station_Hub/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestResolveCapabilities(t *testing.T) {
	m := &model.Membership{SystemRole: model.RoleModerator}

	// 无自定义角色时按系统角色表
	caps := ResolveCapabilities(m, nil)
	assert.True(t, caps.Has(model.CapPin))
	assert.False(t, caps.Has(model.CapBan))

	// 自定义角色遮蔽系统角色：结论只看自定义角色，不做并集。
	// moderator 本来有 pin，挂了只有 view 的自定义角色后就没有了。
	custom := &model.Role{
		Slug:         "helper",
		Capabilities: model.CapabilitySet{model.CapView},
		Priority:     20,
	}
	caps = ResolveCapabilities(m, custom)
	assert.True(t, caps.Has(model.CapView))
	assert.False(t, caps.Has(model.CapPin))
	assert.False(t, caps.Has(model.CapPost))
}

func TestEffectivePriority(t *testing.T) {
	m := &model.Membership{SystemRole: model.RoleCoCaptain}
	assert.Equal(t, 90, EffectivePriority(m, nil))

	custom := &model.Role{Priority: 42}
	assert.Equal(t, 42, EffectivePriority(m, custom))
}

func TestCanAssignPriority(t *testing.T) {
	captain := model.SystemRolePriority[model.RoleCaptain]
	coCaptain := model.SystemRolePriority[model.RoleCoCaptain]
	moderator := model.SystemRolePriority[model.RoleModerator]

	// 站长不受天花板限制
	assert.True(t, canAssignPriority(captain, coCaptain))
	assert.True(t, canAssignPriority(captain, 99))

	// 副站长不能指派平级或更高
	assert.False(t, canAssignPriority(coCaptain, coCaptain))
	assert.False(t, canAssignPriority(coCaptain, 95))
	assert.True(t, canAssignPriority(coCaptain, moderator))
	assert.True(t, canAssignPriority(coCaptain, 89))

	// 持 promote 的低优先级成员同样受限
	assert.False(t, canAssignPriority(moderator, coCaptain))
	assert.True(t, canAssignPriority(moderator, 10))
}
