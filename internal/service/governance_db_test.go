package service

import (
	"path/filepath"
	"testing"

	"Station_Hub/internal/model"
	"Station_Hub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 每个用例一个临时 sqlite 库，验证事务内的守卫和副作用
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Station{},
		&model.Role{},
		&model.Membership{},
		&model.ModerationAction{},
		&model.AuditLog{},
		&model.AuditOutbox{},
	))
	return db
}

// seedStation 建站：站点 + 站长成员关系
func seedStation(t *testing.T, db *gorm.DB, owner string) *model.Station {
	t.Helper()
	st := &model.Station{
		Slug:           "test-station",
		Name:           "Test Station",
		OwnerPrincipal: owner,
		MemberCount:    1,
		Status:         model.StationActive,
	}
	require.NoError(t, db.Create(st).Error)
	require.NoError(t, db.Create(&model.Membership{
		StationID:  st.ID,
		Principal:  owner,
		SystemRole: model.RoleCaptain,
	}).Error)
	return st
}

func addMember(t *testing.T, db *gorm.DB, stationID uint64, principal, systemRole string, customRoleID *uint64) {
	t.Helper()
	require.NoError(t, db.Create(&model.Membership{
		StationID:    stationID,
		Principal:    principal,
		SystemRole:   systemRole,
		CustomRoleID: customRoleID,
	}).Error)
}

// 站长不可被封禁，即使发起者是副站长也一样
func TestBanOwnerRejected(t *testing.T) {
	db := newTestDB(t)
	st := seedStation(t, db, "captain")
	addMember(t, db, st.ID, "deputy", model.RoleCoCaptain, nil)
	svc := &ModerationService{db: db}

	err := svc.Ban(st.ID, "deputy", "captain", "abuse", nil)
	assert.True(t, errs.IsKind(err, errs.KindPermissionDenied))

	// 站长成员关系原样保留
	var n int64
	require.NoError(t, db.Model(&model.Membership{}).
		Where("station_id = ? AND principal = ?", st.ID, "captain").Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestMuteOwnerRejected(t *testing.T) {
	db := newTestDB(t)
	st := seedStation(t, db, "captain")
	addMember(t, db, st.ID, "deputy", model.RoleCoCaptain, nil)
	svc := &ModerationService{db: db}

	err := svc.Mute(st.ID, "deputy", "captain", 4, "spam")
	assert.True(t, errs.IsKind(err, errs.KindPermissionDenied))
}

// 永久封禁用 nil 表达，0 或负数直接拒绝
func TestBanRejectsNonPositiveDuration(t *testing.T) {
	db := newTestDB(t)
	st := seedStation(t, db, "captain")
	addMember(t, db, st.ID, "deputy", model.RoleCoCaptain, nil)
	addMember(t, db, st.ID, "rider", model.RoleCrew, nil)
	svc := &ModerationService{db: db}

	for _, hours := range []int{0, -4} {
		h := hours
		err := svc.Ban(st.ID, "deputy", "rider", "spam", &h)
		assert.True(t, errs.IsKind(err, errs.KindValidation))
	}

	// 没有留下任何封禁记录
	var n int64
	require.NoError(t, db.Model(&model.ModerationAction{}).Count(&n).Error)
	assert.Equal(t, int64(0), n)
}

func TestLeaveOwnerRejected(t *testing.T) {
	db := newTestDB(t)
	st := seedStation(t, db, "captain")
	svc := &StationService{db: db}

	err := svc.Leave(st.ID, "captain")
	assert.True(t, errs.IsKind(err, errs.KindPermissionDenied))

	var n int64
	require.NoError(t, db.Model(&model.Membership{}).
		Where("station_id = ? AND principal = ?", st.ID, "captain").Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

// 删除自定义角色必须把全部持有者回落到 crew，一个都不能漏
func TestDeleteCustomRoleReassignsHolders(t *testing.T) {
	db := newTestDB(t)
	st := seedStation(t, db, "captain")

	role := &model.Role{
		StationID:    st.ID,
		Slug:         "helper",
		Name:         "Helper",
		Capabilities: model.CapabilitySet{model.CapView, model.CapPost},
		Priority:     20,
	}
	require.NoError(t, db.Create(role).Error)
	addMember(t, db, st.ID, "alice", model.RoleModerator, &role.ID)
	addMember(t, db, st.ID, "bob", model.RoleModerator, &role.ID)
	addMember(t, db, st.ID, "carol", model.RoleModerator, nil) // 未持有，不受影响

	svc := &RoleService{db: db}
	require.NoError(t, svc.DeleteCustomRole(st.ID, role.ID, "captain"))

	var holders []model.Membership
	require.NoError(t, db.Where("station_id = ? AND principal IN ?", st.ID, []string{"alice", "bob"}).
		Find(&holders).Error)
	require.Len(t, holders, 2)
	for _, m := range holders {
		assert.Equal(t, model.RoleCrew, m.SystemRole)
		assert.Nil(t, m.CustomRoleID)
	}

	var carol model.Membership
	require.NoError(t, db.Where("station_id = ? AND principal = ?", st.ID, "carol").First(&carol).Error)
	assert.Equal(t, model.RoleModerator, carol.SystemRole)

	assert.ErrorIs(t, db.First(&model.Role{}, role.ID).Error, gorm.ErrRecordNotFound)
}

func TestRoleServiceCheck(t *testing.T) {
	db := newTestDB(t)
	st := seedStation(t, db, "captain")
	addMember(t, db, st.ID, "rider", model.RoleCrew, nil)
	svc := &RoleService{db: db}

	allowed, err := svc.Check(st.ID, "rider", "post")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = svc.Check(st.ID, "rider", "pin")
	require.NoError(t, err)
	assert.False(t, allowed)

	// 非成员一律拒绝
	allowed, err = svc.Check(st.ID, "stranger", "view")
	require.NoError(t, err)
	assert.False(t, allowed)

	// 未知权限标签
	_, err = svc.Check(st.ID, "rider", "fly")
	assert.True(t, errs.IsKind(err, errs.KindValidation))
}
