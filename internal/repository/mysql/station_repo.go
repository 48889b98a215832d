package mysql

import (
	"Station_Hub/internal/model"

	"gorm.io/gorm"
)

type StationRepository struct {
	DB *gorm.DB
}

func (r *StationRepository) Create(st *model.Station) error {
	return r.DB.Create(st).Error
}

func (r *StationRepository) FindByID(id uint64) (*model.Station, error) {
	var st model.Station
	err := r.DB.First(&st, id).Error
	return &st, err
}

func (r *StationRepository) FindBySlug(slug string) (*model.Station, error) {
	var st model.Station
	err := r.DB.Where("slug = ?", slug).First(&st).Error
	return &st, err
}

// SlugExists check-then-insert 的前半步；站点创建频率低，窄竞争窗口可接受
func (r *StationRepository) SlugExists(slug string) (bool, error) {
	var n int64
	err := r.DB.Model(&model.Station{}).Where("slug = ?", slug).Count(&n).Error
	return n > 0, err
}

func (r *StationRepository) List(offset, limit int) ([]model.Station, error) {
	var list []model.Station
	err := r.DB.Order("id desc").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *StationRepository) UpdateStatus(id uint64, status int8) error {
	return r.DB.Model(&model.Station{}).Where("id = ?", id).Update("status", status).Error
}

// IncrMemberCount 成员计数统一从这里走，防止各调用点漏更新
func (r *StationRepository) IncrMemberCount(id uint64, delta int64) error {
	return r.DB.Model(&model.Station{}).Where("id = ?", id).
		UpdateColumn("member_count", gorm.Expr("GREATEST(0, member_count + ?)", delta)).Error
}

// IncrPostCount 帖子计数，同上
func (r *StationRepository) IncrPostCount(id uint64, delta int64) error {
	return r.DB.Model(&model.Station{}).Where("id = ?", id).
		UpdateColumn("post_count", gorm.Expr("GREATEST(0, post_count + ?)", delta)).Error
}
