package mysql

import (
	"Station_Hub/internal/model"

	"gorm.io/gorm"
)

type RoleRepository struct {
	DB *gorm.DB
}

func (r *RoleRepository) Create(role *model.Role) error {
	return r.DB.Create(role).Error
}

func (r *RoleRepository) CreateBatch(roles []model.Role) error {
	return r.DB.Create(&roles).Error
}

func (r *RoleRepository) FindByID(id uint64) (*model.Role, error) {
	var role model.Role
	err := r.DB.First(&role, id).Error
	return &role, err
}

func (r *RoleRepository) FindBySlug(stationID uint64, slug string) (*model.Role, error) {
	var role model.Role
	err := r.DB.Where("station_id = ? AND slug = ?", stationID, slug).First(&role).Error
	return &role, err
}

func (r *RoleRepository) SlugExists(stationID uint64, slug string) (bool, error) {
	var n int64
	err := r.DB.Model(&model.Role{}).
		Where("station_id = ? AND slug = ?", stationID, slug).
		Count(&n).Error
	return n > 0, err
}

func (r *RoleRepository) ListByStation(stationID uint64) ([]model.Role, error) {
	var list []model.Role
	err := r.DB.Where("station_id = ?", stationID).
		Order("priority desc").Find(&list).Error
	return list, err
}

func (r *RoleRepository) Save(role *model.Role) error {
	return r.DB.Save(role).Error
}

func (r *RoleRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Role{}, id).Error
}
