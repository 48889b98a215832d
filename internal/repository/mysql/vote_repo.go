package mysql

import (
	"Station_Hub/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VoteRepository struct {
	DB *gorm.DB
}

// FindForUpdate 唯一键 (target_type, target_id, voter) 加锁读，翻转票防并发
func (r *VoteRepository) FindForUpdate(targetType string, targetID uint64, voter string) (*model.Vote, error) {
	var v model.Vote
	err := r.DB.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("target_type = ? AND target_id = ? AND voter_principal = ?", targetType, targetID, voter).
		First(&v).Error
	return &v, err
}

func (r *VoteRepository) Create(v *model.Vote) error {
	return r.DB.Create(v).Error
}

// UpdateDirection 翻转票就地改方向，不走删了再插
func (r *VoteRepository) UpdateDirection(id uint64, direction int8) error {
	return r.DB.Model(&model.Vote{}).Where("id = ?", id).
		Update("direction", direction).Error
}

func (r *VoteRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Vote{}, id).Error
}
