package mysql

import (
	"Station_Hub/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type KarmaRepository struct {
	DB *gorm.DB
}

func (r *KarmaRepository) Find(principal string) (*model.KarmaLedger, error) {
	var l model.KarmaLedger
	err := r.DB.Where("principal = ?", principal).First(&l).Error
	return &l, err
}

// FindForUpdate 加分是读改写，事务内锁行
func (r *KarmaRepository) FindForUpdate(principal string) (*model.KarmaLedger, error) {
	var l model.KarmaLedger
	err := r.DB.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("principal = ?", principal).First(&l).Error
	return &l, err
}

func (r *KarmaRepository) Create(l *model.KarmaLedger) error {
	return r.DB.Create(l).Error
}

func (r *KarmaRepository) Save(l *model.KarmaLedger) error {
	return r.DB.Save(l).Error
}
