package service

import (
	"errors"

	"Station_Hub/internal/model"
	"Station_Hub/internal/repository/mysql"

	"gorm.io/gorm"
)

// awardKarma 一次贡献同事务更新三处：站内成员声望、全局账本、晋升加成。
// 站长在自己站里的贡献不计分。
func awardKarma(tx *gorm.DB, st *model.Station, principal, contribType string) error {
	if principal == st.OwnerPrincipal {
		return nil // 不自我奖励
	}
	points := model.KarmaForType(contribType)
	if points == 0 {
		return nil
	}

	memberRepo := &mysql.MembershipRepository{DB: tx}
	m, err := memberRepo.FindForUpdate(st.ID, principal)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // 已不在站内（比如被封禁后收到旧票），跳过
		}
		return err
	}
	firstHere := m.KarmaEarnedHere == 0
	if err := memberRepo.IncrKarma(m.ID, points); err != nil {
		return err
	}

	karmaRepo := &mysql.KarmaRepository{DB: tx}
	ledger, err := karmaRepo.FindForUpdate(principal)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		ledger = &model.KarmaLedger{Principal: principal}
		if err := karmaRepo.Create(ledger); err != nil {
			return err
		}
	}
	ledger.ExternalKarma += points
	if firstHere {
		ledger.UniqueStationsHelped++
	}
	ledger.PromotionBoost = model.ComputePromotionBoost(ledger.ExternalKarma)
	return karmaRepo.Save(ledger)
}

type KarmaService struct {
	db *gorm.DB
}

func NewKarmaService() *KarmaService {
	return &KarmaService{db: mysql.DB}
}

// GetLedger 没有账本记录时返回零值账本（boost=1），不报错
func (s *KarmaService) GetLedger(principal string) (*model.KarmaLedger, error) {
	repo := &mysql.KarmaRepository{DB: s.db}
	ledger, err := repo.Find(principal)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.KarmaLedger{Principal: principal, PromotionBoost: 1}, nil
		}
		return nil, err
	}
	return ledger, nil
}
