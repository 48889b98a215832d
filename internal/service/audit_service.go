package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"Station_Hub/internal/model"
	"Station_Hub/internal/pkg"
	"Station_Hub/internal/repository/mysql"

	"gorm.io/gorm"
)

// appendAudit 特权操作统一从这里落审计流水，外发事件同事务写入
func appendAudit(tx *gorm.DB, stationID uint64, action, actor string, target *string, details map[string]any) error {
	var blob string
	if details != nil {
		b, _ := json.Marshal(details)
		blob = string(b)
	}
	repo := &mysql.AuditRepository{DB: tx}
	return repo.Append(&model.AuditLog{
		StationID:       stationID,
		Action:          action,
		ActorPrincipal:  actor,
		TargetPrincipal: target,
		Details:         blob,
	})
}

type AuditService struct {
	db *gorm.DB
}

func NewAuditService() *AuditService {
	return &AuditService{db: mysql.DB}
}

// ListByStation 审计流水查询，需要 settings 权限
func (s *AuditService) ListByStation(stationID uint64, actor string, page, size int) ([]model.AuditLog, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 50
	}
	if _, err := requirePermission(s.db, stationID, actor, model.CapSettings, "missing settings capability"); err != nil {
		return nil, err
	}
	repo := &mysql.AuditRepository{DB: s.db}
	return repo.ListByStation(stationID, (page-1)*size, size)
}

type Sender func(ctx context.Context, ob *model.AuditOutbox) error

// OutboxRelayer 从 audit_outbox 批量取待投递事件，异步交给 Kafka
type OutboxRelayer struct {
	repo      *mysql.AuditOutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
}

func NewOutboxRelayer(sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      &mysql.AuditOutboxRepository{DB: mysql.DB},
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
	}
}

// Run relayer 启动器
func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.List(ctx, r.batchSize)
	if err != nil {
		log.Printf("audit outbox query err: %v", err)
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			_ = r.repo.RetryUpdate(ctx, ob.ID)
			continue
		}
		_ = r.repo.SuccessUpdate(ctx, ob.ID)
	}
}

// KafkaSender 用站点ID做分区键投递审计事件
func KafkaSender(p *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.AuditOutbox) error {
		return p.Send(ctx, pkg.MakeKeyFromID(ob.StationID), []byte(ob.Payload))
	}
}

// LogSender 默认 sender（占位）：Kafka 不可用时先打印
func LogSender(ctx context.Context, ob *model.AuditOutbox) error {
	log.Printf("OUTBOX SEND action=%s station=%d payload=%s", ob.Action, ob.StationID, ob.Payload)
	return nil
}
