package eventrepo

import (
	"context"
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCarrierEventLog implements ports.CarrierEventLog.
type GormCarrierEventLog struct {
	db *gorm.DB
}

func NewGormCarrierEventLog(db *gorm.DB) *GormCarrierEventLog {
	return &GormCarrierEventLog{db: db}
}

// Record inserts with ON CONFLICT DO NOTHING; zero affected rows means a replay.
func (l *GormCarrierEventLog) Record(ctx context.Context, event ports.CarrierEvent) (bool, error) {
	dto := CarrierEventDTO{
		EventID:    event.EventID,
		ShipmentID: event.ShipmentID.Bytes(),
		Status:     int(event.Status),
		Reason:     event.Reason,
		ReceivedAt: event.ReceivedAt.UTC(),
	}
	result := l.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dto)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// GormOutbox implements ports.Outbox and ports.OutboxRelay.
type GormOutbox struct {
	db *gorm.DB
}

func NewGormOutbox(db *gorm.DB) *GormOutbox {
	return &GormOutbox{db: db}
}

func (o *GormOutbox) Append(ctx context.Context, evts ...events.Event) error {
	if len(evts) == 0 {
		return nil
	}

	now := time.Now().UTC()
	dtos := make([]OutboxDTO, 0, len(evts))
	for _, e := range evts {
		payload, err := json.Marshal(e)
		if err != nil {
			return err
		}
		dtos = append(dtos, OutboxDTO{
			ID:        kernel.NewUUID().Bytes(),
			Key:       e.AggregateID(),
			EventType: e.EventType(),
			Payload:   payload,
			CreatedAt: now,
		})
	}
	return o.db.WithContext(ctx).Create(&dtos).Error
}

// Pending returns up to limit unsent rows without locking or leasing them.
func (o *GormOutbox) Pending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxDTO
	if err := o.db.WithContext(ctx).
		Where("sent_at IS NULL").
		Order("seq").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toMessages(dtos)
}

// Lease picks unsent rows whose lease is absent or expired with FOR UPDATE SKIP LOCKED
// and stamps leased_until in the same transaction. Once committed the row locks are
// gone but the lease keeps a second relay instance off the batch.
func (o *GormOutbox) Lease(ctx context.Context, limit int, now time.Time, ttl time.Duration) ([]ports.OutboxMessage, error) {
	var dtos []OutboxDTO
	if err := o.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("sent_at IS NULL AND (leased_until IS NULL OR leased_until <= ?)", now.UTC()).
		Order("seq").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	if len(dtos) == 0 {
		return []ports.OutboxMessage{}, nil
	}

	seqs := make([]int64, len(dtos))
	for i, dto := range dtos {
		seqs[i] = dto.Seq
	}
	if err := o.db.WithContext(ctx).Model(&OutboxDTO{}).
		Where("seq IN ?", seqs).
		Update("leased_until", now.Add(ttl).UTC()).Error; err != nil {
		return nil, err
	}
	return toMessages(dtos)
}

func toMessages(dtos []OutboxDTO) ([]ports.OutboxMessage, error) {
	out := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		out = append(out, ports.OutboxMessage{
			ID:        id,
			Key:       dto.Key,
			EventType: dto.EventType,
			Payload:   dto.Payload,
			CreatedAt: dto.CreatedAt,
		})
	}
	return out, nil
}

func (o *GormOutbox) MarkSent(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	return o.db.WithContext(ctx).Model(&OutboxDTO{}).
		Where("id IN ? AND sent_at IS NULL", rawIDs(ids)).
		Updates(map[string]any{"sent_at": at.UTC(), "leased_until": nil}).Error
}

func (o *GormOutbox) Release(ctx context.Context, ids []kernel.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return o.db.WithContext(ctx).Model(&OutboxDTO{}).
		Where("id IN ? AND sent_at IS NULL", rawIDs(ids)).
		Update("leased_until", nil).Error
}

func rawIDs(ids []kernel.UUID) []uuid.UUID {
	raw := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		raw[i] = id.Bytes()
	}
	return raw
}
