package remittancerepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/remittance"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormRemittanceRepository implements ports.RemittanceRepository using GORM.
type GormRemittanceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormRemittanceRepository(db *gorm.DB, tracker aggregateTracker) *GormRemittanceRepository {
	return &GormRemittanceRepository{db: db, tracker: tracker}
}

// AddIfAbsent inserts with ON CONFLICT (shipment_id) DO NOTHING, so a record raced in by
// another settlement run is skipped instead of failing the batch.
func (r *GormRemittanceRepository) AddIfAbsent(ctx context.Context, records []*remittance.Record) ([]*remittance.Record, error) {
	if len(records) == 0 {
		return []*remittance.Record{}, nil
	}

	dtos := make([]RecordDTO, 0, len(records))
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return nil, err
		}
		dtos = append(dtos, fromDomain(rec))
	}

	var insertedIDs []uuid.UUID
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "shipment_id"}}, DoNothing: true}).
		Create(&dtos).Error
	if err != nil {
		return nil, err
	}
	// Draft ids are fresh, so an id present after the insert is a row this call wrote.
	if err = r.db.WithContext(ctx).Model(&RecordDTO{}).
		Where("id IN ?", recordIDs(records)).
		Pluck("id", &insertedIDs).Error; err != nil {
		return nil, err
	}

	inserted := make(map[uuid.UUID]struct{}, len(insertedIDs))
	for _, id := range insertedIDs {
		inserted[id] = struct{}{}
	}
	out := make([]*remittance.Record, 0, len(insertedIDs))
	for _, rec := range records {
		if _, ok := inserted[rec.ID().Bytes()]; ok {
			r.tracker.TrackAggregate(rec.ID(), rec)
			out = append(out, rec)
		}
	}
	return out, nil
}

// Update writes the payment columns of an existing record.
func (r *GormRemittanceRepository) Update(ctx context.Context, record *remittance.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	result := r.db.WithContext(ctx).Model(&RecordDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "paid_at", "payment_reference").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("remittance", record.ID())
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// Get locks the record FOR UPDATE so that two payment confirmations serialize.
func (r *GormRemittanceRepository) Get(ctx context.Context, id kernel.UUID) (*remittance.Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RecordDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("remittance", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormRemittanceRepository) RecordedShipments(ctx context.Context, shipmentIDs []kernel.UUID) (map[string]struct{}, error) {
	out := make(map[string]struct{})
	if len(shipmentIDs) == 0 {
		return out, nil
	}

	raw := make([]uuid.UUID, len(shipmentIDs))
	for i, id := range shipmentIDs {
		raw[i] = id.Bytes()
	}

	var recorded []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&RecordDTO{}).
		Where("shipment_id IN ?", raw).
		Pluck("shipment_id", &recorded).Error; err != nil {
		return nil, err
	}
	for _, id := range recorded {
		out[id.String()] = struct{}{}
	}
	return out, nil
}

func (r *GormRemittanceRepository) ListDelivered(ctx context.Context, period kernel.Period) ([]*remittance.Record, error) {
	var dtos []RecordDTO
	if err := r.db.WithContext(ctx).
		Where("delivered_at >= ? AND delivered_at < ?", period.Start(), period.End()).
		Order("delivered_at").Order("shipment_id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	out := make([]*remittance.Record, 0, len(dtos))
	for _, dto := range dtos {
		rec, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func recordIDs(records []*remittance.Record) []uuid.UUID {
	out := make([]uuid.UUID, len(records))
	for i, rec := range records {
		out[i] = rec.ID().Bytes()
	}
	return out
}
