package ndrrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ndr"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormNDRRepository implements ports.NDRRepository using GORM.
type GormNDRRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormNDRRepository(db *gorm.DB, tracker aggregateTracker) *GormNDRRepository {
	return &GormNDRRepository{db: db, tracker: tracker}
}

func (r *GormNDRRepository) Add(ctx context.Context, aggregate *ndr.Case) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("ndr case", aggregate.ID(), "already exists")
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites the case row and inserts the history rows past the stored tail.
// History is append-only, so existing rows are left untouched.
func (r *GormNDRRepository) Update(ctx context.Context, aggregate *ndr.Case) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	result := db.Model(&CaseDTO{}).
		Where("id = ?", dto.ID).
		Select("failure_reason", "attempts", "status", "action", "action_reason", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("ndr case", aggregate.ID())
	}

	if len(dto.History) > 0 {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.History).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get locks the case row FOR UPDATE.
func (r *GormNDRRepository) Get(ctx context.Context, id kernel.UUID) (*ndr.Case, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "ndr case", id.String(), "id = ?", id.Bytes())
}

func (r *GormNDRRepository) GetOpenByShipment(ctx context.Context, shipmentID kernel.UUID) (*ndr.Case, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "open ndr case for shipment", shipmentID.String(),
		"shipment_id = ? AND status IN ?", shipmentID.Bytes(), []int{int(ndr.ActionRequired), int(ndr.ActionRequested)})
}

func (r *GormNDRRepository) List(ctx context.Context, status ndr.Status) ([]*ndr.Case, error) {
	q := r.db.WithContext(ctx).Preload("History", orderedHistory)
	if status != ndr.UnknownStatus {
		q = q.Where("status = ?", int(status))
	}

	var dtos []CaseDTO
	if err := q.Order("opened_at").Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	out := make([]*ndr.Case, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *GormNDRRepository) first(ctx context.Context, param, id string, query string, args ...any) (*ndr.Case, error) {
	var dto CaseDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: CaseDTO{}.TableName()}}).
		Preload("History", orderedHistory).
		Where(query, args...).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, id)
		}
		return nil, err
	}
	return toDomain(dto)
}

func orderedHistory(db *gorm.DB) *gorm.DB {
	return db.Order("seq")
}
