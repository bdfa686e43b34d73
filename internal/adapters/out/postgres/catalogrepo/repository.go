package catalogrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ratecard"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWarehouseRepository implements ports.WarehouseRepository using GORM.
type GormWarehouseRepository struct {
	db *gorm.DB
}

func NewGormWarehouseRepository(db *gorm.DB) *GormWarehouseRepository {
	return &GormWarehouseRepository{db: db}
}

func (r *GormWarehouseRepository) Add(ctx context.Context, w *warehouse.Warehouse) error {
	if err := w.Validate(); err != nil {
		return err
	}
	dto := warehouseFromDomain(w)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("warehouse", w.ID(), "already exists")
		}
		return err
	}
	return nil
}

func (r *GormWarehouseRepository) Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	var dto WarehouseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("warehouse", id.String())
		}
		return nil, err
	}
	return warehouseToDomain(dto)
}

func (r *GormWarehouseRepository) List(ctx context.Context) ([]*warehouse.Warehouse, error) {
	var dtos []WarehouseDTO
	if err := r.db.WithContext(ctx).Order("name").Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	out := make([]*warehouse.Warehouse, 0, len(dtos))
	for _, dto := range dtos {
		w, err := warehouseToDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

// GormRateCardRepository implements ports.RateCardRepository using GORM.
type GormRateCardRepository struct {
	db *gorm.DB
}

func NewGormRateCardRepository(db *gorm.DB) *GormRateCardRepository {
	return &GormRateCardRepository{db: db}
}

// Upsert replaces every term column when the (carrier, service, zone) key exists.
func (r *GormRateCardRepository) Upsert(ctx context.Context, card *ratecard.RateCard) error {
	if err := card.Validate(); err != nil {
		return err
	}
	dto := rateCardFromDomain(card)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "carrier"}, {Name: "service"}, {Name: "zone"}},
		UpdateAll: true,
	}).Create(&dto).Error
}

func (r *GormRateCardRepository) List(ctx context.Context) ([]*ratecard.RateCard, error) {
	var dtos []RateCardDTO
	if err := r.db.WithContext(ctx).Order("carrier").Order("service").Order("zone").Find(&dtos).Error; err != nil {
		return nil, err
	}
	out := make([]*ratecard.RateCard, 0, len(dtos))
	for _, dto := range dtos {
		c, err := rateCardToDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
