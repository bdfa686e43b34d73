// Package catalogrepo persists the slow-moving reference data used for quoting:
// pickup warehouses and carrier rate cards.
package catalogrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ratecard"
	"fulfillment/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type WarehouseDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"not null;index"`
	Address string    `gorm:"not null"`
	City    string
	State   string
	Pincode string `gorm:"type:char(6);not null"`
}

func (WarehouseDTO) TableName() string {
	return "warehouses"
}

// RateCardDTO is keyed by (carrier, service, zone); Upsert replaces the terms in place.
type RateCardDTO struct {
	Carrier           string          `gorm:"primaryKey"`
	Service           string          `gorm:"primaryKey"`
	Zone              int             `gorm:"primaryKey;type:smallint;autoIncrement:false"`
	BaseWeightGrams   float64         `gorm:"not null"`
	BaseFreight       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	SlabGrams         float64         `gorm:"not null"`
	SlabFreight       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	MaxWeightGrams    float64         `gorm:"not null"`
	CODFlatFee        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CODPercent        decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	RTORiskFee        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	RiskyProductTypes pq.StringArray  `gorm:"type:text[]"`
}

func (RateCardDTO) TableName() string {
	return "rate_cards"
}

func warehouseFromDomain(w *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		ID:      w.ID().Bytes(),
		Name:    w.Name(),
		Address: w.Address(),
		City:    w.City(),
		State:   w.State(),
		Pincode: w.Pincode().String(),
	}
}

func warehouseToDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	pin, err := kernel.NewPincode(dto.Pincode)
	if err != nil {
		return nil, err
	}
	return warehouse.NewWarehouse(id, dto.Name, dto.Address, dto.City, dto.State, pin)
}

func rateCardFromDomain(c *ratecard.RateCard) RateCardDTO {
	t := c.Terms()
	return RateCardDTO{
		Carrier:           c.Carrier(),
		Service:           c.Service(),
		Zone:              int(c.Zone()),
		BaseWeightGrams:   t.BaseWeightGrams,
		BaseFreight:       t.BaseFreight.Decimal(),
		SlabGrams:         t.SlabGrams,
		SlabFreight:       t.SlabFreight.Decimal(),
		MaxWeightGrams:    t.MaxWeightGrams,
		CODFlatFee:        t.CODFlatFee.Decimal(),
		CODPercent:        t.CODPercent,
		RTORiskFee:        t.RTORiskFee.Decimal(),
		RiskyProductTypes: pq.StringArray(t.RiskyProductTypes),
	}
}

func rateCardToDomain(dto RateCardDTO) (*ratecard.RateCard, error) {
	terms := ratecard.Terms{
		BaseWeightGrams:   dto.BaseWeightGrams,
		SlabGrams:         dto.SlabGrams,
		MaxWeightGrams:    dto.MaxWeightGrams,
		CODPercent:        dto.CODPercent,
		RiskyProductTypes: []string(dto.RiskyProductTypes),
	}

	var err error
	if terms.BaseFreight, err = kernel.NewMoney(dto.BaseFreight); err != nil {
		return nil, err
	}
	if terms.SlabFreight, err = kernel.NewMoney(dto.SlabFreight); err != nil {
		return nil, err
	}
	if terms.CODFlatFee, err = kernel.NewMoney(dto.CODFlatFee); err != nil {
		return nil, err
	}
	if terms.RTORiskFee, err = kernel.NewMoney(dto.RTORiskFee); err != nil {
		return nil, err
	}
	return ratecard.NewRateCard(dto.Carrier, dto.Service, ratecard.Zone(dto.Zone), terms)
}
