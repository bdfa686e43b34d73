// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Money columns are numeric(12,2) backed by shopspring/decimal; the shipped and cancelled
// flags are the columns the booking compare-and-swap runs against.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PaymentType       int             `gorm:"type:smallint;not null"`
	Consignee         ConsigneeDTO    `gorm:"embedded;embeddedPrefix:consignee_"`
	DeclaredValue     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CollectableValue  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Length            float64         `gorm:"not null"`
	Breadth           float64         `gorm:"not null"`
	Height            float64         `gorm:"not null"`
	ActualWeightGrams float64         `gorm:"not null"`
	Quantity          int             `gorm:"not null"`
	ProductType       string
	Shipped           bool      `gorm:"not null;default:false;index"`
	Cancelled         bool      `gorm:"not null;default:false"`
	CreatedAt         time.Time `gorm:"not null;index;autoCreateTime:false"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ConsigneeDTO is embedded in the orders table.
type ConsigneeDTO struct {
	Name         string `gorm:"not null"`
	Phone        string `gorm:"type:char(10);not null"`
	AddressLine1 string `gorm:"not null"`
	AddressLine2 string
	City         string `gorm:"not null"`
	State        string `gorm:"not null"`
	Pincode      string `gorm:"type:char(6);not null"`
}

func fromDomain(o *order.Order) OrderDTO {
	c := o.Consignee()
	d := o.Dimensions()
	return OrderDTO{
		ID:          o.ID().Bytes(),
		PaymentType: int(o.PaymentType()),
		Consignee: ConsigneeDTO{
			Name:         c.Name(),
			Phone:        c.Phone().String(),
			AddressLine1: c.AddressLine1(),
			AddressLine2: c.AddressLine2(),
			City:         c.City(),
			State:        c.State(),
			Pincode:      c.Pincode().String(),
		},
		DeclaredValue:     o.DeclaredValue().Decimal(),
		CollectableValue:  o.CollectableValue().Decimal(),
		Length:            d.Length(),
		Breadth:           d.Breadth(),
		Height:            d.Height(),
		ActualWeightGrams: o.ActualWeightGrams(),
		Quantity:          o.Quantity(),
		ProductType:       o.ProductType(),
		Shipped:           o.IsShipped(),
		Cancelled:         o.IsCancelled(),
		CreatedAt:         o.CreatedAt().UTC(),
	}
}

// toDomain reconstructs the aggregate through RestoreOrder, so a row that violates the
// order invariants fails to load instead of leaking an invalid aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	phone, err := kernel.NewMobile(dto.Consignee.Phone)
	if err != nil {
		return nil, err
	}
	pincode, err := kernel.NewPincode(dto.Consignee.Pincode)
	if err != nil {
		return nil, err
	}
	consignee, err := order.NewConsignee(
		dto.Consignee.Name, phone,
		dto.Consignee.AddressLine1, dto.Consignee.AddressLine2,
		dto.Consignee.City, dto.Consignee.State, pincode,
	)
	if err != nil {
		return nil, err
	}
	dims, err := kernel.NewDimensions(dto.Length, dto.Breadth, dto.Height)
	if err != nil {
		return nil, err
	}
	declared, err := kernel.NewMoney(dto.DeclaredValue)
	if err != nil {
		return nil, err
	}
	collectable, err := kernel.NewMoney(dto.CollectableValue)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, order.Details{
		PaymentType:       order.PaymentType(dto.PaymentType),
		Consignee:         consignee,
		DeclaredValue:     declared,
		CollectableValue:  collectable,
		Dimensions:        dims,
		ActualWeightGrams: dto.ActualWeightGrams,
		Quantity:          dto.Quantity,
		ProductType:       dto.ProductType,
	}, dto.Shipped, dto.Cancelled, dto.CreatedAt)
}
