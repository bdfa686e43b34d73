package queries

import (
	"context"
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ndr"
	"fulfillment/internal/core/domain/model/remittance"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetShipmentQueryIsNotConstructed = errors.New(
		"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
	)
	ErrListNDRCasesQueryIsNotConstructed = errors.New(
		"ListNDRCasesQuery must be created via NewListNDRCasesQuery constructor",
	)
	ErrGetRemittancesQueryIsNotConstructed = errors.New(
		"GetRemittancesQuery must be created via NewGetRemittancesQuery constructor",
	)
)

// GetShipmentQuery retrieves one shipment with its frozen quote.
type GetShipmentQuery struct {
	shipmentID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetShipmentQuery(shipmentID kernel.UUID) (GetShipmentQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}
	return GetShipmentQuery{shipmentID: shipmentID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

type GetShipmentQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewGetShipmentQueryHandler(uowFactory ReadUoWFactory) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{uowFactory: uowFactory}
}

func (h GetShipmentQueryHandler) Handle(ctx context.Context, q GetShipmentQuery) (*shipment.Shipment, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return read(ctx, h.uowFactory, func(uow ReadUoW) (*shipment.Shipment, error) {
		return uow.ShipmentRepository().Get(ctx, q.shipmentID)
	})
}

// ListNDRCasesQuery lists NDR cases, optionally filtered by status name.
type ListNDRCasesQuery struct {
	status ndr.Status
	guard  guard.ConstructorGuard
}

// NewListNDRCasesQuery accepts an empty status for all cases.
func NewListNDRCasesQuery(status string) (ListNDRCasesQuery, error) {
	q := ListNDRCasesQuery{status: ndr.UnknownStatus, guard: guard.NewConstructorGuard()}
	if status = strings.TrimSpace(status); status != "" {
		parsed, err := ndr.ParseStatus(status)
		if err != nil {
			return ListNDRCasesQuery{}, err
		}
		q.status = parsed
	}
	return q, nil
}

func (q ListNDRCasesQuery) Validate() error {
	return q.guard.Validate(ErrListNDRCasesQueryIsNotConstructed)
}

type ListNDRCasesQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewListNDRCasesQueryHandler(uowFactory ReadUoWFactory) ListNDRCasesQueryHandler {
	return ListNDRCasesQueryHandler{uowFactory: uowFactory}
}

func (h ListNDRCasesQueryHandler) Handle(ctx context.Context, q ListNDRCasesQuery) ([]*ndr.Case, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return read(ctx, h.uowFactory, func(uow ReadUoW) ([]*ndr.Case, error) {
		return uow.NDRRepository().List(ctx, q.status)
	})
}

// GetRemittancesQuery lists the remittance records of shipments delivered in
// [start, end). It does not settle anything.
type GetRemittancesQuery struct {
	period kernel.Period
	guard  guard.ConstructorGuard
}

func NewGetRemittancesQuery(start, end time.Time) (GetRemittancesQuery, error) {
	period, err := kernel.NewPeriod(start, end)
	if err != nil {
		return GetRemittancesQuery{}, err
	}
	return GetRemittancesQuery{period: period, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRemittancesQuery) Validate() error {
	return q.guard.Validate(ErrGetRemittancesQueryIsNotConstructed)
}

type GetRemittancesQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewGetRemittancesQueryHandler(uowFactory ReadUoWFactory) GetRemittancesQueryHandler {
	return GetRemittancesQueryHandler{uowFactory: uowFactory}
}

func (h GetRemittancesQueryHandler) Handle(ctx context.Context, q GetRemittancesQuery) ([]*remittance.Record, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return read(ctx, h.uowFactory, func(uow ReadUoW) ([]*remittance.Record, error) {
		return uow.RemittanceRepository().ListDelivered(ctx, q.period)
	})
}

// ListWarehousesQueryHandler returns every warehouse ordered by name.
type ListWarehousesQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewListWarehousesQueryHandler(uowFactory ReadUoWFactory) ListWarehousesQueryHandler {
	return ListWarehousesQueryHandler{uowFactory: uowFactory}
}

func (h ListWarehousesQueryHandler) Handle(ctx context.Context) ([]*warehouse.Warehouse, error) {
	return read(ctx, h.uowFactory, func(uow ReadUoW) ([]*warehouse.Warehouse, error) {
		return uow.WarehouseRepository().List(ctx)
	})
}
