package queries

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 500
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// GetOrderQuery retrieves one order by identifier.
type GetOrderQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// GetOrderQueryHandler returns errs.ObjectNotFoundError for unknown orders.
type GetOrderQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewGetOrderQueryHandler(uowFactory ReadUoWFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{uowFactory: uowFactory}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, q GetOrderQuery) (*order.Order, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return read(ctx, h.uowFactory, func(uow ReadUoW) (*order.Order, error) {
		return uow.OrderRepository().Get(ctx, q.orderID)
	})
}

// ListOrdersQuery pages through orders, newest first.
//
// Example:
//
//	query, err := NewListOrdersQuery(0, 0) // first page, DefaultPageSize
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	limit  int
	offset int
	guard  guard.ConstructorGuard
}

// NewListOrdersQuery applies DefaultPageSize when limit is 0.
func NewListOrdersQuery(limit, offset int) (ListOrdersQuery, error) {
	if limit == 0 {
		limit = DefaultPageSize
	}
	if limit < 0 || limit > MaxPageSize {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageSize)
	}
	if offset < 0 {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded")
	}
	return ListOrdersQuery{limit: limit, offset: offset, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Limit() int { return q.limit }
func (q ListOrdersQuery) Offset() int { return q.offset }

type ListOrdersQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewListOrdersQueryHandler(uowFactory ReadUoWFactory) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{uowFactory: uowFactory}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, q ListOrdersQuery) ([]*order.Order, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return read(ctx, h.uowFactory, func(uow ReadUoW) ([]*order.Order, error) {
		return uow.OrderRepository().List(ctx, q.limit, q.offset)
	})
}
