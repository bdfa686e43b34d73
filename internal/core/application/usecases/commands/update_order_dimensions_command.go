package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateOrderDimensionsCommandIsNotConstructed = errors.New(
	"UpdateOrderDimensionsCommand must be created via NewUpdateOrderDimensionsCommand constructor",
)

// UpdateOrderDimensionsCommand changes the package sides of an open order. The
// volumetric weight is recomputed by the order itself.
type UpdateOrderDimensionsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	length  float64
	breadth float64
	height  float64

	guard guard.ConstructorGuard
}

func NewUpdateOrderDimensionsCommand(
	orderID kernel.UUID,
	length, breadth, height float64,
) (UpdateOrderDimensionsCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderDimensionsCommand{}, err
	}

	return UpdateOrderDimensionsCommand{
		orderID: orderID,
		length:  length,
		breadth: breadth,
		height:  height,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderDimensionsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderDimensionsCommandIsNotConstructed)
}

func (c UpdateOrderDimensionsCommand) OrderID() kernel.UUID { return c.orderID }
func (c UpdateOrderDimensionsCommand) Length() float64 { return c.length }
func (c UpdateOrderDimensionsCommand) Breadth() float64 { return c.breadth }
func (c UpdateOrderDimensionsCommand) Height() float64 { return c.height }
