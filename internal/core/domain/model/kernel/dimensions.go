package kernel

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// VolumetricDivisor converts cubic centimetres into volumetric grams: L*B*H/5.
const VolumetricDivisor = 5

var ErrDimensionsIsNotConstructed = errs.NewValueIsRequiredError("dimensions must be created via NewDimensions")

// Dimensions is the package size in centimetres. Every side must be positive.
type Dimensions struct { //nolint:recvcheck //using for validation
	length  float64
	breadth float64
	height  float64
	guard   guard.ConstructorGuard
}

// NewDimensions validates all three sides and reports every non-positive one.
func NewDimensions(length, breadth, height float64) (Dimensions, error) {
	d := Dimensions{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		d.setSide("length", &d.length, length),
		d.setSide("breadth", &d.breadth, breadth),
		d.setSide("height", &d.height, height),
	); err != nil {
		return Dimensions{}, err
	}
	return d, nil
}

func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsIsNotConstructed)
}

func (d Dimensions) Length() float64 { return d.length }
func (d Dimensions) Breadth() float64 { return d.breadth }
func (d Dimensions) Height() float64 { return d.height }

// VolumetricWeightGrams returns (length*breadth*height)/VolumetricDivisor.
// For 2x2x2 cm this is 8/5 = 1.6 g.
func (d Dimensions) VolumetricWeightGrams() float64 {
	return d.length * d.breadth * d.height / VolumetricDivisor
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%gx%gx%g cm", d.length, d.breadth, d.height)
}

func (d *Dimensions) setSide(name string, side *float64, value float64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%g is not greater than 0", value))
	}
	*side = value
	return nil
}
