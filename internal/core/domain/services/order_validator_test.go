package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(fields []errs.FieldError) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Field)
	}
	return names
}

func TestOrderValidator_Validate(t *testing.T) {
	v := services.NewOrderValidator()

	t.Run("valid cod draft", func(t *testing.T) {
		id := kernel.NewUUID()
		o, fields := v.Validate(id, validDraft(), now)

		require.Empty(t, fields)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.COD, o.PaymentType())
		assert.Equal(t, "1200.00", o.CollectableValue().String())
		assert.InDelta(t, 200.0, o.VolumetricWeightGrams(), 1e-9)
	})

	t.Run("volumetric and chargeable weight of a 2x2x2 box", func(t *testing.T) {
		d := validDraft()
		d.Length, d.Breadth, d.Height = 2, 2, 2
		d.ActualWeightGrams = 10

		o, fields := v.Validate(kernel.NewUUID(), d, now)

		require.Empty(t, fields)
		assert.InDelta(t, 1.6, o.VolumetricWeightGrams(), 1e-9)
		assert.InDelta(t, 10.0, o.ChargeableWeightGrams(), 1e-9)
	})

	t.Run("prepaid collectable is clamped to zero", func(t *testing.T) {
		d := validDraft()
		d.PaymentType = "prepaid"
		d.CollectableValue = decimal.NewFromInt(300)

		o, fields := v.Validate(kernel.NewUUID(), d, now)

		require.Empty(t, fields)
		assert.True(t, o.CollectableValue().IsZero())
	})

	t.Run("cod overage is a collectableValue field error", func(t *testing.T) {
		d := validDraft()
		d.DeclaredValue = decimal.NewFromInt(200)
		d.CollectableValue = decimal.NewFromInt(250)

		o, fields := v.Validate(kernel.NewUUID(), d, now)

		assert.Nil(t, o)
		require.Len(t, fields, 1)
		assert.Equal(t, "collectableValue", fields[0].Field)
		assert.Contains(t, fields[0].Message, "250.00 exceeds declared value 200.00")
	})

	t.Run("negative cod collectable", func(t *testing.T) {
		d := validDraft()
		d.CollectableValue = decimal.NewFromInt(-1)

		_, fields := v.Validate(kernel.NewUUID(), d, now)
		assert.Equal(t, []string{"collectableValue"}, fieldNames(fields))
	})

	t.Run("every invalid field is reported", func(t *testing.T) {
		d := services.OrderDraft{
			PaymentType:    "upi",
			ConsigneePhone: "98765",
			Pincode:        "5600011",
			Length:         0,
			Breadth:        -1,
			Height:         3,
		}

		o, fields := v.Validate(kernel.NewUUID(), d, now)

		assert.Nil(t, o)
		assert.ElementsMatch(t, []string{
			"paymentType",
			"consignee.name", "consignee.addressLine1", "consignee.city", "consignee.state",
			"consignee.phone", "consignee.pincode",
			"length", "breadth",
			"actualWeight", "quantity", "declaredValue",
		}, fieldNames(fields))
	})

	t.Run("payment type is case-insensitive", func(t *testing.T) {
		d := validDraft()
		d.PaymentType = " COD "

		o, fields := v.Validate(kernel.NewUUID(), d, now)
		require.Empty(t, fields)
		assert.Equal(t, order.COD, o.PaymentType())
	})
}

func TestOrderValidator_ValidateDimensions(t *testing.T) {
	v := services.NewOrderValidator()

	d, fields := v.ValidateDimensions(5, 4, 3)
	require.Empty(t, fields)
	assert.InDelta(t, 12.0, d.VolumetricWeightGrams(), 1e-9)

	_, fields = v.ValidateDimensions(5, 0, -3)
	assert.Equal(t, []string{"breadth", "height"}, fieldNames(fields))
}
