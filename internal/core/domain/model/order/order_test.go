package order_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConsignee(t *testing.T) order.Consignee {
	t.Helper()
	phone, err := kernel.NewMobile("9876543210")
	require.NoError(t, err)
	pin, err := kernel.NewPincode("560034")
	require.NoError(t, err)
	c, err := order.NewConsignee("Asha Rao", phone, "12 MG Road", "", "Bengaluru", "Karnataka", pin)
	require.NoError(t, err)
	return c
}

func newDetails(t *testing.T, paymentType order.PaymentType, declared, collectable string) order.Details {
	t.Helper()
	dims, err := kernel.NewDimensions(2, 2, 2)
	require.NoError(t, err)
	return order.Details{
		PaymentType:       paymentType,
		Consignee:         newConsignee(t),
		DeclaredValue:     kernel.MustMoney(declared),
		CollectableValue:  kernel.MustMoney(collectable),
		Dimensions:        dims,
		ActualWeightGrams: 10,
		Quantity:          1,
		ProductType:       " Apparel ",
	}
}

func TestNewOrder(t *testing.T) {
	createdAt := time.Date(2026, 10, 1, 10, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))

	t.Run("should create open prepaid order", func(t *testing.T) {
		id := kernel.NewUUID()
		o, err := order.NewOrder(id, newDetails(t, order.Prepaid, "200", "0"), createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Prepaid, o.PaymentType())
		assert.True(t, o.CollectableValue().IsZero())
		assert.False(t, o.IsShipped())
		assert.False(t, o.IsCancelled())
		assert.Equal(t, "apparel", o.ProductType())
		assert.Equal(t, time.UTC, o.CreatedAt().Location())
	})

	t.Run("should derive volumetric and chargeable weight", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), newDetails(t, order.Prepaid, "200", "0"), createdAt)
		require.NoError(t, err)

		assert.InDelta(t, 1.6, o.VolumetricWeightGrams(), 1e-9)
		assert.InDelta(t, 10.0, o.ChargeableWeightGrams(), 1e-9)
	})

	t.Run("should reject collectable value on prepaid order", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), newDetails(t, order.Prepaid, "200", "50"), createdAt)
		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "collectableValue")
	})

	t.Run("should reject cod collectable above declared value", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), newDetails(t, order.COD, "200", "250"), createdAt)
		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "exceeds declared value")
	})

	t.Run("should accept cod collectable equal to declared value", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), newDetails(t, order.COD, "200", "200"), createdAt)
		require.NoError(t, err)
		assert.Equal(t, "200.00", o.CollectableValue().String())
	})

	t.Run("should report every violation at once", func(t *testing.T) {
		details := newDetails(t, order.UnknownPayment, "0", "0")
		details.Quantity = 0
		details.ActualWeightGrams = -1
		details.Dimensions = kernel.Dimensions{}

		_, err := order.NewOrder(kernel.UUID{}, details, createdAt)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "dimensions must be created")
		assert.Contains(t, err.Error(), "actualWeight")
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "paymentType")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil order", func(t *testing.T) {
		var o *order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("zero value order", func(t *testing.T) {
		var o order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_UpdateDimensions(t *testing.T) {
	t.Run("recomputes volumetric weight", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), newDetails(t, order.Prepaid, "500", "0"), time.Now())
		require.NoError(t, err)

		dims, err := kernel.NewDimensions(30, 20, 10)
		require.NoError(t, err)
		require.NoError(t, o.UpdateDimensions(dims))

		assert.InDelta(t, 1200.0, o.VolumetricWeightGrams(), 1e-9)
		assert.InDelta(t, 1200.0, o.ChargeableWeightGrams(), 1e-9)
	})

	t.Run("rejected once shipped", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), newDetails(t, order.Prepaid, "500", "0"), time.Now())
		require.NoError(t, err)
		require.NoError(t, o.MarkShipped())

		dims, _ := kernel.NewDimensions(30, 20, 10)
		err = o.UpdateDimensions(dims)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.InDelta(t, 1.6, o.VolumetricWeightGrams(), 1e-9)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("ship twice is a conflict", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), newDetails(t, order.COD, "500", "500"), time.Now())

		require.NoError(t, o.MarkShipped())
		err := o.MarkShipped()
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("revert makes the order bookable again", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), newDetails(t, order.COD, "500", "500"), time.Now())

		require.NoError(t, o.MarkShipped())
		require.NoError(t, o.RevertShipment())
		assert.False(t, o.IsShipped())
		require.NoError(t, o.MarkShipped())
	})

	t.Run("revert on open order is rejected", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), newDetails(t, order.COD, "500", "500"), time.Now())
		require.ErrorIs(t, o.RevertShipment(), errs.ErrInvalidTransition)
	})

	t.Run("cancel open order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), newDetails(t, order.Prepaid, "500", "0"), time.Now())

		require.NoError(t, o.Cancel())
		assert.True(t, o.IsCancelled())
		require.ErrorIs(t, o.MarkShipped(), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.Cancel(), errs.ErrInvalidTransition)
	})

	t.Run("cancel shipped order is rejected", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), newDetails(t, order.Prepaid, "500", "0"), time.Now())
		require.NoError(t, o.MarkShipped())

		require.ErrorIs(t, o.Cancel(), errs.ErrInvalidTransition)
		assert.False(t, o.IsCancelled())
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("keeps lifecycle flags", func(t *testing.T) {
		o, err := order.RestoreOrder(id, newDetails(t, order.COD, "300", "120"), true, false, time.Now())
		require.NoError(t, err)
		assert.True(t, o.IsShipped())
		assert.Equal(t, "120.00", o.CollectableValue().String())
	})

	t.Run("rejects shipped and cancelled together", func(t *testing.T) {
		_, err := order.RestoreOrder(id, newDetails(t, order.COD, "300", "120"), true, true, time.Now())
		require.Error(t, err)
	})
}

func TestParsePaymentType(t *testing.T) {
	p, err := order.ParsePaymentType("cod")
	require.NoError(t, err)
	assert.Equal(t, order.COD, p)
	assert.Equal(t, "cod", p.String())

	p, err = order.ParsePaymentType("prepaid")
	require.NoError(t, err)
	assert.Equal(t, order.Prepaid, p)

	_, err = order.ParsePaymentType("COD ")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, "unknown", order.UnknownPayment.String())
}

func TestNewConsignee(t *testing.T) {
	phone, _ := kernel.NewMobile("9876543210")
	pin, _ := kernel.NewPincode("110001")

	t.Run("requires name, address line, city and state", func(t *testing.T) {
		_, err := order.NewConsignee(" ", phone, "", "", "", "", pin)
		require.Error(t, err)
		for _, field := range []string{"consignee.name", "consignee.addressLine1", "consignee.city", "consignee.state"} {
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("requires constructed phone and pincode", func(t *testing.T) {
		_, err := order.NewConsignee("Ravi", kernel.Mobile{}, "1 Janpath", "", "New Delhi", "Delhi", kernel.Pincode{})
		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrMobileIsNotConstructed)
		assert.ErrorIs(t, err, kernel.ErrPincodeIsNotConstructed)
	})
}
