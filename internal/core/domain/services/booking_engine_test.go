package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingEngine_Book(t *testing.T) {
	engine := services.NewBookingEngine()
	pickup := newWarehouse(t, "Mumbai", "Maharashtra", "400072")
	returnTo := newWarehouse(t, "Thane", "Maharashtra", "400601")

	t.Run("books two cod orders", func(t *testing.T) {
		a := newOrder(t, nil)
		b := newOrder(t, func(d *services.OrderDraft) { d.CollectableValue = decimal.RequireFromString("299.50") })
		id := kernel.NewUUID()

		s, err := engine.Book(id, []*order.Order{a, b}, newQuote(t, "30"), pickup, returnTo, "FX01", now)

		require.NoError(t, err)
		assert.True(t, s.ID().IsEqual(id))
		assert.Equal(t, shipment.Pending, s.Status())
		assert.Equal(t, "1499.50", s.CODAmount().String())
		assert.Equal(t, order.COD, s.PaymentType())
		assert.Equal(t, "560001", s.Destination().String())
		assert.True(t, s.PickupWarehouseID().IsEqual(pickup.ID()))
		assert.True(t, s.ReturnWarehouseID().IsEqual(returnTo.ID()))
		assert.Equal(t, "70.00", s.Quote().Total().String(), "the booked price is frozen")
		assert.True(t, a.IsShipped())
		assert.True(t, b.IsShipped())
	})

	t.Run("already shipped order is a conflict", func(t *testing.T) {
		a := newOrder(t, nil)
		b := newOrder(t, nil)
		_, err := engine.Book(kernel.NewUUID(), []*order.Order{a}, newQuote(t, "30"), pickup, returnTo, "FX02", now)
		require.NoError(t, err)

		_, err = engine.Book(kernel.NewUUID(), []*order.Order{b, a}, newQuote(t, "30"), pickup, returnTo, "FX03", now)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.False(t, b.IsShipped(), "a rejected booking leaves every order untouched")
	})

	t.Run("cancelled order", func(t *testing.T) {
		a := newOrder(t, nil)
		require.NoError(t, a.Cancel())

		_, err := engine.Book(kernel.NewUUID(), []*order.Order{a}, newQuote(t, "30"), pickup, returnTo, "FX04", now)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("mixed payment types and destinations", func(t *testing.T) {
		a := newOrder(t, nil)
		b := newOrder(t, func(d *services.OrderDraft) {
			d.PaymentType = "prepaid"
			d.Pincode = "560034"
		})

		_, err := engine.Book(kernel.NewUUID(), []*order.Order{a, b}, newQuote(t, "30"), pickup, returnTo, "FX05", now)

		var validation *errs.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Len(t, validation.Fields, 2)
		assert.False(t, a.IsShipped())
	})

	t.Run("prepaid booking with a cod charge in the quote", func(t *testing.T) {
		a := newOrder(t, func(d *services.OrderDraft) { d.PaymentType = "prepaid" })

		_, err := engine.Book(kernel.NewUUID(), []*order.Order{a}, newQuote(t, "30"), pickup, returnTo, "FX06", now)

		var validation *errs.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.True(t, validation.Has("quote.codCharge"))
	})

	t.Run("no orders", func(t *testing.T) {
		_, err := engine.Book(kernel.NewUUID(), nil, newQuote(t, "30"), pickup, returnTo, "FX07", now)
		require.ErrorIs(t, err, services.ErrNoOrdersToBook)
	})

	t.Run("missing warehouse", func(t *testing.T) {
		a := newOrder(t, nil)
		_, err := engine.Book(kernel.NewUUID(), []*order.Order{a}, newQuote(t, "30"), nil, returnTo, "FX08", now)
		require.Error(t, err)
		assert.False(t, a.IsShipped())
	})
}

func TestBookingEngine_Cancel(t *testing.T) {
	engine := services.NewBookingEngine()
	pickup := newWarehouse(t, "Mumbai", "Maharashtra", "400072")

	t.Run("pending shipment releases its orders", func(t *testing.T) {
		a := newOrder(t, nil)
		s, err := engine.Book(kernel.NewUUID(), []*order.Order{a}, newQuote(t, "30"), pickup, pickup, "FX10", now)
		require.NoError(t, err)

		require.NoError(t, engine.Cancel(s, []*order.Order{a}, now.Add(time.Minute)))

		assert.Equal(t, shipment.Cancelled, s.Status())
		assert.False(t, a.IsShipped())
	})

	t.Run("in-transit shipment is rejected", func(t *testing.T) {
		a := newOrder(t, nil)
		s, err := engine.Book(kernel.NewUUID(), []*order.Order{a}, newQuote(t, "30"), pickup, pickup, "FX11", now)
		require.NoError(t, err)
		_, err = s.ApplyCarrierStatus(shipment.CarrierInTransit, now.Add(time.Hour))
		require.NoError(t, err)

		err = engine.Cancel(s, []*order.Order{a}, now.Add(2*time.Hour))

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.True(t, a.IsShipped())
	})

	t.Run("foreign orders are rejected", func(t *testing.T) {
		a := newOrder(t, nil)
		other := newOrder(t, nil)
		s, err := engine.Book(kernel.NewUUID(), []*order.Order{a}, newQuote(t, "30"), pickup, pickup, "FX12", now)
		require.NoError(t, err)

		err = engine.Cancel(s, []*order.Order{other}, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, shipment.Pending, s.Status())
	})
}
