package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/ratecard"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var bookedAt = time.Date(2026, 8, 3, 11, 0, 0, 0, time.UTC)

func validDraft() services.OrderDraft {
	return services.OrderDraft{
		PaymentType:       "cod",
		ConsigneeName:     "Ravi Kumar",
		ConsigneePhone:    "9123456780",
		AddressLine1:      "22 Anna Salai",
		City:              "Chennai",
		State:             "Tamil Nadu",
		Pincode:           "600002",
		DeclaredValue:     decimal.NewFromInt(900),
		CollectableValue:  decimal.NewFromInt(900),
		Length:            20,
		Breadth:           15,
		Height:            10,
		ActualWeightGrams: 700,
		Quantity:          1,
		ProductType:       "books",
	}
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, fields := services.NewOrderValidator().Validate(kernel.NewUUID(), validDraft(), bookedAt)
	require.Empty(t, fields)
	return o
}

func newWarehouse(t *testing.T) *warehouse.Warehouse {
	t.Helper()
	pin, err := kernel.NewPincode("560034")
	require.NoError(t, err)
	w, err := warehouse.NewWarehouse(kernel.NewUUID(), "Koramangala FC", "5th Block", "Bengaluru", "Karnataka", pin)
	require.NoError(t, err)
	return w
}

func newQuote(t *testing.T) ratecard.Quote {
	t.Helper()
	freight := kernel.MustMoney("58")
	cod := kernel.MustMoney("30")
	q, err := ratecard.NewQuote("bluedart", "express", ratecard.MetroToMetro, 700,
		freight, cod, kernel.ZeroMoney(), freight.Add(cod))
	require.NoError(t, err)
	return q
}

// newRateCards returns a catalog whose bluedart express card prices newOrder from
// newWarehouse exactly as newQuote.
func newRateCards(t *testing.T) []*ratecard.RateCard {
	t.Helper()
	card, err := ratecard.NewRateCard("bluedart", "express", ratecard.MetroToMetro, ratecard.Terms{
		BaseWeightGrams: 500,
		BaseFreight:     kernel.MustMoney("28"),
		SlabGrams:       500,
		SlabFreight:     kernel.MustMoney("30"),
		CODFlatFee:      kernel.MustMoney("30"),
	})
	require.NoError(t, err)
	return []*ratecard.RateCard{card}
}

// bookedShipment returns a pending shipment and its orders, already marked shipped.
func bookedShipment(t *testing.T) (*shipment.Shipment, []*order.Order) {
	t.Helper()
	orders := []*order.Order{newOrder(t)}
	w := newWarehouse(t)
	s, err := services.NewBookingEngine().Book(kernel.NewUUID(), orders, newQuote(t), w, w, "BD000001", bookedAt)
	require.NoError(t, err)
	return s, orders
}

func ids(orders []*order.Order) []kernel.UUID {
	out := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID())
	}
	return out
}
