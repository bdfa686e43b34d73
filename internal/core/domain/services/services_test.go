package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/ratecard"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 8, 3, 11, 0, 0, 0, time.UTC)

func validDraft() services.OrderDraft {
	return services.OrderDraft{
		PaymentType:       "cod",
		ConsigneeName:     "Asha Verma",
		ConsigneePhone:    "9876543210",
		AddressLine1:      "14 MG Road",
		City:              "Bengaluru",
		State:             "Karnataka",
		Pincode:           "560001",
		DeclaredValue:     decimal.NewFromInt(1200),
		CollectableValue:  decimal.NewFromInt(1200),
		Length:            10,
		Breadth:           10,
		Height:            10,
		ActualWeightGrams: 400,
		Quantity:          1,
		ProductType:       "apparel",
	}
}

func newOrder(t *testing.T, mutate func(d *services.OrderDraft)) *order.Order {
	t.Helper()
	d := validDraft()
	if mutate != nil {
		mutate(&d)
	}
	o, fields := services.NewOrderValidator().Validate(kernel.NewUUID(), d, now)
	require.Empty(t, fields)
	return o
}

func newWarehouse(t *testing.T, city, state, pin string) *warehouse.Warehouse {
	t.Helper()
	p, err := kernel.NewPincode(pin)
	require.NoError(t, err)
	w, err := warehouse.NewWarehouse(kernel.NewUUID(), city+" FC", "Plot 1", city, state, p)
	require.NoError(t, err)
	return w
}

func newCard(t *testing.T, carrier, service string, zone ratecard.Zone, baseFreight string) *ratecard.RateCard {
	t.Helper()
	rc, err := ratecard.NewRateCard(carrier, service, zone, ratecard.Terms{
		BaseWeightGrams:   500,
		BaseFreight:       kernel.MustMoney(baseFreight),
		SlabGrams:         500,
		SlabFreight:       kernel.MustMoney("20"),
		MaxWeightGrams:    5000,
		CODFlatFee:        kernel.MustMoney("30"),
		CODPercent:        decimal.RequireFromString("2"),
		RTORiskFee:        kernel.MustMoney("12.50"),
		RiskyProductTypes: []string{"electronics"},
	})
	require.NoError(t, err)
	return rc
}

func newQuote(t *testing.T, cod string) ratecard.Quote {
	t.Helper()
	freight := kernel.MustMoney("40")
	codCharge := kernel.MustMoney(cod)
	q, err := ratecard.NewQuote("delhivery", "surface", ratecard.MetroToMetro, 400,
		freight, codCharge, kernel.ZeroMoney(), freight.Add(codCharge))
	require.NoError(t, err)
	return q
}
