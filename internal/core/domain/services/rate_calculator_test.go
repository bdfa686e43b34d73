package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/ratecard"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateCalculator_Quote(t *testing.T) {
	calc := services.NewRateCalculator(services.NewZoneClassifier())
	pickup := newWarehouse(t, "Mumbai", "Maharashtra", "400072")

	cards := []*ratecard.RateCard{
		newCard(t, "xpressbees", "surface", ratecard.MetroToMetro, "38"),
		newCard(t, "delhivery", "surface", ratecard.MetroToMetro, "38"),
		newCard(t, "delhivery", "air", ratecard.MetroToMetro, "55"),
		newCard(t, "bluedart", "air", ratecard.MetroToMetro, "30"),
		newCard(t, "delhivery", "surface", ratecard.WithinState, "25"),
	}

	t.Run("cod quotes are priced and sorted", func(t *testing.T) {
		o := newOrder(t, nil)

		quotes, err := calc.Quote(o, pickup, o.Consignee().Pincode(), cards, nil)

		require.NoError(t, err)
		require.Len(t, quotes, 4)

		// 1200 collectable at 2% = 24.00 < flat 30.00
		first := quotes[0]
		assert.Equal(t, "bluedart", first.Carrier())
		assert.Equal(t, ratecard.MetroToMetro, first.Zone())
		assert.InDelta(t, 400.0, first.ChargeableWeightGrams(), 1e-9)
		assert.Equal(t, "30.00", first.Freight().String())
		assert.Equal(t, "30.00", first.CODCharge().String())
		assert.True(t, first.OtherCharges().IsZero())
		assert.Equal(t, "60.00", first.Total().String())

		assert.Equal(t, []string{"bluedart/air", "delhivery/surface", "xpressbees/surface", "delhivery/air"},
			quoteKeys(quotes), "ties on total are broken by carrier then service")
	})

	t.Run("slabs, percentage cod and rto risk fee", func(t *testing.T) {
		o := newOrder(t, func(d *services.OrderDraft) {
			d.ActualWeightGrams = 1201
			d.DeclaredValue = decimal.NewFromInt(5000)
			d.CollectableValue = decimal.NewFromInt(5000)
			d.ProductType = "Electronics"
		})

		quotes, err := calc.Quote(o, pickup, o.Consignee().Pincode(), cards, []string{"BlueDart"})

		require.NoError(t, err)
		require.Len(t, quotes, 1)
		q := quotes[0]
		// 30 + 2 slabs * 20
		assert.Equal(t, "70.00", q.Freight().String())
		assert.Equal(t, "100.00", q.CODCharge().String())
		assert.Equal(t, "12.50", q.OtherCharges().String())
		assert.Equal(t, "182.50", q.Total().String())
	})

	t.Run("prepaid orders carry no cod charge", func(t *testing.T) {
		o := newOrder(t, func(d *services.OrderDraft) { d.PaymentType = "prepaid" })

		quotes, err := calc.Quote(o, pickup, o.Consignee().Pincode(), cards, []string{"delhivery"})

		require.NoError(t, err)
		require.Len(t, quotes, 2)
		for _, q := range quotes {
			assert.True(t, q.CODCharge().IsZero())
			assert.Equal(t, "delhivery", q.Carrier())
		}
	})

	t.Run("volumetric weight drives the chargeable weight", func(t *testing.T) {
		o := newOrder(t, func(d *services.OrderDraft) {
			d.Length, d.Breadth, d.Height = 20, 20, 15
			d.ActualWeightGrams = 100
		})

		quotes, err := calc.Quote(o, pickup, o.Consignee().Pincode(), cards, []string{"bluedart"})

		require.NoError(t, err)
		assert.InDelta(t, 1200.0, quotes[0].ChargeableWeightGrams(), 1e-9)
		assert.Equal(t, "70.00", quotes[0].Freight().String())
	})

	t.Run("no matching card is an error, never a zero quote", func(t *testing.T) {
		o := newOrder(t, nil)

		quotes, err := calc.Quote(o, pickup, o.Consignee().Pincode(), cards, []string{"ecom"})

		assert.Nil(t, quotes)
		var unavailable *errs.RateUnavailableError
		require.ErrorAs(t, err, &unavailable)
		assert.Equal(t, "metro-to-metro", unavailable.Zone)
		assert.Equal(t, []string{"ecom"}, unavailable.Carriers)
		assert.ErrorIs(t, err, errs.ErrRateUnavailable)
	})

	t.Run("cards over their max weight do not match", func(t *testing.T) {
		o := newOrder(t, func(d *services.OrderDraft) { d.ActualWeightGrams = 5001 })

		_, err := calc.Quote(o, pickup, o.Consignee().Pincode(), cards, nil)
		require.ErrorIs(t, err, errs.ErrRateUnavailable)
	})

	t.Run("destination other than the consignee pincode", func(t *testing.T) {
		o := newOrder(t, nil)
		pune, err := kernel.NewPincode("411001")
		require.NoError(t, err)

		quotes, err := calc.Quote(o, pickup, pune, cards, nil)

		require.NoError(t, err)
		require.Len(t, quotes, 1)
		assert.Equal(t, ratecard.WithinState, quotes[0].Zone())
	})

	t.Run("output is deterministic", func(t *testing.T) {
		o := newOrder(t, nil)
		reversed := []*ratecard.RateCard{cards[4], cards[3], cards[2], cards[1], cards[0]}

		a, err := calc.Quote(o, pickup, o.Consignee().Pincode(), cards, nil)
		require.NoError(t, err)
		b, err := calc.Quote(o, pickup, o.Consignee().Pincode(), reversed, nil)
		require.NoError(t, err)

		assert.Equal(t, a, b)
	})
}

func quoteKeys(quotes []ratecard.Quote) []string {
	keys := make([]string, len(quotes))
	for i, q := range quotes {
		keys[i] = q.Carrier() + "/" + q.Service()
	}
	return keys
}

func TestRateCalculator_QuoteShipment(t *testing.T) {
	calc := services.NewRateCalculator(services.NewZoneClassifier())
	pickup := newWarehouse(t, "Mumbai", "Maharashtra", "400072")
	cards := []*ratecard.RateCard{newCard(t, "bluedart", "air", ratecard.MetroToMetro, "30")}

	a := newOrder(t, nil)
	b := newOrder(t, func(d *services.OrderDraft) { d.ProductType = "electronics" })

	quotes, err := calc.QuoteShipment([]*order.Order{a, b}, pickup, cards, nil)

	require.NoError(t, err)
	require.Len(t, quotes, 1)
	q := quotes[0]
	assert.InDelta(t, 800.0, q.ChargeableWeightGrams(), 1e-9)
	// 30 + one 20 slab; 2% of 2400 beats the 30 flat fee; one risk fee for the parcel
	assert.Equal(t, "50.00", q.Freight().String())
	assert.Equal(t, "48.00", q.CODCharge().String())
	assert.Equal(t, "12.50", q.OtherCharges().String())
	assert.Equal(t, "110.50", q.Total().String())

	_, err = calc.QuoteShipment(nil, pickup, cards, nil)
	require.ErrorIs(t, err, services.ErrNoOrdersToBook)
}

func TestRateCalculator_Confirm(t *testing.T) {
	calc := services.NewRateCalculator(services.NewZoneClassifier())
	pickup := newWarehouse(t, "Mumbai", "Maharashtra", "400072")
	cards := []*ratecard.RateCard{
		newCard(t, "bluedart", "air", ratecard.MetroToMetro, "30"),
		newCard(t, "delhivery", "surface", ratecard.MetroToMetro, "38"),
	}
	a := newOrder(t, nil)
	b := newOrder(t, nil)

	t.Run("calculated quote is returned", func(t *testing.T) {
		quotes, err := calc.QuoteShipment([]*order.Order{a, b}, pickup, cards, []string{"delhivery"})
		require.NoError(t, err)
		submitted, err := ratecard.NewQuote("Delhivery", "Surface", quotes[0].Zone(),
			float64(float32(quotes[0].ChargeableWeightGrams())),
			quotes[0].Freight(), quotes[0].CODCharge(), quotes[0].OtherCharges(), quotes[0].Total())
		require.NoError(t, err)

		confirmed, err := calc.Confirm(submitted, []*order.Order{a, b}, pickup, cards)

		require.NoError(t, err)
		assert.Equal(t, quotes[0], confirmed)
	})

	t.Run("quote priced for one of two orders is a conflict", func(t *testing.T) {
		single, err := calc.Quote(a, pickup, a.Consignee().Pincode(), cards, []string{"bluedart"})
		require.NoError(t, err)

		_, err = calc.Confirm(single[0], []*order.Order{a, b}, pickup, cards)

		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("lowered price with a consistent breakdown is a conflict", func(t *testing.T) {
		cheap, err := ratecard.NewQuote("bluedart", "air", ratecard.MetroToMetro, 400,
			kernel.MustMoney("1"), kernel.ZeroMoney(), kernel.ZeroMoney(), kernel.MustMoney("1"))
		require.NoError(t, err)

		_, err = calc.Confirm(cheap, []*order.Order{a}, pickup, cards)

		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("carrier without a card is unavailable", func(t *testing.T) {
		free, err := ratecard.NewQuote("nobody", "free", ratecard.Regional, 1,
			kernel.ZeroMoney(), kernel.ZeroMoney(), kernel.ZeroMoney(), kernel.ZeroMoney())
		require.NoError(t, err)

		_, err = calc.Confirm(free, []*order.Order{a}, pickup, cards)

		var unavailable *errs.RateUnavailableError
		require.ErrorAs(t, err, &unavailable)
		assert.Equal(t, "metro-to-metro", unavailable.Zone)
		assert.Equal(t, []string{"nobody"}, unavailable.Carriers)
	})

	t.Run("unknown service of a known carrier is unavailable", func(t *testing.T) {
		ground, err := ratecard.NewQuote("bluedart", "ground", ratecard.MetroToMetro, 400,
			kernel.MustMoney("30"), kernel.MustMoney("30"), kernel.ZeroMoney(), kernel.MustMoney("60"))
		require.NoError(t, err)

		_, err = calc.Confirm(ground, []*order.Order{a}, pickup, cards)

		require.ErrorIs(t, err, errs.ErrRateUnavailable)
	})
}
