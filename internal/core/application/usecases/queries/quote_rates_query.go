package queries

import (
	"context"
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/ratecard"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrQuoteRatesQueryIsNotConstructed = errors.New(
	"QuoteRatesQuery must be created via NewQuoteRatesQuery constructor",
)

// QuoteRatesQuery rates an order from a pickup warehouse across the carrier catalog.
//
// Example:
//
//	query, err := NewQuoteRatesQuery(orderID, warehouseID, "", []string{"delhivery", "bluedart"})
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
//	cheapest := resp.Quotes[0]
type QuoteRatesQuery struct {
	orderID     kernel.UUID
	warehouseID kernel.UUID
	destination *kernel.Pincode
	carriers    []string
	guard       guard.ConstructorGuard
}

// NewQuoteRatesQuery builds the query. An empty destination means the consignee's
// pincode; an empty carrier list means every carrier.
func NewQuoteRatesQuery(orderID, warehouseID kernel.UUID, destination string, carriers []string) (QuoteRatesQuery, error) {
	q := QuoteRatesQuery{
		orderID:     orderID,
		warehouseID: warehouseID,
		guard:       guard.NewConstructorGuard(),
	}
	if err := errors.Join(orderID.Validate(), warehouseID.Validate()); err != nil {
		return QuoteRatesQuery{}, err
	}

	if destination = strings.TrimSpace(destination); destination != "" {
		pin, err := kernel.NewPincode(destination)
		if err != nil {
			return QuoteRatesQuery{}, errs.NewValidationError(errs.NewFieldError("destinationPincode", "must be exactly 6 digits"))
		}
		q.destination = &pin
	}
	for _, c := range carriers {
		if c = strings.TrimSpace(c); c != "" {
			q.carriers = append(q.carriers, c)
		}
	}
	return q, nil
}

func (q QuoteRatesQuery) Validate() error {
	return q.guard.Validate(ErrQuoteRatesQueryIsNotConstructed)
}

// QuoteRatesQueryResponse lists the quotes cheapest first.
type QuoteRatesQueryResponse struct {
	OrderID               kernel.UUID
	Zone                  ratecard.Zone
	ChargeableWeightGrams float64
	Quotes                []ratecard.Quote
}

// QuoteRatesQueryHandler loads the order, warehouse and rate cards and prices them with
// the rate calculator. errs.RateUnavailableError is returned when no card applies.
type QuoteRatesQueryHandler struct {
	uowFactory ReadUoWFactory
	calculator services.RateCalculator
}

func NewQuoteRatesQueryHandler(uowFactory ReadUoWFactory, zones services.ZoneClassifier) QuoteRatesQueryHandler {
	return QuoteRatesQueryHandler{
		uowFactory: uowFactory,
		calculator: services.NewRateCalculator(zones),
	}
}

func (h QuoteRatesQueryHandler) Handle(ctx context.Context, q QuoteRatesQuery) (QuoteRatesQueryResponse, error) {
	if err := q.Validate(); err != nil {
		return QuoteRatesQueryResponse{}, err
	}

	return read(ctx, h.uowFactory, func(uow ReadUoW) (QuoteRatesQueryResponse, error) {
		o, err := uow.OrderRepository().Get(ctx, q.orderID)
		if err != nil {
			return QuoteRatesQueryResponse{}, err
		}
		origin, err := uow.WarehouseRepository().Get(ctx, q.warehouseID)
		if err != nil {
			return QuoteRatesQueryResponse{}, err
		}
		cards, err := uow.RateCardRepository().List(ctx)
		if err != nil {
			return QuoteRatesQueryResponse{}, err
		}

		destination := destinationOf(o, q.destination)
		quotes, err := h.calculator.Quote(o, origin, destination, cards, q.carriers)
		if err != nil {
			return QuoteRatesQueryResponse{}, err
		}

		return QuoteRatesQueryResponse{
			OrderID:               o.ID(),
			Zone:                  h.calculator.Zone(o, origin, destination),
			ChargeableWeightGrams: o.ChargeableWeightGrams(),
			Quotes:                quotes,
		}, nil
	})
}

func destinationOf(o *order.Order, override *kernel.Pincode) kernel.Pincode {
	if override != nil {
		return *override
	}
	return o.Consignee().Pincode()
}
