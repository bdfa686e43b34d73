package memory

import (
	"cmp"
	"context"
	"encoding/json"
	"slices"
	"time"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ndr"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/ratecard"
	"fulfillment/internal/core/domain/model/remittance"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

type orderRepository struct{ uow *UnitOfWork }

func (r orderRepository) Add(_ context.Context, aggregate *order.Order) error {
	return r.put(aggregate, true)
}

func (r orderRepository) Update(_ context.Context, aggregate *order.Order) error {
	return r.put(aggregate, false)
}

func (r orderRepository) put(aggregate *order.Order, create bool) error {
	st, err := r.uow.tx()
	if err != nil {
		return err
	}
	if err = aggregate.Validate(); err != nil {
		return err
	}
	key := aggregate.ID().String()
	_, exists := st.orders[key]
	if create && exists {
		return errs.NewConflictError("order", key, "already exists")
	}
	if !create && !exists {
		return errs.NewObjectNotFoundError("order", key)
	}
	if !create && st.orders[key].IsShipped() != aggregate.IsShipped() {
		return errs.NewConflictError("order", key, "shipment state changed concurrently")
	}
	stored, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}
	st.orders[key] = stored
	return nil
}

func (r orderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	st, err := r.uow.tx()
	if err != nil {
		return nil, err
	}
	stored, ok := st.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return cloneOrder(stored)
}

// GetForUpdate is Get; the store's transaction lock already excludes other writers.
func (r orderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.Get(ctx, id)
}

func (r orderRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	out := make([]*order.Order, 0, len(ids))
	for _, id := range ids {
		o, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (r orderRepository) List(_ context.Context, limit, offset int) ([]*order.Order, error) {
	st, err := r.uow.tx()
	if err != nil {
		return nil, err
	}
	all := make([]*order.Order, 0, len(st.orders))
	for _, o := range st.orders {
		all = append(all, o)
	}
	slices.SortFunc(all, func(a, b *order.Order) int {
		if c := b.CreatedAt().Compare(a.CreatedAt()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID().String(), b.ID().String())
	})

	out := make([]*order.Order, 0, limit)
	for i := offset; i < len(all) && len(out) < limit; i++ {
		o, cloneErr := cloneOrder(all[i])
		if cloneErr != nil {
			return nil, cloneErr
		}
		out = append(out, o)
	}
	return out, nil
}

func (r orderRepository) ClaimForShipment(_ context.Context, ids []kernel.UUID) error {
	st, err := r.uow.tx()
	if err != nil {
		return err
	}
	for _, id := range ids {
		key := id.String()
		stored, ok := st.orders[key]
		if !ok {
			return errs.NewObjectNotFoundError("order", key)
		}
		if stored.IsShipped() || stored.IsCancelled() {
			return errs.NewConflictError("order", key, "already attached to an active shipment or cancelled")
		}
		claimed, cloneErr := cloneOrder(stored)
		if cloneErr != nil {
			return cloneErr
		}
		if err = claimed.MarkShipped(); err != nil {
			return err
		}
		st.orders[key] = claimed
	}
	return nil
}

func (r orderRepository) ReleaseFromShipment(_ context.Context, ids []kernel.UUID) error {
	st, err := r.uow.tx()
	if err != nil {
		return err
	}
	for _, id := range ids {
		key := id.String()
		stored, ok := st.orders[key]
		if !ok {
			return errs.NewObjectNotFoundError("order", key)
		}
		if !stored.IsShipped() {
			continue
		}
		released, cloneErr := cloneOrder(stored)
		if cloneErr != nil {
			return cloneErr
		}
		if err = released.RevertShipment(); err != nil {
			return err
		}
		st.orders[key] = released
	}
	return nil
}

type shipmentRepository struct{ uow *UnitOfWork }

func (r shipmentRepository) Add(_ context.Context, aggregate *shipment.Shipment) error {
	return r.put(aggregate, true)
}

func (r shipmentRepository) Update(_ context.Context, aggregate *shipment.Shipment) error {
	return r.put(aggregate, false)
}

func (r shipmentRepository) put(aggregate *shipment.Shipment, create bool) error {
	st, err := r.uow.tx()
	if err != nil {
		return err
	}
	if err = aggregate.Validate(); err != nil {
		return err
	}
	key := aggregate.ID().String()
	_, exists := st.shipments[key]
	if create && exists {
		return errs.NewConflictError("shipment", key, "already exists")
	}
	if !create && !exists {
		return errs.NewObjectNotFoundError("shipment", key)
	}
	if create {
		for _, other := range st.shipments {
			if other.AWB() == aggregate.AWB() {
				return errs.NewConflictError("shipment", key, "awb "+aggregate.AWB()+" already booked")
			}
		}
	}
	stored, err := cloneShipment(aggregate)
	if err != nil {
		return err
	}
	st.shipments[key] = stored
	return nil
}

func (r shipmentRepository) Get(_ context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	st, err := r.uow.tx()
	if err != nil {
		return nil, err
	}
	stored, ok := st.shipments[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("shipment", id.String())
	}
	return cloneShipment(stored)
}

func (r shipmentRepository) ListDeliveredCOD(_ context.Context, period kernel.Period) ([]*shipment.Shipment, error) {
	st, err := r.uow.tx()
	if err != nil {
		return nil, err
	}
	out := make([]*shipment.Shipment, 0)
	for _, s := range st.shipments {
		at := s.DeliveredAt()
		if s.PaymentType() != order.COD || s.Status() != shipment.Delivered || at == nil || !period.Contains(*at) {
			continue
		}
		c, cloneErr := cloneShipment(s)
		if cloneErr != nil {
			return nil, cloneErr
		}
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b *shipment.Shipment) int {
		if c := a.DeliveredAt().Compare(*b.DeliveredAt()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID().String(), b.ID().String())
	})
	return out, nil
}

type ndrRepository struct{ uow *UnitOfWork }

func (r ndrRepository) Add(_ context.Context, aggregate *ndr.Case) error {
	return r.put(aggregate, true)
}

func (r ndrRepository) Update(_ context.Context, aggregate *ndr.Case) error {
	return r.put(aggregate, false)
}

func (r ndrRepository) put(aggregate *ndr.Case, create bool) error {
	st, err := r.uow.tx()
	if err != nil {
		return err
	}
	if err = aggregate.Validate(); err != nil {
		return err
	}
	key := aggregate.ID().String()
	_, exists := st.cases[key]
	if create && exists {
		return errs.NewConflictError("ndr case", key, "already exists")
	}
	if !create && !exists {
		return errs.NewObjectNotFoundError("ndr case", key)
	}
	stored, err := cloneCase(aggregate)
	if err != nil {
		return err
	}
	st.cases[key] = stored
	return nil
}

func (r ndrRepository) Get(_ context.Context, id kernel.UUID) (*ndr.Case, error) {
	st, err := r.uow.tx()
	if err != nil {
		return nil, err
	}
	stored, ok := st.cases[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("ndr case", id.String())
	}
	return cloneCase(stored)
}

func (r ndrRepository) GetOpenByShipment(_ context.Context, shipmentID kernel.UUID) (*ndr.Case, error) {
	st, err := r.uow.tx()
	if err != nil {
		return nil, err
	}
	for _, c := range st.cases {
		if c.ShipmentID().IsEqual(shipmentID) && !c.Status().IsTerminal() {
			return cloneCase(c)
		}
	}
	return nil, errs.NewObjectNotFoundError("open ndr case for shipment", shipmentID.String())
}

func (r ndrRepository) List(_ context.Context, status ndr.Status) ([]*ndr.Case, error) {
	st, err := r.uow.tx()
	if err != nil {
		return nil, err
	}
	out := make([]*ndr.Case, 0)
	for _, c := range st.cases {
		if status != ndr.UnknownStatus && c.Status() != status {
			continue
		}
		cloned, cloneErr := cloneCase(c)
		if cloneErr != nil {
			return nil, cloneErr
		}
		out = append(out, cloned)
	}
	slices.SortFunc(out, func(a, b *ndr.Case) int {
		if c := a.OpenedAt().Compare(b.OpenedAt()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID().String(), b.ID().String())
	})
	return out, nil
}

// Warehouses and rate cards are immutable once constructed, so they are stored as is.

type warehouseRepository struct{ uow *UnitOfWork }

func (r warehouseRepository) Add(_ context.Context, w *warehouse.Warehouse) error {
	st, err := r.uow.tx()
	if err != nil {
		return err
	}
	if err = w.Validate(); err != nil {
		return err
	}
	key := w.ID().String()
	if _, exists := st.warehouses[key]; exists {
		return errs.NewConflictError("warehouse", key, "already exists")
	}
	st.warehouses[key] = w
	return nil
}

func (r warehouseRepository) Get(_ context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	st, err := r.uow.tx()
	if err != nil {
		return nil, err
	}
	w, ok := st.warehouses[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("warehouse", id.String())
	}
	return w, nil
}

func (r warehouseRepository) List(_ context.Context) ([]*warehouse.Warehouse, error) {
	st, err := r.uow.tx()
	if err != nil {
		return nil, err
	}
	out := make([]*warehouse.Warehouse, 0, len(st.warehouses))
	for _, w := range st.warehouses {
		out = append(out, w)
	}
	slices.SortFunc(out, func(a, b *warehouse.Warehouse) int {
		if c := cmp.Compare(a.Name(), b.Name()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID().String(), b.ID().String())
	})
	return out, nil
}

type rateCardRepository struct{ uow *UnitOfWork }

func rateCardKey(c *ratecard.RateCard) string {
	return c.Carrier() + "|" + c.Service() + "|" + c.Zone().String()
}

func (r rateCardRepository) Upsert(_ context.Context, card *ratecard.RateCard) error {
	st, err := r.uow.tx()
	if err != nil {
		return err
	}
	if err = card.Validate(); err != nil {
		return err
	}
	st.rateCards[rateCardKey(card)] = card
	return nil
}

func (r rateCardRepository) List(_ context.Context) ([]*ratecard.RateCard, error) {
	st, err := r.uow.tx()
	if err != nil {
		return nil, err
	}
	out := make([]*ratecard.RateCard, 0, len(st.rateCards))
	for _, c := range st.rateCards {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b *ratecard.RateCard) int {
		return cmp.Or(
			cmp.Compare(a.Carrier(), b.Carrier()),
			cmp.Compare(a.Service(), b.Service()),
			cmp.Compare(a.Zone(), b.Zone()),
		)
	})
	return out, nil
}

type remittanceRepository struct{ uow *UnitOfWork }

func (r remittanceRepository) AddIfAbsent(_ context.Context, records []*remittance.Record) ([]*remittance.Record, error) {
	st, err := r.uow.tx()
	if err != nil {
		return nil, err
	}
	inserted := make([]*remittance.Record, 0, len(records))
	for _, rec := range records {
		if err = rec.Validate(); err != nil {
			return nil, err
		}
		shipmentKey := rec.ShipmentID().String()
		if _, done := st.remittanceFor[shipmentKey]; done {
			continue
		}
		stored, cloneErr := cloneRecord(rec)
		if cloneErr != nil {
			return nil, cloneErr
		}
		st.remittances[rec.ID().String()] = stored
		st.remittanceFor[shipmentKey] = rec.ID().String()
		inserted = append(inserted, rec)
	}
	return inserted, nil
}

func (r remittanceRepository) Update(_ context.Context, rec *remittance.Record) error {
	st, err := r.uow.tx()
	if err != nil {
		return err
	}
	if err = rec.Validate(); err != nil {
		return err
	}
	key := rec.ID().String()
	if _, ok := st.remittances[key]; !ok {
		return errs.NewObjectNotFoundError("remittance", key)
	}
	stored, err := cloneRecord(rec)
	if err != nil {
		return err
	}
	st.remittances[key] = stored
	return nil
}

func (r remittanceRepository) Get(_ context.Context, id kernel.UUID) (*remittance.Record, error) {
	st, err := r.uow.tx()
	if err != nil {
		return nil, err
	}
	stored, ok := st.remittances[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("remittance", id.String())
	}
	return cloneRecord(stored)
}

func (r remittanceRepository) RecordedShipments(_ context.Context, shipmentIDs []kernel.UUID) (map[string]struct{}, error) {
	st, err := r.uow.tx()
	if err != nil {
		return nil, err
	}
	out := make(map[string]struct{})
	for _, id := range shipmentIDs {
		if _, ok := st.remittanceFor[id.String()]; ok {
			out[id.String()] = struct{}{}
		}
	}
	return out, nil
}

func (r remittanceRepository) ListDelivered(_ context.Context, period kernel.Period) ([]*remittance.Record, error) {
	st, err := r.uow.tx()
	if err != nil {
		return nil, err
	}
	out := make([]*remittance.Record, 0)
	for _, rec := range st.remittances {
		if !period.Contains(rec.DeliveredAt()) {
			continue
		}
		c, cloneErr := cloneRecord(rec)
		if cloneErr != nil {
			return nil, cloneErr
		}
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b *remittance.Record) int {
		if c := a.DeliveredAt().Compare(b.DeliveredAt()); c != 0 {
			return c
		}
		return cmp.Compare(a.ShipmentID().String(), b.ShipmentID().String())
	})
	return out, nil
}

type carrierEventLog struct{ uow *UnitOfWork }

func (l carrierEventLog) Record(_ context.Context, event ports.CarrierEvent) (bool, error) {
	st, err := l.uow.tx()
	if err != nil {
		return false, err
	}
	if _, seen := st.carrierEvents[event.EventID]; seen {
		return false, nil
	}
	st.carrierEvents[event.EventID] = event
	return true, nil
}

type outbox struct{ uow *UnitOfWork }

func (o outbox) Append(_ context.Context, evts ...events.Event) error {
	st, err := o.uow.tx()
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	for _, e := range evts {
		payload, marshalErr := json.Marshal(e)
		if marshalErr != nil {
			return marshalErr
		}
		st.outbox = append(st.outbox, outboxRow{msg: ports.OutboxMessage{
			ID:        kernel.NewUUID(),
			Key:       e.AggregateID(),
			EventType: e.EventType(),
			Payload:   payload,
			CreatedAt: now,
		}})
	}
	return nil
}

func (o outbox) Pending(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	st, err := o.uow.tx()
	if err != nil {
		return nil, err
	}
	out := make([]ports.OutboxMessage, 0, limit)
	for _, row := range st.outbox {
		if len(out) == limit {
			break
		}
		if row.sentAt == nil {
			out = append(out, row.msg)
		}
	}
	return out, nil
}

func (o outbox) Lease(_ context.Context, limit int, now time.Time, ttl time.Duration) ([]ports.OutboxMessage, error) {
	st, err := o.uow.tx()
	if err != nil {
		return nil, err
	}
	out := make([]ports.OutboxMessage, 0, limit)
	for i := range st.outbox {
		if len(out) == limit {
			break
		}
		row := &st.outbox[i]
		if row.sentAt == nil && !row.leasedUntil.After(now) {
			row.leasedUntil = now.Add(ttl)
			out = append(out, row.msg)
		}
	}
	return out, nil
}

func (o outbox) MarkSent(_ context.Context, ids []kernel.UUID, at time.Time) error {
	stamp := at.UTC()
	return o.each(ids, func(row *outboxRow) {
		if row.sentAt == nil {
			row.sentAt = &stamp
		}
		row.leasedUntil = time.Time{}
	})
}

func (o outbox) Release(_ context.Context, ids []kernel.UUID) error {
	return o.each(ids, func(row *outboxRow) { row.leasedUntil = time.Time{} })
}

func (o outbox) each(ids []kernel.UUID, fn func(row *outboxRow)) error {
	st, err := o.uow.tx()
	if err != nil {
		return err
	}
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id.String()] = struct{}{}
	}
	for i := range st.outbox {
		if _, ok := wanted[st.outbox[i].msg.ID.String()]; ok {
			fn(&st.outbox[i])
		}
	}
	return nil
}
