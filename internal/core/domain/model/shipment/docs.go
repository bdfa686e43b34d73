// Package shipment provides the Shipment aggregate created by booking one or more
// orders with a chosen quote.
//
// A shipment owns exactly the orders it was booked with. While it is active (any state
// except cancelled) none of those orders can be booked again. The charge breakdown is
// stored as a frozen ratecard.Quote so that later rate card changes never alter the
// booked price.
//
// Carrier webhooks speak CarrierStatus; ApplyCarrierStatus maps each report onto a
// Status and ignores reports that would not change it.
package shipment
