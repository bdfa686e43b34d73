// Package services provides the domain services of the fulfillment core: operations
// that span more than one aggregate or need reference data no aggregate owns.
//
// The package includes:
//   - OrderValidator: turns merchant drafts into normalized orders plus field errors
//   - ZoneClassifier: resolves pincodes and classifies routes into rate zones
//   - RateCalculator: prices an order against the carrier catalog
//   - BookingEngine: books orders into a shipment and cancels pending shipments
//   - NDRWorkflow: applies carrier reports to a shipment and its NDR case
//   - RemittanceLedger: selects delivered COD shipments for settlement
//
// Every service is pure. Persistence, transactions and the concurrency guards around
// them live in the application layer.
package services
