// Package order provides the Order aggregate: a merchant's shipping request with its
// consignee, declared and collectable values, package dimensions and weights.
//
// The package includes:
//   - Order: the aggregate root, mutable until shipped, immutable afterwards
//   - PaymentType: prepaid or cash on delivery
//   - Consignee: the validated delivery contact and address
//
// Key business rules:
//   - Prepaid orders have a collectable value of exactly zero
//   - COD orders never collect more than the declared value
//   - Volumetric weight is derived from dimensions (L*B*H/5) and recomputed on every change
//   - Chargeable weight is the larger of actual and volumetric weight
//   - An order is attached to at most one active shipment (the shipped flag is the guard)
//   - Only unshipped orders can be cancelled or have their dimensions changed
package order
