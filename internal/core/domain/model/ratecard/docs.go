// Package ratecard holds carrier pricing: the Zone classification result, the RateCard
// that prices one (carrier, service, zone) combination, and the Quote value produced
// from it.
//
// Pricing rules:
//   - Freight: base freight up to the base weight, plus one slab freight per started
//     slab beyond it.
//   - COD charge: max(flat fee, percent of collectable value), for COD orders only.
//   - Other charges: the RTO risk fee when the product type is listed as risky.
//   - Total: freight + COD charge + other charges, every amount rounded to 2 places.
//
// A card whose maximum weight is exceeded does not match; callers report that as
// errs.RateUnavailableError rather than falling back to a zero price.
package ratecard
