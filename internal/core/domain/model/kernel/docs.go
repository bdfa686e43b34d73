// Package kernel provides the value objects shared by every aggregate of the
// fulfillment core.
//
// The package includes:
//   - UUID: identifier of orders, shipments, NDR cases, warehouses and remittances
//   - Money: non-negative decimal rupee amount, rounded to two places
//   - Pincode and Mobile: digit-count validated contact values
//   - Dimensions: package size with the derived volumetric weight
//
// Value objects are immutable and constructed only through their New* functions;
// zero values fail Validate.
package kernel
