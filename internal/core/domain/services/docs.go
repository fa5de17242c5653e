// Package services provides domain services that span more than one aggregate
// of the food dispatch domain.
//
// The package includes:
//   - OrderPricer: prices requested meals into line items and sums the order total
//
// Pricing reads the catalog and produces order line items, so it lives here
// rather than on either aggregate.
package services
