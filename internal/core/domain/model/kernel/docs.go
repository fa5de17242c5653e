// Package kernel provides the shared value objects of the order dispatch domain.
//
// The package includes:
//   - UUID: identifier for orders, meals, restaurants and accounts
//   - Money: non-negative decimal amount used for meal prices, sub-totals and totals
//
// Both are immutable and must be created through their constructors; zero values
// fail Validate.
package kernel
