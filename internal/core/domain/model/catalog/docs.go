// Package catalog holds the read side of restaurants and their meals.
// Catalog writes are owned by another system; orders only read meal prices
// here and snapshot them into line items.
package catalog
