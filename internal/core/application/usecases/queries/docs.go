// Package queries contains the read side of the service.
//
// Query handlers bypass the aggregates and read the tables with raw SQL
// through GORM, returning flat read models shaped for the HTTP boundary.
// Reads run at the database default isolation (read committed) and take
// no locks, so a listing may include an order that is claimed a moment
// later; the claim itself is what decides.
package queries
