package orderrepo

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/order"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	// ConsumerActiveIndex allows at most one not-yet-delivered order per consumer.
	ConsumerActiveIndex = "ux_orders_consumer_active"

	// CourierOnTheWayIndex allows at most one order on the way per courier.
	CourierOnTheWayIndex = "ux_orders_courier_on_the_way"

	uniqueViolationCode = "23505"
	numericOverflowCode = "22003"
)

// IndexStatements returns the DDL of the partial unique indexes that make
// the dispatch exclusivity rules atomic. GORM tags cannot express them.
func IndexStatements() []string {
	return []string{
		fmt.Sprintf(
			"CREATE UNIQUE INDEX IF NOT EXISTS %s ON orders (consumer_id) WHERE status <> %d",
			ConsumerActiveIndex, int(order.Delivered),
		),
		fmt.Sprintf(
			"CREATE UNIQUE INDEX IF NOT EXISTS %s ON orders (courier_id) WHERE status = %d",
			CourierOnTheWayIndex, int(order.OnTheWay),
		),
	}
}

// isUniqueViolation reports whether err is a unique violation of constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == constraint
}

func isNumericOverflow(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == numericOverflowCode
}
