package commands_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/identity"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func newIdentity(t *testing.T, kind identity.Kind) identity.Identity {
	t.Helper()
	id, err := identity.NewIdentity(kind, kernel.NewUUID())
	require.NoError(t, err)
	return id
}

func newMeal(t *testing.T, restaurantID kernel.UUID, price string) *catalog.Meal {
	t.Helper()
	p, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	m, err := catalog.NewMeal(kernel.NewUUID(), restaurantID, "meal", p, time.Now())
	require.NoError(t, err)
	return m
}

func restoreOrder(t *testing.T, status order.Status, restaurantID kernel.UUID, courierID *kernel.UUID) *order.Order {
	t.Helper()
	price, err := kernel.MoneyFromString("7.00")
	require.NoError(t, err)
	item, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), 1, price)
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), restaurantID, courierID,
		status, "1 Main St", []*order.LineItem{item}, price, time.Now(), nil)
	require.NoError(t, err)
	return o
}
