package order_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func lineItem(t *testing.T, quantity int, subTotal string) *order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), quantity, money(t, subTotal))
	require.NoError(t, err)
	return item
}

func newCookingOrder(t *testing.T) (*order.Order, kernel.UUID) {
	t.Helper()
	restaurantID := kernel.NewUUID()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), restaurantID, "1 Main St",
		[]*order.LineItem{lineItem(t, 2, "20.00"), lineItem(t, 1, "5.00")},
		money(t, "25.00"), time.Now(),
	)
	require.NoError(t, err)
	return o, restaurantID
}

func TestNewOrder(t *testing.T) {
	id := kernel.NewUUID()
	consumerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	now := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

	t.Run("should create cooking order with summed total", func(t *testing.T) {
		items := []*order.LineItem{lineItem(t, 2, "20.00"), lineItem(t, 1, "5.00")}

		o, err := order.NewOrder(id, consumerID, restaurantID, "  1 Main St ", items, money(t, "25.00"), now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.ConsumerID().IsEqual(consumerID))
		assert.True(t, o.RestaurantID().IsEqual(restaurantID))
		assert.Equal(t, "1 Main St", o.Address())
		assert.Equal(t, order.Cooking, o.Status())
		assert.Equal(t, "25.00", o.Total().String())
		assert.Len(t, o.Items(), 2)
		assert.Nil(t, o.Courier())
		assert.Nil(t, o.PickedAt())
		assert.Equal(t, now, o.CreatedAt())
		assert.True(t, o.IsActive())
	})

	t.Run("should record creation transition", func(t *testing.T) {
		o, err := order.NewOrder(id, consumerID, restaurantID, "addr",
			[]*order.LineItem{lineItem(t, 1, "3.50")}, money(t, "3.50"), now)
		require.NoError(t, err)

		pending := o.PendingTransitions()
		require.Len(t, pending, 1)
		assert.Equal(t, order.Unknown, pending[0].From())
		assert.Equal(t, order.Cooking, pending[0].To())
		assert.True(t, pending[0].ActorID().IsEqual(consumerID))
		assert.Equal(t, now, pending[0].OccurredAt())

		o.ClearPendingTransitions()
		assert.Empty(t, o.PendingTransitions())
	})

	t.Run("should fail without items", func(t *testing.T) {
		o, err := order.NewOrder(id, consumerID, restaurantID, "addr", nil, kernel.ZeroMoney(), now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
	})

	t.Run("should fail with empty address", func(t *testing.T) {
		o, err := order.NewOrder(id, consumerID, restaurantID, "   ",
			[]*order.LineItem{lineItem(t, 1, "1.00")}, money(t, "1.00"), now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "address")
	})

	t.Run("should fail when total does not match items", func(t *testing.T) {
		o, err := order.NewOrder(id, consumerID, restaurantID, "addr",
			[]*order.LineItem{lineItem(t, 2, "20.00"), lineItem(t, 1, "5.00")}, money(t, "5.00"), now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "total is invalid")
	})

	t.Run("should fail with invalid identifiers", func(t *testing.T) {
		var nilID kernel.UUID

		o, err := order.NewOrder(nilID, nilID, restaurantID, "addr",
			[]*order.LineItem{lineItem(t, 1, "1.00")}, money(t, "1.00"), now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})
}

func TestNewLineItem(t *testing.T) {
	t.Run("should reject non-positive quantity", func(t *testing.T) {
		item, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), 0, money(t, "1.00"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, item)
	})

	t.Run("should reject unconstructed money", func(t *testing.T) {
		item, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), 1, kernel.Money{})

		require.Error(t, err)
		assert.Nil(t, item)
	})

	t.Run("nil item is not constructed", func(t *testing.T) {
		var item *order.LineItem
		require.ErrorIs(t, item.Validate(), order.ErrLineItemIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	items := func(t *testing.T) []*order.LineItem { return []*order.LineItem{lineItem(t, 1, "9.99")} }
	courierID := kernel.NewUUID()
	picked := time.Now()

	t.Run("should restore on the way order with courier", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			&courierID, order.OnTheWay, "addr", items(t), money(t, "9.99"), time.Now(), &picked)

		require.NoError(t, err)
		assert.Equal(t, order.OnTheWay, o.Status())
		assert.True(t, o.Courier().IsEqual(courierID))
		require.NotNil(t, o.PickedAt())
		assert.Empty(t, o.PendingTransitions())
	})

	t.Run("should reject ready order with courier", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			&courierID, order.Ready, "addr", items(t), money(t, "9.99"), time.Now(), nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o)
	})

	t.Run("should reject delivered order without courier", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, order.Delivered, "addr", items(t), money(t, "9.99"), time.Now(), nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o)
	})
}

func TestOrder_MarkReady(t *testing.T) {
	t.Run("owning restaurant marks cooking order ready", func(t *testing.T) {
		o, restaurantID := newCookingOrder(t)
		o.ClearPendingTransitions()

		err := o.MarkReady(restaurantID, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.Ready, o.Status())
		pending := o.PendingTransitions()
		require.Len(t, pending, 1)
		assert.Equal(t, order.Cooking, pending[0].From())
		assert.Equal(t, order.Ready, pending[0].To())
	})

	t.Run("another restaurant is forbidden", func(t *testing.T) {
		o, _ := newCookingOrder(t)

		err := o.MarkReady(kernel.NewUUID(), time.Now())

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, order.Cooking, o.Status())
	})

	t.Run("ready order cannot be marked again", func(t *testing.T) {
		o, restaurantID := newCookingOrder(t)
		require.NoError(t, o.MarkReady(restaurantID, time.Now()))

		err := o.MarkReady(restaurantID, time.Now())

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Ready, o.Status())
	})
}

func TestOrder_Deliver(t *testing.T) {
	courierID := kernel.NewUUID()
	restore := func(t *testing.T, status order.Status, courier *kernel.UUID) *order.Order {
		t.Helper()
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			courier, status, "addr", []*order.LineItem{lineItem(t, 1, "4.00")}, money(t, "4.00"), time.Now(), nil)
		require.NoError(t, err)
		return o
	}

	t.Run("bound courier delivers", func(t *testing.T) {
		o := restore(t, order.OnTheWay, &courierID)

		err := o.Deliver(courierID, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.False(t, o.IsActive())
		require.Len(t, o.PendingTransitions(), 1)
		assert.True(t, o.PendingTransitions()[0].ActorID().IsEqual(courierID))
	})

	t.Run("another courier is forbidden", func(t *testing.T) {
		o := restore(t, order.OnTheWay, &courierID)

		err := o.Deliver(kernel.NewUUID(), time.Now())

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, order.OnTheWay, o.Status())
	})

	t.Run("unclaimed order is forbidden before transition check", func(t *testing.T) {
		o := restore(t, order.Ready, nil)

		err := o.Deliver(courierID, time.Now())

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("delivering twice is an invalid transition", func(t *testing.T) {
		o := restore(t, order.Delivered, &courierID)

		err := o.Deliver(courierID, time.Now())

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Empty(t, o.PendingTransitions())
	})
}

func TestNewClaimTransition(t *testing.T) {
	orderID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	at := time.Now()

	tr, err := order.NewClaimTransition(orderID, courierID, at)

	require.NoError(t, err)
	require.NoError(t, tr.Validate())
	assert.True(t, tr.OrderID().IsEqual(orderID))
	assert.Equal(t, order.Ready, tr.From())
	assert.Equal(t, order.OnTheWay, tr.To())
	assert.True(t, tr.ActorID().IsEqual(courierID))
	assert.Equal(t, at.UTC(), tr.OccurredAt())

	_, err = order.NewClaimTransition(orderID, kernel.UUID{}, at)
	require.Error(t, err)

	require.ErrorIs(t, order.Transition{}.Validate(), order.ErrTransitionIsNotConstructed)
}
