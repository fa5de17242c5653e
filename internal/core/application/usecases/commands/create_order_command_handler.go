package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

// CreateOrderCommandHandler places an order: it checks the consumer has no
// active order, prices the requested meals and stores the order in Cooking
// status, all in one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.NewOrderPricer())
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // consumer already has an active order
//	}
type CreateOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
	pricer     services.OrderPricer
}

func NewCreateOrderCommandHandler(uowFactory PlaceOrderUoWFactory, pricer services.OrderPricer) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
	}
}

// Handle processes the order creation command.
//
// HasActiveOrder is only a fast path: two concurrent requests can both pass
// it, and the store then rejects the second insert with errs.ConflictError.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	active, err := orderRepo.HasActiveOrder(ctx, cmd.ConsumerID())
	if err != nil {
		return nil, err
	}
	if active {
		return nil, errs.NewConflictError("consumer has active order")
	}

	meals, err := uow.MealRepository().GetByIDs(ctx, cmd.MealIDs())
	if err != nil {
		return nil, err
	}

	quote, err := h.pricer.Quote(cmd.RestaurantID(), cmd.Items(), indexMeals(meals))
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.ConsumerID(),
		cmd.RestaurantID(),
		cmd.Address(),
		quote.Items,
		quote.Total,
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

func indexMeals(meals []*catalog.Meal) map[string]*catalog.Meal {
	index := make(map[string]*catalog.Meal, len(meals))
	for _, m := range meals {
		index[m.ID().String()] = m
	}
	return index
}
