package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/order"
)

// MarkReadyCommandHandler moves a cooking order to Ready for its restaurant.
type MarkReadyCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewMarkReadyCommandHandler(uowFactory OrderUoWFactory) MarkReadyCommandHandler {
	return MarkReadyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle locks the order row, applies the transition and stores it.
func (h MarkReadyCommandHandler) Handle(ctx context.Context, cmd MarkReadyCommand) (*order.Order, error) {
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

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.MarkReady(cmd.RestaurantID(), time.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
