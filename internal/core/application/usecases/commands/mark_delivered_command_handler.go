package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/order"
)

// MarkDeliveredCommandHandler completes an order on behalf of its courier.
// The order row is locked for the whole transaction, so the ownership check
// and the transition see the same state that is written back.
type MarkDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewMarkDeliveredCommandHandler(uowFactory OrderUoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the delivered order.
//
// Errors:
//   - errs.ObjectNotFoundError for an unknown order
//   - errs.ForbiddenError when the order is not bound to this courier
//   - errs.InvalidTransitionError when the order is not on the way
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) (*order.Order, error) {
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

	if err = o.Deliver(cmd.CourierID(), time.Now()); err != nil {
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
