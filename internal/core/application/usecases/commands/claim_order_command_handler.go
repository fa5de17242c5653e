package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/order"
)

// ClaimOrderCommandHandler binds a courier to a ready order.
//
// The claim is one conditional update in the store; of N couriers racing
// for the same order exactly one succeeds and the others get
// errs.AlreadyClaimedError. A courier with an order on the way gets
// errs.CourierBusyError. Nothing is retried.
type ClaimOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewClaimOrderCommandHandler(uowFactory OrderUoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the claimed order in OnTheWay status.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	claim, err := order.NewClaimTransition(cmd.OrderID(), cmd.CourierID(), time.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	claimed, err := uow.OrderRepository().ClaimReady(ctx, claim)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return claimed, nil
}
