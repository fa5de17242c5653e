package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/identity"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents a courier confirming delivery.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand requires a courier identity.
func NewMarkDeliveredCommand(caller identity.Identity, orderID kernel.UUID) (MarkDeliveredCommand, error) {
	courierID, err := caller.Require(identity.Courier)
	if err != nil {
		return MarkDeliveredCommand{}, err
	}
	if err = orderID.Validate(); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return MarkDeliveredCommand{
		orderID:   orderID,
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

func (c MarkDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c MarkDeliveredCommand) CourierID() kernel.UUID {
	return c.courierID
}
