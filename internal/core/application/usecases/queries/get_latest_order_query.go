package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/identity"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetLatestConsumerOrderQueryIsNotConstructed = errors.New(
		"GetLatestConsumerOrderQuery must be created via NewGetLatestConsumerOrderQuery constructor",
	)
	ErrGetLatestCourierOrderQueryIsNotConstructed = errors.New(
		"GetLatestCourierOrderQuery must be created via NewGetLatestCourierOrderQuery constructor",
	)
)

// GetLatestConsumerOrderQuery selects the consumer's most recently created order.
type GetLatestConsumerOrderQuery struct {
	consumerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetLatestConsumerOrderQuery(caller identity.Identity) (GetLatestConsumerOrderQuery, error) {
	consumerID, err := caller.Require(identity.Consumer)
	if err != nil {
		return GetLatestConsumerOrderQuery{}, err
	}

	return GetLatestConsumerOrderQuery{
		consumerID: consumerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetLatestConsumerOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetLatestConsumerOrderQueryIsNotConstructed)
}

func (q GetLatestConsumerOrderQuery) ConsumerID() kernel.UUID {
	return q.consumerID
}

// GetLatestCourierOrderQuery selects the order the courier picked up last.
type GetLatestCourierOrderQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetLatestCourierOrderQuery(caller identity.Identity) (GetLatestCourierOrderQuery, error) {
	courierID, err := caller.Require(identity.Courier)
	if err != nil {
		return GetLatestCourierOrderQuery{}, err
	}

	return GetLatestCourierOrderQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetLatestCourierOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetLatestCourierOrderQueryIsNotConstructed)
}

func (q GetLatestCourierOrderQuery) CourierID() kernel.UUID {
	return q.courierID
}
