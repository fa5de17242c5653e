package queries

import (
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func toUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toNullableUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil //nolint:nilnil // absent courier
	}
	converted, err := toUUID(id.UUID)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

func toMoney(amount decimal.Decimal) (kernel.Money, error) {
	return kernel.NewMoney(amount)
}
