package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStatus string

func (s stubStatus) String() string { return string(s) }

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "123")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("order", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: order, ID is: 123 (cause: database connection failed)",
			err.Error())
	})

	t.Run("non string identifiers", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("meal", 456)
		assert.Equal(t, "object not found: 456", err.Error())
	})
}

func TestValidationErrors(t *testing.T) {
	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("meal belongs to another restaurant")
		err := errs.NewValueIsInvalidErrorWithCause("items", cause)

		assert.Equal(t, "value is invalid: items (cause: meal belongs to another restaurant)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("address")

		assert.Equal(t, "value is required: address", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000)

		assert.Equal(t, "value is invalid: 0 is quantity, min value is 1, max value is 1000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("out of range sanitizes newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})

	t.Run("IsValidation groups the family", func(t *testing.T) {
		assert.True(t, errs.IsValidation(errs.NewValueIsRequiredError("address")))
		assert.True(t, errs.IsValidation(errs.NewValueIsInvalidError("items")))
		assert.True(t, errs.IsValidation(errs.NewValueIsOutOfRangeError("quantity", -1, 1, 10)))
		assert.True(t, errs.IsValidation(fmt.Errorf("wrapped: %w", errs.NewValueIsRequiredError("x"))))
		assert.False(t, errs.IsValidation(errs.NewConflictError("consumer has active order")))
		assert.False(t, errs.IsValidation(nil))
	})
}

func TestDispatchErrors(t *testing.T) {
	t.Run("ConflictError", func(t *testing.T) {
		err := errs.NewConflictError("consumer has active order")
		assert.Equal(t, "conflict: consumer has active order", err.Error())
		require.ErrorIs(t, err, errs.ErrConflict)

		withCause := errs.NewConflictErrorWithCause("consumer has active order", errors.New("23505"))
		assert.Equal(t, "conflict: consumer has active order (cause: 23505)", withCause.Error())
	})

	t.Run("CourierBusyError", func(t *testing.T) {
		err := errs.NewCourierBusyError("c-1")
		assert.Equal(t, "courier is busy: courier c-1 already has an order on the way", err.Error())
		require.ErrorIs(t, err, errs.ErrCourierBusy)
	})

	t.Run("AlreadyClaimedError", func(t *testing.T) {
		err := errs.NewAlreadyClaimedError("o-42")
		assert.Equal(t, "order already claimed: o-42", err.Error())
		require.ErrorIs(t, err, errs.ErrAlreadyClaimed)
	})

	t.Run("ForbiddenError", func(t *testing.T) {
		err := errs.NewForbiddenError("order is assigned to another courier")
		assert.Equal(t, "forbidden: order is assigned to another courier", err.Error())
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("InvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError(stubStatus("COOKING"), stubStatus("DELIVERED"))
		assert.Equal(t, "invalid status transition: COOKING -> DELIVERED", err.Error())
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("UnauthenticatedError", func(t *testing.T) {
		assert.Equal(t, "unauthenticated", errs.NewUnauthenticatedError().Error())

		err := errs.NewUnauthenticatedErrorWithCause(errors.New("token expired"))
		assert.Equal(t, "unauthenticated (cause: token expired)", err.Error())
		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}

func TestErrorsSurviveWrapping(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", errs.NewObjectNotFoundError("order", "1"), errs.ErrObjectNotFound},
		{"conflict", errs.NewConflictError("x"), errs.ErrConflict},
		{"courier busy", errs.NewCourierBusyError("c"), errs.ErrCourierBusy},
		{"already claimed", errs.NewAlreadyClaimedError("o"), errs.ErrAlreadyClaimed},
		{"forbidden", errs.NewForbiddenError("x"), errs.ErrForbidden},
		{"unauthenticated", errs.NewUnauthenticatedError(), errs.ErrUnauthenticated},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("claim order: %w", tc.err)
			require.ErrorIs(t, wrapped, tc.sentinel)
		})
	}
}
