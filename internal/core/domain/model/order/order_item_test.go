package order_test

import (
	"errors"
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderItem(t *testing.T) {
	validID := kernel.NewUUID()
	validMenuItemID := kernel.NewUUID()

	t.Run("should create valid item with all valid parameters", func(t *testing.T) {
		item, err := order.NewOrderItem(validID, validMenuItemID, 3, 9.50)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ID().IsEqual(validID))
		assert.True(t, item.MenuItemID().IsEqual(validMenuItemID))
		assert.Equal(t, 3, item.Quantity())
		assert.InDelta(t, 9.50, item.UnitPrice(), 0.001)
	})

	t.Run("should compute subtotal as quantity times unit price", func(t *testing.T) {
		item, err := order.NewOrderItem(validID, validMenuItemID, 4, 12.25)

		require.NoError(t, err)
		assert.InDelta(t, 49.00, item.Subtotal(), 0.001)
	})

	t.Run("should accept zero unit price", func(t *testing.T) {
		item, err := order.NewOrderItem(validID, validMenuItemID, 2, 0)

		require.NoError(t, err)
		assert.InDelta(t, 0, item.Subtotal(), 0.001)
	})

	t.Run("should fail with invalid item ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewOrderItem(invalidID, validMenuItemID, 1, 9.50)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with invalid menu item ID", func(t *testing.T) {
		var invalidMenuItemID kernel.UUID

		_, err := order.NewOrderItem(validID, invalidMenuItemID, 1, 9.50)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewOrderItem(validID, validMenuItemID, 0, 9.50)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		_, err := order.NewOrderItem(validID, validMenuItemID, -2, 9.50)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "-2 is not greater than 0")
	})

	t.Run("should fail with negative unit price", func(t *testing.T) {
		_, err := order.NewOrderItem(validID, validMenuItemID, 1, -0.01)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
		assert.Contains(t, err.Error(), "unitPrice")
	})
}

func TestRestoreOrderItem(t *testing.T) {
	t.Run("should restore item with stored subtotal", func(t *testing.T) {
		item, err := order.RestoreOrderItem(kernel.NewUUID(), kernel.NewUUID(), 2, 9.50, 19.00)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.InDelta(t, 19.00, item.Subtotal(), 0.001)
	})

	t.Run("should trust stored subtotal over recomputation", func(t *testing.T) {
		item, err := order.RestoreOrderItem(kernel.NewUUID(), kernel.NewUUID(), 2, 9.50, 18.00)

		require.NoError(t, err)
		assert.InDelta(t, 18.00, item.Subtotal(), 0.001)
	})

	t.Run("should apply the same field validation as the constructor", func(t *testing.T) {
		_, err := order.RestoreOrderItem(kernel.NewUUID(), kernel.NewUUID(), 0, 9.50, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})
}

func TestOrderItem_Validate(t *testing.T) {
	t.Run("should fail validation for zero value item", func(t *testing.T) {
		var item order.OrderItem

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderItemIsNotConstructed, err)
	})
}
