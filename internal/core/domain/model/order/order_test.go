package order_test

import (
	"errors"
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeItems(t *testing.T) []order.OrderItem {
	t.Helper()

	first, err := order.NewOrderItem(kernel.NewUUID(), kernel.NewUUID(), 2, 12.50)
	require.NoError(t, err)
	second, err := order.NewOrderItem(kernel.NewUUID(), kernel.NewUUID(), 1, 7.00)
	require.NoError(t, err)

	return []order.OrderItem{first, second}
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validWaiterID := kernel.NewUUID()
	validCreatedAt := time.Now()

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		items := makeItems(t)

		o, err := order.NewOrder(validID, validWaiterID, validCreatedAt, items)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.WaiterID().IsEqual(validWaiterID))
		assert.Equal(t, validCreatedAt, o.CreatedAt())
		assert.Equal(t, order.Pending, o.Status())
		assert.Len(t, o.Items(), 2)
	})

	t.Run("should compute total as sum of item subtotals", func(t *testing.T) {
		items := makeItems(t) // 2 x 12.50 + 1 x 7.00

		o, err := order.NewOrder(validID, validWaiterID, validCreatedAt, items)

		require.NoError(t, err)
		assert.InDelta(t, 32.00, o.Total(), 0.001)
	})

	t.Run("should fail with invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, validWaiterID, validCreatedAt, makeItems(t))

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with invalid waiter ID", func(t *testing.T) {
		var invalidWaiterID kernel.UUID

		o, err := order.NewOrder(validID, invalidWaiterID, validCreatedAt, makeItems(t))

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with zero creation time", func(t *testing.T) {
		o, err := order.NewOrder(validID, validWaiterID, time.Time{}, makeItems(t))

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "createdAt")
	})

	t.Run("should fail with empty item list", func(t *testing.T) {
		o, err := order.NewOrder(validID, validWaiterID, validCreatedAt, []order.OrderItem{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
		assert.Contains(t, err.Error(), "items")
	})

	t.Run("should fail with nil item list", func(t *testing.T) {
		o, err := order.NewOrder(validID, validWaiterID, validCreatedAt, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})

	t.Run("should fail when an item was not constructed", func(t *testing.T) {
		var zeroItem order.OrderItem

		o, err := order.NewOrder(validID, validWaiterID, validCreatedAt, []order.OrderItem{zeroItem})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrOrderItemIsNotConstructed)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID
		var invalidWaiterID kernel.UUID

		o, err := order.NewOrder(invalidID, invalidWaiterID, time.Time{}, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		// All validation errors joined
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "createdAt")
		assert.Contains(t, err.Error(), "items")
	})
}

func TestRestoreOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validWaiterID := kernel.NewUUID()
	validCreatedAt := time.Now()

	t.Run("should restore order with explicit status and total", func(t *testing.T) {
		items := makeItems(t)

		o, err := order.RestoreOrder(validID, validWaiterID, validCreatedAt, order.Ready, 32.00, items)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Ready, o.Status())
		assert.InDelta(t, 32.00, o.Total(), 0.001)
	})

	t.Run("should keep stored total even when it differs from item sum", func(t *testing.T) {
		items := makeItems(t)

		o, err := order.RestoreOrder(validID, validWaiterID, validCreatedAt, order.Pending, 99.99, items)

		require.NoError(t, err)
		assert.InDelta(t, 99.99, o.Total(), 0.001)
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		items := makeItems(t)

		o, err := order.RestoreOrder(validID, validWaiterID, validCreatedAt, order.Unknown, 0, items)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "status is invalid")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should pass validation for properly constructed order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), makeItems(t))

		require.NoError(t, o.Validate())
	})

	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	id1 := kernel.NewUUID()
	id2 := kernel.NewUUID()

	t.Run("should return true for orders with same ID", func(t *testing.T) {
		o1, _ := order.NewOrder(id1, kernel.NewUUID(), time.Now(), makeItems(t))
		o2, _ := order.NewOrder(id1, kernel.NewUUID(), time.Now(), makeItems(t))

		assert.True(t, o1.IsEqual(o2))
		assert.True(t, o2.IsEqual(o1))
	})

	t.Run("should return false for orders with different IDs", func(t *testing.T) {
		waiterID := kernel.NewUUID()
		o1, _ := order.NewOrder(id1, waiterID, time.Now(), makeItems(t))
		o2, _ := order.NewOrder(id2, waiterID, time.Now(), makeItems(t))

		assert.False(t, o1.IsEqual(o2))
	})

	t.Run("should return false when comparing with nil", func(t *testing.T) {
		o1, _ := order.NewOrder(id1, kernel.NewUUID(), time.Now(), makeItems(t))

		assert.False(t, o1.IsEqual(nil))
	})
}

func TestOrder_Items(t *testing.T) {
	t.Run("should return a copy that does not alias internal state", func(t *testing.T) {
		items := makeItems(t)
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), items)

		returned := o.Items()
		returned[0] = order.OrderItem{}

		fresh := o.Items()
		require.NoError(t, fresh[0].Validate())
		assert.True(t, fresh[0].ID().IsEqual(items[0].ID()))
	})

	t.Run("should preserve insertion order", func(t *testing.T) {
		items := makeItems(t)
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), items)

		returned := o.Items()

		require.Len(t, returned, 2)
		assert.True(t, returned[0].ID().IsEqual(items[0].ID()))
		assert.True(t, returned[1].ID().IsEqual(items[1].ID()))
	})
}

func TestOrder_StartCooking(t *testing.T) {
	t.Run("should move pending order to preparing", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), makeItems(t))

		err := o.StartCooking()

		require.NoError(t, err)
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("should fail for order already preparing", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), makeItems(t))
		_ = o.StartCooking()

		err := o.StartCooking()

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrStateConflict))
		assert.Contains(t, err.Error(), "must be in Pending status, current status: Preparing")
		assert.Equal(t, order.Preparing, o.Status()) // Status unchanged
	})

	t.Run("should fail for served order", func(t *testing.T) {
		o, _ := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), order.Served, 10, makeItems(t))

		err := o.StartCooking()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be in Pending status, current status: Served")
	})
}

func TestOrder_MarkReady(t *testing.T) {
	t.Run("should move preparing order to ready", func(t *testing.T) {
		o, _ := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), order.Preparing, 10, makeItems(t))

		err := o.MarkReady()

		require.NoError(t, err)
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("should fail for pending order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), makeItems(t))

		err := o.MarkReady()

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrStateConflict))
		assert.Contains(t, err.Error(), "must be in Preparing status, current status: Pending")
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should fail for already ready order", func(t *testing.T) {
		o, _ := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), order.Ready, 10, makeItems(t))

		err := o.MarkReady()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be in Preparing status, current status: Ready")
	})
}

func TestOrder_MarkServed(t *testing.T) {
	t.Run("should move ready order to served", func(t *testing.T) {
		o, _ := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), order.Ready, 10, makeItems(t))

		err := o.MarkServed()

		require.NoError(t, err)
		assert.Equal(t, order.Served, o.Status())
	})

	t.Run("should fail for preparing order", func(t *testing.T) {
		o, _ := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), order.Preparing, 10, makeItems(t))

		err := o.MarkServed()

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrStateConflict))
		assert.Contains(t, err.Error(), "must be in Ready status, current status: Preparing")
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("should fail for already served order", func(t *testing.T) {
		o, _ := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), order.Served, 10, makeItems(t))

		err := o.MarkServed()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be in Ready status, current status: Served")
	})
}

func TestOrder_AcceptsPayment(t *testing.T) {
	t.Run("should accept payment for pending order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), makeItems(t))

		require.NoError(t, o.AcceptsPayment())
	})

	t.Run("should accept payment for served order", func(t *testing.T) {
		o, _ := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), order.Served, 10, makeItems(t))

		require.NoError(t, o.AcceptsPayment())
	})

	t.Run("should reject payment for cancelled order", func(t *testing.T) {
		o, _ := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), order.Cancelled, 10, makeItems(t))

		err := o.AcceptsPayment()

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrStateConflict))
		assert.Contains(t, err.Error(), "cannot process payment for a cancelled order")
	})
}

func TestOrder_ConfirmPayment(t *testing.T) {
	t.Run("should advance pending order to preparing", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), makeItems(t))

		o.ConfirmPayment()

		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("should leave preparing order untouched", func(t *testing.T) {
		o, _ := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), order.Preparing, 10, makeItems(t))

		o.ConfirmPayment()

		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("should never move order backwards", func(t *testing.T) {
		for _, status := range []order.Status{order.Ready, order.Served, order.Cancelled} {
			o, _ := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), status, 10, makeItems(t))

			o.ConfirmPayment()

			assert.Equal(t, status, o.Status())
		}
	})
}

func TestOrder_FullWorkflow(t *testing.T) {
	t.Run("should follow complete order lifecycle", func(t *testing.T) {
		orderID := kernel.NewUUID()
		waiterID := kernel.NewUUID()
		items := makeItems(t)

		o, err := order.NewOrder(orderID, waiterID, time.Now(), items)
		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())

		// Payment confirmation starts the kitchen
		o.ConfirmPayment()
		assert.Equal(t, order.Preparing, o.Status())

		err = o.MarkReady()
		require.NoError(t, err)
		assert.Equal(t, order.Ready, o.Status())

		err = o.MarkServed()
		require.NoError(t, err)
		assert.Equal(t, order.Served, o.Status())

		// Verify final state
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(orderID))
		assert.True(t, o.WaiterID().IsEqual(waiterID))
		assert.InDelta(t, 32.00, o.Total(), 0.001)
		assert.Len(t, o.Items(), 2)
	})
}
