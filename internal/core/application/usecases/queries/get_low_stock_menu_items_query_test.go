package queries_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetLowStockMenuItemsQuery_ValidInput(t *testing.T) {
	query, err := queries.NewGetLowStockMenuItemsQuery(5)
	require.NoError(t, err)
	assert.Equal(t, 5, query.Threshold())
	require.NoError(t, query.Validate())
}

func TestNewGetLowStockMenuItemsQuery_InvalidThreshold(t *testing.T) {
	_, err := queries.NewGetLowStockMenuItemsQuery(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetOrderQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewGetPaymentQuery_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetPaymentQuery(id)
	require.NoError(t, err)
	assert.Equal(t, id, query.PaymentID())
}
