package kernel_test

import (
	"errors"
	"testing"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed guard passes", func(t *testing.T) {
		guard := kernel.NewConstructorGuard()

		assert.NoError(t, guard.Validate(errors.New("not constructed")))
		assert.NoError(t, guard.Validate(nil))
	})

	t.Run("zero value returns the given error", func(t *testing.T) {
		var guard kernel.ConstructorGuard
		expected := errors.New("entity not constructed")

		assert.Equal(t, expected, guard.Validate(expected))
	})

	t.Run("zero value falls back to the default error", func(t *testing.T) {
		var guard kernel.ConstructorGuard

		err := guard.Validate(nil)

		assert.Equal(t, kernel.ErrDefaultConstructorGuard, err)
		assert.Contains(t, err.Error(), "constructor")
	})
}

// The guard is embedded in every domain object of the model; this exercises
// the intended pattern end to end with a stand-in entity.
func TestConstructorGuard_EmbeddedInEntity(t *testing.T) {
	errTableNotConstructed := errors.New("Table must be created via NewTable")

	type table struct {
		number int
		guard  kernel.ConstructorGuard
	}

	newTable := func(number int) (table, error) {
		if number <= 0 {
			return table{}, errors.New("table number must be positive")
		}
		return table{
			number: number,
			guard:  kernel.NewConstructorGuard(),
		}, nil
	}

	validate := func(tbl table) error {
		return tbl.guard.Validate(errTableNotConstructed)
	}

	t.Run("constructor produces a valid entity", func(t *testing.T) {
		tbl, err := newTable(7)

		require.NoError(t, err)
		assert.NoError(t, validate(tbl))
		assert.Equal(t, 7, tbl.number)
	})

	t.Run("struct literal is rejected", func(t *testing.T) {
		var tbl table

		assert.Equal(t, errTableNotConstructed, validate(tbl))
	})

	t.Run("constructor still enforces its own rules", func(t *testing.T) {
		_, err := newTable(0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be positive")
	})
}

func TestConstructorGuard_CopySemantics(t *testing.T) {
	guard := kernel.NewConstructorGuard()
	copied := guard

	assert.NoError(t, guard.Validate(nil))
	assert.NoError(t, copied.Validate(nil))
}
