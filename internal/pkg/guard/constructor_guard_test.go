package guard_test

import (
	"errors"
	"testing"

	"orderflow/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("should create guard in constructed state", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("should return custom error for zero value", func(t *testing.T) {
		var g guard.ConstructorGuard
		notConstructed := errors.New("entity not constructed")

		err := g.Validate(notConstructed)

		assert.Equal(t, notConstructed, err)
	})

	t.Run("should return default error when no custom error supplied", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.ErrorIs(t, err, guard.ErrObjectIsNotConstructed)
	})
}
