package guard_test

import (
	"errors"
	"testing"

	"logistics/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard enforces
// constructor usage on a domain object.
func TestConstructorGuardUsageExample(t *testing.T) {
	type sealNumber struct {
		value string
		guard guard.ConstructorGuard
	}

	var errSealNotConstructed = errors.New("SealNumber must be created via its constructor")

	newSealNumber := func(value string) (sealNumber, error) {
		if value == "" {
			return sealNumber{}, errors.New("seal number is required")
		}
		return sealNumber{value: value, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		seal, err := newSealNumber("SL-0042")

		require.NoError(t, err)
		require.NoError(t, seal.guard.Validate(errSealNotConstructed))
		assert.Equal(t, "SL-0042", seal.value)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var seal sealNumber // zero value

		err := seal.guard.Validate(errSealNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errSealNotConstructed, err)
	})
}

func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}
