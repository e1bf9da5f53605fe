package order_test

import (
	"testing"

	"logistics/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVehicleSpec(t *testing.T) {
	t.Run("should create valid spec with all valid parameters", func(t *testing.T) {
		spec, err := order.NewVehicleSpec("HILUX", "BLANC", "DIESEL", "MANUELLE", 4)

		require.NoError(t, err)
		require.NoError(t, spec.Validate())
		assert.Equal(t, "HILUX", spec.Model())
		assert.Equal(t, "BLANC", spec.Color())
		assert.Equal(t, "DIESEL", spec.Engine())
		assert.Equal(t, "MANUELLE", spec.Transmission())
		assert.Equal(t, 4, spec.Doors())
	})

	t.Run("should fail with empty model", func(t *testing.T) {
		_, err := order.NewVehicleSpec("", "BLANC", "DIESEL", "MANUELLE", 4)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "model")
	})

	t.Run("should fail with empty color", func(t *testing.T) {
		_, err := order.NewVehicleSpec("HILUX", "", "DIESEL", "MANUELLE", 4)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "color")
	})

	t.Run("should fail with zero doors", func(t *testing.T) {
		_, err := order.NewVehicleSpec("HILUX", "BLANC", "DIESEL", "MANUELLE", 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "doors")
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		_, err := order.NewVehicleSpec("", "", "", "", -2)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "model")
		assert.Contains(t, err.Error(), "color")
		assert.Contains(t, err.Error(), "engine")
		assert.Contains(t, err.Error(), "transmission")
		assert.Contains(t, err.Error(), "doors")
	})
}

func TestVehicleSpec_Validate(t *testing.T) {
	t.Run("should fail for zero value spec", func(t *testing.T) {
		var spec order.VehicleSpec

		err := spec.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrVehicleSpecIsNotConstructed, err)
	})
}

func TestVehicleSpec_GroupKey(t *testing.T) {
	t.Run("should ignore door count", func(t *testing.T) {
		spec1, _ := order.NewVehicleSpec("HILUX", "BLANC", "DIESEL", "MANUELLE", 2)
		spec2, _ := order.NewVehicleSpec("HILUX", "BLANC", "DIESEL", "MANUELLE", 4)

		assert.Equal(t, spec1.GroupKey(), spec2.GroupKey())
		assert.True(t, spec1.IsEqual(spec2))
	})

	t.Run("should differ when any grouping field differs", func(t *testing.T) {
		base, _ := order.NewVehicleSpec("HILUX", "BLANC", "DIESEL", "MANUELLE", 4)
		otherColor, _ := order.NewVehicleSpec("HILUX", "NOIR", "DIESEL", "MANUELLE", 4)
		otherEngine, _ := order.NewVehicleSpec("HILUX", "BLANC", "ESSENCE", "MANUELLE", 4)

		assert.False(t, base.IsEqual(otherColor))
		assert.False(t, base.IsEqual(otherEngine))
	})
}
