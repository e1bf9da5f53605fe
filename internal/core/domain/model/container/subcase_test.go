package container_test

import (
	"testing"

	"logistics/internal/core/domain/model/container"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubcase(t *testing.T) {
	t.Run("should create valid subcase", func(t *testing.T) {
		id := kernel.NewUUID()
		containerID := kernel.NewUUID()

		s, err := container.NewSubcase(id, "SC-01", containerID)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(id))
		assert.Equal(t, "SC-01", s.Number())
		assert.True(t, s.Container().IsEqual(containerID))
	})

	t.Run("should fail with empty number", func(t *testing.T) {
		s, err := container.NewSubcase(kernel.NewUUID(), "", kernel.NewUUID())

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "subcaseNumber")
	})

	t.Run("should fail with invalid container ID", func(t *testing.T) {
		var invalidID kernel.UUID

		s, err := container.NewSubcase(kernel.NewUUID(), "SC-01", invalidID)

		require.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("should fail validation for nil subcase", func(t *testing.T) {
		var s *container.Subcase

		assert.Equal(t, container.ErrSubcaseIsNotConstructed, s.Validate())
	})
}

func TestNewTool(t *testing.T) {
	t.Run("should create valid tool", func(t *testing.T) {
		id := kernel.NewUUID()
		subcaseID := kernel.NewUUID()

		tool, err := container.NewTool(id, "CLE-12", "Cle dynamometrique", 3, subcaseID)

		require.NoError(t, err)
		require.NoError(t, tool.Validate())
		assert.True(t, tool.ID().IsEqual(id))
		assert.Equal(t, "CLE-12", tool.Code())
		assert.Equal(t, "Cle dynamometrique", tool.Name())
		assert.Equal(t, 3, tool.Quantity())
		assert.True(t, tool.Subcase().IsEqual(subcaseID))
	})

	t.Run("should fail with empty code", func(t *testing.T) {
		tool, err := container.NewTool(kernel.NewUUID(), "", "Cle", 3, kernel.NewUUID())

		require.Error(t, err)
		assert.Nil(t, tool)
		assert.Contains(t, err.Error(), "toolCode")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		tool, err := container.NewTool(kernel.NewUUID(), "CLE-12", "", 3, kernel.NewUUID())

		require.Error(t, err)
		assert.Nil(t, tool)
		assert.Contains(t, err.Error(), "toolName")
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			tool, err := container.NewTool(kernel.NewUUID(), "CLE-12", "Cle", quantity, kernel.NewUUID())

			require.Error(t, err)
			assert.Nil(t, tool)
			assert.Contains(t, err.Error(), "quantity")
		}
	})

	t.Run("should fail validation for nil tool", func(t *testing.T) {
		var tool *container.Tool

		assert.Equal(t, container.ErrToolIsNotConstructed, tool.Validate())
	})
}
