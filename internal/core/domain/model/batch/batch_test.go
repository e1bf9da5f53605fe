package batch_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/batch"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeOrder(t *testing.T, model, color string, sold bool) *order.Order {
	t.Helper()
	spec, err := order.NewVehicleSpec(model, color, "DIESEL", "MANUELLE", 4)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), nil, nil, spec,
		time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), nil)
	require.NoError(t, err)
	if sold {
		o.MarkSold()
	}
	return o
}

func TestNewBatch(t *testing.T) {
	validationDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should derive counts from member flags", func(t *testing.T) {
		members := []*order.Order{
			makeOrder(t, "HILUX", "BLANC", true),
			makeOrder(t, "HILUX", "BLANC", false),
			makeOrder(t, "COROLLA", "NOIR", false),
		}

		b, err := batch.NewBatch(kernel.NewUUID(), validationDate, members)

		require.NoError(t, err)
		require.NoError(t, b.Validate())
		assert.Equal(t, 3, b.TotalCount())
		assert.Equal(t, 1, b.SoldCount())
		assert.Equal(t, 2, b.AvailableCount())
		assert.Equal(t, b.TotalCount(), b.SoldCount()+b.AvailableCount())
		assert.Equal(t, batch.StatusProposition, b.Status())
		assert.Equal(t, validationDate, b.ValidationDate())
	})

	t.Run("should fail with no members", func(t *testing.T) {
		b, err := batch.NewBatch(kernel.NewUUID(), validationDate, nil)

		require.Error(t, err)
		assert.Nil(t, b)
		assert.ErrorIs(t, err, batch.ErrBatchHasNoOrders)
	})

	t.Run("should fail with zero validation date", func(t *testing.T) {
		members := []*order.Order{makeOrder(t, "HILUX", "BLANC", false)}

		b, err := batch.NewBatch(kernel.NewUUID(), time.Time{}, members)

		require.Error(t, err)
		assert.Nil(t, b)
		assert.Contains(t, err.Error(), "validationDate")
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID
		members := []*order.Order{makeOrder(t, "HILUX", "BLANC", false)}

		b, err := batch.NewBatch(invalidID, validationDate, members)

		require.Error(t, err)
		assert.Nil(t, b)
	})
}

func TestBatch_Validate(t *testing.T) {
	t.Run("should fail validation for nil batch", func(t *testing.T) {
		var b *batch.Batch

		assert.Equal(t, batch.ErrBatchIsNotConstructed, b.Validate())
	})

	t.Run("should fail validation for zero value batch", func(t *testing.T) {
		var b batch.Batch

		assert.Equal(t, batch.ErrBatchIsNotConstructed, b.Validate())
	})
}

func TestBatch_Advance(t *testing.T) {
	validationDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	members := []*order.Order{makeOrder(t, "HILUX", "BLANC", false)}

	t.Run("should walk the full progression", func(t *testing.T) {
		b, _ := batch.NewBatch(kernel.NewUUID(), validationDate, members)

		require.NoError(t, b.Advance())
		assert.Equal(t, batch.StatusValide, b.Status())

		require.NoError(t, b.Advance())
		assert.Equal(t, batch.StatusTransite, b.Status())
	})

	t.Run("should refuse to advance past the terminal stage", func(t *testing.T) {
		b, _ := batch.NewBatch(kernel.NewUUID(), validationDate, members)
		require.NoError(t, b.Advance())
		require.NoError(t, b.Advance())

		err := b.Advance()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "TRANSITE")
		assert.Equal(t, batch.StatusTransite, b.Status())
	})
}

func TestBatch_MarkInTransit(t *testing.T) {
	validationDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	members := []*order.Order{makeOrder(t, "HILUX", "BLANC", false)}

	t.Run("should force Transite from any stage", func(t *testing.T) {
		b, _ := batch.NewBatch(kernel.NewUUID(), validationDate, members)

		b.MarkInTransit()

		assert.Equal(t, batch.StatusTransite, b.Status())
	})

	t.Run("should be idempotent", func(t *testing.T) {
		b, _ := batch.NewBatch(kernel.NewUUID(), validationDate, members)

		b.MarkInTransit()
		b.MarkInTransit()

		assert.Equal(t, batch.StatusTransite, b.Status())
	})
}

func TestSummarize(t *testing.T) {
	t.Run("should group members by specification in first-occurrence order", func(t *testing.T) {
		members := []*order.Order{
			makeOrder(t, "HILUX", "BLANC", false),
			makeOrder(t, "COROLLA", "NOIR", false),
			makeOrder(t, "HILUX", "BLANC", true),
			makeOrder(t, "HILUX", "BLANC", false),
		}

		details := batch.Summarize(members)

		assert.Equal(t, "3 x HILUX BLANC DIESEL MANUELLE\n1 x COROLLA NOIR DIESEL MANUELLE", details)
	})

	t.Run("should produce a single line for a uniform batch", func(t *testing.T) {
		members := []*order.Order{
			makeOrder(t, "HILUX", "BLANC", false),
			makeOrder(t, "HILUX", "BLANC", false),
		}

		assert.Equal(t, "2 x HILUX BLANC DIESEL MANUELLE", batch.Summarize(members))
	})
}

func TestRestoreBatch(t *testing.T) {
	validationDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should restore full state", func(t *testing.T) {
		id := kernel.NewUUID()

		b, err := batch.RestoreBatch(id, validationDate, 5, 2, 3, "5 x HILUX BLANC DIESEL MANUELLE", batch.StatusValide)

		require.NoError(t, err)
		assert.True(t, b.ID().IsEqual(id))
		assert.Equal(t, 5, b.TotalCount())
		assert.Equal(t, 2, b.SoldCount())
		assert.Equal(t, 3, b.AvailableCount())
		assert.Equal(t, batch.StatusValide, b.Status())
	})

	t.Run("should reject undefined status", func(t *testing.T) {
		b, err := batch.RestoreBatch(kernel.NewUUID(), validationDate, 1, 0, 1, "", batch.StatusUnknown)

		require.Error(t, err)
		assert.Nil(t, b)
	})
}

func TestBatchStatus(t *testing.T) {
	t.Run("should expose wire names", func(t *testing.T) {
		assert.Equal(t, "PROPOSITION", batch.StatusProposition.String())
		assert.Equal(t, "VALIDE", batch.StatusValide.String())
		assert.Equal(t, "TRANSITE", batch.StatusTransite.String())
	})

	t.Run("should parse wire names", func(t *testing.T) {
		parsed, err := batch.StatusFromString("TRANSITE")
		require.NoError(t, err)
		assert.Equal(t, batch.StatusTransite, parsed)

		_, err = batch.StatusFromString("EXPEDIE")
		require.Error(t, err)
	})

	t.Run("should stop Next at the terminal stage", func(t *testing.T) {
		next, ok := batch.StatusProposition.Next()
		require.True(t, ok)
		assert.Equal(t, batch.StatusValide, next)

		next, ok = batch.StatusValide.Next()
		require.True(t, ok)
		assert.Equal(t, batch.StatusTransite, next)

		_, ok = batch.StatusTransite.Next()
		assert.False(t, ok)
	})
}
