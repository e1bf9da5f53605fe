package queries_test

import (
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllBatchesQuery_Valid(t *testing.T) {
	query := queries.NewGetAllBatchesQuery()

	require.NoError(t, query.Validate())
}

func TestGetAllBatchesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllBatchesQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllBatchesQueryIsNotConstructed)
}

func TestNewGetContainersQuery_Valid(t *testing.T) {
	query := queries.NewGetContainersQuery()

	require.NoError(t, query.Validate())
}

func TestGetContainersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetContainersQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetContainersQueryIsNotConstructed)
}

func TestNewGetClientVehiclesQuery(t *testing.T) {
	t.Run("should create query with a constructed client id", func(t *testing.T) {
		clientID := kernel.NewUUID()

		query, err := queries.NewGetClientVehiclesQuery(clientID)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.ClientID().IsEqual(clientID))
	})

	t.Run("should fail with an invalid client id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := queries.NewGetClientVehiclesQuery(invalidID)

		require.Error(t, err)
	})

	t.Run("should reject unconstructed queries", func(t *testing.T) {
		query := queries.GetClientVehiclesQuery{}

		err := query.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetClientVehiclesQueryIsNotConstructed)
	})
}

func TestNewGetCommercialRecipientsQuery_Valid(t *testing.T) {
	query := queries.NewGetCommercialRecipientsQuery()

	require.NoError(t, query.Validate())
}

func TestGetCommercialRecipientsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCommercialRecipientsQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCommercialRecipientsQueryIsNotConstructed)
}
