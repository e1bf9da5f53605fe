package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/batch"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var ErrGetAllBatchesQueryIsNotConstructed = errors.New(
	"GetAllBatchesQuery must be created via NewGetAllBatchesQuery constructor",
)

// GetAllBatchesQuery retrieves every order batch with its member orders,
// newest validation date first. This is the main dashboard read for the
// grouped-order screen.
type GetAllBatchesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllBatchesQuery creates a parameterless query for all batches.
func NewGetAllBatchesQuery() GetAllBatchesQuery {
	return GetAllBatchesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllBatchesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllBatchesQueryIsNotConstructed)
}

// GetAllBatchesQueryResponse is the read model for one batch with its
// member orders nested.
type GetAllBatchesQueryResponse struct {
	ID             kernel.UUID
	ValidationDate time.Time
	TotalCount     int
	SoldCount      int
	AvailableCount int
	Details        string
	Status         batch.Status
	Orders         []BatchOrderResponse
}

// BatchOrderResponse is the read model for an order nested under a batch.
type BatchOrderResponse struct {
	ID           kernel.UUID
	Model        string
	Color        string
	Engine       string
	Transmission string
	Doors        int
	DeliveryDate time.Time
	Price        string
	Status       order.Status
	Flag         order.Flag
}
