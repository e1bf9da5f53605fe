package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/container"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var ErrGetContainersQueryIsNotConstructed = errors.New(
	"GetContainersQuery must be created via NewGetContainersQuery constructor",
)

// GetContainersQuery retrieves every shipping container with its assigned
// orders nested, for the container tracking screen.
type GetContainersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetContainersQuery creates a parameterless query for all containers.
func NewGetContainersQuery() GetContainersQuery {
	return GetContainersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetContainersQuery) Validate() error {
	return q.guard.Validate(ErrGetContainersQueryIsNotConstructed)
}

// GetContainersQueryResponse is the read model for one container with its
// assigned orders nested.
type GetContainersQueryResponse struct {
	ID          kernel.UUID
	Number      string
	SealNumber  string
	Packages    int
	Weight      string
	StuffingMap string
	Status      container.Status
	EmbarkedAt  *time.Time
	ArrivedAt   *time.Time
	Orders      []ContainerOrderResponse
}

// ContainerOrderResponse is the read model for an order nested under a
// container.
type ContainerOrderResponse struct {
	ID           kernel.UUID
	Model        string
	Color        string
	Engine       string
	Transmission string
	Doors        int
	DeliveryDate time.Time
	Status       order.Status
	Flag         order.Flag
}
