package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var ErrGetClientVehiclesQueryIsNotConstructed = errors.New(
	"GetClientVehiclesQuery must be created via NewGetClientVehiclesQuery constructor",
)

// GetClientVehiclesQuery retrieves the vehicles ordered by a single client.
type GetClientVehiclesQuery struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetClientVehiclesQuery creates a query for one client's vehicles.
func NewGetClientVehiclesQuery(clientID kernel.UUID) (GetClientVehiclesQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetClientVehiclesQuery{}, err
	}

	return GetClientVehiclesQuery{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClientVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetClientVehiclesQueryIsNotConstructed)
}

// ClientID returns the client whose vehicles are requested.
func (q GetClientVehiclesQuery) ClientID() kernel.UUID {
	return q.clientID
}

// GetClientVehiclesQueryResponse is the read model for one client vehicle.
type GetClientVehiclesQueryResponse struct {
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
