package queries

import (
	"context"
	"database/sql"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetClientVehiclesQueryHandler retrieves the vehicles a client has ordered.
type GetClientVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetClientVehiclesQueryHandler creates a handler for client vehicle
// queries.
func NewGetClientVehiclesQueryHandler(db *gorm.DB) GetClientVehiclesQueryHandler {
	return GetClientVehiclesQueryHandler{db: db}
}

// Handle executes the query and returns the client's vehicles sorted by
// delivery date.
func (h GetClientVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetClientVehiclesQuery,
) ([]GetClientVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles := make([]GetClientVehiclesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			model,
			color,
			engine,
			transmission,
			doors,
			delivery_date,
			price,
			status,
			flag
		FROM orders
		WHERE client_id = ?
		ORDER BY delivery_date, id
	`, query.ClientID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var v GetClientVehiclesQueryResponse
		var id uuid.UUID
		var price sql.NullString
		var status, flag int

		err = rows.Scan(
			&id,
			&v.Model,
			&v.Color,
			&v.Engine,
			&v.Transmission,
			&v.Doors,
			&v.DeliveryDate,
			&price,
			&status,
			&flag,
		)
		if err != nil {
			return nil, err
		}

		vehicleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		v.ID = vehicleID
		v.Price = price.String
		v.Status = order.Status(status)
		v.Flag = order.Flag(flag)

		vehicles = append(vehicles, v)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
