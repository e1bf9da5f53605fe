package queries

import (
	"context"

	"logistics/internal/core/domain/model/container"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetContainersQueryHandler retrieves all containers with assigned orders
// nested, newest embarkation first.
type GetContainersQueryHandler struct {
	db *gorm.DB
}

// NewGetContainersQueryHandler creates a handler for container list queries.
func NewGetContainersQueryHandler(db *gorm.DB) GetContainersQueryHandler {
	return GetContainersQueryHandler{db: db}
}

// Handle executes the query and returns all containers with nested orders.
func (h GetContainersQueryHandler) Handle(
	ctx context.Context,
	query GetContainersQuery,
) ([]GetContainersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	containers := make([]GetContainersQueryResponse, 0)
	containerIndex := make(map[uuid.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			seal_number,
			packages,
			weight,
			stuffing_map,
			status,
			embarked_at,
			arrived_at
		FROM containers
		ORDER BY embarked_at DESC NULLS LAST, number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetContainersQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&resp.Number,
			&resp.SealNumber,
			&resp.Packages,
			&resp.Weight,
			&resp.StuffingMap,
			&status,
			&resp.EmbarkedAt,
			&resp.ArrivedAt,
		)
		if err != nil {
			return nil, err
		}

		containerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = containerID
		resp.Status = container.Status(status)
		resp.Orders = make([]ContainerOrderResponse, 0)

		containerIndex[id] = len(containers)
		containers = append(containers, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if err = rows.Close(); err != nil {
		return nil, err
	}

	orderRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			container_id,
			model,
			color,
			engine,
			transmission,
			doors,
			delivery_date,
			status,
			flag
		FROM orders
		WHERE container_id IS NOT NULL
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer orderRows.Close()

	for orderRows.Next() {
		var o ContainerOrderResponse
		var id, containerID uuid.UUID
		var status, flag int

		err = orderRows.Scan(
			&id,
			&containerID,
			&o.Model,
			&o.Color,
			&o.Engine,
			&o.Transmission,
			&o.Doors,
			&o.DeliveryDate,
			&status,
			&flag,
		)
		if err != nil {
			return nil, err
		}

		idx, ok := containerIndex[containerID]
		if !ok {
			continue
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		o.ID = orderID
		o.Status = order.Status(status)
		o.Flag = order.Flag(flag)

		containers[idx].Orders = append(containers[idx].Orders, o)
	}
	if err = orderRows.Err(); err != nil {
		return nil, err
	}

	return containers, nil
}
