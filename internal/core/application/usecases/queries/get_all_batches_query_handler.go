package queries

import (
	"context"
	"database/sql"

	"logistics/internal/core/domain/model/batch"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllBatchesQueryHandler retrieves all order batches from the database,
// newest validation date first, with member orders nested under each batch.
type GetAllBatchesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllBatchesQueryHandler creates a handler for batch list queries.
func NewGetAllBatchesQueryHandler(db *gorm.DB) GetAllBatchesQueryHandler {
	return GetAllBatchesQueryHandler{db: db}
}

// Handle executes the query and returns all batches with nested orders.
func (h GetAllBatchesQueryHandler) Handle(
	ctx context.Context,
	query GetAllBatchesQuery,
) ([]GetAllBatchesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	batches := make([]GetAllBatchesQueryResponse, 0)
	batchIndex := make(map[uuid.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			validation_date,
			total_count,
			sold_count,
			available_count,
			details,
			status
		FROM batches
		ORDER BY validation_date DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllBatchesQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&resp.ValidationDate,
			&resp.TotalCount,
			&resp.SoldCount,
			&resp.AvailableCount,
			&resp.Details,
			&status,
		)
		if err != nil {
			return nil, err
		}

		batchID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = batchID
		resp.Status = batch.Status(status)
		resp.Orders = make([]BatchOrderResponse, 0)

		batchIndex[id] = len(batches)
		batches = append(batches, resp)
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
			batch_id,
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
		WHERE batch_id IS NOT NULL
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer orderRows.Close()

	for orderRows.Next() {
		var o BatchOrderResponse
		var id, batchID uuid.UUID
		var price sql.NullString
		var status, flag int

		err = orderRows.Scan(
			&id,
			&batchID,
			&o.Model,
			&o.Color,
			&o.Engine,
			&o.Transmission,
			&o.Doors,
			&o.DeliveryDate,
			&price,
			&status,
			&flag,
		)
		if err != nil {
			return nil, err
		}

		idx, ok := batchIndex[batchID]
		if !ok {
			continue
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		o.ID = orderID
		o.Price = price.String
		o.Status = order.Status(status)
		o.Flag = order.Flag(flag)

		batches[idx].Orders = append(batches[idx].Orders, o)
	}
	if err = orderRows.Err(); err != nil {
		return nil, err
	}

	return batches, nil
}
