package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCommercialRecipientsQueryHandler retrieves all users holding the
// commercial role, sorted by name.
type GetCommercialRecipientsQueryHandler struct {
	db *gorm.DB
}

// NewGetCommercialRecipientsQueryHandler creates a handler for recipient
// queries.
func NewGetCommercialRecipientsQueryHandler(db *gorm.DB) GetCommercialRecipientsQueryHandler {
	return GetCommercialRecipientsQueryHandler{db: db}
}

// Handle executes the query and returns the commercial users.
func (h GetCommercialRecipientsQueryHandler) Handle(
	ctx context.Context,
	query GetCommercialRecipientsQuery,
) ([]GetCommercialRecipientsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	recipients := make([]GetCommercialRecipientsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email
		FROM users
		WHERE role = ?
		ORDER BY name
	`, "COMMERCIAL").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var recipient GetCommercialRecipientsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&recipient.Name,
			&recipient.Email,
		)
		if err != nil {
			return nil, err
		}

		recipientID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		recipient.ID = recipientID

		recipients = append(recipients, recipient)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return recipients, nil
}
