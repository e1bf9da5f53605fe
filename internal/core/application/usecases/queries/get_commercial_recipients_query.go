package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetCommercialRecipientsQueryIsNotConstructed = errors.New(
	"GetCommercialRecipientsQuery must be created via NewGetCommercialRecipientsQuery constructor",
)

// GetCommercialRecipientsQuery retrieves the users holding the commercial
// role, the audience of batch availability notifications.
type GetCommercialRecipientsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCommercialRecipientsQuery creates a parameterless query for the
// commercial recipient list.
func NewGetCommercialRecipientsQuery() GetCommercialRecipientsQuery {
	return GetCommercialRecipientsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCommercialRecipientsQuery) Validate() error {
	return q.guard.Validate(ErrGetCommercialRecipientsQueryIsNotConstructed)
}

// GetCommercialRecipientsQueryResponse is the read model for one commercial
// user.
type GetCommercialRecipientsQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Email string
}
