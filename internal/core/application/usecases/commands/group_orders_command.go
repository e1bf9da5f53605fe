package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGroupOrdersCommandIsNotConstructed = errors.New(
	"GroupOrdersCommand must be created via NewGroupOrdersCommand constructor",
)

// GroupOrdersCommand represents a request to group a set of orders into a
// commande groupée with a supplier validation date.
type GroupOrdersCommand struct { //nolint:recvcheck //using for validation
	orderIDs       []kernel.UUID
	validationDate time.Time

	guard guard.ConstructorGuard
}

// NewGroupOrdersCommand creates a command to group the given orders.
// At least one order id and the validation date are required.
func NewGroupOrdersCommand(orderIDs []kernel.UUID, validationDate time.Time) (GroupOrdersCommand, error) {
	cmd := GroupOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderIDs(orderIDs),
		cmd.setValidationDate(validationDate),
	); err != nil {
		return GroupOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GroupOrdersCommand) Validate() error {
	return c.guard.Validate(ErrGroupOrdersCommandIsNotConstructed)
}

// OrderIDs returns the identifiers of the orders to group.
func (c GroupOrdersCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// ValidationDate returns the supplier validation date.
func (c GroupOrdersCommand) ValidationDate() time.Time {
	return c.validationDate
}

func (c *GroupOrdersCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return errs.NewValueIsRequiredError("commandeIds")
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	c.orderIDs = orderIDs
	return nil
}

func (c *GroupOrdersCommand) setValidationDate(validationDate time.Time) error {
	if validationDate.IsZero() {
		return errs.NewValueIsRequiredError("validationDate")
	}
	c.validationDate = validationDate
	return nil
}
