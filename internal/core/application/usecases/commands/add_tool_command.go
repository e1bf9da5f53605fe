package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrAddToolCommandIsNotConstructed = errors.New(
	"AddToolCommand must be created via NewAddToolCommand constructor",
)

// AddToolCommand represents a request to add a tool line to a subcase.
type AddToolCommand struct { //nolint:recvcheck //using for validation
	subcaseID kernel.UUID
	code      string
	name      string
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddToolCommand creates a command to add a tool to the given subcase.
func NewAddToolCommand(subcaseID kernel.UUID, code, name string, quantity int) (AddToolCommand, error) {
	if err := subcaseID.Validate(); err != nil {
		return AddToolCommand{}, err
	}
	if code == "" {
		return AddToolCommand{}, errs.NewValueIsRequiredError("toolCode")
	}
	if name == "" {
		return AddToolCommand{}, errs.NewValueIsRequiredError("toolName")
	}
	if quantity <= 0 {
		return AddToolCommand{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return AddToolCommand{
		subcaseID: subcaseID,
		code:      code,
		name:      name,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddToolCommand) Validate() error {
	return c.guard.Validate(ErrAddToolCommandIsNotConstructed)
}

// SubcaseID returns the identifier of the target subcase.
func (c AddToolCommand) SubcaseID() kernel.UUID {
	return c.subcaseID
}

// Code returns the tool code.
func (c AddToolCommand) Code() string {
	return c.code
}

// Name returns the tool name.
func (c AddToolCommand) Name() string {
	return c.name
}

// Quantity returns the shipped quantity.
func (c AddToolCommand) Quantity() int {
	return c.quantity
}
