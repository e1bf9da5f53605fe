package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateSparePartCommandIsNotConstructed = errors.New(
	"CreateSparePartCommand must be created via NewCreateSparePartCommand constructor",
)

// CreateSparePartCommand represents a request to register a spare part
// awaiting warehouse verification.
type CreateSparePartCommand struct { //nolint:recvcheck //using for validation
	code      string
	name      string
	nameFr    string
	quantity  int
	subcaseID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateSparePartCommand creates a command to register a spare part. The
// subcase reference is optional: parts entering outside a shipment have none.
func NewCreateSparePartCommand(
	code, name, nameFr string,
	quantity int,
	subcaseID *kernel.UUID,
) (CreateSparePartCommand, error) {
	if code == "" {
		return CreateSparePartCommand{}, errs.NewValueIsRequiredError("partCode")
	}
	if name == "" {
		return CreateSparePartCommand{}, errs.NewValueIsRequiredError("partName")
	}
	if quantity <= 0 {
		return CreateSparePartCommand{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if subcaseID != nil {
		if err := subcaseID.Validate(); err != nil {
			return CreateSparePartCommand{}, err
		}
	}

	return CreateSparePartCommand{
		code:      code,
		name:      name,
		nameFr:    nameFr,
		quantity:  quantity,
		subcaseID: subcaseID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSparePartCommand) Validate() error {
	return c.guard.Validate(ErrCreateSparePartCommandIsNotConstructed)
}

// Code returns the part code.
func (c CreateSparePartCommand) Code() string {
	return c.code
}

// Name returns the part name.
func (c CreateSparePartCommand) Name() string {
	return c.name
}

// NameFr returns the French part name, empty if not given.
func (c CreateSparePartCommand) NameFr() string {
	return c.nameFr
}

// Quantity returns the stocked quantity.
func (c CreateSparePartCommand) Quantity() int {
	return c.quantity
}

// SubcaseID returns the subcase the part shipped in, nil if unknown.
func (c CreateSparePartCommand) SubcaseID() *kernel.UUID {
	return c.subcaseID
}
