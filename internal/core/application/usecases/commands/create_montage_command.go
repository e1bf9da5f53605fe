package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateMontageCommandIsNotConstructed = errors.New(
	"CreateMontageCommand must be created via NewCreateMontageCommand constructor",
)

// CreateMontageCommand represents a request to open an assembly order for a
// verified vehicle order.
type CreateMontageCommand struct { //nolint:recvcheck //using for validation
	chassisNo string
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateMontageCommand creates a command to open an assembly order.
func NewCreateMontageCommand(chassisNo string, orderID kernel.UUID) (CreateMontageCommand, error) {
	if chassisNo == "" {
		return CreateMontageCommand{}, errs.NewValueIsRequiredError("no_chassis")
	}
	if err := orderID.Validate(); err != nil {
		return CreateMontageCommand{}, err
	}

	return CreateMontageCommand{
		chassisNo: chassisNo,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMontageCommand) Validate() error {
	return c.guard.Validate(ErrCreateMontageCommandIsNotConstructed)
}

// ChassisNo returns the chassis number being assembled.
func (c CreateMontageCommand) ChassisNo() string {
	return c.chassisNo
}

// OrderID returns the identifier of the source vehicle order.
func (c CreateMontageCommand) OrderID() kernel.UUID {
	return c.orderID
}
