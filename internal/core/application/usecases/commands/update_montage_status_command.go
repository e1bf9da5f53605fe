package commands

import (
	"errors"

	"logistics/internal/core/domain/model/assembly"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrUpdateMontageStatusCommandIsNotConstructed = errors.New(
	"UpdateMontageStatusCommand must be created via NewUpdateMontageStatusCommand constructor",
)

// UpdateMontageStatusCommand represents a request to move an assembly order
// to a given stage.
type UpdateMontageStatusCommand struct { //nolint:recvcheck //using for validation
	montageID kernel.UUID
	status    assembly.Status

	guard guard.ConstructorGuard
}

// NewUpdateMontageStatusCommand creates a command to set an assembly stage.
func NewUpdateMontageStatusCommand(
	montageID kernel.UUID,
	status assembly.Status,
) (UpdateMontageStatusCommand, error) {
	if err := montageID.Validate(); err != nil {
		return UpdateMontageStatusCommand{}, err
	}
	if err := status.Validate(); err != nil {
		return UpdateMontageStatusCommand{}, err
	}

	return UpdateMontageStatusCommand{
		montageID: montageID,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMontageStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMontageStatusCommandIsNotConstructed)
}

// MontageID returns the identifier of the assembly order to update.
func (c UpdateMontageStatusCommand) MontageID() kernel.UUID {
	return c.montageID
}

// Status returns the target assembly stage.
func (c UpdateMontageStatusCommand) Status() assembly.Status {
	return c.status
}
