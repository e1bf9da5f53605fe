package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAssignSparePartCommandIsNotConstructed = errors.New(
	"AssignSparePartCommand must be created via NewAssignSparePartCommand constructor",
)

// AssignSparePartCommand represents a request to place a spare part into a
// storage slot, moving it to the RANGE stage.
type AssignSparePartCommand struct { //nolint:recvcheck //using for validation
	partID    kernel.UUID
	storageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignSparePartCommand creates a command to range the given part.
func NewAssignSparePartCommand(partID, storageID kernel.UUID) (AssignSparePartCommand, error) {
	if err := errors.Join(
		partID.Validate(),
		storageID.Validate(),
	); err != nil {
		return AssignSparePartCommand{}, err
	}

	return AssignSparePartCommand{
		partID:    partID,
		storageID: storageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignSparePartCommand) Validate() error {
	return c.guard.Validate(ErrAssignSparePartCommandIsNotConstructed)
}

// PartID returns the identifier of the part to range.
func (c AssignSparePartCommand) PartID() kernel.UUID {
	return c.partID
}

// StorageID returns the identifier of the target storage slot.
func (c AssignSparePartCommand) StorageID() kernel.UUID {
	return c.storageID
}
