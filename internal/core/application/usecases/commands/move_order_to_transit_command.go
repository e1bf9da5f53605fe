package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrMoveOrderToTransitCommandIsNotConstructed = errors.New(
	"MoveOrderToTransitCommand must be created via NewMoveOrderToTransitCommand constructor",
)

// MoveOrderToTransitCommand represents a request to load a single order into
// a waiting container, optionally closing the container for loading.
type MoveOrderToTransitCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	containerID   kernel.UUID
	containerFull bool

	guard guard.ConstructorGuard
}

// NewMoveOrderToTransitCommand creates a command to load an order into a
// container.
func NewMoveOrderToTransitCommand(
	orderID, containerID kernel.UUID,
	containerFull bool,
) (MoveOrderToTransitCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		containerID.Validate(),
	); err != nil {
		return MoveOrderToTransitCommand{}, err
	}

	return MoveOrderToTransitCommand{
		orderID:       orderID,
		containerID:   containerID,
		containerFull: containerFull,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MoveOrderToTransitCommand) Validate() error {
	return c.guard.Validate(ErrMoveOrderToTransitCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to load.
func (c MoveOrderToTransitCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ContainerID returns the identifier of the target container.
func (c MoveOrderToTransitCommand) ContainerID() kernel.UUID {
	return c.containerID
}

// ContainerFull reports whether this load closes the container.
func (c MoveOrderToTransitCommand) ContainerFull() bool {
	return c.containerFull
}
