package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAdvanceContainerCommandIsNotConstructed = errors.New(
	"AdvanceContainerCommand must be created via NewAdvanceContainerCommand constructor",
)

// AdvanceContainerCommand represents a request to move a container to the
// next stage of the fixed logistics progression.
type AdvanceContainerCommand struct { //nolint:recvcheck //using for validation
	containerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdvanceContainerCommand creates a command to advance the given container.
func NewAdvanceContainerCommand(containerID kernel.UUID) (AdvanceContainerCommand, error) {
	if err := containerID.Validate(); err != nil {
		return AdvanceContainerCommand{}, err
	}

	return AdvanceContainerCommand{
		containerID: containerID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceContainerCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceContainerCommandIsNotConstructed)
}

// ContainerID returns the identifier of the container to advance.
func (c AdvanceContainerCommand) ContainerID() kernel.UUID {
	return c.containerID
}
