package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrMarkContainerInformedCommandIsNotConstructed = errors.New(
	"MarkContainerInformedCommand must be created via NewMarkContainerInformedCommand constructor",
)

// MarkContainerInformedCommand represents the explicit confirmation that a
// container in transit has been declared, moving it to RENSEIGNE.
type MarkContainerInformedCommand struct { //nolint:recvcheck //using for validation
	containerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkContainerInformedCommand creates a command to mark the given
// container as informed.
func NewMarkContainerInformedCommand(containerID kernel.UUID) (MarkContainerInformedCommand, error) {
	if err := containerID.Validate(); err != nil {
		return MarkContainerInformedCommand{}, err
	}

	return MarkContainerInformedCommand{
		containerID: containerID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkContainerInformedCommand) Validate() error {
	return c.guard.Validate(ErrMarkContainerInformedCommandIsNotConstructed)
}

// ContainerID returns the identifier of the container to mark.
func (c MarkContainerInformedCommand) ContainerID() kernel.UUID {
	return c.containerID
}
