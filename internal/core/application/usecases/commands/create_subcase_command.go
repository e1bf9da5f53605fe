package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateSubcaseCommandIsNotConstructed = errors.New(
	"CreateSubcaseCommand must be created via NewCreateSubcaseCommand constructor",
)

// CreateSubcaseCommand represents a request to register a subcase inside an
// existing container.
type CreateSubcaseCommand struct { //nolint:recvcheck //using for validation
	number      string
	containerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateSubcaseCommand creates a command to register a subcase.
func NewCreateSubcaseCommand(number string, containerID kernel.UUID) (CreateSubcaseCommand, error) {
	if number == "" {
		return CreateSubcaseCommand{}, errs.NewValueIsRequiredError("subcaseNumber")
	}
	if err := containerID.Validate(); err != nil {
		return CreateSubcaseCommand{}, err
	}

	return CreateSubcaseCommand{
		number:      number,
		containerID: containerID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSubcaseCommand) Validate() error {
	return c.guard.Validate(ErrCreateSubcaseCommandIsNotConstructed)
}

// Number returns the subcase number.
func (c CreateSubcaseCommand) Number() string {
	return c.number
}

// ContainerID returns the identifier of the owning container.
func (c CreateSubcaseCommand) ContainerID() kernel.UUID {
	return c.containerID
}
