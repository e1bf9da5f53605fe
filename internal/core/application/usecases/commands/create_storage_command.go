package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrCreateStorageCommandIsNotConstructed = errors.New(
	"CreateStorageCommand must be created via NewCreateStorageCommand constructor",
)

// CreateStorageCommand represents a request to register a warehouse storage
// slot. Coordinates are free-form labels mirroring the warehouse floor.
type CreateStorageCommand struct { //nolint:recvcheck //using for validation
	number  string
	door    string
	rack    string
	level   string
	caseNum string

	guard guard.ConstructorGuard
}

// NewCreateStorageCommand creates a command to register a storage slot.
func NewCreateStorageCommand(number, door, rack, level, caseNum string) (CreateStorageCommand, error) {
	return CreateStorageCommand{
		number:  number,
		door:    door,
		rack:    rack,
		level:   level,
		caseNum: caseNum,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStorageCommand) Validate() error {
	return c.guard.Validate(ErrCreateStorageCommandIsNotConstructed)
}

// Number returns the storage number label.
func (c CreateStorageCommand) Number() string {
	return c.number
}

// Door returns the door coordinate.
func (c CreateStorageCommand) Door() string {
	return c.door
}

// Rack returns the rack coordinate.
func (c CreateStorageCommand) Rack() string {
	return c.rack
}

// Level returns the shelf level coordinate.
func (c CreateStorageCommand) Level() string {
	return c.level
}

// Case returns the case coordinate.
func (c CreateStorageCommand) Case() string {
	return c.caseNum
}
