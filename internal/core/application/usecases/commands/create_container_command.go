package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateContainerCommandIsNotConstructed = errors.New(
	"CreateContainerCommand must be created via NewCreateContainerCommand constructor",
)

// CreateContainerCommand represents a request to register a loaded shipping
// container together with the orders stuffed into it.
type CreateContainerCommand struct { //nolint:recvcheck //using for validation
	number      string
	sealNumber  string
	packages    int
	weight      decimal.Decimal
	stuffingMap string
	embarkedAt  *time.Time
	arrivedAt   *time.Time
	orderIDs    []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateContainerCommand creates a command to register a container.
// Container number, seal number, and at least one order id are required.
func NewCreateContainerCommand(
	number, sealNumber string,
	packages int,
	weight decimal.Decimal,
	stuffingMap string,
	embarkedAt, arrivedAt *time.Time,
	orderIDs []kernel.UUID,
) (CreateContainerCommand, error) {
	cmd := CreateContainerCommand{
		packages:    packages,
		weight:      weight,
		stuffingMap: stuffingMap,
		embarkedAt:  embarkedAt,
		arrivedAt:   arrivedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNumber(number),
		cmd.setSealNumber(sealNumber),
		cmd.setOrderIDs(orderIDs),
	); err != nil {
		return CreateContainerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateContainerCommand) Validate() error {
	return c.guard.Validate(ErrCreateContainerCommandIsNotConstructed)
}

// Number returns the container number.
func (c CreateContainerCommand) Number() string {
	return c.number
}

// SealNumber returns the seal number.
func (c CreateContainerCommand) SealNumber() string {
	return c.sealNumber
}

// Packages returns the declared package count.
func (c CreateContainerCommand) Packages() int {
	return c.packages
}

// Weight returns the declared gross weight.
func (c CreateContainerCommand) Weight() decimal.Decimal {
	return c.weight
}

// StuffingMap returns the free-text stuffing map.
func (c CreateContainerCommand) StuffingMap() string {
	return c.stuffingMap
}

// EmbarkedAt returns the optional embarkation date.
func (c CreateContainerCommand) EmbarkedAt() *time.Time {
	return c.embarkedAt
}

// ArrivedAt returns the optional arrival date.
func (c CreateContainerCommand) ArrivedAt() *time.Time {
	return c.arrivedAt
}

// OrderIDs returns the identifiers of the orders loaded into the container.
func (c CreateContainerCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

func (c *CreateContainerCommand) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("conteneurNumber")
	}
	c.number = number
	return nil
}

func (c *CreateContainerCommand) setSealNumber(sealNumber string) error {
	if sealNumber == "" {
		return errs.NewValueIsRequiredError("sealNumber")
	}
	c.sealNumber = sealNumber
	return nil
}

func (c *CreateContainerCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return errs.NewValueIsRequiredError("commandeIds")
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	c.orderIDs = orderIDs
	return nil
}
