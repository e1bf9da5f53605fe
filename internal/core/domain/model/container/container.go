package container

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrContainerIsNotConstructed is returned when a Container instance was
	// not created through the NewContainer or RestoreContainer factory methods.
	ErrContainerIsNotConstructed = errors.New("Container must be created via NewContainer constructor")

	// ErrStatusIsTerminal indicates an advance was attempted from the last
	// stage of the progression.
	ErrStatusIsTerminal = errors.New("container status is terminal")

	// ErrAdvanceRequiresMarkInformed indicates the generic advance operation
	// was asked to perform the Transite -> Renseigne step, which only the
	// dedicated mark-informed operation may do.
	ErrAdvanceRequiresMarkInformed = errors.New("transit containers advance to RENSEIGNE via the mark-informed operation")
)

// Container is the aggregate root for a shipping container (conteneur). It
// carries the shipping identifiers and metrics and moves forward through the
// fixed seven-stage logistics progression.
//
// Invariants:
//   - The container number is globally unique (enforced by the store)
//   - Status only moves forward through the fixed stage order, except for the
//     unconditional mark-informed operation
type Container struct {
	id          kernel.UUID
	number      string
	sealNumber  string
	packages    int
	weight      decimal.Decimal
	stuffingMap string
	status      Status
	embarkedAt  *time.Time
	arrivedAt   *time.Time

	isConstructed bool
}

// NewContainer creates a container in Charge stage: containers enter the
// system already loaded with the orders attached at creation time. The
// container number and seal number are required; packages must be positive.
func NewContainer(
	id kernel.UUID,
	number string,
	sealNumber string,
	packages int,
	weight decimal.Decimal,
	stuffingMap string,
	embarkedAt *time.Time,
	arrivedAt *time.Time,
) (*Container, error) {
	c := &Container{
		status:        StatusCharge,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setNumber(number),
		c.setSealNumber(sealNumber),
		c.setPackages(packages),
	); err != nil {
		return nil, err
	}

	c.weight = weight
	c.stuffingMap = stuffingMap
	c.embarkedAt = embarkedAt
	c.arrivedAt = arrivedAt

	return c, nil
}

// RestoreContainer reconstructs a container from persistence.
func RestoreContainer(
	id kernel.UUID,
	number string,
	sealNumber string,
	packages int,
	weight decimal.Decimal,
	stuffingMap string,
	status Status,
	embarkedAt *time.Time,
	arrivedAt *time.Time,
) (*Container, error) {
	c := &Container{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setNumber(number),
		c.setSealNumber(sealNumber),
		c.setPackages(packages),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	c.weight = weight
	c.stuffingMap = stuffingMap
	c.status = status
	c.embarkedAt = embarkedAt
	c.arrivedAt = arrivedAt

	return c, nil
}

// Validate ensures the Container instance was properly constructed.
func (c *Container) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrContainerIsNotConstructed
	}
	return nil
}

// ID returns the container's unique identifier.
func (c *Container) ID() kernel.UUID {
	return c.id
}

// Number returns the globally unique container number.
func (c *Container) Number() string {
	return c.number
}

// SealNumber returns the seal number.
func (c *Container) SealNumber() string {
	return c.sealNumber
}

// Packages returns the declared package count.
func (c *Container) Packages() int {
	return c.packages
}

// Weight returns the declared gross weight.
func (c *Container) Weight() decimal.Decimal {
	return c.weight
}

// StuffingMap returns the free-text stuffing map.
func (c *Container) StuffingMap() string {
	return c.stuffingMap
}

// Status returns the current logistics stage.
func (c *Container) Status() Status {
	return c.status
}

// EmbarkedAt returns the embarkation date, nil if not set.
func (c *Container) EmbarkedAt() *time.Time {
	return c.embarkedAt
}

// ArrivedAt returns the arrival date, nil if not set.
func (c *Container) ArrivedAt() *time.Time {
	return c.arrivedAt
}

// IsSelectable reports whether orders can still be assigned to the container.
// Only waiting containers accept new orders.
func (c *Container) IsSelectable() bool {
	return c.status == StatusEnAttente
}

// Advance moves the container to the next stage in the fixed progression.
// The Transite -> Renseigne step is refused: it belongs to MarkInformed.
// Returns ErrStatusIsTerminal from the last stage.
func (c *Container) Advance() error {
	next, ok := c.status.Next()
	if !ok {
		return ErrStatusIsTerminal
	}
	if c.status == StatusTransite && next == StatusRenseigne {
		return ErrAdvanceRequiresMarkInformed
	}

	c.status = next
	return nil
}

// MarkInformed records that customs information has been filed, setting the
// stage to Renseigne whatever the current stage is. Idempotent.
func (c *Container) MarkInformed() {
	c.status = StatusRenseigne
}

// MarkLoaded forces the container into the Charge stage. Used when an order
// assignment declares the container full.
func (c *Container) MarkLoaded() {
	c.status = StatusCharge
}

func (c *Container) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Container) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("conteneurNumber")
	}
	c.number = number
	return nil
}

func (c *Container) setSealNumber(sealNumber string) error {
	if sealNumber == "" {
		return errs.NewValueIsRequiredError("sealNumber")
	}
	c.sealNumber = sealNumber
	return nil
}

func (c *Container) setPackages(packages int) error {
	if packages < 0 {
		return errs.NewValueIsInvalidErrorWithCause("packages",
			fmt.Errorf("%d is negative", packages))
	}
	c.packages = packages
	return nil
}
