package order

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrClientAndCompanyAreExclusive indicates that an order referenced both
	// a person client and a company client. At most one may be set.
	ErrClientAndCompanyAreExclusive = errors.New("order cannot reference both a client and a company")

	// ErrOrderAlreadyInContainer indicates that a shipped order was asked to
	// join a grouped batch. Batch membership only applies before shipping.
	ErrOrderAlreadyInContainer = errors.New("order is already assigned to a container")
)

// Order is the aggregate root for a vehicle order (commande). It carries the
// vehicle specification, the buyer reference, and the lifecycle state the
// workflow operations move through.
//
// Invariants:
//   - At most one of client / company is set (an order may have neither).
//   - Batch membership and container assignment are mutually exclusive:
//     assigning an order to a container detaches it from its batch.
//   - Status and flag always hold defined values.
type Order struct {
	id           kernel.UUID
	clientID     *kernel.UUID
	companyID    *kernel.UUID
	spec         VehicleSpec
	deliveryDate time.Time
	price        *decimal.Decimal
	status       Status
	flag         Flag
	batchID      *kernel.UUID
	containerID  *kernel.UUID

	isConstructed bool
}

// NewOrder creates a new order in Proposition stage with the Disponible flag.
// clientID and companyID are optional but mutually exclusive. price is
// optional; deliveryDate is required.
func NewOrder(
	id kernel.UUID,
	clientID *kernel.UUID,
	companyID *kernel.UUID,
	spec VehicleSpec,
	deliveryDate time.Time,
	price *decimal.Decimal,
) (*Order, error) {
	o := &Order{
		status:        StatusProposition,
		flag:          FlagDisponible,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyer(clientID, companyID),
		o.setSpec(spec),
		o.setDeliveryDate(deliveryDate),
	); err != nil {
		return nil, err
	}
	o.price = price

	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its full state.
func RestoreOrder(
	id kernel.UUID,
	clientID *kernel.UUID,
	companyID *kernel.UUID,
	spec VehicleSpec,
	deliveryDate time.Time,
	price *decimal.Decimal,
	status Status,
	flag Flag,
	batchID *kernel.UUID,
	containerID *kernel.UUID,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyer(clientID, companyID),
		o.setSpec(spec),
		o.setDeliveryDate(deliveryDate),
		status.Validate(),
		flag.Validate(),
	); err != nil {
		return nil, err
	}

	o.price = price
	o.status = status
	o.flag = flag
	o.batchID = batchID
	o.containerID = containerID

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Client returns the person client reference, nil if none.
func (o *Order) Client() *kernel.UUID {
	return o.clientID
}

// Company returns the company client reference, nil if none.
func (o *Order) Company() *kernel.UUID {
	return o.companyID
}

// Spec returns the vehicle specification.
func (o *Order) Spec() VehicleSpec {
	return o.spec
}

// DeliveryDate returns the requested delivery date.
func (o *Order) DeliveryDate() time.Time {
	return o.deliveryDate
}

// Price returns the unit price, nil if not negotiated yet.
func (o *Order) Price() *decimal.Decimal {
	return o.price
}

// Status returns the current lifecycle stage.
func (o *Order) Status() Status {
	return o.status
}

// Flag returns the sold/available flag.
func (o *Order) Flag() Flag {
	return o.flag
}

// Batch returns the grouped-batch reference, nil when the order is not
// grouped or already shipped.
func (o *Order) Batch() *kernel.UUID {
	return o.batchID
}

// Container returns the shipping container reference, nil before shipping.
func (o *Order) Container() *kernel.UUID {
	return o.containerID
}

// IsSold reports whether the order is flagged Vendue.
func (o *Order) IsSold() bool {
	return o.flag == FlagVendue
}

// Dispatch forces the order into the Valide stage. Both the dispatch
// operation and the assembly-status cascade set Valide unconditionally,
// whatever the current stage is.
func (o *Order) Dispatch() {
	o.status = StatusValide
}

// JoinBatch attaches the order to a grouped batch and validates it.
// Orders already shipped in a container cannot join a batch.
func (o *Order) JoinBatch(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}
	if o.containerID != nil {
		return ErrOrderAlreadyInContainer
	}

	o.batchID = &batchID
	o.status = StatusValide
	return nil
}

// LeaveBatch detaches the order from its grouped batch, if any.
func (o *Order) LeaveBatch() {
	o.batchID = nil
}

// AssignToContainer places the order in a shipping container and detaches it
// from any grouped batch it belonged to. An order belongs to a batch only
// until it ships.
func (o *Order) AssignToContainer(containerID kernel.UUID) error {
	if err := containerID.Validate(); err != nil {
		return err
	}

	o.containerID = &containerID
	o.batchID = nil
	return nil
}

// MarkSold flags the order as Vendue.
func (o *Order) MarkSold() {
	o.flag = FlagVendue
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBuyer(clientID, companyID *kernel.UUID) error {
	if clientID != nil && companyID != nil {
		return ErrClientAndCompanyAreExclusive
	}
	if clientID != nil {
		if err := clientID.Validate(); err != nil {
			return err
		}
	}
	if companyID != nil {
		if err := companyID.Validate(); err != nil {
			return err
		}
	}

	o.clientID = clientID
	o.companyID = companyID
	return nil
}

func (o *Order) setSpec(spec VehicleSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	o.spec = spec
	return nil
}

func (o *Order) setDeliveryDate(deliveryDate time.Time) error {
	if deliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("deliveryDate")
	}
	o.deliveryDate = deliveryDate
	return nil
}
