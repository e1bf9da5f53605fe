// Package assembly provides the domain model for vehicle assembly orders
// (montages). A montage owns exactly one vehicle order and can only be
// created once that order has been verified; every montage status change
// cascades a validation back onto the owned order.
package assembly

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrMontageIsNotConstructed is returned when a Montage instance was not
// created through the NewMontage or RestoreMontage factory methods.
var ErrMontageIsNotConstructed = errors.New("Montage must be created via NewMontage constructor")

// Montage is the aggregate root for a vehicle assembly order. It references
// the chassis being assembled and the single vehicle order it was created
// for (1:1).
type Montage struct {
	id        kernel.UUID
	chassisNo string
	orderID   kernel.UUID
	status    Status

	isConstructed bool
}

// NewMontage creates an assembly order in Creation stage for a verified
// vehicle order. The caller is responsible for checking the source order's
// stage; creation itself does not change the order.
func NewMontage(id kernel.UUID, chassisNo string, orderID kernel.UUID) (*Montage, error) {
	m := &Montage{
		status:        StatusCreation,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setChassisNo(chassisNo),
		m.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMontage reconstructs an assembly order from persistence.
func RestoreMontage(id kernel.UUID, chassisNo string, orderID kernel.UUID, status Status) (*Montage, error) {
	m, err := NewMontage(id, chassisNo, orderID)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	m.status = status
	return m, nil
}

// Validate ensures the Montage instance was properly constructed.
func (m *Montage) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMontageIsNotConstructed
	}
	return nil
}

// ID returns the assembly order's unique identifier.
func (m *Montage) ID() kernel.UUID {
	return m.id
}

// ChassisNo returns the chassis number being assembled.
func (m *Montage) ChassisNo() string {
	return m.chassisNo
}

// Order returns the owned vehicle order's identifier.
func (m *Montage) Order() kernel.UUID {
	return m.orderID
}

// Status returns the current assembly stage.
func (m *Montage) Status() Status {
	return m.status
}

// SetStatus moves the assembly order to the given stage. Any defined stage
// is accepted: the montage dashboard lets the workshop jump stages freely,
// and every update cascades a validation onto the owned order at the
// workflow level.
func (m *Montage) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	m.status = status
	return nil
}

func (m *Montage) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Montage) setChassisNo(chassisNo string) error {
	if chassisNo == "" {
		return errs.NewValueIsRequiredError("no_chassis")
	}
	m.chassisNo = chassisNo
	return nil
}

func (m *Montage) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	m.orderID = orderID
	return nil
}
