package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new vehicle order.
// Carries the vehicle specification, the optional buyer reference (person or
// company, never both), the requested delivery date, and the optional
// negotiated price.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	clientID     *kernel.UUID
	companyID    *kernel.UUID
	spec         order.VehicleSpec
	deliveryDate time.Time
	price        *decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new vehicle order.
// The vehicle fields are validated here; buyer exclusivity is enforced by the
// order aggregate when the handler builds it.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientID *kernel.UUID,
	companyID *kernel.UUID,
	model, color, engine, transmission string,
	doors int,
	deliveryDate time.Time,
	price *decimal.Decimal,
) (CreateOrderCommand, error) {
	spec, err := order.NewVehicleSpec(model, color, engine, transmission, doors)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	cmd := CreateOrderCommand{
		spec:  spec,
		price: price,
		guard: guard.NewConstructorGuard(),
	}

	if err = errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDeliveryDate(deliveryDate),
	); err != nil {
		return CreateOrderCommand{}, err
	}
	cmd.clientID = clientID
	cmd.companyID = companyID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the person buyer reference, nil if none.
func (c CreateOrderCommand) ClientID() *kernel.UUID {
	return c.clientID
}

// CompanyID returns the company buyer reference, nil if none.
func (c CreateOrderCommand) CompanyID() *kernel.UUID {
	return c.companyID
}

// Spec returns the validated vehicle specification.
func (c CreateOrderCommand) Spec() order.VehicleSpec {
	return c.spec
}

// DeliveryDate returns the requested delivery date.
func (c CreateOrderCommand) DeliveryDate() time.Time {
	return c.deliveryDate
}

// Price returns the negotiated unit price, nil if open.
func (c CreateOrderCommand) Price() *decimal.Decimal {
	return c.price
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setDeliveryDate(deliveryDate time.Time) error {
	if deliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("deliveryDate")
	}
	c.deliveryDate = deliveryDate
	return nil
}
