package container

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrSubcaseIsNotConstructed is returned when a Subcase instance was not
	// created through the NewSubcase or RestoreSubcase factory methods.
	ErrSubcaseIsNotConstructed = errors.New("Subcase must be created via NewSubcase constructor")

	// ErrToolIsNotConstructed is returned when a Tool instance was not
	// created through the NewTool or RestoreTool factory methods.
	ErrToolIsNotConstructed = errors.New("Tool must be created via NewTool constructor")
)

// Subcase is a sub-container unit inside a shipping container, holding tools
// and spare parts. Each subcase belongs to exactly one container.
type Subcase struct {
	id          kernel.UUID
	number      string
	containerID kernel.UUID

	isConstructed bool
}

// NewSubcase creates a subcase attached to a container.
func NewSubcase(id kernel.UUID, number string, containerID kernel.UUID) (*Subcase, error) {
	s := &Subcase{isConstructed: true}

	if err := errors.Join(
		s.setID(id),
		s.setNumber(number),
		s.setContainerID(containerID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSubcase reconstructs a subcase from persistence.
func RestoreSubcase(id kernel.UUID, number string, containerID kernel.UUID) (*Subcase, error) {
	return NewSubcase(id, number, containerID)
}

// Validate ensures the Subcase instance was properly constructed.
func (s *Subcase) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSubcaseIsNotConstructed
	}
	return nil
}

// ID returns the subcase's unique identifier.
func (s *Subcase) ID() kernel.UUID {
	return s.id
}

// Number returns the subcase number.
func (s *Subcase) Number() string {
	return s.number
}

// Container returns the owning container's identifier.
func (s *Subcase) Container() kernel.UUID {
	return s.containerID
}

func (s *Subcase) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Subcase) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("subcaseNumber")
	}
	s.number = number
	return nil
}

func (s *Subcase) setContainerID(containerID kernel.UUID) error {
	if err := containerID.Validate(); err != nil {
		return err
	}
	s.containerID = containerID
	return nil
}

// Tool is an inventory item shipped inside a subcase.
type Tool struct {
	id        kernel.UUID
	code      string
	name      string
	quantity  int
	subcaseID kernel.UUID

	isConstructed bool
}

// NewTool creates a tool line attached to a subcase. Code and name are
// required and the quantity must be a positive integer.
func NewTool(id kernel.UUID, code, name string, quantity int, subcaseID kernel.UUID) (*Tool, error) {
	t := &Tool{isConstructed: true}

	if err := errors.Join(
		t.setID(id),
		t.setCode(code),
		t.setName(name),
		t.setQuantity(quantity),
		t.setSubcaseID(subcaseID),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTool reconstructs a tool from persistence.
func RestoreTool(id kernel.UUID, code, name string, quantity int, subcaseID kernel.UUID) (*Tool, error) {
	return NewTool(id, code, name, quantity, subcaseID)
}

// Validate ensures the Tool instance was properly constructed.
func (t *Tool) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrToolIsNotConstructed
	}
	return nil
}

// ID returns the tool's unique identifier.
func (t *Tool) ID() kernel.UUID {
	return t.id
}

// Code returns the tool code.
func (t *Tool) Code() string {
	return t.code
}

// Name returns the tool name.
func (t *Tool) Name() string {
	return t.name
}

// Quantity returns the shipped quantity.
func (t *Tool) Quantity() int {
	return t.quantity
}

// Subcase returns the owning subcase's identifier.
func (t *Tool) Subcase() kernel.UUID {
	return t.subcaseID
}

func (t *Tool) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Tool) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("toolCode")
	}
	t.code = code
	return nil
}

func (t *Tool) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("toolName")
	}
	t.name = name
	return nil
}

func (t *Tool) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	t.quantity = quantity
	return nil
}

func (t *Tool) setSubcaseID(subcaseID kernel.UUID) error {
	if err := subcaseID.Validate(); err != nil {
		return err
	}
	t.subcaseID = subcaseID
	return nil
}
