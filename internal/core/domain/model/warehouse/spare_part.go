// Package warehouse provides the domain model for the spare-part side of the
// system: parts verified on arrival and the physical storage slots they are
// assigned to. Many parts may share one slot.
package warehouse

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrSparePartIsNotConstructed is returned when a SparePart instance was not
// created through the NewSparePart or RestoreSparePart factory methods.
var ErrSparePartIsNotConstructed = errors.New("SparePart must be created via NewSparePart constructor")

// SparePart is an inventory item moving through warehouse verification and
// storage assignment. A part optionally belongs to a subcase it shipped in
// and, once ranged, references its storage slot.
type SparePart struct {
	id        kernel.UUID
	code      string
	name      string
	nameFr    string
	quantity  int
	status    Status
	subcaseID *kernel.UUID
	storageID *kernel.UUID

	isConstructed bool
}

// NewSparePart creates a spare part in EnAttente stage with no storage slot.
func NewSparePart(
	id kernel.UUID,
	code, name, nameFr string,
	quantity int,
	subcaseID *kernel.UUID,
) (*SparePart, error) {
	p := &SparePart{
		status:        StatusEnAttente,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setCode(code),
		p.setName(name),
		p.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	if subcaseID != nil {
		if err := subcaseID.Validate(); err != nil {
			return nil, err
		}
	}
	p.nameFr = nameFr
	p.subcaseID = subcaseID

	return p, nil
}

// RestoreSparePart reconstructs a spare part from persistence.
func RestoreSparePart(
	id kernel.UUID,
	code, name, nameFr string,
	quantity int,
	status Status,
	subcaseID *kernel.UUID,
	storageID *kernel.UUID,
) (*SparePart, error) {
	p, err := NewSparePart(id, code, name, nameFr, quantity, subcaseID)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if storageID != nil {
		if err = storageID.Validate(); err != nil {
			return nil, err
		}
	}

	p.status = status
	p.storageID = storageID
	return p, nil
}

// Validate ensures the SparePart instance was properly constructed.
func (p *SparePart) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrSparePartIsNotConstructed
	}
	return nil
}

// ID returns the spare part's unique identifier.
func (p *SparePart) ID() kernel.UUID {
	return p.id
}

// Code returns the part code.
func (p *SparePart) Code() string {
	return p.code
}

// Name returns the part name.
func (p *SparePart) Name() string {
	return p.name
}

// NameFr returns the French part name, empty if not provided.
func (p *SparePart) NameFr() string {
	return p.nameFr
}

// Quantity returns the stocked quantity.
func (p *SparePart) Quantity() int {
	return p.quantity
}

// Status returns the current verification stage.
func (p *SparePart) Status() Status {
	return p.status
}

// SubcaseRef returns the subcase the part shipped in, nil if unknown.
func (p *SparePart) SubcaseRef() *kernel.UUID {
	return p.subcaseID
}

// Storage returns the assigned storage slot, nil before assignment.
func (p *SparePart) Storage() *kernel.UUID {
	return p.storageID
}

// AssignStorage places the part in a storage slot and forces the Range stage,
// whatever the current stage is.
func (p *SparePart) AssignStorage(storageID kernel.UUID) error {
	if err := storageID.Validate(); err != nil {
		return err
	}

	p.storageID = &storageID
	p.status = StatusRange
	return nil
}

func (p *SparePart) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *SparePart) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("partCode")
	}
	p.code = code
	return nil
}

func (p *SparePart) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("partName")
	}
	p.name = name
	return nil
}

func (p *SparePart) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	p.quantity = quantity
	return nil
}
