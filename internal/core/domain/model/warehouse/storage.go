package warehouse

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
)

// ErrStorageIsNotConstructed is returned when a Storage instance was not
// created through the NewStorage or RestoreStorage factory methods.
var ErrStorageIsNotConstructed = errors.New("Storage must be created via NewStorage constructor")

// Storage is a physical warehouse slot addressed by door, rack (rayon),
// shelf level (etage), and case coordinates. No coordinate validation is
// enforced: slots mirror whatever labels the warehouse uses on the floor.
type Storage struct {
	id      kernel.UUID
	number  string
	door    string
	rack    string
	level   string
	caseNum string

	isConstructed bool
}

// NewStorage creates a storage slot from its coordinates.
func NewStorage(id kernel.UUID, number, door, rack, level, caseNum string) (*Storage, error) {
	s := &Storage{isConstructed: true}

	if err := id.Validate(); err != nil {
		return nil, err
	}

	s.id = id
	s.number = number
	s.door = door
	s.rack = rack
	s.level = level
	s.caseNum = caseNum

	return s, nil
}

// RestoreStorage reconstructs a storage slot from persistence.
func RestoreStorage(id kernel.UUID, number, door, rack, level, caseNum string) (*Storage, error) {
	return NewStorage(id, number, door, rack, level, caseNum)
}

// Validate ensures the Storage instance was properly constructed.
func (s *Storage) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStorageIsNotConstructed
	}
	return nil
}

// ID returns the slot's unique identifier.
func (s *Storage) ID() kernel.UUID {
	return s.id
}

// Number returns the storage number label.
func (s *Storage) Number() string {
	return s.number
}

// Door returns the door coordinate (porte).
func (s *Storage) Door() string {
	return s.door
}

// Rack returns the rack coordinate (rayon).
func (s *Storage) Rack() string {
	return s.rack
}

// Level returns the shelf level coordinate (etage).
func (s *Storage) Level() string {
	return s.level
}

// Case returns the case coordinate.
func (s *Storage) Case() string {
	return s.caseNum
}

// Label returns the human-readable slot address used on warehouse displays.
func (s *Storage) Label() string {
	return fmt.Sprintf("%s / porte %s / rayon %s / etage %s / case %s",
		s.number, s.door, s.rack, s.level, s.caseNum)
}
