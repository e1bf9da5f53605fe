package warehouse

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the verification stage of a spare part (etapeSparePart).
//
// Stage progression:
//
//	EnAttente ──> Verifie ──> Range
//
// Range is forced, whatever the current stage, when the part is assigned to a
// storage slot.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusEnAttente is the initial stage: the part arrived but has not been
	// checked yet.
	StatusEnAttente

	// StatusVerifie indicates the magasinier checked the part against the
	// shipping documents.
	StatusVerifie

	// StatusRange indicates the part sits in an assigned storage slot.
	StatusRange
)

var statusOrder = []Status{StatusEnAttente, StatusVerifie, StatusRange}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusEnAttente: "EN_ATTENTE",
		StatusVerifie:   "VERIFIE",
		StatusRange:     "RANGE",
	}
}

// StatusFromString parses the wire representation of a spare-part stage.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("etapeSparePart",
		fmt.Errorf("%q is not a valid spare part status", s))
}

// Validate checks that the Status is one of the defined stages.
func (s Status) Validate() error {
	if s != StatusEnAttente && s != StatusVerifie && s != StatusRange {
		return errs.NewValueIsInvalidErrorWithCause("etapeSparePart",
			fmt.Errorf("%d is not a valid spare part status", s))
	}
	return nil
}

// String returns the wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Next returns the following stage in the fixed progression, or false at the
// terminal stage.
func (s Status) Next() (Status, bool) {
	for i, status := range statusOrder {
		if status == s && i+1 < len(statusOrder) {
			return statusOrder[i+1], true
		}
	}
	return StatusUnknown, false
}
