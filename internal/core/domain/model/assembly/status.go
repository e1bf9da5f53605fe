package assembly

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the stage of a vehicle assembly order (etapeMontage).
//
// Stage progression:
//
//	Creation ──> EnCours ──> Termine
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusCreation is the initial stage of a freshly created assembly order.
	StatusCreation

	// StatusEnCours indicates assembly work has started.
	StatusEnCours

	// StatusTermine indicates the vehicle has been assembled.
	StatusTermine
)

var statusOrder = []Status{StatusCreation, StatusEnCours, StatusTermine}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "UNKNOWN",
		StatusCreation: "CREATION",
		StatusEnCours:  "EN_COURS",
		StatusTermine:  "TERMINE",
	}
}

// StatusFromString parses the wire representation of an assembly stage.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("etapeMontage",
		fmt.Errorf("%q is not a valid assembly status", s))
}

// Validate checks that the Status is one of the defined stages.
func (s Status) Validate() error {
	if s != StatusCreation && s != StatusEnCours && s != StatusTermine {
		return errs.NewValueIsInvalidErrorWithCause("etapeMontage",
			fmt.Errorf("%d is not a valid assembly status", s))
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
