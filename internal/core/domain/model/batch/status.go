package batch

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle stage of a grouped batch
// (etapeCommandeGroupee).
//
// Stage progression:
//
//	Proposition ──> Valide ──> Transite
//
// Transite is terminal: a batch reaches it when its last member order leaves
// for a shipping container. Batches are never deleted, only advanced.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusProposition is the initial stage of a freshly grouped batch.
	StatusProposition

	// StatusValide indicates the batch passed supplier validation.
	StatusValide

	// StatusTransite indicates every member order has shipped.
	StatusTransite
)

var statusOrder = []Status{StatusProposition, StatusValide, StatusTransite}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:     "UNKNOWN",
		StatusProposition: "PROPOSITION",
		StatusValide:      "VALIDE",
		StatusTransite:    "TRANSITE",
	}
}

// StatusFromString parses the wire representation of a batch stage.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("etapeCommandeGroupee",
		fmt.Errorf("%q is not a valid batch status", s))
}

// Validate checks that the Status is one of the defined stages.
func (s Status) Validate() error {
	if s != StatusProposition && s != StatusValide && s != StatusTransite {
		return errs.NewValueIsInvalidErrorWithCause("etapeCommandeGroupee",
			fmt.Errorf("%d is not a valid batch status", s))
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
