package container

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the logistics stage of a shipping container
// (etapeConteneur).
//
// Stage progression:
//
//	EnAttente ──> Charge ──> Transite ──> Renseigne ──> Arrive ──> Decharge ──> Verifie
//
// The progression is strictly forward. The Transite -> Renseigne step is not
// reachable through the generic advance operation: customs paperwork goes
// through the dedicated "mark informed" operation instead.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusEnAttente is the initial stage: the container is waiting to be
	// loaded and is still selectable for order assignment.
	StatusEnAttente

	// StatusCharge indicates the container has been loaded with orders.
	StatusCharge

	// StatusTransite indicates the container is at sea.
	StatusTransite

	// StatusRenseigne indicates customs information has been filed.
	StatusRenseigne

	// StatusArrive indicates the container reached the destination port.
	StatusArrive

	// StatusDecharge indicates the container has been unloaded.
	StatusDecharge

	// StatusVerifie is the terminal stage: contents verified at the warehouse.
	StatusVerifie
)

// statusOrder is the fixed seven-stage progression of a container.
var statusOrder = []Status{
	StatusEnAttente,
	StatusCharge,
	StatusTransite,
	StatusRenseigne,
	StatusArrive,
	StatusDecharge,
	StatusVerifie,
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusEnAttente: "EN_ATTENTE",
		StatusCharge:    "CHARGE",
		StatusTransite:  "TRANSITE",
		StatusRenseigne: "RENSEIGNE",
		StatusArrive:    "ARRIVE",
		StatusDecharge:  "DECHARGE",
		StatusVerifie:   "VERIFIE",
	}
}

// StatusFromString parses the wire representation of a container stage.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("etapeConteneur",
		fmt.Errorf("%q is not a valid container status", s))
}

// Validate checks that the Status is one of the defined stages.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusVerifie {
		return errs.NewValueIsInvalidErrorWithCause("etapeConteneur",
			fmt.Errorf("%d is not a valid container status", s))
	}
	return nil
}

// String returns the wire name of the status ("EN_ATTENTE", "CHARGE", ...).
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Next returns the following stage in the fixed seven-stage progression, or
// false at the terminal stage (Verifie).
func (s Status) Next() (Status, bool) {
	for i, status := range statusOrder {
		if status == s && i+1 < len(statusOrder) {
			return statusOrder[i+1], true
		}
	}
	return StatusUnknown, false
}
