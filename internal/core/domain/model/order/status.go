package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle stage of a vehicle order (etapeCommande).
//
// Stage progression:
//
//	Proposition ──> Valide ──> Verifier
//
// Valide is also reachable out of ladder order: dispatching an order and the
// assembly-status cascade both force it, whatever the current stage is.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusProposition is the initial stage of a freshly created order.
	StatusProposition

	// StatusValide indicates the order has been dispatched or validated,
	// either directly or by joining a grouped batch.
	StatusValide

	// StatusVerifier indicates the order passed verification and is eligible
	// for an assembly order.
	StatusVerifier
)

// statusOrder is the fixed progression of order stages.
var statusOrder = []Status{StatusProposition, StatusValide, StatusVerifier}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:     "UNKNOWN",
		StatusProposition: "PROPOSITION",
		StatusValide:      "VALIDE",
		StatusVerifier:    "VERIFIER",
	}
}

// StatusFromString parses the wire representation of an order stage.
// Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("etapeCommande",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the Status is one of the defined stages.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("etapeCommande",
			fmt.Errorf("%d is not a valid order status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("etapeCommande",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the wire name of the status ("PROPOSITION", "VALIDE", ...).
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

// Flag marks an order as sold or still available (commandeFlag).
type Flag int

const (
	// FlagUnknown represents an invalid or undefined flag.
	FlagUnknown Flag = iota

	// FlagVendue marks the order as sold to a client.
	FlagVendue

	// FlagDisponible marks the order as available stock.
	FlagDisponible
)

func getFlagStrings() map[Flag]string {
	return map[Flag]string{
		FlagUnknown:    "UNKNOWN",
		FlagVendue:     "VENDUE",
		FlagDisponible: "DISPONIBLE",
	}
}

// FlagFromString parses the wire representation of an order flag.
func FlagFromString(s string) (Flag, error) {
	for flag, str := range getFlagStrings() {
		if str == s && flag != FlagUnknown {
			return flag, nil
		}
	}
	return FlagUnknown, errs.NewValueIsInvalidErrorWithCause("commandeFlag",
		fmt.Errorf("%q is not a valid order flag", s))
}

// Validate checks that the Flag is one of the defined values.
func (f Flag) Validate() error {
	if f != FlagVendue && f != FlagDisponible {
		return errs.NewValueIsInvalidErrorWithCause("commandeFlag",
			fmt.Errorf("%d is not a valid order flag", f))
	}
	return nil
}

// String returns the wire name of the flag ("VENDUE" or "DISPONIBLE").
func (f Flag) String() string {
	if str, ok := getFlagStrings()[f]; ok {
		return str
	}
	return "UNKNOWN"
}
