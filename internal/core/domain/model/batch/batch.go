// Package batch provides the domain model for grouped order batches
// (commandes groupées): orders grouped together for bulk supplier validation
// and shipment planning. A batch is immutable after creation except for its
// status and the membership tracked on the orders themselves.
package batch

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

var (
	// ErrBatchIsNotConstructed is returned when a Batch instance was not
	// created through the NewBatch or RestoreBatch factory methods.
	ErrBatchIsNotConstructed = errors.New("Batch must be created via NewBatch constructor")

	// ErrBatchHasNoOrders indicates that grouping was attempted with an empty
	// member list. A batch always starts with at least one order.
	ErrBatchHasNoOrders = errors.New("batch requires at least one member order")
)

// Batch is the aggregate root for a grouped order batch (commande groupée).
// A batch records the validation date, aggregate member counts, and a
// free-text summary of its member specifications. It is immutable after
// creation except for its status.
//
// Invariants:
//   - totalCount == soldCount + availableCount
//   - Counts and summary reflect the members at grouping time
type Batch struct {
	id             kernel.UUID
	validationDate time.Time
	totalCount     int
	soldCount      int
	availableCount int
	details        string
	status         Status

	isConstructed bool
}

// NewBatch groups the given member orders into a new batch in Proposition
// stage. Counts and the details summary are derived from the members. The
// caller is responsible for attaching the members to the batch afterwards
// (order.JoinBatch).
func NewBatch(id kernel.UUID, validationDate time.Time, members []*order.Order) (*Batch, error) {
	if len(members) == 0 {
		return nil, ErrBatchHasNoOrders
	}

	b := &Batch{
		status:        StatusProposition,
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setValidationDate(validationDate),
	); err != nil {
		return nil, err
	}

	for _, member := range members {
		if err := member.Validate(); err != nil {
			return nil, err
		}
		b.totalCount++
		if member.IsSold() {
			b.soldCount++
		} else {
			b.availableCount++
		}
	}
	b.details = Summarize(members)

	return b, nil
}

// RestoreBatch reconstructs a batch from persistence with its full state.
func RestoreBatch(
	id kernel.UUID,
	validationDate time.Time,
	totalCount, soldCount, availableCount int,
	details string,
	status Status,
) (*Batch, error) {
	b := &Batch{
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setValidationDate(validationDate),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	b.totalCount = totalCount
	b.soldCount = soldCount
	b.availableCount = availableCount
	b.details = details
	b.status = status

	return b, nil
}

// Validate ensures the Batch instance was properly constructed.
func (b *Batch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBatchIsNotConstructed
	}
	return nil
}

// ID returns the batch's unique identifier.
func (b *Batch) ID() kernel.UUID {
	return b.id
}

// ValidationDate returns the supplier validation date.
func (b *Batch) ValidationDate() time.Time {
	return b.validationDate
}

// TotalCount returns the number of member orders at grouping time.
func (b *Batch) TotalCount() int {
	return b.totalCount
}

// SoldCount returns how many members were flagged Vendue at grouping time.
func (b *Batch) SoldCount() int {
	return b.soldCount
}

// AvailableCount returns how many members were flagged Disponible at
// grouping time.
func (b *Batch) AvailableCount() int {
	return b.availableCount
}

// Details returns the free-text summary of member specifications.
func (b *Batch) Details() string {
	return b.details
}

// Status returns the current lifecycle stage.
func (b *Batch) Status() Status {
	return b.status
}

// Advance moves the batch to the next stage in the fixed progression.
// Returns an error at the terminal stage.
func (b *Batch) Advance() error {
	next, ok := b.status.Next()
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("etapeCommandeGroupee",
			fmt.Errorf("%s is the terminal batch status", b.status))
	}
	b.status = next
	return nil
}

// MarkInTransit forces the batch into the Transite stage. Called when the
// last member order detaches for shipping; idempotent.
func (b *Batch) MarkInTransit() {
	b.status = StatusTransite
}

// Summarize builds the details text for a set of member orders: one line per
// distinct (model, color, engine, transmission) specification with its member
// count, in first-occurrence order.
func Summarize(members []*order.Order) string {
	type specGroup struct {
		spec  order.VehicleSpec
		count int
	}

	var groups []*specGroup
	byKey := make(map[string]*specGroup)
	for _, member := range members {
		key := member.Spec().GroupKey()
		if g, ok := byKey[key]; ok {
			g.count++
			continue
		}
		g := &specGroup{spec: member.Spec(), count: 1}
		byKey[key] = g
		groups = append(groups, g)
	}

	lines := make([]string, 0, len(groups))
	for _, g := range groups {
		lines = append(lines, fmt.Sprintf("%d x %s %s %s %s",
			g.count, g.spec.Model(), g.spec.Color(), g.spec.Engine(), g.spec.Transmission()))
	}
	return strings.Join(lines, "\n")
}

func (b *Batch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Batch) setValidationDate(validationDate time.Time) error {
	if validationDate.IsZero() {
		return errs.NewValueIsRequiredError("validationDate")
	}
	b.validationDate = validationDate
	return nil
}
