package order

import (
	"fmt"
	"strings"

	"shiporder/internal/pkg/errs"
)

// Status is the lifecycle state of a shipment order.
//
// Happy path (forward only):
//
//	Draft ─> Pending ─> Confirmed ─> ReadyForPickup ─> PickingUp ─> PickedUp ─> AtOriginOffice
//	  ─> InTransit ─> AtDestOffice ─> Delivering ─> Delivered
//
// Side branches:
//
//	Delivering ─> FailedDelivery ─┬─> Delivering (another attempt)
//	                              └─> Returning ─> Returned
//	Draft | Pending | Confirmed | ReadyForPickup ─> Cancelled
//
// Delivered, Returned and Cancelled are terminal.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota
	Draft
	Pending
	Confirmed
	ReadyForPickup
	PickingUp
	PickedUp
	AtOriginOffice
	InTransit
	AtDestOffice
	Delivering
	Delivered
	FailedDelivery
	Returning
	Returned
	Cancelled
)

var statusNames = map[Status]string{
	Unknown:        "UNKNOWN",
	Draft:          "DRAFT",
	Pending:        "PENDING",
	Confirmed:      "CONFIRMED",
	ReadyForPickup: "READY_FOR_PICKUP",
	PickingUp:      "PICKING_UP",
	PickedUp:       "PICKED_UP",
	AtOriginOffice: "AT_ORIGIN_OFFICE",
	InTransit:      "IN_TRANSIT",
	AtDestOffice:   "AT_DEST_OFFICE",
	Delivering:     "DELIVERING",
	Delivered:      "DELIVERED",
	FailedDelivery: "FAILED_DELIVERY",
	Returning:      "RETURNING",
	Returned:       "RETURNED",
	Cancelled:      "CANCELLED",
}

// transitions lists every allowed next state. Anything absent is rejected.
var transitions = map[Status]statusSet{
	Draft:          setOf(Pending, Cancelled),
	Pending:        setOf(Confirmed, Cancelled),
	Confirmed:      setOf(ReadyForPickup, Cancelled),
	ReadyForPickup: setOf(PickingUp, Cancelled),
	PickingUp:      setOf(PickedUp),
	PickedUp:       setOf(AtOriginOffice),
	AtOriginOffice: setOf(InTransit),
	InTransit:      setOf(AtDestOffice),
	AtDestOffice:   setOf(Delivering),
	Delivering:     setOf(Delivered, FailedDelivery),
	FailedDelivery: setOf(Delivering, Returning),
	Returning:      setOf(Returned),
}

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		Draft, Pending, Confirmed, ReadyForPickup, PickingUp, PickedUp, AtOriginOffice,
		InTransit, AtDestOffice, Delivering, Delivered, FailedDelivery, Returning, Returned, Cancelled,
	}
}

// ParseStatus maps a wire name such as "READY_FOR_PICKUP" to a Status.
func ParseStatus(name string) (Status, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for s, n := range statusNames {
		if s != Unknown && n == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", name))
}

// Validate rejects Unknown and out-of-range values, e.g. from the database.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := statusNames[s]; ok {
		return str
	}
	return statusNames[Unknown]
}

// IsTerminal reports the absorbing states.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Returned || s == Cancelled
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s Status) CanTransitionTo(next Status) bool {
	return transitions[s].has(next)
}

// TransitionTo validates the move and returns next.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is final and cannot transition to %s", s, next),
		)
	}
	if !s.CanTransitionTo(next) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s cannot transition to %s", s, next),
		)
	}
	return next, nil
}

// statusSet is a bitmask over Status values.
type statusSet uint32

func setOf(statuses ...Status) statusSet {
	var set statusSet
	for _, s := range statuses {
		set |= 1 << uint(s)
	}
	return set
}

func (set statusSet) has(s Status) bool {
	if s <= Unknown || s > Cancelled {
		return false
	}
	return set&(1<<uint(s)) != 0
}
