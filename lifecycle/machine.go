package lifecycle

import (
	"errors"
	"fmt"
)

// Trigger is an action that may move an invoice to a new status
type Trigger string

const (
	TriggerGeneratePDF Trigger = "generate_pdf"
	TriggerComplete    Trigger = "complete"
	TriggerPay         Trigger = "pay"
	TriggerCancel      Trigger = "cancel"
)

var (
	// ErrInvalidTransition is returned when a trigger is not permitted in the current status
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidStatus is returned when a status is not a known lifecycle status
	ErrInvalidStatus = errors.New("invalid status")
)

// transitions is the full lifecycle:
//
//	created  -> invoiced (generate_pdf), completed, paid, cancelled
//	invoiced -> completed
//	completed, paid, cancelled are terminal
var transitions = map[Status]map[Trigger]Status{
	StatusCreated: {
		TriggerGeneratePDF: StatusInvoiced,
		TriggerComplete:    StatusCompleted,
		TriggerPay:         StatusPaid,
		TriggerCancel:      StatusCancelled,
	},
	StatusInvoiced: {
		TriggerComplete: StatusCompleted,
	},
}

// CanFire returns true if the trigger is permitted in the given status
func CanFire(from Status, trigger Trigger) bool {
	_, ok := transitions[from][trigger]
	return ok
}

// Fire returns the status produced by applying the trigger, or
// ErrInvalidTransition if the trigger is not permitted. Terminal statuses
// never permit a trigger.
func Fire(from Status, trigger Trigger) (Status, error) {
	if !from.IsValid() {
		return from, fmt.Errorf("%w: %q", ErrInvalidStatus, from)
	}
	next, ok := transitions[from][trigger]
	if !ok {
		return from, fmt.Errorf("%w: cannot %s a %s invoice", ErrInvalidTransition, trigger, from)
	}
	return next, nil
}

// PermittedTriggers returns all triggers that can fire in the given status
func PermittedTriggers(from Status) []Trigger {
	var out []Trigger
	for _, t := range []Trigger{TriggerGeneratePDF, TriggerComplete, TriggerPay, TriggerCancel} {
		if CanFire(from, t) {
			out = append(out, t)
		}
	}
	return out
}

// CanEdit reports whether line items may still be replaced. Editing does
// not change the status, so it is a guard rather than a transition.
func CanEdit(s Status) bool {
	return s == StatusCreated
}

// CanDelete reports whether the invoice may still be removed from its client
func CanDelete(s Status) bool {
	return s == StatusCreated
}
