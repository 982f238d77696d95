package models

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for states that carry no extra detail.
var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("unauthenticated")
)

// ValidationError lists the fields a request is missing or got wrong.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "validation failed: missing " + strings.Join(e.Missing, ", ")
}

// ForbiddenError carries the permissions the caller lacked, or a reason for
// guards that are not permission-shaped (owner-only role changes).
type ForbiddenError struct {
	Missing []Permission
	Reason  string
}

func (e *ForbiddenError) Error() string {
	if len(e.Missing) == 0 {
		return "forbidden: " + e.Reason
	}
	names := make([]string, len(e.Missing))
	for i, p := range e.Missing {
		names[i] = string(p)
	}
	return "forbidden: missing permissions " + strings.Join(names, ", ")
}

// InvalidStateError reports an operation not valid for the entity's current
// state (e.g. re-sending a sent campaign).
type InvalidStateError struct {
	Entity string
	State  string
	Op     string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state: cannot %s %s in state %q", e.Op, e.Entity, e.State)
}

// RestrictedDataAccessError reports a customer-data request declared for a
// purpose other than campaign targeting.
type RestrictedDataAccessError struct {
	Purpose DataPurpose
}

func (e *RestrictedDataAccessError) Error() string {
	return fmt.Sprintf("restricted data access: purpose %q not allowed, customer data is released for %q only",
		e.Purpose, DataPurposeCampaignTargeting)
}

// InvariantViolationError reports an operation that would break a system
// invariant (e.g. leaving a shop with zero owners).
type InvariantViolationError struct {
	Invariant string
}

func (e *InvariantViolationError) Error() string {
	return "invariant violation: " + e.Invariant
}

// CollaboratorError wraps a failed call to an external collaborator
// (identity provider, customer directory, bulk mailer).
type CollaboratorError struct {
	Collaborator string
	Err          error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s collaborator failed: %v", e.Collaborator, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }
