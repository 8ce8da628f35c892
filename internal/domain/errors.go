package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrInvalidBooking  = errors.New("invalid booking")
	ErrInvalidReview   = errors.New("invalid review")
	ErrAlreadyReviewed = errors.New("already reviewed")
)

// FetchKind classifies upstream failures.
type FetchKind int

const (
	// FetchFailure covers transport errors, non-2xx statuses and undecodable bodies.
	FetchFailure FetchKind = iota
	// ValidationFailure means the payload decoded but a record is missing required fields.
	ValidationFailure
)

func (k FetchKind) String() string {
	if k == ValidationFailure {
		return "validation"
	}
	return "fetch"
}

// FetchError is what upstream adapters return. Services turn it into a
// fallback value; it never reaches HTTP callers.
type FetchError struct {
	Kind   FetchKind
	Source string // catalog|weather
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s %s failure: %v", e.Source, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func FetchFailed(source string, err error) error {
	return &FetchError{Kind: FetchFailure, Source: source, Err: err}
}

func ValidationFailed(source string, err error) error {
	return &FetchError{Kind: ValidationFailure, Source: source, Err: err}
}

// KindOf reports the FetchKind of err. Errors that are not a *FetchError count
// as FetchFailure.
func KindOf(err error) FetchKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return FetchFailure
}
