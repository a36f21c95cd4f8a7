package loan

import "errors"

var (
	ErrNotFound = errors.New("loan not found")

	// ErrUnavailable: the requested book has no available copies.
	ErrUnavailable = errors.New("book unavailable")

	// ErrInvalidTransition: the loan is not in the source state the
	// requested transition needs (also covers the renewal cap and
	// re-paying a fine).
	ErrInvalidTransition = errors.New("invalid loan state transition")

	// ErrNotOwner: a borrower acted on somebody else's loan.
	ErrNotOwner = errors.New("loan belongs to another borrower")
)
