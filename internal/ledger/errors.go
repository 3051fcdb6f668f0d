package ledger

import "errors"

// Domain errors. Every precondition violation surfaces exactly one of these,
// so callers can branch with errors.Is. The HTTP layer maps them to status
// codes in internal/httputil; the ledger itself never logs.
var (
	// ErrInvalidInput covers malformed or missing required fields
	// (empty holder name, empty holder id, empty payment description).
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidAmount is returned when a non-positive amount is supplied
	// where a positive amount is required.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInsufficientFunds is returned when a debit exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidTarget is returned when a transfer target is missing or is
	// the source account itself.
	ErrInvalidTarget = errors.New("invalid transfer target")

	// ErrSameAccount is returned by registry transfers when source and
	// destination numbers are equal.
	ErrSameAccount = errors.New("cannot transfer to the same account")

	// ErrDuplicateHolder is returned when the holder id already has an
	// account in the registry.
	ErrDuplicateHolder = errors.New("holder id already registered")

	// ErrAccountNotFound is returned for unknown or removed account numbers.
	ErrAccountNotFound = errors.New("account not found")

	// ErrNonZeroBalance is returned when removing an account that still
	// holds funds.
	ErrNonZeroBalance = errors.New("account balance must be zero")
)
