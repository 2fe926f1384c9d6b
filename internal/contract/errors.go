package contract

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the store and the league service. Match them with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicate         = errors.New("already exists")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrCooldown          = errors.New("on cooldown")
	ErrLimitReached      = errors.New("limit reached")
	ErrNotEligible       = errors.New("not eligible")
	ErrInvalidInput      = errors.New("invalid input")
	ErrForbidden         = errors.New("not allowed")
	ErrInvalidState      = errors.New("invalid state")
	ErrNoSpots           = errors.New("No spots available")
)

// DatabaseError describes a failed store operation on a table.
type DatabaseError struct {
	Op    string
	Table string
	Err   error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Err)
}

// Unwrap returns the underlying error.
func (e *DatabaseError) Unwrap() error { return e.Err }

// NewDatabaseError wraps err for op on table. A nil err returns nil.
func NewDatabaseError(op, table string, err error) error {
	if err == nil {
		return nil
	}
	return &DatabaseError{Op: op, Table: table, Err: err}
}

// UserMessage renders err for a player, without the wrapping chain of sentinel errors.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var dbErr *DatabaseError
	if errors.As(err, &dbErr) && !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrDuplicate) && !errors.Is(err, ErrInsufficientFunds) {
		return "Something went wrong while saving. Please try again later."
	}
	return err.Error()
}
