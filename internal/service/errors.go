package service

import "errors"

var (
	// ErrItemNotFound is returned when an operation targets an identifier
	// that is absent from the current item list.
	ErrItemNotFound = errors.New("item not found in current list")

	// ErrNoPendingDelete is returned by ResolveDelete when no delete is
	// awaiting confirmation.
	ErrNoPendingDelete = errors.New("no delete pending confirmation")
)
