package repository

import "errors"

var (
	// ErrRecordNotFound covers both an absent id and an id in the wrong
	// lifecycle state for the requested operation.
	ErrRecordNotFound = errors.New("record not found")

	// ErrUnknownModel is returned before any lifecycle operation runs when
	// the model name is not registered.
	ErrUnknownModel = errors.New("unknown model")
)
