package errors

import "errors"

var (
	ErrInvalidInput          = errors.New("lottery input is invalid")
	ErrNotEnoughParticipants = errors.New("a lottery needs at least two participants")
	ErrRecordNotFound        = errors.New("lottery record not found")
	ErrRecordImmutable       = errors.New("lottery result is immutable")
)
