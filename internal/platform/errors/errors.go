package apperrors

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("not found")
	ErrStorageWrite   = errors.New("storage write failed")
	ErrNoPIN          = errors.New("no parent pin set")
	ErrIncorrectPIN   = errors.New("incorrect pin")
	ErrPINMismatch    = errors.New("pins do not match")
	ErrSessionStopped = errors.New("session stopped")
)
