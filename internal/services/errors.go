// Package services defines the business logic for profiles, tasks, chats,
// authentication, and applications. This file centralizes common
// service-level error values so that they can be consistently returned by
// service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing flash messages and redirects is performed at the handler
// layer: validation errors flash their own message, everything else becomes a
// generic failure flash.
package services

import "errors"

var (
	// ErrEmployeeNotFound indicates the requested employee row does not exist.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrInvalidCredentials is returned for a wrong password on a known
	// account. It deliberately carries no detail about the account itself.
	ErrInvalidCredentials = errors.New("invalid password")

	// ErrNeedsPasswordSetup signals that the login id has no credential yet
	// and the caller should run the password-set flow.
	ErrNeedsPasswordSetup = errors.New("password setup required")
)

// ValidationError is a user-correctable form problem; its message is shown
// to the user verbatim as a flash.
type ValidationError struct {
	msg string
}

// Error returns the user-facing message.
func (e *ValidationError) Error() string { return e.msg }

// Validation returns a user-facing validation error with the given message.
func Validation(msg string) error { return &ValidationError{msg: msg} }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
