package domain

import "errors"

var (
	ErrOfferingNotFound     = errors.New("offering not found")
	ErrSessionNotFound      = errors.New("session not found")
	ErrSeriesNotFound       = errors.New("series not found")
	ErrTierNotFound         = errors.New("price tier not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrCancellationNotFound = errors.New("cancellation record not found")
)

var (
	ErrSessionFull     = errors.New("session is full")
	ErrTierFull        = errors.New("price tier is full")
	ErrSessionClosed   = errors.New("session is not open for registration")
	ErrNothingToCancel = errors.New("no active registration to cancel")
	ErrOfferingInUse   = errors.New("offering has registrations, cancel it instead")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
