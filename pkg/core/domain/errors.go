package domain

import "errors"

var (
	// ErrStoreUnavailable is returned by stores that were closed or never opened.
	ErrStoreUnavailable = errors.New("visitor store unavailable")

	// ErrUnknownDriver indicates DATABASE_URL names no supported store.
	ErrUnknownDriver = errors.New("unknown storage driver")

	// ErrUnknownProvider indicates MAIL_PROVIDER names no supported notifier.
	ErrUnknownProvider = errors.New("unknown mail provider")

	// ErrSubmitDisabled is returned when the contact form cannot be submitted
	// (a field is empty or a submission is already in flight).
	ErrSubmitDisabled = errors.New("submit disabled")

	// ErrAlreadyStarted is returned by a visitor counter started twice.
	ErrAlreadyStarted = errors.New("visitor counter already started")
)
