package services

import "errors"

// Domain errors returned by the services. Handlers match these with
// errors.Is to pick the response status.
var (
	// ErrNotFound covers both records that do not exist and records the
	// visibility policy hides from the caller.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden means the caller is authenticated but does not own the
	// record it is trying to mutate.
	ErrForbidden = errors.New("caller does not own this record")

	// ErrEmailTaken means signup collided with an existing account.
	ErrEmailTaken = errors.New("email already in use")

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so login failures cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrGenerationFailed means the external text-generation call errored,
	// timed out, or produced no usable text.
	ErrGenerationFailed = errors.New("content generation failed")
)
