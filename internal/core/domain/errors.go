package domain

import "errors"

// Policy outcomes surfaced by the service layer. Callers distinguish them
// with errors.Is; anything else is an infrastructure failure.
var (
	// ErrInvalidInput covers missing required fields and invalid enum values.
	// Services wrap it with the offending field, e.g.
	// fmt.Errorf("%w: job title is required", ErrInvalidInput).
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials is the single undifferentiated login failure.
	// It deliberately does not distinguish an unknown email from a wrong
	// password, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden signals a missing role or ownership requirement.
	ErrForbidden = errors.New("access forbidden")

	ErrUserNotFound        = errors.New("user not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrApplicationNotFound = errors.New("application not found")

	ErrEmailTaken     = errors.New("email already in use")
	ErrUsernameTaken  = errors.New("username already in use")
	ErrAlreadyApplied = errors.New("user has already applied for this job")
)
