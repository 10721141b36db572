package identity

import "errors"

// Define errors
var (
	// ErrPhoneRequired is returned when a guest join attempt has no phone number
	ErrPhoneRequired = errors.New("guest phone number is required")

	// ErrNameRequired is returned when a guest join attempt has no display name
	ErrNameRequired = errors.New("guest display name is required")
)
