package services

import "errors"

// Sentinel errors returned by services. Handlers map these onto the HTTP
// error taxonomy; anything unrecognized is treated as a server error.
var (
	// ErrNotFound signals an unknown identifier.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument signals a request that is well-formed but
	// semantically invalid (unknown enum value, out-of-range coordinate).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmailTaken signals a registration with an already-used email.
	ErrEmailTaken = errors.New("user already exists with this email")

	// ErrInvalidCredentials signals a failed login. Unknown email and wrong
	// password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAlreadyFavorite signals adding a restaurant that is already in the
	// user's favorites.
	ErrAlreadyFavorite = errors.New("restaurant already in favorites")

	// ErrMissingCoordinates signals a nearby search without both coordinates.
	ErrMissingCoordinates = errors.New("latitude and longitude are required")
)
