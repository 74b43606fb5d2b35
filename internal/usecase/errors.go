package usecase

import "errors"

// Error taxonomy surfaced to callers. Handlers map these to HTTP status
// codes with errors.Is; repositories wrap storage failures, which fall
// through as internal errors.
var (
	// ErrValidation marks rejected input. Wrapped with detail:
	// fmt.Errorf("%w: %s", ErrValidation, detail).
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks operations on an id that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrRoomConflict is returned when an insert loses the race for a room:
	// another active reservation overlaps the requested interval.
	ErrRoomConflict = errors.New("room is already reserved for the requested dates")

	// ErrInvalidStayRange rejects reservations whose check-out date is not
	// strictly after the check-in date.
	ErrInvalidStayRange = errors.New("check-out date must be after check-in date")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is deactivated")
	ErrInvalidToken       = errors.New("invalid or expired recovery token")
)
