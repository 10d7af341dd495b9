package preference

import "errors"

// Domain errors for interaction validation
var (
	ErrEmptyUserID      = errors.New("user id is required")
	ErrUnknownKind      = errors.New("unknown interaction kind")
	ErrMissingRating    = errors.New("rate interaction requires a rating")
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
)
