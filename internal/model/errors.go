package model

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrContentRequired = errors.New("content is required")
)

// IsValidation reports whether err belongs to the validation class,
// which handlers surface as a client error rather than a server one.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrContentRequired)
}
