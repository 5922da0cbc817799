package vessel

import "errors"

var (
	ErrVesselNotFound  = errors.New("vessel not found")
	ErrInvalidROB      = errors.New("rob quantity cannot be negative")
	ErrInvalidGrade    = errors.New("unknown fuel grade")
	ErrInvalidPosition = errors.New("invalid position")
)
