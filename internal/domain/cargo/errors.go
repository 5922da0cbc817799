package cargo

import "errors"

var (
	ErrCargoNotFound           = errors.New("cargo not found")
	ErrInvalidStatus           = errors.New("invalid cargo status")
	ErrInvalidStatusTransition = errors.New("invalid cargo status transition")
	ErrNoBunkerPorts           = errors.New("cargo has no bunker ports")
)
