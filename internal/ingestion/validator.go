package ingestion

import (
	"errors"
	"fmt"

	domainVessel "fuel-sense/internal/domain/vessel"
)

var (
	ErrMissingIMO       = errors.New("imo is required")
	ErrEmptyROB         = errors.New("rob report contains no quantities")
	ErrNegativeROB      = errors.New("rob quantity cannot be negative")
	ErrUnknownGrade     = errors.New("unknown fuel grade in rob report")
	ErrInvalidLatitude  = errors.New("latitude out of range")
	ErrInvalidLongitude = errors.New("longitude out of range")
)

func validateROBReport(msg *ROBReport) error {
	if msg.IMO == "" {
		return ErrMissingIMO
	}
	if len(msg.ROB) == 0 {
		return ErrEmptyROB
	}
	for grade, qty := range msg.ROB {
		if !domainVessel.FuelGrade(grade).Valid() {
			return fmt.Errorf("%w: %s", ErrUnknownGrade, grade)
		}
		if qty < 0 {
			return fmt.Errorf("%w: %s", ErrNegativeROB, grade)
		}
	}
	return nil
}

func validatePositionReport(msg *PositionReport) error {
	if msg.IMO == "" {
		return ErrMissingIMO
	}
	if msg.Lat < -90 || msg.Lat > 90 {
		return ErrInvalidLatitude
	}
	if msg.Lon < -180 || msg.Lon > 180 {
		return ErrInvalidLongitude
	}
	return nil
}
