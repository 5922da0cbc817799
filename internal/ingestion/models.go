package ingestion

import (
	"encoding/json"
	"fmt"
	"time"
)

// ROBReport is a vessel's remaining-on-board fuel report, typically sent
// with the noon report or after a sounding.
type ROBReport struct {
	IMO        string             `json:"imo"`
	ROB        map[string]float64 `json:"rob"`
	ReportedAt time.Time          `json:"reported_at"`
}

// PositionReport is a vessel's AIS-style position update.
type PositionReport struct {
	IMO        string    `json:"imo"`
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
	SpeedKnots float64   `json:"speed_knots"`
	HeadingDeg float64   `json:"heading_deg"`
	NextPort   string    `json:"next_port,omitempty"`
	ETA        time.Time `json:"eta,omitempty"`
	ReportedAt time.Time `json:"reported_at"`
}

// ParseROBReport decodes and validates an ROB payload.
func ParseROBReport(payload []byte) (*ROBReport, error) {
	var msg ROBReport
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil, fmt.Errorf("decode rob report: %w", err)
	}
	if err := validateROBReport(&msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ParsePositionReport decodes and validates a position payload.
func ParsePositionReport(payload []byte) (*PositionReport, error) {
	var msg PositionReport
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil, fmt.Errorf("decode position report: %w", err)
	}
	if err := validatePositionReport(&msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
