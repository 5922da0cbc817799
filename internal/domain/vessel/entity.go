package vessel

import (
	"time"

	"github.com/google/uuid"
)

// Status tracks what a vessel is currently doing.
type Status string

const (
	StatusOnVoyage  Status = "on_voyage"
	StatusInPort    Status = "in_port"
	StatusBunkering Status = "bunkering"
)

// FuelGrade names a fuel type tracked per vessel.
type FuelGrade string

const (
	GradeVLSFO FuelGrade = "VLSFO"
	GradeLSMGO FuelGrade = "LSMGO"
)

func (g FuelGrade) Valid() bool {
	return g == GradeVLSFO || g == GradeLSMGO
}

// Position is the last reported vessel location.
type Position struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Port string  `json:"port,omitempty"`
}

// Vessel represents a ship in the managed fleet, keyed by IMO number.
// ROB and consumption are MT per grade; consumption is MT per day.
type Vessel struct {
	IMO  string `json:"imo"`
	Name string `json:"name"`

	CurrentROB           map[FuelGrade]float64 `json:"current_rob"`
	EstimatedConsumption map[FuelGrade]float64 `json:"estimated_consumption"`
	ActualConsumption    map[FuelGrade]float64 `json:"actual_consumption"`

	Position   Position  `json:"position"`
	NextPort   string    `json:"next_port"`
	ETA        time.Time `json:"eta"`
	SpeedKnots float64   `json:"speed_knots"`
	HeadingDeg float64   `json:"heading_deg"`

	Status  Status     `json:"status"`
	CargoID *uuid.UUID `json:"cargo_id,omitempty"`
	PlanID  *uuid.UUID `json:"plan_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CloneROB returns a copy of the ROB map so callers cannot mutate shared state.
func (v *Vessel) CloneROB() map[FuelGrade]float64 {
	out := make(map[FuelGrade]float64, len(v.CurrentROB))
	for grade, qty := range v.CurrentROB {
		out[grade] = qty
	}
	return out
}
