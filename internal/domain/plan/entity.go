package plan

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status tracks the bunker plan approval lifecycle.
type Status string

const (
	StatusPendingApproval Status = "pending_approval" // Awaiting operator decision
	StatusApproved        Status = "approved"
	StatusRejected        Status = "rejected"
	StatusCompleted       Status = "completed" // Fuel delivered
)

// Offer is an alternative supplier quote attached to a plan.
type Offer struct {
	Supplier      string          `json:"supplier"`
	PricePerMT    decimal.Decimal `json:"price_per_mt"`
	DeliveryHours int             `json:"delivery_hours"`
}

// BunkerPlan is a proposed fuel purchase and delivery for a cargo.
type BunkerPlan struct {
	ID      uuid.UUID `json:"id"`
	CargoID uuid.UUID `json:"cargo_id"`

	Port       string          `json:"port"`
	Supplier   string          `json:"supplier"`
	FuelGrade  string          `json:"fuel_grade"`
	QuantityMT float64         `json:"quantity_mt"`
	PricePerMT decimal.Decimal `json:"price_per_mt"`
	BargeFees  decimal.Decimal `json:"barge_fees"`
	TotalCost  decimal.Decimal `json:"total_cost"`

	DeliveryStart time.Time `json:"delivery_start"`
	DeliveryEnd   time.Time `json:"delivery_end"`

	Alternatives []Offer `json:"alternatives,omitempty"`

	Status          Status     `json:"status"`
	ApprovedBy      *string    `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ComputeTotalCost returns quantity x price plus barge fees.
func (p *BunkerPlan) ComputeTotalCost() decimal.Decimal {
	return p.PricePerMT.Mul(decimal.NewFromFloat(p.QuantityMT)).Add(p.BargeFees)
}
