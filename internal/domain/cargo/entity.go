package cargo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status tracks the cargo decision lifecycle.
type Status string

const (
	StatusPendingAnalysis  Status = "pending_analysis"  // Awaiting bunker analysis
	StatusReadyForDecision Status = "ready_for_decision" // Analysis complete, charterer decides
	StatusRejected         Status = "rejected"           // Charterer passed on the cargo
	StatusFixed            Status = "fixed"              // Cargo fixed, bunker plan in motion
)

// RiskLevel grades the bunker supply risk of a candidate port.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// BunkerPort is a candidate fuel purchase option evaluated for a cargo.
type BunkerPort struct {
	Port           string          `json:"port"`
	Supplier       string          `json:"supplier"`
	PricePerMT     decimal.Decimal `json:"price_per_mt"`
	QuantityMT     float64         `json:"quantity_mt"`
	ReliabilityPct float64         `json:"reliability_pct"`
	DeliveryHours  int             `json:"delivery_hours"`
	BargeFees      decimal.Decimal `json:"barge_fees"`
	DeviationCost  decimal.Decimal `json:"deviation_cost"`
}

// Cargo represents a candidate voyage with its economics and the ranked
// bunker options produced by analysis.
type Cargo struct {
	ID            uuid.UUID `json:"id"`
	LoadPort      string    `json:"load_port"`
	DischargePort string    `json:"discharge_port"`
	LaycanStart   time.Time `json:"laycan_start"`
	LaycanEnd     time.Time `json:"laycan_end"`

	FreightRevenue decimal.Decimal `json:"freight_revenue"`
	BunkerCost     decimal.Decimal `json:"bunker_cost"`
	PortCosts      decimal.Decimal `json:"port_costs"`
	OtherCosts     decimal.Decimal `json:"other_costs"`
	Profit         decimal.Decimal `json:"profit"`

	DistanceNM   float64 `json:"distance_nm"`
	DurationDays float64 `json:"duration_days"`
	VesselName   string  `json:"vessel_name"`

	BunkerPorts []BunkerPort `json:"bunker_ports"`
	Risk        RiskLevel    `json:"risk"`
	Confidence  int          `json:"confidence"`
	Reasoning   []string     `json:"reasoning"`
	Viable      bool         `json:"viable"`

	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ComputeProfit returns freight minus all cost buckets.
func (c *Cargo) ComputeProfit() decimal.Decimal {
	return c.FreightRevenue.Sub(c.BunkerCost).Sub(c.PortCosts).Sub(c.OtherCosts)
}
