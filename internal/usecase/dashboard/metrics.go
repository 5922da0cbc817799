package dashboard

import (
	domainCargo "fuel-sense/internal/domain/cargo"
	domainVessel "fuel-sense/internal/domain/vessel"

	"github.com/shopspring/decimal"
)

// ProfitMarginPct returns profit as a percentage of freight revenue,
// or zero when there is no revenue.
func ProfitMarginPct(c *domainCargo.Cargo) decimal.Decimal {
	if c.FreightRevenue.IsZero() {
		return decimal.Zero
	}
	return c.Profit.Div(c.FreightRevenue).Mul(decimal.NewFromInt(100)).Round(2)
}

// VsMarketPct returns how far a price sits from a market reference, as a
// signed percentage. Zero market reference yields zero.
func VsMarketPct(price, market decimal.Decimal) decimal.Decimal {
	if market.IsZero() {
		return decimal.Zero
	}
	return price.Sub(market).Div(market).Mul(decimal.NewFromInt(100)).Round(2)
}

// FleetROBTotals sums remaining fuel across the fleet per grade.
func FleetROBTotals(vessels []*domainVessel.Vessel) map[domainVessel.FuelGrade]float64 {
	totals := make(map[domainVessel.FuelGrade]float64)
	for _, v := range vessels {
		for grade, qty := range v.CurrentROB {
			totals[grade] += qty
		}
	}
	return totals
}
