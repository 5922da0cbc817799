package fixtures

import (
	"context"
	"fmt"
	"time"

	domainCargo "fuel-sense/internal/domain/cargo"
	domainNotification "fuel-sense/internal/domain/notification"
	domainPlan "fuel-sense/internal/domain/plan"
	domainTask "fuel-sense/internal/domain/task"
	domainUser "fuel-sense/internal/domain/user"
	domainVessel "fuel-sense/internal/domain/vessel"
	"fuel-sense/internal/logger"
	"fuel-sense/pkg/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DevPassword is the development password shared by seeded users.
const DevPassword = "FuelSense#24"

// Store gathers the repositories the seeder fills.
type Store struct {
	Cargoes       domainCargo.Repository
	Plans         domainPlan.Repository
	Vessels       domainVessel.Repository
	Notifications domainNotification.Repository
	Tasks         domainTask.Repository
	Users         domainUser.Repository
}

// Seed loads the mock dataset: three candidate cargoes with ranked bunker
// ports, their plans, a three-vessel fleet, one user per role and the
// role-scoped pending tasks. Dates are relative to the seed time.
func Seed(ctx context.Context, s Store) error {
	now := time.Now()

	if err := seedUsers(ctx, s.Users); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	cargoes := buildCargoes(now)
	for _, c := range cargoes {
		if err := s.Cargoes.Create(ctx, c); err != nil {
			return fmt.Errorf("seed cargoes: %w", err)
		}
	}

	vessels := buildVessels(now, cargoes)
	for _, v := range vessels {
		if err := s.Vessels.Create(ctx, v); err != nil {
			return fmt.Errorf("seed vessels: %w", err)
		}
	}

	for _, p := range buildPlans(now, cargoes) {
		if err := s.Plans.Create(ctx, p); err != nil {
			return fmt.Errorf("seed plans: %w", err)
		}
	}

	for _, t := range buildTasks(now) {
		if err := s.Tasks.Create(ctx, t); err != nil {
			return fmt.Errorf("seed tasks: %w", err)
		}
	}

	for _, n := range buildNotifications(now) {
		if err := s.Notifications.Create(ctx, n); err != nil {
			return fmt.Errorf("seed notifications: %w", err)
		}
	}

	logger.Info("Fixtures seeded",
		zap.Int("cargoes", len(cargoes)),
		zap.Int("vessels", len(vessels)),
	)
	return nil
}

func seedUsers(ctx context.Context, repo domainUser.Repository) error {
	hash, err := utils.HashPassword(DevPassword)
	if err != nil {
		return err
	}

	users := []*domainUser.User{
		{Email: "charterer@fuelsense.dev", FullName: "Nadia Petrova", Role: domainUser.RoleCharterer, Company: "Meridian Chartering"},
		{Email: "operator@fuelsense.dev", FullName: "Tomas Lindqvist", Role: domainUser.RoleOperator, Company: "Meridian Operations"},
		{Email: "vessel@fuelsense.dev", FullName: "Capt. R. Mendes", Role: domainUser.RoleVessel, Company: "MV Coral Trader"},
		{Email: "supplier@fuelsense.dev", FullName: "Lena Osei", Role: domainUser.RoleSupplier, Company: "PortSide Bunkers"},
		{Email: "manager@fuelsense.dev", FullName: "Arjun Nair", Role: domainUser.RoleVesselManager, Company: "Meridian Ship Management"},
		{Email: "admin@fuelsense.dev", FullName: "System Admin", Role: domainUser.RoleAdmin, Company: "Fuel Sense"},
	}

	for _, u := range users {
		u.PasswordHashed = hash
		u.IsActive = true
		if err := repo.Create(ctx, u); err != nil {
			return err
		}
	}
	return nil
}

func buildCargoes(now time.Time) []*domainCargo.Cargo {
	usd := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

	cargoes := []*domainCargo.Cargo{
		{
			LoadPort:       "Santos",
			DischargePort:  "Qingdao",
			LaycanStart:    now.Add(5 * 24 * time.Hour),
			LaycanEnd:      now.Add(9 * 24 * time.Hour),
			FreightRevenue: usd(2150000),
			BunkerCost:     usd(612000),
			PortCosts:      usd(184000),
			OtherCosts:     usd(97000),
			DistanceNM:     11950,
			DurationDays:   38.5,
			VesselName:     "MV Coral Trader",
			Risk:           domainCargo.RiskLow,
			Confidence:     92,
			Viable:         true,
			Reasoning: []string{
				"Singapore offers the best blended price on the routing",
				"Laycan margin covers a 36h bunker delay",
			},
			Status: domainCargo.StatusReadyForDecision,
			BunkerPorts: []domainCargo.BunkerPort{
				{Port: "Singapore", Supplier: "PortSide Bunkers", PricePerMT: usd(585), QuantityMT: 850, ReliabilityPct: 97, DeliveryHours: 12, BargeFees: usd(4500), DeviationCost: usd(0)},
				{Port: "Fujairah", Supplier: "Gulf Marine Fuels", PricePerMT: usd(572), QuantityMT: 850, ReliabilityPct: 93, DeliveryHours: 18, BargeFees: usd(5200), DeviationCost: usd(21000)},
				{Port: "Durban", Supplier: "Cape Bunker Co", PricePerMT: usd(598), QuantityMT: 800, ReliabilityPct: 88, DeliveryHours: 24, BargeFees: usd(3900), DeviationCost: usd(34000)},
			},
		},
		{
			LoadPort:       "Rotterdam",
			DischargePort:  "New York",
			LaycanStart:    now.Add(3 * 24 * time.Hour),
			LaycanEnd:      now.Add(6 * 24 * time.Hour),
			FreightRevenue: usd(980000),
			BunkerCost:     usd(318000),
			PortCosts:      usd(126000),
			OtherCosts:     usd(54000),
			DistanceNM:     3420,
			DurationDays:   11.2,
			VesselName:     "MV Baltic Wind",
			Risk:           domainCargo.RiskMedium,
			Confidence:     78,
			Viable:         true,
			Reasoning: []string{
				"Rotterdam ARA prices trending up ahead of laycan",
				"Tight laycan leaves no slack for supplier slippage",
			},
			Status: domainCargo.StatusReadyForDecision,
			BunkerPorts: []domainCargo.BunkerPort{
				{Port: "Rotterdam", Supplier: "ARA Energy", PricePerMT: usd(545), QuantityMT: 520, ReliabilityPct: 95, DeliveryHours: 8, BargeFees: usd(3800), DeviationCost: usd(0)},
				{Port: "Gibraltar", Supplier: "Strait Fuels", PricePerMT: usd(560), QuantityMT: 500, ReliabilityPct: 90, DeliveryHours: 14, BargeFees: usd(4100), DeviationCost: usd(12500)},
			},
		},
		{
			LoadPort:       "Newcastle",
			DischargePort:  "Visakhapatnam",
			LaycanStart:    now.Add(12 * 24 * time.Hour),
			LaycanEnd:      now.Add(16 * 24 * time.Hour),
			FreightRevenue: usd(1640000),
			BunkerCost:     usd(534000),
			PortCosts:      usd(158000),
			OtherCosts:     usd(88000),
			DistanceNM:     6890,
			DurationDays:   23.8,
			VesselName:     "MV Southern Star",
			Risk:           domainCargo.RiskHigh,
			Confidence:     61,
			Viable:         false,
			Reasoning: []string{
				"Monsoon routing adds consumption uncertainty",
				"Only one reliable supplier on the direct routing",
			},
			Status: domainCargo.StatusPendingAnalysis,
			BunkerPorts: []domainCargo.BunkerPort{
				{Port: "Singapore", Supplier: "PortSide Bunkers", PricePerMT: usd(588), QuantityMT: 900, ReliabilityPct: 97, DeliveryHours: 12, BargeFees: usd(4500), DeviationCost: usd(18000)},
				{Port: "Colombo", Supplier: "Lanka Marine", PricePerMT: usd(603), QuantityMT: 880, ReliabilityPct: 84, DeliveryHours: 30, BargeFees: usd(3600), DeviationCost: usd(9000)},
			},
		},
	}

	for _, c := range cargoes {
		c.Profit = c.ComputeProfit()
	}
	return cargoes
}

func buildVessels(now time.Time, cargoes []*domainCargo.Cargo) []*domainVessel.Vessel {
	return []*domainVessel.Vessel{
		{
			IMO:  "9734567",
			Name: "MV Coral Trader",
			CurrentROB: map[domainVessel.FuelGrade]float64{
				domainVessel.GradeVLSFO: 612.4,
				domainVessel.GradeLSMGO: 88.0,
			},
			EstimatedConsumption: map[domainVessel.FuelGrade]float64{
				domainVessel.GradeVLSFO: 32.5,
				domainVessel.GradeLSMGO: 2.1,
			},
			ActualConsumption: map[domainVessel.FuelGrade]float64{
				domainVessel.GradeVLSFO: 33.8,
				domainVessel.GradeLSMGO: 2.0,
			},
			Position:   domainVessel.Position{Lat: -6.12, Lon: 39.85},
			NextPort:   "Singapore",
			ETA:        now.Add(4 * 24 * time.Hour),
			SpeedKnots: 12.6,
			HeadingDeg: 74,
			Status:     domainVessel.StatusOnVoyage,
			CargoID:    &cargoes[0].ID,
		},
		{
			IMO:  "9812034",
			Name: "MV Baltic Wind",
			CurrentROB: map[domainVessel.FuelGrade]float64{
				domainVessel.GradeVLSFO: 238.9,
				domainVessel.GradeLSMGO: 41.5,
			},
			EstimatedConsumption: map[domainVessel.FuelGrade]float64{
				domainVessel.GradeVLSFO: 28.0,
				domainVessel.GradeLSMGO: 1.8,
			},
			ActualConsumption: map[domainVessel.FuelGrade]float64{
				domainVessel.GradeVLSFO: 27.4,
				domainVessel.GradeLSMGO: 1.9,
			},
			Position:   domainVessel.Position{Lat: 51.95, Lon: 4.05, Port: "Rotterdam"},
			NextPort:   "Rotterdam",
			ETA:        now.Add(18 * time.Hour),
			SpeedKnots: 0,
			HeadingDeg: 0,
			Status:     domainVessel.StatusInPort,
			CargoID:    &cargoes[1].ID,
		},
		{
			IMO:  "9657281",
			Name: "MV Southern Star",
			CurrentROB: map[domainVessel.FuelGrade]float64{
				domainVessel.GradeVLSFO: 470.2,
				domainVessel.GradeLSMGO: 63.7,
			},
			EstimatedConsumption: map[domainVessel.FuelGrade]float64{
				domainVessel.GradeVLSFO: 30.2,
				domainVessel.GradeLSMGO: 2.4,
			},
			ActualConsumption: map[domainVessel.FuelGrade]float64{
				domainVessel.GradeVLSFO: 31.0,
				domainVessel.GradeLSMGO: 2.3,
			},
			Position:   domainVessel.Position{Lat: -33.02, Lon: 151.75},
			NextPort:   "Newcastle",
			ETA:        now.Add(9 * 24 * time.Hour),
			SpeedKnots: 11.8,
			HeadingDeg: 12,
			Status:     domainVessel.StatusOnVoyage,
			CargoID:    &cargoes[2].ID,
		},
	}
}

func buildPlans(now time.Time, cargoes []*domainCargo.Cargo) []*domainPlan.BunkerPlan {
	plans := []*domainPlan.BunkerPlan{
		{
			CargoID:       cargoes[0].ID,
			Port:          "Singapore",
			Supplier:      "PortSide Bunkers",
			FuelGrade:     string(domainVessel.GradeVLSFO),
			QuantityMT:    850,
			PricePerMT:    decimal.NewFromInt(585),
			BargeFees:     decimal.NewFromInt(4500),
			DeliveryStart: now.Add(4 * 24 * time.Hour),
			DeliveryEnd:   now.Add(4*24*time.Hour + 12*time.Hour),
			Status:        domainPlan.StatusPendingApproval,
			Alternatives: []domainPlan.Offer{
				{Supplier: "Gulf Marine Fuels", PricePerMT: decimal.NewFromInt(572), DeliveryHours: 18},
				{Supplier: "Cape Bunker Co", PricePerMT: decimal.NewFromInt(598), DeliveryHours: 24},
			},
		},
		{
			CargoID:       cargoes[1].ID,
			Port:          "Rotterdam",
			Supplier:      "ARA Energy",
			FuelGrade:     string(domainVessel.GradeVLSFO),
			QuantityMT:    520,
			PricePerMT:    decimal.NewFromInt(545),
			BargeFees:     decimal.NewFromInt(3800),
			DeliveryStart: now.Add(36 * time.Hour),
			DeliveryEnd:   now.Add(44 * time.Hour),
			Status:        domainPlan.StatusApproved,
		},
		{
			CargoID:       cargoes[1].ID,
			Port:          "Rotterdam",
			Supplier:      "ARA Energy",
			FuelGrade:     string(domainVessel.GradeLSMGO),
			QuantityMT:    60,
			PricePerMT:    decimal.NewFromInt(745),
			BargeFees:     decimal.NewFromInt(1200),
			DeliveryStart: now.Add(36 * time.Hour),
			DeliveryEnd:   now.Add(44 * time.Hour),
			Status:        domainPlan.StatusPendingApproval,
		},
	}

	approver := "Tomas Lindqvist"
	approvedAt := now.Add(-3 * time.Hour)
	plans[1].ApprovedBy = &approver
	plans[1].ApprovedAt = &approvedAt

	for _, p := range plans {
		p.TotalCost = p.ComputeTotalCost()
	}
	return plans
}

func buildTasks(now time.Time) []*domainTask.PendingTask {
	return []*domainTask.PendingTask{
		{
			Title:       "Decide on Santos-Qingdao cargo",
			Description: "Analysis complete, fixture window closes soon",
			Role:        domainUser.RoleCharterer,
			Priority:    domainTask.PriorityHigh,
			DueAt:       now.Add(24 * time.Hour),
			Count:       1,
			ActionURL:   "/cargoes",
			Kind:        "cargo_decision",
		},
		{
			Title:       "Approve pending bunker plans",
			Description: "Two plans awaiting operator approval",
			Role:        domainUser.RoleOperator,
			Priority:    domainTask.PriorityHigh,
			DueAt:       now.Add(12 * time.Hour),
			Count:       2,
			ActionURL:   "/plans",
			Kind:        "plan_approval",
		},
		{
			Title:       "Submit noon report",
			Description: "Daily ROB and position report due",
			Role:        domainUser.RoleVessel,
			Priority:    domainTask.PriorityMedium,
			DueAt:       now.Add(6 * time.Hour),
			Count:       1,
			ActionURL:   "/vessels/report",
			Kind:        "noon_report",
		},
		{
			Title:       "Confirm Singapore delivery slot",
			Description: "Barge availability for the 850 MT stem",
			Role:        domainUser.RoleSupplier,
			Priority:    domainTask.PriorityMedium,
			DueAt:       now.Add(48 * time.Hour),
			Count:       1,
			ActionURL:   "/deliveries",
			Kind:        "delivery_confirmation",
		},
		{
			Title:       "Review fleet consumption variance",
			Description: "Actual vs CP consumption drift on two vessels",
			Role:        domainUser.RoleVesselManager,
			Priority:    domainTask.PriorityLow,
			DueAt:       now.Add(72 * time.Hour),
			Count:       2,
			ActionURL:   "/fleet",
			Kind:        "consumption_review",
		},
	}
}

func buildNotifications(now time.Time) []*domainNotification.Notification {
	return []*domainNotification.Notification{
		{
			Type:      domainNotification.TypeInfo,
			Title:     "Analysis Completed",
			Message:   "Bunker analysis for Santos to Qingdao finished with 92% confidence",
			Role:      domainUser.RoleCharterer,
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			Type:           domainNotification.TypeWarning,
			Title:          "Approval Pending",
			Message:        "Singapore bunker plan has been awaiting approval since yesterday",
			Role:           domainUser.RoleOperator,
			ActionRequired: true,
			ActionURL:      "/plans",
			CreatedAt:      now.Add(-1 * time.Hour),
		},
	}
}
