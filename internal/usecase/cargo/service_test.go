package cargo

import (
	"context"
	"errors"
	"testing"

	domainCargo "fuel-sense/internal/domain/cargo"
	domainPlan "fuel-sense/internal/domain/plan"
	domainUser "fuel-sense/internal/domain/user"
	"fuel-sense/internal/infrastructure/memory"
	notificationUC "fuel-sense/internal/usecase/notification"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newTestService() (*Service, *memory.CargoRepository, *memory.PlanRepository, *memory.NotificationRepository) {
	cargoRepo := memory.NewCargoRepository()
	planRepo := memory.NewPlanRepository()
	notifRepo := memory.NewNotificationRepository()
	notifier := notificationUC.NewService(notifRepo, nil)
	svc := NewService(cargoRepo, planRepo, notifier, nil)
	return svc, cargoRepo, planRepo, notifRepo
}

func seedCargo(t *testing.T, repo *memory.CargoRepository, status domainCargo.Status, ports []domainCargo.BunkerPort) *domainCargo.Cargo {
	t.Helper()

	c := &domainCargo.Cargo{
		LoadPort:      "Santos",
		DischargePort: "Qingdao",
		VesselName:    "MV Coral Trader",
		Status:        status,
		Confidence:    92,
		Viable:        true,
		BunkerPorts:   ports,
	}
	if err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("Failed to seed cargo: %v", err)
	}
	return c
}

func TestUpdateStatus_UnknownCargoLeavesListUntouched(t *testing.T) {
	svc, cargoRepo, _, _ := newTestService()
	ctx := context.Background()

	seedCargo(t, cargoRepo, domainCargo.StatusReadyForDecision, nil)

	_, err := svc.UpdateStatus(ctx, uuid.New(), domainCargo.StatusFixed)
	if !errors.Is(err, domainCargo.ErrCargoNotFound) {
		t.Fatalf("Expected ErrCargoNotFound, got %v", err)
	}

	cargoes, err := cargoRepo.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list cargoes: %v", err)
	}
	if len(cargoes) != 1 {
		t.Fatalf("Expected 1 cargo, got %d", len(cargoes))
	}
	if cargoes[0].Status != domainCargo.StatusReadyForDecision {
		t.Errorf("Expected status %s, got %s", domainCargo.StatusReadyForDecision, cargoes[0].Status)
	}
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domainCargo.Status
		to      domainCargo.Status
		wantErr bool
	}{
		{name: "ready_to_fixed", from: domainCargo.StatusReadyForDecision, to: domainCargo.StatusFixed},
		{name: "ready_to_rejected", from: domainCargo.StatusReadyForDecision, to: domainCargo.StatusRejected},
		{name: "pending_to_ready", from: domainCargo.StatusPendingAnalysis, to: domainCargo.StatusReadyForDecision},
		{name: "ready_back_to_pending", from: domainCargo.StatusReadyForDecision, to: domainCargo.StatusPendingAnalysis},
		{name: "fixed_is_terminal", from: domainCargo.StatusFixed, to: domainCargo.StatusRejected, wantErr: true},
		{name: "rejected_is_terminal", from: domainCargo.StatusRejected, to: domainCargo.StatusFixed, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, cargoRepo, _, _ := newTestService()
			c := seedCargo(t, cargoRepo, tt.from, nil)

			updated, err := svc.UpdateStatus(context.Background(), c.ID, tt.to)
			if tt.wantErr {
				if !errors.Is(err, domainCargo.ErrInvalidStatusTransition) {
					t.Fatalf("Expected ErrInvalidStatusTransition, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if updated.Status != tt.to {
				t.Errorf("Expected status %s, got %s", tt.to, updated.Status)
			}
		})
	}
}

func TestFix_NotifiesCharterer(t *testing.T) {
	svc, cargoRepo, _, notifRepo := newTestService()
	ctx := context.Background()

	c := seedCargo(t, cargoRepo, domainCargo.StatusReadyForDecision, nil)

	updated, err := svc.Fix(ctx, c.ID)
	if err != nil {
		t.Fatalf("Failed to fix cargo: %v", err)
	}
	if updated.Status != domainCargo.StatusFixed {
		t.Errorf("Expected status %s, got %s", domainCargo.StatusFixed, updated.Status)
	}

	notifications, err := notifRepo.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("Expected 1 notification, got %d", len(notifications))
	}

	head := notifications[0]
	if head.Title != "Cargo Fixed" {
		t.Errorf("Expected title %q, got %q", "Cargo Fixed", head.Title)
	}
	if head.Role != domainUser.RoleCharterer {
		t.Errorf("Expected role %s, got %s", domainUser.RoleCharterer, head.Role)
	}
}

func TestRequestAlternative_UsesSecondBunkerPort(t *testing.T) {
	svc, cargoRepo, planRepo, notifRepo := newTestService()
	ctx := context.Background()

	ports := []domainCargo.BunkerPort{
		{Port: "Singapore", Supplier: "PortSide Bunkers", PricePerMT: decimal.NewFromInt(585), QuantityMT: 850, BargeFees: decimal.NewFromInt(4500)},
		{Port: "Fujairah", Supplier: "Gulf Marine Fuels", PricePerMT: decimal.NewFromInt(572), QuantityMT: 850, BargeFees: decimal.NewFromInt(5200)},
	}
	c := seedCargo(t, cargoRepo, domainCargo.StatusReadyForDecision, ports)

	p, err := svc.RequestAlternative(ctx, c.ID)
	if err != nil {
		t.Fatalf("Failed to request alternative: %v", err)
	}

	if p.Port != "Fujairah" {
		t.Errorf("Expected second-best port Fujairah, got %s", p.Port)
	}
	if p.Supplier != "Gulf Marine Fuels" {
		t.Errorf("Expected supplier Gulf Marine Fuels, got %s", p.Supplier)
	}
	if p.Status != domainPlan.StatusPendingApproval {
		t.Errorf("Expected status %s, got %s", domainPlan.StatusPendingApproval, p.Status)
	}
	if p.FuelGrade != "VLSFO" {
		t.Errorf("Expected fuel grade VLSFO, got %s", p.FuelGrade)
	}

	wantCost := decimal.NewFromInt(572).Mul(decimal.NewFromFloat(850)).Add(decimal.NewFromInt(5200))
	if !p.TotalCost.Equal(wantCost) {
		t.Errorf("Expected total cost %s, got %s", wantCost, p.TotalCost)
	}

	window := p.DeliveryEnd.Sub(p.DeliveryStart)
	if window.Hours() != 24 {
		t.Errorf("Expected a 24h delivery window, got %s", window)
	}

	plans, err := planRepo.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list plans: %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("Expected 1 plan, got %d", len(plans))
	}

	notifications, err := notifRepo.ListByRole(ctx, domainUser.RoleOperator)
	if err != nil {
		t.Fatalf("Failed to list notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("Expected 1 operator notification, got %d", len(notifications))
	}
	if !notifications[0].ActionRequired {
		t.Errorf("Expected the operator notification to require action")
	}
}

func TestRequestAlternative_SinglePortFallsBackToBest(t *testing.T) {
	svc, cargoRepo, _, _ := newTestService()

	ports := []domainCargo.BunkerPort{
		{Port: "Rotterdam", Supplier: "ARA Energy", PricePerMT: decimal.NewFromInt(545), QuantityMT: 520, BargeFees: decimal.NewFromInt(3800)},
	}
	c := seedCargo(t, cargoRepo, domainCargo.StatusReadyForDecision, ports)

	p, err := svc.RequestAlternative(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("Failed to request alternative: %v", err)
	}
	if p.Port != "Rotterdam" {
		t.Errorf("Expected fallback to the only port Rotterdam, got %s", p.Port)
	}
}

func TestRequestAlternative_NoBunkerPorts(t *testing.T) {
	svc, cargoRepo, _, _ := newTestService()

	c := seedCargo(t, cargoRepo, domainCargo.StatusReadyForDecision, nil)

	_, err := svc.RequestAlternative(context.Background(), c.ID)
	if !errors.Is(err, domainCargo.ErrNoBunkerPorts) {
		t.Fatalf("Expected ErrNoBunkerPorts, got %v", err)
	}
}
