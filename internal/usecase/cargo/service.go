package cargo

import (
	"context"
	"fmt"
	"time"

	domainCargo "fuel-sense/internal/domain/cargo"
	domainNotification "fuel-sense/internal/domain/notification"
	domainPlan "fuel-sense/internal/domain/plan"
	domainUser "fuel-sense/internal/domain/user"
	"fuel-sense/internal/events"
	"fuel-sense/internal/logger"
	notificationUC "fuel-sense/internal/usecase/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements cargo decision use cases.
type Service struct {
	cargoRepo domainCargo.Repository
	planRepo  domainPlan.Repository
	notifier  *notificationUC.Service
	bus       *events.Bus
}

func NewService(cargoRepo domainCargo.Repository, planRepo domainPlan.Repository, notifier *notificationUC.Service, bus *events.Bus) *Service {
	return &Service{
		cargoRepo: cargoRepo,
		planRepo:  planRepo,
		notifier:  notifier,
		bus:       bus,
	}
}

func (s *Service) Get(ctx context.Context, cargoID uuid.UUID) (*domainCargo.Cargo, error) {
	return s.cargoRepo.GetByID(ctx, cargoID)
}

func (s *Service) List(ctx context.Context) ([]*domainCargo.Cargo, error) {
	return s.cargoRepo.List(ctx)
}

// UpdateStatus transitions a cargo's decision status. Unknown ids return
// ErrCargoNotFound and leave the list untouched.
func (s *Service) UpdateStatus(ctx context.Context, cargoID uuid.UUID, status domainCargo.Status) (*domainCargo.Cargo, error) {
	c, err := s.cargoRepo.GetByID(ctx, cargoID)
	if err != nil {
		return nil, err
	}

	if err := ValidateStatusTransition(c.Status, status); err != nil {
		return nil, err
	}

	c.Status = status
	if err := s.cargoRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	updated, err := s.cargoRepo.GetByID(ctx, cargoID)
	if err != nil {
		return nil, err
	}

	logger.Info("Cargo status updated",
		zap.String("cargo_id", cargoID.String()),
		zap.String("status", string(status)),
		zap.String("event", "cargo_status_updated"),
	)

	if s.bus != nil {
		s.bus.Publish(events.Event{Type: events.EventCargoUpdate, Payload: updated})
	}
	return updated, nil
}

// Fix commits the cargo and notifies the charterer view.
func (s *Service) Fix(ctx context.Context, cargoID uuid.UUID) (*domainCargo.Cargo, error) {
	updated, err := s.UpdateStatus(ctx, cargoID, domainCargo.StatusFixed)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		message := fmt.Sprintf("Cargo %s to %s fixed on %s", updated.LoadPort, updated.DischargePort, updated.VesselName)
		if err := s.notifier.Notify(ctx, domainNotification.TypeInfo, domainUser.RoleCharterer, "Cargo Fixed", message, false, ""); err != nil {
			logger.Warn("Failed to emit cargo fixed notification", zap.Error(err))
		}
	}

	return updated, nil
}

// RequestAlternative synthesizes a new bunker plan from the cargo's
// second-best bunker port (or the best when only one exists), with a
// delivery window fixed at two to three days out, and queues it for
// operator approval.
func (s *Service) RequestAlternative(ctx context.Context, cargoID uuid.UUID) (*domainPlan.BunkerPlan, error) {
	c, err := s.cargoRepo.GetByID(ctx, cargoID)
	if err != nil {
		return nil, err
	}

	if len(c.BunkerPorts) == 0 {
		return nil, domainCargo.ErrNoBunkerPorts
	}

	port := c.BunkerPorts[0]
	if len(c.BunkerPorts) >= 2 {
		port = c.BunkerPorts[1]
	}

	now := time.Now()
	p := &domainPlan.BunkerPlan{
		CargoID:       c.ID,
		Port:          port.Port,
		Supplier:      port.Supplier,
		FuelGrade:     "VLSFO",
		QuantityMT:    port.QuantityMT,
		PricePerMT:    port.PricePerMT,
		BargeFees:     port.BargeFees,
		DeliveryStart: now.Add(48 * time.Hour),
		DeliveryEnd:   now.Add(72 * time.Hour),
		Status:        domainPlan.StatusPendingApproval,
	}
	p.TotalCost = p.ComputeTotalCost()

	if err := s.planRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	logger.Info("Alternative bunker plan requested",
		zap.String("cargo_id", c.ID.String()),
		zap.String("plan_id", p.ID.String()),
		zap.String("port", p.Port),
		zap.String("supplier", p.Supplier),
	)

	if s.notifier != nil {
		message := fmt.Sprintf("Alternative plan from %s at %s awaiting approval", p.Supplier, p.Port)
		if err := s.notifier.Notify(ctx, domainNotification.TypeInfo, domainUser.RoleOperator, "Alternative Plan Requested", message, true, "/plans/"+p.ID.String()); err != nil {
			logger.Warn("Failed to emit alternative plan notification", zap.Error(err))
		}
	}

	if s.bus != nil {
		s.bus.Publish(events.Event{Type: events.EventPlanUpdate, Payload: p})
	}
	return p, nil
}
