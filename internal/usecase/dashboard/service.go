package dashboard

import (
	"context"

	domainCargo "fuel-sense/internal/domain/cargo"
	domainNotification "fuel-sense/internal/domain/notification"
	domainPlan "fuel-sense/internal/domain/plan"
	domainTask "fuel-sense/internal/domain/task"
	domainUser "fuel-sense/internal/domain/user"
	domainVessel "fuel-sense/internal/domain/vessel"
	vesselUC "fuel-sense/internal/usecase/vessel"

	"github.com/google/uuid"
)

// Summary is the role-scoped dashboard payload: pending work plus the KPI
// counts each role's landing view renders.
type Summary struct {
	Role                domainUser.Role                    `json:"role"`
	PendingTasks        []*domainTask.PendingTask          `json:"pending_tasks"`
	UnreadNotifications int                                `json:"unread_notifications"`
	CargoesByStatus     map[domainCargo.Status]int         `json:"cargoes_by_status"`
	PlansPendingCount   int                                `json:"plans_pending_count"`
	FleetSize           int                                `json:"fleet_size"`
	LowFuelVessels      []string                           `json:"low_fuel_vessels"`
	FleetROB            map[domainVessel.FuelGrade]float64 `json:"fleet_rob"`
}

// Service assembles role dashboards from the store. Pure reads only.
type Service struct {
	cargoRepo  domainCargo.Repository
	planRepo   domainPlan.Repository
	vesselRepo domainVessel.Repository
	taskRepo   domainTask.Repository
	notifRepo  domainNotification.Repository
}

func NewService(
	cargoRepo domainCargo.Repository,
	planRepo domainPlan.Repository,
	vesselRepo domainVessel.Repository,
	taskRepo domainTask.Repository,
	notifRepo domainNotification.Repository,
) *Service {
	return &Service{
		cargoRepo:  cargoRepo,
		planRepo:   planRepo,
		vesselRepo: vesselRepo,
		taskRepo:   taskRepo,
		notifRepo:  notifRepo,
	}
}

func (s *Service) Summary(ctx context.Context, role domainUser.Role) (*Summary, error) {
	tasks, err := s.taskRepo.ListByRole(ctx, role)
	if err != nil {
		return nil, err
	}

	notifications, err := s.notifRepo.ListByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}

	cargoes, err := s.cargoRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byStatus := make(map[domainCargo.Status]int)
	for _, c := range cargoes {
		byStatus[c.Status]++
	}

	pending, err := s.planRepo.ListByStatus(ctx, domainPlan.StatusPendingApproval)
	if err != nil {
		return nil, err
	}

	vessels, err := s.vesselRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	var lowFuel []string
	for _, v := range vessels {
		if v.CurrentROB[domainVessel.GradeVLSFO] < vesselUC.LowROBThresholdMT {
			lowFuel = append(lowFuel, v.IMO)
		}
	}

	return &Summary{
		Role:                role,
		PendingTasks:        tasks,
		UnreadNotifications: unread,
		CargoesByStatus:     byStatus,
		PlansPendingCount:   len(pending),
		FleetSize:           len(vessels),
		LowFuelVessels:      lowFuel,
		FleetROB:            FleetROBTotals(vessels),
	}, nil
}

// CompleteTask removes a pending task from its role's list.
func (s *Service) CompleteTask(ctx context.Context, taskID uuid.UUID) error {
	return s.taskRepo.Remove(ctx, taskID)
}
