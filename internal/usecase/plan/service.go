package plan

import (
	"context"
	"fmt"
	"strings"
	"time"

	domainNotification "fuel-sense/internal/domain/notification"
	domainPlan "fuel-sense/internal/domain/plan"
	domainUser "fuel-sense/internal/domain/user"
	"fuel-sense/internal/events"
	"fuel-sense/internal/logger"
	notificationUC "fuel-sense/internal/usecase/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements bunker plan use cases.
type Service struct {
	planRepo domainPlan.Repository
	notifier *notificationUC.Service
	bus      *events.Bus
}

func NewService(planRepo domainPlan.Repository, notifier *notificationUC.Service, bus *events.Bus) *Service {
	return &Service{
		planRepo: planRepo,
		notifier: notifier,
		bus:      bus,
	}
}

func (s *Service) Get(ctx context.Context, planID uuid.UUID) (*domainPlan.BunkerPlan, error) {
	return s.planRepo.GetByID(ctx, planID)
}

func (s *Service) List(ctx context.Context) ([]*domainPlan.BunkerPlan, error) {
	return s.planRepo.List(ctx)
}

func (s *Service) ListByCargo(ctx context.Context, cargoID uuid.UUID) ([]*domainPlan.BunkerPlan, error) {
	return s.planRepo.ListByCargo(ctx, cargoID)
}

func (s *Service) ListByStatus(ctx context.Context, status domainPlan.Status) ([]*domainPlan.BunkerPlan, error) {
	return s.planRepo.ListByStatus(ctx, status)
}

// UpdateStatus transitions a plan through its approval lifecycle. Approval
// stamps the approver and time; rejection requires a non-blank reason.
// Illegal transitions (e.g. rejected to approved) are refused.
func (s *Service) UpdateStatus(ctx context.Context, planID uuid.UUID, status domainPlan.Status, approvedBy, rejectionReason string) (*domainPlan.BunkerPlan, error) {
	p, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	if err := ValidateStatusTransition(p.Status, status); err != nil {
		return nil, err
	}

	switch status {
	case domainPlan.StatusApproved:
		if strings.TrimSpace(approvedBy) == "" {
			return nil, domainPlan.ErrApproverRequired
		}
		now := time.Now()
		p.ApprovedBy = &approvedBy
		p.ApprovedAt = &now
		p.RejectionReason = nil
	case domainPlan.StatusRejected:
		if strings.TrimSpace(rejectionReason) == "" {
			return nil, domainPlan.ErrRejectionReasonRequired
		}
		p.RejectionReason = &rejectionReason
	}

	p.Status = status
	if err := s.planRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	updated, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	logger.Info("Bunker plan status updated",
		zap.String("plan_id", planID.String()),
		zap.String("status", string(status)),
		zap.String("event", "bunker_plan_status_updated"),
	)

	if s.bus != nil {
		s.bus.Publish(events.Event{Type: events.EventPlanUpdate, Payload: updated})
	}

	s.notifyStatusChange(ctx, updated)
	return updated, nil
}

func (s *Service) notifyStatusChange(ctx context.Context, p *domainPlan.BunkerPlan) {
	if s.notifier == nil {
		return
	}

	var (
		nType   domainNotification.Type
		title   string
		message string
	)

	switch p.Status {
	case domainPlan.StatusApproved:
		nType = domainNotification.TypeInfo
		title = "Bunker Plan Approved"
		message = fmt.Sprintf("Bunker plan for %s at %s was approved by %s", p.Supplier, p.Port, *p.ApprovedBy)
	case domainPlan.StatusRejected:
		nType = domainNotification.TypeWarning
		title = "Bunker Plan Rejected"
		message = fmt.Sprintf("Bunker plan for %s at %s was rejected: %s", p.Supplier, p.Port, *p.RejectionReason)
	case domainPlan.StatusCompleted:
		nType = domainNotification.TypeInfo
		title = "Bunkering Completed"
		message = fmt.Sprintf("Fuel delivery at %s completed (%.0f MT %s)", p.Port, p.QuantityMT, p.FuelGrade)
	default:
		return
	}

	if err := s.notifier.Notify(ctx, nType, domainUser.RoleCharterer, title, message, false, ""); err != nil {
		logger.Warn("Failed to emit plan status notification", zap.Error(err))
	}
}
