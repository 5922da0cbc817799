package plan

import (
	"context"
	"errors"
	"testing"
	"time"

	domainNotification "fuel-sense/internal/domain/notification"
	domainPlan "fuel-sense/internal/domain/plan"
	domainUser "fuel-sense/internal/domain/user"
	"fuel-sense/internal/infrastructure/memory"
	notificationUC "fuel-sense/internal/usecase/notification"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newTestService() (*Service, *memory.PlanRepository, *memory.NotificationRepository) {
	planRepo := memory.NewPlanRepository()
	notifRepo := memory.NewNotificationRepository()
	notifier := notificationUC.NewService(notifRepo, nil)
	return NewService(planRepo, notifier, nil), planRepo, notifRepo
}

func seedPlan(t *testing.T, repo *memory.PlanRepository, status domainPlan.Status) *domainPlan.BunkerPlan {
	t.Helper()

	p := &domainPlan.BunkerPlan{
		CargoID:       uuid.New(),
		Port:          "Singapore",
		Supplier:      "PortSide Bunkers",
		FuelGrade:     "VLSFO",
		QuantityMT:    850,
		PricePerMT:    decimal.NewFromInt(585),
		BargeFees:     decimal.NewFromInt(4500),
		DeliveryStart: time.Now().Add(48 * time.Hour),
		DeliveryEnd:   time.Now().Add(72 * time.Hour),
		Status:        status,
	}
	p.TotalCost = p.ComputeTotalCost()
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("Failed to seed plan: %v", err)
	}
	return p
}

func TestUpdateStatus_ApproveStampsApproverAndTime(t *testing.T) {
	svc, planRepo, notifRepo := newTestService()
	ctx := context.Background()

	p := seedPlan(t, planRepo, domainPlan.StatusPendingApproval)

	before := time.Now()
	updated, err := svc.UpdateStatus(ctx, p.ID, domainPlan.StatusApproved, "Tomas Lindqvist", "")
	if err != nil {
		t.Fatalf("Failed to approve plan: %v", err)
	}

	if updated.Status != domainPlan.StatusApproved {
		t.Errorf("Expected status %s, got %s", domainPlan.StatusApproved, updated.Status)
	}
	if updated.ApprovedBy == nil || *updated.ApprovedBy != "Tomas Lindqvist" {
		t.Errorf("Expected approver Tomas Lindqvist, got %v", updated.ApprovedBy)
	}
	if updated.ApprovedAt == nil || updated.ApprovedAt.Before(before) {
		t.Errorf("Expected approval time on or after %v, got %v", before, updated.ApprovedAt)
	}

	notifications, err := notifRepo.ListByRole(ctx, domainUser.RoleCharterer)
	if err != nil {
		t.Fatalf("Failed to list notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("Expected 1 charterer notification, got %d", len(notifications))
	}
	if notifications[0].Type != domainNotification.TypeInfo {
		t.Errorf("Expected info notification, got %s", notifications[0].Type)
	}
	if notifications[0].Title != "Bunker Plan Approved" {
		t.Errorf("Expected title %q, got %q", "Bunker Plan Approved", notifications[0].Title)
	}
}

func TestUpdateStatus_ApproveRequiresApprover(t *testing.T) {
	svc, planRepo, _ := newTestService()
	p := seedPlan(t, planRepo, domainPlan.StatusPendingApproval)

	_, err := svc.UpdateStatus(context.Background(), p.ID, domainPlan.StatusApproved, "  ", "")
	if !errors.Is(err, domainPlan.ErrApproverRequired) {
		t.Fatalf("Expected ErrApproverRequired, got %v", err)
	}
}

func TestUpdateStatus_RejectRequiresReason(t *testing.T) {
	svc, planRepo, notifRepo := newTestService()
	ctx := context.Background()
	p := seedPlan(t, planRepo, domainPlan.StatusPendingApproval)

	_, err := svc.UpdateStatus(ctx, p.ID, domainPlan.StatusRejected, "", "")
	if !errors.Is(err, domainPlan.ErrRejectionReasonRequired) {
		t.Fatalf("Expected ErrRejectionReasonRequired, got %v", err)
	}

	updated, err := svc.UpdateStatus(ctx, p.ID, domainPlan.StatusRejected, "", "Price above market")
	if err != nil {
		t.Fatalf("Failed to reject plan: %v", err)
	}
	if updated.RejectionReason == nil || *updated.RejectionReason != "Price above market" {
		t.Errorf("Expected rejection reason to be stored, got %v", updated.RejectionReason)
	}

	notifications, err := notifRepo.ListByRole(ctx, domainUser.RoleCharterer)
	if err != nil {
		t.Fatalf("Failed to list notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("Expected 1 charterer notification, got %d", len(notifications))
	}
	if notifications[0].Type != domainNotification.TypeWarning {
		t.Errorf("Expected warning notification, got %s", notifications[0].Type)
	}
}

func TestUpdateStatus_IllegalTransitions(t *testing.T) {
	tests := []struct {
		name string
		from domainPlan.Status
		to   domainPlan.Status
	}{
		{name: "rejected_to_approved", from: domainPlan.StatusRejected, to: domainPlan.StatusApproved},
		{name: "completed_to_rejected", from: domainPlan.StatusCompleted, to: domainPlan.StatusRejected},
		{name: "pending_to_completed", from: domainPlan.StatusPendingApproval, to: domainPlan.StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, planRepo, _ := newTestService()
			p := seedPlan(t, planRepo, tt.from)

			_, err := svc.UpdateStatus(context.Background(), p.ID, tt.to, "someone", "some reason")
			if !errors.Is(err, domainPlan.ErrInvalidStatusTransition) {
				t.Fatalf("Expected ErrInvalidStatusTransition, got %v", err)
			}
		})
	}
}

func TestUpdateStatus_ApprovedToCompleted(t *testing.T) {
	svc, planRepo, _ := newTestService()
	p := seedPlan(t, planRepo, domainPlan.StatusApproved)

	updated, err := svc.UpdateStatus(context.Background(), p.ID, domainPlan.StatusCompleted, "", "")
	if err != nil {
		t.Fatalf("Failed to complete plan: %v", err)
	}
	if updated.Status != domainPlan.StatusCompleted {
		t.Errorf("Expected status %s, got %s", domainPlan.StatusCompleted, updated.Status)
	}
}
