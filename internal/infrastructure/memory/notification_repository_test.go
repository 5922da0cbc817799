package memory

import (
	"context"
	"errors"
	"testing"

	"fuel-sense/internal/domain/notification"
	"fuel-sense/internal/domain/user"

	"github.com/google/uuid"
)

func seedNotifications(t *testing.T, repo *NotificationRepository) {
	t.Helper()

	ctx := context.Background()
	for _, n := range []*notification.Notification{
		{Type: notification.TypeInfo, Title: "First", Role: user.RoleCharterer},
		{Type: notification.TypeWarning, Title: "Second", Role: user.RoleOperator},
		{Type: notification.TypeUrgent, Title: "Third", Role: user.RoleOperator},
	} {
		if err := repo.Create(ctx, n); err != nil {
			t.Fatalf("Failed to create notification: %v", err)
		}
	}
}

func TestNotificationRepository_ListNewestFirst(t *testing.T) {
	repo := NewNotificationRepository()
	seedNotifications(t, repo)

	notifications, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("Failed to list notifications: %v", err)
	}
	if len(notifications) != 3 {
		t.Fatalf("Expected 3 notifications, got %d", len(notifications))
	}
	if notifications[0].Title != "Third" {
		t.Errorf("Expected the newest notification first, got %q", notifications[0].Title)
	}
	if notifications[2].Title != "First" {
		t.Errorf("Expected the oldest notification last, got %q", notifications[2].Title)
	}
}

func TestNotificationRepository_MarkAsRead(t *testing.T) {
	repo := NewNotificationRepository()
	seedNotifications(t, repo)
	ctx := context.Background()

	notifications, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list notifications: %v", err)
	}

	if err := repo.MarkAsRead(ctx, notifications[0].ID); err != nil {
		t.Fatalf("Failed to mark as read: %v", err)
	}

	updated, err := repo.GetByID(ctx, notifications[0].ID)
	if err != nil {
		t.Fatalf("Failed to get notification: %v", err)
	}
	if !updated.Read {
		t.Errorf("Expected notification to be read")
	}

	err = repo.MarkAsRead(ctx, notifications[0].ID)
	if err != nil {
		t.Errorf("Expected marking an already-read notification to succeed, got %v", err)
	}
}

func TestNotificationRepository_RetainRole(t *testing.T) {
	repo := NewNotificationRepository()
	seedNotifications(t, repo)
	ctx := context.Background()

	if err := repo.RetainRole(ctx, user.RoleOperator); err != nil {
		t.Fatalf("Failed to retain role: %v", err)
	}

	remaining, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list notifications: %v", err)
	}
	if len(remaining) != 2 {
		t.Fatalf("Expected 2 operator notifications, got %d", len(remaining))
	}
	for _, n := range remaining {
		if n.Role != user.RoleOperator {
			t.Errorf("Expected only operator notifications, got role %s", n.Role)
		}
	}
}

func TestNotificationRepository_ReplaceAll(t *testing.T) {
	repo := NewNotificationRepository()
	seedNotifications(t, repo)
	ctx := context.Background()

	replacement := []*notification.Notification{
		{Type: notification.TypeInfo, Title: "Restored", Role: user.RoleCharterer},
	}
	if err := repo.ReplaceAll(ctx, replacement); err != nil {
		t.Fatalf("Failed to replace notifications: %v", err)
	}

	notifications, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("Expected 1 notification after replace, got %d", len(notifications))
	}
	if notifications[0].Title != "Restored" {
		t.Errorf("Expected title Restored, got %q", notifications[0].Title)
	}
}

func TestNotificationRepository_ClearAll(t *testing.T) {
	repo := NewNotificationRepository()
	seedNotifications(t, repo)
	ctx := context.Background()

	if err := repo.ClearAll(ctx); err != nil {
		t.Fatalf("Failed to clear notifications: %v", err)
	}

	notifications, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list notifications: %v", err)
	}
	if len(notifications) != 0 {
		t.Fatalf("Expected no notifications, got %d", len(notifications))
	}
}

func TestNotificationRepository_GetByIDUnknown(t *testing.T) {
	repo := NewNotificationRepository()

	_, err := repo.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, notification.ErrNotificationNotFound) {
		t.Fatalf("Expected ErrNotificationNotFound, got %v", err)
	}
}
