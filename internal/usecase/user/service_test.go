package user

import (
	"context"
	"errors"
	"testing"

	"fuel-sense/internal/config"
	domainCargo "fuel-sense/internal/domain/cargo"
	domainNotification "fuel-sense/internal/domain/notification"
	domainUser "fuel-sense/internal/domain/user"
	"fuel-sense/internal/infrastructure/memory"
	appErrors "fuel-sense/pkg/errors"
	"fuel-sense/pkg/utils"

	"github.com/google/uuid"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:             "test-secret",
			ExpiryHours:        24,
			RefreshExpiryHours: 168,
		},
	}
}

type testStore struct {
	users    *memory.UserRepository
	cargoes  *memory.CargoRepository
	notifs   *memory.NotificationRepository
	sessions *memory.SessionRepository
}

func newTestService(t *testing.T) (*Service, *testStore) {
	t.Helper()

	store := &testStore{
		users:    memory.NewUserRepository(),
		cargoes:  memory.NewCargoRepository(),
		notifs:   memory.NewNotificationRepository(),
		sessions: memory.NewSessionRepository(),
	}
	svc := NewService(store.users, store.cargoes, store.notifs, store.sessions, testConfig())
	return svc, store
}

func seedUser(t *testing.T, repo *memory.UserRepository, email string, role domainUser.Role) *domainUser.User {
	t.Helper()

	hash, err := utils.HashPassword("FuelSense#24")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	u := &domainUser.User{
		Email:          email,
		FullName:       "Test User",
		PasswordHashed: hash,
		Role:           role,
		IsActive:       true,
	}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return u
}

func TestLogin_Success(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	u := seedUser(t, store.users, "charterer@fuelsense.dev", domainUser.RoleCharterer)

	resp, err := svc.Login(ctx, &LoginRequest{Email: "charterer@fuelsense.dev", Password: "FuelSense#24"})
	if err != nil {
		t.Fatalf("Failed to login: %v", err)
	}
	if resp.User.ID != u.ID {
		t.Errorf("Expected user %s, got %s", u.ID, resp.User.ID)
	}
	if resp.Tokens == nil || resp.Tokens.AccessToken == "" {
		t.Fatalf("Expected an access token")
	}

	claims, err := utils.ValidateToken(resp.Tokens.AccessToken, "test-secret")
	if err != nil {
		t.Fatalf("Failed to validate issued token: %v", err)
	}
	if claims.Role != string(domainUser.RoleCharterer) {
		t.Errorf("Expected role claim %s, got %s", domainUser.RoleCharterer, claims.Role)
	}

	current := svc.CurrentUser()
	if current == nil || current.ID != u.ID {
		t.Errorf("Expected login to set the current session user")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, store := newTestService(t)

	seedUser(t, store.users, "charterer@fuelsense.dev", domainUser.RoleCharterer)

	_, err := svc.Login(context.Background(), &LoginRequest{Email: "charterer@fuelsense.dev", Password: "nope-nope-1A"})
	if !errors.Is(err, appErrors.ErrInvalidCredentials) {
		t.Fatalf("Expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), &LoginRequest{Email: "ghost@fuelsense.dev", Password: "whatever1A"})
	if !errors.Is(err, appErrors.ErrInvalidCredentials) {
		t.Fatalf("Expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefreshToken_IssuesNewPair(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	u := seedUser(t, store.users, "operator@fuelsense.dev", domainUser.RoleOperator)

	resp, err := svc.Login(ctx, &LoginRequest{Email: "operator@fuelsense.dev", Password: "FuelSense#24"})
	if err != nil {
		t.Fatalf("Failed to login: %v", err)
	}

	tokens, err := svc.RefreshToken(ctx, resp.Tokens.RefreshToken)
	if err != nil {
		t.Fatalf("Failed to refresh token: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatalf("Expected a full token pair from refresh")
	}

	claims, err := utils.ValidateToken(tokens.AccessToken, "test-secret")
	if err != nil {
		t.Fatalf("Failed to validate refreshed token: %v", err)
	}
	if claims.UserID != u.ID {
		t.Errorf("Expected user id %s in refreshed claims, got %s", u.ID, claims.UserID)
	}
	if claims.Role != string(domainUser.RoleOperator) {
		t.Errorf("Expected role claim %s, got %s", domainUser.RoleOperator, claims.Role)
	}
}

func TestRefreshToken_RejectsGarbage(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RefreshToken(context.Background(), "not-a-token")
	if !errors.Is(err, appErrors.ErrInvalidToken) {
		t.Fatalf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestRefreshToken_RejectsDeletedUser(t *testing.T) {
	svc, _ := newTestService(t)

	// A valid token whose subject no longer exists in the store.
	pair, err := utils.GenerateTokenPair(uuid.New(), "ghost@fuelsense.dev", "operator", "test-secret", 24, 168)
	if err != nil {
		t.Fatalf("Failed to generate token pair: %v", err)
	}

	_, err = svc.RefreshToken(context.Background(), pair.RefreshToken)
	if !errors.Is(err, appErrors.ErrInvalidToken) {
		t.Fatalf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestRefreshToken_RejectsInactiveUser(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	hash, err := utils.HashPassword("FuelSense#24")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	u := &domainUser.User{
		Email:          "retired@fuelsense.dev",
		FullName:       "Retired User",
		PasswordHashed: hash,
		Role:           domainUser.RoleOperator,
		IsActive:       false,
	}
	if err := store.users.Create(ctx, u); err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}

	pair, err := utils.GenerateTokenPair(u.ID, u.Email, string(u.Role), "test-secret", 24, 168)
	if err != nil {
		t.Fatalf("Failed to generate token pair: %v", err)
	}

	if _, err := svc.RefreshToken(ctx, pair.RefreshToken); !errors.Is(err, domainUser.ErrUserInactive) {
		t.Fatalf("Expected ErrUserInactive, got %v", err)
	}
}

func TestSetCurrentUser_DropsOtherRoleNotifications(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	charterer := seedUser(t, store.users, "charterer@fuelsense.dev", domainUser.RoleCharterer)
	operator := seedUser(t, store.users, "operator@fuelsense.dev", domainUser.RoleOperator)

	for _, n := range []*domainNotification.Notification{
		{Type: domainNotification.TypeInfo, Title: "For Charterer", Role: domainUser.RoleCharterer},
		{Type: domainNotification.TypeWarning, Title: "For Operator", Role: domainUser.RoleOperator},
	} {
		if err := store.notifs.Create(ctx, n); err != nil {
			t.Fatalf("Failed to seed notification: %v", err)
		}
	}

	if err := svc.SetCurrentUser(ctx, operator.ID); err != nil {
		t.Fatalf("Failed to set current user: %v", err)
	}

	remaining, err := store.notifs.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list notifications: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("Expected 1 notification after role switch, got %d", len(remaining))
	}
	if remaining[0].Role != domainUser.RoleOperator {
		t.Errorf("Expected only operator notifications, got role %s", remaining[0].Role)
	}

	// Switching back does not resurrect the discarded charterer notification.
	if err := svc.SetCurrentUser(ctx, charterer.ID); err != nil {
		t.Fatalf("Failed to switch back: %v", err)
	}
	remaining, err = store.notifs.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list notifications: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("Expected the discard to be destructive, got %d notifications", len(remaining))
	}
}

func TestSelectCargo_RequiresExistingCargo(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	err := svc.SelectCargo(ctx, uuid.New())
	if !errors.Is(err, domainCargo.ErrCargoNotFound) {
		t.Fatalf("Expected ErrCargoNotFound, got %v", err)
	}
	if svc.SelectedCargo() != nil {
		t.Errorf("Expected no cargo selected after a failed select")
	}

	c := &domainCargo.Cargo{LoadPort: "Santos", DischargePort: "Qingdao", Status: domainCargo.StatusReadyForDecision}
	if err := store.cargoes.Create(ctx, c); err != nil {
		t.Fatalf("Failed to seed cargo: %v", err)
	}

	if err := svc.SelectCargo(ctx, c.ID); err != nil {
		t.Fatalf("Failed to select cargo: %v", err)
	}
	selected := svc.SelectedCargo()
	if selected == nil || *selected != c.ID {
		t.Errorf("Expected selected cargo %s, got %v", c.ID, selected)
	}
}

func TestPersistAndHydrate_RoundTrip(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	u := seedUser(t, store.users, "operator@fuelsense.dev", domainUser.RoleOperator)

	c := &domainCargo.Cargo{LoadPort: "Santos", DischargePort: "Qingdao", Status: domainCargo.StatusReadyForDecision}
	if err := store.cargoes.Create(ctx, c); err != nil {
		t.Fatalf("Failed to seed cargo: %v", err)
	}

	n := &domainNotification.Notification{Type: domainNotification.TypeUrgent, Title: "Low Fuel Alert", Role: domainUser.RoleOperator}
	if err := store.notifs.Create(ctx, n); err != nil {
		t.Fatalf("Failed to seed notification: %v", err)
	}

	if err := svc.SetCurrentUser(ctx, u.ID); err != nil {
		t.Fatalf("Failed to set current user: %v", err)
	}
	if err := svc.SelectCargo(ctx, c.ID); err != nil {
		t.Fatalf("Failed to select cargo: %v", err)
	}

	// A fresh service sharing the session store picks up the snapshot.
	restored := NewService(store.users, store.cargoes, memory.NewNotificationRepository(), store.sessions, testConfig())
	if err := restored.Hydrate(ctx); err != nil {
		t.Fatalf("Failed to hydrate: %v", err)
	}

	current := restored.CurrentUser()
	if current == nil || current.ID != u.ID {
		t.Fatalf("Expected hydrated user %s, got %v", u.ID, current)
	}
	selected := restored.SelectedCargo()
	if selected == nil || *selected != c.ID {
		t.Fatalf("Expected hydrated cargo %s, got %v", c.ID, selected)
	}

	notifications, err := restored.notifRepo.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("Expected 1 hydrated notification, got %d", len(notifications))
	}
	if notifications[0].Title != "Low Fuel Alert" {
		t.Errorf("Expected title %q, got %q", "Low Fuel Alert", notifications[0].Title)
	}
}

func TestHydrate_MissingSnapshotIsNotAnError(t *testing.T) {
	svc, _ := newTestService(t)

	if err := svc.Hydrate(context.Background()); err != nil {
		t.Fatalf("Expected missing snapshot to be tolerated, got %v", err)
	}
	if svc.CurrentUser() != nil {
		t.Errorf("Expected no current user after empty hydration")
	}
}
