package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()

	pair, err := GenerateTokenPair(userID, "operator@fuelsense.dev", "operator", "test-secret", 24, 168)
	if err != nil {
		t.Fatalf("Failed to generate token pair: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("Expected both tokens to be issued")
	}

	claims, err := ValidateToken(pair.AccessToken, "test-secret")
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("Expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.Email != "operator@fuelsense.dev" {
		t.Errorf("Expected email operator@fuelsense.dev, got %s", claims.Email)
	}
	if claims.Role != "operator" {
		t.Errorf("Expected role operator, got %s", claims.Role)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	pair, err := GenerateTokenPair(uuid.New(), "operator@fuelsense.dev", "operator", "test-secret", 24, 168)
	if err != nil {
		t.Fatalf("Failed to generate token pair: %v", err)
	}

	if _, err := ValidateToken(pair.AccessToken, "other-secret"); err == nil {
		t.Fatalf("Expected validation to fail with the wrong secret")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token", "test-secret"); err == nil {
		t.Fatalf("Expected validation to fail for garbage input")
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid", password: "FuelSense#24"},
		{name: "too_short", password: "Fs#1", wantErr: true},
		{name: "no_upper", password: "fuelsense24", wantErr: true},
		{name: "no_lower", password: "FUELSENSE24", wantErr: true},
		{name: "no_number", password: "FuelSenseOnly", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr && err == nil {
				t.Errorf("Expected an error for %q", tt.password)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error for %q: %v", tt.password, err)
			}
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("FuelSense#24")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	if !CheckPassword(hash, "FuelSense#24") {
		t.Errorf("Expected the correct password to verify")
	}
	if CheckPassword(hash, "WrongPass#24") {
		t.Errorf("Expected a wrong password to fail")
	}
}
