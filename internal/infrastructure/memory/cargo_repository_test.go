package memory

import (
	"context"
	"errors"
	"testing"

	"fuel-sense/internal/domain/cargo"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestCargoRepository_CreateAndGet(t *testing.T) {
	repo := NewCargoRepository()
	ctx := context.Background()

	c := &cargo.Cargo{
		LoadPort:       "Santos",
		DischargePort:  "Qingdao",
		FreightRevenue: decimal.NewFromInt(2150000),
		Status:         cargo.StatusReadyForDecision,
		BunkerPorts: []cargo.BunkerPort{
			{Port: "Singapore", Supplier: "PortSide Bunkers", PricePerMT: decimal.NewFromInt(585)},
		},
	}
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Failed to create cargo: %v", err)
	}
	if c.ID == uuid.Nil {
		t.Fatalf("Expected Create to assign an id")
	}
	if c.CreatedAt.IsZero() {
		t.Errorf("Expected Create to stamp CreatedAt")
	}

	got, err := repo.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("Failed to get cargo: %v", err)
	}
	if got.LoadPort != "Santos" || got.DischargePort != "Qingdao" {
		t.Errorf("Expected Santos to Qingdao, got %s to %s", got.LoadPort, got.DischargePort)
	}
}

func TestCargoRepository_GetUnknown(t *testing.T) {
	repo := NewCargoRepository()

	_, err := repo.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, cargo.ErrCargoNotFound) {
		t.Fatalf("Expected ErrCargoNotFound, got %v", err)
	}
}

func TestCargoRepository_ReturnsClones(t *testing.T) {
	repo := NewCargoRepository()
	ctx := context.Background()

	c := &cargo.Cargo{
		LoadPort: "Santos",
		Status:   cargo.StatusReadyForDecision,
		BunkerPorts: []cargo.BunkerPort{
			{Port: "Singapore", Supplier: "PortSide Bunkers"},
		},
	}
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Failed to create cargo: %v", err)
	}

	got, err := repo.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("Failed to get cargo: %v", err)
	}

	// Mutating the returned value must not leak into the store.
	got.Status = cargo.StatusFixed
	got.BunkerPorts[0].Port = "Fujairah"

	fresh, err := repo.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("Failed to get cargo: %v", err)
	}
	if fresh.Status != cargo.StatusReadyForDecision {
		t.Errorf("Expected stored status untouched, got %s", fresh.Status)
	}
	if fresh.BunkerPorts[0].Port != "Singapore" {
		t.Errorf("Expected stored bunker port untouched, got %s", fresh.BunkerPorts[0].Port)
	}
}

func TestCargoRepository_UpdatePreservesCreatedAt(t *testing.T) {
	repo := NewCargoRepository()
	ctx := context.Background()

	c := &cargo.Cargo{LoadPort: "Santos", Status: cargo.StatusPendingAnalysis}
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Failed to create cargo: %v", err)
	}
	created := c.CreatedAt

	c.Status = cargo.StatusReadyForDecision
	if err := repo.Update(ctx, c); err != nil {
		t.Fatalf("Failed to update cargo: %v", err)
	}

	got, err := repo.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("Failed to get cargo: %v", err)
	}
	if got.Status != cargo.StatusReadyForDecision {
		t.Errorf("Expected updated status, got %s", got.Status)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("Expected CreatedAt preserved across updates")
	}
}

func TestCargoRepository_ListByStatus(t *testing.T) {
	repo := NewCargoRepository()
	ctx := context.Background()

	for _, status := range []cargo.Status{
		cargo.StatusReadyForDecision,
		cargo.StatusPendingAnalysis,
		cargo.StatusReadyForDecision,
	} {
		if err := repo.Create(ctx, &cargo.Cargo{LoadPort: "Santos", Status: status}); err != nil {
			t.Fatalf("Failed to create cargo: %v", err)
		}
	}

	ready, err := repo.ListByStatus(ctx, cargo.StatusReadyForDecision)
	if err != nil {
		t.Fatalf("Failed to list by status: %v", err)
	}
	if len(ready) != 2 {
		t.Fatalf("Expected 2 ready cargoes, got %d", len(ready))
	}
}
