package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/habibfidahussain/autolog/internal/database"
	"github.com/habibfidahussain/autolog/internal/logbook"
)

func setupLogbook(t *testing.T) (*Logbook, *database.Context) {
	t.Helper()
	dbc, err := database.CreateDatabase(":memory:")
	if err != nil {
		t.Fatalf("CreateDatabase error: %v", err)
	}

	t.Cleanup(func() {
		if err := database.CloseDatabase(dbc); err != nil {
			t.Fatalf("CloseDatabase error: %v", err)
		}
	})

	return NewLogbook(dbc), dbc
}

func TestOpenSeedsEmptyDatabase(t *testing.T) {
	uc, dbc := setupLogbook(t)
	ctx := context.Background()

	store, err := uc.Open(ctx)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if len(store.Vehicles()) != 3 {
		t.Fatalf("expected 3 seeded vehicles, got %d", len(store.Vehicles()))
	}

	// The seed must have been persisted, not just held in memory.
	snap, err := database.LoadSnapshot(ctx, dbc)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if len(snap.Vehicles) != 3 || len(snap.Entries) == 0 {
		t.Fatalf("expected seed to be persisted, got %d vehicles and %d entries",
			len(snap.Vehicles), len(snap.Entries))
	}
}

func TestMutatePersistsChanges(t *testing.T) {
	uc, _ := setupLogbook(t)
	ctx := context.Background()

	var addedID int64
	err := uc.Mutate(ctx, func(store *logbook.Store) error {
		added, err := store.AddEntry(logbook.Entry{
			VehicleID:   1,
			Date:        "2024-08-01",
			OdometerKm:  14500,
			Categories:  []logbook.Category{logbook.CategoryParts},
			Description: "New chain and sprockets",
			Cost:        3500,
			Status:      logbook.StatusLogged,
		})
		addedID = added.ID
		return err
	})
	if err != nil {
		t.Fatalf("Mutate failed: %v", err)
	}

	store, err := uc.Open(ctx)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	got, err := store.Entry(addedID)
	if err != nil {
		t.Fatalf("expected persisted entry %d: %v", addedID, err)
	}
	if got.Description != "New chain and sprockets" {
		t.Fatalf("unexpected persisted entry: %+v", got)
	}
}

func TestMutateFailureDoesNotPersist(t *testing.T) {
	uc, _ := setupLogbook(t)
	ctx := context.Background()

	wantErr := errors.New("boom")
	err := uc.Mutate(ctx, func(store *logbook.Store) error {
		store.AddVehicle("Ghost", 0, 0)
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected the callback error, got %v", err)
	}

	store, err := uc.Open(ctx)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := store.VehicleByName("Ghost"); !errors.Is(err, logbook.ErrNotFound) {
		t.Fatalf("expected the vehicle not to be persisted, got %v", err)
	}
}

func TestResolveVehicleByIDAndName(t *testing.T) {
	uc, _ := setupLogbook(t)
	ctx := context.Background()

	store, err := uc.Open(ctx)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	byID, err := ResolveVehicle(store, "1")
	if err != nil {
		t.Fatalf("resolve by id failed: %v", err)
	}
	byName, err := ResolveVehicle(store, "Suzuki GD 110s")
	if err != nil {
		t.Fatalf("resolve by name failed: %v", err)
	}
	if byID.ID != byName.ID {
		t.Fatalf("expected same vehicle, got %d and %d", byID.ID, byName.ID)
	}

	if _, err := ResolveVehicle(store, "no such bike"); !errors.Is(err, logbook.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAlertsUsesLatestLoggedOdometer(t *testing.T) {
	uc, _ := setupLogbook(t)
	ctx := context.Background()

	now := time.Date(2024, 8, 1, 0, 0, 0, 0, time.Local)
	result, err := uc.Alerts(ctx, "Suzuki GD 110s", nil, now)
	if err != nil {
		t.Fatalf("Alerts failed: %v", err)
	}
	// Seed data tops out at 14250 km for the fuel entry.
	if result.OdometerKm == nil || *result.OdometerKm != 14250 {
		t.Fatalf("expected reference odometer 14250, got %v", result.OdometerKm)
	}
	if len(result.Alerts) == 0 {
		t.Fatalf("expected alerts for a vehicle with history")
	}
}

func TestAlertsWithOverride(t *testing.T) {
	uc, _ := setupLogbook(t)
	ctx := context.Background()

	override := 20000
	now := time.Date(2024, 8, 1, 0, 0, 0, 0, time.Local)
	result, err := uc.Alerts(ctx, "Suzuki GD 110s", &override, now)
	if err != nil {
		t.Fatalf("Alerts failed: %v", err)
	}
	if result.OdometerKm == nil || *result.OdometerKm != 20000 {
		t.Fatalf("expected override 20000, got %v", result.OdometerKm)
	}

	// At 20000 km the last oil change at 14200 km is far past the
	// 1500 km preset interval.
	for _, a := range result.Alerts {
		if a.Name == "Oil Change" {
			if a.Status != logbook.StatusOverdue {
				t.Fatalf("expected oil change to be overdue, got %s", a.Status)
			}
			return
		}
	}
	t.Fatalf("expected an Oil Change alert, got %v", result.Alerts)
}

func TestAlertsWithNoHistoryAndNoOverride(t *testing.T) {
	uc, _ := setupLogbook(t)
	ctx := context.Background()

	err := uc.Mutate(ctx, func(store *logbook.Store) error {
		store.AddVehicle("Fresh Bike", 0, 0)
		return nil
	})
	if err != nil {
		t.Fatalf("Mutate failed: %v", err)
	}

	result, err := uc.Alerts(ctx, "Fresh Bike", nil, time.Now())
	if err != nil {
		t.Fatalf("Alerts failed: %v", err)
	}
	if result.OdometerKm != nil {
		t.Fatalf("expected no reference odometer, got %v", result.OdometerKm)
	}
	if len(result.Alerts) != 0 {
		t.Fatalf("expected no alerts, got %v", result.Alerts)
	}
}
