package database

import (
	"context"
	"testing"

	"github.com/habibfidahussain/autolog/internal/logbook"
)

func setupTestDB(t *testing.T) *Context {
	t.Helper()
	dbc, err := CreateDatabase(":memory:")
	if err != nil {
		t.Fatalf("CreateDatabase error: %v", err)
	}

	t.Cleanup(func() {
		if err := CloseDatabase(dbc); err != nil {
			t.Fatalf("CloseDatabase error: %v", err)
		}
	})

	return dbc
}

func TestSnapshotRoundTrip(t *testing.T) {
	dbc := setupTestDB(t)
	ctx := context.Background()

	snap := logbook.Snapshot{
		Vehicles: []logbook.Vehicle{
			{ID: 1, Name: "Suzuki GD 110s", Year: 2022, EngineCC: 113,
				Intervals: logbook.ServiceIntervals{"Oil Change": 2000}},
			{ID: 2, Name: "Honda CG-125"},
		},
		Entries: []logbook.Entry{
			{ID: 10, VehicleID: 1, Date: "2024-01-10", OdometerKm: 4100,
				Categories: []logbook.Category{logbook.CategoryOil}, Description: "Oil change",
				Cost: 1200, Status: logbook.StatusLogged, IsRecurring: true,
				RecurrenceIntervalKm: 1500},
			{ID: 11, VehicleID: 1, Date: "2024-01-10", OdometerKm: 5600,
				Categories: []logbook.Category{logbook.CategoryOil}, Description: "Oil change",
				Status: logbook.StatusScheduled, IsRecurring: true,
				RecurrenceIntervalKm: 1500, ParentID: 10},
			{ID: 12, VehicleID: 2, Date: "2024-02-01", OdometerKm: 900,
				Categories: []logbook.Category{logbook.CategoryFuel}, Description: "Fill-up",
				Cost: 1500, Liters: 5.5, PricePerLiter: 272.73, Status: logbook.StatusLogged},
		},
	}

	if err := SaveSnapshot(ctx, dbc, snap); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	loaded, err := LoadSnapshot(ctx, dbc)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}

	if len(loaded.Vehicles) != 2 {
		t.Fatalf("expected 2 vehicles, got %d", len(loaded.Vehicles))
	}
	if loaded.Vehicles[0].Intervals["Oil Change"] != 2000 {
		t.Fatalf("expected custom interval to survive, got %v", loaded.Vehicles[0].Intervals)
	}
	if loaded.Vehicles[1].Intervals != nil {
		t.Fatalf("expected nil intervals for vehicle without overrides, got %v", loaded.Vehicles[1].Intervals)
	}

	if len(loaded.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(loaded.Entries))
	}

	scheduled := loaded.Entries[1]
	if scheduled.Status != logbook.StatusScheduled || scheduled.ParentID != 10 {
		t.Fatalf("expected scheduled entry with parent 10, got %+v", scheduled)
	}
	if !scheduled.IsRecurring {
		t.Fatalf("expected recurrence flag to survive")
	}

	fuel := loaded.Entries[2]
	if fuel.Liters != 5.5 || fuel.PricePerLiter != 272.73 {
		t.Fatalf("expected fuel fields to survive, got %+v", fuel)
	}
}

func TestSaveSnapshotReplacesPreviousData(t *testing.T) {
	dbc := setupTestDB(t)
	ctx := context.Background()

	first := logbook.Snapshot{
		Vehicles: []logbook.Vehicle{{ID: 1, Name: "Old"}},
		Entries: []logbook.Entry{
			{ID: 10, VehicleID: 1, Date: "2024-01-01", OdometerKm: 100,
				Categories: []logbook.Category{logbook.CategoryOther}, Status: logbook.StatusLogged},
		},
	}
	if err := SaveSnapshot(ctx, dbc, first); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	second := logbook.Snapshot{
		Vehicles: []logbook.Vehicle{{ID: 2, Name: "New"}},
	}
	if err := SaveSnapshot(ctx, dbc, second); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	loaded, err := LoadSnapshot(ctx, dbc)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if len(loaded.Vehicles) != 1 || loaded.Vehicles[0].Name != "New" {
		t.Fatalf("expected only the new vehicle, got %v", loaded.Vehicles)
	}
	if len(loaded.Entries) != 0 {
		t.Fatalf("expected old entries to be gone, got %v", loaded.Entries)
	}
}

func TestLoadSnapshotNormalizesLegacyRows(t *testing.T) {
	dbc := setupTestDB(t)
	ctx := context.Background()

	if _, err := dbc.DB.ExecContext(ctx,
		`INSERT INTO vehicles (id, name, year, engine_cc) VALUES (1, 'Bike', 0, 0)`); err != nil {
		t.Fatalf("insert vehicle failed: %v", err)
	}
	// A row written before status and categories existed.
	if _, err := dbc.DB.ExecContext(ctx, `
		INSERT INTO entries (id, vehicle_id, date_iso, odometer_km, categories, description,
		                     cost, liters, price_per_liter, status, is_recurring,
		                     recurrence_interval_days, recurrence_interval_km, parent_id)
		VALUES (10, 1, '2023-05-01', 800, '', 'Old record', 500, 0, 0, '', 0, 0, 0, 0)`); err != nil {
		t.Fatalf("insert entry failed: %v", err)
	}

	loaded, err := LoadSnapshot(ctx, dbc)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if len(loaded.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(loaded.Entries))
	}

	e := loaded.Entries[0]
	if e.Status != logbook.StatusLogged {
		t.Fatalf("expected missing status to normalize to logged, got %q", e.Status)
	}
	if len(e.Categories) != 1 || e.Categories[0] != logbook.CategoryOther {
		t.Fatalf("expected categories to default to [Other], got %v", e.Categories)
	}
}
