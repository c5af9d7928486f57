// Package usecase wires the in-memory logbook store to its SQLite
// persistence: load a snapshot, apply lifecycle operations, persist
// the result.
package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/habibfidahussain/autolog/internal/database"
	"github.com/habibfidahussain/autolog/internal/logbook"
)

// Logbook orchestrates store mutations against the database snapshot.
type Logbook struct {
	db *database.Context
}

// NewLogbook creates a Logbook bound to an open database.
func NewLogbook(dbc *database.Context) *Logbook {
	return &Logbook{db: dbc}
}

// Open loads the persisted snapshot into a store. A completely empty
// database is seeded with the starter data, matching first-run
// behavior.
func (u *Logbook) Open(ctx context.Context) (*logbook.Store, error) {
	snap, err := database.LoadSnapshot(ctx, u.db)
	if err != nil {
		return nil, err
	}
	if len(snap.Vehicles) == 0 && len(snap.Entries) == 0 {
		snap = logbook.SeedSnapshot()
		if err := database.SaveSnapshot(ctx, u.db, snap); err != nil {
			return nil, fmt.Errorf("failed to seed logbook: %w", err)
		}
	}
	return logbook.NewStore(snap), nil
}

// Save persists the store's current snapshot. The in-memory mutation
// stays authoritative; a failure here is surfaced but nothing is
// rolled back.
func (u *Logbook) Save(ctx context.Context, store *logbook.Store) error {
	if err := database.SaveSnapshot(ctx, u.db, store.Snapshot()); err != nil {
		return fmt.Errorf("failed to persist logbook: %w", err)
	}
	return nil
}

// Mutate loads the store, applies fn, and persists the result when fn
// succeeds.
func (u *Logbook) Mutate(ctx context.Context, fn func(*logbook.Store) error) error {
	store, err := u.Open(ctx)
	if err != nil {
		return err
	}
	if err := fn(store); err != nil {
		return err
	}
	return u.Save(ctx, store)
}

// Replace overwrites the entire persisted snapshot, used by restore.
func (u *Logbook) Replace(ctx context.Context, snap logbook.Snapshot) error {
	if err := database.SaveSnapshot(ctx, u.db, snap); err != nil {
		return fmt.Errorf("failed to persist logbook: %w", err)
	}
	return nil
}

// ResolveVehicle finds a vehicle by numeric id or by exact name.
func ResolveVehicle(store *logbook.Store, ref string) (logbook.Vehicle, error) {
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return store.Vehicle(id)
	}
	return store.VehicleByName(ref)
}

// AlertsResult bundles the derived alerts with the inputs they were
// computed against.
type AlertsResult struct {
	Vehicle    logbook.Vehicle
	OdometerKm *int
	Alerts     []logbook.Alert
}

// Alerts derives the maintenance alerts for a vehicle. When no
// odometer override is given, the latest logged reading is used; a
// vehicle with no logged history and no override yields no alerts.
func (u *Logbook) Alerts(ctx context.Context, vehicleRef string, odometerOverride *int, now time.Time) (*AlertsResult, error) {
	store, err := u.Open(ctx)
	if err != nil {
		return nil, err
	}
	vehicle, err := ResolveVehicle(store, vehicleRef)
	if err != nil {
		return nil, err
	}

	odometer := odometerOverride
	if odometer == nil {
		if km, ok := store.LatestOdometer(vehicle.ID); ok {
			odometer = &km
		}
	}

	entries := store.VehicleEntries(vehicle.ID)
	intervals := logbook.ResolveIntervals(&vehicle)

	return &AlertsResult{
		Vehicle:    vehicle,
		OdometerKm: odometer,
		Alerts:     logbook.DeriveAlerts(entries, odometer, intervals, now),
	}, nil
}
