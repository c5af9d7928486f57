package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/habibfidahussain/autolog/internal/logbook"
)

// LoadSnapshot reads the full vehicle and entry collections. Entries
// persisted by older versions are normalized on the way in: a missing
// status becomes "logged" and empty categories become ["Other"].
func LoadSnapshot(ctx context.Context, dbc *Context) (logbook.Snapshot, error) {
	var snap logbook.Snapshot
	if dbc == nil || dbc.DB == nil {
		return snap, fmt.Errorf("database: missing connection")
	}

	rows, err := dbc.DB.QueryContext(ctx, `SELECT id, name, year, engine_cc, intervals FROM vehicles ORDER BY id`)
	if err != nil {
		return snap, fmt.Errorf("failed to load vehicles: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var (
			v         logbook.Vehicle
			intervals sql.NullString
		)
		if err := rows.Scan(&v.ID, &v.Name, &v.Year, &v.EngineCC, &intervals); err != nil {
			return snap, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		if intervals.Valid && intervals.String != "" {
			if err := json.Unmarshal([]byte(intervals.String), &v.Intervals); err != nil {
				return snap, fmt.Errorf("failed to decode intervals for vehicle %d: %w", v.ID, err)
			}
		}
		snap.Vehicles = append(snap.Vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return snap, err
	}

	entryRows, err := dbc.DB.QueryContext(ctx, `
		SELECT id, vehicle_id, date_iso, odometer_km, categories, description, cost,
		       liters, price_per_liter, status, is_recurring,
		       recurrence_interval_days, recurrence_interval_km, parent_id
		FROM entries ORDER BY id`)
	if err != nil {
		return snap, fmt.Errorf("failed to load entries: %w", err)
	}
	defer func() {
		_ = entryRows.Close()
	}()

	for entryRows.Next() {
		var (
			e          logbook.Entry
			categories string
			recurring  int64
		)
		if err := entryRows.Scan(&e.ID, &e.VehicleID, &e.Date, &e.OdometerKm, &categories,
			&e.Description, &e.Cost, &e.Liters, &e.PricePerLiter, &e.Status, &recurring,
			&e.RecurrenceIntervalDays, &e.RecurrenceIntervalKm, &e.ParentID); err != nil {
			return snap, fmt.Errorf("failed to scan entry: %w", err)
		}
		if categories != "" {
			if err := json.Unmarshal([]byte(categories), &e.Categories); err != nil {
				return snap, fmt.Errorf("failed to decode categories for entry %d: %w", e.ID, err)
			}
		}
		e.IsRecurring = recurring != 0
		snap.Entries = append(snap.Entries, normalizeEntry(e))
	}
	if err := entryRows.Err(); err != nil {
		return snap, err
	}

	return snap, nil
}

// SaveSnapshot replaces the persisted collections with the given
// snapshot in one transaction.
func SaveSnapshot(ctx context.Context, dbc *Context, snap logbook.Snapshot) error {
	if dbc == nil || dbc.DB == nil {
		return fmt.Errorf("database: missing connection")
	}

	tx, err := dbc.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := writeSnapshot(ctx, tx, snap); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

func writeSnapshot(ctx context.Context, tx *sql.Tx, snap logbook.Snapshot) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM vehicles`); err != nil {
		return fmt.Errorf("failed to clear vehicles: %w", err)
	}

	for _, v := range snap.Vehicles {
		var intervals any
		if len(v.Intervals) > 0 {
			encoded, err := json.Marshal(v.Intervals)
			if err != nil {
				return fmt.Errorf("failed to encode intervals for vehicle %d: %w", v.ID, err)
			}
			intervals = string(encoded)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO vehicles (id, name, year, engine_cc, intervals) VALUES (?, ?, ?, ?, ?)`,
			v.ID, v.Name, v.Year, v.EngineCC, intervals); err != nil {
			return fmt.Errorf("failed to insert vehicle %d: %w", v.ID, err)
		}
	}

	for _, e := range snap.Entries {
		categories, err := json.Marshal(e.Categories)
		if err != nil {
			return fmt.Errorf("failed to encode categories for entry %d: %w", e.ID, err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO entries (id, vehicle_id, date_iso, odometer_km, categories, description,
			                     cost, liters, price_per_liter, status, is_recurring,
			                     recurrence_interval_days, recurrence_interval_km, parent_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.VehicleID, e.Date, e.OdometerKm, string(categories), e.Description,
			e.Cost, e.Liters, e.PricePerLiter, string(e.Status), boolToInt64(e.IsRecurring),
			e.RecurrenceIntervalDays, e.RecurrenceIntervalKm, e.ParentID); err != nil {
			return fmt.Errorf("failed to insert entry %d: %w", e.ID, err)
		}
	}
	return nil
}

// normalizeEntry applies the persisted-data migration contract. It is
// idempotent: already-migrated entries pass through unchanged.
func normalizeEntry(e logbook.Entry) logbook.Entry {
	if e.Status == "" {
		e.Status = logbook.StatusLogged
	}
	if len(e.Categories) == 0 {
		e.Categories = []logbook.Category{logbook.CategoryOther}
	}
	return e
}

func boolToInt64(value bool) int64 {
	if value {
		return 1
	}
	return 0
}
