package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/habibfidahussain/autolog/internal/currency"
)

const currencySettingsKey = "currency"

// LoadCurrencySettings reads the persisted currency configuration,
// falling back to defaults when nothing has been saved yet.
func LoadCurrencySettings(ctx context.Context, dbc *Context) (currency.Settings, error) {
	if dbc == nil || dbc.DB == nil {
		return currency.Settings{}, fmt.Errorf("database: missing connection")
	}

	var value string
	err := dbc.DB.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, currencySettingsKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return currency.DefaultSettings(), nil
	}
	if err != nil {
		return currency.Settings{}, fmt.Errorf("failed to load currency settings: %w", err)
	}

	var settings currency.Settings
	if err := json.Unmarshal([]byte(value), &settings); err != nil {
		return currency.Settings{}, fmt.Errorf("failed to decode currency settings: %w", err)
	}
	return currency.Normalize(settings), nil
}

// SaveCurrencySettings persists the currency configuration.
func SaveCurrencySettings(ctx context.Context, dbc *Context, settings currency.Settings) error {
	if dbc == nil || dbc.DB == nil {
		return fmt.Errorf("database: missing connection")
	}

	encoded, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode currency settings: %w", err)
	}
	if _, err := dbc.DB.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		currencySettingsKey, string(encoded)); err != nil {
		return fmt.Errorf("failed to save currency settings: %w", err)
	}
	return nil
}
