// Package backup encodes and decodes logbook backup bundles. Decoding
// applies the same data migration as loading persisted data, so old
// bundles restore cleanly.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/habibfidahussain/autolog/internal/currency"
	"github.com/habibfidahussain/autolog/internal/logbook"
)

// ErrInvalidBundle indicates a backup missing its required top-level
// collections. Restore fails whole; nothing is partially applied.
var ErrInvalidBundle = errors.New("backup: invalid bundle")

// Bundle is the full backup payload.
type Bundle struct {
	Vehicles         []logbook.Vehicle `json:"vehicles"`
	Entries          []logbook.Entry   `json:"entries"`
	SelectedCurrency currency.Currency `json:"selectedCurrency"`
	ExchangeRates    currency.Rates    `json:"exchangeRates"`
}

// Encode renders a bundle as indented JSON.
func Encode(snap logbook.Snapshot, settings currency.Settings) ([]byte, error) {
	bundle := Bundle{
		Vehicles:         snap.Vehicles,
		Entries:          snap.Entries,
		SelectedCurrency: settings.Selected,
		ExchangeRates:    settings.Rates,
	}
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	return data, nil
}

// rawEntry mirrors the persisted entry shape plus the legacy singular
// category field written by early versions.
type rawEntry struct {
	logbook.Entry
	LegacyCategory string `json:"category,omitempty"`
}

type rawBundle struct {
	Vehicles         []logbook.Vehicle `json:"vehicles"`
	Entries          []rawEntry        `json:"entries"`
	SelectedCurrency currency.Currency `json:"selectedCurrency"`
	ExchangeRates    currency.Rates    `json:"exchangeRates"`
}

// Decode parses a bundle and migrates its entries: a missing status
// becomes "logged" and a legacy singular category is upgraded to the
// categories list (defaulting to Other when absent). The migration is
// idempotent. Bundles missing the vehicles or entries fields are
// rejected outright.
func Decode(data []byte) (logbook.Snapshot, currency.Settings, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return logbook.Snapshot{}, currency.Settings{}, fmt.Errorf("failed to parse backup: %w", err)
	}
	if _, ok := probe["vehicles"]; !ok {
		return logbook.Snapshot{}, currency.Settings{}, fmt.Errorf("%w: missing vehicles", ErrInvalidBundle)
	}
	if _, ok := probe["entries"]; !ok {
		return logbook.Snapshot{}, currency.Settings{}, fmt.Errorf("%w: missing entries", ErrInvalidBundle)
	}

	var raw rawBundle
	if err := json.Unmarshal(data, &raw); err != nil {
		return logbook.Snapshot{}, currency.Settings{}, fmt.Errorf("failed to parse backup: %w", err)
	}

	snap := logbook.Snapshot{Vehicles: raw.Vehicles}
	for _, re := range raw.Entries {
		snap.Entries = append(snap.Entries, migrateEntry(re))
	}

	settings := currency.Normalize(currency.Settings{
		Selected: raw.SelectedCurrency,
		Rates:    raw.ExchangeRates,
	})
	return snap, settings, nil
}

func migrateEntry(re rawEntry) logbook.Entry {
	e := re.Entry
	if e.Status == "" {
		e.Status = logbook.StatusLogged
	}
	if len(e.Categories) == 0 {
		if re.LegacyCategory != "" {
			e.Categories = []logbook.Category{logbook.Category(re.LegacyCategory)}
		} else {
			e.Categories = []logbook.Category{logbook.CategoryOther}
		}
	}
	return e
}
