// Package logbook holds the maintenance logbook data model, the entry
// lifecycle store, and the alert derivation engine.
package logbook

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar date format used throughout the logbook.
const DateLayout = "2006-01-02"

// Category tags a maintenance entry. A Fuel entry never combines with
// other categories.
type Category string

const (
	CategoryOil    Category = "Oil"
	CategoryParts  Category = "Parts"
	CategoryLabour Category = "Labour"
	CategoryFuel   Category = "Fuel"
	CategoryOther  Category = "Other"
)

// Categories lists all valid category tags.
var Categories = []Category{CategoryOil, CategoryParts, CategoryLabour, CategoryFuel, CategoryOther}

// ParseCategory validates a category name.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid category: %s (valid values: Oil, Parts, Labour, Fuel, Other)", s)
}

// Status distinguishes historical records from future tasks.
type Status string

const (
	// StatusLogged marks a completed, historical record.
	StatusLogged Status = "logged"
	// StatusScheduled marks a future, not-yet-performed task.
	StatusScheduled Status = "scheduled"
)

// ServiceIntervals maps maintenance task names (e.g. "Oil Change") to
// their interval in kilometers.
type ServiceIntervals map[string]int

// Vehicle is a tracked vehicle. Year and EngineCC are optional (0 means
// unset). Intervals holds the user's per-vehicle interval overrides.
type Vehicle struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	Year      int              `json:"year,omitempty"`
	EngineCC  int              `json:"engineCc,omitempty"`
	Intervals ServiceIntervals `json:"intervals,omitempty"`
}

// Entry is a single maintenance or fuel record tied to one vehicle, one
// date, and one odometer reading. Liters and PricePerLiter are only set
// on fuel entries. The recurrence fields are meaningful on logged
// entries; ParentID links a scheduled entry to the logged entry that
// created it (0 means none).
type Entry struct {
	ID                     int64      `json:"id"`
	VehicleID              int64      `json:"vehicleId"`
	Date                   string     `json:"dateIso"`
	OdometerKm             int        `json:"odometerKm"`
	Categories             []Category `json:"categories"`
	Description            string     `json:"description"`
	Cost                   float64    `json:"cost"`
	Liters                 float64    `json:"liters,omitempty"`
	PricePerLiter          float64    `json:"pricePerLiter,omitempty"`
	Status                 Status     `json:"status"`
	IsRecurring            bool       `json:"isRecurring,omitempty"`
	RecurrenceIntervalDays int        `json:"recurrenceIntervalDays,omitempty"`
	RecurrenceIntervalKm   int        `json:"recurrenceIntervalKm,omitempty"`
	ParentID               int64      `json:"parentId,omitempty"`
}

// IsFuel reports whether the entry is a fuel fill-up.
func (e Entry) IsFuel() bool {
	for _, c := range e.Categories {
		if c == CategoryFuel {
			return true
		}
	}
	return false
}

// DateTime parses the entry date at midnight local time.
func (e Entry) DateTime() (time.Time, error) {
	return time.ParseInLocation(DateLayout, e.Date, time.Local)
}

// Snapshot is the persisted shape of the logbook: the full vehicle and
// entry collections.
type Snapshot struct {
	Vehicles []Vehicle `json:"vehicles"`
	Entries  []Entry   `json:"entries"`
}

var (
	// ErrNotFound indicates a mutation referenced an id that does not exist.
	ErrNotFound = errors.New("logbook: not found")
	// ErrInvalidEntry indicates an entry that violates the data model.
	ErrInvalidEntry = errors.New("logbook: invalid entry")
)

// ValidateEntry rejects entries that violate the data model: empty
// categories, a Fuel tag combined with other categories, a negative
// odometer reading, or an unparseable date. Upstream input handling is
// expected to validate before calling, so violations are caller errors.
func ValidateEntry(e Entry) error {
	if len(e.Categories) == 0 {
		return fmt.Errorf("%w: no categories", ErrInvalidEntry)
	}
	for _, c := range e.Categories {
		if _, err := ParseCategory(string(c)); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidEntry, c)
		}
	}
	if e.IsFuel() && len(e.Categories) > 1 {
		return fmt.Errorf("%w: Fuel cannot combine with other categories", ErrInvalidEntry)
	}
	if e.OdometerKm < 0 {
		return fmt.Errorf("%w: negative odometer reading", ErrInvalidEntry)
	}
	if e.Status != StatusLogged && e.Status != StatusScheduled {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidEntry, e.Status)
	}
	if _, err := e.DateTime(); err != nil {
		return fmt.Errorf("%w: bad date %q", ErrInvalidEntry, e.Date)
	}
	return nil
}
