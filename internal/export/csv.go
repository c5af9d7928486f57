// Package export renders logbook entries as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/habibfidahussain/autolog/internal/logbook"
)

// WriteMaintenanceCSV writes maintenance entries (everything except
// fuel fill-ups) as CSV.
func WriteMaintenanceCSV(w io.Writer, entries []logbook.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "vehicleId", "dateIso", "odometerKm", "categories", "description", "cost"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, e := range entries {
		if e.IsFuel() {
			continue
		}
		record := []string{
			strconv.FormatInt(e.ID, 10),
			strconv.FormatInt(e.VehicleID, 10),
			e.Date,
			strconv.Itoa(e.OdometerKm),
			joinCategories(e.Categories),
			e.Description,
			formatAmount(e.Cost),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFuelCSV writes fuel fill-up entries as CSV, including liters
// and price per liter.
func WriteFuelCSV(w io.Writer, entries []logbook.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "vehicleId", "dateIso", "odometerKm", "categories", "description", "cost", "liters", "pricePerLiter"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, e := range entries {
		if !e.IsFuel() {
			continue
		}
		record := []string{
			strconv.FormatInt(e.ID, 10),
			strconv.FormatInt(e.VehicleID, 10),
			e.Date,
			strconv.Itoa(e.OdometerKm),
			joinCategories(e.Categories),
			e.Description,
			formatAmount(e.Cost),
			formatOptionalAmount(e.Liters),
			formatOptionalAmount(e.PricePerLiter),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func joinCategories(categories []logbook.Category) string {
	parts := make([]string, len(categories))
	for i, c := range categories {
		parts[i] = string(c)
	}
	return strings.Join(parts, "; ")
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptionalAmount(v float64) string {
	if v == 0 {
		return ""
	}
	return formatAmount(v)
}
