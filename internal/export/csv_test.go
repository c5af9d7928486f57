package export

import (
	"strings"
	"testing"

	"github.com/habibfidahussain/autolog/internal/logbook"
)

func sampleEntries() []logbook.Entry {
	return []logbook.Entry{
		{ID: 1, VehicleID: 1, Date: "2024-01-10", OdometerKm: 4100,
			Categories:  []logbook.Category{logbook.CategoryOil, logbook.CategoryLabour},
			Description: `Oil change, "full synthetic"`, Cost: 1200, Status: logbook.StatusLogged},
		{ID: 2, VehicleID: 1, Date: "2024-01-15", OdometerKm: 4300,
			Categories:  []logbook.Category{logbook.CategoryFuel},
			Description: "Fill-up", Cost: 1500, Liters: 5.5, PricePerLiter: 272.73,
			Status: logbook.StatusLogged},
	}
}

func TestWriteMaintenanceCSVSkipsFuel(t *testing.T) {
	var buf strings.Builder
	if err := WriteMaintenanceCSV(&buf, sampleEntries()); err != nil {
		t.Fatalf("WriteMaintenanceCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus 1 row, got %d lines: %q", len(lines), buf.String())
	}
	if lines[0] != "id,vehicleId,dateIso,odometerKm,categories,description,cost" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Oil; Labour") {
		t.Fatalf("expected joined categories, got %q", lines[1])
	}
	// The embedded quotes and comma force CSV quoting.
	if !strings.Contains(lines[1], `"Oil change, ""full synthetic"""`) {
		t.Fatalf("expected quoted description, got %q", lines[1])
	}
}

func TestWriteFuelCSVOnlyFuel(t *testing.T) {
	var buf strings.Builder
	if err := WriteFuelCSV(&buf, sampleEntries()); err != nil {
		t.Fatalf("WriteFuelCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus 1 row, got %d lines: %q", len(lines), buf.String())
	}
	if lines[0] != "id,vehicleId,dateIso,odometerKm,categories,description,cost,liters,pricePerLiter" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2,1,2024-01-15,4300,Fuel,Fill-up,1500,5.5,272.73") {
		t.Fatalf("unexpected fuel row: %q", lines[1])
	}
}

func TestWriteCSVEmptyInput(t *testing.T) {
	var buf strings.Builder
	if err := WriteMaintenanceCSV(&buf, nil); err != nil {
		t.Fatalf("WriteMaintenanceCSV failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected only the header, got %q", buf.String())
	}
}
