package logbook

import (
	"errors"
	"testing"
)

func setupStore(t *testing.T) (*Store, Vehicle) {
	t.Helper()
	s := NewStore(Snapshot{})
	v := s.AddVehicle("Suzuki GD 110s", 2022, 113)
	return s, v
}

func loggedEntry(vehicleID int64) Entry {
	return Entry{
		VehicleID:   vehicleID,
		Date:        "2024-01-10",
		OdometerKm:  4100,
		Categories:  []Category{CategoryOil},
		Description: "Oil change",
		Cost:        1200,
		Status:      StatusLogged,
	}
}

func findScheduledChild(t *testing.T, s *Store, parentID int64) Entry {
	t.Helper()
	var found []Entry
	for _, e := range s.Entries() {
		if e.ParentID == parentID && e.Status == StatusScheduled {
			found = append(found, e)
		}
	}
	if len(found) != 1 {
		t.Fatalf("expected exactly 1 scheduled child of %d, got %d", parentID, len(found))
	}
	return found[0]
}

func TestAddEntryAssignsIDAndDefaults(t *testing.T) {
	s, v := setupStore(t)

	added, err := s.AddEntry(Entry{
		VehicleID:   v.ID,
		Date:        "2024-01-10",
		OdometerKm:  100,
		Categories:  []Category{CategoryOther},
		Description: "Checkup",
	})
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	if added.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if added.Status != StatusLogged {
		t.Fatalf("expected default status logged, got %q", added.Status)
	}
}

func TestAddEntryRejectsUnknownVehicle(t *testing.T) {
	s, _ := setupStore(t)

	_, err := s.AddEntry(loggedEntry(999))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddEntryValidation(t *testing.T) {
	s, v := setupStore(t)

	cases := []struct {
		name   string
		mutate func(*Entry)
	}{
		{"no categories", func(e *Entry) { e.Categories = nil }},
		{"fuel mixed with other categories", func(e *Entry) { e.Categories = []Category{CategoryFuel, CategoryOil} }},
		{"unknown category", func(e *Entry) { e.Categories = []Category{"Tires"} }},
		{"negative odometer", func(e *Entry) { e.OdometerKm = -1 }},
		{"bad date", func(e *Entry) { e.Date = "10/01/2024" }},
		{"unknown status", func(e *Entry) { e.Status = "pending" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := loggedEntry(v.ID)
			tc.mutate(&e)
			if _, err := s.AddEntry(e); !errors.Is(err, ErrInvalidEntry) {
				t.Fatalf("expected ErrInvalidEntry, got %v", err)
			}
		})
	}
}

func TestAddRecurringEntrySpawnsScheduledChild(t *testing.T) {
	s, v := setupStore(t)

	e := loggedEntry(v.ID)
	e.IsRecurring = true
	e.RecurrenceIntervalDays = 90
	e.RecurrenceIntervalKm = 1500

	added, err := s.AddEntry(e)
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}

	child := findScheduledChild(t, s, added.ID)
	if child.Date != "2024-04-09" {
		t.Fatalf("expected child date 2024-04-09, got %s", child.Date)
	}
	if child.OdometerKm != 5600 {
		t.Fatalf("expected child odometer 5600, got %d", child.OdometerKm)
	}
	if child.Cost != 0 {
		t.Fatalf("expected child cost 0, got %v", child.Cost)
	}
	if child.Description != added.Description {
		t.Fatalf("expected child description %q, got %q", added.Description, child.Description)
	}
}

func TestAddRecurringEntryWithOnlyKmInterval(t *testing.T) {
	s, v := setupStore(t)

	e := loggedEntry(v.ID)
	e.IsRecurring = true
	e.RecurrenceIntervalKm = 2000

	added, err := s.AddEntry(e)
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}

	child := findScheduledChild(t, s, added.ID)
	if child.Date != added.Date {
		t.Fatalf("expected child date unchanged at %s, got %s", added.Date, child.Date)
	}
	if child.OdometerKm != 6100 {
		t.Fatalf("expected child odometer 6100, got %d", child.OdometerKm)
	}
}

func TestRecurringFlagWithoutIntervalsSpawnsNothing(t *testing.T) {
	s, v := setupStore(t)

	e := loggedEntry(v.ID)
	e.IsRecurring = true

	added, err := s.AddEntry(e)
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	for _, got := range s.Entries() {
		if got.ParentID == added.ID {
			t.Fatalf("expected no scheduled child, found entry %d", got.ID)
		}
	}
}

func TestAddEntriesSkipsRecurrenceSynthesis(t *testing.T) {
	s, v := setupStore(t)

	batch := []Entry{
		{Date: "2024-02-01", OdometerKm: 4200, Categories: []Category{CategoryParts}, Description: "Brake pads"},
		{Date: "2024-02-01", OdometerKm: 4200, Categories: []Category{CategoryLabour}, Description: "Brake fitting", IsRecurring: true, RecurrenceIntervalKm: 5000},
	}
	added, err := s.AddEntries(v.ID, batch)
	if err != nil {
		t.Fatalf("AddEntries failed: %v", err)
	}
	if len(added) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(added))
	}
	if added[0].ID == added[1].ID {
		t.Fatalf("expected distinct ids, both got %d", added[0].ID)
	}
	if len(s.Entries()) != 2 {
		t.Fatalf("expected 2 stored entries (no scheduled children), got %d", len(s.Entries()))
	}
}

func TestAddEntriesRejectsWholeBatchOnInvalidItem(t *testing.T) {
	s, v := setupStore(t)

	batch := []Entry{
		{Date: "2024-02-01", OdometerKm: 4200, Categories: []Category{CategoryParts}, Description: "Brake pads"},
		{Date: "2024-02-01", OdometerKm: -5, Categories: []Category{CategoryLabour}, Description: "Bad odometer"},
	}
	if _, err := s.AddEntries(v.ID, batch); !errors.Is(err, ErrInvalidEntry) {
		t.Fatalf("expected ErrInvalidEntry, got %v", err)
	}
	if len(s.Entries()) != 0 {
		t.Fatalf("expected no entries stored after failed batch, got %d", len(s.Entries()))
	}
}

func TestUpdateEntryResyncsScheduledChildInPlace(t *testing.T) {
	s, v := setupStore(t)

	e := loggedEntry(v.ID)
	e.IsRecurring = true
	e.RecurrenceIntervalKm = 1500
	added, err := s.AddEntry(e)
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	child := findScheduledChild(t, s, added.ID)

	added.RecurrenceIntervalKm = 3000
	if err := s.UpdateEntry(added); err != nil {
		t.Fatalf("UpdateEntry failed: %v", err)
	}

	updatedChild := findScheduledChild(t, s, added.ID)
	if updatedChild.ID != child.ID {
		t.Fatalf("expected child to keep id %d, got %d", child.ID, updatedChild.ID)
	}
	if updatedChild.OdometerKm != 7100 {
		t.Fatalf("expected re-synced odometer 7100, got %d", updatedChild.OdometerKm)
	}
}

func TestUpdateEntryDroppingRecurrenceRemovesChild(t *testing.T) {
	s, v := setupStore(t)

	e := loggedEntry(v.ID)
	e.IsRecurring = true
	e.RecurrenceIntervalKm = 1500
	added, err := s.AddEntry(e)
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}

	added.IsRecurring = false
	added.RecurrenceIntervalKm = 0
	if err := s.UpdateEntry(added); err != nil {
		t.Fatalf("UpdateEntry failed: %v", err)
	}

	if len(s.Entries()) != 1 {
		t.Fatalf("expected only the parent to remain, got %d entries", len(s.Entries()))
	}
}

func TestUpdateEntryAddingRecurrenceSpawnsChild(t *testing.T) {
	s, v := setupStore(t)

	added, err := s.AddEntry(loggedEntry(v.ID))
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}

	added.IsRecurring = true
	added.RecurrenceIntervalDays = 30
	if err := s.UpdateEntry(added); err != nil {
		t.Fatalf("UpdateEntry failed: %v", err)
	}

	child := findScheduledChild(t, s, added.ID)
	if child.Date != "2024-02-09" {
		t.Fatalf("expected child date 2024-02-09, got %s", child.Date)
	}
}

func TestUpdateMissingEntry(t *testing.T) {
	s, v := setupStore(t)

	e := loggedEntry(v.ID)
	e.ID = 42
	if err := s.UpdateEntry(e); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteEntryCascadesToScheduledChild(t *testing.T) {
	s, v := setupStore(t)

	e := loggedEntry(v.ID)
	e.IsRecurring = true
	e.RecurrenceIntervalKm = 1500
	added, err := s.AddEntry(e)
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	if len(s.Entries()) != 2 {
		t.Fatalf("expected parent and child, got %d entries", len(s.Entries()))
	}

	if err := s.DeleteEntry(added.ID); err != nil {
		t.Fatalf("DeleteEntry failed: %v", err)
	}
	if len(s.Entries()) != 0 {
		t.Fatalf("expected no entries left, got %d", len(s.Entries()))
	}
}

func TestCompleteScheduledEntryAdvancesChain(t *testing.T) {
	s, v := setupStore(t)

	e := loggedEntry(v.ID)
	e.IsRecurring = true
	e.RecurrenceIntervalKm = 1500
	added, err := s.AddEntry(e)
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	child := findScheduledChild(t, s, added.ID)

	child.OdometerKm = 5650
	child.Cost = 1300
	completed, err := s.CompleteScheduledEntry(child)
	if err != nil {
		t.Fatalf("CompleteScheduledEntry failed: %v", err)
	}
	if completed.Status != StatusLogged {
		t.Fatalf("expected completed entry to be logged, got %q", completed.Status)
	}

	next := findScheduledChild(t, s, completed.ID)
	if next.OdometerKm != 7150 {
		t.Fatalf("expected next occurrence at 7150 km, got %d", next.OdometerKm)
	}

	scheduled := 0
	for _, got := range s.Entries() {
		if got.Status == StatusScheduled {
			scheduled++
		}
	}
	if scheduled != 1 {
		t.Fatalf("expected exactly 1 scheduled entry in the chain, got %d", scheduled)
	}
}

func TestCompleteRejectsLoggedEntry(t *testing.T) {
	s, v := setupStore(t)

	added, err := s.AddEntry(loggedEntry(v.ID))
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	if _, err := s.CompleteScheduledEntry(added); !errors.Is(err, ErrInvalidEntry) {
		t.Fatalf("expected ErrInvalidEntry, got %v", err)
	}
}

func TestDeleteVehicleCascadesToEntries(t *testing.T) {
	s, v := setupStore(t)
	other := s.AddVehicle("Honda CG-125", 0, 124)

	if _, err := s.AddEntry(loggedEntry(v.ID)); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	keep := loggedEntry(other.ID)
	kept, err := s.AddEntry(keep)
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}

	if err := s.DeleteVehicle(v.ID); err != nil {
		t.Fatalf("DeleteVehicle failed: %v", err)
	}

	entries := s.Entries()
	if len(entries) != 1 || entries[0].ID != kept.ID {
		t.Fatalf("expected only the other vehicle's entry to survive, got %v", entries)
	}
}

func TestLatestOdometerIgnoresScheduledEntries(t *testing.T) {
	s, v := setupStore(t)

	e := loggedEntry(v.ID)
	e.IsRecurring = true
	e.RecurrenceIntervalKm = 1500
	if _, err := s.AddEntry(e); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}

	km, ok := s.LatestOdometer(v.ID)
	if !ok {
		t.Fatalf("expected a reading")
	}
	if km != 4100 {
		t.Fatalf("expected 4100 (scheduled child at 5600 ignored), got %d", km)
	}
}

func TestLatestOdometerWithNoHistory(t *testing.T) {
	s, v := setupStore(t)

	if _, ok := s.LatestOdometer(v.ID); ok {
		t.Fatalf("expected no reading for an empty vehicle")
	}
}

func TestVehicleEntriesSortedByDateThenOdometer(t *testing.T) {
	s, v := setupStore(t)

	dates := []struct {
		date string
		odo  int
	}{
		{"2024-01-05", 4000},
		{"2024-03-01", 4500},
		{"2024-03-01", 4700},
		{"2023-12-20", 3900},
	}
	for _, d := range dates {
		e := loggedEntry(v.ID)
		e.Date = d.date
		e.OdometerKm = d.odo
		if _, err := s.AddEntry(e); err != nil {
			t.Fatalf("AddEntry failed: %v", err)
		}
	}

	got := s.VehicleEntries(v.ID)
	wantOrder := []int{4700, 4500, 4000, 3900}
	for i, want := range wantOrder {
		if got[i].OdometerKm != want {
			t.Fatalf("position %d: expected odometer %d, got %d", i, want, got[i].OdometerKm)
		}
	}
}

func TestNewStoreSeedsIDAllocatorAboveExistingIDs(t *testing.T) {
	s := NewStore(Snapshot{
		Vehicles: []Vehicle{{ID: 3, Name: "Bike"}},
		Entries:  []Entry{{ID: 201, VehicleID: 3, Date: "2024-01-01", OdometerKm: 100, Categories: []Category{CategoryOther}, Status: StatusLogged}},
	})

	v := s.AddVehicle("New", 0, 0)
	if v.ID != 202 {
		t.Fatalf("expected next id 202, got %d", v.ID)
	}
}
