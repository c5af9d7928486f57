package logbook

import (
	"fmt"
	"sort"
)

// Store owns the authoritative vehicle and entry collections and
// enforces the recurrence linkage invariant: every logged, recurring
// entry has at most one live scheduled descendant, found by ParentID.
//
// All operations are pure in-memory transforms. Persistence is the
// caller's concern and happens against Snapshot() after a mutation.
type Store struct {
	vehicles []Vehicle
	entries  []Entry
	nextID   int64
}

// NewStore builds a store from a persisted snapshot. The id allocator
// is seeded above the highest id seen so that fresh ids never collide.
func NewStore(snap Snapshot) *Store {
	s := &Store{
		vehicles: append([]Vehicle(nil), snap.Vehicles...),
		entries:  append([]Entry(nil), snap.Entries...),
		nextID:   1,
	}
	for _, v := range s.vehicles {
		if v.ID >= s.nextID {
			s.nextID = v.ID + 1
		}
	}
	for _, e := range s.entries {
		if e.ID >= s.nextID {
			s.nextID = e.ID + 1
		}
	}
	return s
}

// allocateID hands out unique, monotonically increasing ids. Bulk
// inserts within the same instant each get their own id.
func (s *Store) allocateID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

// Snapshot returns a copy of the current collections for persistence.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Vehicles: append([]Vehicle(nil), s.vehicles...),
		Entries:  append([]Entry(nil), s.entries...),
	}
}

// Vehicles returns all vehicles.
func (s *Store) Vehicles() []Vehicle {
	return append([]Vehicle(nil), s.vehicles...)
}

// Entries returns all entries.
func (s *Store) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// Vehicle looks up a vehicle by id.
func (s *Store) Vehicle(id int64) (Vehicle, error) {
	for _, v := range s.vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return Vehicle{}, fmt.Errorf("%w: vehicle %d", ErrNotFound, id)
}

// VehicleByName looks up a vehicle by exact display name.
func (s *Store) VehicleByName(name string) (Vehicle, error) {
	for _, v := range s.vehicles {
		if v.Name == name {
			return v, nil
		}
	}
	return Vehicle{}, fmt.Errorf("%w: vehicle %q", ErrNotFound, name)
}

// Entry looks up an entry by id.
func (s *Store) Entry(id int64) (Entry, error) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: entry %d", ErrNotFound, id)
}

// VehicleEntries returns all entries for a vehicle, both logged and
// scheduled, sorted by date descending then odometer descending.
func (s *Store) VehicleEntries(vehicleID int64) []Entry {
	var out []Entry
	for _, e := range s.entries {
		if e.VehicleID == vehicleID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].OdometerKm > out[j].OdometerKm
	})
	return out
}

// LatestOdometer returns the highest odometer reading among a vehicle's
// logged entries. ok is false when the vehicle has no logged history.
func (s *Store) LatestOdometer(vehicleID int64) (km int, ok bool) {
	for _, e := range s.entries {
		if e.VehicleID != vehicleID || e.Status != StatusLogged {
			continue
		}
		if !ok || e.OdometerKm > km {
			km = e.OdometerKm
			ok = true
		}
	}
	return km, ok
}

// AddVehicle registers a new vehicle and returns it with its assigned id.
func (s *Store) AddVehicle(name string, year, engineCC int) Vehicle {
	v := Vehicle{ID: s.allocateID(), Name: name, Year: year, EngineCC: engineCC}
	s.vehicles = append(s.vehicles, v)
	return v
}

// UpdateVehicle replaces the stored vehicle with a matching id.
func (s *Store) UpdateVehicle(v Vehicle) error {
	for i := range s.vehicles {
		if s.vehicles[i].ID == v.ID {
			s.vehicles[i] = v
			return nil
		}
	}
	return fmt.Errorf("%w: vehicle %d", ErrNotFound, v.ID)
}

// DeleteVehicle removes a vehicle and cascades to all of its entries.
func (s *Store) DeleteVehicle(id int64) error {
	if _, err := s.Vehicle(id); err != nil {
		return err
	}
	kept := s.vehicles[:0]
	for _, v := range s.vehicles {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	s.vehicles = kept

	keptEntries := s.entries[:0]
	for _, e := range s.entries {
		if e.VehicleID != id {
			keptEntries = append(keptEntries, e)
		}
	}
	s.entries = keptEntries
	return nil
}

// SaveVehicleIntervals replaces a vehicle's custom interval overrides.
func (s *Store) SaveVehicleIntervals(vehicleID int64, intervals ServiceIntervals) error {
	for i := range s.vehicles {
		if s.vehicles[i].ID == vehicleID {
			s.vehicles[i].Intervals = intervals
			return nil
		}
	}
	return fmt.Errorf("%w: vehicle %d", ErrNotFound, vehicleID)
}

// nextOccurrence computes the synthetic scheduled follow-up spawned by a
// logged, recurring entry: date advanced by the day interval, odometer
// by the km interval, cost zeroed, linked back via ParentID. ok is
// false when the entry is not recurring or has neither interval set.
func (s *Store) nextOccurrence(src Entry) (Entry, bool) {
	if !src.IsRecurring {
		return Entry{}, false
	}
	if src.RecurrenceIntervalDays == 0 && src.RecurrenceIntervalKm == 0 {
		return Entry{}, false
	}

	next := src
	next.ID = s.allocateID()
	next.Cost = 0
	next.Status = StatusScheduled
	next.ParentID = src.ID

	if src.RecurrenceIntervalDays > 0 {
		d, err := src.DateTime()
		if err == nil {
			next.Date = d.AddDate(0, 0, src.RecurrenceIntervalDays).Format(DateLayout)
		}
	}
	if src.RecurrenceIntervalKm > 0 {
		next.OdometerKm = src.OdometerKm + src.RecurrenceIntervalKm
	}
	return next, true
}

// scheduledChild finds the one live scheduled entry spawned by
// parentID. A completed child keeps its ParentID but is logged, so it
// no longer counts as the live descendant.
func (s *Store) scheduledChild(parentID int64) (Entry, bool) {
	for _, e := range s.entries {
		if e.ParentID == parentID && e.Status == StatusScheduled {
			return e, true
		}
	}
	return Entry{}, false
}

// AddEntry assigns a fresh id and appends the entry. A logged entry
// with recurrence configured also spawns its single scheduled follow-up.
func (s *Store) AddEntry(e Entry) (Entry, error) {
	if e.Status == "" {
		e.Status = StatusLogged
	}
	if err := ValidateEntry(e); err != nil {
		return Entry{}, err
	}
	if _, err := s.Vehicle(e.VehicleID); err != nil {
		return Entry{}, err
	}

	e.ID = s.allocateID()
	s.entries = append(s.entries, e)

	if e.Status == StatusLogged {
		if next, ok := s.nextOccurrence(e); ok {
			s.entries = append(s.entries, next)
		}
	}
	return e, nil
}

// AddEntries bulk-inserts entries for one vehicle, assigning each a
// fresh id. Recurrence synthesis is deliberately skipped: bulk-imported
// items are not expected to carry recurrence metadata.
func (s *Store) AddEntries(vehicleID int64, entries []Entry) ([]Entry, error) {
	if _, err := s.Vehicle(vehicleID); err != nil {
		return nil, err
	}
	added := make([]Entry, 0, len(entries))
	for _, e := range entries {
		e.VehicleID = vehicleID
		if e.Status == "" {
			e.Status = StatusLogged
		}
		if err := ValidateEntry(e); err != nil {
			return nil, err
		}
		added = append(added, e)
	}
	for i := range added {
		added[i].ID = s.allocateID()
		s.entries = append(s.entries, added[i])
	}
	return added, nil
}

// UpdateEntry replaces the stored entry with a matching id and
// re-evaluates recurrence: an existing scheduled child is re-synced in
// place (keeping its id), removed when recurrence was dropped, or
// created when recurrence was newly added.
func (s *Store) UpdateEntry(e Entry) error {
	if err := ValidateEntry(e); err != nil {
		return err
	}

	idx := -1
	for i := range s.entries {
		if s.entries[i].ID == e.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: entry %d", ErrNotFound, e.ID)
	}
	s.entries[idx] = e

	child, hasChild := s.scheduledChild(e.ID)
	next, wantChild := s.nextOccurrence(e)

	switch {
	case hasChild && wantChild:
		next.ID = child.ID
		for i := range s.entries {
			if s.entries[i].ID == child.ID {
				s.entries[i] = next
				break
			}
		}
	case hasChild && !wantChild:
		s.removeEntry(child.ID)
	case !hasChild && wantChild && e.Status == StatusLogged:
		s.entries = append(s.entries, next)
	}
	return nil
}

// DeleteEntry removes the entry and cascades to the one scheduled entry
// it spawned, if any.
func (s *Store) DeleteEntry(id int64) error {
	if _, err := s.Entry(id); err != nil {
		return err
	}
	if child, ok := s.scheduledChild(id); ok {
		s.removeEntry(child.ID)
	}
	s.removeEntry(id)
	return nil
}

// CompleteScheduledEntry transitions a scheduled entry to logged with
// the user-confirmed data, then re-runs recurrence synthesis against
// the now-logged entry. This is how a recurring chain advances:
// complete, log, spawn next.
func (s *Store) CompleteScheduledEntry(e Entry) (Entry, error) {
	stored, err := s.Entry(e.ID)
	if err != nil {
		return Entry{}, err
	}
	if stored.Status != StatusScheduled {
		return Entry{}, fmt.Errorf("%w: entry %d is not scheduled", ErrInvalidEntry, e.ID)
	}

	e.Status = StatusLogged
	if err := ValidateEntry(e); err != nil {
		return Entry{}, err
	}
	for i := range s.entries {
		if s.entries[i].ID == e.ID {
			s.entries[i] = e
			break
		}
	}

	if next, ok := s.nextOccurrence(e); ok {
		s.entries = append(s.entries, next)
	}
	return e, nil
}

func (s *Store) removeEntry(id int64) {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.entries = kept
}
