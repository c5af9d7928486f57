package logbook

import (
	"math"
	"sort"
	"strings"
	"time"
)

// DueSoonThresholdKm is the remaining-distance window for Due Soon.
const DueSoonThresholdKm = 500

// dueSoonWindowDays is the remaining-days window for Due Soon on
// scheduled entries.
const dueSoonWindowDays = 14

// AlertStatus classifies a maintenance alert.
type AlertStatus string

const (
	StatusOverdue AlertStatus = "Overdue"
	StatusDueSoon AlertStatus = "Due Soon"
	StatusOK      AlertStatus = "OK"
)

// Alert is a derived, never-persisted status judgment for one
// maintenance task at a reference odometer reading. Entry points back
// to the originating scheduled entry for scheduled-entry alerts.
type Alert struct {
	Name          string      `json:"name"`
	Status        AlertStatus `json:"status"`
	LastServiceKm *int        `json:"lastServiceKm"`
	DueKm         *int        `json:"dueKm"`
	RemainingKm   *int        `json:"remainingKm"`
	DueDate       string      `json:"dueDate,omitempty"`
	Entry         *Entry      `json:"entry,omitempty"`
}

// keywordsForTask derives the lowercase search keywords for a task
// name. The aliases are intentionally loose: a single logged "Oil
// change (Havoline)" satisfies both "Oil Change" and "Oil Filter
// Change" through the shared "oil" keyword.
func keywordsForTask(name string) []string {
	lower := strings.ToLower(name)
	keywords := []string{lower}
	if strings.Contains(lower, "spark plug") {
		keywords = append(keywords, "plugs")
	}
	if strings.Contains(lower, "engine oil") || strings.Contains(lower, "oil change") {
		keywords = append(keywords, "oil")
	}
	return keywords
}

// findLastService returns the most recent logged entry whose
// description contains any keyword. Entries must already be sorted by
// odometer descending.
func findLastService(sorted []Entry, keywords []string) *Entry {
	for i := range sorted {
		desc := strings.ToLower(sorted[i].Description)
		for _, kw := range keywords {
			if strings.Contains(desc, kw) {
				return &sorted[i]
			}
		}
	}
	return nil
}

// DeriveAlerts computes the maintenance status for one vehicle's
// entries at the given reference odometer. Scheduled entries are the
// precise source of alerts; interval-based inference over logged
// history is layered under them for tasks without an explicit
// schedule. now is injected so date math stays deterministic.
//
// A nil currentOdometer yields no alerts.
func DeriveAlerts(entries []Entry, currentOdometer *int, intervals ServiceIntervals, now time.Time) []Alert {
	if currentOdometer == nil {
		return nil
	}
	odo := *currentOdometer

	sorted := append([]Entry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OdometerKm > sorted[j].OdometerKm
	})

	var logged, scheduled []Entry
	for _, e := range sorted {
		switch e.Status {
		case StatusLogged:
			logged = append(logged, e)
		case StatusScheduled:
			scheduled = append(scheduled, e)
		}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	alerts := make([]Alert, 0, len(scheduled)+len(intervals))
	for i := range scheduled {
		entry := scheduled[i]
		remainingKm := entry.OdometerKm - odo

		status := StatusOK
		due, err := entry.DateTime()
		remainingDays := math.MaxInt
		if err == nil {
			remainingDays = int(math.Ceil(due.Sub(today).Hours() / 24))
		}
		switch {
		case remainingKm < 0 || remainingDays < 0:
			status = StatusOverdue
		case remainingKm <= DueSoonThresholdKm || (remainingDays >= 0 && remainingDays <= dueSoonWindowDays):
			status = StatusDueSoon
		}

		dueKm := entry.OdometerKm
		rem := remainingKm
		alerts = append(alerts, Alert{
			Name:        entry.Description,
			Status:      status,
			DueKm:       &dueKm,
			RemainingKm: &rem,
			DueDate:     entry.Date,
			Entry:       &scheduled[i],
		})
	}
	scheduledAlerts := alerts

	// Stable iteration over the interval map keeps output deterministic.
	names := make([]string, 0, len(intervals))
	for name := range intervals {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		keywords := keywordsForTask(name)

		// Scheduled data takes precedence over inference for the same task.
		covered := false
		for _, sa := range scheduledAlerts {
			alertName := strings.ToLower(sa.Name)
			for _, kw := range keywords {
				if strings.Contains(alertName, kw) {
					covered = true
					break
				}
			}
			if covered {
				break
			}
		}
		if covered {
			continue
		}

		last := findLastService(logged, keywords)

		var lastServiceKm, dueKm, remainingKm *int
		status := StatusOK
		if last != nil {
			lkm := last.OdometerKm
			dkm := lkm + intervals[name]
			rkm := dkm - odo
			lastServiceKm, dueKm, remainingKm = &lkm, &dkm, &rkm
			switch {
			case rkm < 0:
				status = StatusOverdue
			case rkm <= DueSoonThresholdKm:
				status = StatusDueSoon
			}
		}

		// Suppress OK-with-no-history noise; OK-with-history stays
		// visible so the user sees confirmation.
		if status == StatusOK && lastServiceKm == nil {
			continue
		}
		alerts = append(alerts, Alert{
			Name:          name,
			Status:        status,
			LastServiceKm: lastServiceKm,
			DueKm:         dueKm,
			RemainingKm:   remainingKm,
		})
	}

	return alerts
}

// severityRank orders alert statuses for display.
func severityRank(s AlertStatus) int {
	switch s {
	case StatusOverdue:
		return 0
	case StatusDueSoon:
		return 1
	default:
		return 2
	}
}

// SortAlertsBySeverity orders alerts Overdue, Due Soon, OK for display.
// Engine output order (scheduled first) is otherwise preserved.
func SortAlertsBySeverity(alerts []Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		return severityRank(alerts[i].Status) < severityRank(alerts[j].Status)
	})
}
