package main

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/habibfidahussain/autolog/internal/database"
	"github.com/habibfidahussain/autolog/internal/logbook"
	"github.com/habibfidahussain/autolog/internal/search"
	"github.com/habibfidahussain/autolog/internal/usecase"
)

func newListCmd() *cobra.Command {
	var (
		vehicleRef   string
		categoryFlag string
		period       string
		odoMin       int
		odoMax       int
		searchQuery  string
		sortKey      string
		format       string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List maintenance entries",
		Long:  "List maintenance entries for a vehicle. Fuel fill-ups are listed separately by the fuel command.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cutoff, err := periodCutoff(period, time.Now())
			if err != nil {
				return err
			}

			var category logbook.Category
			if categoryFlag != "" {
				category, err = logbook.ParseCategory(categoryFlag)
				if err != nil {
					return err
				}
			}

			dbCtx, err := database.CreateDatabase("")
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			ctx := context.Background()
			uc := usecase.NewLogbook(dbCtx)
			store, err := uc.Open(ctx)
			if err != nil {
				return err
			}
			vehicle, err := usecase.ResolveVehicle(store, vehicleRef)
			if err != nil {
				return err
			}

			var entries []logbook.Entry
			for _, e := range store.VehicleEntries(vehicle.ID) {
				if e.IsFuel() {
					continue
				}
				if category != "" && !hasCategory(e, category) {
					continue
				}
				if !cutoff.IsZero() {
					when, err := e.DateTime()
					if err != nil || when.Before(cutoff) {
						continue
					}
				}
				if cmd.Flags().Changed("odo-min") && e.OdometerKm < odoMin {
					continue
				}
				if cmd.Flags().Changed("odo-max") && e.OdometerKm > odoMax {
					continue
				}
				if searchQuery != "" && !search.IsFuzzyMatch(searchQuery, e.Description) {
					continue
				}
				entries = append(entries, e)
			}

			switch sortKey {
			case "date":
				// VehicleEntries already sorts by date descending
			case "odometer":
				sort.SliceStable(entries, func(i, j int) bool {
					return entries[i].OdometerKm > entries[j].OdometerKm
				})
			default:
				return fmt.Errorf("invalid sort: %s (valid values: date, odometer)", sortKey)
			}

			switch format {
			case "json":
				return outputJSON(cmd, entries)
			case "table":
				money, err := loadMoneyFormatter(ctx, dbCtx)
				if err != nil {
					return err
				}
				renderEntriesTable(cmd, entries, money)
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&vehicleRef, "vehicle", "", "Vehicle id or name")
	cmd.Flags().StringVar(&categoryFlag, "category", "", "Only entries with this category")
	cmd.Flags().StringVar(&period, "period", "all", "Time window: all, 30d, 90d, or 1y")
	cmd.Flags().IntVar(&odoMin, "odo-min", 0, "Minimum odometer reading")
	cmd.Flags().IntVar(&odoMax, "odo-max", 0, "Maximum odometer reading")
	cmd.Flags().StringVar(&searchQuery, "search", "", "Fuzzy-match descriptions")
	cmd.Flags().StringVar(&sortKey, "sort", "date", "Sort order: date or odometer")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	_ = cmd.MarkFlagRequired("vehicle")

	return cmd
}

func periodCutoff(period string, now time.Time) (time.Time, error) {
	switch period {
	case "all":
		return time.Time{}, nil
	case "30d":
		return now.AddDate(0, 0, -30), nil
	case "90d":
		return now.AddDate(0, 0, -90), nil
	case "1y":
		return now.AddDate(-1, 0, 0), nil
	default:
		return time.Time{}, fmt.Errorf("invalid period: %s (valid values: all, 30d, 90d, 1y)", period)
	}
}

func hasCategory(e logbook.Entry, c logbook.Category) bool {
	for _, have := range e.Categories {
		if have == c {
			return true
		}
	}
	return false
}

func joinCategories(categories []logbook.Category) string {
	parts := make([]string, len(categories))
	for i, c := range categories {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}

func renderEntriesTable(cmd *cobra.Command, entries []logbook.Entry, money moneyFormatter) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Date", "Odometer", "Categories", "Description", "Cost", "Status"})

	// Leave the fixed columns their room and give the rest to the
	// description.
	descWidth := getTerminalWidth() - 55
	if descWidth < 15 {
		descWidth = 15
	}

	for _, e := range entries {
		cost := ""
		if e.Cost > 0 {
			cost = money.format(e.Cost)
		}
		t.AppendRow(table.Row{
			e.ID,
			e.Date,
			fmt.Sprintf("%d km", e.OdometerKm),
			joinCategories(e.Categories),
			truncateCell(e.Description, descWidth),
			cost,
			string(e.Status),
		})
	}
	t.Render()
}
