package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/habibfidahussain/autolog/internal/database"
	"github.com/habibfidahussain/autolog/internal/logbook"
	"github.com/habibfidahussain/autolog/internal/usecase"
)

// fuelStats aggregates fill-up history. Consumption needs at least two
// fill-ups: the first reading only anchors the distance.
type fuelStats struct {
	FillUps     int      `json:"fillUps"`
	TotalLiters float64  `json:"totalLiters"`
	TotalCost   float64  `json:"totalCost"`
	KmPerLiter  *float64 `json:"kmPerLiter,omitempty"`
}

func computeFuelStats(fillUps []logbook.Entry) fuelStats {
	stats := fuelStats{FillUps: len(fillUps)}

	byOdometer := make([]logbook.Entry, len(fillUps))
	copy(byOdometer, fillUps)
	sort.SliceStable(byOdometer, func(i, j int) bool {
		return byOdometer[i].OdometerKm < byOdometer[j].OdometerKm
	})

	var litersAfterFirst float64
	for i, e := range byOdometer {
		stats.TotalLiters += e.Liters
		stats.TotalCost += e.Cost
		if i > 0 {
			litersAfterFirst += e.Liters
		}
	}

	if len(byOdometer) >= 2 && litersAfterFirst > 0 {
		distance := byOdometer[len(byOdometer)-1].OdometerKm - byOdometer[0].OdometerKm
		if distance > 0 {
			kmPerLiter := float64(distance) / litersAfterFirst
			stats.KmPerLiter = &kmPerLiter
		}
	}
	return stats
}

func newFuelCmd() *cobra.Command {
	var (
		vehicleRef string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "fuel",
		Short: "Show fuel fill-up history and consumption",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			var fillUps []logbook.Entry
			for _, e := range store.VehicleEntries(vehicle.ID) {
				if e.IsFuel() {
					fillUps = append(fillUps, e)
				}
			}
			stats := computeFuelStats(fillUps)

			switch format {
			case "json":
				return outputJSON(cmd, struct {
					FillUps []logbook.Entry `json:"fillUps"`
					Stats   fuelStats       `json:"stats"`
				}{FillUps: fillUps, Stats: stats})
			case "table":
				money, err := loadMoneyFormatter(ctx, dbCtx)
				if err != nil {
					return err
				}

				t := table.NewWriter()
				t.SetOutputMirror(cmd.OutOrStdout())
				t.SetStyle(table.StyleLight)
				t.AppendHeader(table.Row{"ID", "Date", "Odometer", "Liters", "Price/L", "Cost"})
				for _, e := range fillUps {
					t.AppendRow(table.Row{
						e.ID,
						e.Date,
						fmt.Sprintf("%d km", e.OdometerKm),
						fmt.Sprintf("%.2f", e.Liters),
						money.format(e.PricePerLiter),
						money.format(e.Cost),
					})
				}
				t.Render()

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Fill-ups: %d\n", stats.FillUps)
				fmt.Fprintf(out, "Total fuel: %.2f L\n", stats.TotalLiters)
				fmt.Fprintf(out, "Total cost: %s\n", money.format(stats.TotalCost))
				if stats.KmPerLiter != nil {
					fmt.Fprintf(out, "Consumption: %.1f km/L\n", *stats.KmPerLiter)
				}
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&vehicleRef, "vehicle", "", "Vehicle id or name")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	_ = cmd.MarkFlagRequired("vehicle")

	return cmd
}
