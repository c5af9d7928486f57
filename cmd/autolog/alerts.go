package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/habibfidahussain/autolog/internal/database"
	"github.com/habibfidahussain/autolog/internal/logbook"
	"github.com/habibfidahussain/autolog/internal/usecase"
)

func newAlertsCmd() *cobra.Command {
	var (
		vehicleRef string
		odometerKm int
		format     string
	)

	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Show maintenance alerts for a vehicle",
		Long:  "Show maintenance alerts derived from scheduled entries and service intervals, most urgent first.",
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

			var override *int
			if cmd.Flags().Changed("odometer") {
				override = &odometerKm
			}

			result, err := uc.Alerts(ctx, vehicleRef, override, time.Now())
			if err != nil {
				return err
			}
			logbook.SortAlertsBySeverity(result.Alerts)

			switch format {
			case "json":
				return outputJSON(cmd, result.Alerts)
			case "table":
				out := cmd.OutOrStdout()
				if result.OdometerKm == nil {
					fmt.Fprintf(out, "No odometer reading for '%s'; log an entry or pass --odometer\n", result.Vehicle.Name)
					return nil
				}
				fmt.Fprintf(out, "%s at %d km\n", result.Vehicle.Name, *result.OdometerKm)

				t := table.NewWriter()
				t.SetOutputMirror(out)
				t.SetStyle(table.StyleLight)
				t.AppendHeader(table.Row{"Task", "Status", "Last Service", "Due", "Remaining", "Due Date"})
				for _, a := range result.Alerts {
					t.AppendRow(table.Row{
						a.Name,
						string(a.Status),
						formatKm(a.LastServiceKm),
						formatKm(a.DueKm),
						formatKm(a.RemainingKm),
						a.DueDate,
					})
				}
				t.Render()
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&vehicleRef, "vehicle", "", "Vehicle id or name")
	cmd.Flags().IntVar(&odometerKm, "odometer", 0, "Reference odometer reading (default: latest logged)")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	_ = cmd.MarkFlagRequired("vehicle")

	return cmd
}

func formatKm(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d km", *v)
}
