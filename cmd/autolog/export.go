package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/habibfidahussain/autolog/internal/database"
	"github.com/habibfidahussain/autolog/internal/export"
	"github.com/habibfidahussain/autolog/internal/usecase"
)

func newExportCmd() *cobra.Command {
	var (
		vehicleRef string
		exportType string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export entries as CSV",
		Long:  "Export a vehicle's maintenance history or fuel fill-ups as CSV.",
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
			entries := store.VehicleEntries(vehicle.ID)

			out := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer func() {
					_ = f.Close()
				}()
				out = f
			}

			switch exportType {
			case "maintenance":
				err = export.WriteMaintenanceCSV(out, entries)
			case "fuel":
				err = export.WriteFuelCSV(out, entries)
			default:
				return fmt.Errorf("invalid type: %s (valid values: maintenance, fuel)", exportType)
			}
			if err != nil {
				return err
			}

			if outPath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %s data to %s\n", exportType, outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&vehicleRef, "vehicle", "", "Vehicle id or name")
	cmd.Flags().StringVar(&exportType, "type", "maintenance", "Export type: maintenance or fuel")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to file instead of stdout")

	_ = cmd.MarkFlagRequired("vehicle")

	return cmd
}
