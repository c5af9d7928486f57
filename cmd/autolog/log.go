package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/habibfidahussain/autolog/internal/database"
	"github.com/habibfidahussain/autolog/internal/logbook"
	"github.com/habibfidahussain/autolog/internal/usecase"
)

func newLogCmd() *cobra.Command {
	var (
		vehicleRef    string
		date          string
		odometerKm    int
		categoryFlags []string
		description   string
		cost          float64
		liters        float64
		pricePerLiter float64
		recurDays     int
		recurKm       int
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a maintenance or fuel entry",
		Long:  "Record a maintenance or fuel entry. Recurring entries automatically schedule their next occurrence.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			categories := make([]logbook.Category, 0, len(categoryFlags))
			for _, c := range categoryFlags {
				parsed, err := logbook.ParseCategory(c)
				if err != nil {
					return err
				}
				categories = append(categories, parsed)
			}
			// Fill-ups logged with --liters alone get the Fuel tag;
			// anything else defaults to Other.
			if len(categories) == 0 {
				if cmd.Flags().Changed("liters") {
					categories = []logbook.Category{logbook.CategoryFuel}
				} else {
					categories = []logbook.Category{logbook.CategoryOther}
				}
			}

			if date == "" {
				date = time.Now().Format(logbook.DateLayout)
			}
			if !cmd.Flags().Changed("cost") && liters > 0 && pricePerLiter > 0 {
				cost = liters * pricePerLiter
			}

			entry := logbook.Entry{
				Date:                   date,
				OdometerKm:             odometerKm,
				Categories:             categories,
				Description:            description,
				Cost:                   cost,
				Liters:                 liters,
				PricePerLiter:          pricePerLiter,
				Status:                 logbook.StatusLogged,
				RecurrenceIntervalDays: recurDays,
				RecurrenceIntervalKm:   recurKm,
			}
			if recurDays > 0 || recurKm > 0 {
				entry.IsRecurring = true
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

			var added logbook.Entry
			err = uc.Mutate(ctx, func(store *logbook.Store) error {
				vehicle, err := usecase.ResolveVehicle(store, vehicleRef)
				if err != nil {
					return err
				}
				entry.VehicleID = vehicle.ID
				added, err = store.AddEntry(entry)
				return err
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged entry %d: %s at %d km\n", added.ID, added.Description, added.OdometerKm)
			if added.IsRecurring {
				fmt.Fprintln(cmd.OutOrStdout(), "Next occurrence scheduled")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&vehicleRef, "vehicle", "", "Vehicle id or name")
	cmd.Flags().StringVar(&date, "date", "", "Entry date as YYYY-MM-DD (default today)")
	cmd.Flags().IntVar(&odometerKm, "odometer", 0, "Odometer reading in km")
	cmd.Flags().StringSliceVar(&categoryFlags, "category", nil, "Category: Oil, Parts, Labour, Fuel, or Other (repeatable)")
	cmd.Flags().StringVar(&description, "desc", "", "What was done")
	cmd.Flags().Float64Var(&cost, "cost", 0, "Cost in the base currency")
	cmd.Flags().Float64Var(&liters, "liters", 0, "Fuel volume in liters")
	cmd.Flags().Float64Var(&pricePerLiter, "price-per-liter", 0, "Fuel unit price")
	cmd.Flags().IntVar(&recurDays, "recur-days", 0, "Repeat after this many days")
	cmd.Flags().IntVar(&recurKm, "recur-km", 0, "Repeat after this many kilometers")

	_ = cmd.MarkFlagRequired("vehicle")
	_ = cmd.MarkFlagRequired("odometer")
	_ = cmd.MarkFlagRequired("desc")

	return cmd
}
