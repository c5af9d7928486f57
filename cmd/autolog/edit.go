package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/habibfidahussain/autolog/internal/database"
	"github.com/habibfidahussain/autolog/internal/logbook"
	"github.com/habibfidahussain/autolog/internal/usecase"
)

func newEditCmd() *cobra.Command {
	var (
		date          string
		odometerKm    int
		categoryFlags []string
		description   string
		cost          float64
		liters        float64
		pricePerLiter float64
		recurDays     int
		recurKm       int
		noRecur       bool
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an entry",
		Long:  "Edit an entry. Changing the recurrence of a logged entry re-syncs its scheduled follow-up in place.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid entry id: %s", args[0])
			}

			if noRecur && (cmd.Flags().Changed("recur-days") || cmd.Flags().Changed("recur-km")) {
				return fmt.Errorf("--no-recur cannot be combined with --recur-days or --recur-km")
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

			err = uc.Mutate(ctx, func(store *logbook.Store) error {
				entry, err := store.Entry(id)
				if err != nil {
					return err
				}

				if cmd.Flags().Changed("date") {
					entry.Date = date
				}
				if cmd.Flags().Changed("odometer") {
					entry.OdometerKm = odometerKm
				}
				if cmd.Flags().Changed("category") {
					categories := make([]logbook.Category, 0, len(categoryFlags))
					for _, c := range categoryFlags {
						parsed, err := logbook.ParseCategory(c)
						if err != nil {
							return err
						}
						categories = append(categories, parsed)
					}
					entry.Categories = categories
				}
				if cmd.Flags().Changed("desc") {
					entry.Description = description
				}
				if cmd.Flags().Changed("cost") {
					entry.Cost = cost
				}
				if cmd.Flags().Changed("liters") {
					entry.Liters = liters
				}
				if cmd.Flags().Changed("price-per-liter") {
					entry.PricePerLiter = pricePerLiter
				}
				if cmd.Flags().Changed("recur-days") {
					entry.RecurrenceIntervalDays = recurDays
				}
				if cmd.Flags().Changed("recur-km") {
					entry.RecurrenceIntervalKm = recurKm
				}
				if noRecur {
					entry.IsRecurring = false
					entry.RecurrenceIntervalDays = 0
					entry.RecurrenceIntervalKm = 0
				} else if entry.RecurrenceIntervalDays > 0 || entry.RecurrenceIntervalKm > 0 {
					entry.IsRecurring = true
				}

				return store.UpdateEntry(entry)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated entry %d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Entry date as YYYY-MM-DD")
	cmd.Flags().IntVar(&odometerKm, "odometer", 0, "Odometer reading in km")
	cmd.Flags().StringSliceVar(&categoryFlags, "category", nil, "Replace categories (repeatable)")
	cmd.Flags().StringVar(&description, "desc", "", "What was done")
	cmd.Flags().Float64Var(&cost, "cost", 0, "Cost in the base currency")
	cmd.Flags().Float64Var(&liters, "liters", 0, "Fuel volume in liters")
	cmd.Flags().Float64Var(&pricePerLiter, "price-per-liter", 0, "Fuel unit price")
	cmd.Flags().IntVar(&recurDays, "recur-days", 0, "Repeat after this many days")
	cmd.Flags().IntVar(&recurKm, "recur-km", 0, "Repeat after this many kilometers")
	cmd.Flags().BoolVar(&noRecur, "no-recur", false, "Stop the entry from recurring")

	return cmd
}
