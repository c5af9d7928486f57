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

func newCompleteCmd() *cobra.Command {
	var (
		date       string
		odometerKm int
		cost       float64
	)

	cmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Complete a scheduled entry",
		Long:  "Mark a scheduled entry as done. A recurring entry schedules its next occurrence automatically.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid entry id: %s", args[0])
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

			var completed logbook.Entry
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
				if cmd.Flags().Changed("cost") {
					entry.Cost = cost
				}
				completed, err = store.CompleteScheduledEntry(entry)
				return err
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Completed entry %d: %s at %d km\n", completed.ID, completed.Description, completed.OdometerKm)
			if completed.IsRecurring {
				fmt.Fprintln(cmd.OutOrStdout(), "Next occurrence scheduled")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Completion date as YYYY-MM-DD (default: the scheduled date)")
	cmd.Flags().IntVar(&odometerKm, "odometer", 0, "Actual odometer reading")
	cmd.Flags().Float64Var(&cost, "cost", 0, "Actual cost in the base currency")

	return cmd
}
