package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/habibfidahussain/autolog/internal/currency"
	"github.com/habibfidahussain/autolog/internal/database"
)

func newCurrencyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currency",
		Short: "Manage the display currency and exchange rates",
	}

	cmd.AddCommand(newCurrencyShowCmd())
	cmd.AddCommand(newCurrencySetCmd())
	cmd.AddCommand(newCurrencyRateCmd())

	return cmd
}

func newCurrencyShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the selected currency and exchange rates",
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
			settings, err := database.LoadCurrencySettings(ctx, dbCtx)
			if err != nil {
				return err
			}

			switch format {
			case "json":
				return outputJSON(cmd, settings)
			case "table":
				fmt.Fprintf(cmd.OutOrStdout(), "Display currency: %s\n", settings.Selected)

				t := table.NewWriter()
				t.SetOutputMirror(cmd.OutOrStdout())
				t.SetStyle(table.StyleLight)
				t.AppendHeader(table.Row{"Currency", "Rate (PKR per unit)"})
				for _, c := range currency.Currencies {
					t.AppendRow(table.Row{string(c), settings.Rates[c]})
				}
				t.Render()
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

func newCurrencySetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <code>",
		Short: "Select the display currency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := currency.Parse(args[0])
			if err != nil {
				return err
			}

			dbCtx, err := database.CreateDatabase("")
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			ctx := context.Background()
			settings, err := database.LoadCurrencySettings(ctx, dbCtx)
			if err != nil {
				return err
			}
			settings.Selected = selected
			if err := database.SaveCurrencySettings(ctx, dbCtx, settings); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Display currency set to %s\n", selected)
			return nil
		},
	}

	return cmd
}

func newCurrencyRateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate <code> <rate>",
		Short: "Set the exchange rate for a currency",
		Long:  "Set how many PKR one unit of the given currency costs.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := currency.Parse(args[0])
			if err != nil {
				return err
			}
			rate, err := strconv.ParseFloat(args[1], 64)
			if err != nil || rate <= 0 {
				return fmt.Errorf("invalid rate: %s (must be a positive number)", args[1])
			}

			dbCtx, err := database.CreateDatabase("")
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			ctx := context.Background()
			settings, err := database.LoadCurrencySettings(ctx, dbCtx)
			if err != nil {
				return err
			}
			settings.Rates[code] = rate
			if err := database.SaveCurrencySettings(ctx, dbCtx, settings); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Rate for %s set to %g\n", code, rate)
			return nil
		},
	}

	return cmd
}
