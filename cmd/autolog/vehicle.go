package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/habibfidahussain/autolog/internal/database"
	"github.com/habibfidahussain/autolog/internal/logbook"
	"github.com/habibfidahussain/autolog/internal/usecase"
)

func newVehicleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicle",
		Short: "Manage vehicles",
	}

	cmd.AddCommand(newVehicleAddCmd())
	cmd.AddCommand(newVehicleListCmd())
	cmd.AddCommand(newVehicleEditCmd())
	cmd.AddCommand(newVehicleRmCmd())
	cmd.AddCommand(newVehicleSetIntervalsCmd())

	return cmd
}

func newVehicleAddCmd() *cobra.Command {
	var (
		year     int
		engineCC int
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return fmt.Errorf("vehicle name must not be empty")
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

			var added logbook.Vehicle
			err = uc.Mutate(ctx, func(store *logbook.Store) error {
				added = store.AddVehicle(name, year, engineCC)
				return nil
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added vehicle %d: %s\n", added.ID, added.Name)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Model year")
	cmd.Flags().IntVar(&engineCC, "engine-cc", 0, "Engine displacement in cc")

	return cmd
}

func newVehicleListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vehicles",
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

			vehicles := store.Vehicles()

			switch format {
			case "json":
				return outputJSON(cmd, vehicles)
			case "table":
				t := table.NewWriter()
				t.SetOutputMirror(cmd.OutOrStdout())
				t.SetStyle(table.StyleLight)
				t.AppendHeader(table.Row{"ID", "Name", "Year", "Engine", "Latest Odometer"})
				for _, v := range vehicles {
					yearCell := ""
					if v.Year > 0 {
						yearCell = strconv.Itoa(v.Year)
					}
					engineCell := ""
					if v.EngineCC > 0 {
						engineCell = fmt.Sprintf("%d cc", v.EngineCC)
					}
					odoCell := "-"
					if km, ok := store.LatestOdometer(v.ID); ok {
						odoCell = fmt.Sprintf("%d km", km)
					}
					t.AppendRow(table.Row{v.ID, v.Name, yearCell, engineCell, odoCell})
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

func newVehicleEditCmd() *cobra.Command {
	var (
		name     string
		year     int
		engineCC int
	)

	cmd := &cobra.Command{
		Use:   "edit <id|name>",
		Short: "Edit a vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dbCtx, err := database.CreateDatabase("")
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			ctx := context.Background()
			uc := usecase.NewLogbook(dbCtx)

			var vehicle logbook.Vehicle
			err = uc.Mutate(ctx, func(store *logbook.Store) error {
				v, err := usecase.ResolveVehicle(store, args[0])
				if err != nil {
					return err
				}
				if cmd.Flags().Changed("name") {
					trimmed := strings.TrimSpace(name)
					if trimmed == "" {
						return fmt.Errorf("vehicle name must not be empty")
					}
					v.Name = trimmed
				}
				if cmd.Flags().Changed("year") {
					v.Year = year
				}
				if cmd.Flags().Changed("engine-cc") {
					v.EngineCC = engineCC
				}
				vehicle = v
				return store.UpdateVehicle(v)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated vehicle %d: %s\n", vehicle.ID, vehicle.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().IntVar(&year, "year", 0, "Model year")
	cmd.Flags().IntVar(&engineCC, "engine-cc", 0, "Engine displacement in cc")

	return cmd
}

func newVehicleRmCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "rm <id|name>",
		Short: "Remove a vehicle and all its entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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
			vehicle, err := usecase.ResolveVehicle(store, args[0])
			if err != nil {
				return err
			}

			// Confirmation prompt
			if !force {
				entries := store.VehicleEntries(vehicle.ID)
				message := fmt.Sprintf("Remove '%s' and its %d entries? This cannot be undone. (y/N) ", vehicle.Name, len(entries))

				reader := bufio.NewReader(os.Stdin)
				fmt.Fprint(cmd.ErrOrStderr(), message)
				answer, err := reader.ReadString('\n')
				if err != nil {
					return err
				}

				answer = strings.TrimSpace(strings.ToLower(answer))
				if answer != "y" {
					fmt.Fprintln(cmd.OutOrStdout(), "Removal cancelled")
					return nil
				}
			}

			err = uc.Mutate(ctx, func(store *logbook.Store) error {
				return store.DeleteVehicle(vehicle.ID)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed vehicle '%s'\n", vehicle.Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}

func newVehicleSetIntervalsCmd() *cobra.Command {
	var (
		intervalFlags []string
		clear         bool
	)

	cmd := &cobra.Command{
		Use:   "set-intervals <id|name>",
		Short: "Set custom service intervals for a vehicle",
		Long:  "Set custom service intervals for a vehicle. Custom intervals override the built-in and per-model defaults.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			intervals := logbook.ServiceIntervals{}
			for _, spec := range intervalFlags {
				name, value, found := strings.Cut(spec, "=")
				name = strings.TrimSpace(name)
				if !found || name == "" {
					return fmt.Errorf("invalid interval %q (expected \"Task Name=km\")", spec)
				}
				km, err := strconv.Atoi(strings.TrimSpace(value))
				if err != nil || km <= 0 {
					return fmt.Errorf("invalid interval %q: distance must be a positive integer", spec)
				}
				intervals[name] = km
			}

			if clear && len(intervals) > 0 {
				return fmt.Errorf("--clear cannot be combined with --interval")
			}
			if !clear && len(intervals) == 0 {
				return fmt.Errorf("nothing to do: pass --interval or --clear")
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

			var vehicle logbook.Vehicle
			err = uc.Mutate(ctx, func(store *logbook.Store) error {
				v, err := usecase.ResolveVehicle(store, args[0])
				if err != nil {
					return err
				}
				vehicle = v
				if clear {
					return store.SaveVehicleIntervals(v.ID, nil)
				}
				merged := logbook.ServiceIntervals{}
				for name, km := range v.Intervals {
					merged[name] = km
				}
				for name, km := range intervals {
					merged[name] = km
				}
				return store.SaveVehicleIntervals(v.ID, merged)
			})
			if err != nil {
				return err
			}

			if clear {
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared custom intervals for '%s'\n", vehicle.Name)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %d interval(s) for '%s'\n", len(intervals), vehicle.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&intervalFlags, "interval", nil, "Interval as \"Task Name=km\" (repeatable)")
	cmd.Flags().BoolVar(&clear, "clear", false, "Remove all custom intervals")

	return cmd
}
