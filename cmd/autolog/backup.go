package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/habibfidahussain/autolog/internal/backup"
	"github.com/habibfidahussain/autolog/internal/config"
	"github.com/habibfidahussain/autolog/internal/database"
	"github.com/habibfidahussain/autolog/internal/usecase"
)

func newBackupCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a full backup to a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if outPath == "" {
				outPath = config.GetBackupPath()
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
			settings, err := database.LoadCurrencySettings(ctx, dbCtx)
			if err != nil {
				return err
			}

			data, err := backup.Encode(store.Snapshot(), settings)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("failed to write backup: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Backup file path (default: the data directory)")

	return cmd
}

func newRestoreCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "restore <file>",
		Short: "Restore the logbook from a backup file",
		Long:  "Restore the logbook from a backup file, replacing all current data. An invalid backup changes nothing.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			snap, settings, err := backup.Decode(data)
			if err != nil {
				return err
			}

			// Confirmation prompt
			if !force {
				message := fmt.Sprintf("Replace all current data with %d vehicles and %d entries from the backup? (y/N) ", len(snap.Vehicles), len(snap.Entries))

				reader := bufio.NewReader(os.Stdin)
				fmt.Fprint(cmd.ErrOrStderr(), message)
				answer, err := reader.ReadString('\n')
				if err != nil {
					return err
				}

				answer = strings.TrimSpace(strings.ToLower(answer))
				if answer != "y" {
					fmt.Fprintln(cmd.OutOrStdout(), "Restore cancelled")
					return nil
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
			if err := uc.Replace(ctx, snap); err != nil {
				return err
			}
			if err := database.SaveCurrencySettings(ctx, dbCtx, settings); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Restored %d vehicles and %d entries\n", len(snap.Vehicles), len(snap.Entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}
