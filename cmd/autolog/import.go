package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/habibfidahussain/autolog/internal/database"
	"github.com/habibfidahussain/autolog/internal/logbook"
	"github.com/habibfidahussain/autolog/internal/usecase"
)

// importEntry mirrors the entry JSON shape, plus the legacy singular
// category field for older exports.
type importEntry struct {
	logbook.Entry
	LegacyCategory string `json:"category,omitempty"`
}

func newImportCmd() *cobra.Command {
	var (
		vehicleRef string
		filePath   string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import multiple entries from JSON",
		Long:  "Import a JSON array of entries for one vehicle. Imported entries never schedule follow-ups.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := readImportData(cmd, filePath)
			if err != nil {
				return err
			}

			var raw []importEntry
			if err := json.Unmarshal(data, &raw); err != nil {
				return fmt.Errorf("failed to parse entries: %w", err)
			}
			if len(raw) == 0 {
				return fmt.Errorf("no entries to import")
			}

			today := time.Now().Format(logbook.DateLayout)
			entries := make([]logbook.Entry, 0, len(raw))
			for _, re := range raw {
				e := re.Entry
				if e.Date == "" {
					e.Date = today
				}
				if len(e.Categories) == 0 {
					if re.LegacyCategory != "" {
						e.Categories = []logbook.Category{logbook.Category(re.LegacyCategory)}
					} else {
						e.Categories = []logbook.Category{logbook.CategoryOther}
					}
				}
				entries = append(entries, e)
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

			var added []logbook.Entry
			err = uc.Mutate(ctx, func(store *logbook.Store) error {
				vehicle, err := usecase.ResolveVehicle(store, vehicleRef)
				if err != nil {
					return err
				}
				added, err = store.AddEntries(vehicle.ID, entries)
				return err
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries\n", len(added))
			return nil
		},
	}

	cmd.Flags().StringVar(&vehicleRef, "vehicle", "", "Vehicle id or name")
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Read entries from file instead of stdin")

	_ = cmd.MarkFlagRequired("vehicle")

	return cmd
}

func readImportData(cmd *cobra.Command, filePath string) ([]byte, error) {
	if filePath != "" {
		return os.ReadFile(filePath)
	}

	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "Enter entries JSON (Ctrl-D when done):")
	}
	return io.ReadAll(os.Stdin)
}
