package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/habibfidahussain/autolog/internal/database"
	"github.com/habibfidahussain/autolog/internal/logbook"
	"github.com/habibfidahussain/autolog/internal/usecase"
)

func newDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry",
		Long:  "Delete an entry. Deleting a recurring entry also removes its scheduled follow-up.",
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

			store, err := uc.Open(ctx)
			if err != nil {
				return err
			}
			entry, err := store.Entry(id)
			if err != nil {
				return err
			}

			// Confirmation prompt
			if !force {
				var message string
				if entry.IsRecurring && entry.Status == logbook.StatusLogged {
					message = fmt.Sprintf("Delete entry %d ('%s') and its scheduled follow-up? (y/N) ", entry.ID, entry.Description)
				} else {
					message = fmt.Sprintf("Delete entry %d ('%s')? (y/N) ", entry.ID, entry.Description)
				}

				reader := bufio.NewReader(os.Stdin)
				fmt.Fprint(cmd.ErrOrStderr(), message)
				answer, err := reader.ReadString('\n')
				if err != nil {
					return err
				}

				answer = strings.TrimSpace(strings.ToLower(answer))
				if answer != "y" {
					fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled")
					return nil
				}
			}

			err = uc.Mutate(ctx, func(store *logbook.Store) error {
				return store.DeleteEntry(id)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}
