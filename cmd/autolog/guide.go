package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/habibfidahussain/autolog/internal/guide"
)

func newGuideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guide [vehicle-name]",
		Short: "Show the built-in maintenance schedule for a model",
		Long:  "Show the built-in maintenance schedule for a vehicle model. Without a name, the generic guide is shown.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}

			schedule := guide.ForVehicle(name)
			out := cmd.OutOrStdout()

			for i, interval := range schedule {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s (%s)\n", interval.Title, interval.Subtitle)

				t := table.NewWriter()
				t.SetOutputMirror(out)
				t.SetStyle(table.StyleLight)
				t.AppendHeader(table.Row{"Item", "Action"})
				for _, task := range interval.Tasks {
					t.AppendRow(table.Row{task.Item, task.Action})
				}
				t.Render()
			}
			return nil
		},
	}

	return cmd
}
