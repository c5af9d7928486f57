package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "autolog",
	Short: "autolog - A personal vehicle maintenance logbook",
	Long:  "autolog tracks service history, fuel fill-ups, and recurring maintenance schedules for your vehicles.",
}

func init() {
	rootCmd.Version = version
	rootCmd.AddCommand(newVehicleCmd())
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newFuelCmd())
	rootCmd.AddCommand(newAlertsCmd())
	rootCmd.AddCommand(newCompleteCmd())
	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newBackupCmd())
	rootCmd.AddCommand(newRestoreCmd())
	rootCmd.AddCommand(newCurrencyCmd())
	rootCmd.AddCommand(newGuideCmd())
	rootCmd.AddCommand(newMCPCmd())
}
