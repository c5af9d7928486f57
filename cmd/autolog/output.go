package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/habibfidahussain/autolog/internal/currency"
	"github.com/habibfidahussain/autolog/internal/database"
)

func outputJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func getTerminalWidth() int {
	// Try to get terminal width from stdout
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	// Default width if terminal size cannot be determined
	return 80
}

// truncateCell shortens a cell with an ellipsis, accounting for
// multi-byte characters.
func truncateCell(s string, maxWidth int) string {
	if maxWidth <= 0 || runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// moneyFormatter renders base-currency amounts in the selected display
// currency. PKR shows whole rupees; USD and EUR show cents.
type moneyFormatter struct {
	settings currency.Settings
}

func loadMoneyFormatter(ctx context.Context, dbCtx *database.Context) (moneyFormatter, error) {
	settings, err := database.LoadCurrencySettings(ctx, dbCtx)
	if err != nil {
		return moneyFormatter{}, err
	}
	return moneyFormatter{settings: settings}, nil
}

func (f moneyFormatter) format(amountBase float64) string {
	digits := 0
	if f.settings.Selected != currency.PKR {
		digits = 2
	}
	return currency.Format(amountBase, f.settings.Selected, f.settings.Rates, digits)
}
