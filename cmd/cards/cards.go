// Package cards implements the card portfolio listing command, with an
// optional CSV export of the portfolio.
package cards

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"github.com/hannguyen0712/credit-scorecerer/cmd/root"
	"github.com/hannguyen0712/credit-scorecerer/internal/models"
)

var outputFile string

// Cmd represents the cards command
var Cmd = &cobra.Command{
	Use:   "cards",
	Short: "List your credit cards",
	Long: `List the cards in your portfolio with balances, limits, and utilization.
Use --output to export the portfolio to a CSV file.`,
	RunE: cardsFunc,
}

func init() {
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Export the portfolio to a CSV file")
}

// cardRow is the CSV shape of one card.
type cardRow struct {
	ID              string `csv:"ID"`
	Name            string `csv:"Name"`
	Issuer          string `csv:"Issuer"`
	CardNumber      string `csv:"Card Number"`
	CreditLimit     string `csv:"Credit Limit"`
	CurrentBalance  string `csv:"Current Balance"`
	AvailableCredit string `csv:"Available Credit"`
	Utilization     string `csv:"Utilization %"`
	InterestRate    string `csv:"APR %"`
	RewardType      string `csv:"Reward Type"`
	RewardRate      string `csv:"Reward Rate"`
	DueDate         string `csv:"Due Date"`
}

func cardsFunc(cmd *cobra.Command, args []string) error {
	portfolio, err := root.Store().LoadCards()
	if err != nil {
		return fmt.Errorf("loading cards: %w", err)
	}

	if outputFile != "" {
		if err := exportCSV(portfolio, outputFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d cards to %s\n", len(portfolio), outputFile)
		return nil
	}

	out := cmd.OutOrStdout()
	for _, c := range portfolio {
		status := "active"
		if !c.IsActive {
			status = "inactive"
		}
		fmt.Fprintf(out, "%s (%s, %s)\n", c.Name, c.CardNumber, status)
		fmt.Fprintf(out, "  Balance:     %s of %s (%s%% used)\n",
			models.FormatUSD(c.CurrentBalance), models.FormatUSD(c.CreditLimit),
			models.FormatPercent(c.Utilization()))
		fmt.Fprintf(out, "  Available:   %s\n", models.FormatUSD(c.AvailableCredit()))
		fmt.Fprintf(out, "  APR:         %.2f%%\n", c.InterestRate)
		fmt.Fprintf(out, "  Rewards:     %g%% %s\n", c.Rewards.Rate, c.Rewards.Type)
		fmt.Fprintf(out, "  Minimum due: %s by %s\n\n",
			models.FormatUSD(c.MinimumPayment), c.DueDate)
	}
	return nil
}

func exportCSV(portfolio []models.CreditCard, path string) error {
	rows := make([]cardRow, 0, len(portfolio))
	for _, c := range portfolio {
		rows = append(rows, cardRow{
			ID:              c.ID,
			Name:            c.Name,
			Issuer:          c.Issuer,
			CardNumber:      c.CardNumber,
			CreditLimit:     c.CreditLimit.StringFixed(2),
			CurrentBalance:  c.CurrentBalance.StringFixed(2),
			AvailableCredit: c.AvailableCredit().StringFixed(2),
			Utilization:     models.FormatPercent(c.Utilization()),
			InterestRate:    fmt.Sprintf("%.2f", c.InterestRate),
			RewardType:      string(c.Rewards.Type),
			RewardRate:      fmt.Sprintf("%g", c.Rewards.Rate),
			DueDate:         c.DueDate,
		})
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}
