// Package pay implements the payment recording command.
package pay

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hannguyen0712/credit-scorecerer/cmd/root"
	"github.com/hannguyen0712/credit-scorecerer/internal/models"
)

var (
	cardID string
	amount string
)

// Cmd represents the pay command
var Cmd = &cobra.Command{
	Use:   "pay",
	Short: "Record a payment against a card",
	Long: `Record a payment: the card's balance drops by the amount (never below
zero), the last-payment fields update, and the payment is appended to the
history file.`,
	RunE: payFunc,
}

func init() {
	Cmd.Flags().StringVarP(&cardID, "card", "c", "", "Card ID to pay")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Payment amount in dollars")
	_ = Cmd.MarkFlagRequired("card")
	_ = Cmd.MarkFlagRequired("amount")
}

func payFunc(cmd *cobra.Command, args []string) error {
	paymentAmount := models.ParseAmount(amount)
	if !paymentAmount.IsPositive() {
		return fmt.Errorf("payment amount must be a positive dollar amount, got %q", amount)
	}

	card, err := root.Store().RecordPayment(cardID, paymentAmount)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Payment of %s recorded for %s\n", models.FormatUSD(paymentAmount), card.Name)
	fmt.Fprintf(out, "New balance: %s (%s%% utilization)\n",
		models.FormatUSD(card.CurrentBalance), models.FormatPercent(card.Utilization()))
	return nil
}
