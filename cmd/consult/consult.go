// Package consult implements the purchase consultation command, the CLI
// entry point into the recommendation engine.
package consult

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hannguyen0712/credit-scorecerer/cmd/root"
	"github.com/hannguyen0712/credit-scorecerer/internal/advisor"
	"github.com/hannguyen0712/credit-scorecerer/internal/models"
)

var (
	amount        string
	category      string
	description   string
	preferredCard string
)

// Cmd represents the consult command
var Cmd = &cobra.Command{
	Use:   "consult",
	Short: "Ask which card to use for a purchase",
	Long: `Consult the advisor about a purchase. With a GEMINI_API_KEY configured the
answer comes from the Gemini model; otherwise (or whenever the API fails) a
deterministic utilization heuristic produces it. Suggested categories: ` +
		strings.Join(models.PurchaseCategories, ", ") + `.`,
	RunE: consultFunc,
}

func init() {
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Purchase amount in dollars")
	Cmd.Flags().StringVarP(&category, "category", "c", "Other", "Purchase category")
	Cmd.Flags().StringVarP(&description, "description", "d", "", "What the purchase is")
	Cmd.Flags().StringVarP(&preferredCard, "preferred", "p", "", "Preferred card name (optional)")
	_ = Cmd.MarkFlagRequired("amount")
}

func consultFunc(cmd *cobra.Command, args []string) error {
	purchaseAmount := models.ParseAmount(amount)
	if !purchaseAmount.IsPositive() {
		return fmt.Errorf("purchase amount must be a positive dollar amount, got %q", amount)
	}

	store := root.Store()
	portfolio, err := store.LoadCards()
	if err != nil {
		return fmt.Errorf("loading cards: %w", err)
	}

	adv, cleanup, err := advisor.FromConfig(cmd.Context(), root.Cfg, root.Logger)
	if err != nil {
		return err
	}
	defer cleanup()

	req := models.ConsultationRequest{
		PurchaseAmount:   purchaseAmount,
		PurchaseCategory: category,
		Description:      description,
		PreferredCard:    preferredCard,
	}

	resp, err := adv.Consult(cmd.Context(), req, portfolio)
	if err != nil {
		if errors.Is(err, advisor.ErrNoCardsAvailable) {
			return fmt.Errorf("no credit cards on file; add cards to %s first", root.Cfg.Data.CardsFile)
		}
		return err
	}

	renderConsultation(cmd, resp)
	return nil
}

func renderConsultation(cmd *cobra.Command, resp models.ConsultationResponse) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Recommended card: %s\n", resp.Recommendation.RecommendedCard)
	fmt.Fprintf(out, "Credit impact:    %s\n\n", resp.Recommendation.CreditImpact)
	fmt.Fprintf(out, "%s\n", resp.Recommendation.Reasoning)
	fmt.Fprintf(out, "%s\n", resp.Recommendation.ImpactExplanation)

	if len(resp.Alternatives) > 0 {
		fmt.Fprintf(out, "\nAlternatives:\n")
		for _, alt := range resp.Alternatives {
			fmt.Fprintf(out, "  %s\n", alt.CardName)
			for _, pro := range alt.Pros {
				fmt.Fprintf(out, "    + %s\n", pro)
			}
			for _, con := range alt.Cons {
				fmt.Fprintf(out, "    - %s\n", con)
			}
		}
	}

	if len(resp.Tips) > 0 {
		fmt.Fprintf(out, "\nTips:\n")
		for _, tip := range resp.Tips {
			fmt.Fprintf(out, "  * %s\n", tip)
		}
	}
}
