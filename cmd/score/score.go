// Package score implements the credit health command: score snapshot,
// utilization analysis, and spending breakdown.
package score

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hannguyen0712/credit-scorecerer/cmd/root"
	"github.com/hannguyen0712/credit-scorecerer/internal/cards"
	"github.com/hannguyen0712/credit-scorecerer/internal/insights"
	"github.com/hannguyen0712/credit-scorecerer/internal/models"
)

var showSpending bool

// Cmd represents the score command
var Cmd = &cobra.Command{
	Use:   "score",
	Short: "Show your credit score and utilization analysis",
	Long: `Show the credit score snapshot together with per-card and overall
utilization, and with --spending a purchase breakdown by category.`,
	RunE: scoreFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&showSpending, "spending", "s", false, "Include spending by category")
}

func scoreFunc(cmd *cobra.Command, args []string) error {
	store := root.Store()
	portfolio, err := store.LoadCards()
	if err != nil {
		return fmt.Errorf("loading cards: %w", err)
	}

	out := cmd.OutOrStdout()

	snapshot := cards.SampleScore()
	fmt.Fprintf(out, "Credit score: %d (%s, %s scale %d-%d)\n",
		snapshot.Score, snapshot.Category, snapshot.Provider,
		snapshot.Range.Min, snapshot.Range.Max)
	fmt.Fprintf(out, "Last updated: %s\n\n", snapshot.LastUpdated)

	overall := insights.OverallUtilization(portfolio)
	fmt.Fprintf(out, "Overall utilization: %s%% (%s)\n\n",
		models.FormatPercent(overall), models.ClassifyUtilization(overall))

	for _, u := range insights.AnalyzeUtilization(portfolio) {
		fmt.Fprintf(out, "%s: %s%% utilization\n", u.CardName, models.FormatPercent(u.Utilization))
		fmt.Fprintf(out, "  %s\n", u.RecommendedAction)
	}

	if showSpending {
		history, err := store.LoadHistory()
		if err != nil {
			return fmt.Errorf("loading history: %w", err)
		}
		fmt.Fprintf(out, "\nSpending by category:\n")
		for _, spend := range insights.SpendingByCategory(history) {
			fmt.Fprintf(out, "  %-16s %s\n", spend.Category, models.FormatUSD(spend.Spent))
		}
		fmt.Fprintf(out, "  %-16s %s\n", "Total", models.FormatUSD(insights.TotalSpent(history)))
	}

	return nil
}
