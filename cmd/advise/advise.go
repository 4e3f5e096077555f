// Package advise implements the free-form credit advice command.
package advise

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hannguyen0712/credit-scorecerer/cmd/root"
	"github.com/hannguyen0712/credit-scorecerer/internal/advisor"
)

// Cmd represents the advise command
var Cmd = &cobra.Command{
	Use:   "advise [question]",
	Short: "Ask a free-form credit question",
	Long: `Ask the advisor anything about your credit situation, for example:
  credit-scorecerer advise "how do I improve my credit score?"
  credit-scorecerer advise "should I pay off my highest balance first?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: adviseFunc,
}

func adviseFunc(cmd *cobra.Command, args []string) error {
	question := strings.TrimSpace(strings.Join(args, " "))
	if question == "" {
		return fmt.Errorf("question must not be empty")
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

	answer, err := adv.Advise(cmd.Context(), question, portfolio)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), answer)
	return nil
}
