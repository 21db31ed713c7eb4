package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/trucost-app/trucost/internal/cli"
	"github.com/trucost-app/trucost/internal/model"
	"github.com/trucost-app/trucost/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the decision ledger",
	Long:  "Lists past purchase decisions with the wage and impact captured at the time of each one.",
	RunE:  runHistory,
}

var (
	flagHistoryCategory string
	flagHistoryDays     int
)

func init() {
	historyCmd.Flags().StringVar(&flagHistoryCategory, "category", "", "only show one category")
	historyCmd.Flags().IntVar(&flagHistoryDays, "days", 0, "only show the last N days")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	user, err := requireUser(s)
	if err != nil {
		return err
	}

	var filter store.DecisionFilter
	if flagHistoryCategory != "" {
		cat, err := s.CategoryByName(user.ID, flagHistoryCategory)
		if err != nil {
			return fmt.Errorf("loading category: %w", err)
		}
		if cat == nil {
			return fmt.Errorf("unknown category %q — see `trucost categories`", flagHistoryCategory)
		}
		filter.CategoryID = cat.ID
	}
	if flagHistoryDays > 0 {
		filter.Since = time.Now().UTC().AddDate(0, 0, -flagHistoryDays)
	}

	decisions, err := s.ListDecisions(user.ID, filter)
	if err != nil {
		return fmt.Errorf("loading decisions: %w", err)
	}
	if len(decisions) == 0 {
		fmt.Println(cli.Muted("No decisions recorded yet."))
		return nil
	}

	cats, err := categoryNames(s, user.ID)
	if err != nil {
		return fmt.Errorf("loading categories: %w", err)
	}
	symbol := model.CurrencySymbol(user.Currency)

	rows := make([][]string, 0, len(decisions))
	var totalCost, totalHours float64
	var totalDelay int
	for _, d := range decisions {
		rows = append(rows, []string{
			d.CreatedAt.Format("2006-01-02"),
			d.Name,
			cli.FormatMoney(symbol, d.Cost),
			cli.FormatHours(d.ComputedHours),
			cli.FormatDelay(d.ComputedGoalDelayDays),
			categoryName(cats, d.CategoryID),
		})
		totalCost += d.Cost
		totalHours += d.ComputedHours
		totalDelay += d.ComputedGoalDelayDays
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("DECISION HISTORY"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Purchase", "Cost", "Work", "Delay", "Category"},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Println(cli.RenderStat("Total spent", cli.FormatMoney(symbol, totalCost)))
	fmt.Println(cli.RenderStat("Life spent", cli.FormatHours(totalHours)))
	fmt.Println(cli.RenderStat("Goal delayed", cli.FormatDelay(totalDelay)))
	fmt.Println()

	return nil
}
