package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/trucost-app/trucost/internal/cli"
	"github.com/trucost-app/trucost/internal/gemini"
	"github.com/trucost-app/trucost/internal/lifecost"
	"github.com/trucost-app/trucost/internal/model"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Show the active savings goal",
	RunE:  runGoalShow,
}

var goalSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Create or replace the savings goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalSet,
}

var goalVideoCmd = &cobra.Command{
	Use:   "video",
	Short: "Generate a short motivational video for the goal",
	RunE:  runGoalVideo,
}

var (
	flagGoalTarget   float64
	flagGoalStarting float64
	flagGoalWeekly   float64
	flagVideoOut     string
)

func init() {
	goalSetCmd.Flags().Float64Var(&flagGoalTarget, "target", 0, "target amount to save")
	goalSetCmd.Flags().Float64Var(&flagGoalStarting, "starting", 0, "amount already saved")
	goalSetCmd.Flags().Float64Var(&flagGoalWeekly, "weekly", 0, "planned weekly savings")
	_ = goalSetCmd.MarkFlagRequired("target")

	goalVideoCmd.Flags().StringVar(&flagVideoOut, "out", "goal.mp4", "output file for the generated video")

	goalCmd.AddCommand(goalSetCmd)
	goalCmd.AddCommand(goalVideoCmd)
	rootCmd.AddCommand(goalCmd)
}

func runGoalShow(_ *cobra.Command, _ []string) error {
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

	goal, err := s.GoalForUser(user.ID)
	if err != nil {
		return fmt.Errorf("loading goal: %w", err)
	}
	if goal == nil {
		fmt.Println(cli.Muted("No goal yet. Create one with `trucost goal set`."))
		return nil
	}

	symbol := model.CurrencySymbol(user.Currency)

	fmt.Println()
	fmt.Println(cli.RenderTitle("SAVINGS GOAL"))
	fmt.Println()
	printGoalCard(*goal, symbol)

	delays, err := s.TopDelays(user.ID, 3)
	if err != nil {
		return fmt.Errorf("loading top delays: %w", err)
	}
	if len(delays) > 0 {
		fmt.Println()
		fmt.Println(cli.Muted("  Biggest setbacks:"))
		for _, d := range delays {
			fmt.Printf("    %s %s (%s)\n",
				cli.Warn(cli.FormatDelay(d.ComputedGoalDelayDays)),
				d.Name,
				cli.FormatMoney(symbol, d.Cost))
		}
	}
	fmt.Println()

	return nil
}

// printGoalCard renders the goal progress block shared by the overview
// and the goal command.
func printGoalCard(goal model.Goal, symbol string) {
	tl := lifecost.ProjectTimeline(goal, time.Now())

	fmt.Println(cli.RenderStat("Goal", goal.Name))
	fmt.Println(cli.RenderStat("Target", cli.FormatMoney(symbol, goal.TargetAmount)))
	fmt.Println(cli.RenderStat("Saved", cli.FormatMoney(symbol, goal.StartingAmount)))
	fmt.Println(cli.RenderStat("Weekly", cli.FormatMoney(symbol, goal.WeeklySavings)))
	fmt.Println()
	fmt.Println("  " + cli.RenderMeter(float64(tl.Percent), 24) + "  " + cli.FormatPercent(float64(tl.Percent)))

	switch {
	case tl.Remaining <= 0:
		fmt.Println(cli.Accent("  Goal reached!"))
	case !tl.Reachable:
		fmt.Println(cli.Warn("  No weekly savings set — goal has no completion date."))
	default:
		fmt.Printf("  %s to go, about %d weeks (done %s)\n",
			cli.FormatMoney(symbol, tl.Remaining),
			tl.WeeksToGo,
			tl.CompletionDate.Format("Jan 2, 2006"))
	}
}

func runGoalSet(_ *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])
	if name == "" {
		return errors.New("goal name must not be empty")
	}
	if flagGoalTarget <= 0 {
		return errors.New("--target must be positive")
	}
	if flagGoalStarting < 0 || flagGoalWeekly < 0 {
		return errors.New("amounts cannot be negative")
	}

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

	now := time.Now().UTC()
	goal := model.Goal{
		ID:             uuid.NewString(),
		UserID:         user.ID,
		Name:           name,
		TargetAmount:   flagGoalTarget,
		StartingAmount: flagGoalStarting,
		WeeklySavings:  flagGoalWeekly,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// One goal per user: reuse the existing row's identity when present.
	if existing, err := s.GoalForUser(user.ID); err != nil {
		return fmt.Errorf("loading goal: %w", err)
	} else if existing != nil {
		goal.ID = existing.ID
		goal.CreatedAt = existing.CreatedAt
	}

	if err := s.SaveGoal(goal); err != nil {
		return fmt.Errorf("saving goal: %w", err)
	}

	symbol := model.CurrencySymbol(user.Currency)
	fmt.Printf("Goal %q set: %s target, %s/week.\n",
		goal.Name,
		cli.FormatMoney(symbol, goal.TargetAmount),
		cli.FormatMoney(symbol, goal.WeeklySavings))
	return nil
}

func runGoalVideo(_ *cobra.Command, _ []string) error {
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

	goal, err := s.GoalForUser(user.ID)
	if err != nil {
		return fmt.Errorf("loading goal: %w", err)
	}
	if goal == nil {
		return errors.New("no goal to visualize — run `trucost goal set` first")
	}

	client, err := newGeminiClient(cfg)
	if err != nil {
		return err
	}

	if !cfg.General.Quiet {
		fmt.Fprintln(os.Stderr, "  Generating video, this can take a few minutes...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	if err := client.GenerateTimelineVideo(ctx, goal.Name, flagVideoOut); err != nil {
		if errors.Is(err, gemini.ErrRateLimited) {
			return errors.New("rate limited by Gemini — try again later")
		}
		return fmt.Errorf("generating video: %w", err)
	}

	fmt.Printf("Saved video to %s\n", flagVideoOut)
	return nil
}
