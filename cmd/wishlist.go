package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/trucost-app/trucost/internal/cli"
	"github.com/trucost-app/trucost/internal/lifecost"
	"github.com/trucost-app/trucost/internal/model"
)

var wishlistCmd = &cobra.Command{
	Use:     "wishlist",
	Aliases: []string{"wl"},
	Short:   "List and manage wishlist items",
	RunE:    runWishlistList,
}

var wishlistAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an item to the wishlist",
	Args:  cobra.ExactArgs(1),
	RunE:  runWishlistAdd,
}

var wishlistBuyCmd = &cobra.Command{
	Use:   "buy <item>",
	Short: "Mark a wishlist item as purchased",
	Long:  "Marks a wishlist item purchased and records the decision at today's wage in one step. Accepts an item id or a unique name prefix.",
	Args:  cobra.ExactArgs(1),
	RunE:  runWishlistBuy,
}

var wishlistArchiveCmd = &cobra.Command{
	Use:   "archive <item>",
	Short: "Archive a wishlist item without buying it",
	Args:  cobra.ExactArgs(1),
	RunE:  runWishlistArchive,
}

var (
	flagWishCost     float64
	flagWishCategory string
	flagWishNote     string
	flagWishAll      bool
)

func init() {
	wishlistAddCmd.Flags().Float64Var(&flagWishCost, "cost", 0, "estimated cost of the item")
	wishlistAddCmd.Flags().StringVar(&flagWishCategory, "category", "", "category name")
	wishlistAddCmd.Flags().StringVar(&flagWishNote, "note", "", "freeform note")
	_ = wishlistAddCmd.MarkFlagRequired("cost")

	wishlistCmd.Flags().BoolVar(&flagWishAll, "all", false, "include purchased and archived items")

	wishlistCmd.AddCommand(wishlistAddCmd)
	wishlistCmd.AddCommand(wishlistBuyCmd)
	wishlistCmd.AddCommand(wishlistArchiveCmd)
	rootCmd.AddCommand(wishlistCmd)
}

func runWishlistList(_ *cobra.Command, _ []string) error {
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

	status := model.StatusWishlisted
	if flagWishAll {
		status = ""
	}
	items, err := s.ListWishlist(user.ID, status)
	if err != nil {
		return fmt.Errorf("loading wishlist: %w", err)
	}
	if len(items) == 0 {
		fmt.Println(cli.Muted("Wishlist is empty. Add items with `trucost wishlist add`."))
		return nil
	}

	profile := lifecost.Normalize(user.DefaultWage, user.WageType)
	symbol := model.CurrencySymbol(user.Currency)
	cats, err := categoryNames(s, user.ID)
	if err != nil {
		return fmt.Errorf("loading categories: %w", err)
	}

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		impact := lifecost.ComputeImpact(it.Cost, profile)
		rows = append(rows, []string{
			it.Name,
			cli.FormatMoney(symbol, it.Cost),
			cli.FormatHours(impact.HoursOfWork),
			categoryName(cats, it.CategoryID),
			string(it.Status),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("WISHLIST"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Item", "Cost", "Work", "Category", "Status"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}

func runWishlistAdd(_ *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])
	if name == "" {
		return errors.New("item name must not be empty")
	}
	if flagWishCost <= 0 {
		return errors.New("--cost must be positive")
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

	categoryID, err := resolveCategory(s, user.ID, flagWishCategory)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	item := model.WishlistItem{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		Name:       name,
		Cost:       flagWishCost,
		CategoryID: categoryID,
		Note:       flagWishNote,
		Status:     model.StatusWishlisted,
		CreatedAt:  now,
	}
	if err := s.SaveWishlistItem(item); err != nil {
		return fmt.Errorf("saving wishlist item: %w", err)
	}

	profile := lifecost.Normalize(user.DefaultWage, user.WageType)
	impact := lifecost.ComputeImpact(item.Cost, profile)
	symbol := model.CurrencySymbol(user.Currency)
	fmt.Printf("Added %q (%s, %s of work).\n",
		item.Name,
		cli.FormatMoney(symbol, item.Cost),
		cli.FormatHours(impact.HoursOfWork))
	return nil
}

func runWishlistBuy(_ *cobra.Command, args []string) error {
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

	item, err := findWishlistItem(s, user.ID, args[0])
	if err != nil {
		return err
	}

	goal, err := s.GoalForUser(user.ID)
	if err != nil {
		return fmt.Errorf("loading goal: %w", err)
	}

	now := time.Now().UTC()
	decision := lifecost.BuildPurchaseDecision(*user, *item, goal, now)
	if err := s.MarkPurchased(item.ID, decision, now); err != nil {
		return fmt.Errorf("marking purchased: %w", err)
	}

	symbol := model.CurrencySymbol(user.Currency)
	fmt.Printf("Bought %q — %s logged as %s of your life.\n",
		item.Name,
		cli.FormatMoney(symbol, item.Cost),
		cli.FormatHours(decision.ComputedHours))
	if decision.ComputedGoalDelayDays > 0 {
		fmt.Println(cli.Warn(fmt.Sprintf("  Goal delayed by %s.", cli.FormatDelay(decision.ComputedGoalDelayDays))))
	}
	return nil
}

func runWishlistArchive(_ *cobra.Command, args []string) error {
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

	item, err := findWishlistItem(s, user.ID, args[0])
	if err != nil {
		return err
	}

	if err := s.ArchiveItem(item.ID); err != nil {
		return fmt.Errorf("archiving: %w", err)
	}
	fmt.Printf("Archived %q.\n", item.Name)
	return nil
}

// findWishlistItem resolves an id or a unique case-insensitive name
// prefix to a single wishlist item.
func findWishlistItem(s wishlistLister, userID, ref string) (*model.WishlistItem, error) {
	items, err := s.ListWishlist(userID, "")
	if err != nil {
		return nil, fmt.Errorf("loading wishlist: %w", err)
	}

	var match *model.WishlistItem
	for i := range items {
		if items[i].ID == ref {
			return &items[i], nil
		}
		if hasFold(items[i].Name, ref) {
			if match != nil {
				return nil, fmt.Errorf("%q matches more than one item, use the id", ref)
			}
			match = &items[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no wishlist item matching %q", ref)
	}
	return match, nil
}

type wishlistLister interface {
	ListWishlist(userID string, status model.WishlistStatus) ([]model.WishlistItem, error)
}

func hasFold(name, prefix string) bool {
	if len(prefix) > len(name) {
		return false
	}
	return strings.EqualFold(name[:len(prefix)], prefix)
}
