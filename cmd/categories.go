package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/trucost-app/trucost/internal/cli"
	"github.com/trucost-app/trucost/internal/model"
	"github.com/trucost-app/trucost/internal/store"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List spending categories",
	RunE:  runCategoriesList,
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a custom category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesAdd,
}

var categoriesRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a custom category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesRm,
}

func init() {
	categoriesCmd.AddCommand(categoriesAddCmd)
	categoriesCmd.AddCommand(categoriesRmCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func runCategoriesList(_ *cobra.Command, _ []string) error {
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

	cats, err := s.ListCategories(user.ID)
	if err != nil {
		return fmt.Errorf("loading categories: %w", err)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("CATEGORIES"))
	fmt.Println()
	for _, c := range cats {
		marker := cli.Muted("custom")
		if c.IsDefault {
			marker = cli.Muted("default")
		}
		fmt.Printf("  %s %s\n", cli.Accent("•"), c.Name+"  "+marker)
	}
	fmt.Println()

	return nil
}

func runCategoriesAdd(_ *cobra.Command, args []string) error {
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

	name := strings.TrimSpace(args[0])
	if name == "" {
		return errors.New("category name must not be empty")
	}
	if existing, err := s.CategoryByName(user.ID, name); err != nil {
		return fmt.Errorf("loading category: %w", err)
	} else if existing != nil {
		return fmt.Errorf("category %q already exists", name)
	}

	cat := model.Category{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Name:      name,
		IsDefault: false,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.SaveCategory(cat); err != nil {
		return fmt.Errorf("saving category: %w", err)
	}
	fmt.Printf("Added category %q.\n", name)
	return nil
}

func runCategoriesRm(_ *cobra.Command, args []string) error {
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

	cat, err := s.CategoryByName(user.ID, args[0])
	if err != nil {
		return fmt.Errorf("loading category: %w", err)
	}
	if cat == nil {
		return fmt.Errorf("unknown category %q", args[0])
	}

	if err := s.DeleteCategory(cat.ID); err != nil {
		if errors.Is(err, store.ErrDefaultCategory) {
			return fmt.Errorf("%q is a built-in category and cannot be removed", cat.Name)
		}
		return fmt.Errorf("deleting category: %w", err)
	}
	fmt.Printf("Removed category %q.\n", cat.Name)
	return nil
}
