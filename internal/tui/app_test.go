package tui

import (
	"strings"
	"testing"

	"github.com/trucost-app/trucost/internal/model"
)

func TestDefaultCategoryID_FirstByCreation(t *testing.T) {
	cats := []model.Category{
		{ID: "cat-a", Name: "Food"},
		{ID: "cat-b", Name: "Tech"},
		{ID: "cat-c", Name: "Vinyl"},
	}
	if got := defaultCategoryID(cats); got != "cat-a" {
		t.Errorf("defaultCategoryID = %q, want cat-a", got)
	}
	if got := defaultCategoryID(nil); got != "" {
		t.Errorf("defaultCategoryID(nil) = %q, want empty", got)
	}
}

func TestTruncateHeight(t *testing.T) {
	in := "a\nb\nc\nd"
	if got := truncateHeight(in, 2); got != "a\nb" {
		t.Errorf("truncateHeight = %q, want %q", got, "a\nb")
	}
	if got := truncateHeight(in, 10); got != in {
		t.Errorf("truncateHeight should leave short input alone, got %q", got)
	}
}

func TestPadHeight(t *testing.T) {
	got := padHeight("a\nb", 5)
	if lines := strings.Count(got, "\n") + 1; lines != 5 {
		t.Errorf("padHeight produced %d lines, want 5", lines)
	}
	in := "a\nb\nc"
	if got := padHeight(in, 2); got != in {
		t.Errorf("padHeight should leave tall input alone, got %q", got)
	}
}

func TestTruncateString(t *testing.T) {
	if got := truncate("Headphones", 20); got != "Headphones" {
		t.Errorf("truncate short = %q", got)
	}
	got := truncate("A very long wishlist item name", 10)
	if len(got) > 12 { // ellipsis rune is 3 bytes
		t.Errorf("truncate long = %q, too wide", got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncate long = %q, want ellipsis suffix", got)
	}
}
