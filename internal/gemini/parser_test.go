package gemini

import "testing"

func TestParseCandidates_WellFormed(t *testing.T) {
	text := `Here are some matches:
PRODUCT: Sony WH-1000XM5 | PRICE: $348.00 | DESC: Flagship noise-cancelling headphones
PRODUCT: Bose QC45 | PRICE: 279.99 | DESC: Comfortable ANC
Some trailing commentary.`

	got := ParseCandidates(text)
	if len(got) != 2 {
		t.Fatalf("parsed %d candidates, want 2", len(got))
	}

	if got[0].Name != "Sony WH-1000XM5" {
		t.Errorf("Name = %q", got[0].Name)
	}
	if got[0].Price != 348.00 {
		t.Errorf("Price = %v, want 348.00", got[0].Price)
	}
	if got[0].Description != "Flagship noise-cancelling headphones" {
		t.Errorf("Description = %q", got[0].Description)
	}
	if got[1].Price != 279.99 {
		t.Errorf("Price = %v, want 279.99", got[1].Price)
	}
}

func TestParseCandidates_CurrencyNoise(t *testing.T) {
	// Symbols, thousands separators, and trailing words are stripped.
	got := ParseCandidates("PRODUCT: Road Bike | PRICE: €1,299.50 approx | DESC: entry level")
	if len(got) != 1 {
		t.Fatalf("parsed %d candidates, want 1", len(got))
	}
	if got[0].Price != 1299.50 {
		t.Errorf("Price = %v, want 1299.50", got[0].Price)
	}
}

func TestParseCandidates_SkipsBrokenLines(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"plain prose", "I could not find any prices for that item."},
		{"missing price label", "PRODUCT: Mystery Box | DESC: who knows"},
		{"unparsable price", "PRODUCT: Thing | PRICE: unavailable | DESC: n/a"},
		{"missing name", "PRODUCT: | PRICE: 10.00 | DESC: nameless"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseCandidates(tt.text); len(got) != 0 {
				t.Errorf("ParseCandidates(%q) = %+v, want none", tt.text, got)
			}
		})
	}
}

func TestParseCandidates_MixedLines(t *testing.T) {
	text := `PRODUCT: Good One | PRICE: 49.99 | DESC: fine
PRODUCT: Broken | PRICE: TBD
PRODUCT: Also Good | PRICE: $15 | DESC: cheap`

	got := ParseCandidates(text)
	if len(got) != 2 {
		t.Fatalf("parsed %d candidates, want 2 (broken line skipped)", len(got))
	}
	if got[1].Name != "Also Good" || got[1].Price != 15 {
		t.Errorf("second candidate = %+v", got[1])
	}
}
