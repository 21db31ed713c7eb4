package gemini

import (
	"strconv"
	"strings"
)

// ParseCandidates extracts structured product records from the model's
// free text. Expected line shape:
//
//	PRODUCT: [name] | PRICE: [price] | DESC: [description]
//
// The model does not always comply, so parsing is defensive: lines
// missing a name or a usable price are skipped, and garbage input
// yields an empty slice rather than an error.
func ParseCandidates(text string) []PriceCandidate {
	var results []PriceCandidate

	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, "PRODUCT:") || !strings.Contains(line, "PRICE:") {
			continue
		}

		var name, desc string
		var price float64
		var priceOK bool

		for _, field := range strings.Split(line, "|") {
			switch {
			case strings.Contains(field, "PRODUCT:"):
				name = strings.TrimSpace(stripLabel(field, "PRODUCT:"))
			case strings.Contains(field, "PRICE:"):
				price, priceOK = parsePrice(stripLabel(field, "PRICE:"))
			case strings.Contains(field, "DESC:"):
				desc = strings.TrimSpace(stripLabel(field, "DESC:"))
			}
		}

		if name == "" || !priceOK {
			continue
		}

		results = append(results, PriceCandidate{
			Name:        name,
			Price:       price,
			Description: desc,
		})
	}

	return results
}

func stripLabel(field, label string) string {
	if idx := strings.Index(field, label); idx >= 0 {
		return field[idx+len(label):]
	}
	return field
}

// parsePrice strips currency symbols, separators, and surrounding text
// before parsing. Digits and the decimal point are all that survive.
func parsePrice(raw string) (float64, bool) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
