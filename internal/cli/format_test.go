package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		symbol string
		amount float64
		want   string
	}{
		{"$", 0, "$0.00"},
		{"$", 1234.5, "$1,234.50"},
		{"€", 999999.99, "€999,999.99"},
		{"£", 12, "£12.00"},
		{"$", -45.6, "-$45.60"},
		{"₹", 1000000, "₹1,000,000.00"},
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.symbol, tt.amount); got != tt.want {
			t.Errorf("FormatMoney(%q, %v) = %q, want %q", tt.symbol, tt.amount, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-5000, "-5,000"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatDelay(t *testing.T) {
	if got := FormatDelay(0); got != "none" {
		t.Errorf("FormatDelay(0) = %q, want none", got)
	}
	if got := FormatDelay(18); got != "+18 days" {
		t.Errorf("FormatDelay(18) = %q, want +18 days", got)
	}
}

func TestFormatHoursAndDays(t *testing.T) {
	if got := FormatHours(17.333); got != "17.33 h" {
		t.Errorf("FormatHours = %q", got)
	}
	if got := FormatWorkDays(2.5); got != "2.5 days" {
		t.Errorf("FormatWorkDays = %q", got)
	}
	if got := FormatPercent(12.34); got != "12.3%" {
		t.Errorf("FormatPercent = %q", got)
	}
}
