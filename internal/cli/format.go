// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMoney formats an amount with its currency symbol and comma
// grouping. e.g., ("$", 1234.5) -> "$1,234.50"
func FormatMoney(symbol string, amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatFloat(amount, 'f', 2, 64)
	dot := strings.Index(s, ".")
	whole, frac := s[:dot], s[dot:]

	out := symbol + groupThousands(whole) + frac
	if neg {
		return "-" + out
	}
	return out
}

// FormatHours formats an hours-of-work value. e.g., 17.33 -> "17.33 h"
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.2f h", hours)
}

// FormatWorkDays formats a recovery-day count. e.g., 2.5 -> "2.5 days"
func FormatWorkDays(days float64) string {
	return fmt.Sprintf("%.1f days", days)
}

// FormatDelay formats a goal delay in whole days. Zero reads as no delay.
func FormatDelay(days int) string {
	if days == 0 {
		return "none"
	}
	return fmt.Sprintf("+%d days", days)
}

// FormatPercent formats a 0-100 percentage. e.g., 12.345 -> "12.3%"
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatNumber adds comma separators to an integer.
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupThousands(strconv.FormatInt(n, 10))
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
