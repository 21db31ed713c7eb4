package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/trucost-app/trucost/internal/cli"
	"github.com/trucost-app/trucost/internal/model"
	"github.com/trucost-app/trucost/internal/tui/components"
	"github.com/trucost-app/trucost/internal/tui/theme"
)

func (a App) renderHistoryTab(cw int) string {
	t := theme.Active
	symbol := model.CurrencySymbol(a.user.Currency)
	var b strings.Builder

	if len(a.decisions) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("No decisions yet. Commit one with `trucost calc --save` or buy a wishlist item.")
		b.WriteString(components.ContentCard("Decision History", empty, cw))
		return b.String()
	}

	innerW := components.CardInnerWidth(cw)

	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	dateStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	costStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	hoursStyle := lipgloss.NewStyle().Foreground(t.Orange)

	nameW := innerW / 3
	if nameW < 14 {
		nameW = 14
	}

	var body strings.Builder
	for i, d := range a.decisions {
		line := fmt.Sprintf("%s %-*s %10s  %9s  %8s",
			d.CreatedAt.Format("2006-01-02"),
			nameW, truncate(d.Name, nameW),
			cli.FormatMoney(symbol, d.Cost),
			cli.FormatHours(d.ComputedHours),
			cli.FormatDelay(d.ComputedGoalDelayDays))

		if i == a.histCur {
			fmt.Fprintf(&body, "%s\n", selStyle.Render("▸ "+line))
			continue
		}

		fmt.Fprintf(&body, "  %s %s %s  %s  %s\n",
			dateStyle.Render(d.CreatedAt.Format("2006-01-02")),
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncate(d.Name, nameW))),
			costStyle.Render(fmt.Sprintf("%10s", cli.FormatMoney(symbol, d.Cost))),
			hoursStyle.Render(fmt.Sprintf("%9s", cli.FormatHours(d.ComputedHours))),
			dateStyle.Render(fmt.Sprintf("%8s", cli.FormatDelay(d.ComputedGoalDelayDays))))
	}

	b.WriteString(components.ContentCard(
		fmt.Sprintf("Decision History (%d)", len(a.decisions)), body.String(), cw))
	b.WriteString("\n")

	// Detail card for the selected decision
	if a.histCur < len(a.decisions) {
		d := a.decisions[a.histCur]
		mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

		var detail strings.Builder
		fmt.Fprintf(&detail, "%s %s at %s/hr, %s of work\n",
			mutedStyle.Render("Committed:"),
			cli.FormatMoney(symbol, d.Cost),
			cli.FormatMoney(symbol, d.HourlyWageUsed),
			cli.FormatHours(d.ComputedHours))
		fmt.Fprintf(&detail, "%s %s\n", mutedStyle.Render("Category:"), a.categoryName(d.CategoryID))
		if d.ComputedGoalDelayDays > 0 {
			fmt.Fprintf(&detail, "%s %s", mutedStyle.Render("Goal delay:"), cli.FormatDelay(d.ComputedGoalDelayDays))
		}

		b.WriteString(components.ContentCard(truncate(d.Name, innerW), detail.String(), cw))
	}

	return b.String()
}
