package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/trucost-app/trucost/internal/cli"
	"github.com/trucost-app/trucost/internal/lifecost"
	"github.com/trucost-app/trucost/internal/model"
	"github.com/trucost-app/trucost/internal/tui/components"
	"github.com/trucost-app/trucost/internal/tui/theme"
)

func (a App) renderWishlistTab(cw int) string {
	t := theme.Active
	symbol := model.CurrencySymbol(a.user.Currency)
	var b strings.Builder

	// Quick-add form replaces the list while open.
	if a.add.active {
		titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
		hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

		label := "New item"
		if a.add.stage == addCost {
			label = fmt.Sprintf("Cost of %q", a.add.name)
		}

		body := titleStyle.Render(label) + "\n\n" +
			a.add.input.View() + "\n\n" +
			hintStyle.Render("Enter to continue · Esc to cancel")
		b.WriteString(components.ContentCard("Add to Wishlist", body, cw))
		return b.String()
	}

	if len(a.items) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("Wishlist is empty. Press n to add something you are tempted by.")
		b.WriteString(components.ContentCard("Wishlist", empty, cw))
		return b.String()
	}

	innerW := components.CardInnerWidth(cw)

	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	costStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	hoursStyle := lipgloss.NewStyle().Foreground(t.Orange)
	catStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	nameW := innerW / 3
	if nameW < 14 {
		nameW = 14
	}

	var body strings.Builder
	for i, it := range a.items {
		impact := lifecost.ComputeImpact(it.Cost, a.profile)

		line := fmt.Sprintf("%-*s %10s  %9s  %s",
			nameW, truncate(it.Name, nameW),
			cli.FormatMoney(symbol, it.Cost),
			cli.FormatHours(impact.HoursOfWork),
			a.categoryName(it.CategoryID))

		if i == a.cursor {
			fmt.Fprintf(&body, "%s\n", selStyle.Render("▸ "+line))
			continue
		}

		fmt.Fprintf(&body, "  %s %s  %s  %s\n",
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncate(it.Name, nameW))),
			costStyle.Render(fmt.Sprintf("%10s", cli.FormatMoney(symbol, it.Cost))),
			hoursStyle.Render(fmt.Sprintf("%9s", cli.FormatHours(impact.HoursOfWork))),
			catStyle.Render(a.categoryName(it.CategoryID)))
	}

	b.WriteString(components.ContentCard(
		fmt.Sprintf("Wishlist (%d)", len(a.items)), body.String(), cw))
	b.WriteString("\n")

	// Detail card for the selected item
	if a.cursor < len(a.items) {
		it := a.items[a.cursor]
		impact := lifecost.ComputeImpact(it.Cost, a.profile)
		delay := lifecost.DelayDays(it.Cost, a.goal)

		mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

		var detail strings.Builder
		fmt.Fprintf(&detail, "%s %s of work, %s income, %s recovery\n",
			mutedStyle.Render("Impact:"),
			cli.FormatHours(impact.HoursOfWork),
			cli.FormatPercent(impact.IncomeImpactPercent),
			cli.FormatWorkDays(impact.RecoveryWorkDays))
		detail.WriteString(components.ImpactBar(impact.IncomeImpactPercent/100, innerW-4))
		detail.WriteString("\n")
		if delay > 0 {
			fmt.Fprintf(&detail, "%s %s\n", mutedStyle.Render("Goal:"), cli.FormatDelay(delay))
		}
		if it.Note != "" {
			fmt.Fprintf(&detail, "%s %s\n", mutedStyle.Render("Note:"), it.Note)
		}
		detail.WriteString(mutedStyle.Render("b buy · x archive · n new"))

		b.WriteString(components.ContentCard(truncate(it.Name, innerW), detail.String(), cw))
	}

	return b.String()
}

func truncate(s string, w int) string {
	if len(s) <= w {
		return s
	}
	if w <= 1 {
		return s[:w]
	}
	return s[:w-1] + "…"
}
