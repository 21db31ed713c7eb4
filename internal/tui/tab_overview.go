package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/trucost-app/trucost/internal/cli"
	"github.com/trucost-app/trucost/internal/lifecost"
	"github.com/trucost-app/trucost/internal/model"
	"github.com/trucost-app/trucost/internal/tui/components"
	"github.com/trucost-app/trucost/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	symbol := model.CurrencySymbol(a.user.Currency)
	var b strings.Builder

	var totalSpent, totalHours float64
	var totalDelay int
	for _, d := range a.decisions {
		totalSpent += d.Cost
		totalHours += d.ComputedHours
		totalDelay += d.ComputedGoalDelayDays
	}

	cards := []struct{ Label, Value, Sub string }{
		{"Hourly", cli.FormatMoney(symbol, a.profile.EffectiveHourly),
			cli.FormatMoney(symbol, a.profile.EffectiveMonthly) + "/mo"},
		{"Spent", cli.FormatMoney(symbol, totalSpent),
			fmt.Sprintf("%d decisions", len(a.decisions))},
		{"Life spent", cli.FormatHours(totalHours),
			cli.FormatWorkDays(totalHours / 8)},
		{"Goal delay", cli.FormatDelay(totalDelay), ""},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Goal card
	if a.goal == nil {
		b.WriteString(components.ContentCard("Savings Goal",
			lipgloss.NewStyle().Foreground(t.TextMuted).Render("No goal yet. Set one with `trucost goal set`."),
			cw))
	} else {
		tl := lifecost.ProjectTimeline(*a.goal, time.Now())
		innerW := components.CardInnerWidth(cw)
		barW := innerW - 20
		if barW < 10 {
			barW = 10
		}

		mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		primStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

		var body strings.Builder
		body.WriteString(components.GoalBar(a.goal.Name, float64(tl.Percent)/100, 12, barW))
		body.WriteString("\n")
		fmt.Fprintf(&body, "%s %s  %s %s  %s %s\n",
			mutedStyle.Render("Target"), primStyle.Render(cli.FormatMoney(symbol, a.goal.TargetAmount)),
			mutedStyle.Render("Saved"), primStyle.Render(cli.FormatMoney(symbol, a.goal.StartingAmount)),
			mutedStyle.Render("Weekly"), primStyle.Render(cli.FormatMoney(symbol, a.goal.WeeklySavings)))

		switch {
		case tl.Remaining <= 0:
			body.WriteString(lipgloss.NewStyle().Foreground(t.Green).Render("Goal reached!"))
		case !tl.Reachable:
			body.WriteString(lipgloss.NewStyle().Foreground(t.Orange).Render("No weekly savings set, no completion date."))
		default:
			fmt.Fprintf(&body, "%s to go, about %d weeks (done %s)",
				cli.FormatMoney(symbol, tl.Remaining),
				tl.WeeksToGo,
				tl.CompletionDate.Format("Jan 2, 2006"))
		}

		b.WriteString(components.ContentCard("Savings Goal", body.String(), cw))
	}
	b.WriteString("\n")

	// Biggest setbacks
	top := a.decisions
	if len(top) > 0 {
		worst := make([]model.Decision, len(top))
		copy(worst, top)
		for i := 0; i < len(worst); i++ {
			for j := i + 1; j < len(worst); j++ {
				if worst[j].ComputedGoalDelayDays > worst[i].ComputedGoalDelayDays {
					worst[i], worst[j] = worst[j], worst[i]
				}
			}
		}
		if len(worst) > 3 {
			worst = worst[:3]
		}

		nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
		delayStyle := lipgloss.NewStyle().Foreground(t.Orange).Bold(true)
		costStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

		var body strings.Builder
		for _, d := range worst {
			if d.ComputedGoalDelayDays <= 0 {
				continue
			}
			fmt.Fprintf(&body, "%s  %s %s\n",
				delayStyle.Render(fmt.Sprintf("%8s", cli.FormatDelay(d.ComputedGoalDelayDays))),
				nameStyle.Render(d.Name),
				costStyle.Render("("+cli.FormatMoney(symbol, d.Cost)+")"))
		}
		if body.Len() > 0 {
			b.WriteString(components.ContentCard("Biggest Setbacks", body.String(), cw))
		}
	}

	return b.String()
}
