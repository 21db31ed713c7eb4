// Package tui provides the interactive Bubble Tea dashboard for trucost.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/trucost-app/trucost/internal/lifecost"
	"github.com/trucost-app/trucost/internal/model"
	"github.com/trucost-app/trucost/internal/store"
	"github.com/trucost-app/trucost/internal/tui/components"
	"github.com/trucost-app/trucost/internal/tui/theme"
)

// dataLoadedMsg is sent when the database snapshot finishes loading.
type dataLoadedMsg struct {
	user      model.User
	goal      *model.Goal
	items     []model.WishlistItem
	decisions []model.Decision
	catList   []model.Category
	cats      map[string]string
	err       error
}

// actionDoneMsg reports the result of a buy, archive, or add.
type actionDoneMsg struct {
	note string
	err  error
}

// addStage tracks which field of the quick-add form is focused.
type addStage int

const (
	addName addStage = iota
	addCost
)

type addState struct {
	active bool
	stage  addStage
	name   string
	input  textinput.Model
}

// App is the root Bubble Tea model.
type App struct {
	s *store.Store

	// Snapshot from the database
	user      model.User
	profile   lifecost.WageProfile
	goal      *model.Goal
	items     []model.WishlistItem
	decisions []model.Decision
	catList   []model.Category
	cats      map[string]string

	loaded  bool
	loadErr error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	cursor    int
	histCur   int
	flash     string

	add     addState
	spinner spinner.Model
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
	minContentHeight = 5
)

// NewApp creates the TUI model. The store stays open for the whole
// session and is closed by the caller.
func NewApp(s *store.Store) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{s: s, spinner: sp}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.loadDataCmd(), a.spinner.Tick)
}

// loadDataCmd reads the full dashboard snapshot in one command.
func (a App) loadDataCmd() tea.Cmd {
	s := a.s
	return func() tea.Msg {
		user, err := s.CurrentUser()
		if err != nil {
			return dataLoadedMsg{err: fmt.Errorf("loading profile: %w", err)}
		}
		if user == nil {
			return dataLoadedMsg{err: fmt.Errorf("no profile found, run `trucost setup` first")}
		}

		goal, err := s.GoalForUser(user.ID)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		items, err := s.ListWishlist(user.ID, model.StatusWishlisted)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		decisions, err := s.ListDecisions(user.ID, store.DecisionFilter{})
		if err != nil {
			return dataLoadedMsg{err: err}
		}

		cats := map[string]string{}
		var catList []model.Category
		if list, err := s.ListCategories(user.ID); err == nil {
			catList = list
			for _, c := range list {
				cats[c.ID] = c.Name
			}
		}

		return dataLoadedMsg{user: *user, goal: goal, items: items, decisions: decisions, catList: catList, cats: cats}
	}
}

// buyCmd commits a wishlist purchase and its ledger decision.
func (a App) buyCmd(item model.WishlistItem) tea.Cmd {
	s, user, goal := a.s, a.user, a.goal
	return func() tea.Msg {
		now := time.Now().UTC()
		d := lifecost.BuildPurchaseDecision(user, item, goal, now)
		if err := s.MarkPurchased(item.ID, d, now); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{note: fmt.Sprintf("Bought %q", item.Name)}
	}
}

func (a App) archiveCmd(item model.WishlistItem) tea.Cmd {
	s := a.s
	return func() tea.Msg {
		if err := s.ArchiveItem(item.ID); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{note: fmt.Sprintf("Archived %q", item.Name)}
	}
}

func (a App) addItemCmd(name string, cost float64) tea.Cmd {
	s, user := a.s, a.user
	categoryID := defaultCategoryID(a.catList)
	return func() tea.Msg {
		item := model.WishlistItem{
			ID:         uuid.NewString(),
			UserID:     user.ID,
			Name:       name,
			Cost:       cost,
			CategoryID: categoryID,
			Status:     model.StatusWishlisted,
			CreatedAt:  time.Now().UTC(),
		}
		if err := s.SaveWishlistItem(item); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{note: fmt.Sprintf("Added %q", name)}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.updateKeys(msg)

	case dataLoadedMsg:
		a.loaded = true
		a.loadErr = msg.err
		if msg.err == nil {
			a.user = msg.user
			a.profile = lifecost.Normalize(msg.user.DefaultWage, msg.user.WageType)
			a.goal = msg.goal
			a.items = msg.items
			a.decisions = msg.decisions
			a.catList = msg.catList
			a.cats = msg.cats
			if a.cursor >= len(a.items) {
				a.cursor = len(a.items) - 1
			}
			if a.cursor < 0 {
				a.cursor = 0
			}
			if a.histCur >= len(a.decisions) {
				a.histCur = len(a.decisions) - 1
			}
			if a.histCur < 0 {
				a.histCur = 0
			}
		}
		return a, nil

	case actionDoneMsg:
		if msg.err != nil {
			a.flash = "Error: " + msg.err.Error()
			return a, nil
		}
		a.flash = msg.note
		return a, a.loadDataCmd()

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward everything else to the add form when it is open.
	if a.add.active {
		var cmd tea.Cmd
		a.add.input, cmd = a.add.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}
	if !a.loaded {
		return a, nil
	}
	if a.loadErr != nil {
		return a, tea.Quit
	}

	// Quick-add form intercepts all keys while open.
	if a.add.active {
		return a.updateAddForm(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	a.flash = ""

	switch key {
	case "q":
		return a, tea.Quit
	case "r":
		return a, a.loadDataCmd()
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	}

	if len(key) == 1 {
		if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}

	// Wishlist tab actions
	if a.activeTab == 1 {
		switch key {
		case "j", "down":
			if a.cursor < len(a.items)-1 {
				a.cursor++
			}
		case "k", "up":
			if a.cursor > 0 {
				a.cursor--
			}
		case "n":
			a.add = addState{active: true, stage: addName, input: newAddInput("What do you want to buy?")}
			return a, textinput.Blink
		case "b", "enter":
			if a.cursor < len(a.items) {
				return a, a.buyCmd(a.items[a.cursor])
			}
		case "x":
			if a.cursor < len(a.items) {
				return a, a.archiveCmd(a.items[a.cursor])
			}
		}
		return a, nil
	}

	// History tab navigation
	if a.activeTab == 2 {
		switch key {
		case "j", "down":
			if a.histCur < len(a.decisions)-1 {
				a.histCur++
			}
		case "k", "up":
			if a.histCur > 0 {
				a.histCur--
			}
		}
		return a, nil
	}

	return a, nil
}

func newAddInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 80
	in.Width = 40
	in.Focus()
	return in
}

func (a App) updateAddForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.add = addState{}
		return a, nil

	case "enter":
		value := strings.TrimSpace(a.add.input.Value())
		switch a.add.stage {
		case addName:
			if value == "" {
				return a, nil
			}
			a.add.name = value
			a.add.stage = addCost
			a.add.input = newAddInput("How much does it cost?")
			return a, textinput.Blink
		case addCost:
			cost, err := strconv.ParseFloat(value, 64)
			if err != nil || cost <= 0 {
				a.flash = "Error: cost must be a positive number"
				return a, nil
			}
			name := a.add.name
			a.add = addState{}
			return a, a.addItemCmd(name, cost)
		}
	}

	var cmd tea.Cmd
	a.add.input, cmd = a.add.input.Update(msg)
	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols), trucost needs at least %d.\n",
			a.width, minTerminalWidth)
	}
	if !a.loaded {
		return a.viewLoading()
	}
	if a.loadErr != nil {
		return fmt.Sprintf("\n  %v\n\n  Press any key to exit.\n", a.loadErr)
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	logoStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	subStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	card := cardStyle.Render(
		logoStyle.Render("◈ trucost") + subStyle.Render(" · The True Cost of Things") +
			"\n\n" + a.spinner.View() + subStyle.Render(" Opening your ledger..."))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	bindings := []struct{ key, desc string }{
		{"o w h", "Jump to tab"},
		{"← → tab", "Cycle tabs"},
		{"j k", "Move in lists"},
		{"n", "New wishlist item"},
		{"b / Enter", "Buy selected item"},
		{"x", "Archive selected item"},
		{"r", "Reload from disk"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()))
}

func (a App) viewMain() string {
	w := a.width
	cw := a.contentWidth()

	header := components.RenderTabBar(a.activeTab) + "\n"

	right := a.flash
	if right == "" {
		right = fmt.Sprintf("%d items · %d decisions", len(a.items), len(a.decisions))
	}
	statusBar := components.RenderStatusBar(w, right)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := a.height - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderWishlistTab(cw)
	case 2:
		content = a.renderHistoryTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// defaultCategoryID picks the user's oldest category for quick-adds.
func defaultCategoryID(cats []model.Category) string {
	if len(cats) == 0 {
		return ""
	}
	return cats[0].ID
}

func (a App) categoryName(id string) string {
	if name, ok := a.cats[id]; ok {
		return name
	}
	return "Uncategorized"
}

func truncateHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= h {
		return s
	}
	return strings.Join(lines[:h], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Count(s, "\n") + 1
	if lines >= h {
		return s
	}
	return s + strings.Repeat("\n", h-lines)
}
