// Package tui provides the interactive Bubble Tea dashboard for ahorro.
package tui

import (
	"fmt"
	"strings"

	"ahorro/internal/display"
	"ahorro/internal/ledger"
	"ahorro/internal/model"
	"ahorro/internal/pipeline"
	"ahorro/internal/tui/components"
	"ahorro/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type mode int

const (
	modeView mode = iota
	modeAdd
	modeGoal
	modeClear
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 110
	maxHistoryRows   = 12
)

// addValues backs the add-movement form fields.
type addValues struct {
	concept string
	typ     string
	amount  string
}

// App is the root Bubble Tea model. Every mutation runs synchronously
// inside Update: mutate, persist, recompute, re-render. There is never
// more than one handler in flight.
type App struct {
	ledger   *ledger.Ledger
	currency string

	// Recomputed after every mutation
	totals model.Totals
	dm     display.Model

	width  int
	height int
	mode   mode

	addForm   *huh.Form
	addVals   addValues
	clearForm *huh.Form
	clearOK   bool
	goalInput textinput.Model

	note string // transient status line (last action result)
}

// NewApp creates the dashboard model for an opened ledger.
func NewApp(l *ledger.Ledger, currency string) App {
	a := App{ledger: l, currency: currency}
	a.recompute()
	return a
}

func (a *App) recompute() {
	st := a.ledger.State()
	a.totals = pipeline.Aggregate(st)
	a.dm = display.Build(st, a.totals, a.currency)
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.addForm != nil {
			a.addForm = a.addForm.WithWidth(msg.Width)
		}
		if a.clearForm != nil {
			a.clearForm = a.clearForm.WithWidth(msg.Width)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.mode {
		case modeAdd:
			return a.updateAddForm(msg)
		case modeClear:
			return a.updateClearForm(msg)
		case modeGoal:
			return a.updateGoalInput(msg)
		}

		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "a":
			a.mode = modeAdd
			a.addVals = addValues{typ: string(model.Income)}
			a.addForm = newAddForm(&a.addVals)
			if a.width > 0 {
				a.addForm = a.addForm.WithWidth(a.width)
			}
			return a, a.addForm.Init()
		case "c":
			a.mode = modeClear
			a.clearOK = false
			a.clearForm = newClearForm(&a.clearOK)
			if a.width > 0 {
				a.clearForm = a.clearForm.WithWidth(a.width)
			}
			return a, a.clearForm.Init()
		case "g":
			a.mode = modeGoal
			a.goalInput = newGoalInput(a.ledger.State())
			return a, a.goalInput.Cursor.BlinkCmd()
		}
		return a, nil
	}

	// Forward unhandled messages to the active form (cursor blinks, etc.)
	switch a.mode {
	case modeAdd:
		return a.updateAddForm(msg)
	case modeClear:
		return a.updateClearForm(msg)
	case modeGoal:
		return a.updateGoalInput(msg)
	}

	return a, nil
}

func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.addForm = f
	}

	if a.addForm.State == huh.StateCompleted {
		_, added, err := a.ledger.Add(a.addVals.concept, a.addVals.typ, a.addVals.amount)
		switch {
		case err != nil:
			a.note = "save failed: " + err.Error()
		case added:
			a.note = "movement recorded"
		default:
			// Invalid input is a silent no-op; the dashboard simply
			// re-renders unchanged.
			a.note = ""
		}
		a.recompute()
		a.mode = modeView
		a.addForm = nil
		return a, nil
	}

	if a.addForm.State == huh.StateAborted {
		a.mode = modeView
		a.addForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) updateClearForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.clearForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.clearForm = f
	}

	if a.clearForm.State == huh.StateCompleted {
		if a.clearOK {
			if err := a.ledger.Clear(); err != nil {
				a.note = "save failed: " + err.Error()
			} else {
				a.note = "movements cleared"
			}
			a.recompute()
		}
		a.mode = modeView
		a.clearForm = nil
		return a, nil
	}

	if a.clearForm.State == huh.StateAborted {
		a.mode = modeView
		a.clearForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) updateGoalInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			a.mode = modeView
			return a, nil
		case "enter":
			if _, err := a.ledger.SetGoal(a.goalInput.Value()); err != nil {
				a.note = "save failed: " + err.Error()
			} else {
				a.note = "goal saved"
			}
			a.recompute()
			a.mode = modeView
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.goalInput, cmd = a.goalInput.Update(msg)
	return a, cmd
}

func newAddForm(vals *addValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Concept").
				Placeholder("e.g. Salary, groceries").
				Value(&vals.concept),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Income", string(model.Income)),
					huh.NewOption("Expense", string(model.Expense)),
				).
				Value(&vals.typ),
			huh.NewInput().
				Title("Amount").
				Placeholder("0.00").
				Value(&vals.amount),
		),
	)
}

func newClearForm(ok *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Clear all movements?").
				Description("The savings goal is kept.").
				Affirmative("Clear").
				Negative("Cancel").
				Value(ok),
		),
	)
}

func newGoalInput(st model.State) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "monthly savings goal, e.g. 1000"
	ti.CharLimit = 32
	ti.Width = 30
	if st.Goal.IsPositive() {
		ti.SetValue(st.Goal.String())
	}
	ti.Focus()
	return ti
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
		return fmt.Sprintf(
			"\n  Terminal too narrow (%d cols)\n\n  ahorro needs at least %d columns.\n",
			a.width, minTerminalWidth,
		)
	}

	switch a.mode {
	case modeAdd:
		return a.addForm.View()
	case modeClear:
		return a.clearForm.View()
	}

	return a.viewMain()
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	header := " " + titleStyle.Render("◈ ahorro") +
		subtitleStyle.Render(" · Personal Savings Tracker")

	cards := components.MetricCardRow([]components.Metric{
		{Label: "Income", Value: a.dm.Summary.TotalIncome},
		{Label: "Expense", Value: a.dm.Summary.TotalExpense},
		{Label: "Balance", Value: a.dm.Summary.Balance},
		{Label: "Savings Rate", Value: a.dm.Summary.SavingsRate},
	}, cw)

	goalCard := components.ContentCard("Savings Goal", a.viewGoalBody(cw), cw)
	historyCard := components.ContentCard("History", a.viewHistoryBody(), cw)

	statusBar := components.RenderStatusBar(w, a.note)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		cards,
		goalCard,
		historyCard,
		statusBar,
	)
}

func (a App) viewGoalBody(cw int) string {
	t := theme.Active

	statusStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	if a.dm.Goal.Met {
		statusStyle = lipgloss.NewStyle().Foreground(t.Green)
	} else if !a.dm.Goal.Set {
		statusStyle = lipgloss.NewStyle().Foreground(t.TextMuted)
	}

	var b strings.Builder
	b.WriteString(components.GoalBar(a.dm.Goal.ProgressPct, components.CardInnerWidth(cw)))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(a.dm.Goal.Status))

	if a.mode == modeGoal {
		b.WriteString("\n\n")
		b.WriteString(a.goalInput.View())
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).
			Render("Enter to save, Esc to cancel"))
	}

	return b.String()
}

func (a App) viewHistoryBody() string {
	t := theme.Active

	if len(a.dm.History) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).
			Render(display.EmptyHistoryText)
	}

	conceptStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	incomeStyle := lipgloss.NewStyle().Foreground(t.Green)
	expenseStyle := lipgloss.NewStyle().Foreground(t.Red)
	moreStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	entries := a.dm.History
	overflow := 0
	if len(entries) > maxHistoryRows {
		overflow = len(entries) - maxHistoryRows
		entries = entries[:maxHistoryRows]
	}

	conceptW := 0
	for _, e := range entries {
		if len(e.Concept) > conceptW {
			conceptW = len(e.Concept)
		}
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		amountStyle := expenseStyle
		if e.Income {
			amountStyle = incomeStyle
		}
		b.WriteString(conceptStyle.Render(fmt.Sprintf("%-*s", conceptW, e.Concept)))
		b.WriteString("  ")
		b.WriteString(amountStyle.Render(e.Amount))
	}
	if overflow > 0 {
		b.WriteString("\n")
		b.WriteString(moreStyle.Render(fmt.Sprintf("… %d more (run `ahorro history`)", overflow)))
	}

	return b.String()
}
