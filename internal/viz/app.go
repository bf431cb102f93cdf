package viz

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/odelab/internal/config"
	"github.com/san-kum/odelab/internal/dynamo"
	"github.com/san-kum/odelab/internal/experiment"
	"github.com/san-kum/odelab/internal/export"
)

// Runner computes a report for an accepted problem.
type Runner func(ctx context.Context, p dynamo.Problem) (*experiment.Report, error)

type tab int

const (
	tabPlots tab = iota
	tabLTE
	tabGTE
)

var tabNames = []string{"Plots", "LTE", "GTE"}

var fieldNames = []string{"x0", "y0", "X", "steps", "n0", "N"}

// reportMsg carries the result for problem. Results for any problem other
// than the applied one are stale and dropped.
type reportMsg struct {
	problem dynamo.Problem
	report  *experiment.Report
	err     error
}

// App is the interactive form. The zero value is not usable; see NewApp.
type App struct {
	runner        Runner
	params        dynamo.Problem
	values        []string
	cursor        int
	editing       bool
	editBuf       string
	tab           tab
	report        *experiment.Report
	message       string
	busy          bool
	width, height int
}

// NewApp returns an app showing p. The first report is computed on Init.
func NewApp(p dynamo.Problem, runner Runner) *App {
	a := &App{runner: runner, params: p, width: 100, height: 30}
	a.resetFields()
	return a
}

func (a App) Params() dynamo.Problem { return a.params }

func (a App) Report() *experiment.Report { return a.report }

func (a App) Message() string { return a.message }

func (a App) Init() tea.Cmd { return a.run(a.params) }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	case reportMsg:
		if msg.problem != a.params {
			return a, nil
		}
		a.busy = false
		if msg.err != nil {
			a.message = msg.err.Error()
			return a, nil
		}
		a.report = msg.report
		if len(msg.report.Faults) > 0 {
			a.message = msg.report.Faults[0].Error()
		}
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (App, tea.Cmd) {
	if a.editing {
		switch msg.String() {
		case "enter":
			a.values[a.cursor] = strings.TrimSpace(a.editBuf)
			a.editing, a.editBuf = false, ""
		case "esc":
			a.editing, a.editBuf = false, ""
		case "backspace":
			if len(a.editBuf) > 0 {
				a.editBuf = a.editBuf[:len(a.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' {
					a.editBuf += string(c)
				}
			}
		}
		return a, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.values)-1 {
			a.cursor++
		}
	case "enter", " ":
		a.editing, a.editBuf = true, a.values[a.cursor]
	case "a":
		return a.apply()
	case "r":
		a.resetFields()
		a.message = ""
	case "tab":
		a.tab = (a.tab + 1) % tab(len(tabNames))
	case "shift+tab":
		a.tab = (a.tab + tab(len(tabNames)) - 1) % tab(len(tabNames))
	case "1", "2", "3":
		a.tab = tab(msg.String()[0] - '1')
	}
	return a, nil
}

// apply validates the fields. Invalid input keeps the applied problem.
func (a App) apply() (App, tea.Cmd) {
	p, err := a.fields().Parse()
	if err != nil {
		a.message = config.InvalidInputMessage
		return a, nil
	}
	a.params = p
	a.message = ""
	a.busy = a.runner != nil
	return a, a.run(p)
}

func (a App) run(p dynamo.Problem) tea.Cmd {
	if a.runner == nil {
		return nil
	}
	runner := a.runner
	return func() tea.Msg {
		r, err := runner(context.Background(), p)
		return reportMsg{problem: p, report: r, err: err}
	}
}

func (a *App) resetFields() {
	f := config.FieldsFromProblem(a.params)
	a.values = []string{f.X0, f.Y0, f.Xn, f.Steps, f.N0, f.N}
}

func (a App) fields() config.Fields {
	v := a.values
	return config.Fields{X0: v[0], Y0: v[1], Xn: v[2], Steps: v[3], N0: v[4], N: v[5]}
}

func (a App) View() string {
	form := a.viewForm()
	chartWidth := max(a.width-lipgloss.Width(form)-14, 20)
	chartHeight := max(a.height-14, 6)

	var right strings.Builder
	right.WriteString(a.viewTabs())
	if a.busy {
		right.WriteString("  " + Subtle.Render("computing..."))
	}
	right.WriteString("\n\n")
	switch {
	case a.report == nil && a.runner != nil:
		right.WriteString(Subtle.Render("computing..."))
	case a.report == nil:
		right.WriteString(Subtle.Render("no results"))
	default:
		c := a.chart()
		right.WriteString(Chart(c.Title, FromExport(c), chartWidth, chartHeight))
		right.WriteString("\n\n" + SummaryTable(a.report))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, GlassPanel.Render(form), "  ", right.String())

	var b strings.Builder
	b.WriteString("\n  " + Title.Render("ODELAB") + "  " + Subtle.Render("y' = 3y - xy^(1/3)") + "\n\n")
	b.WriteString(body + "\n\n")
	b.WriteString("  " + Separator(max(lipgloss.Width(body)-2, 0)) + "\n")
	if a.message != "" {
		b.WriteString("\n" + ErrorText.Render(a.message) + "\n")
	}
	b.WriteString("\n  " + Hints("j/k", "select", "enter", "edit", "a", "apply", "r", "reset", "tab", "switch", "q", "quit") + "\n")
	return b.String()
}

func (a App) viewForm() string {
	var b strings.Builder
	for i, name := range fieldNames {
		val := a.values[i]
		if a.editing && i == a.cursor {
			b.WriteString(fmt.Sprintf("%s %s %s\n", Selected.Render("▸"), Selected.Render(fmt.Sprintf("%-6s", name)), Editing.Render(a.editBuf+"_")))
			continue
		}
		if i == a.cursor {
			b.WriteString(fmt.Sprintf("%s %s %s\n", Selected.Render("▸"), Selected.Render(fmt.Sprintf("%-6s", name)), MetricValue.Render(val)))
		} else {
			b.WriteString(fmt.Sprintf("  %s %s\n", MetricLabel.Render(fmt.Sprintf("%-6s", name)), Subtle.Render(val)))
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (a App) viewTabs() string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		if tab(i) == a.tab {
			parts[i] = ActiveTab.Render(name)
		} else {
			parts[i] = InactiveTab.Render(name)
		}
	}
	return strings.Join(parts, " ")
}

func (a App) chart() export.Chart {
	switch a.tab {
	case tabLTE:
		return export.LTEChart(a.report)
	case tabGTE:
		return export.SweepChart(a.report)
	}
	return export.ApproxChart(a.report)
}

// RunApp starts the app on the alternate screen and blocks until it quits.
func RunApp(p dynamo.Problem, runner Runner) error {
	_, err := tea.NewProgram(NewApp(p, runner), tea.WithAltScreen()).Run()
	return err
}
