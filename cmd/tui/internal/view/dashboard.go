package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Hasitha-J/tea-management/internal/ledger"
	"github.com/Hasitha-J/tea-management/internal/report"
)

type DashboardModel struct {
	CommonModel
	compiler *report.Compiler

	table      table.Model
	summary    *ledger.Summary
	advisories []ledger.RateAdvisory

	timeframe Timeframe
	loading   bool
	err       error
}

func NewDashboardModel(compiler *report.Compiler) DashboardModel {
	columns := []table.Column{
		{Title: "Field", Width: 20},
		{Title: "Income", Width: 14},
		{Title: "Expenses", Width: 14},
		{Title: "Net Profit", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return DashboardModel{
		compiler:  compiler,
		table:     t,
		timeframe: TimeframeThisMonth,
	}
}

func (m DashboardModel) Title() string { return "Dashboard" }
func (m DashboardModel) ShortHelp() string {
	return "Esc: back | d: timeframe | r: refresh"
}

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadDashboardMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.summary = msg.summary
		m.advisories = msg.advisories
		m.refreshTable()

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "d":
			m.timeframe = (m.timeframe + 1) % 4
			m.loading = true

			return m, m.loadCmd()
		}

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 14)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *DashboardModel) refreshTable() {
	if m.summary == nil {
		m.table.SetRows(nil)
		return
	}

	rows := make([]table.Row, 0, len(m.summary.Fields)+2)

	for _, f := range m.summary.Fields {
		rows = append(rows, table.Row{
			f.FieldName,
			FormatMoney(f.TotalIncome),
			FormatMoney(f.TotalExpense),
			FormatMoney(f.NetProfit),
		})
	}

	g := m.summary.General
	rows = append(rows, table.Row{
		g.FieldName,
		FormatMoney(g.TotalIncome),
		FormatMoney(g.TotalExpense),
		FormatMoney(g.NetProfit),
	})

	rows = append(rows, table.Row{
		"TOTAL",
		FormatMoney(m.summary.TotalIncome),
		FormatMoney(m.summary.TotalExpense),
		FormatMoney(m.summary.NetProfit),
	})

	m.table.SetRows(rows)
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf("Period: [d] %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(m.timeframe.String()))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if len(m.advisories) > 0 {
		var b strings.Builder

		b.WriteString("Missing rates:\n")

		for _, a := range m.advisories {
			fmt.Fprintf(&b, "  %s has no rate for %d/%d (%d harvests pending)\n",
				a.CollectorName, a.Month, a.Year, a.Harvests)
		}

		content = lipgloss.JoinVertical(lipgloss.Left,
			content,
			lipgloss.NewStyle().Foreground(lipgloss.Color("214")).PaddingTop(1).Render(b.String()),
		)
	}

	for _, w := range m.warnings() {
		content += "\n" + lipgloss.NewStyle().Faint(true).Render(w)
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m DashboardModel) warnings() []string {
	if m.summary == nil {
		return nil
	}

	out := make([]string, 0, len(m.summary.Warnings))
	for _, w := range m.summary.Warnings {
		out = append(out, w.String())
	}

	return out
}

// Messages

type loadDashboardMsg struct {
	summary    *ledger.Summary
	advisories []ledger.RateAdvisory
	err        error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	timeframe := m.timeframe

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		start, end := timeframe.DateRange()

		period, err := ledger.NewPeriod(start, end)
		if err != nil {
			return loadDashboardMsg{err: err}
		}

		summary, advisories, err := m.compiler.Summarize(ctx, period, nil)

		return loadDashboardMsg{summary: summary, advisories: advisories, err: err}
	}
}
