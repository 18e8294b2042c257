package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Hasitha-J/tea-management/internal/ledger"
	"github.com/Hasitha-J/tea-management/internal/report"
)

// LogbookModel shows the combined income/expense/advance log for a
// period, newest first.
type LogbookModel struct {
	CommonModel
	compiler *report.Compiler

	table table.Model
	doc   *report.Document

	timeframe Timeframe
	loading   bool
	err       error
}

func NewLogbookModel(compiler *report.Compiler) LogbookModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 9},
		{Title: "Field", Width: 16},
		{Title: "Details", Width: 34},
		{Title: "Amount", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(17),
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

	return LogbookModel{
		compiler:  compiler,
		table:     t,
		timeframe: TimeframeThisMonth,
	}
}

func (m LogbookModel) Title() string { return "Logbook" }
func (m LogbookModel) ShortHelp() string {
	return "Esc: back | d: timeframe | r: refresh"
}

func (m LogbookModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m LogbookModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadLogbookMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.doc = msg.doc
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
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *LogbookModel) refreshTable() {
	if m.doc == nil {
		m.table.SetRows(nil)
		return
	}

	rows := make([]table.Row, 0, len(m.doc.Log))

	for _, e := range m.doc.Log {
		rows = append(rows, table.Row{
			FormatDate(e.Date),
			string(e.Kind),
			e.FieldName,
			e.Details,
			FormatMoney(e.Amount),
		})
	}

	m.table.SetRows(rows)
}

func (m LogbookModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading logbook...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf("Period: [d] %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(m.timeframe.String()))

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Render(m.table.View()),
	)

	if m.doc != nil && m.doc.Skipped > 0 {
		content += "\n" + lipgloss.NewStyle().Faint(true).Render(
			fmt.Sprintf("%d records skipped, see warnings", m.doc.Skipped))
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

// Messages

type loadLogbookMsg struct {
	doc *report.Document
	err error
}

func (m LogbookModel) loadCmd() tea.Cmd {
	timeframe := m.timeframe

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		start, end := timeframe.DateRange()

		period, err := ledger.NewPeriod(start, end)
		if err != nil {
			return loadLogbookMsg{err: err}
		}

		doc, err := m.compiler.Compile(ctx, period)

		return loadLogbookMsg{doc: doc, err: err}
	}
}
