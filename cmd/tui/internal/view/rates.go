package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Hasitha-J/tea-management/internal/collector"
)

type ratesState int

const (
	ratesStateBrowse ratesState = iota
	ratesStateEdit
)

type RatesModel struct {
	CommonModel
	collectorService *collector.Service

	state      ratesState
	table      table.Model
	rates      []*collector.Rate
	collectors []*collector.Collector
	form       *huh.Form

	year    int
	loading bool
	err     error
	status  string

	// Form bindings
	formCollector string
	formMonth     string
	formYear      string
	formRate      string
}

func NewRatesModel(collectorSvc *collector.Service) RatesModel {
	columns := []table.Column{
		{Title: "Collector", Width: 22},
		{Title: "Month", Width: 8},
		{Title: "Year", Width: 6},
		{Title: "Rate", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
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

	return RatesModel{
		collectorService: collectorSvc,
		table:            t,
		year:             time.Now().Year(),
	}
}

func (m RatesModel) Title() string { return "Collector Rates" }
func (m RatesModel) ShortHelp() string {
	if m.state == ratesStateEdit {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | s: set rate | y: year | r: refresh"
}

func (m RatesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m RatesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadRatesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.rates = msg.rates
		m.collectors = msg.collectors
		m.refreshTable()

		return m, nil

	case rateSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Rate saved, %d pending harvests repriced", msg.repriced)
		}

		m.state = ratesStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case ratesStateBrowse:
		return m.updateBrowse(msg)
	case ratesStateEdit:
		return m.updateEdit(msg)
	}

	return m, nil
}

func (m RatesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "y":
			m.year--
			if m.year < time.Now().Year()-5 {
				m.year = time.Now().Year()
			}

			m.loading = true

			return m, m.loadCmd()
		case "s":
			return m.enterEditMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m RatesModel) enterEditMode() (tea.Model, tea.Cmd) {
	if len(m.collectors) == 0 {
		m.status = "No collectors registered"
		return m, nil
	}

	now := time.Now()
	m.formCollector = m.collectors[0].ID.String()
	m.formMonth = strconv.Itoa(int(now.Month()))
	m.formYear = strconv.Itoa(now.Year())
	m.formRate = ""

	options := make([]huh.Option[string], 0, len(m.collectors))
	for _, c := range m.collectors {
		options = append(options, huh.NewOption(c.Name, c.ID.String()))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("collector").
				Title("Collector").
				Options(options...).
				Value(&m.formCollector),

			huh.NewInput().
				Key("month").
				Title("Month (1-12)").
				Value(&m.formMonth).
				Validate(func(s string) error {
					month, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || month < 1 || month > 12 {
						return fmt.Errorf("month must be 1-12")
					}

					return nil
				}),

			huh.NewInput().
				Key("year").
				Title("Year").
				Value(&m.formYear).
				Validate(func(s string) error {
					_, err := strconv.Atoi(strings.TrimSpace(s))
					return err
				}),

			huh.NewInput().
				Key("rate").
				Title("Rate per kg").
				Value(&m.formRate).
				Validate(func(s string) error {
					rate, err := decimal.NewFromString(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("invalid rate")
					}

					if rate.IsNegative() {
						return fmt.Errorf("rate must not be negative")
					}

					return nil
				}),
		),
	).WithWidth(40).WithShowHelp(false)

	m.state = ratesStateEdit
	m.table.Blur()

	return m, m.form.Init()
}

func (m RatesModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = ratesStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m RatesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading rates...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf("Year: [y] %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(strconv.Itoa(m.year)))

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Render(m.table.View()),
	)

	if m.state == ratesStateEdit && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(44).
			Render("Set Monthly Rate\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *RatesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.rates))

	for _, r := range m.rates {
		rows = append(rows, table.Row{
			r.CollectorName,
			time.Month(r.Month).String()[:3],
			strconv.Itoa(r.Year),
			FormatMoney(r.Rate),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadRatesMsg struct {
	rates      []*collector.Rate
	collectors []*collector.Collector
	err        error
}

func (m RatesModel) loadCmd() tea.Cmd {
	year := m.year

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		rates, err := m.collectorService.Rates(ctx, collector.RateFilter{Year: &year})
		if err != nil {
			return loadRatesMsg{err: err}
		}

		collectors, err := m.collectorService.List(ctx)
		if err != nil {
			return loadRatesMsg{err: err}
		}

		return loadRatesMsg{rates: rates, collectors: collectors}
	}
}

type rateSavedMsg struct {
	repriced int64
	err      error
}

func (m RatesModel) saveCmd() tea.Cmd {
	collectorID, err := uuid.Parse(m.formCollector)
	if err != nil {
		return func() tea.Msg { return rateSavedMsg{err: err} }
	}

	month, _ := strconv.Atoi(strings.TrimSpace(m.formMonth))
	year, _ := strconv.Atoi(strings.TrimSpace(m.formYear))
	rate, _ := decimal.NewFromString(strings.TrimSpace(m.formRate))

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, repriced, err := m.collectorService.SetRate(ctx, collectorID, month, year, rate)

		return rateSavedMsg{repriced: repriced, err: err}
	}
}
