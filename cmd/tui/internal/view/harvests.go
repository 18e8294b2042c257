package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Hasitha-J/tea-management/internal/collector"
	"github.com/Hasitha-J/tea-management/internal/field"
	"github.com/Hasitha-J/tea-management/internal/harvest"
)

type harvestState int

const (
	harvestStateBrowse harvestState = iota
	harvestStateEntry
)

type HarvestsModel struct {
	CommonModel
	harvestService   *harvest.Service
	fieldService     *field.Service
	collectorService *collector.Service

	state    harvestState
	table    table.Model
	harvests []*harvest.Harvest
	form     *huh.Form

	fields     []*field.Field
	collectors []*collector.Collector

	loading bool
	err     error
	status  string

	// Form bindings
	formDate      string
	formFieldID   string
	formCrop      string
	formWeight    string
	formRate      string
	formCollector string
}

func NewHarvestsModel(harvestSvc *harvest.Service, fieldSvc *field.Service, collectorSvc *collector.Service) HarvestsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Field", Width: 16},
		{Title: "Crop", Width: 8},
		{Title: "Weight", Width: 11},
		{Title: "Collector", Width: 16},
		{Title: "Total", Width: 12},
		{Title: "Status", Width: 12},
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

	return HarvestsModel{
		harvestService:   harvestSvc,
		fieldService:     fieldSvc,
		collectorService: collectorSvc,
		table:            t,
	}
}

func (m HarvestsModel) Title() string { return "Harvests" }
func (m HarvestsModel) ShortHelp() string {
	if m.state == harvestStateEntry {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | n: new harvest | r: refresh"
}

func (m HarvestsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m HarvestsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadHarvestsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.harvests = msg.harvests
		m.fields = msg.fields
		m.collectors = msg.collectors
		m.refreshTable()

		return m, nil

	case harvestSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = "Harvest recorded"
		}

		m.state = harvestStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case harvestStateBrowse:
		return m.updateBrowse(msg)
	case harvestStateEntry:
		return m.updateEntry(msg)
	}

	return m, nil
}

func (m HarvestsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "n":
			return m.enterEntryMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m HarvestsModel) enterEntryMode() (tea.Model, tea.Cmd) {
	m.formDate = FormatDate(time.Now())
	m.formFieldID = ""
	m.formCrop = string(harvest.CropTea)
	m.formWeight = ""
	m.formRate = ""
	m.formCollector = ""

	fieldOptions := make([]huh.Option[string], 0, len(m.fields)+1)
	fieldOptions = append(fieldOptions, huh.NewOption("(none)", ""))

	for _, f := range m.fields {
		fieldOptions = append(fieldOptions, huh.NewOption(f.Name, f.ID.String()))
	}

	collectorOptions := make([]huh.Option[string], 0, len(m.collectors)+1)
	collectorOptions = append(collectorOptions, huh.NewOption("(sold directly)", ""))

	for _, c := range m.collectors {
		collectorOptions = append(collectorOptions, huh.NewOption(c.Name, c.ID.String()))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("date").
				Title("Date").
				Value(&m.formDate).
				Validate(func(s string) error {
					_, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
					return err
				}),

			huh.NewSelect[string]().
				Key("field").
				Title("Field").
				Options(fieldOptions...).
				Value(&m.formFieldID),

			huh.NewSelect[string]().
				Key("crop").
				Title("Crop").
				Options(
					huh.NewOption("Tea", string(harvest.CropTea)),
					huh.NewOption("Pepper", string(harvest.CropPepper)),
					huh.NewOption("Coffee", string(harvest.CropCoffee)),
				).
				Value(&m.formCrop),

			huh.NewInput().
				Key("weight").
				Title("Weight (kg)").
				Value(&m.formWeight).
				Validate(func(s string) error {
					w, err := decimal.NewFromString(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("invalid weight")
					}

					if !w.IsPositive() {
						return fmt.Errorf("weight must be positive")
					}

					return nil
				}),

			huh.NewSelect[string]().
				Key("collector").
				Title("Collector").
				Options(collectorOptions...).
				Value(&m.formCollector),

			huh.NewInput().
				Key("rate").
				Title("Rate (blank for monthly rate)").
				Value(&m.formRate),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = harvestStateEntry
	m.table.Blur()

	return m, m.form.Init()
}

func (m HarvestsModel) updateEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = harvestStateBrowse
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

func (m HarvestsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading harvests...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	content := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	if m.state == harvestStateEntry && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("New Harvest\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *HarvestsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.harvests))

	for _, h := range m.harvests {
		status := "priced"
		if h.Crop == harvest.CropTea && h.CollectorID != nil && !h.Priced() {
			status = "rate pending"
		}

		fieldName := h.FieldName
		if fieldName == "" {
			fieldName = "-"
		}

		collectorName := h.CollectorName
		if collectorName == "" {
			collectorName = "-"
		}

		rows = append(rows, table.Row{
			FormatDate(h.Date),
			fieldName,
			string(h.Crop),
			FormatWeight(h.Weight),
			collectorName,
			FormatMoney(h.TotalAmount),
			status,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadHarvestsMsg struct {
	harvests   []*harvest.Harvest
	fields     []*field.Field
	collectors []*collector.Collector
	err        error
}

func (m HarvestsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		harvests, err := m.harvestService.List(ctx, harvest.ListFilter{})
		if err != nil {
			return loadHarvestsMsg{err: err}
		}

		fields, err := m.fieldService.List(ctx)
		if err != nil {
			return loadHarvestsMsg{err: err}
		}

		collectors, err := m.collectorService.List(ctx)
		if err != nil {
			return loadHarvestsMsg{err: err}
		}

		return loadHarvestsMsg{harvests: harvests, fields: fields, collectors: collectors}
	}
}

type harvestSavedMsg struct {
	err error
}

func (m HarvestsModel) saveCmd() tea.Cmd {
	date, _ := time.Parse(time.DateOnly, strings.TrimSpace(m.formDate))
	weight, _ := decimal.NewFromString(strings.TrimSpace(m.formWeight))

	params := harvest.CreateParams{
		Date:   date,
		Crop:   harvest.Crop(m.formCrop),
		Weight: weight,
	}

	if m.formFieldID != "" {
		if id, err := uuid.Parse(m.formFieldID); err == nil {
			params.FieldID = &id
		}
	}

	if m.formCollector != "" {
		if id, err := uuid.Parse(m.formCollector); err == nil {
			params.CollectorID = &id
		}
	}

	if s := strings.TrimSpace(m.formRate); s != "" {
		if rate, err := decimal.NewFromString(s); err == nil {
			params.Rate = &rate
		}
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.harvestService.Log(ctx, params)

		return harvestSavedMsg{err: err}
	}
}
