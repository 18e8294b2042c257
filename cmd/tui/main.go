package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/Hasitha-J/tea-management/cmd/tui/internal/view"
	"github.com/Hasitha-J/tea-management/internal/collector"
	collectorStore "github.com/Hasitha-J/tea-management/internal/collector/store"
	"github.com/Hasitha-J/tea-management/internal/config"
	"github.com/Hasitha-J/tea-management/internal/database"
	"github.com/Hasitha-J/tea-management/internal/expense"
	expenseStore "github.com/Hasitha-J/tea-management/internal/expense/store"
	"github.com/Hasitha-J/tea-management/internal/field"
	fieldStore "github.com/Hasitha-J/tea-management/internal/field/store"
	"github.com/Hasitha-J/tea-management/internal/harvest"
	harvestStore "github.com/Hasitha-J/tea-management/internal/harvest/store"
	"github.com/Hasitha-J/tea-management/internal/report"
)

type model struct {
	fieldService     *field.Service
	harvestService   *harvest.Service
	collectorService *collector.Service
	reportCompiler   *report.Compiler

	currentView View

	dashboardView view.DashboardModel
	harvestsView  view.HarvestsModel
	ratesView     view.RatesModel
	logbookView   view.LogbookModel
}

type View int

const (
	ViewMenu      View = 0
	ViewDashboard View = 1
	ViewHarvests  View = 2
	ViewRates     View = 3
	ViewLogbook   View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	fieldSvc := field.NewService(fieldStore.New(db))
	harvestSvc := harvest.NewService(harvestStore.New(db))
	expenseSvc := expense.NewService(expenseStore.New(db))
	collectorSvc := collector.NewService(collectorStore.New(db))
	compiler := report.NewCompiler(fieldSvc, harvestSvc, expenseSvc, collectorSvc)

	return model{
		fieldService:     fieldSvc,
		harvestService:   harvestSvc,
		collectorService: collectorSvc,
		reportCompiler:   compiler,
		currentView:      ViewMenu,
		dashboardView:    view.NewDashboardModel(compiler),
		harvestsView:     view.NewHarvestsModel(harvestSvc, fieldSvc, collectorSvc),
		ratesView:        view.NewRatesModel(collectorSvc),
		logbookView:      view.NewLogbookModel(compiler),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.reportCompiler)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewHarvests
				m.harvestsView = view.NewHarvestsModel(m.harvestService, m.fieldService, m.collectorService)

				return m, m.harvestsView.Init()
			case "3":
				m.currentView = ViewRates
				m.ratesView = view.NewRatesModel(m.collectorService)

				return m, m.ratesView.Init()
			case "4":
				m.currentView = ViewLogbook
				m.logbookView = view.NewLogbookModel(m.reportCompiler)

				return m, m.logbookView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewHarvests:
		var newModel tea.Model
		newModel, cmd = m.harvestsView.Update(msg)
		m.harvestsView = newModel.(view.HarvestsModel)
	case ViewRates:
		var newModel tea.Model
		newModel, cmd = m.ratesView.Update(msg)
		m.ratesView = newModel.(view.RatesModel)
	case ViewLogbook:
		var newModel tea.Model
		newModel, cmd = m.logbookView.Update(msg)
		m.logbookView = newModel.(view.LogbookModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"EstateBooks TUI\n\n" +
				"1. Dashboard\n" +
				"2. Harvests\n" +
				"3. Collector Rates\n" +
				"4. Logbook\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewHarvests:
		return m.harvestsView.View()
	case ViewRates:
		return m.ratesView.View()
	case ViewLogbook:
		return m.logbookView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
