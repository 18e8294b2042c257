package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/Hasitha-J/tea-management/internal/catalog"
	catalogStore "github.com/Hasitha-J/tea-management/internal/catalog/store"
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
	estateHttp "github.com/Hasitha-J/tea-management/internal/http"
	catalogHandler "github.com/Hasitha-J/tea-management/internal/http/catalog"
	collectorHandler "github.com/Hasitha-J/tea-management/internal/http/collector"
	expenseHandler "github.com/Hasitha-J/tea-management/internal/http/expense"
	fieldHandler "github.com/Hasitha-J/tea-management/internal/http/field"
	harvestHandler "github.com/Hasitha-J/tea-management/internal/http/harvest"
	importHandler "github.com/Hasitha-J/tea-management/internal/http/importcsv"
	reportHandler "github.com/Hasitha-J/tea-management/internal/http/report"
	"github.com/Hasitha-J/tea-management/internal/importer"
	"github.com/Hasitha-J/tea-management/internal/importer/fieldbook"
	"github.com/Hasitha-J/tea-management/internal/report"
)

func main() {
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
	defer db.Close()

	var (
		fieldService     = field.NewService(fieldStore.New(db))
		catalogService   = catalog.NewService(catalogStore.New(db))
		harvestService   = harvest.NewService(harvestStore.New(db))
		expenseService   = expense.NewService(expenseStore.New(db))
		collectorService = collector.NewService(collectorStore.New(db))

		reportCompiler = report.NewCompiler(fieldService, harvestService, expenseService, collectorService)
		importService  = importer.NewService(
			fieldbook.NewParser(),
			fieldService,
			collectorService,
			catalogService,
			harvestService,
			expenseService,
		)
	)

	var (
		fieldH     = fieldHandler.NewHandler(fieldService)
		catalogH   = catalogHandler.NewHandler(catalogService)
		harvestH   = harvestHandler.NewHandler(harvestService, collectorService)
		expenseH   = expenseHandler.NewHandler(expenseService)
		collectorH = collectorHandler.NewHandler(collectorService)
		reportH    = reportHandler.NewHandler(reportCompiler)
		importH    = importHandler.NewHandler(importService)
	)

	router := estateHttp.New(fieldH, catalogH, harvestH, expenseH, collectorH, reportH, importH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
