package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/acadfund/acadfund/internal/catalog"
	catalogStore "github.com/acadfund/acadfund/internal/catalog/store"
	"github.com/acadfund/acadfund/internal/config"
	"github.com/acadfund/acadfund/internal/cycle"
	cycleStore "github.com/acadfund/acadfund/internal/cycle/store"
	"github.com/acadfund/acadfund/internal/database"
	"github.com/acadfund/acadfund/internal/department"
	departmentStore "github.com/acadfund/acadfund/internal/department/store"
	acadfundHttp "github.com/acadfund/acadfund/internal/http"
	catalogHandler "github.com/acadfund/acadfund/internal/http/catalog"
	cycleHandler "github.com/acadfund/acadfund/internal/http/cycle"
	departmentHandler "github.com/acadfund/acadfund/internal/http/department"
	proposalHandler "github.com/acadfund/acadfund/internal/http/proposal"
	reportHandler "github.com/acadfund/acadfund/internal/http/report"
	userHandler "github.com/acadfund/acadfund/internal/http/user"
	"github.com/acadfund/acadfund/internal/proposal"
	proposalStore "github.com/acadfund/acadfund/internal/proposal/store"
	"github.com/acadfund/acadfund/internal/report"
	"github.com/acadfund/acadfund/internal/review"
	reviewStore "github.com/acadfund/acadfund/internal/review/store"
	"github.com/acadfund/acadfund/internal/user"
	userStore "github.com/acadfund/acadfund/internal/user/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.Auth.Secret == "" {
		slog.Error("AUTH_SECRET is required")
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		departmentService = department.NewService(departmentStore.New(db))
		cycleService      = cycle.NewService(cycleStore.New(db))
		catalogService    = catalog.NewService(catalogStore.New(db))
		proposalService   = proposal.NewService(proposalStore.New(db), cycleService)
		reviewService     = review.NewService(reviewStore.New(db))
		reportService     = report.NewService(proposalService, cycleService, departmentService)
		userService       = user.NewService(userStore.New(db))
	)

	var (
		departmentH = departmentHandler.NewHandler(departmentService)
		cycleH      = cycleHandler.NewHandler(cycleService)
		catalogH    = catalogHandler.NewHandler(catalogService)
		proposalH   = proposalHandler.NewHandler(proposalService, reviewService)
		reportH     = reportHandler.NewHandler(reportService)
		userH       = userHandler.NewHandler(userService)
	)

	router := acadfundHttp.New(cfg.Auth.Secret, departmentH, cycleH, catalogH, proposalH, reportH, userH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
