package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/acadfund/acadfund/cmd/tui/internal/view"
	"github.com/acadfund/acadfund/internal/actor"
	"github.com/acadfund/acadfund/internal/config"
	"github.com/acadfund/acadfund/internal/cycle"
	cycleStore "github.com/acadfund/acadfund/internal/cycle/store"
	"github.com/acadfund/acadfund/internal/database"
	"github.com/acadfund/acadfund/internal/proposal"
	proposalStore "github.com/acadfund/acadfund/internal/proposal/store"
	"github.com/acadfund/acadfund/internal/review"
	reviewStore "github.com/acadfund/acadfund/internal/review/store"
	userStore "github.com/acadfund/acadfund/internal/user/store"
)

type model struct {
	cycleService    *cycle.Service
	proposalService *proposal.Service
	reviewService   *review.Service
	caller          actor.Actor

	currentView View

	cyclesView view.CyclesModel
	reviewView view.ReviewModel
}

type View int

const (
	ViewMenu   View = 0
	ViewCycles View = 1
	ViewReview View = 2
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

	userID, err := uuid.Parse(os.Getenv("TUI_USER_ID"))
	if err != nil {
		slog.Error("TUI_USER_ID must be a valid user id")
		os.Exit(1)
	}

	ctx, cancel := view.DbCtx()
	defer cancel()

	self, err := userStore.New(db).GetUser(ctx, userID)
	if err != nil {
		slog.Error("failed to load user", "error", err)
		os.Exit(1)
	}

	caller := self.AsActor()

	cycleSvc := cycle.NewService(cycleStore.New(db))
	proposalSvc := proposal.NewService(proposalStore.New(db), cycleSvc)
	reviewSvc := review.NewService(reviewStore.New(db))

	return model{
		cycleService:    cycleSvc,
		proposalService: proposalSvc,
		reviewService:   reviewSvc,
		caller:          caller,
		currentView:     ViewMenu,
		cyclesView:      view.NewCyclesModel(cycleSvc, caller),
		reviewView:      view.NewReviewModel(proposalSvc, reviewSvc, caller),
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
				m.currentView = ViewCycles
				m.cyclesView = view.NewCyclesModel(m.cycleService, m.caller)

				return m, m.cyclesView.Init()
			case "2":
				m.currentView = ViewReview
				m.reviewView = view.NewReviewModel(m.proposalService, m.reviewService, m.caller)

				return m, m.reviewView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewCycles:
		var newModel tea.Model
		newModel, cmd = m.cyclesView.Update(msg)
		m.cyclesView = newModel.(view.CyclesModel)
	case ViewReview:
		var newModel tea.Model
		newModel, cmd = m.reviewView.Update(msg)
		m.reviewView = newModel.(view.ReviewModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"AcadFund TUI\n\n" +
				"1. Fund Cycles\n" +
				"2. Review Proposals\n\n" +
				"q. Quit",
		)
	case ViewCycles:
		return m.cyclesView.View()
	case ViewReview:
		return m.reviewView.View()
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
