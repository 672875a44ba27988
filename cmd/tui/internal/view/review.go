package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/acadfund/acadfund/internal/actor"
	"github.com/acadfund/acadfund/internal/proposal"
	"github.com/acadfund/acadfund/internal/review"
)

type reviewState int

const (
	reviewStateBrowse reviewState = iota
	reviewStateDecide
)

type ReviewModel struct {
	CommonModel
	proposalService *proposal.Service
	reviewService   *review.Service
	caller          actor.Actor

	state     reviewState
	table     table.Model
	proposals []*proposal.Proposal
	form      *huh.Form

	loading bool
	err     error
	status  string

	// Form bindings
	formDecision string
	formComments string
}

func NewReviewModel(proposalSvc *proposal.Service, reviewSvc *review.Service, caller actor.Actor) ReviewModel {
	columns := []table.Column{
		{Title: "Reference", Width: 42},
		{Title: "Priority", Width: 8},
		{Title: "Items", Width: 6},
		{Title: "Amount", Width: 12},
		{Title: "Submitted", Width: 12},
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

	return ReviewModel{
		proposalService: proposalSvc,
		reviewService:   reviewSvc,
		caller:          caller,
		table:           t,
	}
}

func (m ReviewModel) Title() string { return "Review Proposals" }
func (m ReviewModel) ShortHelp() string {
	if m.state == reviewStateDecide {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | Enter: review | r: refresh"
}

func (m ReviewModel) Init() tea.Cmd {
	return m.loadProposalsCmd()
}

func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadReviewMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.proposals = msg.proposals
		m.refreshTable()
		return m, nil

	case reviewDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Proposal %s", msg.outcome)
		}
		m.state = reviewStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadProposalsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case reviewStateBrowse:
		return m.updateBrowse(msg)
	case reviewStateDecide:
		return m.updateDecide(msg)
	}

	return m, nil
}

func (m ReviewModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadProposalsCmd()
		case "enter":
			return m.enterDecideMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ReviewModel) enterDecideMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.proposals) {
		return m, nil
	}

	m.formDecision = string(review.DecisionApprove)
	m.formComments = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("decision").
				Title("Decision").
				Options(
					huh.NewOption("Approve", string(review.DecisionApprove)),
					huh.NewOption("Reject", string(review.DecisionReject)),
				).
				Value(&m.formDecision),

			huh.NewInput().
				Key("comments").
				Title("Comments").
				Placeholder("Optional comments for the proposer").
				Value(&m.formComments),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = reviewStateDecide
	m.table.Blur()
	return m, m.form.Init()
}

func (m ReviewModel) updateDecide(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = reviewStateBrowse
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

	return m, m.reviewCmd()
}

func (m ReviewModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading submitted proposals...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := "Submitted proposals awaiting review"

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == reviewStateDecide && m.form != nil {
		idx := m.table.Cursor()
		reference := ""
		amount := ""
		if idx >= 0 && idx < len(m.proposals) {
			reference = m.proposals[idx].Reference
			amount = FormatAmount(m.proposals[idx].TotalAmount)
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(54).
			Render(
				fmt.Sprintf("Review %s\n\nRequested: %s\n\n%s", reference, amount, m.form.View()),
			)

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *ReviewModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.proposals))
	for _, p := range m.proposals {
		submitted := ""
		if p.SubmittedAt != nil {
			submitted = FormatDate(*p.SubmittedAt)
		}

		rows = append(rows, table.Row{
			p.Reference,
			string(p.Priority),
			fmt.Sprintf("%d", len(p.Items)),
			FormatAmount(p.TotalAmount),
			submitted,
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadReviewMsg struct {
	proposals []*proposal.Proposal
	err       error
}

func (m ReviewModel) loadProposalsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		proposals, err := m.proposalService.List(ctx, m.caller, proposal.ListFilter{
			Status: new(proposal.StatusSubmitted),
		})

		return loadReviewMsg{proposals: proposals, err: err}
	}
}

type reviewDoneMsg struct {
	outcome proposal.Status
	err     error
}

func (m ReviewModel) reviewCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.proposals) {
		return nil
	}

	id := m.proposals[idx].ID
	decision := review.Decision(m.formDecision)
	comments := m.formComments

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		p, err := m.reviewService.Review(ctx, m.caller, id, decision, comments)
		if err != nil {
			return reviewDoneMsg{err: err}
		}

		return reviewDoneMsg{outcome: p.Status}
	}
}
