package view

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/acadfund/acadfund/internal/actor"
	"github.com/acadfund/acadfund/internal/cycle"
)

type CyclesModel struct {
	CommonModel
	cycleService *cycle.Service
	caller       actor.Actor

	table  table.Model
	cycles []*cycle.Cycle

	statusFilterIdx int
	filter          cycle.ListFilter

	loading bool
	err     error
	status  string
}

func NewCyclesModel(cycleSvc *cycle.Service, caller actor.Actor) CyclesModel {
	columns := []table.Column{
		{Title: "Name", Width: 28},
		{Title: "Year", Width: 10},
		{Title: "Status", Width: 8},
		{Title: "Window", Width: 24},
		{Title: "Allocated", Width: 12},
		{Title: "Spent", Width: 12},
		{Title: "Remaining", Width: 12},
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

	filter := cycle.ListFilter{}
	if !caller.SeesAllDepartments() {
		filter.DepartmentID = &caller.DepartmentID
	}

	return CyclesModel{
		cycleService: cycleSvc,
		caller:       caller,
		table:        t,
		filter:       filter,
	}
}

func (m CyclesModel) Title() string { return "Fund Cycles" }
func (m CyclesModel) ShortHelp() string {
	return "Esc: back | s: status filter | a: activate | c: close | r: refresh"
}

func (m CyclesModel) Init() tea.Cmd {
	return m.loadCyclesCmd()
}

func (m CyclesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadCyclesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.cycles = msg.cycles
		m.refreshTable()
		return m, nil

	case transitionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Cycle is now %s", msg.status)
		}
		return m, m.loadCyclesCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCyclesCmd()
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % 4
			m.applyFilter()
			return m, m.loadCyclesCmd()
		case "a":
			return m, m.transitionCmd(m.cycleService.Activate)
		case "c":
			return m, m.transitionCmd(m.cycleService.Close)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m CyclesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading cycles...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	statusLabels := []string{"All", "Draft", "Active", "Closed"}

	header := fmt.Sprintf(
		"Filter: [s] Status: %s | [a] activate | [c] close",
		activeStyle(statusLabels[m.statusFilterIdx]),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *CyclesModel) applyFilter() {
	switch m.statusFilterIdx {
	case 1:
		m.filter.Status = new(cycle.StatusDraft)
	case 2:
		m.filter.Status = new(cycle.StatusActive)
	case 3:
		m.filter.Status = new(cycle.StatusClosed)
	default:
		m.filter.Status = nil
	}
}

func (m *CyclesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.cycles))
	for _, c := range m.cycles {
		rows = append(rows, table.Row{
			c.Name,
			c.AcademicYear,
			string(c.Status),
			FormatDate(c.StartDate) + " - " + FormatDate(c.EndDate),
			FormatAmount(c.AllocatedBudget),
			FormatAmount(c.SpentBudget),
			FormatAmount(c.RemainingBudget()),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadCyclesMsg struct {
	cycles []*cycle.Cycle
	err    error
}

func (m CyclesModel) loadCyclesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		cycles, err := m.cycleService.List(ctx, m.filter)
		return loadCyclesMsg{cycles: cycles, err: err}
	}
}

type transitionMsg struct {
	status cycle.Status
	err    error
}

func (m CyclesModel) transitionCmd(apply func(context.Context, actor.Actor, uuid.UUID) (*cycle.Cycle, error)) tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.cycles) {
		return nil
	}

	id := m.cycles[idx].ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		c, err := apply(ctx, m.caller, id)
		if err != nil {
			return transitionMsg{err: err}
		}

		return transitionMsg{status: c.Status}
	}
}
