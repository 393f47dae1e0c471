package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/felixgeelhaar/taskplanner/internal/plan"
)

// ReviewResult holds the outcome of a breakdown review session
type ReviewResult struct {
	Approved bool
	Reason   string
}

type viewMode int

const (
	listView viewMode = iota
	detailView
)

// reviewModel is the BubbleTea model for breakdown review
type reviewModel struct {
	breakdown     *plan.Breakdown
	cursor        int
	selectedTask  int
	mode          viewMode
	reason        textinput.Model
	editingReason bool
	result        *ReviewResult
	width         int
	height        int
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginLeft(2).
			MarginTop(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginLeft(2)

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("170")).
				Bold(true).
				PaddingLeft(2)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	detailKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true)

	detailValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginLeft(2).
			MarginTop(1)

	approveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	rejectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			MarginLeft(2)
)

func newReviewModel(b *plan.Breakdown) reviewModel {
	ti := textinput.New()
	ti.Placeholder = "why should this breakdown be redone?"
	ti.CharLimit = 200
	ti.Prompt = "  "

	return reviewModel{
		breakdown: b,
		mode:      listView,
		reason:    ti,
	}
}

// Init initializes the model
func (m reviewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.reason.Width = max(20, msg.Width-6)
		return m, nil

	case tea.KeyMsg:
		if m.editingReason {
			return m.updateReason(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.result = &ReviewResult{Approved: false, Reason: "Review cancelled"}
			return m, tea.Quit

		case "up", "k":
			if m.mode == listView && m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "j":
			if m.mode == listView && m.cursor < len(m.breakdown.Tasks)-1 {
				m.cursor++
			}
			return m, nil

		case "enter", "right", "l":
			if m.mode == listView {
				m.selectedTask = m.cursor
				m.mode = detailView
			}
			return m, nil

		case "left", "h", "esc":
			m.mode = listView
			return m, nil

		case "a", "A":
			m.result = &ReviewResult{Approved: true}
			return m, tea.Quit

		case "r", "R":
			m.editingReason = true
			return m, m.reason.Focus()
		}
	}

	return m, nil
}

func (m reviewModel) updateReason(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.editingReason = false
		m.reason.Blur()
		m.result = &ReviewResult{Approved: false, Reason: strings.TrimSpace(m.reason.Value())}
		return m, tea.Quit
	case tea.KeyEsc:
		m.editingReason = false
		m.reason.Blur()
		m.reason.Reset()
		return m, nil
	case tea.KeyCtrlC:
		m.result = &ReviewResult{Approved: false, Reason: "Review cancelled"}
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.reason, cmd = m.reason.Update(msg)
	return m, cmd
}

// View renders the current state
func (m reviewModel) View() string {
	if m.result != nil {
		if m.result.Approved {
			return approveStyle.Render("\n✓ Breakdown approved\n\n")
		}
		reason := m.result.Reason
		if reason == "" {
			reason = "No reason provided"
		}
		return rejectStyle.Render(fmt.Sprintf("\n✗ Breakdown rejected\n  Reason: %s\n\n", reason))
	}

	var b strings.Builder
	tasks := m.breakdown.Tasks

	b.WriteString(titleStyle.Render("📋 Breakdown Review"))
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%d tasks, about %d days", len(tasks), m.breakdown.EstimatedDurationDays)))
	b.WriteString("\n")
	if m.breakdown.Fallback {
		b.WriteString(warnStyle.Render("This is the generic fallback plan."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.mode == listView {
		for i, task := range tasks {
			style := itemStyle
			cursor := "  "
			if i == m.cursor {
				style = selectedItemStyle
				cursor = "→ "
			}

			line := fmt.Sprintf("%s[%d] %s | %s | %dh",
				cursor,
				i+1,
				task.Title,
				task.Priority,
				task.EstimatedDurationHours,
			)
			b.WriteString(style.Render(line))
			b.WriteString("\n")
		}
	} else {
		task := tasks[m.selectedTask]
		b.WriteString(headerStyle.Render(fmt.Sprintf("Task %d of %d", m.selectedTask+1, len(tasks))))
		b.WriteString("\n\n")

		details := []struct {
			key   string
			value string
		}{
			{"Title", task.Title},
			{"Description", task.Description},
			{"Priority", task.Priority.String()},
			{"Estimate", fmt.Sprintf("%d hours", task.EstimatedDurationHours)},
			{"Due", fmt.Sprintf("day %d", task.DueDateOffsetDays)},
			{"Dependencies", fmt.Sprintf("%d tasks", len(task.Dependencies))},
		}

		for _, detail := range details {
			b.WriteString("  ")
			b.WriteString(detailKeyStyle.Render(fmt.Sprintf("%-15s:", detail.key)))
			b.WriteString(" ")
			b.WriteString(detailValueStyle.Render(detail.value))
			b.WriteString("\n")
		}

		if len(task.Dependencies) > 0 {
			b.WriteString("\n  ")
			b.WriteString(detailKeyStyle.Render("Depends On:"))
			b.WriteString("\n")
			for _, dep := range task.Dependencies {
				b.WriteString(fmt.Sprintf("    • [%d] %s\n", dep+1, tasks[dep].Title))
			}
		}
	}

	b.WriteString("\n")

	if m.editingReason {
		b.WriteString(rejectStyle.Render("✗ Rejection Reason:"))
		b.WriteString("\n")
		b.WriteString(m.reason.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter: submit | esc: cancel"))
	} else if m.mode == listView {
		b.WriteString(helpStyle.Render("↑/↓: navigate | enter: view details | a: approve | r: reject | q: quit"))
	} else {
		b.WriteString(helpStyle.Render("h/esc: back to list | a: approve | r: reject | q: quit"))
	}

	return b.String()
}

// RunReview launches an interactive TUI for reviewing a breakdown
func RunReview(b *plan.Breakdown) (*ReviewResult, error) {
	if len(b.Tasks) == 0 {
		return &ReviewResult{Approved: true}, nil
	}

	program := tea.NewProgram(newReviewModel(b))
	finalModel, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("running breakdown review UI: %w", err)
	}

	m, ok := finalModel.(reviewModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type: %T", finalModel)
	}

	if m.result != nil {
		return m.result, nil
	}

	return &ReviewResult{Approved: false, Reason: "Review ended without a decision"}, nil
}
