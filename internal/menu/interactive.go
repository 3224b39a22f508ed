package menu

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	cursorStyle   = lipgloss.NewStyle().Bold(true)
	descStyle     = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
)

// interactiveMenu is the raw-key front-end, backed by bubbletea.
type interactiveMenu struct {
	in  io.Reader
	out io.Writer
}

func newInteractive(in io.Reader, out io.Writer) Menu {
	return &interactiveMenu{in: in, out: out}
}

func (m *interactiveMenu) Run() (Selection, error) {
	prog := tea.NewProgram(newModel(), tea.WithInput(m.in), tea.WithOutput(m.out))

	final, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("running selection menu: %w", err)
	}

	result := final.(model)
	if result.cancelled {
		return nil, ErrCancelled
	}
	return result.selected, nil
}

// model is the bubbletea state for the checkbox list. States: selecting
// until enter (confirmed) or esc/ctrl+c (cancelled).
type model struct {
	ops       []Operation
	cursor    int
	selected  Selection
	confirmed bool
	cancelled bool
}

func newModel() model {
	return model{
		ops:      Operations(),
		selected: make(Selection),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		// Wrap around at the ends.
		m.cursor = (m.cursor - 1 + len(m.ops)) % len(m.ops)
	case "down", "j":
		m.cursor = (m.cursor + 1) % len(m.ops)
	case " ":
		op := m.ops[m.cursor]
		m.selected[op] = !m.selected[op]
	case "enter":
		m.confirmed = true
		return m, tea.Quit
	case "esc", "q", "ctrl+c":
		m.cancelled = true
		return m, tea.Quit
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("UNSTYLE") + "\n\n")
	b.WriteString(helpStyle.Render("up/down move - space toggle - enter continue - esc quit") + "\n\n")

	for i, op := range m.ops {
		box := "[ ]"
		if m.selected[op] {
			box = "[*]"
		}

		line := fmt.Sprintf("  %s %s", box, op.Title())
		if i == m.cursor {
			line = cursorStyle.Render("> " + line[2:])
		}
		b.WriteString(line + "\n")
		b.WriteString("      " + descStyle.Render(op.Description()) + "\n")
	}

	var chosen []string
	for _, op := range m.ops {
		if m.selected[op] {
			chosen = append(chosen, op.Title())
		}
	}
	summary := "(none)"
	if len(chosen) > 0 {
		summary = strings.Join(chosen, ", ")
	}
	b.WriteString("\n" + selectedStyle.Render("Selected: ") + summary + "\n")

	return b.String()
}
