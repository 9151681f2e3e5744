package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bookline-admin/res/schedule"
	"bookline-admin/sys/graphql/scalar"
)

const (
	colorAccent    = "#A78BFA"
	colorError     = "#EF4444"
	colorHelpText  = "#6D7383"
	colorSecondary = "#B1B8C7"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorAccent)).
			MarginBottom(1)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorAccent))

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorSecondary))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorHelpText)).
			Italic(true)

	errorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorError)).
			Padding(1, 2)
)

// Mode represents what the editor screen is currently doing
type Mode int

const (
	ModeList Mode = iota
	ModeAdd
)

// PeriodsModel is the TUI model for editing a business's opening periods
type PeriodsModel struct {
	ctx    context.Context
	editor *schedule.Editor

	mode   Mode
	cursor int
	inputs []textinput.Model // 0: start date, 1: end date
	focus  int

	width  int
	height int

	busy   bool
	errMsg string

	quitting bool
}

// Messages produced by editor commands
type loadedMsg struct{}
type savedMsg struct{}
type opErrMsg struct{ err error }

// NewPeriodsModel creates the opening periods editor screen
func NewPeriodsModel(ctx context.Context, editor *schedule.Editor) PeriodsModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 14
		inputs[i].CharLimit = 10
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorSecondary))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorHelpText))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(colorAccent))
	}
	inputs[0].Placeholder = "2024-06-01"
	inputs[1].Placeholder = "2024-06-10"

	return PeriodsModel{
		ctx:    ctx,
		editor: editor,
		inputs: inputs,
	}
}

// Init loads the current collection before the first render
func (m PeriodsModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadCmd())
}

func (m PeriodsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		if err := m.editor.Load(m.ctx); err != nil {
			return opErrMsg{err: err}
		}
		return loadedMsg{}
	}
}

func (m PeriodsModel) appendCmd(start, end scalar.Date) tea.Cmd {
	return func() tea.Msg {
		if err := m.editor.Append(m.ctx, start, end); err != nil {
			return opErrMsg{err: err}
		}
		return savedMsg{}
	}
}

func (m PeriodsModel) removeCmd(index int) tea.Cmd {
	return func() tea.Msg {
		if err := m.editor.RemoveAt(m.ctx, index); err != nil {
			return opErrMsg{err: err}
		}
		return savedMsg{}
	}
}

// Update handles messages
func (m PeriodsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loadedMsg, savedMsg:
		m.busy = false
		if m.cursor >= len(m.editor.Periods()) {
			m.cursor = len(m.editor.Periods()) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case opErrMsg:
		m.busy = false
		m.errMsg = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		// The error modal swallows everything until dismissed
		if m.errMsg != "" {
			switch msg.String() {
			case "ctrl+c":
				m.quitting = true
				return m, tea.Quit
			case "enter", "esc":
				m.errMsg = ""
			}
			return m, nil
		}

		// While a save is in flight only quitting is allowed
		if m.busy {
			if msg.String() == "ctrl+c" {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}

		if m.mode == ModeAdd {
			return m.updateAdd(msg)
		}
		return m.updateList(msg)
	}

	if m.mode == ModeAdd {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m PeriodsModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.editor.Periods())-1 {
			m.cursor++
		}

	case "a":
		m.mode = ModeAdd
		m.focus = 0
		m.inputs[0].SetValue("")
		m.inputs[1].SetValue("")
		m.inputs[0].Focus()
		m.inputs[1].Blur()
		return m, textinput.Blink

	case "d", "x":
		if len(m.editor.Periods()) == 0 {
			return m, nil
		}
		m.busy = true
		return m, m.removeCmd(m.cursor)

	case "r":
		m.busy = true
		return m, m.loadCmd()
	}
	return m, nil
}

func (m PeriodsModel) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		m.mode = ModeList
		m.inputs[m.focus].Blur()
		return m, nil

	case "tab", "shift+tab", "up", "down":
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % 2
		m.inputs[m.focus].Focus()
		return m, textinput.Blink

	case "enter":
		if m.focus == 0 {
			m.inputs[0].Blur()
			m.focus = 1
			m.inputs[1].Focus()
			return m, textinput.Blink
		}

		start, end, err := m.parseRange()
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		if err := schedule.ValidateRange(start, end); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}

		m.mode = ModeList
		m.inputs[1].Blur()
		m.busy = true
		return m, m.appendCmd(start, end)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m PeriodsModel) parseRange() (scalar.Date, scalar.Date, error) {
	startRaw := strings.TrimSpace(m.inputs[0].Value())
	endRaw := strings.TrimSpace(m.inputs[1].Value())
	if startRaw == "" || endRaw == "" {
		return scalar.Date{}, scalar.Date{}, schedule.ErrMissingField
	}

	start, err := scalar.ParseDate(startRaw)
	if err != nil {
		return scalar.Date{}, scalar.Date{}, err
	}
	end, err := scalar.ParseDate(endRaw)
	if err != nil {
		return scalar.Date{}, scalar.Date{}, err
	}
	return start, end, nil
}

// View renders the editor screen
func (m PeriodsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Opening Periods"))
	b.WriteString("\n\n")

	periods := m.editor.Periods()
	if len(periods) == 0 {
		b.WriteString(helpStyle.Render("No opening periods yet. Press 'a' to add one."))
		b.WriteString("\n")
	}
	for i, p := range periods {
		line := fmt.Sprintf("%-12s → %-12s", p.Start, p.End)
		if i == m.cursor && m.mode == ModeList {
			b.WriteString(cursorStyle.Render("▶ " + line))
		} else {
			b.WriteString(rowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.busy:
		b.WriteString(helpStyle.Render("Saving…"))
		b.WriteString("\n")

	case m.mode == ModeAdd:
		b.WriteString("Start date\n")
		b.WriteString(m.inputs[0].View())
		b.WriteString("\n\nEnd date\n")
		b.WriteString(m.inputs[1].View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("Enter: confirm | Tab: switch field | Esc: back"))

	default:
		b.WriteString(helpStyle.Render("a: add | d: remove | r: reload | ↑/↓: move | q: quit"))
	}

	content := b.String()

	if m.errMsg != "" {
		modal := errorBoxStyle.Render(m.errMsg + "\n\n" + helpStyle.Render("Enter to dismiss"))
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
		}
		return modal
	}

	return content
}
