package console

import (
	"context"
	"errors"
	"io"
	"os"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

var (
	promptStyle     = lipgloss.NewStyle().Bold(true)
	suggestionStyle = lipgloss.NewStyle().Faint(true)
)

// TeaReader reads lines from a terminal with a line editor.
// Each call runs a short-lived inline Bubble Tea program around a text input
// whose suggestions come from the Completer. Tab accepts the highlighted
// suggestion, Ctrl-N and Ctrl-P cycle through the candidates.
type TeaReader struct {
	in  *os.File
	out io.Writer
}

// NewTeaReader creates a TeaReader reading keys from in and rendering to out.
func NewTeaReader(in *os.File, out io.Writer) *TeaReader {
	return &TeaReader{in: in, out: out}
}

// ReadLine runs the line editor for a single prompt.
func (r *TeaReader) ReadLine(ctx context.Context, prompt string, complete Completer) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", ErrInterrupted
	}

	model := newLineModel(Strip(prompt), complete)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(r.in),
		tea.WithOutput(r.out),
	)

	final, err := program.Run()
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, tea.ErrProgramKilled) {
			return "", ErrInterrupted
		}
		return "", err
	}
	if ctx.Err() != nil {
		return "", ErrInterrupted
	}

	m, ok := final.(*lineModel)
	if !ok {
		return "", errors.New("unexpected line editor state")
	}
	return m.result()
}

// lineModel is the Bubble Tea model behind a single prompt.
type lineModel struct {
	prompt      string
	input       textinput.Model
	complete    Completer
	focusCmd    tea.Cmd
	listAll     bool
	submitted   bool
	interrupted bool
	eof         bool
}

func newLineModel(prompt string, complete Completer) *lineModel {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.ShowSuggestions = complete != nil
	focusCmd := ti.Focus()

	m := &lineModel{prompt: prompt, input: ti, complete: complete, focusCmd: focusCmd}
	m.refreshSuggestions()
	return m
}

func (m *lineModel) refreshSuggestions() {
	if m.complete == nil {
		return
	}
	m.input.SetSuggestions(m.complete(m.input.Value()))
}

func (m *lineModel) Init() tea.Cmd {
	return m.focusCmd
}

func (m *lineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			m.interrupted = true
			return m, tea.Quit
		case "enter":
			m.submitted = true
			return m, tea.Quit
		case "ctrl+d":
			if m.input.Value() == "" {
				m.eof = true
				return m, tea.Quit
			}
		case "tab":
			if m.complete != nil && m.input.Value() == "" {
				m.completeEmpty()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refreshSuggestions()
	return m, cmd
}

func (m *lineModel) View() tea.View {
	if m.submitted || m.interrupted || m.eof {
		// Leave the answered prompt behind, like a plain terminal would
		return tea.NewView(m.prompt + m.input.Value() + "\n")
	}
	view := m.input.View()
	if candidates := m.candidates(); len(candidates) > 1 {
		view += "\n" + suggestionStyle.Render(joinCandidates(candidates))
	}
	return tea.NewView(view)
}

// completeEmpty handles Tab on an empty line: a single key is filled in,
// several are listed under the input.
func (m *lineModel) completeEmpty() {
	all := m.complete("")
	if len(all) == 1 {
		m.input.SetValue(all[0])
		m.input.CursorEnd()
		m.refreshSuggestions()
		return
	}
	m.listAll = true
}

// candidates lists the completions for the current value, for display under the input.
func (m *lineModel) candidates() []string {
	if m.complete == nil {
		return nil
	}
	if m.input.Value() == "" && !m.listAll {
		return nil
	}
	return m.complete(m.input.Value())
}

func (m *lineModel) result() (string, error) {
	switch {
	case m.submitted:
		return m.input.Value(), nil
	case m.eof:
		return "", io.EOF
	default:
		// Ended without Enter, e.g. Ctrl-C or a quit from a signal
		return "", ErrInterrupted
	}
}

func joinCandidates(candidates []string) string {
	const maxShown = 8
	out := ""
	for i, c := range candidates {
		if i == maxShown {
			out += "  …"
			break
		}
		if i > 0 {
			out += "  "
		}
		out += c
	}
	return out
}
