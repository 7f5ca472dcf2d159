package console

import (
	"errors"
	"io"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prefixCompleter(keys ...string) Completer {
	return func(prefix string) []string {
		var out []string
		for _, k := range keys {
			if strings.HasPrefix(k, prefix) {
				out = append(out, k)
			}
		}
		return out
	}
}

func typeText(m *lineModel, text string) {
	for _, r := range text {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestLineModelSubmit(t *testing.T) {
	m := newLineModel("Enter key: ", nil)
	typeText(m, "FOO")

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	line, err := m.result()
	require.NoError(t, err)
	assert.Equal(t, "FOO", line)
	assert.Contains(t, m.View().Content, "Enter key: FOO")
}

func TestLineModelTabCompletes(t *testing.T) {
	m := newLineModel("Enter key: ", prefixCompleter("DATABASE_URL", "API_KEY"))
	typeText(m, "DA")

	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	line, err := m.result()
	require.NoError(t, err)
	assert.Equal(t, "DATABASE_URL", line)
}

func TestLineModelCtrlC(t *testing.T) {
	m := newLineModel("Enter key: ", nil)
	typeText(m, "partial")

	m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})

	_, err := m.result()
	assert.True(t, errors.Is(err, ErrInterrupted))
}

func TestLineModelCtrlDOnEmptyLine(t *testing.T) {
	m := newLineModel("Choice: ", nil)

	m.Update(tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl})

	_, err := m.result()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestLineModelQuitWithoutEnter(t *testing.T) {
	m := newLineModel("Are you sure you want to delete FOO? (y/N): ", nil)
	typeText(m, "y")

	m.Update(tea.QuitMsg{})

	line, err := m.result()
	assert.True(t, errors.Is(err, ErrInterrupted))
	assert.Empty(t, line)
}

func TestLineModelTabOnEmptyListsKeys(t *testing.T) {
	m := newLineModel("Enter key to edit: ", prefixCompleter("DATABASE_URL", "API_KEY"))
	assert.Empty(t, m.candidates())

	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})

	assert.Equal(t, []string{"DATABASE_URL", "API_KEY"}, m.candidates())
	assert.Contains(t, m.View().Content, "DATABASE_URL  API_KEY")
	assert.Empty(t, m.input.Value())
}

func TestLineModelTabOnEmptyFillsSingleKey(t *testing.T) {
	m := newLineModel("Enter key to delete: ", prefixCompleter("ONLY"))

	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	line, err := m.result()
	require.NoError(t, err)
	assert.Equal(t, "ONLY", line)
}

func TestJoinCandidates(t *testing.T) {
	assert.Equal(t, "A  B", joinCandidates([]string{"A", "B"}))
	many := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}
	assert.Equal(t, "1  2  3  4  5  6  7  8  …", joinCandidates(many))
}
