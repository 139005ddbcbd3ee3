package tui

import (
	"strings"
	"testing"

	"spinwheel/internal/history"
	"spinwheel/internal/wheel"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWheel(t *testing.T, labels ...string) *wheel.Model {
	t.Helper()

	w := wheel.New()
	for _, label := range labels {
		_, err := w.AddItem(label)
		require.NoError(t, err)
	}
	return w
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

// update runs one message through the model and returns the concrete Model.
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok, "Update should return a tui.Model")
	return model, cmd
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()

	for _, r := range s {
		m, _ = update(t, m, keyRunes(string(r)))
	}
	return m
}

func AssertShowsTitle(t *testing.T, view string) {
	t.Helper()
	assert.Contains(t, view, "SPINWHEEL", "View should contain title")
}

func AssertHistoryLine(t *testing.T, view string, e history.Entry) {
	t.Helper()
	assert.Contains(t, view, e.String(), "View should list history entry %q", e.String())
}

// selectionIndicatorOnLine reports whether the selection marker sits on the
// line showing label.
func selectionIndicatorOnLine(bts []byte, label string) bool {
	for line := range strings.SplitSeq(string(bts), "\n") {
		if strings.Contains(line, SelectionIndicator) && strings.Contains(line, label) {
			return true
		}
	}
	return false
}
