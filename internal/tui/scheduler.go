package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg carries the frame timestamp into spin.Controller.Tick.
type tickMsg struct {
	at time.Time
}

// cmdScheduler turns controller tick requests into tea.Tick commands. The
// controller makes at most one request per call, which Update drains with take.
type cmdScheduler struct {
	frame   time.Duration
	pending tea.Cmd
}

func newCmdScheduler(frame time.Duration) *cmdScheduler {
	return &cmdScheduler{frame: frame}
}

func (s *cmdScheduler) RequestFrame() {
	s.pending = tickAfter(s.frame)
}

func (s *cmdScheduler) RequestAfter(d time.Duration) {
	s.pending = tickAfter(d)
}

func (s *cmdScheduler) take() tea.Cmd {
	cmd := s.pending
	s.pending = nil
	return cmd
}

func tickAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg{at: t}
	})
}
