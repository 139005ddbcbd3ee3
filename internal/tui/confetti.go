package tui

import (
	"math/rand/v2"
	"strings"
	"time"

	"spinwheel/internal/spin"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	confettiRows     = 2
	confettiDensity  = 0.25
	confettiInterval = 80 * time.Millisecond
)

var confettiGlyphs = []string{"✦", "✧", "•", "*", "+", "°"}

type confettiTickMsg struct {
	at time.Time
}

// Confetti is the celebration shown while a winner is on display. It is a
// spin.Celebrator: Celebrate only arms the burst, and the host starts the
// animation with Start on its own loop.
type Confetti struct {
	rng      *rand.Rand
	duration time.Duration
	until    time.Time
	armed    bool
	active   bool
	frame    []string
}

func NewConfetti(duration time.Duration, seed uint64) *Confetti {
	return &Confetti{
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		duration: duration,
	}
}

func (c *Confetti) Celebrate(w spin.Winner) {
	c.until = w.ResolvedAt.Add(c.duration)
	c.armed = true
	c.active = true
	c.frame = nil
}

// Start returns the first animation tick after Celebrate, or nil.
func (c *Confetti) Start() tea.Cmd {
	if !c.armed {
		return nil
	}
	c.armed = false
	return c.tick()
}

func (c *Confetti) Active() bool {
	return c.active
}

func (c *Confetti) Update(msg confettiTickMsg) tea.Cmd {
	if !c.active {
		return nil
	}
	if !msg.at.Before(c.until) {
		c.Stop()
		return nil
	}
	c.frame = nil
	return c.tick()
}

// Stop ends the burst immediately.
func (c *Confetti) Stop() {
	c.active = false
	c.armed = false
	c.frame = nil
}

func (c *Confetti) tick() tea.Cmd {
	return tea.Tick(confettiInterval, func(t time.Time) tea.Msg {
		return confettiTickMsg{at: t}
	})
}

// View scatters glyphs across width columns. A frame is stable until the next tick.
func (c *Confetti) View(width int) string {
	if !c.active || width <= 0 {
		return ""
	}
	if c.frame == nil {
		c.frame = c.scatter(width)
	}
	return strings.Join(c.frame, "\n")
}

func (c *Confetti) scatter(width int) []string {
	rows := make([]string, confettiRows)
	for r := range rows {
		var b strings.Builder
		for range width {
			if c.rng.Float64() >= confettiDensity {
				b.WriteString(" ")
				continue
			}
			glyph := confettiGlyphs[c.rng.IntN(len(confettiGlyphs))]
			color := confettiColors[c.rng.IntN(len(confettiColors))]
			b.WriteString(lipgloss.NewStyle().Foreground(color).Render(glyph))
		}
		rows[r] = b.String()
	}
	return rows
}
