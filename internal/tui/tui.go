package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"spinwheel/internal/history"
	"spinwheel/internal/spin"
	"spinwheel/internal/wheel"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const (
	defaultFrameInterval = 16 * time.Millisecond

	panelBorderWidth = 2
	inputHeight      = 1
	maxLabelLength   = 64
)

// NoticeMsg shows text on the status line, such as a failed announcement.
type NoticeMsg string

type FocusPanel int

const (
	FocusItems FocusPanel = iota
	FocusInput
)

// board holds what the controller's event handlers write. It is shared by
// pointer so the handlers registered at construction see every Model copy.
type board struct {
	result string
	notice string
}

type Model struct {
	wheel *wheel.Model
	hist  *history.Log
	ctrl  *spin.Controller
	sched *cmdScheduler

	board    *board
	confetti *Confetti
	itemList *ItemListModel
	spinner  SpinnerModel
	confirm  *confirmDialog

	input       textinput.Model
	historyView viewport.Model
	focus       FocusPanel

	width  int
	height int
	layout Layout
	now    func() time.Time

	debugFile *os.File
}

type options struct {
	frame    time.Duration
	settings spin.Settings
	clock    func() time.Time
	handlers []func(spin.Winner)
	seed     uint64
}

type Option func(*options)

func WithSettings(s spin.Settings) Option {
	return func(o *options) { o.settings = s }
}

func WithFrameInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.frame = d
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(o *options) { o.clock = now }
}

// WithWinnerHandler subscribes an extra consumer, such as an announcer, to winners.
func WithWinnerHandler(fn func(spin.Winner)) Option {
	return func(o *options) { o.handlers = append(o.handlers, fn) }
}

// WithSeed fixes the confetti pattern.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

func New(w *wheel.Model, hist *history.Log, opts ...Option) Model {
	o := options{
		frame:    defaultFrameInterval,
		settings: spin.DefaultSettings(),
		clock:    time.Now,
		seed:     uint64(time.Now().UnixNano()),
	}
	for _, opt := range opts {
		opt(&o)
	}

	b := &board{}
	confetti := NewConfetti(o.settings.DisplayDelay, o.seed)
	sched := newCmdScheduler(o.frame)

	ctrlOpts := []spin.Option{
		spin.WithSettings(o.settings),
		spin.WithClock(o.clock),
		spin.WithWinnerHandler(func(win spin.Winner) {
			b.result = "👑 " + win.Label + "!"
		}),
		spin.WithCelebrator(confetti),
	}
	for _, h := range o.handlers {
		ctrlOpts = append(ctrlOpts, spin.WithWinnerHandler(h))
	}

	itemList := NewItemList(w)
	w.Subscribe(itemList.Refresh)

	input := textinput.New()
	input.Placeholder = "New item"
	input.Prompt = "+ "
	input.CharLimit = maxLabelLength

	m := Model{
		wheel:       w,
		hist:        hist,
		ctrl:        spin.New(w, hist, sched, ctrlOpts...),
		sched:       sched,
		board:       b,
		confetti:    confetti,
		itemList:    itemList,
		spinner:     NewSpinner(),
		input:       input,
		historyView: viewport.New(0, 0),
		now:         o.clock,
	}
	itemList.Refresh()

	if debugPath := os.Getenv("SPINWHEEL_DEBUG"); debugPath != "" {
		if f, err := os.OpenFile(debugPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644); err == nil {
			m.debugFile = f
		}
	}

	return m
}

func (m Model) debugLog(format string, args ...any) {
	if m.debugFile != nil {
		fmt.Fprintf(m.debugFile, format+"\n", args...)
	}
}

func (m *Model) Close() {
	if m.debugFile != nil {
		m.debugFile.Close()
		m.debugFile = nil
	}
}

// Labels returns the items left on the wheel.
func (m Model) Labels() []string {
	return m.wheel.Labels()
}

func (m Model) Phase() spin.Phase {
	return m.ctrl.Phase()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case tickMsg, confettiTickMsg:
	default:
		m.debugLog("msg: %T", msg)
	}

	if m.confirm != nil {
		if _, isKey := msg.(tea.KeyMsg); isKey {
			return m.updateConfirm(msg)
		}
	}

	switch msg := msg.(type) {
	case tickMsg:
		before := m.ctrl.Phase()
		m.ctrl.Tick(msg.at)
		m.spinner = m.spinner.Advance()
		m.itemList.SetPointer(m.wheel.SectorAt())

		if after := m.ctrl.Phase(); after != before {
			m.debugLog("phase: %s -> %s (angle %.3f)", before, after, m.wheel.Angle())
			m.refreshHistory()
		}
		return m, tea.Batch(m.sched.take(), m.confetti.Start())

	case confettiTickMsg:
		return m, m.confetti.Update(msg)

	case NoticeMsg:
		m.board.notice = string(msg)
		m.debugLog("notice: %s", msg)
		return m, nil

	case tea.KeyMsg:
		if m.focus == FocusInput {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	}

	if m.confirm != nil {
		return m.updateConfirm(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case " ", "s":
		return m.toggleSpin()

	case "a", "i", "tab":
		m.focus = FocusInput
		return m, m.input.Focus()

	case "d", "x", "delete", "backspace":
		if err := m.wheel.RemoveItem(m.itemList.Selected()); err != nil {
			m.debugLog("remove: %v", err)
		}
		return m, nil

	case "C":
		return m.openConfirm(confirmClearAll)

	case "H":
		return m.openConfirm(confirmClearHistory)

	case "pgup", "[":
		m.historyView.ScrollUp(max(m.historyView.Height, 1))
		return m, nil

	case "pgdown", "]":
		m.historyView.ScrollDown(max(m.historyView.Height, 1))
		return m, nil
	}

	m.itemList.Update(msg)
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc", "tab":
		m.focus = FocusItems
		m.input.Blur()
		return m, nil

	case "enter":
		m.addItem(m.input.Value())
		m.input.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) addItem(label string) {
	if _, err := m.wheel.AddItem(label); err != nil {
		if errors.Is(err, wheel.ErrEmptyLabel) {
			return
		}
		m.board.notice = err.Error()
		return
	}
	m.board.notice = ""
	m.itemList.Select(m.wheel.Len() - 1)
}

func (m Model) toggleSpin() (tea.Model, tea.Cmd) {
	switch m.ctrl.Phase() {
	case spin.Idle:
		if err := m.ctrl.Start(); err != nil {
			if errors.Is(err, spin.ErrTooFewItems) {
				m.board.notice = "Add at least 2 items to spin"
			}
			m.debugLog("start: %v", err)
			return m, nil
		}
		m.board.notice = ""
		m.board.result = ""
		m.confetti.Stop()
		return m, m.sched.take()

	case spin.Spinning:
		if err := m.ctrl.Stop(); err != nil {
			m.debugLog("stop: %v", err)
		}
	}
	return m, nil
}

func (m Model) openConfirm(action confirmAction) (tea.Model, tea.Cmd) {
	m.confirm = newConfirmDialog(action)
	return m, m.confirm.Init()
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	done, confirmed, cmd := m.confirm.Update(msg)
	if !done {
		return m, cmd
	}

	action := m.confirm.action
	m.confirm = nil
	if confirmed {
		m.applyConfirm(action)
	}
	return m, nil
}

func (m *Model) applyConfirm(action confirmAction) {
	switch action {
	case confirmClearAll:
		m.wheel.Clear()
		m.hist.Clear()
		m.board.result = ""
		m.confetti.Stop()
	case confirmClearHistory:
		m.hist.Clear()
	}
	m.refreshHistory()
}

func (m *Model) resize() {
	m.layout = NewLayout(m.width-4, m.height-2)

	listWidth, listHeight, histHeight := m.sidePanelSizes()
	m.itemList.SetSize(listWidth, listHeight)
	m.input.Width = max(listWidth-4, 8)
	m.historyView.Width = listWidth
	m.historyView.Height = histHeight
	m.refreshHistory()
}

// sidePanelSizes splits the right column between the item list and history.
func (m Model) sidePanelSizes() (width, listHeight, historyHeight int) {
	if m.layout.IsTwoColumn() {
		width = m.layout.RightWidth - panelBorderWidth
		usable := max(m.layout.Height-4, 6)
		listHeight = max(usable*3/5-panelBorderWidth-inputHeight-1, 2)
		historyHeight = max(usable-listHeight-inputHeight-1-2*panelBorderWidth, 2)
		return width, listHeight, historyHeight
	}

	width = max(m.layout.Width-panelBorderWidth, 10)
	return width, 6, 4
}

func (m *Model) refreshHistory() {
	entries := m.hist.Entries()
	if len(entries) == 0 {
		m.historyView.SetContent(placeholderStyle.Render("No winners yet"))
		return
	}

	now := m.now()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = historyLineStyle.Render(e.String()) + " " + historyAgeStyle.Render(humanize.RelTime(e.At, now, "ago", "from now"))
	}
	m.historyView.SetContent(strings.Join(lines, "\n"))
	m.historyView.GotoBottom()
}

func (m Model) View() string {
	var content string
	if m.layout.IsTwoColumn() {
		content = m.renderTwoColumn()
	} else {
		content = m.renderSingleColumn()
	}

	if m.confirm != nil {
		content += "\n" + m.confirm.View()
	}

	if m.width > 0 && m.height > 0 {
		return appContainerStyle.Render(content)
	}
	return content
}

func (m Model) renderWheelContent(width int) string {
	var s strings.Builder

	radius := m.layout.WheelRadius()
	s.WriteString(renderWheel(m.wheel.Labels(), m.wheel.Angle(), m.wheel.Palette(), radius))
	s.WriteString("\n\n")

	if idx := m.wheel.SectorAt(); idx >= 0 {
		item, _ := m.wheel.At(idx)
		s.WriteString(pointerStyle.Render(pointerGlyph) + " " + underPointerStyle.Render(item.Label))
		s.WriteString("\n")
	}

	if m.board.result != "" {
		s.WriteString(resultStyle.Render(m.board.result))
		s.WriteString("\n")
	}
	if confetti := m.confetti.View(max(width, 10)); confetti != "" {
		s.WriteString(confetti)
		s.WriteString("\n")
	}

	s.WriteString(m.statusLine())
	if m.board.notice != "" {
		s.WriteString("\n")
		s.WriteString(noticeStyle.Render(m.board.notice))
	}
	return s.String()
}

func (m Model) statusLine() string {
	phase := m.ctrl.Phase()
	switch phase {
	case spin.Idle:
		if m.ctrl.CanStart() {
			return statusStyle.Render("Ready • press space to spin")
		}
		return statusStyle.Render("Idle")
	case spin.Spinning:
		return statusStyle.Render(m.spinner.View() + " Spinning • press space to stop")
	default:
		return statusStyle.Render(m.spinner.View() + " " + strings.ToUpper(phase.String()[:1]) + phase.String()[1:] + "…")
	}
}

func (m Model) renderSideContent() (items, hist string) {
	var s strings.Builder
	s.WriteString(m.itemList.View())
	s.WriteString("\n\n")
	s.WriteString(m.input.View())
	return s.String(), m.historyView.View()
}

func (m Model) renderTwoColumn() string {
	left := m.layout.LeftWidth
	right := m.layout.RightWidth
	_, listHeight, histHeight := m.sidePanelSizes()

	itemsBorder := UnfocusedBorderColor
	if m.focus == FocusInput {
		itemsBorder = FocusedBorderColor
	}

	wheelPanel := RenderPanel(Panel{
		Title:       "SPINWHEEL",
		Content:     m.renderWheelContent(left - 4),
		Width:       left,
		Height:      m.layout.Height - 2,
		BorderColor: FocusedBorderColor,
		Focused:     true,
	})

	items, hist := m.renderSideContent()
	itemsPanel := RenderPanel(Panel{
		Title:       fmt.Sprintf("Items (%d)", m.wheel.Len()),
		Content:     items,
		Width:       right,
		Height:      listHeight + inputHeight + 1 + panelBorderWidth,
		BorderColor: itemsBorder,
		Focused:     true,
	})
	historyPanel := RenderPanel(Panel{
		Title:       fmt.Sprintf("History (%d)", m.hist.Len()),
		Content:     hist,
		Width:       right,
		Height:      histHeight + panelBorderWidth,
		BorderColor: UnfocusedBorderColor,
		Focused:     true,
	})

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		wheelPanel,
		lipgloss.JoinVertical(lipgloss.Left, itemsPanel, historyPanel),
	)
	return panels + "\n" + m.helpText()
}

func (m Model) renderSingleColumn() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("SPINWHEEL"))
	s.WriteString("\n\n")
	s.WriteString(m.renderWheelContent(m.layout.Width))
	s.WriteString("\n\n")

	items, hist := m.renderSideContent()
	s.WriteString(titleStyle.Render(fmt.Sprintf("Items (%d)", m.wheel.Len())))
	s.WriteString("\n")
	s.WriteString(items)
	s.WriteString("\n\n")
	s.WriteString(titleStyle.Render(fmt.Sprintf("History (%d)", m.hist.Len())))
	s.WriteString("\n")
	s.WriteString(hist)
	s.WriteString("\n")
	s.WriteString(m.helpText())
	return s.String()
}

func (m Model) helpText() string {
	if m.focus == FocusInput {
		return helpStyle.Render("enter add • esc done • ctrl+c quit")
	}
	return helpStyle.Render("space spin/stop • a add • d delete • j/k move • C clear all • H clear history • q quit")
}
