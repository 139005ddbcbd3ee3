package tui

import "github.com/charmbracelet/lipgloss"

var (
	cyan   = lipgloss.Color("#00FFFF")
	yellow = lipgloss.Color("#FFFF00")
	red    = lipgloss.Color("#FF6666")
	gray   = lipgloss.Color("#808080")

	FocusedBorderColor   = lipgloss.Color("14")
	UnfocusedBorderColor = lipgloss.Color("8")

	confettiColors = []lipgloss.Color{"#FFB7B2", "#B2E2F2", "#B2F2BB"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cyan)

	selectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("237")).
				Bold(true)

	pointerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED4245")).
			Bold(true)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(gray).
				Faint(true)

	underPointerStyle = lipgloss.NewStyle().
				Foreground(yellow).
				Bold(true)

	resultStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFD700")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FFD700")).
			Padding(0, 2)

	statusStyle = lipgloss.NewStyle().
			Foreground(gray)

	noticeStyle = lipgloss.NewStyle().
			Foreground(red).
			Bold(true)

	historyLineStyle = lipgloss.NewStyle().
				Foreground(gray).
				PaddingLeft(1)

	historyAgeStyle = lipgloss.NewStyle().
			Foreground(gray).
			Faint(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(gray).
			MarginTop(1)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(yellow).
			Padding(1, 2)

	appContainerStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)
)
