package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type confirmAction int

const (
	confirmClearAll confirmAction = iota
	confirmClearHistory
)

func (a confirmAction) title() string {
	switch a {
	case confirmClearAll:
		return "Clear all items and history?"
	case confirmClearHistory:
		return "Delete the whole history?"
	default:
		return "Are you sure?"
	}
}

// confirmDialog is a yes/no huh form embedded in the main model.
type confirmDialog struct {
	form   *huh.Form
	action confirmAction
	value  *bool
}

func newConfirmDialog(action confirmAction) *confirmDialog {
	value := new(bool)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(action.title()).
				Affirmative("Yes").
				Negative("No").
				Value(value),
		),
	).WithTheme(huh.ThemeCatppuccin()).WithShowHelp(false)

	return &confirmDialog{form: form, action: action, value: value}
}

func (d *confirmDialog) Init() tea.Cmd {
	return d.form.Init()
}

// Update forwards msg to the form. done is set once the user answered or
// aborted; confirmed is only true for an explicit yes.
func (d *confirmDialog) Update(msg tea.Msg) (done, confirmed bool, cmd tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return true, false, nil
	}

	model, cmd := d.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		d.form = f
	}

	switch d.form.State {
	case huh.StateCompleted:
		return true, *d.value, nil
	case huh.StateAborted:
		return true, false, nil
	}
	return false, false, cmd
}

func (d *confirmDialog) View() string {
	return dialogStyle.Render(d.form.View())
}
