package tui

// SpinnerModel is the status-line indicator shown while a spin cycle runs.
// It advances once per wheel frame rather than on its own timer.
type SpinnerModel struct {
	frame  int
	frames []string
}

var defaultSpinnerFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

func NewSpinner() SpinnerModel {
	return SpinnerModel{
		frames: defaultSpinnerFrames,
	}
}

func (s SpinnerModel) Advance() SpinnerModel {
	s.frame = (s.frame + 1) % len(s.frames)
	return s
}

func (s SpinnerModel) View() string {
	if len(s.frames) == 0 {
		return ""
	}
	return s.frames[s.frame%len(s.frames)]
}
