package input

// Input is one frame of player intent. Movement flags are level-triggered
// (held keys); the rest are edge-triggered and true only on the frame the
// key went down.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	ConfirmPressed bool
	MenuPressed    bool
	RestartPressed bool
	QuitPressed    bool
}

// Moving reports whether any movement key is held.
func (in Input) Moving() bool {
	return in.Up || in.Down || in.Left || in.Right
}
