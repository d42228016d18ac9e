package input

// Scripted is a keyboard driven by code instead of hardware, for headless
// runs and tests. Pressed edges last until the next Tick.
type Scripted struct {
	down    map[Action]bool
	pressed map[Action]bool
}

// NewScripted creates a scripted keyboard with no actions active.
func NewScripted() *Scripted {
	return &Scripted{
		down:    make(map[Action]bool),
		pressed: make(map[Action]bool),
	}
}

// Hold marks an action as held until Release is called.
func (s *Scripted) Hold(a Action) {
	if !s.down[a] {
		s.pressed[a] = true
	}
	s.down[a] = true
}

// Release clears a held action.
func (s *Scripted) Release(a Action) {
	delete(s.down, a)
}

// Tap registers a single-frame press of an action.
func (s *Scripted) Tap(a Action) {
	s.pressed[a] = true
}

// Tick clears press edges. Call once after each simulated frame.
func (s *Scripted) Tick() {
	for a := range s.pressed {
		delete(s.pressed, a)
	}
}

func (s *Scripted) Down(a Action) bool    { return s.down[a] || s.pressed[a] }
func (s *Scripted) Pressed(a Action) bool { return s.pressed[a] }
