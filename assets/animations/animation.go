package animations

// Animation steps through key frames, holding each one for its own number
// of ticks.
type Animation struct {
	Durations   []int // ticks each key frame is shown for
	tickCounter int
	frame       int
	Looped      bool
}

// Update advances the animation by one tick. Looped is set on the tick the
// last key frame runs out.
func (a *Animation) Update() {
	if len(a.Durations) == 0 {
		return
	}

	a.Looped = false
	a.tickCounter++
	if a.tickCounter < a.Durations[a.frame] {
		return
	}

	a.tickCounter = 0
	a.frame++
	if a.frame >= len(a.Durations) {
		a.Looped = true
		a.frame = 0
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = 0
	a.tickCounter = 0
	a.Looped = false
}

func NewAnimation(durations ...int) *Animation {
	return &Animation{
		Durations: durations,
	}
}
