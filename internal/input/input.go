// internal/input/input.go
package input

import "golang.org/x/image/math/f64"

// Action — дискретная команда игрока
type Action int

const (
	ActionAttack Action = iota
	ActionRangedAttack
	ActionDodge
	ActionInteract
	ActionPause
	ActionUpgradeHealth
	ActionUpgradeSpeed
	ActionDropArtifact
)

// Provider опрашивается один раз за тик.
type Provider interface {
	// Axis returns the movement axis, length at most 1.
	Axis() f64.Vec2
	// Pressed reports whether the action was triggered this tick.
	Pressed(a Action) bool
}

// Frame is one tick of scripted input.
type Frame struct {
	Axis    f64.Vec2
	Actions []Action
}

// Scripted replays frames, one per Advance. After the last frame it reports no input.
type Scripted struct {
	frames []Frame
	cur    int
}

func NewScripted(frames ...Frame) *Scripted {
	return &Scripted{frames: frames, cur: -1}
}

// Advance moves to the next frame. Call it once per tick before reading.
func (s *Scripted) Advance() {
	if s.cur < len(s.frames) {
		s.cur++
	}
}

func (s *Scripted) frame() (Frame, bool) {
	if s.cur < 0 || s.cur >= len(s.frames) {
		return Frame{}, false
	}
	return s.frames[s.cur], true
}

func (s *Scripted) Axis() f64.Vec2 {
	f, _ := s.frame()
	return f.Axis
}

func (s *Scripted) Pressed(a Action) bool {
	f, ok := s.frame()
	if !ok {
		return false
	}
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Done reports whether every frame was consumed.
func (s *Scripted) Done() bool { return s.cur >= len(s.frames) }
