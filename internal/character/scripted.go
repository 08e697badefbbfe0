// internal/character/scripted.go
package character

import (
	"context"

	pkgutils "go-dungeon-arpg/pkg/utils"

	"golang.org/x/image/math/f64"
)

// ScriptedMove ведёт персонажа к точке по одному шагу за тик (катсцены,
// переходы между комнатами). Скорость падает пропорционально оставшемуся пути.
type ScriptedMove struct {
	Target           f64.Vec2
	StoppingDistance float64

	original float64
	started  bool
	done     bool
}

func NewScriptedMove(target f64.Vec2, stoppingDistance float64) *ScriptedMove {
	return &ScriptedMove{Target: target, StoppingDistance: stoppingDistance}
}

// Done reports whether the task finished or was cancelled.
func (m *ScriptedMove) Done() bool { return m.done }

// Step продвигает задачу на один тик. Возвращает true, когда персонаж дошёл
// или задача отменена; при отмене через ctx возвращается ctx.Err().
func (m *ScriptedMove) Step(ctx context.Context, c *Character) (bool, error) {
	if m.done {
		return true, nil
	}
	if err := ctx.Err(); err != nil {
		m.Cancel(c)
		return true, err
	}
	if !c.Valid() || c.IsDead() {
		m.done = true
		return true, nil
	}

	pos := c.Position()
	remaining := pkgutils.Distance(m.Target, pos)
	if !m.started {
		m.started = true
		m.original = remaining
	}
	if remaining <= m.StoppingDistance {
		m.done = true
		c.Stop()
		c.ForceIdle()
		return true, nil
	}

	modifier := 1.0
	if m.original > 0 {
		modifier = remaining / m.original
	}
	c.MoveToward(pkgutils.Normalize(pkgutils.Sub(m.Target, pos)), modifier)
	return false, nil
}

// Cancel прерывает задачу и возвращает персонажа в Idle с нулевой скоростью.
func (m *ScriptedMove) Cancel(c *Character) {
	m.done = true
	c.ForceIdle()
	c.UpdateAxis(f64.Vec2{})
}
