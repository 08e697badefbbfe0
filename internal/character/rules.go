// internal/character/rules.go
package character

import (
	"fmt"

	"go-dungeon-arpg/internal/defs"
)

// Rules — таблица допустимых переходов: состояние -> достижимые состояния.
type Rules struct {
	ID      string
	allowed map[Kind]map[Kind]bool
}

// DefaultRules is used for characters without an authored table.
func DefaultRules() *Rules {
	r := &Rules{ID: "default", allowed: make(map[Kind]map[Kind]bool)}
	r.allow(KindIdle, KindMove, KindAttack, KindDodge)
	r.allow(KindMove, KindIdle, KindMove, KindAttack, KindDodge)
	r.allow(KindAttack, KindIdle, KindDodge)
	r.allow(KindDodge, KindIdle)
	return r
}

// NewRules builds a gate from an authored table. Unknown state names are an error.
func NewRules(table *defs.RuleTable) (*Rules, error) {
	if table == nil {
		return DefaultRules(), nil
	}
	r := &Rules{ID: table.ID, allowed: make(map[Kind]map[Kind]bool)}
	for fromName, toNames := range table.Transitions {
		from, ok := ParseKind(fromName)
		if !ok {
			return nil, fmt.Errorf("rule table %s: unknown state %q", table.ID, fromName)
		}
		targets := make([]Kind, 0, len(toNames))
		for _, toName := range toNames {
			to, ok := ParseKind(toName)
			if !ok {
				return nil, fmt.Errorf("rule table %s: unknown state %q", table.ID, toName)
			}
			targets = append(targets, to)
		}
		r.allow(from, targets...)
	}
	return r, nil
}

func (r *Rules) allow(from Kind, to ...Kind) {
	set, ok := r.allowed[from]
	if !ok {
		set = make(map[Kind]bool, len(to))
		r.allowed[from] = set
	}
	for _, k := range to {
		set[k] = true
	}
}

// CanTransition reports whether the table lists to as reachable from from.
func (r *Rules) CanTransition(from, to Kind) bool {
	return r.allowed[from][to]
}
