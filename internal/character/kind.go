// internal/character/kind.go
package character

// Kind — тип состояния персонажа. Набор закрыт.
type Kind int

const (
	KindIdle Kind = iota
	KindMove
	KindAttack
	KindDodge
)

var kindNames = map[Kind]string{
	KindIdle:   "Idle",
	KindMove:   "Move",
	KindAttack: "Attack",
	KindDodge:  "Dodge",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ParseKind maps an authored state name to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}
