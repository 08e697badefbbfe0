// internal/component/player.go
package component

import "github.com/yohamta/donburi"

// Leader помечает управляемого игроком лидера отряда.
type Leader struct{}

// Minion помечает члена отряда, следующего за лидером.
type Minion struct {
	Slot int // Порядок вступления, задаёт место в строю
}

var (
	LeaderComponent = donburi.NewComponentType[Leader]()
	MinionComponent = donburi.NewComponentType[Minion]()
)
