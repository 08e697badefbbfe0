// internal/component/pickup.go
package component

import (
	"go-dungeon-arpg/internal/defs"

	"github.com/yohamta/donburi"
	"golang.org/x/image/math/f64"
)

// Pickup — артефакт, лежащий на полу комнаты
type Pickup struct {
	Artifact *defs.ArtifactDefinition
	Position f64.Vec2
	Radius   float64
}

var PickupComponent = donburi.NewComponentType[Pickup]()
