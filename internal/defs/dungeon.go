// internal/defs/dungeon.go
package defs

import "golang.org/x/image/math/f64"

// SpawnDefinition places one character.
type SpawnDefinition struct {
	Character string   `json:"character"`
	Role      Role     `json:"role"`
	Position  f64.Vec2 `json:"position"`
}

// PickupDefinition places an artifact on the floor of a room.
type PickupDefinition struct {
	Artifact string   `json:"artifact"`
	Position f64.Vec2 `json:"position"`
}

// ExitLink names the exit on the other side of a connection.
type ExitLink struct {
	Room string `json:"room"`
	Exit string `json:"exit"`
}

// ExitDefinition describes a doorway of a room.
type ExitDefinition struct {
	ID            string    `json:"id"`
	Direction     Direction `json:"direction"`
	Position      f64.Vec2  `json:"position"`
	TriggerRadius float64   `json:"trigger_radius"`
	ConnectsTo    *ExitLink `json:"connects_to,omitempty"`
}

// RoomDefinition describes one room of the dungeon.
type RoomDefinition struct {
	ID        string             `json:"id"`
	Center    f64.Vec2           `json:"center"`
	Extents   f64.Vec2           `json:"extents"`
	Staircase bool               `json:"staircase"`
	Exits     []ExitDefinition   `json:"exits"`
	Spawns    []SpawnDefinition  `json:"spawns"`
	Pickups   []PickupDefinition `json:"pickups"`
}

// DungeonDefinition is the authored floor layout plus the starting party.
type DungeonDefinition struct {
	StartRoom string            `json:"start_room"`
	Leader    SpawnDefinition   `json:"leader"`
	Minions   []SpawnDefinition `json:"minions"`
	Rooms     []RoomDefinition  `json:"rooms"`
}
