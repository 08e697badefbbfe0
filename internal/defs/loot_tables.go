// internal/defs/loot_tables.go
package defs

import "fmt"

// LootEntry представляет одну запись в таблице выпадения.
// Weight - относительный шанс выпадения артефакта.
type LootEntry struct {
	ArtifactID string `json:"artifact"`
	Weight     int    `json:"weight"`
}

// LootTable описывает, что может выпасть из врага после смерти.
// Chance - вероятность, что выпадет хоть что-то.
type LootTable struct {
	ID      string      `json:"id"`
	Chance  float64     `json:"chance"`
	Entries []LootEntry `json:"entries"`
}

func (t *LootTable) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("loot table without id")
	}
	if t.Chance < 0 || t.Chance > 1 {
		return fmt.Errorf("loot table %s: chance must be within [0, 1]", t.ID)
	}
	for _, e := range t.Entries {
		if e.Weight < 0 {
			return fmt.Errorf("loot table %s: negative weight for %q", t.ID, e.ArtifactID)
		}
	}
	return nil
}
