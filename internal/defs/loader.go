// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
)

// File names inside a data directory.
const (
	AttacksFile    = "attacks.json"
	CharactersFile = "characters.json"
	RulesFile      = "rules.json"
	ArtifactsFile  = "artifacts.json"
	DungeonFile    = "dungeon.json"
	LootFile       = "loot_tables.json"
)

// Library holds every definition, keyed by id. It is read-only after loading.
type Library struct {
	Attacks    map[string]*AttackDefinition
	Characters map[string]*CharacterDefinition
	Rules      map[string]*RuleTable
	Artifacts  map[string]*ArtifactDefinition
	Loot       map[string]*LootTable
	Dungeon    *DungeonDefinition
}

// identified is implemented by every list-shaped definition file entry.
type identified interface {
	*AttackDefinition | *CharacterDefinition | *RuleTable | *ArtifactDefinition | *LootTable
}

func idOf[T identified](def T) string {
	switch d := any(def).(type) {
	case *AttackDefinition:
		return d.ID
	case *CharacterDefinition:
		return d.ID
	case *RuleTable:
		return d.ID
	case *ArtifactDefinition:
		return d.ID
	case *LootTable:
		return d.ID
	}
	return ""
}

// loadList reads a JSON array of definitions and indexes it by id.
func loadList[T identified](fsys fs.FS, path string) (map[string]T, error) {
	file, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file %s: %w", path, err)
	}

	var list []T
	if err := json.Unmarshal(file, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions file %s: %w", path, err)
	}

	library := make(map[string]T, len(list))
	for _, def := range list {
		id := idOf(def)
		if _, dup := library[id]; dup {
			return nil, fmt.Errorf("%s: duplicate id %q", path, id)
		}
		library[id] = def
	}
	return library, nil
}

// LoadLibrary reads every definition file from fsys, validates the entries and
// resolves the references between them.
func LoadLibrary(fsys fs.FS) (*Library, error) {
	lib := &Library{}
	var err error

	if lib.Attacks, err = loadList[*AttackDefinition](fsys, AttacksFile); err != nil {
		return nil, err
	}
	if lib.Characters, err = loadList[*CharacterDefinition](fsys, CharactersFile); err != nil {
		return nil, err
	}
	if lib.Rules, err = loadList[*RuleTable](fsys, RulesFile); err != nil {
		return nil, err
	}
	if lib.Artifacts, err = loadList[*ArtifactDefinition](fsys, ArtifactsFile); err != nil {
		return nil, err
	}
	// Таблицы выпадения необязательны.
	lib.Loot, err = loadList[*LootTable](fsys, LootFile)
	if errors.Is(err, fs.ErrNotExist) {
		lib.Loot, err = map[string]*LootTable{}, nil
	}
	if err != nil {
		return nil, err
	}

	file, err := fs.ReadFile(fsys, DungeonFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read dungeon file: %w", err)
	}
	lib.Dungeon = &DungeonDefinition{}
	if err := json.Unmarshal(file, lib.Dungeon); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dungeon file: %w", err)
	}

	if err := lib.link(); err != nil {
		return nil, err
	}

	log.Printf("Loader: %d attacks, %d characters, %d rule tables, %d artifacts, %d loot tables, %d rooms",
		len(lib.Attacks), len(lib.Characters), len(lib.Rules), len(lib.Artifacts), len(lib.Loot), len(lib.Dungeon.Rooms))
	return lib, nil
}

// link validates definitions and resolves id references into pointers.
func (l *Library) link() error {
	for _, atk := range l.Attacks {
		if err := atk.Validate(); err != nil {
			return err
		}
	}
	for _, art := range l.Artifacts {
		if err := art.Validate(); err != nil {
			return err
		}
	}
	for _, table := range l.Loot {
		if err := table.Validate(); err != nil {
			return err
		}
		for _, e := range table.Entries {
			if _, ok := l.Artifacts[e.ArtifactID]; !ok {
				return fmt.Errorf("loot table %s: unknown artifact %q", table.ID, e.ArtifactID)
			}
		}
	}
	for _, ch := range l.Characters {
		if err := ch.Validate(); err != nil {
			return err
		}
		if ch.MeleeAttackID != "" {
			atk, ok := l.Attacks[ch.MeleeAttackID]
			if !ok {
				return fmt.Errorf("character %s: unknown melee attack %q", ch.ID, ch.MeleeAttackID)
			}
			ch.MeleeAttack = atk
		}
		if ch.RangedAttackID != "" {
			atk, ok := l.Attacks[ch.RangedAttackID]
			if !ok {
				return fmt.Errorf("character %s: unknown ranged attack %q", ch.ID, ch.RangedAttackID)
			}
			ch.RangedAttack = atk
		}
		if ch.RulesID != "" {
			rules, ok := l.Rules[ch.RulesID]
			if !ok {
				return fmt.Errorf("character %s: unknown rule table %q", ch.ID, ch.RulesID)
			}
			ch.Rules = rules
		}
		if ch.LootID != "" {
			table, ok := l.Loot[ch.LootID]
			if !ok {
				return fmt.Errorf("character %s: unknown loot table %q", ch.ID, ch.LootID)
			}
			ch.Loot = table
		}
	}

	if l.Dungeon == nil {
		return nil
	}
	rooms := make(map[string]*RoomDefinition, len(l.Dungeon.Rooms))
	for i := range l.Dungeon.Rooms {
		rooms[l.Dungeon.Rooms[i].ID] = &l.Dungeon.Rooms[i]
	}
	if _, ok := rooms[l.Dungeon.StartRoom]; !ok && len(rooms) > 0 {
		return fmt.Errorf("dungeon: unknown start room %q", l.Dungeon.StartRoom)
	}
	spawns := append([]SpawnDefinition{l.Dungeon.Leader}, l.Dungeon.Minions...)
	for _, room := range rooms {
		spawns = append(spawns, room.Spawns...)
		for _, pk := range room.Pickups {
			if _, ok := l.Artifacts[pk.Artifact]; !ok {
				return fmt.Errorf("room %s: unknown artifact %q", room.ID, pk.Artifact)
			}
		}
		for _, ex := range room.Exits {
			if ex.ConnectsTo == nil {
				continue
			}
			other, ok := rooms[ex.ConnectsTo.Room]
			if !ok {
				return fmt.Errorf("room %s exit %s: unknown room %q", room.ID, ex.ID, ex.ConnectsTo.Room)
			}
			if !other.hasExit(ex.ConnectsTo.Exit) {
				return fmt.Errorf("room %s exit %s: room %s has no exit %q", room.ID, ex.ID, other.ID, ex.ConnectsTo.Exit)
			}
		}
	}
	for _, sp := range spawns {
		if sp.Character == "" {
			continue
		}
		if _, ok := l.Characters[sp.Character]; !ok {
			return fmt.Errorf("dungeon: unknown character %q", sp.Character)
		}
	}
	return nil
}

func (r *RoomDefinition) hasExit(id string) bool {
	for _, ex := range r.Exits {
		if ex.ID == id {
			return true
		}
	}
	return false
}

// Character returns a character definition by id.
func (l *Library) Character(id string) (*CharacterDefinition, bool) {
	def, ok := l.Characters[id]
	return def, ok
}

// Artifact returns an artifact definition by id.
func (l *Library) Artifact(id string) (*ArtifactDefinition, bool) {
	def, ok := l.Artifacts[id]
	return def, ok
}
