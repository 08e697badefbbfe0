// internal/app/game.go
package app

import (
	"context"
	"fmt"
	"log"

	"go-dungeon-arpg/internal/artifact"
	"go-dungeon-arpg/internal/assets"
	"go-dungeon-arpg/internal/character"
	"go-dungeon-arpg/internal/config"
	"go-dungeon-arpg/internal/defs"
	"go-dungeon-arpg/internal/dialogue"
	"go-dungeon-arpg/internal/dungeon"
	"go-dungeon-arpg/internal/entity"
	"go-dungeon-arpg/internal/event"
	"go-dungeon-arpg/internal/input"
	"go-dungeon-arpg/internal/party"
	"go-dungeon-arpg/internal/system"
	"go-dungeon-arpg/internal/ui"
	"go-dungeon-arpg/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/math/f64"
)

// Game holds the world of one run and ticks its systems.
type Game struct {
	Settings  *config.Settings
	Library   *defs.Library
	ECS       *entity.ECS
	Events    *event.Dispatcher
	Services  *character.Services
	Party     *party.Party
	Artifacts *artifact.Registry
	Dungeon   *dungeon.Dungeon
	Dialogue  *dialogue.Runner
	Input     input.Provider
	Rng       *utils.PRNGService

	CharacterSystem  *system.CharacterSystem
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	EnemySystem      *system.EnemySystem
	FollowSystem     *system.FollowSystem
	PlayerSystem     *system.PlayerSystem
	RoomSystem       *system.RoomSystem
	PickupSystem     *system.PickupSystem
	LootSystem       *system.LootSystem
	RenderSystem     *system.RenderSystem

	ctx         context.Context
	cancel      context.CancelFunc
	accumulator float64
	gameTime    float64
}

// NewGame loads the definitions and builds a fresh run.
func NewGame(settings *config.Settings, in input.Provider) (*Game, error) {
	fsys := assets.DataFS(settings.DataDir)
	lib, err := defs.LoadLibrary(fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to load definitions: %w", err)
	}
	runner, err := dialogue.LoadRunner(fsys)
	if err != nil {
		return nil, err
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	svc := character.NewServices(ecs, eventDispatcher)
	svc.CameraYaw = settings.CameraYaw
	svc.IFrameDuration = settings.IFrameDuration
	svc.IFrameFlickerRate = settings.IFrameFlickerRate
	svc.Dialogue = runner

	p := party.New(svc)
	p.SetDistances(settings.TransitionStoppingDistance, settings.MinionFollowDistance)

	d, err := dungeon.Build(lib.Dungeon, ecs, eventDispatcher)
	if err != nil {
		p.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	g := &Game{
		Settings:  settings,
		Library:   lib,
		ECS:       ecs,
		Events:    eventDispatcher,
		Services:  svc,
		Party:     p,
		Artifacts: artifact.NewRegistry(svc, p, p),
		Dungeon:   d,
		Dialogue:  runner,
		Input:     in,
		Rng:       utils.NewPRNGService(settings.Seed),
		ctx:       ctx,
		cancel:    cancel,
	}
	g.CombatSystem = system.NewCombatSystem(svc)
	svc.Hitboxes = g.CombatSystem
	g.CharacterSystem = system.NewCharacterSystem(svc)
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.ProjectileSystem = system.NewProjectileSystem(svc)
	g.EnemySystem = system.NewEnemySystem(svc, p, g.Rng)
	g.FollowSystem = system.NewFollowSystem(svc, p)
	g.PlayerSystem = system.NewPlayerSystem(p, in, g.Artifacts, runner)
	g.RoomSystem = system.NewRoomSystem(ctx, d, p, eventDispatcher)
	g.PickupSystem = system.NewPickupSystem(ecs, eventDispatcher, p)
	g.LootSystem = system.NewLootSystem(lib, eventDispatcher, g.PickupSystem, g.Rng)
	g.RenderSystem = system.NewRenderSystem(ecs)

	if err := g.populate(); err != nil {
		g.Close()
		return nil, err
	}
	d.Start()
	log.Printf("Game: run started in room %s (seed %d)", d.Active().ID, settings.Seed)
	return g, nil
}

// populate spawns the party, room inhabitants and floor pickups.
func (g *Game) populate() error {
	dd := g.Library.Dungeon

	leader, err := g.spawn(dd.Leader, defs.RoleLeader)
	if err != nil {
		return err
	}
	g.Party.SetLeader(leader)
	for _, sp := range dd.Minions {
		m, err := g.spawn(sp, defs.RoleMinion)
		if err != nil {
			return err
		}
		g.Party.AddMinion(m)
	}

	for _, room := range dd.Rooms {
		for _, sp := range room.Spawns {
			role := sp.Role
			if role == "" {
				role = defs.RoleEnemy
			}
			c, err := g.spawn(sp, role)
			if err != nil {
				return err
			}
			if role == defs.RoleEnemy {
				g.Dungeon.BindEnemy(room.ID, c.Entity())
			}
		}
		for _, pk := range room.Pickups {
			def, _ := g.Library.Artifact(pk.Artifact)
			g.PickupSystem.SpawnPickup(def, pk.Position)
		}
	}
	return nil
}

func (g *Game) spawn(sp defs.SpawnDefinition, role defs.Role) (*character.Character, error) {
	def, ok := g.Library.Character(sp.Character)
	if !ok {
		return nil, fmt.Errorf("unknown character %q", sp.Character)
	}
	return character.Spawn(g.Services, def, role, sp.Position)
}

// Update runs one frame: input, state timers, AI, artifacts, rooms, then as
// many fixed steps as the accumulated time allows.
func (g *Game) Update(deltaTime float64) {
	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	g.PlayerSystem.Update(deltaTime)
	g.CharacterSystem.Update(deltaTime)
	g.EnemySystem.Update(deltaTime)
	g.FollowSystem.Update(deltaTime)
	g.Artifacts.Tick(deltaTime)
	g.RoomSystem.Update(deltaTime)
	g.PickupSystem.Update(deltaTime)
	g.ECS.Flush()

	g.accumulator += deltaTime
	for g.accumulator >= config.FixedDelta {
		g.FixedUpdate(config.FixedDelta)
		g.accumulator -= config.FixedDelta
	}
}

// FixedUpdate is the physics step: steering, integration, collisions.
func (g *Game) FixedUpdate(deltaTime float64) {
	g.CharacterSystem.FixedUpdate(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.ECS.Flush()
}

func (g *Game) GetGameTime() float64 { return g.gameTime }

// Leader returns the party leader while alive.
func (g *Game) Leader() (*character.Character, bool) {
	leader, ok := g.Party.Leader()
	if !ok || leader.IsDead() {
		return nil, false
	}
	return leader, true
}

// IsOver reports whether the leader has died.
func (g *Game) IsOver() bool {
	_, alive := g.Leader()
	return !alive
}

// Snapshot collects what the HUD shows this frame.
func (g *Game) Snapshot() ui.Snapshot {
	s := ui.Snapshot{Keys: g.Party.Keys(), Dialogue: g.Dialogue.Line(), Dead: g.IsOver()}
	if leader, ok := g.Leader(); ok {
		s.Health, s.MaxHealth = leader.CurrentHealth(), leader.GetMaxHealth()
		s.State = leader.Kind().String()
	}
	if room := g.Dungeon.Active(); room != nil {
		s.RoomID, s.Cleared, s.Stairs = room.ID, room.Cleared, room.StairsActive
		for i, r := range g.Dungeon.Rooms() {
			if r == room {
				s.RoomDepth = i + 1
			}
		}
	}
	return s
}

// Draw renders the world centred on the leader.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	var focus f64.Vec2
	if leader, ok := g.Party.Leader(); ok {
		focus = leader.Position()
	}
	g.RenderSystem.Draw(screen, g.Dungeon, focus)
}

// Close stops running tasks and unsubscribes every listener.
func (g *Game) Close() {
	g.cancel()
	g.LootSystem.Close()
	g.Party.Close()
	g.Artifacts.Close()
	g.Dungeon.Close()
	g.Events.Close()
}
