// internal/party/party.go
package party

import (
	"context"
	"log"

	"go-dungeon-arpg/internal/character"
	"go-dungeon-arpg/internal/component"
	"go-dungeon-arpg/internal/config"
	"go-dungeon-arpg/internal/event"
	"go-dungeon-arpg/internal/stats"
	pkgutils "go-dungeon-arpg/pkg/utils"

	"github.com/yohamta/donburi"
	"golang.org/x/image/math/f64"
)

// State — режим управления отрядом
type State int

const (
	Free     State = iota // Игрок управляет лидером
	Scripted              // Идёт скриптовый переход, ввод игнорируется
)

func (s State) String() string {
	if s == Scripted {
		return "Scripted"
	}
	return "Free"
}

// UpgradeKind — вид улучшения за ключи
type UpgradeKind int

const (
	UpgradeHealth UpgradeKind = iota
	UpgradeSpeed
)

// Party — лидер, миньоны, ключи и переходы между комнатами.
type Party struct {
	svc              *character.Services
	leader           donburi.Entity
	minions          []donburi.Entity
	keys             int
	state            State
	transition       *transition
	stoppingDistance float64
	followDistance   float64
}

type transition struct {
	tasks    map[donburi.Entity]*character.ScriptedMove
	onArrive func()
}

func New(svc *character.Services) *Party {
	p := &Party{
		svc:              svc,
		leader:           donburi.Null,
		stoppingDistance: config.TransitionStoppingDistance,
		followDistance:   config.MinionFollowDistance,
	}
	svc.Events.Subscribe(event.CharacterDeath, p)
	return p
}

// SetDistances overrides the transition stopping and minion follow distances.
func (p *Party) SetDistances(stopping, follow float64) {
	if stopping > 0 {
		p.stoppingDistance = stopping
	}
	if follow >= 0 {
		p.followDistance = follow
	}
}

// FollowDistance is how far minions keep from their formation slot.
func (p *Party) FollowDistance() float64 { return p.followDistance }

func (p *Party) SetLeader(c *character.Character) {
	p.leader = c.Entity()
}

func (p *Party) Leader() (*character.Character, bool) {
	return character.Get(p.svc, p.leader)
}

// AddMinion принимает персонажа в отряд и оповещает подписчиков NewMinionAdded.
func (p *Party) AddMinion(c *character.Character) {
	for _, e := range p.minions {
		if e == c.Entity() {
			return
		}
	}
	p.minions = append(p.minions, c.Entity())
	if entry, ok := p.svc.ECS.Entry(c.Entity()); ok && entry.HasComponent(component.MinionComponent) {
		component.MinionComponent.Get(entry).Slot = len(p.minions) - 1
	}
	log.Printf("Party: %s joined", c.Name())
	p.svc.Events.Dispatch(event.Event{Type: event.NewMinionAdded, Data: event.MinionData{Minion: c.Entity()}})
}

// Minions returns the living minions in joining order.
func (p *Party) Minions() []*character.Character {
	out := make([]*character.Character, 0, len(p.minions))
	for _, e := range p.minions {
		if c, ok := character.Get(p.svc, e); ok && !c.IsDead() {
			out = append(out, c)
		}
	}
	return out
}

// Members returns the leader followed by the minions.
func (p *Party) Members() []*character.Character {
	var out []*character.Character
	if l, ok := p.Leader(); ok && !l.IsDead() {
		out = append(out, l)
	}
	return append(out, p.Minions()...)
}

func (p *Party) OnEvent(e event.Event) {
	data, ok := e.Data.(event.DeathData)
	if !ok {
		return
	}
	for i, m := range p.minions {
		if m == data.Entity {
			p.minions = append(p.minions[:i:i], p.minions[i+1:]...)
			log.Printf("Party: %s died", data.Name)
			return
		}
	}
}

func (p *Party) Keys() int { return p.keys }

// AddKeys начисляет ключи.
func (p *Party) AddKeys(n int) {
	if n <= 0 {
		return
	}
	p.keys += n
	p.svc.Events.Dispatch(event.Event{Type: event.KeysChanged, Data: event.KeysData{Keys: p.keys}})
}

// SpendKeys списывает ключи, если их хватает.
func (p *Party) SpendKeys(n int) bool {
	if n < 0 || p.keys < n {
		return false
	}
	p.keys -= n
	p.svc.Events.Dispatch(event.Event{Type: event.KeysChanged, Data: event.KeysData{Keys: p.keys}})
	return true
}

// Upgrade покупает улучшение для всего отряда. Без нужного числа ключей ничего не происходит.
func (p *Party) Upgrade(kind UpgradeKind) bool {
	var cost int
	var apply func(c *character.Character)
	switch kind {
	case UpgradeHealth:
		cost = config.HealthUpgradeCost
		apply = func(c *character.Character) {
			c.AdjustBase(func(b *stats.Base) { b.Health += config.HealthUpgradeAmount })
			c.Heal(config.HealthUpgradeAmount)
		}
	case UpgradeSpeed:
		cost = config.SpeedUpgradeCost
		apply = func(c *character.Character) {
			c.AdjustBase(func(b *stats.Base) { b.MoveSpeed += config.SpeedUpgradeAmount })
		}
	default:
		return false
	}
	if !p.SpendKeys(cost) {
		return false
	}
	for _, c := range p.Members() {
		apply(c)
	}
	return true
}

func (p *Party) State() State { return p.state }

// StartTransition ведёт отряд к точке: лидер к самой точке, миньоны в строй за ним.
// onArrive вызывается один раз, когда все дошли.
func (p *Party) StartTransition(target, heading f64.Vec2, onArrive func()) bool {
	if p.state == Scripted {
		return false
	}
	leader, ok := p.Leader()
	if !ok {
		return false
	}
	t := &transition{tasks: make(map[donburi.Entity]*character.ScriptedMove), onArrive: onArrive}
	leader.ForceIdle()
	t.tasks[leader.Entity()] = character.NewScriptedMove(target, p.stoppingDistance)
	for i, m := range p.Minions() {
		m.ForceIdle()
		t.tasks[m.Entity()] = character.NewScriptedMove(p.FormationSlot(target, heading, i), p.stoppingDistance)
	}
	p.transition = t
	p.state = Scripted
	return true
}

// FormationSlot returns where minion i stands behind a point facing heading.
func (p *Party) FormationSlot(at, heading f64.Vec2, i int) f64.Vec2 {
	back := pkgutils.Scale(pkgutils.Normalize(heading), -p.followDistance*float64(i/2+1))
	side := f64.Vec2{heading[1], -heading[0]}
	side = pkgutils.Normalize(side)
	offset := p.followDistance * 0.5
	if i%2 == 1 {
		offset = -offset
	}
	return pkgutils.Add(pkgutils.Add(at, back), pkgutils.Scale(side, offset))
}

// Step advances the running transition by one tick.
func (p *Party) Step(ctx context.Context) error {
	if p.transition == nil {
		return nil
	}
	allDone := true
	for e, task := range p.transition.tasks {
		c, ok := character.Get(p.svc, e)
		if !ok {
			delete(p.transition.tasks, e)
			continue
		}
		done, err := task.Step(ctx, c)
		if err != nil {
			p.CancelTransition()
			return err
		}
		if !done {
			allDone = false
		}
	}
	if !allDone {
		return nil
	}
	onArrive := p.transition.onArrive
	p.transition = nil
	p.state = Free
	if onArrive != nil {
		onArrive()
	}
	return nil
}

// CancelTransition прерывает переход: все в Idle с нулевой скоростью.
func (p *Party) CancelTransition() {
	if p.transition == nil {
		return
	}
	for e, task := range p.transition.tasks {
		if c, ok := character.Get(p.svc, e); ok {
			task.Cancel(c)
		}
	}
	p.transition = nil
	p.state = Free
}

// Close unsubscribes the party from the event bus.
func (p *Party) Close() {
	p.CancelTransition()
	p.svc.Events.Unsubscribe(event.CharacterDeath, p)
}
