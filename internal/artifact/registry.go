// internal/artifact/registry.go
package artifact

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"go-dungeon-arpg/internal/character"
	"go-dungeon-arpg/internal/defs"
	"go-dungeon-arpg/internal/event"

	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

var (
	ErrNotStackable    = errors.New("artifact cannot stack")
	ErrNoEffect        = errors.New("artifact has neither buff nor behavior")
	ErrUnknownBehavior = errors.New("unknown artifact behavior")
	ErrNotFound        = errors.New("artifact instance not found")
)

// Roster gives the registry access to the current party.
type Roster interface {
	Leader() (*character.Character, bool)
	Minions() []*character.Character
}

// KeyHolder receives keys granted by artifacts.
type KeyHolder interface {
	AddKeys(n int)
}

// Behavior — состояние артефакта с поведением. Один экземпляр на собранный артефакт.
type Behavior interface {
	OnCollect()
	Tick(dt float64)
	OnRemove()
}

// BehaviorFactory builds the behavior of one collected instance.
type BehaviorFactory func(r *Registry, inst *Instance) Behavior

// Instance — собранный артефакт
type Instance struct {
	ID         uuid.UUID
	Definition *defs.ArtifactDefinition
	recipients []donburi.Entity
	behavior   Behavior
}

// Recipients returns the entities that got the buff from this instance.
func (i *Instance) Recipients() []donburi.Entity {
	return append([]donburi.Entity(nil), i.recipients...)
}

// Behavior returns the live behavior, nil when the artifact has none.
func (i *Instance) Behavior() Behavior { return i.behavior }

// Registry применяет артефакты к отряду. Каждая операция меняет баффы
// нескольких персонажей целиком под одной блокировкой. Хуки поведений
// вызываются уже после её снятия: они могут публиковать события, а
// подписчики могут читать реестр.
type Registry struct {
	mu        sync.Mutex
	svc       *character.Services
	roster    Roster
	keys      KeyHolder
	active    []*Instance
	behaviors map[defs.BehaviorType]BehaviorFactory
}

// NewRegistry создаёт реестр и подписывает его на NewMinionAdded и ArtifactAdded.
func NewRegistry(svc *character.Services, roster Roster, keys KeyHolder) *Registry {
	r := &Registry{
		svc:    svc,
		roster: roster,
		keys:   keys,
		behaviors: map[defs.BehaviorType]BehaviorFactory{
			defs.BehaviorLowHPAttackBoost:  newLowHPAttackBoost,
			defs.BehaviorHealUponNewMinion: newHealUponNewMinion,
			defs.BehaviorOneKey:            newOneKey,
		},
	}
	svc.Events.Subscribe(event.NewMinionAdded, r)
	svc.Events.Subscribe(event.ArtifactAdded, r)
	return r
}

// RegisterBehavior adds or replaces a behavior table entry.
func (r *Registry) RegisterBehavior(t defs.BehaviorType, f BehaviorFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.behaviors[t] = f
}

func (r *Registry) OnEvent(e event.Event) {
	switch e.Type {
	case event.NewMinionAdded:
		if data, ok := e.Data.(event.MinionData); ok {
			r.applyToNewMinion(data.Minion)
		}
	case event.ArtifactAdded:
		if data, ok := e.Data.(event.ArtifactData); ok {
			if _, err := r.Collect(data.Definition); err != nil {
				log.Printf("ArtifactRegistry: pickup ignored: %v", err)
			}
		}
	}
}

// Collect применяет артефакт: бафф подходящим членам отряда и поведение.
func (r *Registry) Collect(def *defs.ArtifactDefinition) (*Instance, error) {
	if def == nil {
		return nil, ErrNoEffect
	}
	inst, factory, err := r.collect(def)
	if err != nil {
		if errors.Is(err, ErrNotStackable) {
			log.Printf("ArtifactRegistry: %s cannot stack", def.ID)
			r.svc.Events.Dispatch(event.Event{
				Type: event.ArtifactRejected,
				Data: event.ArtifactData{Definition: def},
			})
		}
		return nil, err
	}
	if factory != nil {
		b := factory(r, inst)
		r.mu.Lock()
		inst.behavior = b
		r.mu.Unlock()
		b.OnCollect()
	}
	log.Printf("ArtifactRegistry: collected %s (%s), %d recipients", def.ID, inst.ID, len(inst.recipients))
	r.svc.Events.Dispatch(event.Event{
		Type: event.ArtifactCollected,
		Data: event.ArtifactData{Instance: inst.ID, Definition: def},
	})
	return inst, nil
}

// collect applies the buff batch under the lock and returns the behavior
// factory for the caller to run once the lock is released.
func (r *Registry) collect(def *defs.ArtifactDefinition) (*Instance, BehaviorFactory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !def.CanStack && r.countLocked(def.ID) > 0 {
		return nil, nil, fmt.Errorf("collect %s: %w", def.ID, ErrNotStackable)
	}
	if def.Buff == nil && !def.HasBehavior() {
		return nil, nil, fmt.Errorf("collect %s: %w", def.ID, ErrNoEffect)
	}
	var factory BehaviorFactory
	if def.HasBehavior() {
		f, ok := r.behaviors[def.Behavior]
		if !ok {
			return nil, nil, fmt.Errorf("collect %s: %q: %w", def.ID, def.Behavior, ErrUnknownBehavior)
		}
		factory = f
	}

	inst := &Instance{ID: uuid.New(), Definition: def}
	if def.Buff != nil {
		if leader, ok := r.roster.Leader(); ok && def.Matches(defs.RoleLeader, leader.Tribe()) {
			r.give(inst, leader)
		}
		for _, m := range r.roster.Minions() {
			if def.Matches(defs.RoleMinion, m.Tribe()) {
				r.give(inst, m)
			}
		}
	}
	r.active = append(r.active, inst)
	return inst, factory, nil
}

func (r *Registry) give(inst *Instance, c *character.Character) {
	c.AddBuff(inst.Definition.Buff)
	inst.recipients = append(inst.recipients, c.Entity())
}

// Remove снимает бафф с каждого получателя, удаляет поведение и сам экземпляр.
func (r *Registry) Remove(id uuid.UUID) error {
	inst, b, err := r.remove(id)
	if err != nil {
		return err
	}
	if b != nil {
		b.OnRemove()
	}
	log.Printf("ArtifactRegistry: removed %s (%s)", inst.Definition.ID, inst.ID)
	r.svc.Events.Dispatch(event.Event{
		Type: event.ArtifactRemoved,
		Data: event.ArtifactData{Instance: inst.ID, Definition: inst.Definition},
	})
	return nil
}

func (r *Registry) remove(id uuid.UUID) (*Instance, Behavior, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, inst := range r.active {
		if inst.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil, fmt.Errorf("remove %s: %w", id, ErrNotFound)
	}
	inst := r.active[idx]

	if buff := inst.Definition.Buff; buff != nil {
		for _, e := range inst.recipients {
			if c, ok := character.Get(r.svc, e); ok {
				c.RemoveBuff(buff)
			}
		}
	}
	inst.recipients = nil
	b := inst.behavior
	inst.behavior = nil
	r.active = append(r.active[:idx:idx], r.active[idx+1:]...)
	return inst, b, nil
}

// RemoveOldest drops the first collected instance.
func (r *Registry) RemoveOldest() error {
	r.mu.Lock()
	if len(r.active) == 0 {
		r.mu.Unlock()
		return ErrNotFound
	}
	id := r.active[0].ID
	r.mu.Unlock()
	return r.Remove(id)
}

func (r *Registry) applyToNewMinion(e donburi.Entity) {
	m, ok := character.Get(r.svc, e)
	if !ok {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inst := range r.active {
		def := inst.Definition
		if def.Buff == nil || !def.Matches(defs.RoleMinion, m.Tribe()) {
			continue
		}
		r.give(inst, m)
	}
}

// Tick advances every live behavior.
func (r *Registry) Tick(dt float64) {
	for _, b := range r.liveBehaviors(false) {
		b.Tick(dt)
	}
}

// liveBehaviors snapshots the behaviors of active instances, optionally
// detaching them.
func (r *Registry) liveBehaviors(detach bool) []Behavior {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Behavior
	for _, inst := range r.active {
		if inst.behavior == nil {
			continue
		}
		out = append(out, inst.behavior)
		if detach {
			inst.behavior = nil
		}
	}
	return out
}

// Active returns a snapshot of the collected instances in collection order.
func (r *Registry) Active() []*Instance {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Instance(nil), r.active...)
}

// Count returns how many instances of the definition are active.
func (r *Registry) Count(defID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.countLocked(defID)
}

func (r *Registry) countLocked(defID string) int {
	n := 0
	for _, inst := range r.active {
		if inst.Definition.ID == defID {
			n++
		}
	}
	return n
}

// Close отписывает реестр и завершает все поведения. Баффы остаются на персонажах.
func (r *Registry) Close() {
	r.svc.Events.Unsubscribe(event.NewMinionAdded, r)
	r.svc.Events.Unsubscribe(event.ArtifactAdded, r)
	for _, b := range r.liveBehaviors(true) {
		b.OnRemove()
	}
}
