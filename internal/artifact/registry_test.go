package artifact

import (
	"testing"
	"time"

	"go-dungeon-arpg/internal/character"
	"go-dungeon-arpg/internal/defs"
	"go-dungeon-arpg/internal/entity"
	"go-dungeon-arpg/internal/event"
	"go-dungeon-arpg/internal/stats"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f64"
)

type fakeParty struct {
	svc     *character.Services
	leader  *character.Character
	minions []*character.Character
	keys    int
}

func (p *fakeParty) Leader() (*character.Character, bool) { return p.leader, p.leader != nil }
func (p *fakeParty) Minions() []*character.Character      { return p.minions }
func (p *fakeParty) AddKeys(n int)                        { p.keys += n }

func (p *fakeParty) recruit(t *testing.T, def *defs.CharacterDefinition) *character.Character {
	t.Helper()
	m, err := character.Spawn(p.svc, def, defs.RoleMinion, f64.Vec2{})
	require.NoError(t, err)
	p.minions = append(p.minions, m)
	p.svc.Events.Dispatch(event.Event{Type: event.NewMinionAdded, Data: event.MinionData{Minion: m.Entity()}})
	return m
}

type eventLog struct{ types []event.EventType }

func (l *eventLog) OnEvent(e event.Event) { l.types = append(l.types, e.Type) }

func member(id string, tribe defs.Tribe, health int) *defs.CharacterDefinition {
	return &defs.CharacterDefinition{ID: id, Name: id, Tribe: tribe, BaseHealth: health, MoveSpeed: 3}
}

func setup(t *testing.T) (*Registry, *fakeParty, *eventLog) {
	t.Helper()
	svc := character.NewServices(entity.NewECS(), event.NewDispatcher())
	p := &fakeParty{svc: svc}
	leader, err := character.Spawn(svc, member("leader", defs.TribeNeutral, 10), defs.RoleLeader, f64.Vec2{})
	require.NoError(t, err)
	p.leader = leader

	r := NewRegistry(svc, p, p)
	t.Cleanup(r.Close)
	log := &eventLog{}
	for _, et := range []event.EventType{event.ArtifactCollected, event.ArtifactRemoved, event.ArtifactRejected} {
		svc.Events.Subscribe(et, log)
	}
	p.recruit(t, member("imp", defs.TribeDemon, 5))
	p.recruit(t, member("skeleton", defs.TribeUndead, 4))
	return r, p, log
}

func artifact(id string, target defs.ArtifactTarget, tribe defs.Tribe, buff *stats.Buff) *defs.ArtifactDefinition {
	def := &defs.ArtifactDefinition{ID: id, Name: id, Buff: buff, Target: target, Tribe: tribe}
	if err := def.Validate(); err != nil {
		panic(err)
	}
	return def
}

func maxHealths(p *fakeParty) []int {
	out := []int{p.leader.GetMaxHealth()}
	for _, m := range p.minions {
		out = append(out, m.GetMaxHealth())
	}
	return out
}

func TestCollectAndRemoveRestoresStats(t *testing.T) {
	r, p, log := setup(t)
	before := maxHealths(p)
	charm := artifact("charm", defs.TargetAll, defs.TribeNeutral, &stats.Buff{MaxHealthBuff: 10})

	inst, err := r.Collect(charm)
	require.NoError(t, err)
	after := maxHealths(p)
	for i := range before {
		assert.Equal(t, before[i]+10, after[i])
	}
	assert.Len(t, inst.Recipients(), 3)
	assert.NotEqual(t, uuid.Nil, inst.ID)

	require.NoError(t, r.Remove(inst.ID))
	assert.Equal(t, before, maxHealths(p))
	assert.Empty(t, r.Active())
	assert.Equal(t, []event.EventType{event.ArtifactCollected, event.ArtifactRemoved}, log.types)
}

func TestTargetAndTribeFilter(t *testing.T) {
	r, p, _ := setup(t)
	horn := artifact("horn", defs.TargetMinion, defs.TribeDemon, &stats.Buff{MeleeAttackBuff: 2})
	crown := artifact("crown", defs.TargetLeader, defs.TribeNeutral, &stats.Buff{DefenseBuff: 1})

	_, err := r.Collect(horn)
	require.NoError(t, err)
	_, err = r.Collect(crown)
	require.NoError(t, err)

	assert.Equal(t, 2, p.minions[0].GetMeleeAffinity())
	assert.Equal(t, 0, p.minions[1].GetMeleeAffinity())
	assert.Equal(t, 0, p.leader.GetMeleeAffinity())
	assert.Equal(t, 1, p.leader.GetDefense())
	assert.Equal(t, 0, p.minions[0].GetDefense())
}

func TestLateMinionReceivesActiveBuffs(t *testing.T) {
	r, p, _ := setup(t)
	bone := artifact("bone", defs.TargetMinion, defs.TribeNeutral, &stats.Buff{MaxHealthBuff: 4})
	crown := artifact("crown", defs.TargetLeader, defs.TribeNeutral, &stats.Buff{MaxHealthBuff: 100})
	_, err := r.Collect(bone)
	require.NoError(t, err)
	_, err = r.Collect(crown)
	require.NoError(t, err)

	ghoul := p.recruit(t, member("ghoul", defs.TribeUndead, 6))
	assert.Equal(t, 10, ghoul.GetMaxHealth())
	assert.True(t, ghoul.HasBuff(bone.Buff))
	assert.False(t, ghoul.HasBuff(crown.Buff))

	inst := r.Active()[0]
	require.NoError(t, r.Remove(inst.ID))
	assert.Equal(t, 6, ghoul.GetMaxHealth())
}

func TestNonStackableIsRejected(t *testing.T) {
	r, p, log := setup(t)
	horn := artifact("horn", defs.TargetAll, defs.TribeNeutral, &stats.Buff{MeleeAttackBuff: 2})

	_, err := r.Collect(horn)
	require.NoError(t, err)
	_, err = r.Collect(horn)
	assert.ErrorIs(t, err, ErrNotStackable)
	assert.Equal(t, 2, p.leader.GetMeleeAffinity())
	assert.Equal(t, 1, r.Count("horn"))
	assert.Contains(t, log.types, event.ArtifactRejected)
}

func TestStackableStacks(t *testing.T) {
	r, p, _ := setup(t)
	charm := artifact("charm", defs.TargetLeader, defs.TribeNeutral, &stats.Buff{MaxHealthBuff: 10})
	charm.CanStack = true

	first, err := r.Collect(charm)
	require.NoError(t, err)
	_, err = r.Collect(charm)
	require.NoError(t, err)
	assert.Equal(t, 30, p.leader.GetMaxHealth())

	require.NoError(t, r.Remove(first.ID))
	assert.Equal(t, 20, p.leader.GetMaxHealth())
	assert.Equal(t, 1, r.Count("charm"))
}

func TestCollectFailures(t *testing.T) {
	r, _, _ := setup(t)

	_, err := r.Collect(artifact("empty", defs.TargetAll, defs.TribeNeutral, nil))
	assert.ErrorIs(t, err, ErrNoEffect)

	weird := artifact("weird", defs.TargetAll, defs.TribeNeutral, nil)
	weird.Behavior = "Teleport"
	_, err = r.Collect(weird)
	assert.ErrorIs(t, err, ErrUnknownBehavior)

	_, err = r.Collect(nil)
	assert.ErrorIs(t, err, ErrNoEffect)

	assert.ErrorIs(t, r.Remove(uuid.New()), ErrNotFound)
	assert.ErrorIs(t, r.RemoveOldest(), ErrNotFound)
	assert.Empty(t, r.Active())
}

func TestArtifactAddedEventCollects(t *testing.T) {
	r, p, _ := setup(t)
	charm := artifact("charm", defs.TargetLeader, defs.TribeNeutral, &stats.Buff{MaxHealthBuff: 5})

	p.svc.Events.Dispatch(event.Event{Type: event.ArtifactAdded, Data: event.ArtifactData{Definition: charm}})
	assert.Equal(t, 1, r.Count("charm"))
	assert.Equal(t, 15, p.leader.GetMaxHealth())
}

func TestRemoveSkipsDeadRecipients(t *testing.T) {
	r, p, _ := setup(t)
	charm := artifact("charm", defs.TargetAll, defs.TribeNeutral, &stats.Buff{MaxHealthBuff: 5})
	inst, err := r.Collect(charm)
	require.NoError(t, err)

	p.minions[0].Hit(100)
	p.svc.ECS.Flush()

	assert.NotPanics(t, func() { require.NoError(t, r.Remove(inst.ID)) })
	assert.Equal(t, 10, p.leader.GetMaxHealth())
}

// registryReader reads the registry from inside a listener.
type registryReader struct {
	r    *Registry
	seen []int
}

func (l *registryReader) OnEvent(event.Event) { l.seen = append(l.seen, len(l.r.Active())) }

// announcer publishes KeysChanged from every hook.
type announcer struct{ svc *character.Services }

func (a announcer) shout()       { a.svc.Events.Dispatch(event.Event{Type: event.KeysChanged}) }
func (a announcer) OnCollect()   { a.shout() }
func (a announcer) Tick(float64) { a.shout() }
func (a announcer) OnRemove()    { a.shout() }

type announcingKeys struct{ svc *character.Services }

func (k announcingKeys) AddKeys(n int) {
	k.svc.Events.Dispatch(event.Event{Type: event.KeysChanged, Data: event.KeysData{Keys: n}})
}

// within fails the test if fn does not return in time.
func within(t *testing.T, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("registry call did not return")
	}
}

func TestListenersMayReadRegistryDuringHooks(t *testing.T) {
	r, p, _ := setup(t)
	reader := &registryReader{r: r}
	p.svc.Events.Subscribe(event.KeysChanged, reader)
	r.RegisterBehavior("Announce", func(r *Registry, inst *Instance) Behavior { return announcer{svc: p.svc} })

	def := artifact("horn", defs.TargetAll, defs.TribeNeutral, nil)
	def.Behavior = "Announce"

	within(t, func() {
		inst, err := r.Collect(def)
		if assert.NoError(t, err) {
			r.Tick(0.1)
			assert.NoError(t, r.Remove(inst.ID))
		}
	})
	assert.Equal(t, []int{1, 1, 0}, reader.seen)
}

func TestOneKeyListenerMayCountArtifacts(t *testing.T) {
	_, p, _ := setup(t)
	r := NewRegistry(p.svc, p, announcingKeys{svc: p.svc})
	t.Cleanup(r.Close)
	counter := &keyCounter{r: r}
	p.svc.Events.Subscribe(event.KeysChanged, counter)

	key := artifact("key", defs.TargetLeader, defs.TribeNeutral, nil)
	key.Behavior = defs.BehaviorOneKey
	within(t, func() {
		_, err := r.Collect(key)
		assert.NoError(t, err)
	})
	assert.Equal(t, []int{1}, counter.counts)
}

type keyCounter struct {
	r      *Registry
	counts []int
}

func (k *keyCounter) OnEvent(event.Event) { k.counts = append(k.counts, k.r.Count("key")) }
