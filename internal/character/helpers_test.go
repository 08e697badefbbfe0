package character

import (
	"testing"

	"go-dungeon-arpg/internal/defs"
	"go-dungeon-arpg/internal/entity"
	"go-dungeon-arpg/internal/event"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f64"
)

type recordingHitbox struct {
	calls *[]string
}

func (h recordingHitbox) StartupPhase()  { *h.calls = append(*h.calls, "startup") }
func (h recordingHitbox) ActivePhase()   { *h.calls = append(*h.calls, "active") }
func (h recordingHitbox) CooldownPhase() { *h.calls = append(*h.calls, "cooldown") }
func (h recordingHitbox) Deactivate()    { *h.calls = append(*h.calls, "deactivate") }

type recordingFactory struct {
	calls []string
}

func (f *recordingFactory) NewHitbox(*Character, *defs.AttackDefinition) Hitbox {
	return recordingHitbox{calls: &f.calls}
}

type recordingDialogue struct {
	keys []string
}

func (d *recordingDialogue) StartDialogue(key string) bool {
	d.keys = append(d.keys, key)
	return true
}

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type fixture struct {
	svc      *Services
	hitboxes *recordingFactory
	dialogue *recordingDialogue
	log      *eventLog
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	events := event.NewDispatcher()
	f := &fixture{
		svc:      NewServices(entity.NewECS(), events),
		hitboxes: &recordingFactory{},
		dialogue: &recordingDialogue{},
		log:      &eventLog{},
	}
	f.svc.Hitboxes = f.hitboxes
	f.svc.Dialogue = f.dialogue
	for _, et := range []event.EventType{event.CharacterDeath, event.CharacterHit, event.AttackStarted, event.DodgeStarted, event.DialogueStarted} {
		events.Subscribe(et, f.log)
	}
	return f
}

var swipe = &defs.AttackDefinition{
	ID:          "swipe",
	Kind:        defs.AttackMelee,
	Startup:     0.2,
	ActiveUntil: 0.3,
	Total:       0.6,
	Damage:      2,
}

func heroDef() *defs.CharacterDefinition {
	return &defs.CharacterDefinition{
		ID:                "hero",
		Name:              "Hero",
		Tribe:             defs.TribeNeutral,
		BaseHealth:        10,
		BaseDefense:       1,
		MoveSpeed:         4,
		BaseMeleeAffinity: 1,
		TurnSmoothTime:    0.1,
		MeleeAttack:       swipe,
		Dodge:             defs.DodgeParams{Duration: 0.3, SpeedMultiplier: 2, InvulDuration: 0.2},
		IFrameDuration:    0.5,
		IFrameFlickerRate: 0.1,
		InteractRadius:    2,
	}
}

func (f *fixture) spawn(t *testing.T, def *defs.CharacterDefinition, role defs.Role, pos f64.Vec2) *Character {
	t.Helper()
	c, err := Spawn(f.svc, def, role, pos)
	require.NoError(t, err)
	return c
}
