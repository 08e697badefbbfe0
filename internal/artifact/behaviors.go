// internal/artifact/behaviors.go
package artifact

import (
	"go-dungeon-arpg/internal/character"
	"go-dungeon-arpg/internal/event"
	"go-dungeon-arpg/internal/stats"

	"github.com/yohamta/donburi"
)

// lowHPAttackBoost вешает на лидера дополнительный бафф атаки, пока его
// здоровье не выше порога.
type lowHPAttackBoost struct {
	r         *Registry
	threshold float64
	boost     *stats.Buff
	holder    donburi.Entity // кому повешен бафф, Null если никому
}

func newLowHPAttackBoost(r *Registry, inst *Instance) Behavior {
	p := inst.Definition.Params
	boost := &stats.Buff{ID: inst.Definition.ID + ":boost", MeleeAttackBuff: 1, RangedAttackBuff: 1}
	if p.Boost != nil {
		copied := *p.Boost
		boost = &copied
	}
	threshold := p.LowHPThreshold
	if threshold <= 0 {
		threshold = 0.25
	}
	return &lowHPAttackBoost{r: r, threshold: threshold, boost: boost, holder: donburi.Null}
}

func (b *lowHPAttackBoost) OnCollect() { b.Tick(0) }

func (b *lowHPAttackBoost) Tick(float64) {
	leader, ok := b.r.roster.Leader()
	if !ok || leader.IsDead() {
		b.detach()
		return
	}
	if b.holder != donburi.Null && b.holder != leader.Entity() {
		b.detach()
	}
	low := float64(leader.CurrentHealth()) <= b.threshold*float64(leader.GetMaxHealth())
	switch {
	case low && b.holder == donburi.Null:
		leader.AddBuff(b.boost)
		b.holder = leader.Entity()
	case !low && b.holder != donburi.Null:
		b.detach()
	}
}

func (b *lowHPAttackBoost) OnRemove() { b.detach() }

func (b *lowHPAttackBoost) detach() {
	if b.holder == donburi.Null {
		return
	}
	if c, ok := character.Get(b.r.svc, b.holder); ok {
		c.RemoveBuff(b.boost)
	}
	b.holder = donburi.Null
}

// Active reports whether the boost is currently attached.
func (b *lowHPAttackBoost) Active() bool { return b.holder != donburi.Null }

// healUponNewMinion лечит лидера и новичка при вступлении миньона в отряд.
type healUponNewMinion struct {
	r      *Registry
	amount int
}

func newHealUponNewMinion(r *Registry, inst *Instance) Behavior {
	amount := inst.Definition.Params.HealAmount
	if amount <= 0 {
		amount = 1
	}
	return &healUponNewMinion{r: r, amount: amount}
}

func (h *healUponNewMinion) OnCollect() {
	h.r.svc.Events.Subscribe(event.NewMinionAdded, h)
}

func (h *healUponNewMinion) Tick(float64) {}

func (h *healUponNewMinion) OnRemove() {
	h.r.svc.Events.Unsubscribe(event.NewMinionAdded, h)
}

func (h *healUponNewMinion) OnEvent(e event.Event) {
	data, ok := e.Data.(event.MinionData)
	if !ok {
		return
	}
	if leader, ok := h.r.roster.Leader(); ok {
		leader.Heal(h.amount)
	}
	if m, ok := character.Get(h.r.svc, data.Minion); ok {
		m.Heal(h.amount)
	}
}

// oneKey выдаёт ключи при подборе.
type oneKey struct {
	r    *Registry
	keys int
}

func newOneKey(r *Registry, inst *Instance) Behavior {
	keys := inst.Definition.Params.Keys
	if keys <= 0 {
		keys = 1
	}
	return &oneKey{r: r, keys: keys}
}

func (k *oneKey) OnCollect() {
	if k.r.keys != nil {
		k.r.keys.AddKeys(k.keys)
	}
}

func (k *oneKey) Tick(float64) {}
func (k *oneKey) OnRemove()    {}
