// internal/ui/artifact_counter.go
package ui

import (
	"fmt"
	"sort"

	"go-dungeon-arpg/internal/event"
)

// ArtifactCounter считает собранные артефакты по определениям.
// Обновляется только событиями ArtifactCollected / ArtifactRemoved.
type ArtifactCounter struct {
	events *event.Dispatcher
	counts map[string]int
	names  map[string]string
}

func NewArtifactCounter(events *event.Dispatcher) *ArtifactCounter {
	c := &ArtifactCounter{
		events: events,
		counts: make(map[string]int),
		names:  make(map[string]string),
	}
	events.Subscribe(event.ArtifactCollected, c)
	events.Subscribe(event.ArtifactRemoved, c)
	return c
}

func (c *ArtifactCounter) OnEvent(e event.Event) {
	data, ok := e.Data.(event.ArtifactData)
	if !ok || data.Definition == nil {
		return
	}
	id := data.Definition.ID
	switch e.Type {
	case event.ArtifactCollected:
		c.counts[id]++
		c.names[id] = data.Definition.Name
	case event.ArtifactRemoved:
		if c.counts[id] <= 1 {
			delete(c.counts, id)
			return
		}
		c.counts[id]--
	}
}

// Count returns how many instances of the definition are held.
func (c *ArtifactCounter) Count(id string) int { return c.counts[id] }

// Lines returns one "Name xN" line per held definition, sorted by name.
func (c *ArtifactCounter) Lines() []string {
	ids := make([]string, 0, len(c.counts))
	for id := range c.counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return c.names[ids[i]] < c.names[ids[j]] })

	lines := make([]string, len(ids))
	for i, id := range ids {
		lines[i] = fmt.Sprintf("%s x%d", c.names[id], c.counts[id])
	}
	return lines
}

func (c *ArtifactCounter) Close() {
	c.events.Unsubscribe(event.ArtifactCollected, c)
	c.events.Unsubscribe(event.ArtifactRemoved, c)
}
