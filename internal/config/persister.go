package config

import (
	"log"
	"sync"

	"tuiselect/internal/eventbus"
)

// Persister writes selections back into the configuration file. It is safe
// for use from the UI goroutine and from event bus handlers.
type Persister struct {
	mu  sync.Mutex
	svc ConfigService
	cfg *Config
}

// NewPersister creates a persister over cfg, which must not be modified
// elsewhere afterwards
func NewPersister(svc ConfigService, cfg *Config) *Persister {
	return &Persister{svc: svc, cfg: cfg}
}

// SaveSelections stores the selected values of every given field and saves
// the file
func (p *Persister) SaveSelections(selections map[string][]string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for field, values := range selections {
		p.cfg.SetSelected(field, values)
	}
	return p.svc.Save(p.cfg)
}

// Autosave subscribes to selection changes and saves each one. It returns
// the unsubscribe function.
func (p *Persister) Autosave(bus eventbus.EventBus) func() {
	return bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.SelectionChangedEvent)
		if !ok {
			return
		}
		if err := p.SaveSelections(map[string][]string{event.Field: event.Values}); err != nil {
			log.Printf("Failed to autosave %s: %v", event.Field, err)
			bus.Publish(eventbus.ErrorEvent{Message: "autosave failed", Err: err})
			return
		}
		log.Printf("Autosaved %s to %s", event.Field, p.svc.Path())
	})
}
