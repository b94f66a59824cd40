package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuiselect/internal/eventbus"
)

func selectedOf(t *testing.T, cfg *Config, field string) []string {
	t.Helper()
	fields, err := cfg.DomainFields()
	require.NoError(t, err)
	for _, f := range fields {
		if f.Name == field {
			return f.Selected
		}
	}
	require.Failf(t, "field not found", field)
	return nil
}

func TestPersister_SaveSelections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cs := NewConfigService(path)
	p := NewPersister(cs, DefaultConfig())

	require.NoError(t, p.SaveSelections(map[string][]string{
		"Language": {"rust"},
		"Tags":     {},
	}))

	loaded, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"rust"}, selectedOf(t, loaded, "Language"))
	assert.Empty(t, selectedOf(t, loaded, "Tags"))
	assert.Equal(t, []string{"2"}, selectedOf(t, loaded, "Priority"))
}

func TestPersister_Autosave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cs := NewConfigService(path)
	bus := eventbus.New()
	p := NewPersister(cs, DefaultConfig())
	p.Autosave(bus)

	bus.Publish(eventbus.SelectionChangedEvent{Field: "Tags", Values: []string{"net", "tui"}})
	bus.Publish(eventbus.SelectionChangedEvent{Field: "Priority", Values: []string{"3"}})
	bus.Close()

	loaded, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"net", "tui"}, selectedOf(t, loaded, "Tags"))
	assert.Equal(t, []string{"3"}, selectedOf(t, loaded, "Priority"))
}
