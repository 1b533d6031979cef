package theme

import (
	"sort"
	"sync"
)

var registry = &manager{
	themes: make(map[string]Theme),
}

type manager struct {
	mu          sync.RWMutex
	themes      map[string]Theme
	order       []string
	currentName string
	current     Theme
}

// RegisterTheme adds a theme to the registry.
// The first registered theme becomes the default.
func RegisterTheme(name string, t Theme) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, exists := registry.themes[name]; !exists {
		registry.order = append(registry.order, name)
	}
	registry.themes[name] = t
	if registry.current == nil {
		registry.currentName = name
		registry.current = t
	}
}

// SetTheme switches to a registered theme by name.
// Returns true if the theme was found and set.
func SetTheme(name string) bool {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	t, ok := registry.themes[name]
	if !ok {
		return false
	}
	registry.currentName = name
	registry.current = t
	return true
}

// Current returns the active theme.
func Current() Theme {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.current
}

// CurrentName returns the name of the active theme.
func CurrentName() string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.currentName
}

// Available returns the registered theme names in sorted order.
func Available() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.sortedNames()
}

// CycleTheme switches to the next theme in sorted order and returns its name.
func CycleTheme() string {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	names := registry.sortedNames()
	if len(names) == 0 {
		return ""
	}
	next := 0
	for i, name := range names {
		if name == registry.currentName {
			next = (i + 1) % len(names)
			break
		}
	}
	registry.currentName = names[next]
	registry.current = registry.themes[names[next]]
	return registry.currentName
}

func (m *manager) sortedNames() []string {
	names := make([]string, len(m.order))
	copy(names, m.order)
	sort.Strings(names)
	return names
}
