package theme

import (
	"maps"
	"slices"
	"sync"
)

var globalManager = &manager{
	themes: make(map[string]Theme),
}

type manager struct {
	mu      sync.RWMutex
	themes  map[string]Theme
	current Theme
}

// RegisterTheme adds a theme to the registry.
// The first registered theme becomes the default.
func RegisterTheme(t Theme) {
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()
	globalManager.themes[t.Name] = t
	if globalManager.current.Name == "" {
		globalManager.current = t
	}
}

// SetTheme switches to a registered theme by name.
// Returns true if the theme was found and set.
func SetTheme(name string) bool {
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()
	if t, ok := globalManager.themes[name]; ok {
		globalManager.current = t
		return true
	}
	return false
}

// Current returns the active theme.
func Current() Theme {
	globalManager.mu.RLock()
	defer globalManager.mu.RUnlock()
	return globalManager.current
}

// Available returns every registered theme name in sorted order.
func Available() []string {
	globalManager.mu.RLock()
	defer globalManager.mu.RUnlock()
	return slices.Sorted(maps.Keys(globalManager.themes))
}

// CycleTheme switches to the next theme in sorted order and returns its name.
func CycleTheme() string {
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()

	names := slices.Sorted(maps.Keys(globalManager.themes))
	if len(names) == 0 {
		return ""
	}
	next := (slices.Index(names, globalManager.current.Name) + 1) % len(names)
	globalManager.current = globalManager.themes[names[next]]
	return names[next]
}
