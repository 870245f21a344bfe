package services

import (
	"sync"

	"espoch-directory/docentes/internal/logging"
)

// ConfigChangeAction identifies what an admin write did to a faculty.
type ConfigChangeAction string

const (
	ConfigActionCreated          ConfigChangeAction = "created"
	ConfigActionUpdated          ConfigChangeAction = "updated"
	ConfigActionDeleted          ConfigChangeAction = "deleted"
	ConfigActionMappingsReplaced ConfigChangeAction = "mappings_replaced"
)

// ConfigChange is published after every successful admin write so dependent
// components (the resolver's cache, primarily) can react without polling.
type ConfigChange struct {
	FacultyName string
	Action      ConfigChangeAction
}

// ConfigNotifier is an explicit in-process pub/sub for configuration
// changes. Subscribers are invoked synchronously, in registration order, on
// the writer's goroutine.
type ConfigNotifier struct {
	mu   sync.RWMutex
	subs []func(ConfigChange)
}

func NewConfigNotifier() *ConfigNotifier {
	return &ConfigNotifier{}
}

// Subscribe registers a callback for future config changes.
func (n *ConfigNotifier) Subscribe(fn func(ConfigChange)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs = append(n.subs, fn)
}

// Publish delivers the change to all subscribers.
func (n *ConfigNotifier) Publish(change ConfigChange) {
	n.mu.RLock()
	subs := make([]func(ConfigChange), len(n.subs))
	copy(subs, n.subs)
	n.mu.RUnlock()

	logging.Debug("Config change published",
		"faculty", change.FacultyName,
		"action", string(change.Action),
	)

	for _, fn := range subs {
		fn(change)
	}
}
