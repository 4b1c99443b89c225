package web

import (
	"sort"
	"sync"
)

// MenuEntry is one user-menu item.
type MenuEntry struct {
	ID    string
	Label string
	Href  string
	Order int
}

// Menu is the user navigation registry. Registering an entry with an existing
// ID replaces it, which is how this service supplants the stock "credits"
// menu link with its own view.
type Menu struct {
	mu      sync.RWMutex
	entries []MenuEntry
}

func NewMenu() *Menu { return &Menu{} }

func (m *Menu) Register(e MenuEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, cur := range m.entries {
		if cur.ID == e.ID {
			m.entries[i] = e
			return
		}
	}
	m.entries = append(m.entries, e)
}

func (m *Menu) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, cur := range m.entries {
		if cur.ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return
		}
	}
}

// Entries returns the menu sorted by Order (stable for equal orders).
func (m *Menu) Entries() []MenuEntry {
	m.mu.RLock()
	out := make([]MenuEntry, len(m.entries))
	copy(out, m.entries)
	m.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}
