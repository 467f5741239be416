// Package tabs holds the two-level tab selection model: an ordered map of main
// tabs to sub-tabs, the selection state over it, and the pure frame renderer
// that turns both into buttons and a content panel.
package tabs

import (
	"fmt"
	"slices"
)

// Group is one main tab and its ordered sub-tab labels.
type Group struct {
	Key     string
	SubTabs []string
}

// TabMap is an ordered, immutable mapping from main-tab key to sub-tab labels.
// Every key maps to at least one label.
type TabMap struct {
	groups []Group
	index  map[string]int
}

// New validates groups and builds a TabMap. Input slices are copied.
func New(groups ...Group) (*TabMap, error) {
	if len(groups) == 0 {
		return nil, ErrEmptyMap
	}
	m := &TabMap{
		groups: make([]Group, 0, len(groups)),
		index:  make(map[string]int, len(groups)),
	}
	for _, g := range groups {
		if g.Key == "" || len(g.SubTabs) == 0 {
			return nil, fmt.Errorf("%q: %w", g.Key, ErrNoSubTabs)
		}
		if _, dup := m.index[g.Key]; dup {
			return nil, fmt.Errorf("%q: %w", g.Key, ErrDuplicateKey)
		}
		seen := make(map[string]struct{}, len(g.SubTabs))
		for _, s := range g.SubTabs {
			if _, dup := seen[s]; dup {
				return nil, fmt.Errorf("%q under %q: %w", s, g.Key, ErrDuplicateSubTab)
			}
			seen[s] = struct{}{}
		}
		m.index[g.Key] = len(m.groups)
		m.groups = append(m.groups, Group{Key: g.Key, SubTabs: slices.Clone(g.SubTabs)})
	}
	return m, nil
}

// MustNew is New for literals known to be valid. It panics on error.
func MustNew(groups ...Group) *TabMap {
	m, err := New(groups...)
	if err != nil {
		panic(err)
	}
	return m
}

// Default returns the sample map shipped with tabview.
func Default() *TabMap {
	return MustNew(
		Group{Key: "tab1", SubTabs: []string{"tab1.1", "tab1.2"}},
		Group{Key: "tab2", SubTabs: []string{"tab2.1", "tab2.2"}},
		Group{Key: "tab3", SubTabs: []string{"tab3.1", "tab3.2", "tab3.3"}},
	)
}

// Len returns the number of main tabs.
func (m *TabMap) Len() int {
	return len(m.groups)
}

// Keys returns the main-tab keys in order.
func (m *TabMap) Keys() []string {
	keys := make([]string, len(m.groups))
	for i, g := range m.groups {
		keys[i] = g.Key
	}
	return keys
}

// SubTabs returns a copy of the sub-tab labels for key, or nil if key is unknown.
func (m *TabMap) SubTabs(key string) []string {
	i, ok := m.index[key]
	if !ok {
		return nil
	}
	return slices.Clone(m.groups[i].SubTabs)
}

// Has reports whether key is a main tab.
func (m *TabMap) Has(key string) bool {
	_, ok := m.index[key]
	return ok
}

// HasSubTab reports whether label belongs to the main tab key.
func (m *TabMap) HasSubTab(key, label string) bool {
	i, ok := m.index[key]
	if !ok {
		return false
	}
	return slices.Contains(m.groups[i].SubTabs, label)
}

// Groups returns a deep copy of the map's groups in order.
func (m *TabMap) Groups() []Group {
	out := make([]Group, len(m.groups))
	for i, g := range m.groups {
		out[i] = Group{Key: g.Key, SubTabs: slices.Clone(g.SubTabs)}
	}
	return out
}

func (m *TabMap) first() Selection {
	g := m.groups[0]
	return Selection{Main: g.Key, Sub: g.SubTabs[0]}
}

func (m *TabMap) keyIndex(key string) int {
	if i, ok := m.index[key]; ok {
		return i
	}
	return -1
}

func (m *TabMap) subs(key string) []string {
	return m.groups[m.index[key]].SubTabs
}
