// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package messenger

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Messenger is the engine's replaceable narrative-text catalog. A
// game may construct one with New and then call LoadOverrides to
// re-voice or localize any subset of the built-in keys, or register
// verb-specific variants under a namespace (spec.md §4.9: "messages
// may accept arguments").
type Messenger struct {
	catalog map[string]string
}

// New builds a Messenger seeded with every built-in Key's default
// text.
func New() *Messenger {
	m := &Messenger{catalog: make(map[string]string)}
	for k, v := range defaultCatalog() {
		m.catalog[string(k)] = v
	}
	return m
}

// LoadOverrides merges a YAML document of key: format-string pairs
// into the catalog, replacing any key present in both. Keys may be
// bare ("taken") or namespaced ("take.taken") to override only one
// handler's variant of a shared key.
func (m *Messenger) LoadOverrides(r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("messenger: reading overrides: %w", err)
	}
	var overrides map[string]string
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return fmt.Errorf("messenger: parsing overrides: %w", err)
	}
	for k, v := range overrides {
		m.catalog[k] = v
	}
	return nil
}

// Text formats the message for key, preferring a namespace-specific
// variant ("<namespace>.<key>") over the base key, over a generic
// fallback naming the missing key itself (so a gap in the catalog
// degrades to visible text instead of a panic or blank line).
func (m *Messenger) Text(namespace string, key Key, args ...any) string {
	if namespace != "" {
		if tmpl, ok := m.catalog[namespace+"."+string(key)]; ok {
			return fmt.Sprintf(tmpl, args...)
		}
	}
	if tmpl, ok := m.catalog[string(key)]; ok {
		return fmt.Sprintf(tmpl, args...)
	}
	return fmt.Sprintf("[missing message %q]", key)
}
