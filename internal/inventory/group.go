package inventory

import (
	"bytes"
	"encoding/json"
)

// Group is one inventory group in either of its two shapes: a plain
// ordered host list, or a record carrying hosts plus group-level
// variables. The JSON form follows Ansible: a bare array for the plain
// shape, {"hosts": [...], "vars": {...}} for the other.
type Group struct {
	Hosts []string
	Vars  map[string]any // nil marks the plain-list shape
}

// HasVars reports whether the group is the metadata-bearing shape.
func (g *Group) HasVars() bool {
	return g.Vars != nil
}

func (g *Group) MarshalJSON() ([]byte, error) {
	hosts := g.Hosts
	if hosts == nil {
		hosts = []string{}
	}
	if g.Vars == nil {
		return json.Marshal(hosts)
	}
	return json.Marshal(struct {
		Hosts []string       `json:"hosts"`
		Vars  map[string]any `json:"vars"`
	}{Hosts: hosts, Vars: g.Vars})
}

func (g *Group) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		g.Vars = nil
		return json.Unmarshal(data, &g.Hosts)
	}
	var rec struct {
		Hosts []string       `json:"hosts"`
		Vars  map[string]any `json:"vars"`
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	g.Hosts = rec.Hosts
	g.Vars = rec.Vars
	if g.Vars == nil {
		// keep the record shape on round-trip even when vars were empty
		g.Vars = map[string]any{}
	}
	return nil
}

// Push appends address to the group named key, creating the group as a
// plain list when absent. Appending never changes an existing group's
// shape, and insertion order within a group is preserved.
func Push(groups map[string]*Group, key, address string) {
	g, ok := groups[key]
	if !ok {
		g = &Group{}
		groups[key] = g
	}
	g.Hosts = append(g.Hosts, address)
}
