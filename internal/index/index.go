// Package index maintains the flat host-address lookup table that lets
// --host queries resolve without rebuilding the whole inventory.
package index

import (
	"encoding/json"
	"fmt"

	"github.com/WKLive/jelastic-inventory/internal/cache"
)

// Entry locates a host within the provider: the environment it lives in
// and the node id inside that environment.
type Entry struct {
	Environment string `json:"environment"`
	NodeID      string `json:"node_id"`
}

// Index maps host addresses to entries. Later writes for the same address
// overwrite earlier ones.
type Index struct {
	entries map[string]Entry
}

// New creates an empty index.
func New() *Index {
	return &Index{entries: make(map[string]Entry)}
}

// Record stores the location of a host address.
func (i *Index) Record(address, environment, nodeID string) {
	i.entries[address] = Entry{Environment: environment, NodeID: nodeID}
}

// Resolve looks up a host address.
func (i *Index) Resolve(address string) (Entry, bool) {
	e, ok := i.entries[address]
	return e, ok
}

// Len returns the number of indexed addresses.
func (i *Index) Len() int {
	return len(i.entries)
}

// Save persists the index as sorted, indented JSON.
func (i *Index) Save(path string) error {
	return cache.Write(path, i.entries)
}

// Load replaces the index contents with the persisted file.
func (i *Index) Load(path string) error {
	data, err := cache.Read(path)
	if err != nil {
		return err
	}
	entries := make(map[string]Entry)
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parsing index %s: %w", path, err)
	}
	i.entries = entries
	return nil
}
