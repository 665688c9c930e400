/*
File    : rebar-go/objects/table.go
*/
package objects

import (
	"sort"
	"strings"
)

// Table is a map from Value to Value. Tables serve both as user-facing
// dictionaries and as the backing store for virtual tables and scopes.
// Slots are boxed so that index operations can hand out assignable
// references into the table.
type Table struct {
	entries map[Value]*Value
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[Value]*Value)}
}

// At returns the slot for key, inserting a null slot when the key is
// absent. The returned pointer stays valid for the table's lifetime.
func (t *Table) At(key Value) *Value {
	if t.entries == nil {
		t.entries = make(map[Value]*Value)
	}
	slot, ok := t.entries[key]
	if !ok {
		slot = new(Value)
		t.entries[key] = slot
	}
	return slot
}

// Slot returns the slot for key without inserting.
func (t *Table) Slot(key Value) (*Value, bool) {
	slot, ok := t.entries[key]
	return slot, ok
}

// Index returns the value under key, or Null when absent. The table is not
// modified.
func (t *Table) Index(key Value) Value {
	if slot, ok := t.entries[key]; ok {
		return *slot
	}
	return Null
}

// Set stores value under key.
func (t *Table) Set(key, value Value) {
	*t.At(key) = value
}

// Len returns the entry count.
func (t *Table) Len() int {
	return len(t.entries)
}

// Keys returns the keys sorted by display text, for diagnostics and tests.
// Keys with equal display text (1 and 1.0) have no fixed relative order.
func (t *Table) Keys() []Value {
	keys := make([]Value, 0, len(t.entries))
	for key := range t.entries {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].ToString() < keys[j].ToString()
	})
	return keys
}

// ToString renders the table as "{k: v, ...}".
func (t *Table) ToString() string {
	if len(t.entries) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteString("{")
	for i, key := range t.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(key.Inspect())
		sb.WriteString(": ")
		sb.WriteString(t.Index(key).Inspect())
	}
	sb.WriteString("}")
	return sb.String()
}
