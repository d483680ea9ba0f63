package inftable

import (
	"fmt"
)

// Item is a key-value pair stored in a Table.
type Item[V any] struct {
	Key string
	Val V
}

// Table is a recursive character-indexed key-value table.
type Table[V any] struct {
	root   *node[V]
	tracer Tracer
}

// New returns an empty Table.
func New[V any](opts ...Option) *Table[V] {
	t := &Table[V]{}

	return InitTable(t, opts...)
}

// InitTable resets the table to an empty state and applies the options.
func InitTable[V any](t *Table[V], opts ...Option) *Table[V] {
	cfg := config{tracer: NopTracer}
	for _, opt := range opts {
		opt(&cfg)
	}

	*t = Table[V]{
		root:   newNode[V](0),
		tracer: cfg.tracer,
	}

	return t
}

// FromItems returns a Table holding the given items. Later items override earlier
// ones with the same key.
func FromItems[V any](items []Item[V], opts ...Option) (*Table[V], error) {
	t := New[V](opts...)

	for _, item := range items {
		if err := t.Insert(item.Key, item.Val); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Size returns the number of keys in the table.
func (t *Table[V]) Size() int {
	return t.root.count
}

// Len is the same as Size.
func (t *Table[V]) Len() int {
	return t.root.count
}

// Empty reports whether the table has no keys.
func (t *Table[V]) Empty() bool {
	return t.root.count == 0
}

// Insert associates the value with the key, replacing a previous value if any.
func (t *Table[V]) Insert(key string, val V) error {
	_, _, err := t.Set(key, val)
	return err
}

// Set associates the value with the key. It returns the previous value and true when
// the key was already present.
func (t *Table[V]) Set(key string, val V) (prev V, replaced bool, err error) {
	if !validKey(key) {
		return prev, false, newKeyError("insert", key, ErrInvalidKey)
	}

	prev, replaced = t.root.insert(key, val, t.tracer)

	return prev, replaced, nil
}

// Lookup returns the value associated with the key.
func (t *Table[V]) Lookup(key string) (V, error) {
	var zero V

	if !validKey(key) {
		return zero, newKeyError("lookup", key, ErrInvalidKey)
	}

	n, idx, _ := t.root.find(key, nil)
	if n == nil {
		return zero, newKeyError("lookup", key, ErrKeyNotFound)
	}

	return n.slots[idx].val, nil
}

// Get returns the value associated with the key and whether it was found.
func (t *Table[V]) Get(key string) (val V, ok bool) {
	if !validKey(key) {
		return
	}
	if n, idx, _ := t.root.find(key, nil); n != nil {
		return n.slots[idx].val, true
	}
	return
}

// Contains reports whether the key is in the table.
func (t *Table[V]) Contains(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// Delete removes the key from the table.
func (t *Table[V]) Delete(key string) error {
	_, err := t.Del(key)
	return err
}

// Del removes the key from the table and returns its value.
func (t *Table[V]) Del(key string) (V, error) {
	var zero V

	if !validKey(key) {
		return zero, newKeyError("delete", key, ErrInvalidKey)
	}

	val, ok := t.root.remove(key, t.tracer)
	if !ok {
		return zero, newKeyError("delete", key, ErrKeyNotFound)
	}

	return val, nil
}

// LocatePath returns the slot indices chosen at every node on the way from the root to
// the node holding the key.
func (t *Table[V]) LocatePath(key string) ([]int, error) {
	if !validKey(key) {
		return nil, newKeyError("locate", key, ErrInvalidKey)
	}

	n, _, path := t.root.find(key, make([]int, 0, 4))
	if n == nil {
		return nil, newKeyError("locate", key, ErrKeyNotFound)
	}

	return path, nil
}

// SortedKeys returns all keys in lexicographic order.
func (t *Table[V]) SortedKeys() []string {
	keys := make([]string, 0, t.root.count)

	t.root.walk(func(key string, _ V) bool {
		keys = append(keys, key)
		return true
	})

	return keys
}

// Keys is the same as SortedKeys.
func (t *Table[V]) Keys() []string {
	return t.SortedKeys()
}

// Items returns all key-value pairs sorted by key.
func (t *Table[V]) Items() []Item[V] {
	items := make([]Item[V], 0, t.root.count)

	t.root.walk(func(key string, val V) bool {
		items = append(items, Item[V]{key, val})
		return true
	})

	return items
}

func (t *Table[V]) String() string {
	return fmt.Sprintf("<Table size=%v, depth=%v>", t.Size(), t.Depth())
}
