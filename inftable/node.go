package inftable

import (
	"fmt"

	"github.com/hideo55/go-popcount"
)

const (
	// AlphabetSize is the number of letter slots in every node ('a'..'z').
	AlphabetSize = 26
	// TerminalSlot is the slot used by keys that end at the node's level.
	TerminalSlot = AlphabetSize
	// TableSize is the total number of slots in a node.
	TableSize = AlphabetSize + 1
)

type slotKind uint8

const (
	emptySlot slotKind = iota
	entrySlot
	childSlot
)

// slot holds either nothing, a key-value entry or a child node.
type slot[V any] struct {
	kind  slotKind
	key   string
	val   V
	child *node[V]
}

func (s *slot[V]) String() string {
	switch s.kind {
	case entrySlot:
		return fmt.Sprintf("<Slot ENTRY key=%q, val=%v>", s.key, s.val)
	case childSlot:
		return fmt.Sprintf("<Slot CHILD level=%v, count=%v>", s.child.level, s.child.count)
	default:
		return "<Slot EMPTY>"
	}
}

type node[V any] struct {
	slots [TableSize]slot[V]
	// level is the depth of the node (the root is 0)
	level int
	// count is the number of entries in the whole subtree
	count int
	// leaves and children are occupancy bitmaps of entry and child slots
	leaves   uint64
	children uint64
}

func newNode[V any](level int) *node[V] {
	return &node[V]{level: level}
}

// slotIndex returns the slot of the key at the given level.
func slotIndex(level int, key string) int {
	if level < len(key) {
		return int(key[level]-'a') % AlphabetSize
	}
	return TerminalSlot
}

// validKey reports whether every byte of the key belongs to the alphabet.
func validKey(key string) bool {
	for i := 0; i < len(key); i++ {
		if c := key[i]; c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

func (n *node[V]) numLeaves() int {
	return int(popcount.Count(n.leaves))
}

func (n *node[V]) numChildren() int {
	return int(popcount.Count(n.children))
}

// onlyLeaf returns the index of the lowest entry slot.
func (n *node[V]) onlyLeaf() int {
	return trailingZeros(n.leaves)
}

func (n *node[V]) setEntry(idx int, key string, val V) {
	n.slots[idx] = slot[V]{kind: entrySlot, key: key, val: val}
	n.leaves |= 1 << idx
	n.children &^= 1 << idx
}

func (n *node[V]) setChild(idx int, child *node[V]) {
	n.slots[idx] = slot[V]{kind: childSlot, child: child}
	n.children |= 1 << idx
	n.leaves &^= 1 << idx
}

func (n *node[V]) clear(idx int) {
	n.slots[idx] = slot[V]{}
	n.leaves &^= 1 << idx
	n.children &^= 1 << idx
}

// insert stores the key in the subtree of n. It returns the previous value and true
// when the key was already present.
func (n *node[V]) insert(key string, val V, tr Tracer) (prev V, replaced bool) {
	idx := slotIndex(n.level, key)
	s := &n.slots[idx]

	switch s.kind {
	case emptySlot:
		n.setEntry(idx, key, val)

	case entrySlot:
		if s.key == key {
			prev, s.val = s.val, val
			return prev, true
		}
		// expand the slot into a child and push both entries down
		var (
			oldKey, oldVal = s.key, s.val
			child          = newNode[V](n.level + 1)
		)

		child.insert(oldKey, oldVal, tr)
		child.insert(key, val, tr)
		n.setChild(idx, child)
		tr.OnSplit(n.level, idx, oldKey, key)

	case childSlot:
		if prev, replaced = s.child.insert(key, val, tr); replaced {
			return prev, true
		}
	}

	n.count++

	return prev, false
}

// find walks the hashing path of the key and returns the node and slot holding it.
func (n *node[V]) find(key string, path []int) (*node[V], int, []int) {
	for cur := n; ; {
		idx := slotIndex(cur.level, key)
		path = append(path, idx)
		s := &cur.slots[idx]

		switch s.kind {
		case entrySlot:
			if s.key == key {
				return cur, idx, path
			}
			return nil, idx, path
		case childSlot:
			cur = s.child
		default:
			return nil, idx, path
		}
	}
}

// remove deletes the key from the subtree of n, collapsing child nodes that are
// left with a single entry.
func (n *node[V]) remove(key string, tr Tracer) (val V, ok bool) {
	idx := slotIndex(n.level, key)
	s := &n.slots[idx]

	switch s.kind {
	case entrySlot:
		if s.key != key {
			return val, false
		}
		val = s.val
		n.clear(idx)

	case childSlot:
		child := s.child
		if val, ok = child.remove(key, tr); !ok {
			return val, false
		}
		if child.count <= 1 && child.numChildren() == 0 {
			if child.count == 0 {
				n.clear(idx)
			} else {
				last := &child.slots[child.onlyLeaf()]
				n.setEntry(idx, last.key, last.val)
				tr.OnCollapse(n.level, idx, last.key)
			}
		}

	default:
		return val, false
	}

	n.count--

	return val, true
}

// walk visits entries in lexicographic order: the terminal slot first (the key ending
// here is a prefix of every other key in the subtree), then 'a'..'z'.
func (n *node[V]) walk(fn func(key string, val V) bool) bool {
	if s := &n.slots[TerminalSlot]; s.kind == entrySlot {
		if !fn(s.key, s.val) {
			return false
		}
	}
	for idx := 0; idx < AlphabetSize; idx++ {
		s := &n.slots[idx]
		switch s.kind {
		case entrySlot:
			if !fn(s.key, s.val) {
				return false
			}
		case childSlot:
			if !s.child.walk(fn) {
				return false
			}
		}
	}
	return true
}
