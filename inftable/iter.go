package inftable

import "strings"

// Iter calls the handler for all items with the given prefix in key order.
// It returns whether all prefixed items were iterated.
// The handler can continue the process by returning true or abort with false.
func (t *Table[V]) Iter(prefix string, handler func(Item[V]) bool) bool {
	if !validKey(prefix) {
		return true // nothing can match
	}

	visit := func(key string, val V) bool {
		return handler(Item[V]{key, val})
	}

	// descend along the prefix
	cur := t.root

	for cur.level < len(prefix) {
		s := &cur.slots[slotIndex(cur.level, prefix)]

		switch s.kind {
		case entrySlot:
			if strings.HasPrefix(s.key, prefix) {
				return visit(s.key, s.val)
			}
			return true
		case childSlot:
			cur = s.child
		default:
			return true
		}
	}

	// every key under cur starts with the prefix
	return cur.walk(visit)
}

// Stats describes the shape of a Table.
type Stats struct {
	Nodes    int // number of nodes including the root
	Entries  int // number of entry slots
	Children int // number of child slots
	Depth    int // number of nodes on the longest root-to-entry path
}

// Stats walks the whole table and returns its shape.
func (t *Table[V]) Stats() Stats {
	var st Stats

	t.root.stats(&st)

	return st
}

// Depth returns the number of nodes on the longest root-to-entry path, i.e. the
// longest LocatePath result.
func (t *Table[V]) Depth() int {
	return t.Stats().Depth
}

func (n *node[V]) stats(st *Stats) {
	st.Nodes++
	st.Entries += n.numLeaves()
	st.Children += n.numChildren()

	if n.leaves != 0 && st.Depth < n.level+1 {
		st.Depth = n.level + 1
	}

	for bmp := n.children; bmp != 0; bmp &= bmp - 1 {
		n.slots[trailingZeros(bmp)].child.stats(st)
	}
}
