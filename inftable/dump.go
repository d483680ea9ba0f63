package inftable

import (
	"fmt"
	"io"
	"math/bits"
)

func trailingZeros(bmp uint64) int {
	return bits.TrailingZeros64(bmp)
}

// slotLabel returns the character of a letter slot or '$' for the terminal slot.
func slotLabel(idx int) byte {
	if idx == TerminalSlot {
		return '$'
	}
	return byte('a' + idx)
}

// DebugDump writes an indented picture of the tree.
func (t *Table[V]) DebugDump(w io.Writer) {
	fmt.Fprintf(w, "ROOT level=0 count=%v\n", t.root.count)
	t.root.dump(w, "  ")
}

func (n *node[V]) dump(w io.Writer, indent string) {
	for idx := range n.slots {
		s := &n.slots[idx]

		switch s.kind {
		case entrySlot:
			fmt.Fprintf(w, "%s[%c] LEAF key=%q val=%v\n", indent, slotLabel(idx), s.key, s.val)
		case childSlot:
			fmt.Fprintf(w, "%s[%c] NODE level=%v count=%v\n", indent, slotLabel(idx), s.child.level, s.child.count)
			s.child.dump(w, indent+"  ")
		}
	}
}
