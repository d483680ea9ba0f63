// Package inftable defines an "infinite" hash table: a recursive, character-indexed
// key-value table with string keys.
//
// A Table is a tree of nodes. Every node has a fixed array of TableSize slots: one per
// letter of the alphabet ('a'..'z') plus a terminal slot for keys that end at the
// node's level. A slot is either empty, a leaf entry (key, value), or a child node
// one level deeper.
//
// A key is placed by hashing its character at the node's level:
//
//	slot(level, key) = (key[level] - 'a') % AlphabetSize   if level < len(key)
//	slot(level, key) = TerminalSlot                         otherwise
//
// When two different keys land in the same slot the slot is expanded into a child
// node and both keys are re-inserted there, keyed on their next character. When a
// delete leaves a child node with a single entry and no children, the entry is moved
// back into the parent slot and the child is dropped (path compression).
//
// Example tree:
// ------------
//
//	root(0) --+-- [l] -- node(1) --+-- [e] -- leaf:"leg"
//	          |                    |
//	          |                    `-- [i] -- leaf:"lin"
//	          |
//	          `-- [m] -- leaf:"mine"
//
// The tree above contains "leg", "lin" and "mine". LocatePath("leg") is [11 4] and
// LocatePath("mine") is [12].
//
// A Table is not safe for concurrent use. Callers sharing one between goroutines
// must guard it with a sync.RWMutex (readers may share Lookup/Contains/SortedKeys,
// Insert and Delete need the write lock).
package inftable
