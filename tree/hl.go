package tree

// HLEntry records one HL segment's hierarchical identity (spec.md §4.5):
// its own id, its parent's id (empty for a top-level HL), the level code
// (e.g. "20" billing provider, "22" subscriber, "23" patient), and the
// tree node for the HL segment itself so callers can reach the loop body
// that followed it.
type HLEntry struct {
	ID       string
	ParentID string
	Level    string
	Node     *Node
}

// Tree is the complete result of building a document against a grammar:
// the root node plus the HL hierarchy side-table spec.md §4.5 requires
// ("The tree builder records each HL's (id, parent_id, level) and exposes
// parent links in the output tree").
type Tree struct {
	Root *Node
	HL   []HLEntry
}

// HLByID returns the HLEntry with the given id, or (HLEntry{}, false) if
// none was recorded.
func (t *Tree) HLByID(id string) (HLEntry, bool) {
	for _, e := range t.HL {
		if e.ID == id {
			return e, true
		}
	}
	return HLEntry{}, false
}

// HLChildren returns every HLEntry whose ParentID equals id, in
// appearance order - the direct children of the HL loop identified by id.
func (t *Tree) HLChildren(id string) []HLEntry {
	var out []HLEntry
	for _, e := range t.HL {
		if e.ParentID == id {
			out = append(out, e)
		}
	}
	return out
}
