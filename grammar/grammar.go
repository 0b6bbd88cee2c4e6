package grammar

import (
	"fmt"
	"sync"

	"github.com/dshills/ediparse/ediseg"
)

// Key identifies a message grammar by the triple spec.md §6 names:
// (edi_type, message_type, version).
type Key struct {
	EDIType     ediseg.EDIType
	MessageType string
	Version     string
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", k.EDIType, k.MessageType, k.Version)
}

// Grammar is one immutable, fully-resolved message definition: a root
// record-group node, the segment-tag index its leaves reference, and the
// code-set registry its ID fields reference.
type Grammar struct {
	Key      Key
	Root     Node
	Segments map[string]SegmentSchema
	CodeSets map[string]CodeSet
}

// SegmentSchemaFor looks up the field schema for a tag, or returns
// (SegmentSchema{}, false) if this grammar has no definition for it - the
// condition the tree builder's "unknown segment tag" handling (spec.md
// §4.5) checks for.
func (g *Grammar) SegmentSchemaFor(tag string) (SegmentSchema, bool) {
	s, ok := g.Segments[tag]
	return s, ok
}

// CodeSetFor looks up a code-set registry entry by ID.
func (g *Grammar) CodeSetFor(id string) (CodeSet, bool) {
	c, ok := g.CodeSets[id]
	return c, ok
}

// Catalog is a write-once-read-many mapping from Key to Grammar (spec.md
// §5). Population happens during Load; all access after that is
// read-only, so a *Catalog may be shared freely across concurrent parses.
type Catalog struct {
	mu       sync.RWMutex
	grammars map[Key]*Grammar
}

// NewCatalog returns an empty Catalog. Callers that want a pre-populated
// catalog of the grammars shipped with this module should call Load
// instead.
func NewCatalog() *Catalog {
	return &Catalog{grammars: make(map[Key]*Grammar)}
}

// Register adds g to the catalog, keyed by g.Key. Intended to be called
// only during catalog construction (Load, or a caller's own bootstrap);
// the tree builder and public API only ever call Lookup.
func (c *Catalog) Register(g *Grammar) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grammars[g.Key] = g
}

// Lookup returns the grammar for key, or ediseg.ErrUnknownMessageType if
// the catalog holds none.
func (c *Catalog) Lookup(key Key) (*Grammar, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	g, ok := c.grammars[key]
	if !ok {
		return nil, &ediseg.GrammarError{EDIType: key.EDIType, MessageType: key.MessageType, Version: key.Version}
	}
	return g, nil
}

// Keys returns every key currently registered, for diagnostics and
// testing.
func (c *Catalog) Keys() []Key {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Key, 0, len(c.grammars))
	for k := range c.grammars {
		out = append(out, k)
	}
	return out
}
