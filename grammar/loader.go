package grammar

import (
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v2"

	"github.com/dshills/ediparse/ediseg"
)

//go:embed catalog/*.yaml
var builtinFS embed.FS

// yamlNode mirrors one grammar tree node as it appears in a catalog YAML
// file (spec.md §6). A node with Tag set is a segment; a node with
// Children set (Tag empty) is a record group. Max of -1 means Unbounded.
type yamlNode struct {
	Name     string     `yaml:"name,omitempty"`
	Tag      string     `yaml:"tag,omitempty"`
	Min      int        `yaml:"min"`
	Max      int        `yaml:"max"`
	HLLoop   string     `yaml:"hl_loop,omitempty"`
	Children []yamlNode `yaml:"children,omitempty"`
}

type yamlFieldSchema struct {
	Position        int               `yaml:"position"`
	Type            string            `yaml:"type"`
	ImpliedDecimals int               `yaml:"implied_decimals,omitempty"`
	MinLen          int               `yaml:"min_len"`
	MaxLen          int               `yaml:"max_len"`
	Mandatory       bool              `yaml:"mandatory"`
	CodeSet         string            `yaml:"code_set,omitempty"`
	Composite       []yamlFieldSchema `yaml:"composite,omitempty"`
}

type yamlSegment struct {
	Fields []yamlFieldSchema `yaml:"fields"`
}

type yamlCodeSet struct {
	Description string            `yaml:"description"`
	Codes       map[string]string `yaml:"codes"`
}

type yamlGrammarFile struct {
	EDIType     string                 `yaml:"edi_type"`
	MessageType string                 `yaml:"message_type"`
	Version     string                 `yaml:"version"`
	Root        yamlNode               `yaml:"root"`
	Segments    map[string]yamlSegment `yaml:"segments"`
	CodeSets    map[string]yamlCodeSet `yaml:"code_sets"`
}

// ParseYAML decodes one grammar catalog document into a *Grammar.
func ParseYAML(data []byte) (*Grammar, error) {
	var doc yamlGrammarFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("grammar: decoding catalog document: %w", err)
	}

	g := &Grammar{
		Key: Key{
			EDIType:     ediseg.EDIType(doc.EDIType),
			MessageType: doc.MessageType,
			Version:     doc.Version,
		},
		Root:     convertNode(doc.Root),
		Segments: make(map[string]SegmentSchema, len(doc.Segments)),
		CodeSets: make(map[string]CodeSet, len(doc.CodeSets)),
	}

	for tag, seg := range doc.Segments {
		g.Segments[tag] = SegmentSchema{Tag: tag, Fields: convertFields(seg.Fields)}
	}
	for id, cs := range doc.CodeSets {
		g.CodeSets[id] = CodeSet{ID: id, Description: cs.Description, Codes: cs.Codes}
	}
	return g, nil
}

func convertNode(n yamlNode) Node {
	if n.Tag != "" {
		return Node{
			Kind:        KindSegment,
			Tag:         n.Tag,
			Cardinality: Cardinality{Min: n.Min, Max: maxOrUnbounded(n.Max)},
		}
	}
	children := make([]Node, len(n.Children))
	for i, c := range n.Children {
		children[i] = convertNode(c)
	}
	return Node{
		Kind:        KindGroup,
		Name:        n.Name,
		Cardinality: Cardinality{Min: n.Min, Max: maxOrUnbounded(n.Max)},
		Children:    children,
		HLLoop:      n.HLLoop,
	}
}

func maxOrUnbounded(m int) int {
	if m < 0 {
		return Unbounded
	}
	return m
}

func convertFields(in []yamlFieldSchema) []FieldSchema {
	out := make([]FieldSchema, len(in))
	for i, f := range in {
		out[i] = FieldSchema{
			Position:        f.Position,
			Type:            FieldType(f.Type),
			ImpliedDecimals: f.ImpliedDecimals,
			MinLen:          f.MinLen,
			MaxLen:          f.MaxLen,
			Mandatory:       f.Mandatory,
			CodeSet:         f.CodeSet,
			Composite:       convertFields(f.Composite),
		}
	}
	return out
}

// Load builds a Catalog from the grammar documents embedded in this
// module (catalog/*.yaml): X12 835, 837, the X12 envelope skeleton, and
// EDIFACT ORDERS D96A, at the versions listed in spec.md §6. Each call returns a
// fresh Catalog; construct one per process and share it (spec.md §9,
// "Process-wide state... the grammar cache is owned by the API-boundary
// object").
func Load() (*Catalog, error) {
	cat := NewCatalog()
	entries, err := fs.Glob(builtinFS, "catalog/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("grammar: listing embedded catalog: %w", err)
	}
	for _, name := range entries {
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("grammar: reading %s: %w", name, err)
		}
		g, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("grammar: %s: %w", name, err)
		}
		cat.Register(g)
	}
	return cat, nil
}
