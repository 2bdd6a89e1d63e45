package gen

import (
	"fmt"

	"github.com/Bhaskers-Blu-Org2/jschema/compiler/load"
)

type (
	// Graph holds the resolved class graph of one schema document.
	// NewGraph applies the hint dictionary and validates the result, so
	// a graph in hand is read-only and internally consistent: every
	// generator reads names and types from it and never computes its
	// own.
	Graph struct {
		*Config
		// Nodes are the graph classes in load order: the document root
		// first, then definitions in declaration order, then promoted
		// inline classes in discovery order.
		Nodes []*Type
	}

	// Generator is the interface that wraps the Generate method.
	Generator interface {
		// Generate generates the code artifacts for the given graph.
		Generate(*Graph) error
	}

	// GenerateFunc allows the usage of ordinary functions as generators.
	GenerateFunc func(*Graph) error

	// Hook defines the "generate middleware". A hook wraps the
	// generator the pipeline runs, and can run code before and after
	// the wrapped generator.
	Hook func(Generator) Generator
)

// Generate calls f(g).
func (f GenerateFunc) Generate(g *Graph) error {
	return f(g)
}

// NewGraph creates a new Graph from the given class descriptors. It
// applies the configured hints in their declaration order, then verifies
// that the resolved bindings are unique and well formed, builds the
// property info table of every class, and runs the language target
// validation.
func NewGraph(c *Config, classes ...*load.Class) (*Graph, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "missing config for graph building")
	}
	g := &Graph{Config: c, Nodes: make([]*Type, 0, len(classes))}
	for _, class := range classes {
		g.Nodes = append(g.Nodes, NewType(c, class))
	}
	if err := g.applyHints(); err != nil {
		return nil, err
	}
	if err := g.resolve(); err != nil {
		return nil, err
	}
	if c.Language != nil && c.Language.Init != nil {
		if err := c.Language.Init(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Gen runs the configured generation pipeline on the graph. It is a
// shorthand for Generate(g).
func (g *Graph) Gen() error {
	return Generate(g)
}

// Root returns the class generated for the document root schema, if the
// document declared root properties.
func (g *Graph) Root() (*Type, bool) {
	for _, n := range g.Nodes {
		if n.Root {
			return n, true
		}
	}
	return nil, false
}

// featureEnabled reports if the given feature-flag is enabled.
func (g *Graph) featureEnabled(f Feature) bool {
	return g.HasFeature(f.Name)
}

// applyHints rewrites the default bindings with the configured hint
// dictionary. Hints apply in path declaration order; conflicting hints
// on the same element are not merged, the last one wins.
func (g *Graph) applyHints() error {
	d := g.Hints
	if d.Len() == 0 {
		return nil
	}
	classAt := make(map[string]*Type)
	propAt := make(map[string]*Property)
	ownerAt := make(map[string]*Type)
	for _, n := range g.Nodes {
		classAt[n.Path] = n
		for _, p := range n.Properties {
			propAt[p.Path] = p
			ownerAt[p.Path] = n
		}
	}
	for _, path := range d.Paths() {
		for _, h := range d.At(path) {
			if err := g.applyHint(path, h, classAt, propAt, ownerAt); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Graph) applyHint(path string, h *Hint, classAt map[string]*Type, propAt map[string]*Property, ownerAt map[string]*Type) error {
	switch h.Kind {
	case ClassNameHint:
		t, ok := classAt[path]
		if !ok {
			return NewHintError(path, string(h.Kind), "path does not resolve to a class", nil)
		}
		t.Name = h.Name
	case PropertyNameHint:
		p, ok := propAt[path]
		if !ok {
			return NewHintError(path, string(h.Kind), "path does not resolve to a property", nil)
		}
		p.Name = h.Name
	case PropertyTypeHint:
		p, ok := propAt[path]
		if !ok {
			return NewHintError(path, string(h.Kind), "path does not resolve to a property", nil)
		}
		// A hint may restate the container shape but never change it:
		// the serialized representation is fixed by the schema.
		owner := ownerAt[path]
		if h.Rank != nil && *h.Rank != p.Rank {
			return NewSchemaError(owner.Name, p.Name, fmt.Sprintf("hint at %s declares array rank %d, the schema declares %d", path, *h.Rank, p.Rank), nil)
		}
		if h.Dictionary != nil && *h.Dictionary != p.Dictionary {
			return NewSchemaError(owner.Name, p.Name, fmt.Sprintf("hint at %s declares dictionary=%t, the schema declares %t", path, *h.Dictionary, p.Dictionary), nil)
		}
		info, err := g.typeNamed(path, h)
		if err != nil {
			return err
		}
		p.Type = info
	case DictionaryHint:
		p, ok := propAt[path]
		if !ok {
			return NewHintError(path, string(h.Kind), "path does not resolve to a property", nil)
		}
		p.Dictionary = true
		if h.Type != "" {
			info, err := g.typeNamed(path, h)
			if err != nil {
				return err
			}
			p.Type = info
		}
	default:
		return NewHintError(path, string(h.Kind), "unknown hint kind", nil)
	}
	return nil
}

// typeNamed resolves the type argument of a hint: a primitive spelling,
// or the resolved or wire name of a class in the graph. Class lookups
// see the renames applied so far, which is why hint order matters.
func (g *Graph) typeNamed(path string, h *Hint) (*load.TypeInfo, error) {
	if kind, ok := load.KindByName(h.Type); ok {
		return &load.TypeInfo{Kind: kind}, nil
	}
	for _, n := range g.Nodes {
		if n.Name == h.Type || n.WireName == h.Type {
			return &load.TypeInfo{Kind: load.TypeClass, Class: n.WireName}, nil
		}
	}
	return nil, NewHintError(path, string(h.Kind), fmt.Sprintf("unknown type %q", h.Type), nil)
}

// resolve validates the hint-resolved bindings, links schema-defined
// property types to their classes and builds the property info tables.
func (g *Graph) resolve() error {
	byName := make(map[string]*Type, len(g.Nodes))
	byWire := make(map[string]*Type, len(g.Nodes))
	for _, n := range g.Nodes {
		if err := ValidClassName(n.Name); err != nil {
			return NewSchemaError(n.WireName, "", err.Error(), nil)
		}
		if prev, ok := byName[n.Name]; ok {
			loc := "the document root class"
			if prev.Path != "" {
				loc = "the class at " + prev.Path
			}
			return NewSchemaError(n.Name, "", fmt.Sprintf("resolved class name collides with %s", loc), nil)
		}
		byName[n.Name] = n
		byWire[n.WireName] = n
	}
	for _, n := range g.Nodes {
		for _, p := range n.Properties {
			if !p.Type.SchemaDefined() {
				p.Ref = nil
				continue
			}
			ref, ok := byWire[p.Type.Class]
			if !ok {
				return NewSchemaError(n.Name, p.Name, fmt.Sprintf("type refers to undefined class %q", p.Type.Class), nil)
			}
			p.Ref = ref
		}
		if err := n.finalize(); err != nil {
			return err
		}
	}
	return nil
}
