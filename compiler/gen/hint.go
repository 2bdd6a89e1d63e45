package gen

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-openapi/jsonpointer"
	"gopkg.in/yaml.v3"
)

// HintKind identifies what aspect of the graph a hint rewrites.
type HintKind string

const (
	// ClassNameHint renames the class resolved at the hint path.
	ClassNameHint HintKind = "class-name"

	// PropertyNameHint renames the generated field of the property
	// resolved at the hint path without touching its wire name.
	PropertyNameHint HintKind = "property-name"

	// PropertyTypeHint replaces the declared type of the property
	// resolved at the hint path.
	PropertyTypeHint HintKind = "property-type"

	// DictionaryHint forces the property resolved at the hint path to
	// generate as a string-keyed map.
	DictionaryHint HintKind = "dictionary"
)

// Valid reports if the kind is a known hint kind.
func (k HintKind) Valid() bool {
	switch k {
	case ClassNameHint, PropertyNameHint, PropertyTypeHint, DictionaryHint:
		return true
	}
	return false
}

// A Hint rewrites one aspect of the graph element its path resolves to.
type Hint struct {
	// Kind selects the rewrite.
	Kind HintKind `yaml:"kind" json:"kind"`

	// Name carries the replacement identifier of class-name and
	// property-name hints.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	// Type carries the replacement type of property-type hints: a
	// primitive name (bool, int, float64, string, time.Time, uuid, any)
	// or the name of a class in the graph. Dictionary hints may use it
	// to override the map value type.
	Type string `yaml:"type,omitempty" json:"type,omitempty"`

	// Rank optionally restates the array rank of a property-type hint.
	// It cannot change the schema-declared rank; a mismatch is a fatal
	// shape conflict.
	Rank *int `yaml:"rank,omitempty" json:"rank,omitempty"`

	// Dictionary optionally restates the dictionary flag of a
	// property-type hint. Like Rank, a mismatch with the declared shape
	// is fatal.
	Dictionary *bool `yaml:"dictionary,omitempty" json:"dictionary,omitempty"`
}

// validate checks the graph-independent shape of the hint, so a malformed
// hint document is rejected before any generation begins.
func (h *Hint) validate(path string) error {
	switch h.Kind {
	case ClassNameHint:
		if err := ValidClassName(h.Name); err != nil {
			return NewHintError(path, string(h.Kind), err.Error(), nil)
		}
	case PropertyNameHint:
		if !validIdent(h.Name) {
			return NewHintError(path, string(h.Kind), fmt.Sprintf("%q is not a valid exported identifier", h.Name), nil)
		}
	case PropertyTypeHint:
		if h.Type == "" {
			return NewHintError(path, string(h.Kind), "missing replacement type", nil)
		}
		if h.Rank != nil && *h.Rank < 0 {
			return NewHintError(path, string(h.Kind), "array rank cannot be negative", nil)
		}
	case DictionaryHint:
	default:
		return NewHintError(path, string(h.Kind), "unknown hint kind", nil)
	}
	return nil
}

// HintDictionary maps schema locations, written as plain JSON Pointers
// (no URI fragment prefix), to the hints applied at that location. Path
// declaration order is preserved and decides application order.
type HintDictionary struct {
	paths []string
	hints map[string][]*Hint
}

// Add registers hints at the given pointer path, validating the path
// syntax and each hint. Re-adding a path replaces its hints entirely, so
// of conflicting declarations the last one wins.
func (d *HintDictionary) Add(path string, hints ...*Hint) error {
	if _, err := jsonpointer.New(path); err != nil {
		return NewHintError(path, "", "invalid hint path", err)
	}
	for _, h := range hints {
		if err := h.validate(path); err != nil {
			return err
		}
	}
	if d.hints == nil {
		d.hints = make(map[string][]*Hint)
	}
	if _, ok := d.hints[path]; !ok {
		d.paths = append(d.paths, path)
	}
	d.hints[path] = hints
	return nil
}

// At returns the hints registered at the given path.
func (d *HintDictionary) At(path string) []*Hint {
	if d == nil {
		return nil
	}
	return d.hints[path]
}

// Paths returns the hinted paths in declaration order.
func (d *HintDictionary) Paths() []string {
	if d == nil {
		return nil
	}
	return d.paths
}

// Len returns the number of hinted paths.
func (d *HintDictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.paths)
}

// ReadHints decodes a hint document from r. The document is a mapping
// from JSON Pointer to hint list, written in YAML or JSON:
//
//	/definitions/file:
//	  - kind: class-name
//	    name: FileData
//
// Decoding walks the yaml node tree instead of an ordinary map so that
// member order survives and duplicate paths keep their documented
// last-wins behavior.
func ReadHints(r io.Reader) (*HintDictionary, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return &HintDictionary{}, nil
		}
		return nil, NewHintError("", "", "decode hint document", err)
	}
	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return nil, NewHintError("", "", "hint document must be a mapping of pointer paths", nil)
	}
	d := &HintDictionary{}
	for i := 0; i < len(doc.Content); i += 2 {
		key, value := doc.Content[i], doc.Content[i+1]
		if value.Kind != yaml.SequenceNode {
			return nil, NewHintError(key.Value, "", "hints must be declared as a list", nil)
		}
		hints := make([]*Hint, 0, len(value.Content))
		for _, item := range value.Content {
			h := &Hint{}
			if err := item.Decode(h); err != nil {
				return nil, NewHintError(key.Value, "", "decode hint", err)
			}
			hints = append(hints, h)
		}
		if err := d.Add(key.Value, hints...); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// ReadHintsFile reads a hint document from the file at path.
func ReadHintsFile(path string) (*HintDictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hints: open document: %w", err)
	}
	defer f.Close()
	d, err := ReadHints(f)
	if err != nil {
		return nil, fmt.Errorf("hints: parse %s: %w", path, err)
	}
	return d, nil
}
