package gen

import (
	"strings"

	"github.com/Bhaskers-Blu-Org2/jschema/compiler/load"
)

// ElementKey returns the table key of the array element view of key.
func ElementKey(key string) string {
	return key + "[]"
}

// ValueKey returns the table key of the dictionary value view of key.
func ValueKey(key string) string {
	return key + "{}"
}

// PropertyInfo describes one view of a class property at a given
// container nesting. The base view carries the declared shape; peeling
// an array level or stepping into the dictionary values yields the
// views stored under the suffixed keys.
type PropertyInfo struct {
	// Key is the table key of this view.
	Key string
	// Property is the property the view belongs to.
	Property *Property
	// Type holds the base type information shared by every view.
	Type *load.TypeInfo
	// Ref points to the class Type refers to, for schema-defined types.
	Ref *Type
	// Rank is the remaining array nesting at this view.
	Rank int
	// Dictionary indicates the view still carries the map container.
	Dictionary bool
	// Required mirrors the requirement of the owning property.
	Required bool
	// Position is the declaration order of the owning property.
	Position int
}

// SchemaDefined reports if the base type refers to a generated class.
func (i *PropertyInfo) SchemaDefined() bool {
	return i.Type.SchemaDefined()
}

// Scalar reports if the view carries no container.
func (i *PropertyInfo) Scalar() bool {
	return i.Rank == 0 && !i.Dictionary
}

// TypeString returns the Go spelling of the type at this view.
func (i *PropertyInfo) TypeString() string {
	var b strings.Builder
	if i.Dictionary {
		b.WriteString("map[string]")
	}
	for n := 0; n < i.Rank; n++ {
		b.WriteString("[]")
	}
	switch i.Type.Kind {
	case load.TypeClass:
		b.WriteString("*")
		if i.Ref != nil {
			b.WriteString(i.Ref.Name)
		} else {
			b.WriteString(i.Type.Class)
		}
	case load.TypeUUID:
		b.WriteString("uuid.UUID")
	default:
		b.WriteString(i.Type.Kind.String())
	}
	return b.String()
}

// PropertyTable is the per-class lookup every generator reads its
// bindings from. Each property contributes its base view plus one view
// per peelable container level, keyed by the resolved property name with
// a "{}" suffix for the dictionary value view and a "[]" suffix per
// peeled array level.
type PropertyTable struct {
	keys    []string
	entries map[string]*PropertyInfo
}

// NewPropertyTable builds the table of the given type. The graph builder
// calls it once per class, after hint resolution; the table is read-only
// afterwards.
func NewPropertyTable(t *Type) *PropertyTable {
	pt := &PropertyTable{entries: make(map[string]*PropertyInfo)}
	for _, p := range t.Properties {
		pt.add(p)
	}
	return pt
}

// add registers the views of a property: the declared shape, the
// dictionary value view if the property is a dictionary, and one view
// per array level down to the bare element.
func (pt *PropertyTable) add(p *Property) {
	key := p.Name
	pt.put(&PropertyInfo{
		Key:        key,
		Property:   p,
		Type:       p.Type,
		Ref:        p.Ref,
		Rank:       p.Rank,
		Dictionary: p.Dictionary,
		Required:   p.Required,
		Position:   p.Position,
	})
	if p.Dictionary {
		key = ValueKey(key)
		pt.put(&PropertyInfo{
			Key:      key,
			Property: p,
			Type:     p.Type,
			Ref:      p.Ref,
			Rank:     p.Rank,
			Required: p.Required,
			Position: p.Position,
		})
	}
	for rank := p.Rank - 1; rank >= 0; rank-- {
		key = ElementKey(key)
		pt.put(&PropertyInfo{
			Key:      key,
			Property: p,
			Type:     p.Type,
			Ref:      p.Ref,
			Rank:     rank,
			Required: p.Required,
			Position: p.Position,
		})
	}
}

func (pt *PropertyTable) put(info *PropertyInfo) {
	pt.keys = append(pt.keys, info.Key)
	pt.entries[info.Key] = info
}

// Lookup returns the view stored under the given key.
func (pt *PropertyTable) Lookup(key string) (*PropertyInfo, bool) {
	if pt == nil {
		return nil, false
	}
	info, ok := pt.entries[key]
	return info, ok
}

// Entries returns all views in declaration order. The views of one
// property are grouped together, outermost container first.
func (pt *PropertyTable) Entries() []*PropertyInfo {
	if pt == nil {
		return nil
	}
	entries := make([]*PropertyInfo, len(pt.keys))
	for i, key := range pt.keys {
		entries[i] = pt.entries[key]
	}
	return entries
}

// Len returns the number of views in the table.
func (pt *PropertyTable) Len() int {
	if pt == nil {
		return 0
	}
	return len(pt.keys)
}
