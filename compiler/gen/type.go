package gen

import (
	"errors"
	"fmt"
	"go/token"

	"github.com/Bhaskers-Blu-Org2/jschema/compiler/load"
)

// The following types and their exported methods are used by the codegen
// to generate the assets.
type (
	// Type represents one class of the graph and the information it
	// holds. Its name and property bindings are the resolved ones: the
	// graph builder applies the hint dictionary before anything reads
	// them, so every generator observes the same names and types.
	Type struct {
		*Config
		class *load.Class
		// Name holds the resolved Go name of the class.
		Name string
		// WireName holds the schema name the class was declared with.
		WireName string
		// Description of the class, emitted as the doc comment of the
		// generated struct.
		Description string
		// Path is the JSON Pointer of the schema that produced this
		// class. The document root has the empty path.
		Path string
		// Root indicates that this class describes the document root.
		Root bool
		// Inline indicates that this class was promoted from an inline
		// object schema.
		Inline bool
		// Properties holds the resolved properties in declaration order.
		Properties []*Property
		properties map[string]*Property
		table      *PropertyTable
	}

	// Property holds the resolved binding of one class property.
	Property struct {
		def *load.Property
		// Name holds the resolved Go name of the generated field.
		Name string
		// WireName holds the schema name of the property. Renames never
		// touch it, so the serialized representation stays stable.
		WireName string
		// Type holds the resolved base type information.
		Type *load.TypeInfo
		// Ref points to the class Type refers to, for schema-defined
		// types.
		Ref *Type
		// Rank is the array nesting depth of the property.
		Rank int
		// Dictionary indicates a string-keyed map shape.
		Dictionary bool
		// Required indicates that the schema lists the property as
		// required.
		Required bool
		// Position is the zero-based declaration index of the property.
		Position int
		// Description of the property, emitted as the field doc comment.
		Description string
		// Path is the JSON Pointer of the property schema.
		Path string
	}
)

// NewType creates a new type and its properties from the given class
// descriptor. The type starts out with the default pascal-cased
// bindings; hint resolution and validation happen at graph build time,
// so a hint can still repair a name that would not survive validation.
func NewType(c *Config, class *load.Class) *Type {
	typ := &Type{
		Config:      c,
		class:       class,
		Name:        pascal(class.Name),
		WireName:    class.Name,
		Description: class.Description,
		Path:        class.Path,
		Root:        class.Root,
		Inline:      class.Inline,
		Properties:  make([]*Property, 0, len(class.Properties)),
	}
	for _, p := range class.Properties {
		typ.Properties = append(typ.Properties, &Property{
			def:         p,
			Name:        pascal(p.Name),
			WireName:    p.Name,
			Type:        p.Info,
			Rank:        p.Rank,
			Dictionary:  p.Dictionary,
			Required:    p.Required,
			Position:    p.Position,
			Description: p.Description,
			Path:        p.Path,
		})
	}
	return typ
}

// =============================================================================
// Type methods
// =============================================================================

// Property returns the property with the given resolved name, if exists.
func (t Type) Property(name string) (*Property, bool) {
	p, ok := t.properties[name]
	return p, ok
}

// Table returns the property info table of the class. It is built once
// at graph build time and read-only afterwards.
func (t Type) Table() *PropertyTable {
	return t.table
}

// Kind returns the name of the kind constant that discriminates this
// class on the generated node interface.
func (t Type) Kind() string {
	return "Kind" + t.Name
}

// ComparerName returns the type name of the generated comparer.
func (t Type) ComparerName() string {
	return t.Name + "Comparer"
}

// ComparerInstance returns the name of the package-level comparer
// singleton.
func (t Type) ComparerInstance() string {
	return t.Name + "ComparerInstance"
}

// HandlerField returns the name of the visitor handler field of this
// class.
func (t Type) HandlerField() string {
	return t.Name + "Handler"
}

// TraversalMethod returns the name of the visitor traversal method of
// this class.
func (t Type) TraversalMethod() string {
	return "visit" + t.Name
}

// FileName returns the file name of the data class artifact.
func (t Type) FileName() string {
	return snake(t.Name) + ".go"
}

// ComparerFileName returns the file name of the comparer artifact.
func (t Type) ComparerFileName() string {
	return snake(t.Name) + "_comparer.go"
}

// Receiver returns the receiver name of generated methods on this class.
// It makes sure the receiver name doesn't conflict with import names.
func (t Type) Receiver() string {
	return receiver(t.Name)
}

// finalize indexes the resolved properties, validates their names and
// builds the property info table. The graph builder calls it once, after
// hint resolution.
func (t *Type) finalize() error {
	t.properties = make(map[string]*Property, len(t.Properties))
	for _, p := range t.Properties {
		if !validIdent(p.Name) {
			return NewSchemaError(t.Name, p.WireName, fmt.Sprintf("resolved property name %q is not a valid exported identifier", p.Name), nil)
		}
		if prev, ok := t.properties[p.Name]; ok {
			return NewSchemaError(t.Name, p.Name, fmt.Sprintf("resolved property name collides with property %q", prev.WireName), nil)
		}
		t.properties[p.Name] = p
	}
	t.table = NewPropertyTable(t)
	return nil
}

// =============================================================================
// Property methods
// =============================================================================

// SchemaDefined reports if the property type refers to a generated
// class.
func (p Property) SchemaDefined() bool {
	return p.Type.SchemaDefined()
}

// Scalar reports if the property carries no container: no array rank
// and no dictionary shape.
func (p Property) Scalar() bool {
	return p.Rank == 0 && !p.Dictionary
}

// names returns a map of the given identifiers, for lookup tables.
func names(ids ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}

// globalIdent holds the identifiers declared at package level by the
// shared generated files. Class names must not shadow them.
var globalIdent = names(
	"Kind",
	"KindNone",
	"Node",
	"RewritingVisitor",
)

// ValidClassName determines if a name can serve as the class name of a
// generated declaration without conflicting with pre-defined names.
func ValidClassName(name string) error {
	switch {
	case name == "":
		return errors.New("class name cannot be empty")
	case !token.IsIdentifier(name):
		return fmt.Errorf("class name %q is not a valid Go identifier", name)
	case !validIdent(name):
		return fmt.Errorf("class name %q must be an exported identifier", name)
	}
	if _, ok := globalIdent[name]; ok {
		return fmt.Errorf("class name %q conflicts with an identifier of the generated node file", name)
	}
	return nil
}
