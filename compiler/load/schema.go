package load

import (
	"encoding/json"
	"fmt"
)

// Class is the serializable descriptor of one generated type. One class
// is loaded per named schema definition, one for the document root when
// it declares properties of its own, and one per inline object-valued
// property (see Config.LoadDocument).
type Class struct {
	Name        string      `json:"name,omitempty"`
	Description string      `json:"description,omitempty"`
	Path        string      `json:"path,omitempty"`
	Root        bool        `json:"root,omitempty"`
	Inline      bool        `json:"inline,omitempty"`
	Properties  []*Property `json:"properties,omitempty"`
}

// Property is the descriptor of a single schema property. Name is the
// wire name exactly as it appears in the document; renaming happens
// later, during hint resolution, and never changes this descriptor.
type Property struct {
	Name        string    `json:"name,omitempty"`
	Description string    `json:"description,omitempty"`
	Info        *TypeInfo `json:"info,omitempty"`
	Rank        int       `json:"rank,omitempty"`
	Dictionary  bool      `json:"dictionary,omitempty"`
	Required    bool      `json:"required,omitempty"`
	Position    int       `json:"position"`
	Path        string    `json:"path,omitempty"`
}

// Property returns the named property descriptor, or nil.
func (c *Class) Property(name string) *Property {
	for _, p := range c.Properties {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// TypeKind is the value-type vocabulary of loaded properties.
type TypeKind uint8

// Type kinds. TypeClass marks a value defined by the schema itself,
// requiring recursive comparison and visitation; the rest map directly
// to Go types.
const (
	TypeInvalid TypeKind = iota
	TypeBool
	TypeInt
	TypeFloat
	TypeString
	TypeTime
	TypeUUID
	TypeAny
	TypeClass
	endKinds
)

var kindNames = [...]string{
	TypeInvalid: "invalid",
	TypeBool:    "bool",
	TypeInt:     "int",
	TypeFloat:   "float64",
	TypeString:  "string",
	TypeTime:    "time.Time",
	TypeUUID:    "uuid",
	TypeAny:     "any",
	TypeClass:   "class",
}

// String returns the Go-facing name of the kind.
func (k TypeKind) String() string {
	if k < endKinds {
		return kindNames[k]
	}
	return kindNames[TypeInvalid]
}

// Valid reports whether k is a declared kind.
func (k TypeKind) Valid() bool { return k > TypeInvalid && k < endKinds }

// kindByName is the inverse of kindNames, for lookups by spelling.
var kindByName = func() map[string]TypeKind {
	m := make(map[string]TypeKind, int(endKinds))
	for k := TypeInvalid + 1; k < endKinds; k++ {
		m[kindNames[k]] = k
	}
	return m
}()

// KindByName returns the primitive kind spelled by name. Container
// kinds have no spelling here: TypeClass values are named by the class
// they refer to.
func KindByName(name string) (TypeKind, bool) {
	k, ok := kindByName[name]
	if k == TypeClass {
		return TypeInvalid, false
	}
	return k, ok
}

// TypeInfo holds the resolved value type of a property at rank 0, after
// arrays are peeled and dictionary values unwrapped. Class carries the
// raw schema name of the target class when Kind is TypeClass.
type TypeInfo struct {
	Kind  TypeKind `json:"kind"`
	Class string   `json:"class,omitempty"`
}

// SchemaDefined reports whether the value type is one of the loaded
// classes rather than a primitive.
func (t *TypeInfo) SchemaDefined() bool {
	return t != nil && t.Kind == TypeClass
}

// String returns the class name for schema-defined types and the kind
// name otherwise.
func (t *TypeInfo) String() string {
	if t == nil {
		return kindNames[TypeInvalid]
	}
	if t.Kind == TypeClass {
		return t.Class
	}
	return t.Kind.String()
}

// MarshalClasses encodes loaded classes for transport between the
// loader and external tooling (dry-run listings and the like).
func MarshalClasses(classes []*Class) ([]byte, error) {
	buf, err := json.MarshalIndent(classes, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("load: marshal classes: %w", err)
	}
	return buf, nil
}

// UnmarshalClasses decodes the output of MarshalClasses.
func UnmarshalClasses(buf []byte) ([]*Class, error) {
	var classes []*Class
	if err := json.Unmarshal(buf, &classes); err != nil {
		return nil, fmt.Errorf("load: unmarshal classes: %w", err)
	}
	return classes, nil
}
