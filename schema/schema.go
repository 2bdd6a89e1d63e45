package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Type identifies one of the primitive type keywords a schema can declare
// for its instances.
type Type uint8

// Schema types, keyed by the keyword the draft uses for each.
const (
	TypeInvalid Type = iota
	TypeArray
	TypeBoolean
	TypeInteger
	TypeNull
	TypeNumber
	TypeObject
	TypeString
	endTypes
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeArray:   "array",
	TypeBoolean: "boolean",
	TypeInteger: "integer",
	TypeNull:    "null",
	TypeNumber:  "number",
	TypeObject:  "object",
	TypeString:  "string",
}

var typeByName = func() map[string]Type {
	m := make(map[string]Type, int(endTypes))
	for t := TypeInvalid + 1; t < endTypes; t++ {
		m[typeNames[t]] = t
	}
	return m
}()

// String returns the schema keyword for the type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}

// Valid reports whether t is one of the declared schema types.
func (t Type) Valid() bool { return t > TypeInvalid && t < endTypes }

// MarshalJSON encodes the type as its schema keyword.
func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes the "type" keyword. Both forms the drafts allow
// are accepted: a single keyword string, or a list of keywords, in which
// case the first non-null entry is taken ("null" in a list marks
// nullability, not a value type of its own).
func (t *Type) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		for _, name := range list {
			if name == typeNames[TypeNull] {
				continue
			}
			return t.set(name)
		}
		*t = TypeNull
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	return t.set(name)
}

func (t *Type) set(name string) error {
	typ, ok := typeByName[name]
	if !ok {
		return fmt.Errorf("schema: unknown type %q", name)
	}
	*t = typ
	return nil
}

// Schema is a single JSON Schema document or subschema, draft-04
// flavored: definitions, properties, items, additionalProperties,
// required, type, format, description and $ref cover everything the
// generator consumes. Unknown keywords are ignored on decode.
type Schema struct {
	ID          string                `json:"$id,omitempty"`
	Version     string                `json:"$schema,omitempty"`
	Ref         string                `json:"$ref,omitempty"`
	Title       string                `json:"title,omitempty"`
	Description string                `json:"description,omitempty"`
	Type        Type                  `json:"type,omitempty"`
	Format      string                `json:"format,omitempty"`
	Enum        []any                 `json:"enum,omitempty"`
	Default     any                   `json:"default,omitempty"`
	Properties  *Properties           `json:"properties,omitempty"`
	Required    []string              `json:"required,omitempty"`
	Items       *Schema               `json:"items,omitempty"`
	Additional  *AdditionalProperties `json:"additionalProperties,omitempty"`
	Definitions *Properties           `json:"definitions,omitempty"`
	Defs        *Properties           `json:"$defs,omitempty"`
}

// TypeDefinitions returns the document's named type definitions. Both
// the draft-04 "definitions" spelling and the newer "$defs" are honored;
// when both blocks are present, "definitions" entries come first.
func (s *Schema) TypeDefinitions() *Properties {
	switch {
	case s.Definitions == nil:
		return s.Defs
	case s.Defs == nil:
		return s.Definitions
	}
	merged := &Properties{}
	for _, name := range s.Definitions.Names() {
		merged.Set(name, s.Definitions.Get(name))
	}
	for _, name := range s.Defs.Names() {
		merged.Set(name, s.Defs.Get(name))
	}
	return merged
}

// RequiredProperty reports whether the named property appears in the
// schema's required list.
func (s *Schema) RequiredProperty(name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

// IsDictionary reports whether the schema declares a string-keyed map
// shape: an object with no fixed properties whose additionalProperties
// carries a value schema.
func (s *Schema) IsDictionary() bool {
	if s.Type != TypeObject && s.Type != TypeInvalid {
		return false
	}
	if s.Properties != nil && s.Properties.Len() > 0 {
		return false
	}
	return s.Additional != nil && s.Additional.Schema != nil
}

// AdditionalProperties models the additionalProperties keyword, which
// accepts either a boolean or a subschema.
type AdditionalProperties struct {
	// Allowed reports whether members beyond the declared properties
	// are permitted at all. It is true whenever a value schema is set.
	Allowed bool
	// Schema constrains the extra members when present.
	Schema *Schema
}

// UnmarshalJSON decodes either boolean form or subschema form.
func (a *AdditionalProperties) UnmarshalJSON(data []byte) error {
	var allowed bool
	if err := json.Unmarshal(data, &allowed); err == nil {
		a.Allowed = allowed
		a.Schema = nil
		return nil
	}
	s := &Schema{}
	if err := json.Unmarshal(data, s); err != nil {
		return fmt.Errorf("schema: additionalProperties: %w", err)
	}
	a.Allowed = true
	a.Schema = s
	return nil
}

// MarshalJSON encodes the subschema when present, the boolean otherwise.
func (a *AdditionalProperties) MarshalJSON() ([]byte, error) {
	if a.Schema != nil {
		return json.Marshal(a.Schema)
	}
	return json.Marshal(a.Allowed)
}

// Properties is a named, order-preserving collection of subschemas.
// The member order of a "properties" or "definitions" object is the
// declaration order every generated artifact follows, so the usual
// map-based decoding cannot be used.
type Properties struct {
	names   []string
	schemas map[string]*Schema
}

// Set adds or replaces the named subschema. New names are appended in
// insertion order; replacing keeps the original position.
func (p *Properties) Set(name string, s *Schema) {
	if p.schemas == nil {
		p.schemas = make(map[string]*Schema)
	}
	if _, ok := p.schemas[name]; !ok {
		p.names = append(p.names, name)
	}
	p.schemas[name] = s
}

// Get returns the named subschema, or nil if the name is absent.
func (p *Properties) Get(name string) *Schema {
	if p == nil {
		return nil
	}
	return p.schemas[name]
}

// Has reports whether the collection contains the name.
func (p *Properties) Has(name string) bool {
	if p == nil {
		return false
	}
	_, ok := p.schemas[name]
	return ok
}

// Names returns the member names in declaration order. The returned
// slice is shared; callers must not modify it.
func (p *Properties) Names() []string {
	if p == nil {
		return nil
	}
	return p.names
}

// Len returns the number of members.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.names)
}

// UnmarshalJSON decodes a JSON object member by member, recording the
// order the members appear in.
func (p *Properties) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("schema: expected object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("schema: expected member name, got %v", tok)
		}
		s := &Schema{}
		if err := dec.Decode(s); err != nil {
			return fmt.Errorf("schema: member %q: %w", name, err)
		}
		p.Set(name, s)
	}
	_, err = dec.Token()
	return err
}

// MarshalJSON encodes the collection as a JSON object in declaration
// order.
func (p *Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range p.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(p.schemas[name])
		if err != nil {
			return nil, fmt.Errorf("schema: member %q: %w", name, err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
