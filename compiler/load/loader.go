package load

import (
	"fmt"
	"strings"

	"github.com/go-openapi/jsonpointer"

	"github.com/Bhaskers-Blu-Org2/jschema/schema"
)

// Config holds the loading configuration of a schema document.
type Config struct {
	// Path is the document location on disk.
	Path string
	// RootClass overrides the name given to the class loaded from the
	// document root. When empty, the document title is used, or "root"
	// if there is none.
	RootClass string
}

// Load reads the document at c.Path and flattens it into class
// descriptors. See LoadDocument for the flattening rules.
func (c *Config) Load() ([]*Class, error) {
	doc, err := schema.ReadSchemaFile(c.Path)
	if err != nil {
		return nil, err
	}
	return c.LoadDocument(doc)
}

// LoadDocument flattens a decoded document into class descriptors:
// one class for the document root when it declares properties of its
// own, one per named definition in declaration order, and one per
// inline object-valued property, named after the property and appended
// in walk order. Class and property paths are JSON Pointers into the
// document, the coordinate system hints address.
func (c *Config) LoadDocument(doc *schema.Schema) ([]*Class, error) {
	l := &loader{doc: doc, byName: make(map[string]*Class)}
	if doc.Properties.Len() > 0 && doc.Ref == "" {
		name := c.RootClass
		if name == "" {
			name = doc.Title
		}
		if name == "" {
			name = "root"
		}
		root := &Class{Name: name, Path: "", Root: true, Description: doc.Description}
		if err := l.register(root, doc); err != nil {
			return nil, err
		}
	}
	defs := doc.TypeDefinitions()
	for _, name := range defs.Names() {
		block := "$defs"
		if doc.Definitions.Has(name) {
			block = "definitions"
		}
		def := defs.Get(name)
		cls := &Class{
			Name:        name,
			Path:        "/" + block + "/" + jsonpointer.Escape(name),
			Description: def.Description,
		}
		if err := l.register(cls, def); err != nil {
			return nil, err
		}
	}
	// Promotions registered while building append to the queue and are
	// picked up by the same loop.
	for i := 0; i < len(l.queue); i++ {
		item := l.queue[i]
		if err := l.build(item.class, item.schema); err != nil {
			return nil, err
		}
	}
	return l.classes, nil
}

type loader struct {
	doc     *schema.Schema
	classes []*Class
	byName  map[string]*Class
	queue   []workItem
}

type workItem struct {
	class  *Class
	schema *schema.Schema
}

func (l *loader) register(c *Class, s *schema.Schema) error {
	if prev, ok := l.byName[c.Name]; ok {
		return fmt.Errorf("load: class %q at %s already defined at %s",
			c.Name, pointerText(c.Path), pointerText(prev.Path))
	}
	l.byName[c.Name] = c
	l.classes = append(l.classes, c)
	l.queue = append(l.queue, workItem{class: c, schema: s})
	return nil
}

func (l *loader) build(c *Class, s *schema.Schema) error {
	for i, name := range s.Properties.Names() {
		ps := s.Properties.Get(name)
		p := &Property{
			Name:        name,
			Description: ps.Description,
			Required:    s.RequiredProperty(name),
			Position:    i,
			Path:        c.Path + "/properties/" + jsonpointer.Escape(name),
		}
		var err error
		if ps.IsDictionary() {
			p.Dictionary = true
			p.Info, p.Rank, err = l.valueInfo(name, ps.Additional.Schema, p.Path+"/additionalProperties")
		} else {
			p.Info, p.Rank, err = l.valueInfo(name, ps, p.Path)
		}
		if err != nil {
			return err
		}
		c.Properties = append(c.Properties, p)
	}
	return nil
}

// valueInfo peels array levels off the value schema and resolves the
// element type at the innermost level. owner is the property name that
// names a promoted inline class, should one be needed.
func (l *loader) valueInfo(owner string, s *schema.Schema, path string) (*TypeInfo, int, error) {
	rank := 0
	for s.Type == schema.TypeArray {
		if s.Items == nil {
			return nil, 0, fmt.Errorf("load: %s: array schema without items", path)
		}
		rank++
		s = s.Items
		path += "/items"
	}
	info, err := l.typeInfo(owner, s, path)
	if err != nil {
		return nil, 0, err
	}
	return info, rank, nil
}

func (l *loader) typeInfo(owner string, s *schema.Schema, path string) (*TypeInfo, error) {
	switch {
	case s.Ref != "":
		name, err := l.resolveRef(s.Ref, path)
		if err != nil {
			return nil, err
		}
		return &TypeInfo{Kind: TypeClass, Class: name}, nil
	case s.Properties.Len() > 0:
		cls := &Class{Name: owner, Path: path, Description: s.Description, Inline: true}
		if err := l.register(cls, s); err != nil {
			return nil, err
		}
		return &TypeInfo{Kind: TypeClass, Class: owner}, nil
	}
	switch s.Type {
	case schema.TypeString:
		switch s.Format {
		case "date-time":
			return &TypeInfo{Kind: TypeTime}, nil
		case "uuid":
			return &TypeInfo{Kind: TypeUUID}, nil
		}
		return &TypeInfo{Kind: TypeString}, nil
	case schema.TypeInteger:
		return &TypeInfo{Kind: TypeInt}, nil
	case schema.TypeNumber:
		return &TypeInfo{Kind: TypeFloat}, nil
	case schema.TypeBoolean:
		return &TypeInfo{Kind: TypeBool}, nil
	default:
		// Free-form objects, bare nulls and untyped schemas all decay
		// to any.
		return &TypeInfo{Kind: TypeAny}, nil
	}
}

// resolveRef maps a $ref to the raw name of a loaded class. Only
// same-document references into the definitions block are supported.
func (l *loader) resolveRef(ref, path string) (string, error) {
	ptr, err := jsonpointer.New(strings.TrimPrefix(ref, "#"))
	if err != nil {
		return "", fmt.Errorf("load: %s: $ref %q: %w", path, ref, err)
	}
	toks := ptr.DecodedTokens()
	if len(toks) != 2 || (toks[0] != "definitions" && toks[0] != "$defs") {
		return "", fmt.Errorf("load: %s: unsupported $ref %q", path, ref)
	}
	if !l.doc.TypeDefinitions().Has(toks[1]) {
		return "", fmt.Errorf("load: %s: $ref %q does not resolve to a definition", path, ref)
	}
	return toks[1], nil
}

func pointerText(path string) string {
	if path == "" {
		return "document root"
	}
	return path
}
