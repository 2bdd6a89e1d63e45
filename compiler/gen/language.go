package gen

import "fmt"

// An ArtifactMode defines what kind of artifacts a language target supports.
type ArtifactMode uint

const (
	// Classes defines data class generation support.
	Classes ArtifactMode = 1 << iota

	// Comparers defines structural equality comparer support.
	Comparers

	// Visitors defines rewriting visitor support.
	Visitors
)

// Support reports whether m support the given mode.
func (m ArtifactMode) Support(mode ArtifactMode) bool { return m&mode != 0 }

// Language target type for codegen.
type Language struct {
	Name      string             // language name.
	IdentName string             // identifier name (docs and CLI output).
	Mode      ArtifactMode       // artifact mode support.
	Init      func(*Graph) error // optional init function.
}

// languages holds the language target options for the jschema command line.
var languages = []*Language{
	{
		Name:      "go",
		IdentName: "Go",
		Mode:      Classes | Comparers | Visitors,
		Init: func(g *Graph) error {
			byName := make(map[string]*Type, len(g.Nodes))
			for _, n := range g.Nodes {
				byName[n.Name] = n
			}
			for _, n := range g.Nodes {
				if c, ok := byName[n.Kind()]; ok {
					return NewSchemaError(c.Name, "", fmt.Sprintf("class name collides with the kind constant of class %q", n.Name), nil)
				}
				if g.featureEnabled(FeatureComparers) {
					if c, ok := byName[n.ComparerName()]; ok {
						return NewSchemaError(c.Name, "", fmt.Sprintf("class name collides with the generated comparer of class %q", n.Name), nil)
					}
				}
				for _, p := range n.Properties {
					// Fields share the struct namespace with the Kind
					// method every generated class implements.
					if p.Name == "Kind" {
						return NewSchemaError(n.Name, p.Name, "property collides with the Kind method of the generated class", nil)
					}
				}
			}
			return nil
		},
	},
}

// NewLanguage returns the language target from the given string.
// It fails if the provided string is not a valid option. this function
// is here in order to remove the validation logic from the command line.
func NewLanguage(s string) (*Language, error) {
	for _, l := range languages {
		if s == l.Name {
			return l, nil
		}
	}
	return nil, fmt.Errorf("jschema/gen: invalid language target %q", s)
}

// String implements the fmt.Stringer interface for CLI usage.
func (l *Language) String() string { return l.Name }
