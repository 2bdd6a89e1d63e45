package golang

import (
	"context"
	"path"

	"github.com/dave/jennifer/jen"

	"github.com/Bhaskers-Blu-Org2/jschema/compiler/gen"
)

// Generate is a convenience function to generate Go code using the Jennifer
// generator. This is the recommended entry point for code generation.
//
// If the config carries no custom Generator, the default Jennifer pipeline
// is installed first. Hooks registered in g.Config.Hooks apply either way,
// which allows extensions to generate additional code around the main run.
//
// Example:
//
//	import "github.com/Bhaskers-Blu-Org2/jschema/compiler/gen/golang"
//	err := golang.Generate(graph)
func Generate(g *gen.Graph) error {
	if g.Config == nil || g.Config.Target == "" {
		return gen.NewConfigError("Target", nil, "missing target directory in config")
	}

	if g.Generator == nil {
		g.Generator = gen.GenerateFunc(func(g *gen.Graph) error {
			generator := gen.NewJenniferGenerator(g, g.Config.Target)
			if g.Config.Package != "" {
				generator.WithPackage(path.Base(g.Config.Package))
			}
			generator.WithTarget(NewTarget(generator))
			return generator.Generate(context.Background())
		})
	}

	return gen.Generate(g)
}

// Target implements gen.TargetGenerator for Go output.
// It turns the resolved class graph into plain Go source files.
//
// Generated artifacts:
//   - Data classes with json wire tags and the Kind discriminator
//   - Structural comparers with Equal and Hash per class
//   - A graph-wide rewriting visitor with per-class handlers
type Target struct {
	helper gen.GeneratorHelper
}

// NewTarget creates a new Go target.
// The helper parameter should be a *gen.JenniferGenerator.
func NewTarget(helper gen.GeneratorHelper) *Target {
	return &Target{helper: helper}
}

// Name returns the target language name.
func (tg *Target) Name() string {
	return "go"
}

// =============================================================================
// Per-class generation methods
// =============================================================================

// GenClass generates the data class file ({class}.go).
// Includes: property struct with wire tags, Kind discriminator method.
func (tg *Target) GenClass(t *gen.Type) *jen.File {
	return genDataClass(tg.helper, t)
}

// GenComparer generates the comparer file ({class}_comparer.go).
// Includes: comparer struct, package-level singleton, Equal, Hash.
func (tg *Target) GenComparer(t *gen.Type) *jen.File {
	return genComparer(tg.helper, t)
}

// =============================================================================
// Graph-level generation methods
// =============================================================================

// GenNode generates the shared node file (node.go).
// Includes: Kind constants, Node interface, scalar hash helpers.
func (tg *Target) GenNode() *jen.File {
	return genNode(tg.helper)
}

// GenVisitor generates the rewriting visitor file (visitor.go).
// Includes: RewritingVisitor struct, Visit dispatch, per-class traversals.
func (tg *Target) GenVisitor() *jen.File {
	return genVisitor(tg.helper)
}

// Verify Target implements gen.TargetGenerator at compile time.
var _ gen.TargetGenerator = (*Target)(nil)
