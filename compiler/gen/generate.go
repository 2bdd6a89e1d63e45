package gen

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"

	"github.com/Bhaskers-Blu-Org2/jschema/compiler/load"
)

// JenniferGenerator generates code using Jennifer instead of templates.
// This provides better performance by:
// - Auto-tracking imports (no goimports needed)
// - Streaming writes to disk (lower memory)
// - Compile-time type safety
type JenniferGenerator struct {
	graph   *Graph
	workers int
	outDir  string
	pkg     string
	dryRun  bool

	// Target generator for language-specific code
	// Requires at least MinimalTarget, but full TargetGenerator is supported
	target MinimalTarget

	// Optional interface implementations detected at runtime
	comparerGen ComparerGenerator
	visitorGen  VisitorGenerator

	writer *FileWriter
}

// NewJenniferGenerator creates a new Jennifer-based generator.
// You must call WithTarget() to set a target before calling Generate().
//
// Example:
//
//	import "github.com/Bhaskers-Blu-Org2/jschema/compiler/gen/golang"
//
//	gen := gen.NewJenniferGenerator(graph, outDir)
//	target := golang.NewTarget(gen)
//	gen.WithTarget(target)
//	gen.Generate(ctx)
func NewJenniferGenerator(g *Graph, outDir string) *JenniferGenerator {
	return &JenniferGenerator{
		graph:   g,
		workers: runtime.GOMAXPROCS(0),
		outDir:  outDir,
		pkg:     filepath.Base(outDir),
		writer:  NewFileWriter(outDir),
	}
}

// WithWorkers sets the number of parallel workers.
func (g *JenniferGenerator) WithWorkers(n int) *JenniferGenerator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// WithPackage sets the output package name.
func (g *JenniferGenerator) WithPackage(pkg string) *JenniferGenerator {
	if pkg != "" {
		g.pkg = pkg
	}
	return g
}

// WithTarget sets a custom target generator.
// This allows plugging in alternative output languages.
// The target must implement MinimalTarget at minimum.
// Additional capabilities are detected via ComparerGenerator and VisitorGenerator.
func (g *JenniferGenerator) WithTarget(t MinimalTarget) *JenniferGenerator {
	if t != nil {
		g.target = t
		// Detect optional capabilities via type assertion
		if cg, ok := t.(ComparerGenerator); ok {
			g.comparerGen = cg
		}
		if vg, ok := t.(VisitorGenerator); ok {
			g.visitorGen = vg
		}
	}
	return g
}

// WithDryRun renders every file without touching the disk. The artifact
// listing and metrics are still recorded, so callers can preview a run.
func (g *JenniferGenerator) WithDryRun(dry bool) *JenniferGenerator {
	g.dryRun = dry
	g.writer.dryRun = dry
	return g
}

// Generate generates all code with parallel execution and streaming writes.
// It uses the configured target generator for language-specific code.
// Returns an error if no target has been set via WithTarget().
func (g *JenniferGenerator) Generate(ctx context.Context) error {
	if g.target == nil {
		return NewConfigError("Target", nil, "no target set: call WithTarget() before Generate()")
	}
	if !g.dryRun {
		if err := os.MkdirAll(g.outDir, 0o755); err != nil {
			return err
		}
	}

	errg, _ := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)

	comparers := g.comparerGen != nil && g.FeatureEnabled(FeatureComparers.Name)

	// Generate per-class files in parallel using the target interface
	for _, t := range g.graph.Nodes {
		t := t // capture loop variable for goroutine closures
		// Data class
		errg.Go(func() error {
			return g.writeFile(g.target.GenClass(t), t.FileName())
		})

		// Structural equality comparer
		if comparers {
			errg.Go(func() error {
				return g.writeFile(g.comparerGen.GenComparer(t), t.ComparerFileName())
			})
		}
	}

	// Generate shared files using the target interface
	errg.Go(func() error {
		return g.writeFile(g.target.GenNode(), "node.go")
	})

	// Rewriting visitor over the whole graph
	if g.visitorGen != nil && g.FeatureEnabled(FeatureVisitor.Name) {
		errg.Go(func() error {
			return g.writeFile(g.visitorGen.GenVisitor(), "visitor.go")
		})
	}

	if err := errg.Wait(); err != nil {
		return err
	}
	return g.cleanup()
}

// Artifacts returns the files of the last run, sorted by name. In
// dry-run mode this is the complete preview of what Generate would
// have written.
func (g *JenniferGenerator) Artifacts() *ArtifactSet {
	return g.writer.Artifacts()
}

// Metrics returns the writer metrics of the last run.
func (g *JenniferGenerator) Metrics() WriterMetrics {
	return g.writer.Metrics()
}

// cleanup removes artifacts of disabled features left behind by an
// earlier run with a wider feature set.
func (g *JenniferGenerator) cleanup() error {
	if g.dryRun {
		return nil
	}
	cfg := *g.graph.Config
	cfg.Target = g.outDir
	for _, f := range allFeatures {
		if f.cleanup == nil || g.graph.HasFeature(f.Name) {
			continue
		}
		if err := f.cleanup(&cfg); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// GeneratorHelper interface implementation
// These exported methods allow target packages to access helper functionality.
// =============================================================================

// NewFile creates a new Jennifer file with the configured header comment.
func (g *JenniferGenerator) NewFile(pkg string) *jen.File {
	return g.newFile(pkg)
}

// GoType returns the Jennifer code for a property's declared Go type.
func (g *JenniferGenerator) GoType(p *Property) jen.Code {
	return g.goType(p)
}

// BaseType returns the Jennifer code for a property's base type, with
// every array and dictionary level stripped.
func (g *JenniferGenerator) BaseType(p *Property) jen.Code {
	return g.baseType(p)
}

// StructTags returns the struct tags for a property.
func (g *JenniferGenerator) StructTags(p *Property) map[string]string {
	return g.structTags(p)
}

// Graph returns the class graph.
func (g *JenniferGenerator) Graph() *Graph {
	return g.graph
}

// Pkg returns the output package name.
func (g *JenniferGenerator) Pkg() string {
	return g.pkg
}

// FeatureEnabled reports if the given feature name is enabled.
func (g *JenniferGenerator) FeatureEnabled(name string) bool {
	enabled, _ := g.graph.Config.FeatureEnabled(name)
	return enabled
}

// Verify JenniferGenerator implements GeneratorHelper at compile time.
var _ GeneratorHelper = (*JenniferGenerator)(nil)

// =============================================================================
// Internal helper methods (unexported)
// =============================================================================

// writeFile streams one rendered file through the writer.
func (g *JenniferGenerator) writeFile(f *jen.File, filename string) error {
	return g.writer.Write(f, filename)
}

// newFile creates a new Jennifer file with the header comment.
func (g *JenniferGenerator) newFile(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	header := defaultHeader
	if g.graph.Header != "" {
		header = g.graph.Header
	}
	f.HeaderComment(header)
	return f
}

// goType returns the Jennifer code for a property's declared Go type:
// the base type wrapped in one slice per array rank, with the dictionary
// map outermost.
func (g *JenniferGenerator) goType(p *Property) jen.Code {
	typ := g.baseType(p)
	for i := 0; i < p.Rank; i++ {
		typ = jen.Index().Add(typ)
	}
	if p.Dictionary {
		typ = jen.Map(jen.String()).Add(typ)
	}
	return typ
}

// baseType returns the Jennifer code for a property's base type.
// Class-valued properties are held by pointer so that absent and empty
// stay distinguishable; primitives are plain values.
func (g *JenniferGenerator) baseType(p *Property) jen.Code {
	if p.Type == nil {
		return jen.Any()
	}
	if p.Type.Kind == load.TypeClass {
		name := p.Type.Class
		if p.Ref != nil {
			name = p.Ref.Name
		}
		return jen.Op("*").Id(name)
	}
	switch p.Type.Kind {
	case load.TypeBool:
		return jen.Bool()
	case load.TypeInt:
		return jen.Int()
	case load.TypeFloat:
		return jen.Float64()
	case load.TypeString:
		return jen.String()
	case load.TypeTime:
		return jen.Qual("time", "Time")
	case load.TypeUUID:
		return jen.Qual("github.com/google/uuid", "UUID")
	default:
		return jen.Any()
	}
}

// structTags returns the struct tags for a property. The json tag always
// carries the wire name; extra tags from the config mirror it.
func (g *JenniferGenerator) structTags(p *Property) map[string]string {
	value := p.WireName
	if !p.Required {
		value += ",omitempty"
	}
	tags := map[string]string{"json": value}
	for _, tag := range g.graph.Tags {
		tags[tag] = value
	}
	return tags
}

// Generate runs the configured generation pipeline on the graph,
// applying the hooks from the outside in.
//
// IMPORTANT: The pipeline must be installed before calling this function.
// Use the golang.Generate() helper from gen/golang package instead:
//
//	import "github.com/Bhaskers-Blu-Org2/jschema/compiler/gen/golang"
//	err := golang.Generate(graph)
//
// Or manually:
//
//	gen := gen.NewJenniferGenerator(graph, outDir)
//	target := golang.NewTarget(gen)
//	gen.WithTarget(target).Generate(ctx)
func Generate(g *Graph) error {
	if g.Config == nil {
		return NewConfigError("Config", nil, "missing config for code generation")
	}
	var generator Generator = g.Generator
	if generator == nil {
		return NewConfigError("Generator", nil, "no generator set: use a language entry point or WithGenerator")
	}
	for i := len(g.Hooks) - 1; i >= 0; i-- {
		generator = g.Hooks[i](generator)
	}
	return generator.Generate(g)
}
