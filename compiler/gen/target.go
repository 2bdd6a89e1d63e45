package gen

import "github.com/dave/jennifer/jen"

// =============================================================================
// Interface Segregation: Split TargetGenerator into smaller, focused interfaces
// =============================================================================

// ClassGenerator generates per-class code.
// Each method is called once per class in the graph.
type ClassGenerator interface {
	// GenClass generates the data class ({class}.go)
	GenClass(t *Type) *jen.File
}

// GraphGenerator generates graph-level code.
// Each method is called once per generation run.
type GraphGenerator interface {
	// GenNode generates the node interface and kind constants (node.go)
	GenNode() *jen.File
}

// ComparerGenerator generates per-class structural equality comparers.
// This is optional - targets that support structural equality implement this interface.
type ComparerGenerator interface {
	// GenComparer generates the equality comparer ({class}_comparer.go).
	// Returns nil if the target cannot compare the given class.
	GenComparer(t *Type) *jen.File
}

// VisitorGenerator generates the graph-wide rewriting visitor.
// This is optional - targets that support tree rewriting implement this interface.
type VisitorGenerator interface {
	// GenVisitor generates the rewriting visitor (visitor.go)
	GenVisitor() *jen.File
}

// MinimalTarget requires only class and node generation.
// This is the minimum interface a target language must implement.
type MinimalTarget interface {
	// Name returns the target language name (e.g., "go")
	Name() string
	ClassGenerator
	GraphGenerator
}

// TargetGenerator defines the interface for language-specific code generation.
// Each target language implements this interface to turn the class graph into
// source files for that language.
//
// Architecture:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                    JenniferGenerator                        │
//	│  (Orchestration: parallel execution, file writing)          │
//	└─────────────────────────┬───────────────────────────────────┘
//	                          │ uses
//	                          ▼
//	┌─────────────────────────────────────────────────────────────┐
//	│                   TargetGenerator                           │
//	│  (Interface: defines what each target must implement)       │
//	└─────────────────────────┬───────────────────────────────────┘
//	                          │ implemented by
//	                          ▼
//	                 ┌─────────────────┐
//	                 │  golang.Target  │
//	                 │  (gen/golang)   │
//	                 └─────────────────┘
//
// Methods return *jen.File containing the generated code. The main generator
// orchestrates calling these methods and writing the files to disk.
//
// For custom targets, you can implement MinimalTarget for basic support, or
// the full TargetGenerator to also emit comparers and the rewriting visitor.
// Additional capabilities are detected via type assertion at runtime.
type TargetGenerator interface {
	MinimalTarget
	ComparerGenerator
	VisitorGenerator
}

// TargetOption configures target-specific options.
type TargetOption func(TargetGenerator)

// GeneratorHelper provides helper methods for target implementations.
// JenniferGenerator implements this interface, allowing target packages
// to use helper methods without importing the full generator.
type GeneratorHelper interface {
	// NewFile creates a new Jennifer file with the standard header comment.
	NewFile(pkg string) *jen.File

	// GoType returns the Jennifer code for a property's declared type,
	// including slice ranks, dictionary maps and class pointers.
	GoType(p *Property) jen.Code

	// BaseType returns the Jennifer code for a property's element type
	// with ranks and dictionary wrappers stripped.
	BaseType(p *Property) jen.Code

	// StructTags returns the struct tags for a property.
	StructTags(p *Property) map[string]string

	// Graph returns the class graph.
	Graph() *Graph

	// Pkg returns the output package name.
	Pkg() string

	// FeatureEnabled reports if the given feature name is enabled.
	FeatureEnabled(name string) bool
}
