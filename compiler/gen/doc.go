// Package gen provides code generation for JSON schema class graphs.
//
// This package is responsible for generating Go code from a loaded JSON
// schema document, producing immutable-style data classes, structural
// equality comparers and a rewriting visitor over the whole class graph.
//
// # Architecture
//
// The code generation pipeline follows this flow:
//
//	JSON schema document (schema.json)
//	        ↓
//	   schema.Schema + load.Class definitions
//	        ↓
//	   Graph (resolved types, hints applied, property tables built)
//	        ↓
//	   TargetGenerator (language-specific code)
//	        ↓
//	   Generated code (model/)
//
// # Key Types
//
// The package provides several key types:
//
//   - Graph: Holds all resolved Type definitions with validation
//   - Type: Represents one class with its properties and property table
//   - Property: Property with type info, rank, dictionary and required flags
//   - PropertyTable: Per-class lookup of property views by suffix-encoded keys
//   - HintDictionary: Pointer-addressed renames and retypes from hint documents
//   - Config: Global configuration for code generation
//
// # Interface Hierarchy
//
// The generator interfaces follow the Interface Segregation Principle:
//
//	MinimalTarget (basic target support)
//	├── Name() string
//	├── ClassGenerator (per-class data classes)
//	│   └── GenClass
//	└── GraphGenerator (graph-level code)
//	    └── GenNode
//
//	TargetGenerator (full interface, extends MinimalTarget)
//	├── ComparerGenerator (structural equality comparers)
//	└── VisitorGenerator (graph-wide rewriting visitor)
//
// Custom targets can implement MinimalTarget for basic support,
// or TargetGenerator for comparers and visitor support.
//
// # Error Handling
//
// The package uses structured error types for better error handling:
//
//   - SchemaError: Schema definition errors
//   - ConfigError: Configuration errors
//   - HintError: Hint document errors
//   - GenerationError: Code generation errors
//
// Example error handling:
//
//	graph, err := gen.NewGraph(config, classes...)
//	if err != nil {
//	    if gen.IsHintError(err) {
//	        // Handle hint-specific error
//	    }
//	    return err
//	}
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	config, err := gen.NewConfig(
//	    gen.WithSchema("./schema.json"),
//	    gen.WithTarget("./model"),
//	)
//	jschema.Generate(config)
//
// Additional options available:
//
//	config, err := gen.NewConfig(
//	    gen.WithSchema("./schema.json"),
//	    gen.WithTarget("./model"),
//	    gen.WithHintsFile("./hints.yaml"),   // Rename and retype via hints
//	    gen.WithRootClass("Snapshot"),       // Name the document root class
//	    gen.WithTags("yaml"),                // Mirror json tags as yaml tags
//	)
//
// # Jennifer Generator
//
// Code generation uses the Jennifer library instead of templates for:
//
//   - Auto-tracking imports (no goimports needed)
//   - Streaming writes to disk (lower memory)
//   - Compile-time type safety
//   - Parallel generation with configurable workers
//
// # Usage
//
// The recommended way to generate code is through the golang package:
//
//	import "github.com/Bhaskers-Blu-Org2/jschema/compiler/gen/golang"
//
//	err := golang.Generate(graph)
//
// Or manually configure the generator:
//
//	import (
//	    "github.com/Bhaskers-Blu-Org2/jschema/compiler/gen"
//	    "github.com/Bhaskers-Blu-Org2/jschema/compiler/gen/golang"
//	)
//
//	generator := gen.NewJenniferGenerator(graph, outDir).
//	    WithWorkers(4)
//	generator.WithTarget(golang.NewTarget(generator))
//	err := generator.Generate(ctx)
//
// # Code Organization
//
// The package is organized into several files:
//
//   - config.go: Config type methods and grouped configuration
//   - errors.go: Structured error types
//   - feature.go: Feature flags and definitions
//   - generate.go: JenniferGenerator for code generation
//   - graph.go: Graph type, hint application and reference resolution
//   - hint.go: Hint documents and the HintDictionary
//   - language.go: Language target registry
//   - option.go: Functional option pattern for configuration
//   - table.go: Property info tables with suffix-encoded keys
//   - target.go: Generator interface definitions (ISP-based)
//   - type.go: Type and Property definitions and naming methods
//   - writer.go: Rendering, formatting and metrics
//
// # Generated Output
//
// The generator produces the following structure:
//
//	{output}/
//	├── node.go               // Node interface, Kind constants, hash helpers
//	├── visitor.go            // RewritingVisitor over the whole graph
//	├── {class}.go            // Data class with wire-name json tags
//	└── {class}_comparer.go   // Structural equality comparer
//
// # Features
//
// The generator supports optional features that can be enabled:
//
//   - comparers: Structural equality comparers with hashing
//   - visitor: Depth-first rewriting visitor over the class graph
package gen
