// Package golang implements the Go target of the jschema code generator.
//
// This package generates plain Go code from a resolved class graph using the
// Jennifer code generation library. It implements the full TargetGenerator
// interface hierarchy (ClassGenerator, GraphGenerator, ComparerGenerator,
// VisitorGenerator) and produces data classes, structural equality comparers
// and the graph-wide rewriting visitor.
//
// # Interface Implementation
//
// The Go target implements all generator interfaces:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                      golang.Target                          │
//	│  Implements: TargetGenerator (full interface)               │
//	└─────────────────────────────────────────────────────────────┘
//	                              │
//	          ┌───────────────────┼────────────────────┐
//	          ▼                   ▼                    ▼
//	┌────────────────┐  ┌────────────────┐  ┌───────────────────┐
//	│ ClassGenerator │  │ GraphGenerator │  │ ComparerGenerator │
//	│   (1 method)   │  │   (1 method)   │  │ VisitorGenerator  │
//	└────────────────┘  └────────────────┘  └───────────────────┘
//
// # Generated Code Structure
//
// For each class defined in the schema, this package generates:
//
//   - Data class struct with one field per property, in schema declaration
//     order, tagged with the wire name (class.go)
//   - Kind discriminator method implementing the Node interface (class.go)
//   - Structural comparer with Equal and Hash methods and a package-level
//     singleton (class_comparer.go)
//
// # Generated Output Structure
//
// The generator produces the following files in the output directory:
//
//	{output}/
//	├── node.go               # Kind type and constants, Node interface, hash helpers
//	├── visitor.go            # RewritingVisitor (if the visitor feature is enabled)
//	│
//	├── {class}.go            # Data class struct + Kind method
//	└── {class}_comparer.go   # Equal/Hash comparer (if the comparers feature is enabled)
//
// # Comparison Semantics
//
// Equal walks the properties in declaration order and stops at the first
// difference. Object identity short-circuits to true; exactly one nil side
// is always unequal, for collections as much as for nodes, so a nil slice
// and an empty one stay distinct. Class-valued properties delegate to the
// comparer singleton of their class, time.Time values compare with their
// own Equal method, and untyped values fall back to reflect.DeepEqual.
//
// Hash folds every present property with a seed of 17 and a multiplier of
// 31 on plain int arithmetic, wrapping on overflow. Nil properties and nil
// elements contribute nothing, so presence alone changes the hash.
// Dictionary entries combine through xor, keeping the result independent
// of map iteration order.
//
// # Traversal Semantics
//
// Visit dispatches on the node kind and returns nodes of unrecognized
// kinds unchanged; visiting a nil root is a bug in the caller and panics.
// A handler replaces the default traversal of its class and may call the
// exported Visit{Class} method to descend. The default traversal rewrites
// the schema-defined properties in place, skips nil elements at every
// nesting level, and snapshots dictionary key sets up front so handlers
// may add or remove keys while the traversal runs.
//
// # Code Generation Patterns
//
// The generator uses Jennifer (github.com/dave/jennifer/jen) for type-safe
// code generation. Key patterns include:
//
//   - Deterministic output: temporary names come from per-property
//     counters and dictionary key sets are sorted, so repeated runs are
//     byte-identical
//   - Wire names live in struct tags only, so renaming hints never change
//     the serialized representation
//   - Every property binding is read from the graph's property tables,
//     never recomputed, keeping the artifacts consistent with each other
//   - Class-valued properties are held by pointer so that absent and
//     empty stay distinguishable
//
// # Usage
//
// This package is typically invoked through the gen.JenniferGenerator:
//
//	import (
//	    "github.com/Bhaskers-Blu-Org2/jschema/compiler/gen"
//	    "github.com/Bhaskers-Blu-Org2/jschema/compiler/gen/golang"
//	)
//
//	// Create graph from loaded classes
//	graph, err := gen.NewGraph(config, classes...)
//	if err != nil {
//	    return err
//	}
//
//	// Generate using the Go target
//	err = golang.Generate(graph)
//
// Or with explicit generator configuration:
//
//	generator := gen.NewJenniferGenerator(graph, outDir).
//	    WithWorkers(4)
//	generator.WithTarget(golang.NewTarget(generator))
//	err := generator.Generate(ctx)
package golang
