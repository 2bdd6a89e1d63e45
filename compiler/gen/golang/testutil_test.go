package golang

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Bhaskers-Blu-Org2/jschema/compiler/gen"
	"github.com/Bhaskers-Blu-Org2/jschema/compiler/load"
)

// The emitters run against real graphs built through gen.NewGraph, so
// every test sees the same name resolution, reference linking and
// property tables a production run would.

// logClasses returns a SARIF-shaped document: a root log holding runs,
// each run holding a dictionary of files, and a file referring to
// itself through its parent property.
func logClasses() []*load.Class {
	return []*load.Class{
		{
			Name: "sarif log",
			Path: "",
			Root: true,
			Properties: []*load.Property{
				{Name: "version", Info: &load.TypeInfo{Kind: load.TypeString}, Required: true, Position: 0, Path: "/properties/version"},
				{Name: "runs", Info: &load.TypeInfo{Kind: load.TypeClass, Class: "run"}, Rank: 1, Position: 1, Path: "/properties/runs"},
			},
		},
		{
			Name: "run",
			Path: "/definitions/run",
			Properties: []*load.Property{
				{Name: "files", Info: &load.TypeInfo{Kind: load.TypeClass, Class: "file"}, Dictionary: true, Position: 0, Path: "/definitions/run/properties/files"},
				{Name: "properties", Info: &load.TypeInfo{Kind: load.TypeAny}, Position: 1, Path: "/definitions/run/properties/properties"},
			},
		},
		{
			Name:        "file",
			Path:        "/definitions/file",
			Description: "A single file involved in the run.",
			Properties: []*load.Property{
				{Name: "uri", Description: "The location of the file.", Info: &load.TypeInfo{Kind: load.TypeString}, Required: true, Position: 0, Path: "/definitions/file/properties/uri"},
				{Name: "parent", Info: &load.TypeInfo{Kind: load.TypeClass, Class: "file"}, Position: 1, Path: "/definitions/file/properties/parent"},
			},
		},
	}
}

// matrixClasses returns a document exercising every container shape:
// nested arrays of primitives and classes, dictionaries of scalars and
// of class arrays, and the value kinds with special comparison rules.
func matrixClasses() []*load.Class {
	return []*load.Class{
		{
			Name: "matrix",
			Path: "/definitions/matrix",
			Properties: []*load.Property{
				{Name: "cells", Info: &load.TypeInfo{Kind: load.TypeInt}, Rank: 2, Position: 0, Path: "/definitions/matrix/properties/cells"},
				{Name: "grid", Info: &load.TypeInfo{Kind: load.TypeClass, Class: "cell"}, Rank: 2, Position: 1, Path: "/definitions/matrix/properties/grid"},
				{Name: "labels", Info: &load.TypeInfo{Kind: load.TypeString}, Dictionary: true, Position: 2, Path: "/definitions/matrix/properties/labels"},
				{Name: "bands", Info: &load.TypeInfo{Kind: load.TypeClass, Class: "cell"}, Dictionary: true, Rank: 1, Position: 3, Path: "/definitions/matrix/properties/bands"},
				{Name: "start", Info: &load.TypeInfo{Kind: load.TypeTime}, Position: 4, Path: "/definitions/matrix/properties/start"},
				{Name: "guid", Info: &load.TypeInfo{Kind: load.TypeUUID}, Position: 5, Path: "/definitions/matrix/properties/guid"},
				{Name: "extra", Info: &load.TypeInfo{Kind: load.TypeAny}, Position: 6, Path: "/definitions/matrix/properties/extra"},
				{Name: "exists", Info: &load.TypeInfo{Kind: load.TypeBool}, Required: true, Position: 7, Path: "/definitions/matrix/properties/exists"},
				{Name: "score", Info: &load.TypeInfo{Kind: load.TypeFloat}, Position: 8, Path: "/definitions/matrix/properties/score"},
			},
		},
		{
			Name: "cell",
			Path: "/definitions/cell",
			Properties: []*load.Property{
				{Name: "value", Info: &load.TypeInfo{Kind: load.TypeInt}, Required: true, Position: 0, Path: "/definitions/cell/properties/value"},
			},
		},
	}
}

// testGraph builds a resolved graph over the given classes with the
// default feature set.
func testGraph(t *testing.T, classes ...*load.Class) *gen.Graph {
	t.Helper()
	cfg := gen.DefaultConfig()
	cfg.Target = t.TempDir()
	g, err := gen.NewGraph(cfg, classes...)
	require.NoError(t, err)
	return g
}

// testHelper wraps the graph in the real Jennifer generator, so the
// emitters see the production type spelling and header stamping.
func testHelper(g *gen.Graph) gen.GeneratorHelper {
	return gen.NewJenniferGenerator(g, g.Target).WithPackage("model")
}

// classNamed fetches a class from the graph by resolved name.
func classNamed(t *testing.T, g *gen.Graph, name string) *gen.Type {
	t.Helper()
	for _, n := range g.Nodes {
		if n.Name == name {
			return n
		}
	}
	t.Fatalf("class %s not in graph", name)
	return nil
}
