// testgen is a simple test program to demonstrate the Jennifer-based code generator.
// Run: go run ./compiler/gen/cmd/testgen
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Bhaskers-Blu-Org2/jschema/compiler/gen"
	"github.com/Bhaskers-Blu-Org2/jschema/compiler/gen/golang"
	"github.com/Bhaskers-Blu-Org2/jschema/compiler/load"
)

func main() {
	// Create a temp directory for output
	outDir, err := os.MkdirTemp("", "jschema-jennifer-test-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create temp dir: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Output directory: %s\n", outDir)

	// Define test classes (a small analysis-log document)
	classes := []*load.Class{
		{
			Name: "log",
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
				{Name: "tool", Info: &load.TypeInfo{Kind: load.TypeString}, Position: 0, Path: "/definitions/run/properties/tool"},
				{Name: "files", Info: &load.TypeInfo{Kind: load.TypeClass, Class: "file"}, Dictionary: true, Position: 1, Path: "/definitions/run/properties/files"},
			},
		},
		{
			Name: "file",
			Path: "/definitions/file",
			Properties: []*load.Property{
				{Name: "uri", Info: &load.TypeInfo{Kind: load.TypeString}, Required: true, Position: 0, Path: "/definitions/file/properties/uri"},
				{Name: "parent", Info: &load.TypeInfo{Kind: load.TypeClass, Class: "file"}, Position: 1, Path: "/definitions/file/properties/parent"},
			},
		},
	}

	// Create config with functional options
	config, err := gen.NewConfig(
		gen.WithPackage("example.com/test/model"),
		gen.WithTarget(outDir),
		gen.WithLanguage("go"),
		gen.WithFeatures(gen.AllFeatures...),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create config: %v\n", err)
		os.Exit(1)
	}

	// Create the graph
	graph, err := gen.NewGraph(config, classes...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create graph: %v\n", err)
		os.Exit(1)
	}

	// Generate using Jennifer with the Go target
	fmt.Println("Generating code with Jennifer (Go target)...")
	if err = golang.Generate(graph); err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}

	// List generated files
	fmt.Println("\nGenerated files:")
	err = filepath.Walk(outDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			relPath, _ := filepath.Rel(outDir, path)
			fmt.Printf("  %s (%d bytes)\n", relPath, info.Size())
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to list files: %v\n", err)
	}

	// Show sample output
	fmt.Println("\n--- Sample: file_comparer.go ---")
	content, err := os.ReadFile(filepath.Join(outDir, "file_comparer.go"))
	if err == nil {
		// Show first 80 lines
		lines := 0
		for i, c := range content {
			fmt.Print(string(c))
			if c == '\n' {
				lines++
				if lines >= 80 {
					fmt.Println("... (truncated)")
					break
				}
			}
			if i >= 4000 {
				fmt.Println("... (truncated)")
				break
			}
		}
	}

	fmt.Printf("\n\nTo inspect generated code: ls -la %s\n", outDir)
	fmt.Println("To verify compilation: go build " + outDir + "/...")

	fmt.Println("Done!")
}
