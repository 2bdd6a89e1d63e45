// Package jschema turns a JSON Schema document into Go source code: one
// data class per schema class, structural equality comparers and a
// graph-wide rewriting visitor over the whole object graph.
//
// The package is a thin facade over the loading and generation pipeline.
// A typical run loads a document, resolves the class graph and writes
// the artifacts in one call:
//
//	cfg := gen.DefaultConfig()
//	cfg.Schema = "sarif.schema.json"
//	cfg.Target = "./model"
//	cfg.Package = "github.com/example/sarif/model"
//	if err := jschema.Generate(cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Callers that want to inspect or rewrite the graph before generation
// use LoadGraph and run the language entry point themselves:
//
//	g, err := jschema.LoadGraph(cfg)
//	...
//	err = golang.Generate(g)
//
// See package compiler/load for the schema flattening rules, and
// package compiler/gen for hints, features and the generation pipeline.
package jschema

import (
	"github.com/Bhaskers-Blu-Org2/jschema/compiler/gen"
	"github.com/Bhaskers-Blu-Org2/jschema/compiler/gen/golang"
	"github.com/Bhaskers-Blu-Org2/jschema/compiler/load"
)

// Version of the generator toolchain.
const Version = "v0.1.0"

// LoadGraph reads the schema document named by cfg.Schema, flattens it
// into class descriptors and resolves them into a generation graph with
// the configured hints applied.
func LoadGraph(cfg *gen.Config) (*gen.Graph, error) {
	if cfg == nil {
		return nil, gen.NewConfigError("Config", nil, "missing config for schema loading")
	}
	classes, err := (&load.Config{Path: cfg.Schema, RootClass: cfg.RootClass}).Load()
	if err != nil {
		return nil, err
	}
	return gen.NewGraph(cfg, classes...)
}

// Generate runs the full pipeline: load the schema document, resolve the
// class graph and write the generated artifacts under cfg.Target. When
// the config names no language target, Go is assumed.
func Generate(cfg *gen.Config) error {
	if cfg == nil {
		return gen.NewConfigError("Config", nil, "missing config for generation")
	}
	if cfg.Language == nil {
		lang, err := gen.NewLanguage("go")
		if err != nil {
			return err
		}
		cfg.Language = lang
	}
	g, err := LoadGraph(cfg)
	if err != nil {
		return err
	}
	switch cfg.Language.Name {
	case "go":
		return golang.Generate(g)
	default:
		return gen.NewConfigError("Language", cfg.Language.Name, "no generator registered for language target")
	}
}
