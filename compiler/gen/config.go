package gen

// defaultHeader is stamped at the top of every generated file. Tools and
// linters key off the "Code generated" marker to skip such files.
const defaultHeader = "Code generated by jschema-gen. DO NOT EDIT."

// Config holds the settings shared by the schema loader and the code
// generation pipeline.
type Config struct {
	// Schema is the path of the JSON Schema document that drives the run.
	Schema string

	// RootClass names the class generated for the document root schema.
	// If empty, the schema title decides, falling back to "root".
	RootClass string

	// Target is the directory that the generated code goes to.
	Target string

	// Package is the Go package import path of the generated code.
	Package string

	// Header overrides the default header comment of generated files.
	// The text is emitted without comment markers.
	Header string

	// Hints holds the generation hints keyed by schema location.
	Hints *HintDictionary

	// Tags holds additional struct tag keys emitted next to the json
	// wire tag on generated fields (e.g. "yaml").
	Tags []string

	// Features of the codegen run.
	Features []Feature

	// Language is the language target of the run.
	Language *Language

	// Hooks holds an optional list of Hooks to apply on the generator
	// pipeline.
	Hooks []Hook

	// Generator is the code generation pipeline the Hooks wrap. If nil,
	// the language entry point installs its default pipeline.
	Generator Generator
}

// DefaultConfig returns a Config with the default header, the Go language
// target and the features that are enabled by default.
func DefaultConfig() *Config {
	c := &Config{
		Header:   defaultHeader,
		Language: languages[0],
	}
	for _, f := range AllFeatures {
		if f.Default {
			c.Features = append(c.Features, f)
		}
	}
	return c
}

// OutputConfig groups the output settings of a Config.
type OutputConfig struct {
	Target  string
	Package string
	Header  string
}

// Output returns the grouped output settings.
func (c *Config) Output() OutputConfig {
	return OutputConfig{
		Target:  c.Target,
		Package: c.Package,
		Header:  c.Header,
	}
}

// SchemaConfig groups the schema input settings of a Config.
type SchemaConfig struct {
	Schema    string
	RootClass string
	Hints     *HintDictionary
}

// SchemaOpts returns the grouped schema input settings.
func (c *Config) SchemaOpts() SchemaConfig {
	return SchemaConfig{
		Schema:    c.Schema,
		RootClass: c.RootClass,
		Hints:     c.Hints,
	}
}

// FeatureEnabled reports if the given feature name is enabled.
// It fails if the given name is not a known feature.
func (c *Config) FeatureEnabled(name string) (bool, error) {
	for _, f := range allFeatures {
		if name == f.Name {
			return c.HasFeature(name), nil
		}
	}
	return false, NewConfigError("Features", name, "unknown feature name")
}

// HasFeature reports if the given feature name was added to the config.
func (c *Config) HasFeature(name string) bool {
	for _, f := range c.Features {
		if name == f.Name {
			return true
		}
	}
	return false
}
