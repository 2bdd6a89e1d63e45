package gen

import (
	"errors"
)

// Option configures code generation.
type Option func(*Config) error

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithSchema sets the path of the JSON Schema document to generate from.
func WithSchema(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return NewConfigError("Schema", nil, "schema document path cannot be empty")
		}
		c.Schema = path
		return nil
	}
}

// WithRootClass names the class generated for the document root schema.
// Without it the schema title decides, falling back to "root".
func WithRootClass(name string) Option {
	return func(c *Config) error {
		if name == "" {
			return NewConfigError("RootClass", nil, "root class name cannot be empty")
		}
		c.RootClass = name
		return nil
	}
}

// WithTarget sets the output directory.
// The directory where generated code will be written.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithPackage sets the output package import path.
// For example: "github.com/org/project/sarif".
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithHints sets the hint dictionary applied during graph building.
// A nil dictionary clears previously configured hints.
func WithHints(h *HintDictionary) Option {
	return func(c *Config) error {
		c.Hints = h
		return nil
	}
}

// WithHintsFile reads a hint dictionary from the given YAML or JSON file.
// This is a convenience function that loads the file eagerly, so a broken
// dictionary fails at configuration time rather than mid-generation.
func WithHintsFile(path string) Option {
	return func(c *Config) error {
		h, err := ReadHintsFile(path)
		if err != nil {
			return err
		}
		c.Hints = h
		return nil
	}
}

// WithTags adds struct tag keys emitted next to the json wire tag.
// For example, WithTags("yaml") tags every generated field with both
// json and yaml keys carrying the wire name.
func WithTags(tags ...string) Option {
	return func(c *Config) error {
		for _, tag := range tags {
			switch tag {
			case "":
				return NewConfigError("Tags", tag, "tag key cannot be empty")
			case "json":
				return NewConfigError("Tags", tag, "the json tag is always emitted")
			}
		}
		c.Tags = append(c.Tags, tags...)
		return nil
	}
}

// WithFeatures enables specific features.
// Features control optional code generation capabilities.
func WithFeatures(features ...Feature) Option {
	return func(c *Config) error {
		c.Features = append(c.Features, features...)
		return nil
	}
}

// WithLanguage sets the language target by name.
// This is a convenience function that resolves the name against the
// registered language targets. Supported languages: "go".
func WithLanguage(name string) Option {
	return func(c *Config) error {
		l, err := NewLanguage(name)
		if err != nil {
			return NewConfigError("Language", name, "unsupported language target; use go")
		}
		c.Language = l
		return nil
	}
}

// WithHooks adds generation hooks.
// Hooks wrap the code generation pipeline.
func WithHooks(hooks ...Hook) Option {
	return func(c *Config) error {
		c.Hooks = append(c.Hooks, hooks...)
		return nil
	}
}

// WithGenerator sets a custom code generator.
// This allows replacing the language pipeline entirely, for example to
// collect artifacts instead of writing files. If not set, the language
// entry point installs its default pipeline.
func WithGenerator(g Generator) Option {
	return func(c *Config) error {
		if g == nil {
			return NewConfigError("Generator", nil, "generator cannot be nil")
		}
		c.Generator = g
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
