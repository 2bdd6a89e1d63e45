package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewSchemaError("Result", "ruleId", "duplicate resolved name", cause)

		assert.Contains(t, err.Error(), "jschema: schema error")
		assert.Contains(t, err.Error(), "class Result")
		assert.Contains(t, err.Error(), "property ruleId")
		assert.Contains(t, err.Error(), "duplicate resolved name")
		assert.Contains(t, err.Error(), "underlying error")
	})

	t.Run("Error message with class only", func(t *testing.T) {
		err := &SchemaError{Class: "Result"}
		assert.Contains(t, err.Error(), "class Result")
		assert.NotContains(t, err.Error(), "property")
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("root cause")
		err := NewSchemaError("Result", "", "", cause)

		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("Is matches ErrInvalidSchema", func(t *testing.T) {
		err := NewSchemaError("Result", "", "", nil)
		assert.True(t, err.Is(ErrInvalidSchema))
	})

	t.Run("IsSchemaError helper", func(t *testing.T) {
		err := NewSchemaError("Result", "ruleId", "test", nil)
		assert.True(t, IsSchemaError(err))
		assert.False(t, IsSchemaError(errors.New("other")))
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with value", func(t *testing.T) {
		err := NewConfigError("Workers", -1, "must be positive")

		assert.Contains(t, err.Error(), "jschema: config error")
		assert.Contains(t, err.Error(), "Workers")
		assert.Contains(t, err.Error(), "-1")
		assert.Contains(t, err.Error(), "must be positive")
	})

	t.Run("Error message without value", func(t *testing.T) {
		err := NewConfigError("Package", nil, "cannot be empty")

		assert.Contains(t, err.Error(), "Package")
		assert.Contains(t, err.Error(), "cannot be empty")
		assert.NotContains(t, err.Error(), "value:")
	})

	t.Run("Is matches ErrMissingConfig", func(t *testing.T) {
		err := NewConfigError("Target", nil, "missing")
		assert.True(t, err.Is(ErrMissingConfig))
	})

	t.Run("IsConfigError helper", func(t *testing.T) {
		err := NewConfigError("Target", nil, "missing")
		assert.True(t, IsConfigError(err))
		assert.False(t, IsConfigError(errors.New("other")))
	})
}

func TestHintError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("no such pointer")
		err := NewHintError("/definitions/file", "class-name", "path does not resolve", cause)

		assert.Contains(t, err.Error(), "jschema: hint error")
		assert.Contains(t, err.Error(), "at /definitions/file")
		assert.Contains(t, err.Error(), "kind: class-name")
		assert.Contains(t, err.Error(), "path does not resolve")
		assert.Contains(t, err.Error(), "no such pointer")
	})

	t.Run("Error message with path only", func(t *testing.T) {
		err := &HintError{Path: "/definitions/file", Message: "test"}
		assert.Contains(t, err.Error(), "at /definitions/file")
		assert.NotContains(t, err.Error(), "kind:")
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("root cause")
		err := NewHintError("/definitions/file", "", "", cause)

		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("Is matches ErrInvalidHint", func(t *testing.T) {
		err := NewHintError("/definitions/file", "", "", nil)
		assert.True(t, err.Is(ErrInvalidHint))
	})

	t.Run("IsHintError helper", func(t *testing.T) {
		err := NewHintError("/definitions/file", "dictionary", "", nil)
		assert.True(t, IsHintError(err))
		assert.False(t, IsHintError(errors.New("other")))
	})
}

func TestGenerationError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("write failed")
		err := NewGenerationError("comparer", "result_comparer.go", "cannot write file", cause)

		assert.Contains(t, err.Error(), "jschema: generation error")
		assert.Contains(t, err.Error(), "phase comparer")
		assert.Contains(t, err.Error(), "file: result_comparer.go")
		assert.Contains(t, err.Error(), "cannot write file")
		assert.Contains(t, err.Error(), "write failed")
	})

	t.Run("Error message with phase only", func(t *testing.T) {
		err := &GenerationError{Phase: "visitor"}
		assert.Contains(t, err.Error(), "phase visitor")
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("io error")
		err := NewGenerationError("dataclass", "", "", cause)

		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("Is matches ErrGenerationFailed", func(t *testing.T) {
		err := NewGenerationError("dataclass", "", "", nil)
		assert.True(t, err.Is(ErrGenerationFailed))
	})

	t.Run("IsGenerationError helper", func(t *testing.T) {
		err := NewGenerationError("dataclass", "result.go", "", nil)
		assert.True(t, IsGenerationError(err))
		assert.False(t, IsGenerationError(errors.New("other")))
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("ErrInvalidSchema", func(t *testing.T) {
		assert.Equal(t, "jschema: invalid schema", ErrInvalidSchema.Error())
	})

	t.Run("ErrMissingConfig", func(t *testing.T) {
		assert.Equal(t, "jschema: missing configuration", ErrMissingConfig.Error())
	})

	t.Run("ErrInvalidHint", func(t *testing.T) {
		assert.Equal(t, "jschema: invalid hint", ErrInvalidHint.Error())
	})

	t.Run("ErrGenerationFailed", func(t *testing.T) {
		assert.Equal(t, "jschema: code generation failed", ErrGenerationFailed.Error())
	})
}

func TestErrorTypeChecking(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		isSchema bool
		isConfig bool
		isHint   bool
		isGen    bool
	}{
		{
			name:     "SchemaError",
			err:      NewSchemaError("Result", "", "", nil),
			isSchema: true,
		},
		{
			name:     "ConfigError",
			err:      NewConfigError("Package", nil, ""),
			isConfig: true,
		},
		{
			name:   "HintError",
			err:    NewHintError("/definitions/file", "class-name", "", nil),
			isHint: true,
		},
		{
			name:  "GenerationError",
			err:   NewGenerationError("dataclass", "", "", nil),
			isGen: true,
		},
		{
			name: "Other error",
			err:  errors.New("other"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isSchema, IsSchemaError(tt.err))
			assert.Equal(t, tt.isConfig, IsConfigError(tt.err))
			assert.Equal(t, tt.isHint, IsHintError(tt.err))
			assert.Equal(t, tt.isGen, IsGenerationError(tt.err))
		})
	}
}

func TestErrorsAs(t *testing.T) {
	t.Run("As SchemaError", func(t *testing.T) {
		err := NewSchemaError("Result", "ruleId", "invalid", nil)
		var schemaErr *SchemaError
		require.True(t, errors.As(err, &schemaErr))
		assert.Equal(t, "Result", schemaErr.Class)
		assert.Equal(t, "ruleId", schemaErr.Property)
	})

	t.Run("As ConfigError", func(t *testing.T) {
		err := NewConfigError("Package", "test", "invalid")
		var configErr *ConfigError
		require.True(t, errors.As(err, &configErr))
		assert.Equal(t, "Package", configErr.Option)
		assert.Equal(t, "test", configErr.Value)
	})

	t.Run("As HintError", func(t *testing.T) {
		err := NewHintError("/definitions/file", "property-type", "invalid", nil)
		var hintErr *HintError
		require.True(t, errors.As(err, &hintErr))
		assert.Equal(t, "/definitions/file", hintErr.Path)
		assert.Equal(t, "property-type", hintErr.Kind)
	})

	t.Run("As GenerationError", func(t *testing.T) {
		err := NewGenerationError("comparer", "result_comparer.go", "failed", nil)
		var genErr *GenerationError
		require.True(t, errors.As(err, &genErr))
		assert.Equal(t, "comparer", genErr.Phase)
		assert.Equal(t, "result_comparer.go", genErr.File)
	})
}
