package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func helloFile(typeName string) *jen.File {
	f := jen.NewFile("model")
	f.Type().Id(typeName).Struct()
	return f
}

func TestFileWriter(t *testing.T) {
	t.Run("renders and formats to disk", func(t *testing.T) {
		dir := t.TempDir()
		w := NewFileWriter(dir)

		require.NoError(t, w.Write(helloFile("Thing"), "thing.go"))

		content, err := os.ReadFile(filepath.Join(dir, "thing.go"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "package model")
		assert.Contains(t, string(content), "type Thing struct")
	})

	t.Run("creates nested directories", func(t *testing.T) {
		dir := t.TempDir()
		w := NewFileWriter(dir)

		require.NoError(t, w.Write(helloFile("Thing"), filepath.Join("sub", "thing.go")))

		_, err := os.Stat(filepath.Join(dir, "sub", "thing.go"))
		require.NoError(t, err)
	})

	t.Run("records metrics", func(t *testing.T) {
		w := NewFileWriter(t.TempDir())
		require.NoError(t, w.Write(helloFile("A"), "a.go"))
		require.NoError(t, w.Write(helloFile("B"), "b.go"))

		m := w.Metrics()
		assert.NotEmpty(t, m.RunID)
		assert.Equal(t, 2, m.FilesGenerated)
		assert.Greater(t, m.TotalBytes, int64(0))
	})

	t.Run("collects artifacts sorted by name", func(t *testing.T) {
		w := NewFileWriter(t.TempDir())
		require.NoError(t, w.Write(helloFile("B"), "b.go"))
		require.NoError(t, w.Write(helloFile("A"), "a.go"))

		artifacts := w.Artifacts()
		assert.Equal(t, []string{"a.go", "b.go"}, artifacts.Names())
		assert.Equal(t, 2, artifacts.Len())
		assert.Greater(t, artifacts.Size(), int64(0))
	})

	t.Run("dry run records without writing", func(t *testing.T) {
		dir := t.TempDir()
		w := NewFileWriter(dir)
		w.dryRun = true

		require.NoError(t, w.Write(helloFile("Thing"), "thing.go"))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
		assert.Equal(t, []string{"thing.go"}, w.Artifacts().Names())
	})

	t.Run("reports invalid code as a generation error", func(t *testing.T) {
		w := NewFileWriter(t.TempDir())
		f := jen.NewFile("model")
		f.Add(jen.Id("func")) // not a declaration

		err := w.Write(f, "broken.go")

		require.Error(t, err)
		assert.True(t, IsGenerationError(err))
	})

	t.Run("nil artifact set is empty", func(t *testing.T) {
		var s *ArtifactSet
		assert.Nil(t, s.All())
		assert.Nil(t, s.Names())
		assert.Equal(t, 0, s.Len())
		assert.Equal(t, int64(0), s.Size())
	})
}
