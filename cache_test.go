package jschema_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bhaskers-Blu-Org2/jschema"
)

// writeInput writes content into a fresh file under dir.
func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestRunInputsDigest_StableAcrossRewrite checks that rewriting a file
// with identical content keeps the digest, which is what lets watch mode
// ignore atomic-save double events.
func TestRunInputsDigest_StableAcrossRewrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := jschema.RunInputs{
		Schema: writeInput(t, dir, "schema.json", `{"title": "log"}`),
		Hints:  writeInput(t, dir, "hints.yaml", "hints: []"),
	}

	first, err := in.Digest()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(in.Schema, []byte(`{"title": "log"}`), 0o644))
	second, err := in.Digest()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestRunInputsDigest_ChangesWithContent checks that edits to either
// input change the digest.
func TestRunInputsDigest_ChangesWithContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := jschema.RunInputs{
		Schema: writeInput(t, dir, "schema.json", `{"title": "log"}`),
		Hints:  writeInput(t, dir, "hints.yaml", "hints: []"),
	}

	first, err := in.Digest()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(in.Hints, []byte("hints:\n- kind: class-name"), 0o644))
	second, err := in.Digest()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

// TestRunInputsDigest_SeparatesInputs checks that content moving across
// the file boundary changes the digest.
func TestRunInputsDigest_SeparatesInputs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	left := jschema.RunInputs{
		Schema: writeInput(t, dir, "a.json", "ab"),
		Hints:  writeInput(t, dir, "a.yaml", "c"),
	}
	right := jschema.RunInputs{
		Schema: writeInput(t, dir, "b.json", "a"),
		Hints:  writeInput(t, dir, "b.yaml", "bc"),
	}

	first, err := left.Digest()
	require.NoError(t, err)
	second, err := right.Digest()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

// TestRunInputsDigest_OptionalHints checks that runs without a hints
// file digest only the schema document.
func TestRunInputsDigest_OptionalHints(t *testing.T) {
	t.Parallel()

	in := jschema.RunInputs{
		Schema: writeInput(t, t.TempDir(), "schema.json", `{"title": "log"}`),
	}

	digest, err := in.Digest()
	require.NoError(t, err)
	assert.NotEmpty(t, digest)
}

// TestRunInputsDigest_MissingFile checks that unreadable inputs surface
// as errors instead of digesting as empty.
func TestRunInputsDigest_MissingFile(t *testing.T) {
	t.Parallel()

	in := jschema.RunInputs{
		Schema: filepath.Join(t.TempDir(), "absent.json"),
	}

	_, err := in.Digest()
	assert.Error(t, err)
}
