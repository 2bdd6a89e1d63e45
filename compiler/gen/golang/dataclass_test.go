package golang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bhaskers-Blu-Org2/jschema/compiler/gen"
)

// =============================================================================
// genDataClass Tests
// =============================================================================

func TestGenDataClass_BasicStruct(t *testing.T) {
	g := testGraph(t, logClasses()...)

	file := genDataClass(testHelper(g), classNamed(t, g, "SARIFLog"))
	require.NotNil(t, file)

	code := file.GoString()
	assert.Contains(t, code, "type SARIFLog struct")
	assert.Contains(t, code, "Version")
	assert.Contains(t, code, "[]*Run")
}

func TestGenDataClass_WireTags(t *testing.T) {
	g := testGraph(t, logClasses()...)

	code := genDataClass(testHelper(g), classNamed(t, g, "SARIFLog")).GoString()
	assert.Contains(t, code, "json:\"version\"", "required properties carry no omitempty")
	assert.Contains(t, code, "json:\"runs,omitempty\"")
}

func TestGenDataClass_ContainerShapes(t *testing.T) {
	g := testGraph(t, matrixClasses()...)

	code := genDataClass(testHelper(g), classNamed(t, g, "Matrix")).GoString()
	assert.Contains(t, code, "[][]int")
	assert.Contains(t, code, "[][]*Cell")
	assert.Contains(t, code, "map[string]string")
	assert.Contains(t, code, "map[string][]*Cell")
	assert.Contains(t, code, "time.Time")
	assert.Contains(t, code, "uuid.UUID")
}

func TestGenDataClass_Descriptions(t *testing.T) {
	g := testGraph(t, logClasses()...)

	code := genDataClass(testHelper(g), classNamed(t, g, "File")).GoString()
	assert.Contains(t, code, "// A single file involved in the run.")
	assert.Contains(t, code, "// The location of the file.")
}

func TestGenDataClass_KindMethod(t *testing.T) {
	g := testGraph(t, logClasses()...)

	code := genDataClass(testHelper(g), classNamed(t, g, "File")).GoString()
	assert.Contains(t, code, "func (*File) Kind() Kind")
	assert.Contains(t, code, "return KindFile")
}

func TestGenDataClass_SelfReference(t *testing.T) {
	g := testGraph(t, logClasses()...)

	code := genDataClass(testHelper(g), classNamed(t, g, "File")).GoString()
	assert.Contains(t, code, "Parent")
	assert.Contains(t, code, "*File")
}

func TestGenDataClass_RenamedClassKeepsWireNames(t *testing.T) {
	cfg := gen.DefaultConfig()
	cfg.Target = t.TempDir()
	cfg.Hints = &gen.HintDictionary{}
	require.NoError(t, cfg.Hints.Add("/definitions/file", &gen.Hint{Kind: gen.ClassNameHint, Name: "FileData"}))
	g, err := gen.NewGraph(cfg, logClasses()...)
	require.NoError(t, err)

	code := genDataClass(testHelper(g), classNamed(t, g, "Run")).GoString()
	assert.Contains(t, code, "map[string]*FileData", "references follow the rename")
	assert.Contains(t, code, "json:\"files,omitempty\"", "wire names never follow the rename")
}

func TestGenDataClass_ExtraTags(t *testing.T) {
	cfg := gen.DefaultConfig()
	cfg.Target = t.TempDir()
	cfg.Tags = []string{"yaml"}
	g, err := gen.NewGraph(cfg, logClasses()...)
	require.NoError(t, err)

	code := genDataClass(testHelper(g), classNamed(t, g, "SARIFLog")).GoString()
	assert.Contains(t, code, "json:\"version\"")
	assert.Contains(t, code, "yaml:\"version\"")
}
