package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bhaskers-Blu-Org2/jschema/compiler/load"
)

func tableOf(props ...*Property) *PropertyTable {
	return NewPropertyTable(&Type{Properties: props})
}

func tableKeys(pt *PropertyTable) []string {
	keys := make([]string, 0, pt.Len())
	for _, e := range pt.Entries() {
		keys = append(keys, e.Key)
	}
	return keys
}

func TestPropertyTableKeys(t *testing.T) {
	t.Run("scalar contributes its base view only", func(t *testing.T) {
		pt := tableOf(&Property{Name: "URI", Type: &load.TypeInfo{Kind: load.TypeString}})

		assert.Equal(t, []string{"URI"}, tableKeys(pt))
	})

	t.Run("array contributes one view per peeled level", func(t *testing.T) {
		pt := tableOf(&Property{Name: "Cells", Rank: 2, Type: &load.TypeInfo{Kind: load.TypeInt}})

		assert.Equal(t, []string{"Cells", "Cells[]", "Cells[][]"}, tableKeys(pt))
	})

	t.Run("dictionary contributes its value view", func(t *testing.T) {
		pt := tableOf(&Property{Name: "Properties", Dictionary: true, Type: &load.TypeInfo{Kind: load.TypeAny}})

		assert.Equal(t, []string{"Properties", "Properties{}"}, tableKeys(pt))
	})

	t.Run("dictionary of arrays peels the value view", func(t *testing.T) {
		pt := tableOf(&Property{Name: "Lookup", Rank: 2, Dictionary: true, Type: &load.TypeInfo{Kind: load.TypeString}})

		assert.Equal(t, []string{"Lookup", "Lookup{}", "Lookup{}[]", "Lookup{}[][]"}, tableKeys(pt))
	})

	t.Run("groups views by property in declaration order", func(t *testing.T) {
		pt := tableOf(
			&Property{Name: "Results", Rank: 1, Type: &load.TypeInfo{Kind: load.TypeClass, Class: "result"}, Position: 0},
			&Property{Name: "Version", Type: &load.TypeInfo{Kind: load.TypeString}, Position: 1},
		)

		assert.Equal(t, []string{"Results", "Results[]", "Version"}, tableKeys(pt))
	})
}

func TestPropertyTableLookup(t *testing.T) {
	pt := tableOf(&Property{
		Name:       "Lookup",
		Rank:       2,
		Dictionary: true,
		Required:   true,
		Type:       &load.TypeInfo{Kind: load.TypeString},
	})

	t.Run("base view keeps the declared shape", func(t *testing.T) {
		info, ok := pt.Lookup("Lookup")
		require.True(t, ok)
		assert.Equal(t, 2, info.Rank)
		assert.True(t, info.Dictionary)
		assert.True(t, info.Required)
	})

	t.Run("value view drops the dictionary only", func(t *testing.T) {
		info, ok := pt.Lookup("Lookup{}")
		require.True(t, ok)
		assert.Equal(t, 2, info.Rank)
		assert.False(t, info.Dictionary)
	})

	t.Run("element views lower the rank one level at a time", func(t *testing.T) {
		info, ok := pt.Lookup("Lookup{}[]")
		require.True(t, ok)
		assert.Equal(t, 1, info.Rank)
		assert.False(t, info.Dictionary)

		info, ok = pt.Lookup("Lookup{}[][]")
		require.True(t, ok)
		assert.Equal(t, 0, info.Rank)
		assert.True(t, info.Scalar())
	})

	t.Run("unknown key misses", func(t *testing.T) {
		_, ok := pt.Lookup("Lookup[]")
		assert.False(t, ok)
	})

	t.Run("nil table is empty", func(t *testing.T) {
		var pt *PropertyTable
		_, ok := pt.Lookup("URI")
		assert.False(t, ok)
		assert.Equal(t, 0, pt.Len())
		assert.Nil(t, pt.Entries())
	})
}

func TestPropertyInfoTypeString(t *testing.T) {
	fileData := &Type{Name: "FileData"}
	tests := []struct {
		name     string
		prop     *Property
		key      string
		expected string
	}{
		{
			name:     "primitive scalar",
			prop:     &Property{Name: "URI", Type: &load.TypeInfo{Kind: load.TypeString}},
			key:      "URI",
			expected: "string",
		},
		{
			name:     "time scalar",
			prop:     &Property{Name: "Start", Type: &load.TypeInfo{Kind: load.TypeTime}},
			key:      "Start",
			expected: "time.Time",
		},
		{
			name:     "uuid scalar",
			prop:     &Property{Name: "GUID", Type: &load.TypeInfo{Kind: load.TypeUUID}},
			key:      "GUID",
			expected: "uuid.UUID",
		},
		{
			name:     "class array",
			prop:     &Property{Name: "Files", Rank: 1, Type: &load.TypeInfo{Kind: load.TypeClass, Class: "file"}, Ref: fileData},
			key:      "Files",
			expected: "[]*FileData",
		},
		{
			name:     "class array element",
			prop:     &Property{Name: "Files", Rank: 1, Type: &load.TypeInfo{Kind: load.TypeClass, Class: "file"}, Ref: fileData},
			key:      "Files[]",
			expected: "*FileData",
		},
		{
			name:     "dictionary of class arrays",
			prop:     &Property{Name: "Index", Rank: 2, Dictionary: true, Type: &load.TypeInfo{Kind: load.TypeClass, Class: "file"}, Ref: fileData},
			key:      "Index",
			expected: "map[string][][]*FileData",
		},
		{
			name:     "unresolved class falls back to the wire name",
			prop:     &Property{Name: "Parent", Type: &load.TypeInfo{Kind: load.TypeClass, Class: "file"}},
			key:      "Parent",
			expected: "*file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt := tableOf(tt.prop)
			info, ok := pt.Lookup(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.expected, info.TypeString())
		})
	}
}

func TestKeySuffixes(t *testing.T) {
	assert.Equal(t, "Files[]", ElementKey("Files"))
	assert.Equal(t, "Index{}", ValueKey("Index"))
	assert.Equal(t, "Index{}[]", ElementKey(ValueKey("Index")))
}
