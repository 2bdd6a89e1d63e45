package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeKind(t *testing.T) {
	t.Run("names", func(t *testing.T) {
		assert.Equal(t, "string", TypeString.String())
		assert.Equal(t, "time.Time", TypeTime.String())
		assert.Equal(t, "class", TypeClass.String())
		assert.Equal(t, "invalid", TypeInvalid.String())
		assert.Equal(t, "invalid", TypeKind(99).String())
	})

	t.Run("valid", func(t *testing.T) {
		assert.True(t, TypeBool.Valid())
		assert.True(t, TypeClass.Valid())
		assert.False(t, TypeInvalid.Valid())
		assert.False(t, TypeKind(99).Valid())
	})
}

func TestTypeInfo(t *testing.T) {
	t.Run("schema_defined", func(t *testing.T) {
		assert.True(t, (&TypeInfo{Kind: TypeClass, Class: "result"}).SchemaDefined())
		assert.False(t, (&TypeInfo{Kind: TypeString}).SchemaDefined())
		var nilInfo *TypeInfo
		assert.False(t, nilInfo.SchemaDefined())
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "result", (&TypeInfo{Kind: TypeClass, Class: "result"}).String())
		assert.Equal(t, "int", (&TypeInfo{Kind: TypeInt}).String())
		var nilInfo *TypeInfo
		assert.Equal(t, "invalid", nilInfo.String())
	})
}

func TestClassProperty(t *testing.T) {
	c := &Class{
		Name: "result",
		Properties: []*Property{
			{Name: "ruleId", Position: 0},
			{Name: "level", Position: 1},
		},
	}
	assert.Equal(t, 1, c.Property("level").Position)
	assert.Nil(t, c.Property("absent"))
}
