package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/Bhaskers-Blu-Org2/jschema/compiler/gen"
)

// genDataClass generates the data class file of one type ({class}.go):
// the property-holder struct with one field per property in declaration
// order, the json wire tags, and the Kind discriminator method.
func genDataClass(h gen.GeneratorHelper, t *gen.Type) *jen.File {
	f := h.NewFile(h.Pkg())

	f.Commentf("%s is the generated data class of the %q schema.", t.Name, t.WireName)
	if t.Description != "" {
		f.Comment(t.Description)
	}
	f.Type().Id(t.Name).StructFunc(func(group *jen.Group) {
		for _, p := range t.Properties {
			if p.Description != "" {
				group.Comment(p.Description)
			}
			// The tag carries the wire name, so hinted renames never
			// change the serialized representation.
			group.Id(p.Name).Add(h.GoType(p)).Tag(h.StructTags(p))
		}
	})

	f.Commentf("Kind returns the discriminator of %s nodes on the Node interface.", t.Name)
	f.Func().Params(jen.Op("*").Id(t.Name)).Id("Kind").Params().Id("Kind").Block(
		jen.Return(jen.Id(t.Kind())),
	)

	return f
}
