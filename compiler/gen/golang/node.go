package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/Bhaskers-Blu-Org2/jschema/compiler/gen"
	"github.com/Bhaskers-Blu-Org2/jschema/compiler/load"
)

// genNode generates the shared node file (node.go): the Kind
// discriminator with one constant per class, the Node interface every
// generated class implements, and the scalar hash helpers the comparers
// fold values through.
func genNode(h gen.GeneratorHelper) *jen.File {
	f := h.NewFile(h.Pkg())
	graph := h.Graph()

	f.Comment("Kind discriminates the generated classes on the Node interface.")
	f.Type().Id("Kind").Int()

	f.Comment("Kind constants, one per generated class in graph order.")
	f.Const().DefsFunc(func(defs *jen.Group) {
		defs.Id("KindNone").Id("Kind").Op("=").Iota()
		for _, t := range graph.Nodes {
			defs.Id(t.Kind())
		}
	})

	f.Comment("String returns the class name the kind discriminates.")
	f.Func().Params(jen.Id("k").Id("Kind")).Id("String").Params().String().BlockFunc(func(grp *jen.Group) {
		grp.Switch(jen.Id("k")).BlockFunc(func(sw *jen.Group) {
			for _, t := range graph.Nodes {
				sw.Case(jen.Id(t.Kind())).Block(jen.Return(jen.Lit(t.Name)))
			}
		})
		grp.Return(jen.Lit("None"))
	})

	f.Comment("Node is implemented by every generated class.")
	f.Type().Id("Node").Interface(
		jen.Id("Kind").Params().Id("Kind"),
	)

	if h.FeatureEnabled(gen.FeatureComparers.Name) {
		genHashHelpers(f, graph)
	}

	return f
}

// hashHelperOrder fixes the emission order of the scalar hash helpers,
// keeping repeated runs byte-identical.
var hashHelperOrder = []load.TypeKind{
	load.TypeBool,
	load.TypeInt,
	load.TypeFloat,
	load.TypeString,
	load.TypeTime,
	load.TypeUUID,
	load.TypeAny,
}

// genHashHelpers emits the scalar hash helpers for the value kinds the
// graph's properties actually carry. Class-valued properties need none;
// they delegate to the comparer singleton of their class.
func genHashHelpers(f *jen.File, graph *gen.Graph) {
	used := make(map[load.TypeKind]bool)
	for _, t := range graph.Nodes {
		for _, p := range t.Properties {
			// Dictionary keys are strings and feed the key hash.
			if p.Dictionary {
				used[load.TypeString] = true
			}
			if p.Type == nil {
				used[load.TypeAny] = true
				continue
			}
			if p.Type.Kind != load.TypeClass {
				used[p.Type.Kind] = true
			}
		}
	}
	// hashAny folds through hashString.
	if used[load.TypeAny] {
		used[load.TypeString] = true
	}

	for _, kind := range hashHelperOrder {
		if used[kind] {
			genHashHelper(f, kind)
		}
	}
}

func genHashHelper(f *jen.File, kind load.TypeKind) {
	switch kind {
	case load.TypeBool:
		f.Comment("hashBool folds a bool into the hash scheme of the generated comparers.")
		f.Func().Id("hashBool").Params(jen.Id("v").Bool()).Int().Block(
			jen.If(jen.Id("v")).Block(jen.Return(jen.Lit(1))),
			jen.Return(jen.Lit(0)),
		)
	case load.TypeInt:
		f.Comment("hashInt folds an int into the hash scheme of the generated comparers.")
		f.Func().Id("hashInt").Params(jen.Id("v").Int()).Int().Block(
			jen.Return(jen.Id("v")),
		)
	case load.TypeFloat:
		f.Comment("hashFloat64 folds a float64 into the hash scheme of the generated comparers.")
		f.Func().Id("hashFloat64").Params(jen.Id("v").Float64()).Int().Block(
			jen.Return(jen.Int().Call(jen.Qual("math", "Float64bits").Call(jen.Id("v")))),
		)
	case load.TypeString:
		f.Comment("hashString folds a string into the hash scheme of the generated comparers.")
		f.Func().Id("hashString").Params(jen.Id("v").String()).Int().Block(
			jen.Id("h").Op(":=").Lit(0),
			jen.For(jen.List(jen.Id("_"), jen.Id("r")).Op(":=").Range().Id("v")).Block(
				jen.Id("h").Op("=").Id("h").Op("*").Lit(31).Op("+").Int().Call(jen.Id("r")),
			),
			jen.Return(jen.Id("h")),
		)
	case load.TypeTime:
		f.Comment("hashTime folds a time.Time into the hash scheme of the generated comparers.")
		f.Comment("Times that are Equal hash alike regardless of location.")
		f.Func().Id("hashTime").Params(jen.Id("v").Qual("time", "Time")).Int().Block(
			jen.Return(jen.Int().Call(jen.Id("v").Dot("UnixNano").Call())),
		)
	case load.TypeUUID:
		f.Comment("hashUUID folds a uuid.UUID into the hash scheme of the generated comparers.")
		f.Func().Id("hashUUID").Params(jen.Id("v").Qual("github.com/google/uuid", "UUID")).Int().Block(
			jen.Id("h").Op(":=").Lit(0),
			jen.For(jen.List(jen.Id("_"), jen.Id("b")).Op(":=").Range().Id("v")).Block(
				jen.Id("h").Op("=").Id("h").Op("*").Lit(31).Op("+").Int().Call(jen.Id("b")),
			),
			jen.Return(jen.Id("h")),
		)
	case load.TypeAny:
		f.Comment("hashAny folds an untyped value into the hash scheme of the generated comparers.")
		f.Func().Id("hashAny").Params(jen.Id("v").Any()).Int().Block(
			jen.If(jen.Id("v").Op("==").Nil()).Block(jen.Return(jen.Lit(0))),
			jen.Return(jen.Id("hashString").Call(jen.Qual("fmt", "Sprint").Call(jen.Id("v")))),
		)
	}
}
