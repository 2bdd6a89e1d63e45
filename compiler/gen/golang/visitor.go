package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/Bhaskers-Blu-Org2/jschema/compiler/gen"
)

// genVisitor generates the rewriting visitor file (visitor.go): the
// RewritingVisitor struct with one handler field per class, the
// kind-dispatched Visit entry, the null-checked re-entry helper, and
// the traversal method pair of every class.
func genVisitor(h gen.GeneratorHelper) *jen.File {
	f := h.NewFile(h.Pkg())
	graph := h.Graph()

	f.Comment("RewritingVisitor rewrites object graphs node by node. Visit dispatches every node to the handler of its class; a handler returns the replacement and may call the Visit{Class} default traversal to descend. Classes without a handler traverse their schema-defined properties in place and return the node unchanged, so the zero value visits every reachable node without rewriting anything.")
	f.Type().Id("RewritingVisitor").StructFunc(func(group *jen.Group) {
		for _, t := range graph.Nodes {
			group.Commentf("%s, when set, replaces the default traversal of %s nodes.", t.HandlerField(), t.Name)
			group.Id(t.HandlerField()).Func().Params(jen.Op("*").Id(t.Name)).Op("*").Id(t.Name)
		}
	})

	genVisit(f, graph)
	genVisitNullChecked(f)

	for _, t := range graph.Nodes {
		genTraversal(f, t)
	}

	return f
}

// genVisit emits the Visit entry point: dispatch on the node kind, with
// nodes of unrecognized kinds passing through unchanged.
func genVisit(f *jen.File, graph *gen.Graph) {
	f.Comment("Visit rewrites the graph rooted at node and returns the replacement. Visiting a nil node is a bug in the caller and panics; nil properties and elements inside the graph are skipped.")
	f.Func().Params(jen.Id("v").Op("*").Id("RewritingVisitor")).Id("Visit").Params(
		jen.Id("node").Id("Node"),
	).Id("Node").BlockFunc(func(grp *jen.Group) {
		grp.If(jen.Id("node").Op("==").Nil()).Block(
			jen.Panic(jen.Lit("Visit called with a nil node")),
		)
		grp.Switch(jen.Id("node").Dot("Kind").Call()).BlockFunc(func(sw *jen.Group) {
			for _, t := range graph.Nodes {
				sw.Case(jen.Id(t.Kind())).Block(
					jen.Return(jen.Id("v").Dot(t.TraversalMethod()).Call(
						jen.Id("node").Assert(jen.Op("*").Id(t.Name)),
					)),
				)
			}
			sw.Default().Block(jen.Return(jen.Id("node")))
		})
	})
}

// genVisitNullChecked emits the generic re-entry helper the traversal
// methods funnel single values through.
func genVisitNullChecked(f *jen.File) {
	f.Comment("visitNullChecked re-enters Visit for one value, skipping nil so optional properties and sparse collections never reach Visit.")
	f.Func().Id("visitNullChecked").Types(
		jen.Id("T").Interface(jen.Id("comparable"), jen.Id("Node")),
	).Params(
		jen.Id("v").Op("*").Id("RewritingVisitor"),
		jen.Id("value").Id("T"),
	).Id("T").Block(
		jen.Var().Id("zero").Id("T"),
		jen.If(jen.Id("value").Op("==").Id("zero")).Block(jen.Return(jen.Id("zero"))),
		jen.Return(jen.Id("v").Dot("Visit").Call(jen.Id("value")).Assert(jen.Id("T"))),
	)
}

// genTraversal emits the traversal pair of one class: the unexported
// handler dispatch Visit routes through, and the exported default
// traversal handlers can call to descend.
func genTraversal(f *jen.File, t *gen.Type) {
	f.Commentf("%s dispatches a %s node to its handler, falling back to the default traversal.", t.TraversalMethod(), t.Name)
	f.Func().Params(jen.Id("v").Op("*").Id("RewritingVisitor")).Id(t.TraversalMethod()).Params(
		jen.Id("node").Op("*").Id(t.Name),
	).Op("*").Id(t.Name).Block(
		jen.If(jen.Id("v").Dot(t.HandlerField()).Op("!=").Nil()).Block(
			jen.Return(jen.Id("v").Dot(t.HandlerField()).Call(jen.Id("node"))),
		),
		jen.Return(jen.Id("v").Dot("Visit"+t.Name).Call(jen.Id("node"))),
	)

	genDefaultTraversal(f, t)
}

// genDefaultTraversal emits the exported default traversal: rewrite the
// schema-defined properties of the node in place, then return it.
func genDefaultTraversal(f *jen.File, t *gen.Type) {
	f.Commentf("Visit%s rewrites the schema-defined properties of node in place and returns it.", t.Name)
	f.Func().Params(jen.Id("v").Op("*").Id("RewritingVisitor")).Id("Visit"+t.Name).Params(
		jen.Id("node").Op("*").Id(t.Name),
	).Op("*").Id(t.Name).BlockFunc(func(grp *jen.Group) {
		props := traversed(t)
		if len(props) > 0 {
			grp.If(jen.Id("node").Op("!=").Nil()).BlockFunc(func(body *jen.Group) {
				names := new(localNameAllocator)
				for _, p := range props {
					names.reset()
					view, _ := t.Table().Lookup(p.Name)
					emitVisitProperty(body, t, view, p, names)
				}
			})
		}
		grp.Return(jen.Id("node"))
	})
}

// traversed returns the properties the default traversal descends into:
// those holding generated classes, at any container nesting.
func traversed(t *gen.Type) []*gen.Property {
	var props []*gen.Property
	for _, p := range t.Properties {
		if p.SchemaDefined() {
			props = append(props, p)
		}
	}
	return props
}

// emitVisitProperty writes the rewriting of one schema-defined
// property.
func emitVisitProperty(grp *jen.Group, t *gen.Type, view *gen.PropertyInfo, p *gen.Property, names *localNameAllocator) {
	switch {
	case view.Dictionary:
		emitVisitDict(grp, t, view, p, names)
	case view.Rank > 0:
		emitVisitArray(grp, t, view, field("node", p.Name), names)
	default:
		grp.Id("node").Dot(p.Name).Op("=").Id("visitNullChecked").Call(
			jen.Id("v"), jen.Id("node").Dot(p.Name),
		)
	}
}

// emitVisitArray writes the nested loops of one array property. The
// innermost level rewrites elements through visitNullChecked; outer
// levels capture the next slice and skip nil ones. Writes land in the
// shared backing, so captures need no store-back.
func emitVisitArray(grp *jen.Group, t *gen.Type, view *gen.PropertyInfo, expr exprFn, names *localNameAllocator) {
	next, _ := t.Table().Lookup(gen.ElementKey(view.Key))
	idx := names.nextIndex()
	grp.For(jen.Id(idx).Op(":=").Range().Add(expr())).BlockFunc(func(body *jen.Group) {
		if view.Rank == 1 {
			body.Add(index(expr, idx)()).Op("=").Id("visitNullChecked").Call(
				jen.Id("v"), index(expr, idx)(),
			)
			return
		}
		value := names.nextValue()
		body.Id(value).Op(":=").Add(index(expr, idx)())
		body.If(jen.Id(value).Op("==").Nil()).Block(jen.Continue())
		emitVisitArray(body, t, next, ident(value), names)
	})
}

// emitVisitDict writes the dictionary traversal. The key set is
// snapshotted and sorted up front, so handlers may add or remove keys
// while the traversal runs and repeated runs visit in one order.
func emitVisitDict(grp *jen.Group, t *gen.Type, view *gen.PropertyInfo, p *gen.Property, names *localNameAllocator) {
	grp.If(jen.Id("node").Dot(p.Name).Op("!=").Nil()).BlockFunc(func(body *jen.Group) {
		next, _ := t.Table().Lookup(gen.ValueKey(view.Key))
		keys := names.nextKeys()
		key := names.nextKey()
		value := names.nextValue()
		body.Id(keys).Op(":=").Qual("slices", "Sorted").Call(
			jen.Qual("maps", "Keys").Call(jen.Id("node").Dot(p.Name)),
		)
		body.For(jen.List(jen.Id("_"), jen.Id(key)).Op(":=").Range().Id(keys)).BlockFunc(func(loop *jen.Group) {
			loop.Id(value).Op(":=").Id("node").Dot(p.Name).Index(jen.Id(key))
			loop.If(jen.Id(value).Op("==").Nil()).Block(jen.Continue())
			if next.Rank == 0 {
				loop.Id("node").Dot(p.Name).Index(jen.Id(key)).Op("=").Id("visitNullChecked").Call(
					jen.Id("v"), jen.Id(value),
				)
				return
			}
			emitVisitArray(loop, t, next, ident(value), names)
		})
	})
}
