package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/Bhaskers-Blu-Org2/jschema/compiler/gen"
	"github.com/Bhaskers-Blu-Org2/jschema/compiler/load"
)

// genComparer generates the structural comparer file of one type
// ({class}_comparer.go): the comparer struct, its package-level
// singleton, and the Equal and Hash methods. Both methods walk the
// properties in declaration order, peeling container levels off the
// property table views as they recurse.
func genComparer(h gen.GeneratorHelper, t *gen.Type) *jen.File {
	f := h.NewFile(h.Pkg())

	f.Commentf("%s compares %s nodes structurally, property by property.", t.ComparerName(), t.Name)
	f.Type().Id(t.ComparerName()).Struct()

	f.Commentf("%s is the comparer singleton generated code delegates %s comparisons to.", t.ComparerInstance(), t.Name)
	f.Var().Id(t.ComparerInstance()).Op("=").Id(t.ComparerName()).Values()

	genComparerEqual(f, t)
	genComparerHash(f, t)

	return f
}

// genComparerEqual emits the Equal method: identity short-circuit,
// either-nil false, then one comparison block per property.
func genComparerEqual(f *jen.File, t *gen.Type) {
	f.Commentf("Equal reports structural equality of two %s nodes. Two nil nodes are equal, a nil and a non-nil node never are.", t.Name)
	f.Func().Params(jen.Id(t.ComparerName())).Id("Equal").Params(
		jen.List(jen.Id("left"), jen.Id("right")).Op("*").Id(t.Name),
	).Bool().BlockFunc(func(grp *jen.Group) {
		grp.If(jen.Id("left").Op("==").Id("right")).Block(jen.Return(jen.True()))
		grp.If(jen.Id("left").Op("==").Nil().Op("||").Id("right").Op("==").Nil()).Block(jen.Return(jen.False()))
		names := new(localNameAllocator)
		for _, p := range t.Properties {
			names.reset()
			view, _ := t.Table().Lookup(p.Name)
			emitEqual(grp, t, view, field("left", p.Name), field("right", p.Name), names)
		}
		grp.Return(jen.True())
	})
}

// emitEqual writes the comparison of one container view, recursing one
// peeled level per call until the scalar leaf. left and right build the
// addressing expressions of the collections the view describes.
func emitEqual(grp *jen.Group, t *gen.Type, view *gen.PropertyInfo, left, right exprFn, names *localNameAllocator) {
	switch {
	case view.Dictionary:
		emitEqualDict(grp, t, view, left, right, names)
	case view.Rank > 0:
		grp.If(nilLenMismatch(left, right)).Block(jen.Return(jen.False()))
		next, _ := t.Table().Lookup(gen.ElementKey(view.Key))
		idx := names.nextIndex()
		grp.For(jen.Id(idx).Op(":=").Range().Add(left())).BlockFunc(func(body *jen.Group) {
			emitEqual(body, t, next, index(left, idx), index(right, idx), names)
		})
	default:
		grp.If(notEqual(view, left, right)).Block(jen.Return(jen.False()))
	}
}

// emitEqualDict writes the dictionary comparison: nil-ness and length
// first, then a per-key lookup on the right side with the fetched pair
// compared under the value view's rules.
func emitEqualDict(grp *jen.Group, t *gen.Type, view *gen.PropertyInfo, left, right exprFn, names *localNameAllocator) {
	grp.If(nilLenMismatch(left, right)).Block(jen.Return(jen.False()))
	next, _ := t.Table().Lookup(gen.ValueKey(view.Key))
	key := names.nextKey()
	value := names.nextValue()
	other := names.nextOther()
	grp.For(jen.List(jen.Id(key), jen.Id(value)).Op(":=").Range().Add(left())).BlockFunc(func(body *jen.Group) {
		body.List(jen.Id(other), jen.Id("ok")).Op(":=").Add(right()).Index(jen.Id(key))
		body.If(jen.Op("!").Id("ok")).Block(jen.Return(jen.False()))
		emitEqual(body, t, next, ident(value), ident(other), names)
	})
}

// nilLenMismatch builds the collection guard: exactly one side nil, or
// lengths apart, is unequal. An empty collection stays distinct from a
// nil one.
func nilLenMismatch(left, right exprFn) *jen.Statement {
	return jen.Parens(left().Op("==").Nil()).Op("!=").Parens(right().Op("==").Nil()).
		Op("||").Len(left()).Op("!=").Len(right())
}

// notEqual builds the inequality test of a scalar leaf view.
func notEqual(view *gen.PropertyInfo, left, right exprFn) *jen.Statement {
	switch {
	case view.Type == nil || view.Type.Kind == load.TypeAny:
		return jen.Op("!").Qual("reflect", "DeepEqual").Call(left(), right())
	case view.Type.Kind == load.TypeClass:
		return jen.Op("!").Id(view.Ref.ComparerInstance()).Dot("Equal").Call(left(), right())
	case view.Type.Kind == load.TypeTime:
		return jen.Op("!").Add(left()).Dot("Equal").Call(right())
	default:
		return left().Op("!=").Add(right())
	}
}

// genComparerHash emits the Hash method: seed 17, then one fold per
// property in declaration order with the 31 multiplier and wraparound
// int arithmetic.
func genComparerHash(f *jen.File, t *gen.Type) {
	f.Commentf("Hash returns a structural hash code of obj, folding every present property in declaration order. A nil node hashes to zero; nil properties and nil elements contribute nothing.")
	f.Func().Params(jen.Id(t.ComparerName())).Id("Hash").Params(
		jen.Id("obj").Op("*").Id(t.Name),
	).Int().BlockFunc(func(grp *jen.Group) {
		grp.If(jen.Id("obj").Op("==").Nil()).Block(jen.Return(jen.Lit(0)))
		grp.Id("result").Op(":=").Lit(17)
		names := new(localNameAllocator)
		for _, p := range t.Properties {
			names.reset()
			view, _ := t.Table().Lookup(p.Name)
			emitHash(grp, t, view, field("obj", p.Name), "result", names)
		}
		grp.Return(jen.Id("result"))
	})
}

// emitHash writes the hash fold of one container view into the acc
// accumulator. Array levels need no nil guards: ranging a nil slice
// contributes nothing, which is the required semantics.
func emitHash(grp *jen.Group, t *gen.Type, view *gen.PropertyInfo, expr exprFn, acc string, names *localNameAllocator) {
	switch {
	case view.Dictionary:
		emitHashDict(grp, t, view, expr, acc, names)
	case view.Rank > 0:
		next, _ := t.Table().Lookup(gen.ElementKey(view.Key))
		idx := names.nextIndex()
		grp.For(jen.Id(idx).Op(":=").Range().Add(expr())).BlockFunc(func(body *jen.Group) {
			emitHash(body, t, next, index(expr, idx), acc, names)
		})
	default:
		fold := jen.Id(acc).Op("=").Id(acc).Op("*").Lit(31).Op("+").Add(hashLeaf(view, expr))
		if nilableLeaf(view) {
			grp.If(expr().Op("!=").Nil()).Block(fold)
		} else {
			grp.Add(fold)
		}
	}
}

// emitHashDict writes the dictionary fold. Map iteration order is
// random, so per-key contributions combine through xor; the value of
// each key folds order-dependently into a per-key accumulator seeded by
// the key hash.
func emitHashDict(grp *jen.Group, t *gen.Type, view *gen.PropertyInfo, expr exprFn, acc string, names *localNameAllocator) {
	grp.If(expr().Op("!=").Nil()).BlockFunc(func(body *jen.Group) {
		next, _ := t.Table().Lookup(gen.ValueKey(view.Key))
		xor := names.nextXor()
		key := names.nextKey()
		value := names.nextValue()
		body.Id(xor).Op(":=").Lit(0)
		body.For(jen.List(jen.Id(key), jen.Id(value)).Op(":=").Range().Add(expr())).BlockFunc(func(loop *jen.Group) {
			if next.Rank == 0 {
				loop.Id(xor).Op("^=").Id("hashString").Call(jen.Id(key))
				fold := jen.Id(xor).Op("^=").Add(hashLeaf(next, ident(value)))
				if nilableLeaf(next) {
					loop.If(jen.Id(value).Op("!=").Nil()).Block(fold)
				} else {
					loop.Add(fold)
				}
			} else {
				hash := names.nextHash()
				loop.Id(hash).Op(":=").Id("hashString").Call(jen.Id(key))
				emitHash(loop, t, next, ident(value), hash, names)
				loop.Id(xor).Op("^=").Id(hash)
			}
		})
		body.Id(acc).Op("=").Id(acc).Op("*").Lit(31).Op("+").Id(xor)
	})
}

// nilableLeaf reports if the leaf view holds a value that can be nil:
// class pointers and untyped values. Primitive kinds hash
// unconditionally.
func nilableLeaf(view *gen.PropertyInfo) bool {
	return view.Type == nil || view.Type.Kind == load.TypeAny || view.Type.Kind == load.TypeClass
}

// hashLeaf builds the hash expression of a scalar leaf view.
func hashLeaf(view *gen.PropertyInfo, expr exprFn) *jen.Statement {
	if view.Type == nil {
		return jen.Id("hashAny").Call(expr())
	}
	switch view.Type.Kind {
	case load.TypeClass:
		return jen.Id(view.Ref.ComparerInstance()).Dot("Hash").Call(expr())
	case load.TypeBool:
		return jen.Id("hashBool").Call(expr())
	case load.TypeInt:
		return jen.Id("hashInt").Call(expr())
	case load.TypeFloat:
		return jen.Id("hashFloat64").Call(expr())
	case load.TypeString:
		return jen.Id("hashString").Call(expr())
	case load.TypeTime:
		return jen.Id("hashTime").Call(expr())
	case load.TypeUUID:
		return jen.Id("hashUUID").Call(expr())
	default:
		return jen.Id("hashAny").Call(expr())
	}
}
