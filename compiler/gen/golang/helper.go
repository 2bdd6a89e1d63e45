package golang

import "github.com/dave/jennifer/jen"

// exprFn builds a fresh addressing expression on every call. Jennifer
// statements are mutable, so the recursive emitters must never reuse
// one; they pass builders down and re-evaluate them per emission site.
type exprFn func() *jen.Statement

// ident addresses a plain identifier.
func ident(name string) exprFn {
	return func() *jen.Statement { return jen.Id(name) }
}

// field addresses a field of the named receiver.
func field(recv, name string) exprFn {
	return func() *jen.Statement { return jen.Id(recv).Dot(name) }
}

// index addresses one array level below base.
func index(base exprFn, idx string) exprFn {
	return func() *jen.Statement { return base().Index(jen.Id(idx)) }
}
