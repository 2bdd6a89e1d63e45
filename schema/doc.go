// Package schema models JSON Schema documents for code generation.
//
// The model is draft-04 flavored and deliberately small: definitions,
// properties, items, additionalProperties, required, type, format,
// description and $ref are the keywords the generator consumes; all
// other keywords are ignored on decode. The newer $defs spelling is
// accepted as an alias for definitions.
//
// # Member Order
//
// Standard library JSON decoding into maps discards object member
// order, but the order properties are declared in is the order the
// generated field lists, hash combinations and traversal methods must
// follow. [Properties] therefore decodes through the token stream and
// records member positions, and every consumer iterates via
// [Properties.Names].
//
// # Usage
//
//	doc, err := schema.ReadSchemaFile("api.schema.json")
//	if err != nil {
//	    return err
//	}
//	defs := doc.TypeDefinitions()
//	for _, name := range defs.Names() {
//	    process(name, defs.Get(name))
//	}
package schema
