package persona

// Package persona provides:
//
// - A guided-configuration engine over immutable schema trees (Builder/Choose/Get)
// - Discovery of what is currently choosable and what is still unanswered (Fields/Missing/Options/Requires)
// - A stable error model via Issues (dot path, code, optional reason text)
// - Immutable, branchable sessions: every Choose returns a new Builder and old ones stay valid
//
// Design policy:
// - Keep only public APIs in the root package; the engine holds no I/O, no clock, no globals.
// - Place the DSL under dsl/, document formats under schemadoc/ and schemahcl/, and the CLI under cmd/persona.
// - Prefer black-box testing against public APIs.
//
// The two discovery queries deliberately differ: Fields walks depth first in
// declaration order and hides enumerated fields once chosen, while Missing
// walks breadth first and ignores the required flag. Requires reads the root
// level of the schema only.
//
// Typical usage:
//
//	s := dsl.Object().
//		Field("name", dsl.String()).Required().
//		Field("class", dsl.OneOf(
//			dsl.Variant("warrior", nil),
//			dsl.Variant("mage", mageFields),
//		)).Required().
//		MustBuild()
//
//	b, err := persona.New(s)
//	b2, err := b.Choose("class", "mage")
//	next := b2.Missing() // e.g. [name class.spell]
