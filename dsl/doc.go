// Package dsl provides a fluent builder for persona schemas.
//
// Overview
//   - Builder API: declare fields in order with Object()/Field()/Required()/MustBuild().
//   - Spaces: String()/Number() for free-form literals, OneOf(Variant(...)) for
//     enumerated fields whose options open follow-up subtrees.
//   - Check: attach extra acceptance predicates per field (see the rules package).
//
// Entry points
//   - Object(): create a builder; chain Field/Required/Optional/Check then MustBuild()/Build.
//   - OneOf(vars...): enumerated space; Variant(name, subtree) names one option.
//
// Design guidelines
//   - Field order in the builder is the schema's declaration order.
//   - Definition errors accumulate and surface from Build as persona.Issues;
//     MustBuild panics, which suits package-level schema literals.
//
// Example (quickstart)
//
//	mage := dsl.Object().
//	    Field("spell", dsl.String()).Required().
//	    MustBuild()
//
//	s := dsl.Object().
//	    Field("name", dsl.String()).Required().
//	    Field("level", dsl.Number()).Check(rules.Between(1, 20)).
//	    Field("class", dsl.OneOf(
//	        dsl.Variant("warrior", nil),
//	        dsl.Variant("mage", mage),
//	    )).Required().
//	    MustBuild()
//
//	b, _ := persona.New(s)
//	b2, _ := b.Choose("class", "mage")
//	_ = b2.Missing() // [name level class.spell]
package dsl
