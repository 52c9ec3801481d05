// Package schemadoc reads and writes persona schemas and choice sets as JSON
// or YAML documents.
//
// A schema document is a tree of nodes. Each node holds a "fields" mapping;
// each field carries either a literal "type" ("string" or "number") or an
// "options" mapping whose values are nested nodes, plus an optional
// "required" flag:
//
//	{
//	  "fields": {
//	    "name":  {"type": "string", "required": true},
//	    "class": {
//	      "required": true,
//	      "options": {
//	        "warrior": {},
//	        "mage": {"fields": {"spell": {"type": "string", "required": true}}}
//	      }
//	    }
//	  }
//	}
//
// Mapping order is significant: it becomes the schema's declaration order, so
// both decoders walk token streams and yaml.Node trees instead of Go maps,
// and both encoders write fields back in declaration order.
//
// Unknown keys are rejected by default. DecodeOpt relaxes that and can cap
// option-subtree nesting.
//
// A choice document is a flat mapping from full dot paths to chosen values:
//
//	{"class": "mage", "class.spell": "fireball"}
//
// Choice order is significant too: persona.New replays the pairs in order, so
// a path must come after the choices that reveal it. EncodeChoices writes
// persona.ChoiceSet.All, which satisfies this by construction.
package schemadoc
