// Package schemahcl reads persona schemas and choice sets from HCL.
//
// A schema file declares fields as labeled blocks; enumerated fields nest
// option blocks, which in turn nest their follow-up fields:
//
//	field "name" {
//	  type     = "string"
//	  required = true
//	}
//
//	field "class" {
//	  required = true
//	  option "warrior" {}
//	  option "mage" {
//	    field "spell" {
//	      type     = "string"
//	      required = true
//	    }
//	  }
//	}
//
// Block order in the file becomes declaration order in the schema.
//
// A choice file carries a single object attribute whose entries map full dot
// paths to values, in order:
//
//	choices = {
//	  class         = "mage"
//	  "class.spell" = "fireball"
//	}
package schemahcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	persona "github.com/Krustal/persona"
)

type schemaFile struct {
	Fields []*fieldBlock `hcl:"field,block"`
}

type fieldBlock struct {
	Name     string         `hcl:"name,label"`
	Type     *string        `hcl:"type,optional"`
	Required *bool          `hcl:"required,optional"`
	Options  []*optionBlock `hcl:"option,block"`
}

type optionBlock struct {
	Name   string        `hcl:"name,label"`
	Fields []*fieldBlock `hcl:"field,block"`
}

// DecodeSchema parses HCL source and builds the schema tree. The filename is
// used in diagnostics only.
func DecodeSchema(src []byte, filename string) (*persona.Schema, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, issuesFromDiags(diags)
	}
	var root schemaFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, issuesFromDiags(diags)
	}
	return schemaFromBlocks(root.Fields, "")
}

func schemaFromBlocks(blocks []*fieldBlock, path string) (*persona.Schema, error) {
	fields := make([]persona.Field, 0, len(blocks))
	for _, b := range blocks {
		p := joinDot(path, b.Name)
		spec, err := specFromBlock(b, p)
		if err != nil {
			return nil, err
		}
		fields = append(fields, persona.Field{Name: b.Name, Spec: spec})
	}
	s, err := persona.NewSchema(fields...)
	if err != nil {
		return nil, rebase(err, path)
	}
	return s, nil
}

func specFromBlock(b *fieldBlock, path string) (persona.FieldSpec, error) {
	var spec persona.FieldSpec
	if b.Required != nil {
		spec.Required = *b.Required
	}
	switch {
	case b.Type != nil && len(b.Options) > 0:
		return persona.FieldSpec{}, schemaIssue(path, "field needs exactly one of type or option blocks")
	case b.Type != nil:
		kind, ok := kindNamed(*b.Type)
		if !ok {
			return persona.FieldSpec{}, schemaIssue(path, fmt.Sprintf("unknown type %q", *b.Type))
		}
		spec.Space = persona.Literal(kind)
	case len(b.Options) > 0:
		vars := make([]persona.Variant, 0, len(b.Options))
		for _, opt := range b.Options {
			sub, err := schemaFromBlocks(opt.Fields, joinDot(path, opt.Name))
			if err != nil {
				return persona.FieldSpec{}, err
			}
			vars = append(vars, persona.Variant{Name: opt.Name, Node: sub})
		}
		space, err := persona.Enum(vars...)
		if err != nil {
			return persona.FieldSpec{}, rebase(err, path)
		}
		spec.Space = space
	default:
		return persona.FieldSpec{}, schemaIssue(path, "field needs exactly one of type or option blocks")
	}
	return spec, nil
}

// DecodeChoices parses HCL source holding a single `choices = {...}` object
// attribute and returns its entries in source order. The object must be
// written literally; only literal forms keep entry order.
func DecodeChoices(src []byte, filename string) ([]persona.Choice, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, issuesFromDiags(diags)
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, persona.Issues{{Code: persona.CodeParseError, Message: "expected native HCL syntax"}}
	}
	if len(body.Blocks) > 0 {
		return nil, persona.Issues{{Path: body.Blocks[0].Type, Code: persona.CodeUnknownKey, Message: "unexpected block"}}
	}
	for name := range body.Attributes {
		if name != "choices" {
			return nil, persona.Issues{{Path: name, Code: persona.CodeUnknownKey, Message: "unknown attribute"}}
		}
	}
	attr, ok := body.Attributes["choices"]
	if !ok {
		return nil, nil
	}
	obj, ok := attr.Expr.(*hclsyntax.ObjectConsExpr)
	if !ok {
		return nil, schemaIssue("choices", "choices must be an object literal")
	}
	var out []persona.Choice
	for _, item := range obj.Items {
		path, err := keyString(item.KeyExpr)
		if err != nil {
			return nil, err
		}
		val, diags := item.ValueExpr.Value(nil)
		if diags.HasErrors() {
			return nil, issuesFromDiags(diags)
		}
		v, err := ctyToGo(val)
		if err != nil {
			return nil, schemaIssue(path, err.Error())
		}
		out = append(out, persona.Choice{Path: path, Value: v})
	}
	return out, nil
}

func keyString(expr hclsyntax.Expression) (string, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", issuesFromDiags(diags)
	}
	if val.Type() != cty.String {
		return "", schemaIssue("choices", "choice keys must be strings")
	}
	return val.AsString(), nil
}

// ctyToGo narrows a cty value to the engine's value model: strings stay
// strings, numbers become float64.
func ctyToGo(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, fmt.Errorf("choice values must be strings or numbers, got null")
	}
	switch v.Type() {
	case cty.String:
		return v.AsString(), nil
	case cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, fmt.Errorf("choice values must be strings or numbers, got %s", v.Type().FriendlyName())
	}
}

func issuesFromDiags(diags hcl.Diagnostics) persona.Issues {
	var iss persona.Issues
	for _, d := range diags {
		if d.Severity != hcl.DiagError {
			continue
		}
		it := persona.Issue{Code: persona.CodeParseError, Message: d.Summary}
		params := map[string]any{}
		if d.Detail != "" {
			params["detail"] = d.Detail
		}
		if d.Subject != nil {
			params["range"] = d.Subject.String()
		}
		if len(params) > 0 {
			it.Params = params
		}
		iss = persona.AppendIssues(iss, it)
	}
	return iss
}

func schemaIssue(path, msg string) persona.Issues {
	return persona.Issues{{Path: path, Code: persona.CodeSchemaInvalid, Message: msg}}
}

func kindNamed(name string) (persona.Kind, bool) {
	switch name {
	case "string":
		return persona.KindString, true
	case "number":
		return persona.KindNumber, true
	default:
		return 0, false
	}
}

func joinDot(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

// rebase prefixes nested definition issues with the enclosing field path.
func rebase(err error, prefix string) error {
	if prefix == "" {
		return err
	}
	iss, ok := persona.AsIssues(err)
	if !ok {
		return err
	}
	out := make(persona.Issues, 0, len(iss))
	for _, it := range iss {
		if it.Path == "" {
			it.Path = prefix
		} else {
			it.Path = joinDot(prefix, it.Path)
		}
		out = append(out, it)
	}
	return out
}
