package schemadoc

import (
	"bytes"
	"fmt"
	"io"

	j "github.com/goccy/go-json"

	persona "github.com/Krustal/persona"
	"github.com/Krustal/persona/i18n"
)

// DecodeOpt controls schema document decoding. The zero value is the strict
// default.
type DecodeOpt struct {
	// IgnoreUnknown skips unrecognized keys instead of rejecting them.
	IgnoreUnknown bool
	// MaxDepth caps option-subtree nesting. Zero means no limit.
	MaxDepth int
}

func normalizeOpt(opts []DecodeOpt) DecodeOpt {
	if len(opts) > 0 {
		return opts[0]
	}
	return DecodeOpt{}
}

// DecodeSchema reads a JSON schema document and builds the schema tree.
// Decoding walks the token stream directly so that field and option order in
// the document becomes declaration order in the schema, which generic
// map-based decoding would lose.
func DecodeSchema(data []byte, opts ...DecodeOpt) (*persona.Schema, error) {
	r := &docReader{dec: j.NewDecoder(bytes.NewReader(data)), opt: normalizeOpt(opts)}
	s, err := r.node("", 0)
	if err != nil {
		return nil, err
	}
	if _, err := r.dec.Token(); err != io.EOF {
		return nil, persona.Issues{{Code: persona.CodeParseError, Message: "trailing data after document"}}
	}
	return s, nil
}

type docReader struct {
	dec *j.Decoder
	opt DecodeOpt
}

// node reads one schema node: an object with an optional "fields" mapping.
func (r *docReader) node(path string, depth int) (*persona.Schema, error) {
	if r.opt.MaxDepth > 0 && depth > r.opt.MaxDepth {
		return nil, schemaIssue(path, "exceeds max option depth")
	}
	var fields []persona.Field
	err := r.eachKey(path, func(key string) error {
		if key != "fields" {
			if r.opt.IgnoreUnknown {
				return r.skipValue(docPath(path, key))
			}
			return unknownKeyIssue(docPath(path, key))
		}
		fs, err := r.fields(docPath(path, "fields"), depth)
		if err != nil {
			return err
		}
		fields = fs
		return nil
	})
	if err != nil {
		return nil, err
	}
	s, err := persona.NewSchema(fields...)
	if err != nil {
		return nil, rebase(err, docPath(path, "fields"))
	}
	return s, nil
}

// fields reads the ordered name -> field spec mapping.
func (r *docReader) fields(path string, depth int) ([]persona.Field, error) {
	var out []persona.Field
	err := r.eachKey(path, func(key string) error {
		spec, err := r.fieldSpec(docPath(path, key), depth)
		if err != nil {
			return err
		}
		out = append(out, persona.Field{Name: key, Spec: spec})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// fieldSpec reads one field definition. Exactly one of "type" and "options"
// must be present; "required" may accompany either.
func (r *docReader) fieldSpec(path string, depth int) (persona.FieldSpec, error) {
	var spec persona.FieldSpec
	var sawType, sawOptions bool
	err := r.eachKey(path, func(key string) error {
		switch key {
		case "type":
			tok, err := r.scalar(docPath(path, "type"))
			if err != nil {
				return err
			}
			name, ok := tok.(string)
			if !ok {
				return schemaIssue(docPath(path, "type"), "type must be a string")
			}
			kind, ok := kindNamed(name)
			if !ok {
				return schemaIssue(docPath(path, "type"), fmt.Sprintf("unknown type %q", name))
			}
			sawType = true
			spec.Space = persona.Literal(kind)
			return nil
		case "required":
			tok, err := r.scalar(docPath(path, "required"))
			if err != nil {
				return err
			}
			b, ok := tok.(bool)
			if !ok {
				return schemaIssue(docPath(path, "required"), "required must be a boolean")
			}
			spec.Required = b
			return nil
		case "options":
			vars, err := r.options(docPath(path, "options"), depth)
			if err != nil {
				return err
			}
			space, err := persona.Enum(vars...)
			if err != nil {
				return rebase(err, docPath(path, "options"))
			}
			sawOptions = true
			spec.Space = space
			return nil
		default:
			if r.opt.IgnoreUnknown {
				return r.skipValue(docPath(path, key))
			}
			return unknownKeyIssue(docPath(path, key))
		}
	})
	if err != nil {
		return persona.FieldSpec{}, err
	}
	if sawType == sawOptions {
		return persona.FieldSpec{}, schemaIssue(path, "field needs exactly one of type or options")
	}
	return spec, nil
}

// options reads the ordered option name -> subtree mapping of an enumerated
// field.
func (r *docReader) options(path string, depth int) ([]persona.Variant, error) {
	var out []persona.Variant
	err := r.eachKey(path, func(key string) error {
		node, err := r.node(docPath(path, key), depth+1)
		if err != nil {
			return err
		}
		out = append(out, persona.Variant{Name: key, Node: node})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// eachKey consumes one JSON object, invoking fn for every key in document
// order. fn must consume the key's value from the stream.
func (r *docReader) eachKey(path string, fn func(key string) error) error {
	tok, err := r.dec.Token()
	if err != nil {
		return readIssue(path, err)
	}
	if d, ok := tok.(j.Delim); !ok || d != '{' {
		return schemaIssue(path, "expected an object")
	}
	for {
		tok, err := r.dec.Token()
		if err != nil {
			return readIssue(path, err)
		}
		if d, ok := tok.(j.Delim); ok && d == '}' {
			return nil
		}
		key, ok := tok.(string)
		if !ok {
			return readIssue(path, fmt.Errorf("unexpected token %v", tok))
		}
		if err := fn(key); err != nil {
			return err
		}
	}
}

// scalar consumes one non-container value.
func (r *docReader) scalar(path string) (any, error) {
	tok, err := r.dec.Token()
	if err != nil {
		return nil, readIssue(path, err)
	}
	if _, ok := tok.(j.Delim); ok {
		return nil, schemaIssue(path, "expected a scalar")
	}
	return tok, nil
}

// skipValue consumes one value of any shape, containers included.
func (r *docReader) skipValue(path string) error {
	depth := 0
	for {
		tok, err := r.dec.Token()
		if err != nil {
			return readIssue(path, err)
		}
		if d, ok := tok.(j.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
		if depth == 0 {
			return nil
		}
	}
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

func docPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func schemaIssue(path, msg string) persona.Issues {
	return persona.Issues{{Path: path, Code: persona.CodeSchemaInvalid, Message: msg}}
}

func unknownKeyIssue(path string) persona.Issues {
	return persona.Issues{{Path: path, Code: persona.CodeUnknownKey, Message: i18n.T(persona.CodeUnknownKey, nil)}}
}

func readIssue(path string, err error) persona.Issues {
	return persona.Issues{{Path: path, Code: persona.CodeParseError, Message: i18n.T(persona.CodeParseError, nil), Cause: err}}
}

// rebase prefixes every issue path with the enclosing document location so
// nested definition errors point into the document, not the subtree.
func rebase(err error, prefix string) error {
	iss, ok := persona.AsIssues(err)
	if !ok {
		return err
	}
	out := make(persona.Issues, 0, len(iss))
	for _, it := range iss {
		if it.Path == "" {
			it.Path = prefix
		} else {
			it.Path = docPath(prefix, it.Path)
		}
		out = append(out, it)
	}
	return out
}
