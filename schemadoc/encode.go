package schemadoc

import (
	"bytes"

	j "github.com/goccy/go-json"

	persona "github.com/Krustal/persona"
)

// EncodeSchema renders the schema tree as a compact JSON document. Fields and
// options appear in declaration order, so decoding the result reproduces the
// schema. Check predicates are code, not data, and do not appear in the
// output.
func EncodeSchema(s *persona.Schema) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeNode(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeNode(buf *bytes.Buffer, node *persona.Schema) error {
	names := node.FieldNames()
	if len(names) == 0 {
		buf.WriteString("{}")
		return nil
	}
	buf.WriteString(`{"fields":{`)
	for i, name := range names {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(buf, name); err != nil {
			return err
		}
		spec, _ := node.Field(name)
		if err := writeSpec(buf, spec); err != nil {
			return err
		}
	}
	buf.WriteString("}}")
	return nil
}

func writeSpec(buf *bytes.Buffer, spec persona.FieldSpec) error {
	buf.WriteByte('{')
	if spec.Space.IsLiteral() {
		buf.WriteString(`"type":`)
		if err := writeValue(buf, spec.Space.Kind().String()); err != nil {
			return err
		}
	} else {
		buf.WriteString(`"options":{`)
		for i, opt := range spec.Space.OptionNames() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeKey(buf, opt); err != nil {
				return err
			}
			sub, _ := spec.Space.Option(opt)
			if err := writeNode(buf, sub); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	if spec.Required {
		buf.WriteString(`,"required":true`)
	}
	buf.WriteByte('}')
	return nil
}

func writeKey(buf *bytes.Buffer, key string) error {
	if err := writeValue(buf, key); err != nil {
		return err
	}
	buf.WriteByte(':')
	return nil
}

func writeValue(buf *bytes.Buffer, v any) error {
	b, err := j.Marshal(v)
	if err != nil {
		return persona.Issues{{Code: persona.CodeParseError, Message: "unencodable value", Cause: err}}
	}
	buf.Write(b)
	return nil
}
