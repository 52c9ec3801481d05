package schemadoc

import (
	"bytes"
	"io"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	persona "github.com/Krustal/persona"
)

// DecodeChoices reads a flat JSON object mapping full dot paths to chosen
// values, in document order. Replaying the result through persona.New demands
// that order: ancestors must appear before the fields they reveal, exactly as
// EncodeChoices writes them. Values must be strings or numbers.
func DecodeChoices(data []byte) ([]persona.Choice, error) {
	r := &docReader{dec: j.NewDecoder(bytes.NewReader(data))}
	var out []persona.Choice
	err := r.eachKey("", func(key string) error {
		tok, err := r.scalar(key)
		if err != nil {
			return err
		}
		switch tok.(type) {
		case string, float64:
			out = append(out, persona.Choice{Path: key, Value: tok})
			return nil
		default:
			return schemaIssue(key, "choice values must be strings or numbers")
		}
	})
	if err != nil {
		return nil, err
	}
	if _, err := r.dec.Token(); err != io.EOF {
		return nil, persona.Issues{{Code: persona.CodeParseError, Message: "trailing data after document"}}
	}
	return out, nil
}

// EncodeChoices renders recorded choices as a flat JSON object, preserving
// order. Feed it persona.ChoiceSet.All, whose order replays cleanly.
func EncodeChoices(choices []persona.Choice) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range choices {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, c.Path); err != nil {
			return nil, err
		}
		if err := writeValue(&buf, c.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DecodeChoicesYAML is DecodeChoices for a YAML mapping.
func DecodeChoicesYAML(data []byte) ([]persona.Choice, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, readIssue("", err)
	}
	root := documentRoot(&doc)
	if root == nil {
		return nil, nil
	}
	var out []persona.Choice
	err := eachYAMLKey(root, "", func(key string, val *yaml.Node) error {
		var v any
		if err := derefAlias(val).Decode(&v); err != nil {
			return readIssue(key, err)
		}
		if persona.KindOf(v) == persona.KindInvalid {
			return schemaIssue(key, "choice values must be strings or numbers")
		}
		out = append(out, persona.Choice{Path: key, Value: v})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EncodeChoicesYAML is EncodeChoices for a YAML mapping.
func EncodeChoicesYAML(choices []persona.Choice) ([]byte, error) {
	m := mappingNode()
	for _, c := range choices {
		var val yaml.Node
		if err := val.Encode(c.Value); err != nil {
			return nil, persona.Issues{{Path: c.Path, Code: persona.CodeParseError, Message: "unencodable value", Cause: err}}
		}
		m.Content = append(m.Content, scalarString(c.Path), &val)
	}
	return yaml.Marshal(m)
}
