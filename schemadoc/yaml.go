package schemadoc

import (
	"fmt"

	"gopkg.in/yaml.v3"

	persona "github.com/Krustal/persona"
)

// DecodeSchemaYAML reads a YAML schema document with the same shape as the
// JSON form. The document is walked as a yaml.Node tree because mapping order
// in the document becomes declaration order in the schema. Empty input yields
// the empty schema.
func DecodeSchemaYAML(data []byte, opts ...DecodeOpt) (*persona.Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, readIssue("", err)
	}
	root := documentRoot(&doc)
	if root == nil {
		return persona.NewSchema()
	}
	return yamlNode(root, "", 0, normalizeOpt(opts))
}

func yamlNode(n *yaml.Node, path string, depth int, opt DecodeOpt) (*persona.Schema, error) {
	if opt.MaxDepth > 0 && depth > opt.MaxDepth {
		return nil, schemaIssue(path, "exceeds max option depth")
	}
	var fields []persona.Field
	err := eachYAMLKey(n, path, func(key string, val *yaml.Node) error {
		if key != "fields" {
			if opt.IgnoreUnknown {
				return nil
			}
			return unknownKeyIssue(docPath(path, key))
		}
		fs, err := yamlFields(val, docPath(path, "fields"), depth, opt)
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

func yamlFields(n *yaml.Node, path string, depth int, opt DecodeOpt) ([]persona.Field, error) {
	var out []persona.Field
	err := eachYAMLKey(n, path, func(key string, val *yaml.Node) error {
		spec, err := yamlFieldSpec(val, docPath(path, key), depth, opt)
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

func yamlFieldSpec(n *yaml.Node, path string, depth int, opt DecodeOpt) (persona.FieldSpec, error) {
	var spec persona.FieldSpec
	var sawType, sawOptions bool
	err := eachYAMLKey(n, path, func(key string, val *yaml.Node) error {
		switch key {
		case "type":
			var name string
			if err := val.Decode(&name); err != nil {
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
			var b bool
			if err := val.Decode(&b); err != nil {
				return schemaIssue(docPath(path, "required"), "required must be a boolean")
			}
			spec.Required = b
			return nil
		case "options":
			var vars []persona.Variant
			err := eachYAMLKey(val, docPath(path, "options"), func(name string, sub *yaml.Node) error {
				node, err := yamlNode(sub, docPath(path, "options."+name), depth+1, opt)
				if err != nil {
					return err
				}
				vars = append(vars, persona.Variant{Name: name, Node: node})
				return nil
			})
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
			if opt.IgnoreUnknown {
				return nil
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

// eachYAMLKey walks a mapping node's key/value pairs in document order.
// Null nodes count as empty mappings so that `mage: {}` and a bare `mage:`
// mean the same thing.
func eachYAMLKey(n *yaml.Node, path string, fn func(key string, val *yaml.Node) error) error {
	n = derefAlias(n)
	if n == nil || n.Tag == "!!null" {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return schemaIssue(path, "expected a mapping")
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		var key string
		if err := n.Content[i].Decode(&key); err != nil {
			return schemaIssue(path, "mapping keys must be strings")
		}
		if err := fn(key, n.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}

func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil
	}
	return derefAlias(doc.Content[0])
}

func derefAlias(n *yaml.Node) *yaml.Node {
	if n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		return n.Alias
	}
	return n
}

// EncodeSchemaYAML renders the schema tree as a YAML document, field and
// option order preserved.
func EncodeSchemaYAML(s *persona.Schema) ([]byte, error) {
	return yaml.Marshal(schemaYAMLNode(s))
}

func schemaYAMLNode(node *persona.Schema) *yaml.Node {
	m := mappingNode()
	names := node.FieldNames()
	if len(names) == 0 {
		return m
	}
	fields := mappingNode()
	for _, name := range names {
		spec, _ := node.Field(name)
		fields.Content = append(fields.Content, scalarString(name), specYAMLNode(spec))
	}
	m.Content = append(m.Content, scalarString("fields"), fields)
	return m
}

func specYAMLNode(spec persona.FieldSpec) *yaml.Node {
	m := mappingNode()
	if spec.Space.IsLiteral() {
		m.Content = append(m.Content, scalarString("type"), scalarString(spec.Space.Kind().String()))
	} else {
		opts := mappingNode()
		for _, opt := range spec.Space.OptionNames() {
			sub, _ := spec.Space.Option(opt)
			opts.Content = append(opts.Content, scalarString(opt), schemaYAMLNode(sub))
		}
		m.Content = append(m.Content, scalarString("options"), opts)
	}
	if spec.Required {
		m.Content = append(m.Content, scalarString("required"), scalarBool(true))
	}
	return m
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func scalarString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func scalarBool(b bool) *yaml.Node {
	v := "false"
	if b {
		v = "true"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: v}
}
