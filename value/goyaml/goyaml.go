// Package goyaml adapts gopkg.in/yaml.v3 node trees to the value.Adapter
// capability set.
//
// Operating on the yaml.Node AST rather than decoded Go values keeps
// comments, anchors and formatting intact across edits. Alias nodes are
// resolved to their anchor target during traversal, and document nodes
// are unwrapped to their content, so a freshly unmarshaled root can be
// used as a handle directly.
package goyaml

import (
	"fmt"
	"strconv"

	"github.com/alekece/json-toolkit/value"
	"gopkg.in/yaml.v3"
)

// Adapter implements value.Adapter for *yaml.Node trees.
type Adapter struct{}

// Ensure Adapter implements the value.Adapter interface.
var _ value.Adapter[*yaml.Node] = Adapter{}

// resolve unwraps document nodes and follows alias nodes to their anchor
// target.
func resolve(node *yaml.Node) *yaml.Node {
	for node != nil {
		switch {
		case node.Kind == yaml.DocumentNode && len(node.Content) > 0:
			node = node.Content[0]
		case node.Kind == yaml.AliasNode && node.Alias != nil:
			node = node.Alias
		default:
			return node
		}
	}
	return nil
}

// Kind classifies a node. Scalars are classified by their resolved tag;
// untagged scalars are auto-detected the way yaml.v3 decodes them.
func (Adapter) Kind(node *yaml.Node) value.Kind {
	node = resolve(node)
	if node == nil {
		return value.Null
	}

	switch node.Kind {
	case yaml.MappingNode:
		return value.Object
	case yaml.SequenceNode:
		return value.Array
	case yaml.ScalarNode:
		return scalarKind(node)
	default:
		return value.Null
	}
}

func scalarKind(node *yaml.Node) value.Kind {
	switch node.Tag {
	case "!!null":
		return value.Null
	case "!!bool":
		return value.Bool
	case "!!int", "!!float":
		return value.Number
	case "!!str":
		return value.String
	}

	// Tag not present - auto-detect like the yaml decoder would.
	if node.Value == "" {
		return value.Null
	}
	if _, err := strconv.ParseBool(node.Value); err == nil {
		return value.Bool
	}
	if _, err := strconv.ParseInt(node.Value, 10, 64); err == nil {
		return value.Number
	}
	if _, err := strconv.ParseFloat(node.Value, 64); err == nil {
		return value.Number
	}
	return value.String
}

func (Adapter) Key(obj *yaml.Node, key string) (*yaml.Node, bool) {
	m := resolve(obj)
	for i := 0; i < len(m.Content)-1; i += 2 {
		if m.Content[i].Value == key {
			return resolve(m.Content[i+1]), true
		}
	}
	return nil, false
}

func (Adapter) SetKey(obj *yaml.Node, key string, v *yaml.Node) *yaml.Node {
	m := resolve(obj)
	for i := 0; i < len(m.Content)-1; i += 2 {
		if m.Content[i].Value == key {
			m.Content[i+1] = v
			return obj
		}
	}
	m.Content = append(m.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		v,
	)
	return obj
}

func (Adapter) DeleteKey(obj *yaml.Node, key string) *yaml.Node {
	m := resolve(obj)
	for i := 0; i < len(m.Content)-1; i += 2 {
		if m.Content[i].Value == key {
			m.Content = append(m.Content[:i], m.Content[i+2:]...)
			return obj
		}
	}
	return obj
}

func (Adapter) Len(arr *yaml.Node) int {
	return len(resolve(arr).Content)
}

func (Adapter) Index(arr *yaml.Node, i int) *yaml.Node {
	return resolve(resolve(arr).Content[i])
}

func (Adapter) SetIndex(arr *yaml.Node, i int, v *yaml.Node) *yaml.Node {
	resolve(arr).Content[i] = v
	return arr
}

func (Adapter) Append(arr *yaml.Node, v *yaml.Node) *yaml.Node {
	s := resolve(arr)
	s.Content = append(s.Content, v)
	return arr
}

func (Adapter) Remove(arr *yaml.Node, i int) *yaml.Node {
	s := resolve(arr)
	s.Content = append(s.Content[:i], s.Content[i+1:]...)
	return arr
}

func (Adapter) NewObject() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func (Adapter) NewArray() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
}

// Parse parses YAML data into a node tree. Empty input parses to a null
// scalar node.
func Parse(data []byte) (*yaml.Node, error) {
	if len(data) == 0 {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null"}, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &root, nil
}

// Marshal serializes a node tree to YAML bytes.
func Marshal(node *yaml.Node) ([]byte, error) {
	data, err := yaml.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return data, nil
}

// FromGo builds a node tree from a plain Go value. Maps become mappings,
// slices become sequences, scalars become tagged scalar nodes. Types
// outside that vocabulary are converted through a YAML encode/decode
// round trip.
func FromGo(v any) *yaml.Node {
	node := &yaml.Node{}
	setGoValue(node, v)
	return node
}

func setGoValue(node *yaml.Node, v any) {
	switch v := v.(type) {
	case nil:
		*node = yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null"}
	case bool:
		*node = yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v)}
	case string:
		*node = yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
	case int:
		*node = yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)}
	case int64:
		*node = yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v, 10)}
	case float64:
		*node = yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(v, 'f', -1, 64)}
	case []any:
		content := make([]*yaml.Node, len(v))
		for i, elem := range v {
			content[i] = FromGo(elem)
		}
		*node = yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: content}
	case map[string]any:
		content := make([]*yaml.Node, 0, len(v)*2)
		for k, elem := range v {
			content = append(content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				FromGo(elem),
			)
		}
		*node = yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: content}
	default:
		data, err := yaml.Marshal(v)
		if err != nil {
			*node = yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null"}
			return
		}
		var tmp yaml.Node
		if yaml.Unmarshal(data, &tmp) == nil && tmp.Kind == yaml.DocumentNode && len(tmp.Content) > 0 {
			*node = *tmp.Content[0]
		}
	}
}

// ToGo converts a node tree to plain Go values: mappings to
// map[string]any, sequences to []any, scalars to string, int, float64,
// bool or nil according to their tag.
func ToGo(node *yaml.Node) any {
	node = resolve(node)
	if node == nil {
		return nil
	}

	switch node.Kind {
	case yaml.ScalarNode:
		return scalarToGo(node)

	case yaml.MappingNode:
		m := make(map[string]any, len(node.Content)/2)
		for i := 0; i < len(node.Content)-1; i += 2 {
			m[node.Content[i].Value] = ToGo(node.Content[i+1])
		}
		return m

	case yaml.SequenceNode:
		s := make([]any, len(node.Content))
		for i, n := range node.Content {
			s[i] = ToGo(n)
		}
		return s

	default:
		return nil
	}
}

func scalarToGo(node *yaml.Node) any {
	switch node.Tag {
	case "!!null":
		return nil
	case "!!str":
		return node.Value
	case "!!bool":
		b, _ := strconv.ParseBool(node.Value)
		return b
	case "!!int":
		i, _ := strconv.ParseInt(node.Value, 10, 64)
		return int(i)
	case "!!float":
		f, _ := strconv.ParseFloat(node.Value, 64)
		return f
	}

	// Tag not present - auto-detect.
	if node.Value == "" {
		return nil
	}
	if b, err := strconv.ParseBool(node.Value); err == nil {
		return b
	}
	if i, err := strconv.ParseInt(node.Value, 10, 64); err == nil {
		return int(i)
	}
	if f, err := strconv.ParseFloat(node.Value, 64); err == nil {
		return f
	}
	return node.Value
}
