package params

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a value from a YAML node. Mappings become trees,
// sequences of scalars become lists, "~" and "null" become null and every
// other scalar is kept in its literal form.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.AliasNode:
		return v.UnmarshalYAML(node.Alias)
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			*v = Null()
			return nil
		}
		*v = String(node.Value)
		return nil
	case yaml.MappingNode:
		var t Tree
		if err := node.Decode(&t); err != nil {
			return err
		}
		*v = Nested(t)
		return nil
	case yaml.SequenceNode:
		items := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("params: line %d: list items must be scalars", item.Line)
			}
			items = append(items, item.Value)
		}
		*v = List(items...)
		return nil
	default:
		return fmt.Errorf("params: unsupported YAML node kind %d", node.Kind)
	}
}

// MarshalYAML encodes the value as a YAML scalar, sequence, mapping or
// null.
func (v Value) MarshalYAML() (any, error) {
	return v.Interface(), nil
}
