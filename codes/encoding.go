package codes

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlScalar returns the text of a scalar node. Codes never decode from
// mappings or sequences.
func yamlScalar(kind string, n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("%s: cannot decode YAML %s, expected a scalar", kind, yamlKindName(n.Kind))
	}
	return n.Value, nil
}

func yamlKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	case yaml.ScalarNode:
		return "scalar"
	}
	return "node"
}
