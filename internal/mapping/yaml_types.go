package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"karabiner-layout-generator/internal/gen"
)

// UnmarshalYAML implements custom YAML unmarshaling for PairList.
// Accepts:
//   - Sequence of [from, to] pairs: [[q, "."], [w, か]]
//   - Sequence of maps: [{from: q, to: "."}]
//   - Ordered map: {q: ".", w: か}
func (p *PairList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		pairs := make(PairList, 0, len(node.Content))

		for _, item := range node.Content {
			pair, err := parsePairNode(item)
			if err != nil {
				return err
			}

			pairs = append(pairs, pair)
		}

		*p = pairs

		return nil

	case yaml.MappingNode:
		pairs := make(PairList, 0, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			from, err := scalarValue(node.Content[i])
			if err != nil {
				return err
			}

			to, err := scalarValue(node.Content[i+1])
			if err != nil {
				return err
			}

			pairs = append(pairs, gen.Pair{From: from, To: to})
		}

		*p = pairs

		return nil

	default:
		return fmt.Errorf("line %d: expected a sequence or a map of mappings", node.Line)
	}
}

// MarshalYAML implements custom YAML marshaling for PairList.
// Pairs are written in flow style: [from, to].
func (p PairList) MarshalYAML() (any, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}

	for _, pair := range p {
		seq.Content = append(seq.Content, &yaml.Node{
			Kind:  yaml.SequenceNode,
			Style: yaml.FlowStyle,
			Content: []*yaml.Node{
				{Kind: yaml.ScalarNode, Value: pair.From, Style: yaml.DoubleQuotedStyle},
				{Kind: yaml.ScalarNode, Value: pair.To, Style: yaml.DoubleQuotedStyle},
			},
		})
	}

	return seq, nil
}

// parsePairNode parses one sequence item: [from, to] or {from: x, to: y}.
func parsePairNode(node *yaml.Node) (gen.Pair, error) {
	switch node.Kind {
	case yaml.SequenceNode:
		if len(node.Content) != 2 {
			return gen.Pair{}, fmt.Errorf("line %d: a pair must have exactly 2 elements, got %d", node.Line, len(node.Content))
		}

		from, err := scalarValue(node.Content[0])
		if err != nil {
			return gen.Pair{}, err
		}

		to, err := scalarValue(node.Content[1])
		if err != nil {
			return gen.Pair{}, err
		}

		return gen.Pair{From: from, To: to}, nil

	case yaml.MappingNode:
		var (
			pair           gen.Pair
			hasFrom, hasTo bool
		)

		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value

			value, err := scalarValue(node.Content[i+1])
			if err != nil {
				return gen.Pair{}, err
			}

			switch key {
			case "from":
				pair.From, hasFrom = value, true
			case "to":
				pair.To, hasTo = value, true
			default:
				return gen.Pair{}, fmt.Errorf("line %d: unknown pair field %q (expected from, to)", node.Content[i].Line, key)
			}
		}

		if !hasFrom || !hasTo {
			return gen.Pair{}, fmt.Errorf("line %d: a pair needs both from and to", node.Line)
		}

		return pair, nil

	default:
		return gen.Pair{}, fmt.Errorf("line %d: expected [from, to] or {from, to}, got %s", node.Line, kindName(node.Kind))
	}
}

// scalarValue returns the literal text of a scalar, whatever its resolved tag.
func scalarValue(node *yaml.Node) (string, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	if node.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("line %d: expected a symbol, got %s", node.Line, kindName(node.Kind))
	}

	return node.Value, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "map"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown node"
	}
}
