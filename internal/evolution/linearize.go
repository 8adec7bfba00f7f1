// Package evolution flattens evolution chain trees into display order.
package evolution

import (
	"github.com/KirkDiggler/pokedex-cli/internal/entities"
)

// Linearize walks the tree depth-first in pre-order: a node's name, then each
// child subtree in source order. Parents always precede their descendants and
// the result has one entry per node. A nil root yields an empty sequence.
func Linearize(root *entities.EvolutionNode) entities.EvolutionSequence {
	if root == nil {
		return entities.EvolutionSequence{}
	}

	var out entities.EvolutionSequence
	stack := []*entities.EvolutionNode{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node == nil {
			continue
		}

		out = append(out, node.Name)

		// push in reverse so the first child is visited next
		for i := len(node.EvolvesTo) - 1; i >= 0; i-- {
			stack = append(stack, node.EvolvesTo[i])
		}
	}

	return out
}

// Count returns the number of nodes in the tree
func Count(root *entities.EvolutionNode) int {
	if root == nil {
		return 0
	}
	n := 1
	for _, child := range root.EvolvesTo {
		n += Count(child)
	}
	return n
}

// Path returns the names from the root down to the node with the given slug,
// or nil when the slug is not in the tree.
func Path(root *entities.EvolutionNode, slug string) []string {
	if root == nil {
		return nil
	}
	if root.Slug == slug {
		return []string{root.Name}
	}
	for _, child := range root.EvolvesTo {
		if rest := Path(child, slug); rest != nil {
			return append([]string{root.Name}, rest...)
		}
	}
	return nil
}
