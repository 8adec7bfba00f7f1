package entities

// EvolutionNode is one species in an evolution chain tree
type EvolutionNode struct {
	Name      string
	Slug      string
	IsBaby    bool
	EvolvesTo []*EvolutionNode
}

// EvolutionSequence is an evolution tree flattened into display order
type EvolutionSequence []string

// HasLineage reports whether the sequence is worth displaying.
// A chain of one conveys nothing beyond the record itself.
func (s EvolutionSequence) HasLineage() bool {
	return len(s) > 1
}
