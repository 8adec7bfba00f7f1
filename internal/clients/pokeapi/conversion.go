package pokeapi

import (
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/pokedex-cli/internal/entities"
	"github.com/KirkDiggler/pokedex-cli/internal/errors"
)

// DisplayName turns an upstream slug into a display name, e.g. "mr-mime" -> "Mr-Mime"
func DisplayName(slug string) string {
	return cases.Title(language.English).String(slug)
}

// ToCreature converts a pokemon resource into a creature record.
// Records missing an id, name or species reference are rejected whole.
func ToCreature(p *Pokemon) (*entities.Creature, error) {
	if p == nil {
		return nil, errors.MalformedData("pokemon record is empty")
	}
	if p.ID <= 0 {
		return nil, errors.MalformedDataf("pokemon record has invalid id %d", p.ID)
	}
	if p.Name == "" {
		return nil, errors.MalformedDataf("pokemon record %d has no name", p.ID)
	}
	if p.Species == nil || p.Species.URL == "" {
		return nil, errors.MalformedDataf("pokemon record %s has no species reference", p.Name)
	}

	slots := make([]PokemonType, len(p.Types))
	copy(slots, p.Types)
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Slot < slots[j].Slot
	})

	types := make([]string, 0, len(slots))
	for _, t := range slots {
		if t.Type.Name == "" {
			return nil, errors.MalformedDataf("pokemon record %s has an unnamed type", p.Name)
		}
		types = append(types, t.Type.Name)
	}

	stats := make([]entities.Stat, 0, len(p.Stats))
	for _, s := range p.Stats {
		if s.Stat.Name == "" {
			return nil, errors.MalformedDataf("pokemon record %s has an unnamed stat", p.Name)
		}
		stats = append(stats, entities.Stat{
			Name:      s.Stat.Name,
			BaseValue: s.BaseStat,
		})
	}

	var sprite string
	if p.Sprites.FrontDefault != nil {
		sprite = *p.Sprites.FrontDefault
	}

	return &entities.Creature{
		ID:         p.ID,
		Slug:       p.Name,
		Name:       DisplayName(p.Name),
		Types:      types,
		Stats:      stats,
		SpriteURL:  sprite,
		SpeciesURL: p.Species.URL,
	}, nil
}

// ToEvolutionTree converts an evolution chain resource into a tree rooted at
// the chain's base form. Every node must name its species.
func ToEvolutionTree(chain *EvolutionChain) (*entities.EvolutionNode, error) {
	if chain == nil || chain.Chain == nil {
		return nil, errors.MalformedData("evolution chain has no root")
	}
	return convertChainLink(chain.Chain)
}

func convertChainLink(link *ChainLink) (*entities.EvolutionNode, error) {
	if link == nil {
		return nil, errors.MalformedData("evolution chain has an empty node")
	}
	if link.Species == nil || link.Species.Name == "" {
		return nil, errors.MalformedData("evolution chain node has no species name")
	}

	node := &entities.EvolutionNode{
		Name:   DisplayName(link.Species.Name),
		Slug:   link.Species.Name,
		IsBaby: link.IsBaby,
	}
	for _, next := range link.EvolvesTo {
		child, err := convertChainLink(next)
		if err != nil {
			return nil, err
		}
		node.EvolvesTo = append(node.EvolvesTo, child)
	}
	return node, nil
}

// ToTypeListing keeps the first limit names of a type collection in upstream
// order. A non-positive limit means entities.MaxTypeListing.
func ToTypeListing(t *Type, limit int) (entities.TypeListing, error) {
	if t == nil {
		return entities.TypeListing{}, errors.MalformedData("type resource is empty")
	}
	if limit <= 0 {
		limit = entities.MaxTypeListing
	}

	listing := entities.TypeListing{
		Type:  t.Name,
		Total: len(t.Pokemon),
		Names: make([]string, 0, min(limit, len(t.Pokemon))),
	}
	for _, member := range t.Pokemon {
		if len(listing.Names) == limit {
			break
		}
		if member.Pokemon.Name == "" {
			return entities.TypeListing{Type: t.Name}, errors.MalformedDataf("type %s has an unnamed member", t.Name)
		}
		listing.Names = append(listing.Names, DisplayName(member.Pokemon.Name))
	}
	return listing, nil
}
