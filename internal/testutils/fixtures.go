// Package testutils provides canned PokeAPI payloads and a fake upstream server for tests
package testutils

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Fixture identifiers shared by tests
const (
	PikachuID      = 25
	PikachuChainID = 10
	TaurosID       = 128
	PikachuSprite  = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/25.png"
)

// PokemonJSON renders a minimal /pokemon resource whose species reference
// points at speciesURL.
func PokemonJSON(id int, name string, types []string, speciesURL string) string {
	typeSlots := make([]string, len(types))
	for i, t := range types {
		typeSlots[i] = fmt.Sprintf(`{"slot":%d,"type":{"name":%q,"url":""}}`, i+1, t)
	}

	return fmt.Sprintf(`{
		"id": %d,
		"name": %q,
		"types": [%s],
		"stats": [
			{"base_stat": 35, "stat": {"name": "hp"}},
			{"base_stat": 55, "stat": {"name": "attack"}},
			{"base_stat": 40, "stat": {"name": "defense"}},
			{"base_stat": 50, "stat": {"name": "special-attack"}},
			{"base_stat": 50, "stat": {"name": "special-defense"}},
			{"base_stat": 90, "stat": {"name": "speed"}}
		],
		"sprites": {"front_default": "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/%d.png"},
		"species": {"name": %q, "url": %q}
	}`, id, name, strings.Join(typeSlots, ","), id, name, speciesURL)
}

// SpeciesJSON renders a /pokemon-species resource. An empty chainURL renders
// a null evolution_chain.
func SpeciesJSON(id int, name, chainURL string) string {
	chain := "null"
	if chainURL != "" {
		chain = fmt.Sprintf(`{"url": %q}`, chainURL)
	}
	return fmt.Sprintf(`{"id": %d, "name": %q, "evolution_chain": %s}`, id, name, chain)
}

// ChainLinkJSON renders one evolution node with nested children
func ChainLinkJSON(name string, children ...string) string {
	return fmt.Sprintf(`{"is_baby": false, "species": {"name": %q, "url": ""}, "evolves_to": [%s]}`,
		name, strings.Join(children, ","))
}

// EvolutionChainJSON wraps a chain link as an /evolution-chain resource
func EvolutionChainJSON(id int, root string) string {
	return fmt.Sprintf(`{"id": %d, "chain": %s}`, id, root)
}

// PikachuChainJSON is the Pichu -> Pikachu -> Raichu chain
func PikachuChainJSON() string {
	return EvolutionChainJSON(PikachuChainID,
		ChainLinkJSON("pichu",
			ChainLinkJSON("pikachu",
				ChainLinkJSON("raichu"))))
}

// TypeMemberNames returns n deterministic member names for a type
func TypeMemberNames(typeName string, n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s-mon-%02d", typeName, i+1)
	}
	return names
}

// TypeJSON renders a /type resource with the given members in order
func TypeJSON(typeName string, members []string) string {
	entries := make([]string, len(members))
	for i, m := range members {
		entries[i] = fmt.Sprintf(`{"slot": 1, "pokemon": {"name": %q, "url": ""}}`, m)
	}
	return fmt.Sprintf(`{"id": 10, "name": %q, "pokemon": [%s]}`, typeName, strings.Join(entries, ","))
}

// ListJSON renders a catalog page with the given total count and names
func ListJSON(count int, names []string) string {
	results := make([]map[string]string, len(names))
	for i, n := range names {
		results[i] = map[string]string{"name": n, "url": ""}
	}
	body, _ := json.Marshal(map[string]any{
		"count":    count,
		"next":     nil,
		"previous": nil,
		"results":  results,
	})
	return string(body)
}
