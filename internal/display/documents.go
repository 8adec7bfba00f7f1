package display

import (
	"github.com/KirkDiggler/pokedex-cli/internal/entities"
	"github.com/KirkDiggler/pokedex-cli/internal/errors"
	"github.com/KirkDiggler/pokedex-cli/internal/orchestrators/lookup"
)

type creatureDocument struct {
	RecordKey string         `json:"record_key"`
	ID        int            `json:"id"`
	Slug      string         `json:"slug"`
	Name      string         `json:"name"`
	Types     []string       `json:"types"`
	Stats     map[string]int `json:"stats"`
	SpriteURL *string        `json:"sprite_url"`
}

type lookupDocument struct {
	LookupID       string           `json:"lookup_id"`
	Pokemon        creatureDocument `json:"pokemon"`
	Evolution      []string         `json:"evolution,omitempty"`
	EvolutionPath  []string         `json:"evolution_path,omitempty"`
	EvolutionError *errorBody       `json:"evolution_error,omitempty"`
}

type typeDocument struct {
	Type  string   `json:"type"`
	Names []string `json:"names"`
	Total int      `json:"total"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
}

type errorDocument struct {
	Error errorBody `json:"error"`
}

func newLookupDocument(result *lookup.LookupOutput) lookupDocument {
	c := result.Creature
	doc := lookupDocument{
		LookupID: result.LookupID,
		Pokemon: creatureDocument{
			RecordKey: entities.RecordKey(c),
			ID:        c.ID,
			Slug:      c.Slug,
			Name:      c.Name,
			Types:     nonNil(c.Types),
			Stats:     c.StatMap(),
		},
	}
	if c.HasSprite() {
		sprite := c.SpriteURL
		doc.Pokemon.SpriteURL = &sprite
	}

	if result.EvolutionErr != nil {
		body := newErrorBody(result.EvolutionErr, "")
		body.Message = describeEvolution(result.EvolutionErr)
		doc.EvolutionError = &body
	} else if result.Evolution != nil {
		doc.Evolution = result.Evolution.Sequence
		doc.EvolutionPath = result.Evolution.Path
	}
	return doc
}

func newTypeDocument(listing entities.TypeListing) typeDocument {
	return typeDocument{
		Type:  listing.Type,
		Names: nonNil(listing.Names),
		Total: listing.Total,
	}
}

func newErrorDocument(err error, subject string) errorDocument {
	return errorDocument{Error: newErrorBody(err, subject)}
}

func newErrorBody(err error, subject string) errorBody {
	return errorBody{
		Code:    errors.GetCode(err).String(),
		Message: describe(err, subject),
		Status:  errors.ServiceStatus(err),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
