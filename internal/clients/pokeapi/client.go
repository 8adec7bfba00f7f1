// Package pokeapi is the typed client for the PokeAPI resource families
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/KirkDiggler/pokedex-cli/internal/clients/pokeapi Client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/KirkDiggler/pokedex-cli/internal/clients/transport"
	"github.com/KirkDiggler/pokedex-cli/internal/errors"
)

// DefaultBaseURL is the public PokeAPI v2 root
const DefaultBaseURL = "https://pokeapi.co/api/v2/"

// Client defines the upstream resources the lookup pipeline consumes
type Client interface {
	// GetPokemon fetches the creature record keyed by name or numeric id
	GetPokemon(ctx context.Context, identifier string) (*Pokemon, error)

	// GetSpecies fetches the species resource at an absolute URL taken from a record
	GetSpecies(ctx context.Context, speciesURL string) (*Species, error)

	// GetEvolutionChain fetches the evolution chain at an absolute URL taken from a species
	GetEvolutionChain(ctx context.Context, chainURL string) (*EvolutionChain, error)

	// GetType fetches the collection of pokemon sharing a type
	GetType(ctx context.Context, typeName string) (*Type, error)

	// ListPokemon fetches the first page of the catalog with the given page size.
	// Count on the result is the total catalog size regardless of limit.
	ListPokemon(ctx context.Context, limit int) (*NamedResourceList, error)
}

// Config contains configuration options for the pokeapi client.
type Config struct {
	// BaseURL for PokeAPI (optional, defaults to https://pokeapi.co/api/v2/)
	BaseURL string
	// Transport performs the actual GETs (required)
	Transport transport.Fetcher
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateAbsoluteURL("BaseURL", cfg.BaseURL, vb)
	if cfg.Transport == nil {
		vb.RequiredField("Transport")
	}
	return vb.Build()
}

type client struct {
	baseURL   string
	transport transport.Fetcher
}

// New creates a new pokeapi client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &client{
		baseURL:   cfg.BaseURL,
		transport: cfg.Transport,
	}, nil
}

func (c *client) GetPokemon(ctx context.Context, identifier string) (*Pokemon, error) {
	if identifier == "" {
		return nil, errors.InvalidArgument("pokemon identifier is required")
	}

	var p Pokemon
	if err := c.get(ctx, c.baseURL+"pokemon/"+url.PathEscape(identifier), &p); err != nil {
		return nil, errors.Wrapf(err, "failed to get pokemon %s", identifier)
	}
	return &p, nil
}

func (c *client) GetSpecies(ctx context.Context, speciesURL string) (*Species, error) {
	var s Species
	if err := c.get(ctx, speciesURL, &s); err != nil {
		return nil, errors.Wrap(err, "failed to get species")
	}
	return &s, nil
}

func (c *client) GetEvolutionChain(ctx context.Context, chainURL string) (*EvolutionChain, error) {
	var chain EvolutionChain
	if err := c.get(ctx, chainURL, &chain); err != nil {
		return nil, errors.Wrap(err, "failed to get evolution chain")
	}
	return &chain, nil
}

func (c *client) GetType(ctx context.Context, typeName string) (*Type, error) {
	if typeName == "" {
		return nil, errors.InvalidArgument("type name is required")
	}

	var t Type
	if err := c.get(ctx, c.baseURL+"type/"+url.PathEscape(typeName), &t); err != nil {
		return nil, errors.Wrapf(err, "failed to get type %s", typeName)
	}
	return &t, nil
}

func (c *client) ListPokemon(ctx context.Context, limit int) (*NamedResourceList, error) {
	if limit <= 0 {
		return nil, errors.InvalidArgumentf("limit must be positive, got %d", limit)
	}

	var list NamedResourceList
	if err := c.get(ctx, fmt.Sprintf("%spokemon?limit=%d", c.baseURL, limit), &list); err != nil {
		return nil, errors.Wrap(err, "failed to list pokemon")
	}
	return &list, nil
}

// get fetches a URL and decodes the body into dst
func (c *client) get(ctx context.Context, resourceURL string, dst any) error {
	body, err := c.transport.Fetch(ctx, resourceURL)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return errors.WrapWithCodef(err, errors.CodeMalformedData, "unexpected response shape from %s", resourceURL).
			WithMeta(errors.MetaURL, resourceURL)
	}
	return nil
}
