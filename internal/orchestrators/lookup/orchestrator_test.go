package lookup_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokedex-cli/internal/clients/pokeapi"
	pokeapimock "github.com/KirkDiggler/pokedex-cli/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokedex-cli/internal/entities"
	"github.com/KirkDiggler/pokedex-cli/internal/errors"
	"github.com/KirkDiggler/pokedex-cli/internal/orchestrators/lookup"
	"github.com/KirkDiggler/pokedex-cli/internal/pkg/idgen"
)

const (
	speciesURL = "https://pokeapi.test/api/v2/pokemon-species/25/"
	chainURL   = "https://pokeapi.test/api/v2/evolution-chain/10/"
)

// stubRoller returns a fixed value and records the requested sizes
type stubRoller struct {
	value int
	err   error
	sizes []int
}

func (r *stubRoller) Roll(size int) (int, error) {
	r.sizes = append(r.sizes, size)
	return r.value, r.err
}

func (r *stubRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockClient   *pokeapimock.MockClient
	roller       *stubRoller
	orchestrator lookup.Service
	ctx          context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = pokeapimock.NewMockClient(s.ctrl)
	s.roller = &stubRoller{value: 25}
	s.ctx = context.Background()

	var err error
	s.orchestrator, err = lookup.NewOrchestrator(&lookup.Config{
		Client:        s.mockClient,
		Roller:        s.roller,
		IDGenerator:   idgen.NewSequential("test"),
		FallbackCount: 1010,
		CatalogLimit:  151,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func pikachu() *pokeapi.Pokemon {
	sprite := "https://sprites.test/25.png"
	return &pokeapi.Pokemon{
		ID:   25,
		Name: "pikachu",
		Types: []pokeapi.PokemonType{
			{Slot: 1, Type: pokeapi.NamedResource{Name: "electric"}},
		},
		Stats: []pokeapi.PokemonStat{
			{BaseStat: 35, Stat: pokeapi.NamedResource{Name: "hp"}},
			{BaseStat: 90, Stat: pokeapi.NamedResource{Name: "speed"}},
		},
		Sprites: pokeapi.Sprites{FrontDefault: &sprite},
		Species: &pokeapi.NamedResource{Name: "pikachu", URL: speciesURL},
	}
}

func pikachuChain() *pokeapi.EvolutionChain {
	return &pokeapi.EvolutionChain{
		ID: 10,
		Chain: &pokeapi.ChainLink{
			IsBaby:  true,
			Species: &pokeapi.NamedResource{Name: "pichu"},
			EvolvesTo: []*pokeapi.ChainLink{{
				Species: &pokeapi.NamedResource{Name: "pikachu"},
				EvolvesTo: []*pokeapi.ChainLink{{
					Species: &pokeapi.NamedResource{Name: "raichu"},
				}},
			}},
		},
	}
}

func pikachuCreature() *entities.Creature {
	return &entities.Creature{ID: 25, Slug: "pikachu", Name: "Pikachu", SpeciesURL: speciesURL}
}

func (s *OrchestratorTestSuite) TestNewOrchestrator() {
	testCases := []struct {
		name    string
		config  *lookup.Config
		wantErr bool
	}{
		{name: "defaults", config: &lookup.Config{Client: s.mockClient}},
		{name: "nil config", config: nil, wantErr: true},
		{name: "missing client", config: &lookup.Config{}, wantErr: true},
		{name: "bad strategy", config: &lookup.Config{Client: s.mockClient, Strategy: "shuffle"}, wantErr: true},
		{name: "negative fallback", config: &lookup.Config{Client: s.mockClient, FallbackCount: -1}, wantErr: true},
		{name: "negative catalog", config: &lookup.Config{Client: s.mockClient, CatalogLimit: -1}, wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			svc, err := lookup.NewOrchestrator(tc.config)
			if tc.wantErr {
				s.True(errors.IsInvalidArgument(err), "got %v", err)
				s.Nil(svc)
				return
			}
			s.NoError(err)
			s.NotNil(svc)
		})
	}
}

func (s *OrchestratorTestSuite) TestConfigDefaults() {
	cfg := &lookup.Config{Client: s.mockClient}
	s.Require().NoError(cfg.Validate())

	s.Equal(lookup.StrategyIndex, cfg.Strategy)
	s.Equal(lookup.DefaultFallbackCount, cfg.FallbackCount)
	s.Equal(lookup.DefaultCatalogLimit, cfg.CatalogLimit)
	s.NotNil(cfg.Roller)
	s.NotNil(cfg.IDGenerator)
}

func (s *OrchestratorTestSuite) TestNormalizeIdentifier() {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "pikachu", want: "pikachu"},
		{in: "  PiKaChU ", want: "pikachu"},
		{in: "25", want: "25"},
		{in: "025", want: "25"},
		{in: "mr-mime", want: "mr-mime"},
		{in: "", wantErr: true},
		{in: "   ", wantErr: true},
		{in: "0", wantErr: true},
		{in: "-3", wantErr: true},
		{in: "-mew", wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.in, func() {
			got, err := lookup.NormalizeIdentifier(tc.in)
			if tc.wantErr {
				s.True(errors.IsInvalidArgument(err))
				return
			}
			s.NoError(err)
			s.Equal(tc.want, got)
		})
	}
}

func (s *OrchestratorTestSuite) TestFetchCreature() {
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), "pikachu").Return(pikachu(), nil)

	out, err := s.orchestrator.FetchCreature(s.ctx, &lookup.FetchCreatureInput{Identifier: "Pikachu"})
	s.Require().NoError(err)
	s.Equal(25, out.Creature.ID)
	s.Equal("Pikachu", out.Creature.Name)
	s.Equal([]string{"electric"}, out.Creature.Types)
	s.Equal("https://sprites.test/25.png", out.Creature.SpriteURL)
}

func (s *OrchestratorTestSuite) TestFetchCreature_Failures() {
	testCases := []struct {
		name      string
		pokemon   *pokeapi.Pokemon
		err       error
		checkCode func(error) bool
	}{
		{name: "not found", err: errors.NotFound("missing"), checkCode: errors.IsNotFound},
		{name: "service error", err: errors.Service(500, "boom"), checkCode: errors.IsService},
		{name: "transport error", err: errors.Transport(context.DeadlineExceeded, "timed out"), checkCode: errors.IsTransport},
		{name: "malformed record", pokemon: &pokeapi.Pokemon{ID: 25}, checkCode: errors.IsMalformedData},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockClient.EXPECT().GetPokemon(gomock.Any(), "25").Return(tc.pokemon, tc.err)

			out, err := s.orchestrator.FetchCreature(s.ctx, &lookup.FetchCreatureInput{Identifier: "25"})
			s.Nil(out)
			s.True(tc.checkCode(err), "got %v", err)
		})
	}
}

func (s *OrchestratorTestSuite) TestFetchCreature_InvalidIdentifier() {
	for _, id := range []string{"", "0", "-1"} {
		out, err := s.orchestrator.FetchCreature(s.ctx, &lookup.FetchCreatureInput{Identifier: id})
		s.Nil(out)
		s.True(errors.IsInvalidArgument(err))
	}
}

func (s *OrchestratorTestSuite) TestResolveEvolution() {
	s.mockClient.EXPECT().GetSpecies(gomock.Any(), speciesURL).
		Return(&pokeapi.Species{ID: 25, Name: "pikachu", EvolutionChain: &pokeapi.APIResource{URL: chainURL}}, nil)
	s.mockClient.EXPECT().GetEvolutionChain(gomock.Any(), chainURL).Return(pikachuChain(), nil)

	out, err := s.orchestrator.ResolveEvolution(s.ctx, &lookup.ResolveEvolutionInput{Creature: pikachuCreature()})
	s.Require().NoError(err)
	s.Equal(entities.EvolutionSequence{"Pichu", "Pikachu", "Raichu"}, out.Sequence)
	s.Equal([]string{"Pichu", "Pikachu"}, out.Path)
	s.True(out.Root.IsBaby)
	s.True(out.Sequence.HasLineage())
}

func (s *OrchestratorTestSuite) TestResolveEvolution_Failures() {
	testCases := []struct {
		name      string
		setup     func()
		checkCode func(error) bool
	}{
		{
			name: "species fetch fails",
			setup: func() {
				s.mockClient.EXPECT().GetSpecies(gomock.Any(), speciesURL).Return(nil, errors.Service(503, "down"))
			},
			checkCode: errors.IsService,
		},
		{
			name: "species has no chain",
			setup: func() {
				s.mockClient.EXPECT().GetSpecies(gomock.Any(), speciesURL).Return(&pokeapi.Species{ID: 25}, nil)
			},
			checkCode: errors.IsNotFound,
		},
		{
			name: "chain fetch fails",
			setup: func() {
				s.mockClient.EXPECT().GetSpecies(gomock.Any(), speciesURL).
					Return(&pokeapi.Species{EvolutionChain: &pokeapi.APIResource{URL: chainURL}}, nil)
				s.mockClient.EXPECT().GetEvolutionChain(gomock.Any(), chainURL).Return(nil, errors.NotFound("gone"))
			},
			checkCode: errors.IsNotFound,
		},
		{
			name: "species fetch times out",
			setup: func() {
				s.mockClient.EXPECT().GetSpecies(gomock.Any(), speciesURL).
					Return(nil, errors.Transport(context.DeadlineExceeded, "request timed out").WithMeta(errors.MetaTimeout, true))
			},
			checkCode: errors.IsTransport,
		},
		{
			name: "chain fetch loses connection",
			setup: func() {
				s.mockClient.EXPECT().GetSpecies(gomock.Any(), speciesURL).
					Return(&pokeapi.Species{EvolutionChain: &pokeapi.APIResource{URL: chainURL}}, nil)
				s.mockClient.EXPECT().GetEvolutionChain(gomock.Any(), chainURL).
					Return(nil, errors.Transport(nil, "request failed"))
			},
			checkCode: errors.IsTransport,
		},
		{
			name: "chain is malformed",
			setup: func() {
				s.mockClient.EXPECT().GetSpecies(gomock.Any(), speciesURL).
					Return(&pokeapi.Species{EvolutionChain: &pokeapi.APIResource{URL: chainURL}}, nil)
				s.mockClient.EXPECT().GetEvolutionChain(gomock.Any(), chainURL).Return(&pokeapi.EvolutionChain{ID: 10}, nil)
			},
			checkCode: errors.IsMalformedData,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setup()

			out, err := s.orchestrator.ResolveEvolution(s.ctx, &lookup.ResolveEvolutionInput{Creature: pikachuCreature()})
			s.Nil(out)
			s.True(tc.checkCode(err), "got %v", err)
		})
	}
}

func (s *OrchestratorTestSuite) TestResolveEvolution_NotFoundKinds() {
	s.Run("missing chain reference carries no url", func() {
		s.mockClient.EXPECT().GetSpecies(gomock.Any(), speciesURL).Return(&pokeapi.Species{ID: 25}, nil)

		_, err := s.orchestrator.ResolveEvolution(s.ctx, &lookup.ResolveEvolutionInput{Creature: pikachuCreature()})
		s.True(errors.IsNotFound(err))
		s.NotContains(errors.GetMeta(err), errors.MetaURL)
	})

	s.Run("missing species record keeps its url", func() {
		s.mockClient.EXPECT().GetSpecies(gomock.Any(), speciesURL).
			Return(nil, errors.NotFound("no resource").WithMeta(errors.MetaURL, speciesURL))

		_, err := s.orchestrator.ResolveEvolution(s.ctx, &lookup.ResolveEvolutionInput{Creature: pikachuCreature()})
		s.True(errors.IsNotFound(err))
		s.Equal(speciesURL, errors.GetMeta(err)[errors.MetaURL])
	})
}

func (s *OrchestratorTestSuite) TestResolveEvolution_NilCreature() {
	out, err := s.orchestrator.ResolveEvolution(s.ctx, &lookup.ResolveEvolutionInput{})
	s.Nil(out)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestFetchByType() {
	members := make([]pokeapi.TypePokemon, 50)
	for i := range members {
		members[i] = pokeapi.TypePokemon{Slot: 1, Pokemon: pokeapi.NamedResource{Name: "fire-mon"}}
	}
	members[0].Pokemon.Name = "charmander"
	members[19].Pokemon.Name = "ponyta"
	members[20].Pokemon.Name = "rapidash"

	s.mockClient.EXPECT().GetType(gomock.Any(), "fire").
		Return(&pokeapi.Type{Name: "fire", Pokemon: members}, nil)

	out, err := s.orchestrator.FetchByType(s.ctx, &lookup.FetchByTypeInput{TypeName: " Fire "})
	s.Require().NoError(err)
	s.Len(out.Listing.Names, entities.MaxTypeListing)
	s.Equal("Charmander", out.Listing.Names[0])
	s.Equal("Ponyta", out.Listing.Names[19])
	s.NotContains(out.Listing.Names, "Rapidash")
	s.Equal(50, out.Listing.Total)
}

func (s *OrchestratorTestSuite) TestFetchByType_Failures() {
	s.Run("upstream error", func() {
		s.mockClient.EXPECT().GetType(gomock.Any(), "shadow").Return(nil, errors.NotFound("no such type"))

		out, err := s.orchestrator.FetchByType(s.ctx, &lookup.FetchByTypeInput{TypeName: "shadow"})
		s.True(errors.IsNotFound(err))
		s.Require().NotNil(out)
		s.Empty(out.Listing.Names)
	})

	s.Run("empty type name", func() {
		out, err := s.orchestrator.FetchByType(s.ctx, &lookup.FetchByTypeInput{})
		s.True(errors.IsInvalidArgument(err))
		s.Require().NotNil(out)
		s.Empty(out.Listing.Names)
	})
}

func (s *OrchestratorTestSuite) TestRandomCreature_Index() {
	s.roller.value = 25
	s.mockClient.EXPECT().ListPokemon(gomock.Any(), 1).Return(&pokeapi.NamedResourceList{Count: 1302}, nil)
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), "25").Return(pikachu(), nil)

	out, err := s.orchestrator.RandomCreature(s.ctx, &lookup.RandomCreatureInput{})
	s.Require().NoError(err)
	s.Equal(lookup.StrategyIndex, out.Strategy)
	s.Equal(25, out.Pick)
	s.Equal(1302, out.PoolSize)
	s.False(out.UsedFallback)
	s.Equal("Pikachu", out.Creature.Name)
	s.Equal([]int{1302}, s.roller.sizes)
}

func (s *OrchestratorTestSuite) TestRandomCreature_IndexFallback() {
	s.roller.value = 7
	s.mockClient.EXPECT().ListPokemon(gomock.Any(), 1).Return(nil, errors.Service(500, "down"))
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), "7").Return(pikachu(), nil)

	out, err := s.orchestrator.RandomCreature(s.ctx, &lookup.RandomCreatureInput{Strategy: lookup.StrategyIndex})
	s.Require().NoError(err)
	s.True(out.UsedFallback)
	s.Equal(1010, out.PoolSize)
	s.Equal([]int{1010}, s.roller.sizes)
}

func (s *OrchestratorTestSuite) TestRandomCreature_IndexZeroCountFallsBack() {
	s.roller.value = 1
	s.mockClient.EXPECT().ListPokemon(gomock.Any(), 1).Return(&pokeapi.NamedResourceList{Count: 0}, nil)
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), "1").Return(pikachu(), nil)

	out, err := s.orchestrator.RandomCreature(s.ctx, &lookup.RandomCreatureInput{})
	s.Require().NoError(err)
	s.True(out.UsedFallback)
}

func (s *OrchestratorTestSuite) TestRandomCreature_Catalog() {
	s.roller.value = 2
	s.mockClient.EXPECT().ListPokemon(gomock.Any(), 151).Return(&pokeapi.NamedResourceList{
		Count: 1302,
		Results: []pokeapi.NamedResource{
			{Name: "bulbasaur"}, {Name: "pikachu"}, {Name: "mew"},
		},
	}, nil)
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), "pikachu").Return(pikachu(), nil)

	out, err := s.orchestrator.RandomCreature(s.ctx, &lookup.RandomCreatureInput{Strategy: lookup.StrategyCatalog})
	s.Require().NoError(err)
	s.Equal(lookup.StrategyCatalog, out.Strategy)
	s.Equal(3, out.PoolSize)
	s.Equal([]int{3}, s.roller.sizes)
}

func (s *OrchestratorTestSuite) TestRandomCreature_CatalogFailures() {
	s.Run("listing fails", func() {
		s.mockClient.EXPECT().ListPokemon(gomock.Any(), 151).Return(nil, errors.Service(500, "down"))

		out, err := s.orchestrator.RandomCreature(s.ctx, &lookup.RandomCreatureInput{Strategy: lookup.StrategyCatalog})
		s.Nil(out)
		s.True(errors.IsService(err))
	})

	s.Run("listing empty", func() {
		s.mockClient.EXPECT().ListPokemon(gomock.Any(), 151).Return(&pokeapi.NamedResourceList{}, nil)

		out, err := s.orchestrator.RandomCreature(s.ctx, &lookup.RandomCreatureInput{Strategy: lookup.StrategyCatalog})
		s.Nil(out)
		s.True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestRandomCreature_BadRoll() {
	s.Run("roller error", func() {
		s.roller.err = errors.Internal("dice jammed")
		s.mockClient.EXPECT().ListPokemon(gomock.Any(), 1).Return(&pokeapi.NamedResourceList{Count: 10}, nil)

		out, err := s.orchestrator.RandomCreature(s.ctx, &lookup.RandomCreatureInput{})
		s.Nil(out)
		s.True(errors.IsInternal(err))
	})

	s.Run("out of range", func() {
		s.roller.err = nil
		s.roller.value = 11
		s.mockClient.EXPECT().ListPokemon(gomock.Any(), 1).Return(&pokeapi.NamedResourceList{Count: 10}, nil)

		out, err := s.orchestrator.RandomCreature(s.ctx, &lookup.RandomCreatureInput{})
		s.Nil(out)
		s.True(errors.IsInternal(err))
	})
}

func (s *OrchestratorTestSuite) TestRandomCreature_UnknownStrategy() {
	out, err := s.orchestrator.RandomCreature(s.ctx, &lookup.RandomCreatureInput{Strategy: "shuffle"})
	s.Nil(out)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestLookup() {
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), "pikachu").Return(pikachu(), nil)
	s.mockClient.EXPECT().GetSpecies(gomock.Any(), speciesURL).
		Return(&pokeapi.Species{EvolutionChain: &pokeapi.APIResource{URL: chainURL}}, nil)
	s.mockClient.EXPECT().GetEvolutionChain(gomock.Any(), chainURL).Return(pikachuChain(), nil)

	out, err := s.orchestrator.Lookup(s.ctx, &lookup.LookupInput{Identifier: "pikachu"})
	s.Require().NoError(err)
	s.Equal("test_1", out.LookupID)
	s.Equal("pokemon/25", out.RecordKey)
	s.Equal("Pikachu", out.Creature.Name)
	s.NoError(out.EvolutionErr)
	s.Require().NotNil(out.Evolution)
	s.Equal(entities.EvolutionSequence{"Pichu", "Pikachu", "Raichu"}, out.Evolution.Sequence)
}

func (s *OrchestratorTestSuite) TestLookup_EvolutionFailureKeepsRecord() {
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), "pikachu").Return(pikachu(), nil)
	s.mockClient.EXPECT().GetSpecies(gomock.Any(), speciesURL).Return(nil, errors.Service(500, "down"))

	out, err := s.orchestrator.Lookup(s.ctx, &lookup.LookupInput{Identifier: "pikachu"})
	s.Require().NoError(err)
	s.Require().NotNil(out.Creature)
	s.Nil(out.Evolution)
	s.True(errors.IsService(out.EvolutionErr))
}

func (s *OrchestratorTestSuite) TestLookup_RecordFailure() {
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), "nonexistent123").Return(nil, errors.NotFound("missing"))

	out, err := s.orchestrator.Lookup(s.ctx, &lookup.LookupInput{Identifier: "nonexistent123"})
	s.Nil(out)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestLookup_Random() {
	s.roller.value = 25
	s.mockClient.EXPECT().ListPokemon(gomock.Any(), 1).Return(&pokeapi.NamedResourceList{Count: 1010}, nil)
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), "25").Return(pikachu(), nil)
	s.mockClient.EXPECT().GetSpecies(gomock.Any(), speciesURL).Return(&pokeapi.Species{}, nil)

	out, err := s.orchestrator.Lookup(s.ctx, &lookup.LookupInput{Random: true})
	s.Require().NoError(err)
	s.Equal(25, out.Creature.ID)
	s.True(errors.IsNotFound(out.EvolutionErr))
}
