package testutils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

type cannedResponse struct {
	status int
	body   string
}

// FakePokeAPI serves canned responses keyed by path and query, under /api/v2/.
// Unknown resources return 404 like the real service.
type FakePokeAPI struct {
	server *httptest.Server

	mu        sync.Mutex
	responses map[string]cannedResponse
	requests  []string
}

// NewFakePokeAPI starts a fake upstream that is closed when the test ends
func NewFakePokeAPI(t *testing.T) *FakePokeAPI {
	t.Helper()

	f := &FakePokeAPI{responses: make(map[string]cannedResponse)}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)
	return f
}

// BaseURL is the API root to configure clients with
func (f *FakePokeAPI) BaseURL() string {
	return f.server.URL + "/api/v2/"
}

// URL returns the absolute URL of a resource relative to the API root
func (f *FakePokeAPI) URL(resource string) string {
	return f.BaseURL() + strings.TrimPrefix(resource, "/")
}

// Respond registers a response for a resource relative to the API root,
// e.g. "pokemon/25" or "pokemon?limit=1".
func (f *FakePokeAPI) Respond(resource string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses["/api/v2/"+strings.TrimPrefix(resource, "/")] = cannedResponse{status: status, body: body}
}

// RespondJSON registers a 200 response
func (f *FakePokeAPI) RespondJSON(resource, body string) {
	f.Respond(resource, http.StatusOK, body)
}

// Requests returns the resources requested so far, in order
func (f *FakePokeAPI) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.requests))
	copy(out, f.requests)
	return out
}

func (f *FakePokeAPI) serve(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Path
	if r.URL.RawQuery != "" {
		key += "?" + r.URL.RawQuery
	}

	f.mu.Lock()
	f.requests = append(f.requests, strings.TrimPrefix(key, "/api/v2/"))
	resp, ok := f.responses[key]
	f.mu.Unlock()

	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = fmt.Fprint(w, resp.body)
}

// SeedPikachu registers pikachu (by name and id), its species and the
// Pichu -> Pikachu -> Raichu chain.
func (f *FakePokeAPI) SeedPikachu() {
	speciesURL := f.URL(fmt.Sprintf("pokemon-species/%d/", PikachuID))
	chainURL := f.URL(fmt.Sprintf("evolution-chain/%d/", PikachuChainID))

	pokemon := PokemonJSON(PikachuID, "pikachu", []string{"electric"}, speciesURL)
	f.RespondJSON("pokemon/pikachu", pokemon)
	f.RespondJSON(fmt.Sprintf("pokemon/%d", PikachuID), pokemon)
	f.RespondJSON(fmt.Sprintf("pokemon-species/%d/", PikachuID), SpeciesJSON(PikachuID, "pikachu", chainURL))
	f.RespondJSON(fmt.Sprintf("evolution-chain/%d/", PikachuChainID), PikachuChainJSON())
}

// SeedTauros registers tauros, a species whose chain is a single node
func (f *FakePokeAPI) SeedTauros() {
	speciesURL := f.URL(fmt.Sprintf("pokemon-species/%d/", TaurosID))
	chainURL := f.URL("evolution-chain/59/")

	f.RespondJSON("pokemon/tauros", PokemonJSON(TaurosID, "tauros", []string{"normal"}, speciesURL))
	f.RespondJSON(fmt.Sprintf("pokemon-species/%d/", TaurosID), SpeciesJSON(TaurosID, "tauros", chainURL))
	f.RespondJSON("evolution-chain/59/", EvolutionChainJSON(59, ChainLinkJSON("tauros")))
}

// SeedType registers a type collection with n generated members
func (f *FakePokeAPI) SeedType(typeName string, n int) []string {
	names := TypeMemberNames(typeName, n)
	f.RespondJSON("type/"+typeName, TypeJSON(typeName, names))
	return names
}
