package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex-cli/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-cli/internal/clients/transport"
	"github.com/KirkDiggler/pokedex-cli/internal/config"
	"github.com/KirkDiggler/pokedex-cli/internal/display"
	"github.com/KirkDiggler/pokedex-cli/internal/errors"
	"github.com/KirkDiggler/pokedex-cli/internal/orchestrators/lookup"
	"github.com/KirkDiggler/pokedex-cli/internal/pkg/logging"
)

var errUsage = errors.InvalidArgument("you must provide a Pokémon name or use --random")

var (
	randomFlag   bool
	strategyFlag string
	typeFlag     string
	jsonFlag     bool
	noColorFlag  bool

	configPath    string
	baseURLFlag   string
	timeoutFlag   time.Duration
	logLevelFlag  string
	logFormatFlag string
)

func init() {
	flags := rootCmd.Flags()
	flags.BoolVar(&randomFlag, "random", false, "Fetch a random Pokémon")
	flags.StringVar(&strategyFlag, "strategy", string(lookup.StrategyIndex), "Random selection strategy (index or catalog)")
	flags.StringVarP(&typeFlag, "type", "t", "", "List up to 20 Pokémon of the given type")
	flags.BoolVar(&jsonFlag, "json", false, "Output as JSON")
	flags.BoolVar(&noColorFlag, "no-color", false, "Disable colored output")

	flags.StringVar(&configPath, "config", "", "Path to a YAML config file")
	flags.StringVar(&baseURLFlag, "base-url", pokeapi.DefaultBaseURL, "PokeAPI base URL")
	flags.DurationVar(&timeoutFlag, "timeout", transport.DefaultHTTPTimeout, "Per-request timeout")
	flags.StringVar(&logLevelFlag, "log-level", "warn", "Log level (debug, info, warn, error)")
	flags.StringVar(&logFormatFlag, "log-format", logging.FormatText, "Log format (text or json)")
}

func runLookup(cmd *cobra.Command, args []string) error {
	var identifier string
	if len(args) == 1 {
		identifier = args[0]
	}
	if identifier == "" && !randomFlag && typeFlag == "" {
		return errUsage
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	logging.Init(level, cfg.LogFormat, cmd.ErrOrStderr())

	renderer, err := display.New(&display.Config{
		Out:     cmd.OutOrStdout(),
		Err:     cmd.ErrOrStderr(),
		JSON:    cfg.JSON,
		NoColor: cfg.NoColor,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create renderer")
	}

	svc, err := newService(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Fetch failures are rendered for the user and are not process failures
	if typeFlag != "" {
		out, err := svc.FetchByType(ctx, &lookup.FetchByTypeInput{TypeName: typeFlag})
		if err != nil {
			return renderer.Error(err, fmt.Sprintf("Type '%s'", typeFlag))
		}
		return renderer.TypeListing(out.Listing)
	}

	result, err := svc.Lookup(ctx, &lookup.LookupInput{
		Identifier: identifier,
		Random:     randomFlag,
		Strategy:   lookup.Strategy(cfg.Strategy),
	})
	if err != nil {
		subject := fmt.Sprintf("Pokémon '%s'", identifier)
		if randomFlag {
			subject = "Random Pokémon"
		}
		return renderer.Error(err, subject)
	}

	slog.Debug("Rendering lookup", "lookup_id", result.LookupID)
	return renderer.Lookup(result)
}

// loadConfig merges defaults, the config file, the environment and any flags
// the user set explicitly
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.BaseURL = baseURLFlag
	}
	if flags.Changed("timeout") {
		cfg.Timeout = timeoutFlag
	}
	if flags.Changed("strategy") {
		cfg.Strategy = strategyFlag
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevelFlag
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = logFormatFlag
	}
	if flags.Changed("json") {
		cfg.JSON = jsonFlag
	}
	if flags.Changed("no-color") {
		cfg.NoColor = noColorFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// newService builds the lookup service for a run; tests replace it
var newService = newLookupService

func newLookupService(cfg *config.Config) (lookup.Service, error) {
	fetcher, err := transport.New(&transport.Config{
		HTTPTimeout: cfg.Timeout,
		UserAgent:   cfg.UserAgent + "/" + version,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create transport")
	}

	client, err := pokeapi.New(&pokeapi.Config{
		BaseURL:   cfg.BaseURL,
		Transport: fetcher,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pokeapi client")
	}

	svc, err := lookup.NewOrchestrator(&lookup.Config{
		Client:        client,
		Strategy:      lookup.Strategy(cfg.Strategy),
		FallbackCount: cfg.FallbackCount,
		CatalogLimit:  cfg.CatalogLimit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create lookup service")
	}
	return svc, nil
}
