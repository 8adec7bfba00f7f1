// Package display renders lookup results and failures for the terminal.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/muesli/termenv"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/pokedex-cli/internal/entities"
	"github.com/KirkDiggler/pokedex-cli/internal/errors"
	"github.com/KirkDiggler/pokedex-cli/internal/orchestrators/lookup"
)

// EvolutionSeparator joins names in a rendered evolution chain
const EvolutionSeparator = " → "

var typeEmojis = map[string]string{
	"normal":   "😺",
	"fire":     "🔥",
	"water":    "💧",
	"electric": "⚡",
	"grass":    "🌱",
	"ice":      "❄️",
	"fighting": "🥊",
	"poison":   "☠️",
	"ground":   "🌍",
	"flying":   "🕊️",
	"psychic":  "🔮",
	"bug":      "🐛",
	"rock":     "🪨",
	"ghost":    "👻",
	"dragon":   "🐉",
	"dark":     "🌑",
	"steel":    "⚙️",
	"fairy":    "🧚",
}

// TypeEmoji returns the emoji for a type name, or a question mark for unknown types
func TypeEmoji(typeName string) string {
	if e, ok := typeEmojis[typeName]; ok {
		return e
	}
	return "❓"
}

// Config holds the output targets and mode
type Config struct {
	Out io.Writer // required
	Err io.Writer // defaults to Out

	JSON    bool
	NoColor bool
}

// Validate validates the Config and sets defaults if not provided.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Out == nil {
		vb.RequiredField("Out")
	}
	if c.Err == nil {
		c.Err = c.Out
	}
	return vb.Build()
}

type styles struct {
	name    lipgloss.Style
	label   lipgloss.Style
	errTag  lipgloss.Style
	warnTag lipgloss.Style
	muted   lipgloss.Style
}

// Renderer writes results to explicit writers
type Renderer struct {
	out    io.Writer
	err    io.Writer
	json   bool
	styles styles
	title  cases.Caser
}

// New creates a renderer bound to the configured writers
func New(cfg *Config) (*Renderer, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	lg := lipgloss.NewRenderer(cfg.Out)
	if cfg.NoColor {
		lg.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		out:  cfg.Out,
		err:  cfg.Err,
		json: cfg.JSON,
		styles: styles{
			name:    lg.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
			label:   lg.NewStyle().Bold(true),
			errTag:  lg.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
			warnTag: lg.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
			muted:   lg.NewStyle().Faint(true),
		},
		title: cases.Title(language.English),
	}, nil
}

// Lookup renders a creature record followed by its evolution chain, or a
// warning when the chain could not be resolved
func (r *Renderer) Lookup(result *lookup.LookupOutput) error {
	if result == nil || result.Creature == nil {
		return errors.InvalidArgument("lookup result has no creature")
	}
	if r.json {
		return r.writeJSON(newLookupDocument(result))
	}

	if err := r.creature(result.Creature); err != nil {
		return err
	}

	switch {
	case result.EvolutionErr != nil:
		return r.evolutionWarning(result.EvolutionErr)
	case result.Evolution != nil:
		return r.evolution(result.Evolution.Sequence)
	}
	return nil
}

func (r *Renderer) creature(c *entities.Creature) error {
	types := make([]string, len(c.Types))
	for i, t := range c.Types {
		types[i] = fmt.Sprintf("%s %s", TypeEmoji(t), r.title.String(t))
	}

	sprite := c.SpriteURL
	if !c.HasSprite() {
		sprite = r.styles.muted.Render("none")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s (#%d)\n", r.styles.name.Render(c.Name), c.ID)
	fmt.Fprintf(&b, "%s %s\n", r.styles.label.Render("Type(s):"), strings.Join(types, ", "))
	fmt.Fprintf(&b, "%s %s\n\n", r.styles.label.Render("Sprite:"), sprite)

	tw := newTable("Base Stats")
	tw.AppendHeader(table.Row{"Stat", "Value"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignCenter, AlignHeader: text.AlignCenter},
	})
	for _, s := range c.Stats {
		tw.AppendRow(table.Row{r.title.String(s.Name), s.BaseValue})
	}
	b.WriteString(tw.Render())
	b.WriteString("\n")

	_, err := io.WriteString(r.out, b.String())
	return err
}

// evolution prints the chain only when there is more than one stage
func (r *Renderer) evolution(seq entities.EvolutionSequence) error {
	if !seq.HasLineage() {
		return nil
	}
	_, err := fmt.Fprintf(r.out, "\n%s %s\n", r.styles.label.Render("Evolution:"), strings.Join(seq, EvolutionSeparator))
	return err
}

func (r *Renderer) evolutionWarning(err error) error {
	_, werr := fmt.Fprintf(r.out, "\n%s %s\n", r.styles.warnTag.Render("Warning:"), describeEvolution(err))
	return werr
}

// describeEvolution separates a species without a chain reference from a
// referenced species or chain record that upstream could not find
func describeEvolution(err error) string {
	if errors.IsNotFound(err) && errors.GetMeta(err)[errors.MetaURL] == nil {
		return "No evolution chain available."
	}
	return "Evolution chain unavailable: " + describe(err, "Evolution record")
}

// TypeListing renders a numbered list of names sharing a type
func (r *Renderer) TypeListing(listing entities.TypeListing) error {
	if r.json {
		return r.writeJSON(newTypeDocument(listing))
	}

	title := fmt.Sprintf("%s %s Pokémon", TypeEmoji(listing.Type), r.title.String(listing.Type))
	tw := newTable(title)
	tw.AppendHeader(table.Row{"#", "Name"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})
	for i, name := range listing.Names {
		tw.AppendRow(table.Row{i + 1, name})
	}
	tw.SetCaption("showing %d of %d", len(listing.Names), listing.Total)

	_, err := fmt.Fprintf(r.out, "\n%s\n", tw.Render())
	return err
}

// Error renders a failure for the given subject. Human output goes to the
// error writer; JSON output goes to the main writer so it stays one document.
func (r *Renderer) Error(err error, subject string) error {
	if err == nil {
		return nil
	}
	if r.json {
		return r.writeJSON(newErrorDocument(err, subject))
	}
	_, werr := fmt.Fprintf(r.err, "%s %s\n", r.styles.errTag.Render("Error:"), describe(err, subject))
	return werr
}

func describe(err error, subject string) string {
	switch errors.GetCode(err) {
	case errors.CodeNotFound:
		if subject == "" {
			return "Not found."
		}
		return fmt.Sprintf("%s not found.", subject)
	case errors.CodeService:
		return fmt.Sprintf("Could not fetch data. (Status code: %d)", errors.ServiceStatus(err))
	case errors.CodeTransport:
		if errors.IsTimeout(err) {
			return "The request timed out. Check your connection and try again."
		}
		return "Could not reach PokeAPI. Check your connection and try again."
	case errors.CodeMalformedData:
		return "PokeAPI returned data in an unexpected shape."
	case errors.CodeInvalidArgument:
		return fmt.Sprintf("Invalid input: %s", errors.GetMessage(err))
	default:
		return fmt.Sprintf("Unexpected error: %v", err)
	}
}

func newTable(title string) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault
	tw.SetTitle("%s", title)
	return tw
}

func (r *Renderer) writeJSON(doc any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}
