package entities

import (
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityTypeCreature is the rpg-toolkit entity type reported by Creature
const EntityTypeCreature = "pokemon"

// Creature is a fully populated creature record from a single successful fetch
type Creature struct {
	ID         int
	Slug       string // lower-case lookup key, e.g. "mr-mime"
	Name       string // display name, e.g. "Mr-Mime"
	Types      []string
	Stats      []Stat
	SpriteURL  string // empty when the upstream has no sprite
	SpeciesURL string
}

// Stat is one base stat in upstream order
type Stat struct {
	Name      string
	BaseValue int
}

// StatMap returns the stats keyed by name
func (c *Creature) StatMap() map[string]int {
	out := make(map[string]int, len(c.Stats))
	for _, s := range c.Stats {
		out[s.Name] = s.BaseValue
	}
	return out
}

// HasSprite reports whether a sprite URL is available
func (c *Creature) HasSprite() bool {
	return c.SpriteURL != ""
}

// GetID returns the creature id as a string for rpg-toolkit
func (c *Creature) GetID() string {
	return strconv.Itoa(c.ID)
}

// GetType returns the entity type for rpg-toolkit
func (c *Creature) GetType() string {
	return EntityTypeCreature
}

var _ core.Entity = (*Creature)(nil)

// RecordKey identifies an entity as "<type>/<id>", e.g. "pokemon/25"
func RecordKey(e core.Entity) string {
	return e.GetType() + "/" + e.GetID()
}
