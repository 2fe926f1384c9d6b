package schema

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed data/*.toml
var embeddedCatalog embed.FS

const (
	// BaseAttributeValue is the starting value of every attribute before bonuses.
	BaseAttributeValue = 50

	// MinAttributeValue is the floor of a generated attribute.
	MinAttributeValue = 30

	// MaxStartingAttributeValue is the ceiling of a generated attribute.
	MaxStartingAttributeValue = 65

	// cmPerFoot converts decimal feet to centimeters.
	cmPerFoot = 30.48
)

// ArchetypeInfo describes an archetype's height ranges and attribute bonuses.
type ArchetypeInfo struct {
	Name         Archetype      `toml:"name"`
	Description  string         `toml:"description"`
	MaleHeight   []float64      `toml:"male_height"`
	FemaleHeight []float64      `toml:"female_height"`
	Bonuses      map[string]int `toml:"bonuses"`
}

// MoveCategory is a named group of moves usable as finishers and signatures.
type MoveCategory struct {
	Name  string   `toml:"name"`
	Moves []string `toml:"moves"`
}

// Persona is an in-ring style with its eligibility restrictions.
type Persona struct {
	Name        string         `toml:"name"`
	Description string         `toml:"description"`
	Archetypes  []Archetype    `toml:"archetypes"`
	Weights     []WeightClass  `toml:"weights"`
	Alignments  []Alignment    `toml:"alignments"`
	BonusAttrs  map[string]int `toml:"bonus_attrs"`
}

// Catalog holds the reference data for wrestler creation.
type Catalog struct {
	Attributes        []string            `toml:"attributes"`
	AlignmentPersonas map[string][]string `toml:"alignment_personas"`
	BodyTypes         map[string]string   `toml:"body_types"`
	Archetypes        []ArchetypeInfo     `toml:"archetypes"`
	Categories        []MoveCategory      `toml:"categories"`
	Personas          []Persona           `toml:"personas"`
}

// HeightRange is a height range in decimal feet and centimeters.
type HeightRange struct {
	FeetMin float64
	FeetMax float64
	CmMin   int
	CmMax   int
}

var (
	defaultCatalog     *Catalog
	defaultCatalogErr  error
	defaultCatalogOnce sync.Once
)

// DefaultCatalog returns the embedded catalog. It panics if the embedded data is invalid.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		data, err := embeddedCatalog.ReadFile("data/catalog.toml")
		if err != nil {
			defaultCatalogErr = err
			return
		}
		defaultCatalog, defaultCatalogErr = ParseCatalog(data)
	})
	if defaultCatalogErr != nil {
		panic(fmt.Sprintf("embedded catalog: %v", defaultCatalogErr))
	}
	return defaultCatalog
}

// LoadCatalog reads a catalog from path, falling back to the embedded one when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates TOML catalog data.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if _, err := toml.Decode(string(data), &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that the catalog is internally consistent.
func (c *Catalog) Validate() error {
	if len(c.Attributes) == 0 {
		return errors.New("catalog has no attributes")
	}
	if len(c.Categories) == 0 {
		return errors.New("catalog has no move categories")
	}
	for _, a := range AllArchetypes {
		info, ok := c.Archetype(a)
		if !ok {
			return fmt.Errorf("catalog is missing archetype %q", a)
		}
		if len(info.MaleHeight) != 2 || len(info.FemaleHeight) != 2 {
			return fmt.Errorf("archetype %q needs a [min, max] height for each gender", a)
		}
		for attr := range info.Bonuses {
			if !slices.Contains(c.Attributes, attr) {
				return fmt.Errorf("archetype %q has bonus for unknown attribute %q", a, attr)
			}
		}
	}
	for _, p := range c.Personas {
		for attr := range p.BonusAttrs {
			if !slices.Contains(c.Attributes, attr) {
				return fmt.Errorf("persona %q has bonus for unknown attribute %q", p.Name, attr)
			}
		}
	}
	for align, names := range c.AlignmentPersonas {
		for _, name := range names {
			if _, ok := c.Persona(name); !ok {
				return fmt.Errorf("alignment %q lists unknown persona %q", align, name)
			}
		}
	}
	return nil
}

// Archetype returns the info for a, if present.
func (c *Catalog) Archetype(a Archetype) (ArchetypeInfo, bool) {
	for _, info := range c.Archetypes {
		if info.Name == a {
			return info, true
		}
	}
	return ArchetypeInfo{}, false
}

// Height returns the height range of an archetype for a gender.
func (c *Catalog) Height(a Archetype, g Gender) (HeightRange, bool) {
	info, ok := c.Archetype(a)
	if !ok {
		return HeightRange{}, false
	}
	r := info.MaleHeight
	if g == Female {
		r = info.FemaleHeight
	}
	if len(r) != 2 {
		return HeightRange{}, false
	}
	return HeightRange{
		FeetMin: r[0],
		FeetMax: r[1],
		CmMin:   FeetToCm(r[0]),
		CmMax:   FeetToCm(r[1]),
	}, true
}

// Persona returns the persona named name, if present.
func (c *Catalog) Persona(name string) (Persona, bool) {
	for _, p := range c.Personas {
		if p.Name == name {
			return p, true
		}
	}
	return Persona{}, false
}

// Category returns the move category named name, if present.
func (c *Catalog) Category(name string) (MoveCategory, bool) {
	for _, mc := range c.Categories {
		if mc.Name == name {
			return mc, true
		}
	}
	return MoveCategory{}, false
}

// CategoryOf returns the name of the first category containing move.
func (c *Catalog) CategoryOf(move string) (string, bool) {
	for _, mc := range c.Categories {
		if slices.Contains(mc.Moves, move) {
			return mc.Name, true
		}
	}
	return "", false
}

// CategoryNames returns category names in catalog order.
func (c *Catalog) CategoryNames() []string {
	names := make([]string, 0, len(c.Categories))
	for _, mc := range c.Categories {
		names = append(names, mc.Name)
	}
	return names
}

// BodyTypeNames returns the body types sorted by name.
func (c *Catalog) BodyTypeNames() []string {
	names := make([]string, 0, len(c.BodyTypes))
	for name := range c.BodyTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailablePersonas returns the personas a wrestler may pick.
// Tweeners may pick any persona open to faces or heels except the alignment-locked ones.
func (c *Catalog) AvailablePersonas(a Archetype, w WeightClass, align Alignment) []Persona {
	var out []Persona
	for _, p := range c.Personas {
		if !slices.Contains(p.Archetypes, a) || !slices.Contains(p.Weights, w) {
			continue
		}
		if align == Tweener {
			if p.Name == "American Power" || p.Name == "Heel" {
				continue
			}
			if slices.Contains(p.Alignments, Face) || slices.Contains(p.Alignments, Heel) {
				out = append(out, p)
			}
			continue
		}
		if slices.Contains(p.Alignments, align) {
			out = append(out, p)
		}
	}
	return out
}

// PersonasForAlignment returns the persona names suggested after turning to align.
func (c *Catalog) PersonasForAlignment(align Alignment) []string {
	return c.AlignmentPersonas[string(align)]
}

// BaseAttributes returns starting attributes for an archetype and persona, clamped to the starting range.
func (c *Catalog) BaseAttributes(a Archetype, persona string) map[string]int {
	attrs := make(map[string]int, len(c.Attributes))
	for _, name := range c.Attributes {
		attrs[name] = BaseAttributeValue
	}
	if info, ok := c.Archetype(a); ok {
		for name, bonus := range info.Bonuses {
			attrs[name] += bonus
		}
	}
	if p, ok := c.Persona(persona); ok {
		for name, bonus := range p.BonusAttrs {
			attrs[name] += bonus
		}
	}
	for name, v := range attrs {
		attrs[name] = max(MinAttributeValue, min(MaxStartingAttributeValue, v))
	}
	return attrs
}

// FeetToCm converts decimal feet to whole centimeters, truncating.
func FeetToCm(feet float64) int {
	return int(feet * cmPerFoot)
}

// FormatFeet renders decimal feet as 6'2".
func FormatFeet(feet float64) string {
	whole := int(feet)
	inches := int((feet - float64(whole)) * 12)
	return fmt.Sprintf("%d'%d\"", whole, inches)
}
