package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// PaletteDef is the JSON form of palette.json. Every color is a hex string.
type PaletteDef struct {
	Tiles    map[string]string            `json:"tiles"`  // Keyed by tile name
	Bands    map[string]map[string]string `json:"bands"`  // Overworld band overrides
	Styles   map[string]map[string]string `json:"styles"` // Dungeon style overrides
	Explorer string                       `json:"explorer"`
	HUD      string                       `json:"hud"`
}

// Palette holds parsed colors for drawing maps. Lookups fall back from a
// style or band override to the base tile color.
type Palette struct {
	tiles    map[string]tcell.Color
	bands    map[string]map[string]tcell.Color
	styles   map[string]map[string]tcell.Color
	Explorer tcell.Color
	HUD      tcell.Color
}

// LoadPalette reads and parses the embedded palette.json.
func LoadPalette() (*Palette, error) {
	def, err := Load[PaletteDef]("palette.json")
	if err != nil {
		return nil, err
	}
	return NewPalette(def)
}

// NewPalette parses every color of def.
func NewPalette(def PaletteDef) (*Palette, error) {
	p := &Palette{}
	var err error

	if p.tiles, err = parseColorMap(def.Tiles); err != nil {
		return nil, fmt.Errorf("tiles: %w", err)
	}
	if p.bands, err = parseNestedColorMap(def.Bands); err != nil {
		return nil, fmt.Errorf("bands: %w", err)
	}
	if p.styles, err = parseNestedColorMap(def.Styles); err != nil {
		return nil, fmt.Errorf("styles: %w", err)
	}
	if p.Explorer, err = ParseHexColor(def.Explorer); err != nil {
		return nil, fmt.Errorf("explorer: %w", err)
	}
	if p.HUD, err = ParseHexColor(def.HUD); err != nil {
		return nil, fmt.Errorf("hud: %w", err)
	}
	return p, nil
}

// TileColor returns the color of a tile drawn under the given style or
// band name. An empty or unknown group uses the base color, and an unknown
// tile uses tcell.ColorDefault.
func (p *Palette) TileColor(tile, group string) tcell.Color {
	if c, ok := p.styles[group][tile]; ok {
		return c
	}
	if c, ok := p.bands[group][tile]; ok {
		return c
	}
	if c, ok := p.tiles[tile]; ok {
		return c
	}
	return tcell.ColorDefault
}

func parseColorMap(m map[string]string) (map[string]tcell.Color, error) {
	out := make(map[string]tcell.Color, len(m))
	for name, hex := range m {
		c, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out[name] = c
	}
	return out, nil
}

func parseNestedColorMap(m map[string]map[string]string) (map[string]map[string]tcell.Color, error) {
	out := make(map[string]map[string]tcell.Color, len(m))
	for group, inner := range m {
		parsed, err := parseColorMap(inner)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", group, err)
		}
		out[group] = parsed
	}
	return out, nil
}
