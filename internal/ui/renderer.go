package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/delvewood/internal/entity"
	"github.com/samdwyer/delvewood/internal/gamedata"
	"github.com/samdwyer/delvewood/internal/world"
)

// hudRows is the number of rows reserved below the map.
const hudRows = 2

// View is everything needed to draw one frame.
type View struct {
	Grid      *world.TileGrid
	Explorer  *entity.Explorer
	Overworld bool   // Colors follow the overworld bands
	Style     string // Dungeon style name, empty on the overworld
	Status    string // Left side of the status line
	Detail    string // Right side of the status line
	Message   string // Last event, shown below the status line
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette *gamedata.Palette
	camera  Camera
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette *gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Camera returns the camera used for the last frame.
func (r *Renderer) Camera() *Camera {
	return &r.camera
}

// Render draws the visible and remembered parts of the map, the explorer
// and the HUD. Hidden cells stay blank.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(h-hudRows, 0)
	r.camera.Follow(v.Explorer.Position(), v.Grid.Width, v.Grid.Height)

	for sy := 0; sy < r.camera.ViewHeight; sy++ {
		for sx := 0; sx < r.camera.ViewWidth; sx++ {
			p, _ := r.camera.ScreenToMap(sx, sy)
			vis := v.Grid.GetVisibility(p.X, p.Y)
			if vis == world.Hidden {
				continue
			}
			tile := v.Grid.Get(p.X, p.Y)
			r.screen.SetContent(sx, sy, tile.Glyph(), r.tileStyle(tile, r.group(v, p.Y), vis))
		}
	}

	if sx, sy, ok := r.camera.MapToScreen(v.Explorer.Position()); ok {
		style := tcell.StyleDefault.Foreground(r.palette.Explorer).Bold(true)
		r.screen.SetContent(sx, sy, v.Explorer.Symbol, style)
	}

	r.renderHUD(v, w, h)
	r.screen.Show()
}

// group returns the palette group for a row of the view.
func (r *Renderer) group(v View, y int) string {
	if !v.Overworld {
		return v.Style
	}
	if world.OverworldBiomeAt(y, v.Grid.Height) == world.Jungle {
		return "jungle"
	}
	return ""
}

// tileStyle returns the style for a tile. Remembered tiles are dimmed.
func (r *Renderer) tileStyle(tile world.Tile, group string, vis world.Visibility) tcell.Style {
	style := tcell.StyleDefault.Foreground(r.palette.TileColor(tile.String(), group))
	if vis == world.Seen {
		style = style.Foreground(tcell.ColorDarkSlateGray).Dim(true)
	}
	return style
}

// renderHUD draws the status line and message line under the map.
func (r *Renderer) renderHUD(v View, w, h int) {
	if h < hudRows {
		return
	}
	style := tcell.StyleDefault.Foreground(r.palette.HUD)
	statusY, messageY := h-2, h-1

	detailWidth := runewidth.StringWidth(v.Detail)
	r.drawText(0, statusY, fitText(v.Status, w-detailWidth-1), style)
	if detailWidth < w {
		r.drawText(w-detailWidth, statusY, v.Detail, style.Dim(true))
	}
	r.drawText(0, messageY, fitText(v.Message, w), style)
}

// drawText writes text starting at column x, advancing by each rune's
// display width.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, style)
		x += runewidth.RuneWidth(ch)
	}
}

// fitText truncates text to at most width display columns.
func fitText(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, "…")
}
