// Package world provides terrain generation, fog of war and pathfinding
// for the overworld and its dungeons.
package world

// Tile represents a single map tile.
type Tile uint8

const (
	// TileWall represents an impassable, opaque wall tile.
	TileWall Tile = iota
	// TileFloor represents a passable dungeon or cave floor tile.
	TileFloor
	// TileTree represents an impassable, opaque forest tile.
	TileTree
	// TileGrass represents a passable overworld clearing.
	TileGrass
	// TileRoad represents a passable road carved between dungeon entrances.
	TileRoad
	// TileDungeonEntrance marks the overworld cell that leads into a dungeon.
	TileDungeonEntrance
	// TileStairsUp leads to the previous level, or out to the overworld.
	TileStairsUp
	// TileStairsDown leads to the next level.
	TileStairsDown
)

// Walkable returns true if the tile can be walked on.
func (t Tile) Walkable() bool {
	switch t {
	case TileFloor, TileGrass, TileRoad, TileDungeonEntrance, TileStairsUp, TileStairsDown:
		return true
	default:
		return false
	}
}

// BlocksSight returns true if the tile stops line of sight.
func (t Tile) BlocksSight() bool {
	return t == TileWall || t == TileTree
}

// Glyph returns the tile's display character.
func (t Tile) Glyph() rune {
	switch t {
	case TileWall:
		return '#'
	case TileFloor, TileGrass:
		return '.'
	case TileTree:
		return 'T'
	case TileRoad:
		return '='
	case TileDungeonEntrance, TileStairsDown:
		return '>'
	case TileStairsUp:
		return '<'
	default:
		return '?'
	}
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileTree:
		return "tree"
	case TileGrass:
		return "grass"
	case TileRoad:
		return "road"
	case TileDungeonEntrance:
		return "dungeon_entrance"
	case TileStairsUp:
		return "stairs_up"
	case TileStairsDown:
		return "stairs_down"
	default:
		return "unknown"
	}
}

// Visibility is the fog-of-war state of a single cell.
type Visibility uint8

const (
	// Hidden cells have never been observed.
	Hidden Visibility = iota
	// Visible cells were lit by the most recent field-of-view pass.
	Visible
	// Seen cells were visible once and are remembered.
	Seen
)

// String returns a human-readable visibility name.
func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Visible:
		return "visible"
	case Seen:
		return "seen"
	default:
		return "unknown"
	}
}
