package borker

// Tile is one floor segment of a row, centred at Z and Length long.
type Tile struct {
	Row    int
	Z      float64
	Length float64
	Model  string
}

// FloorSource provides the floor tiles to draw.
type FloorSource interface {
	Tiles() []Tile
}

// unloadFraction of the render distance a tile may fall behind the player.
const unloadFraction = 0.1

// Floor is the endless ground of the runner, generated ahead of the player.
type Floor struct {
	rows           int
	tileLength     float64
	renderDistance float64
	tiles          []Tile
	next           float64
}

// NewFloor creates an empty runner floor.
func NewFloor(rows int, tileLength, renderDistance float64) *Floor {
	return &Floor{rows: rows, tileLength: tileLength, renderDistance: renderDistance}
}

// Reset drops every tile.
func (f *Floor) Reset() {
	f.tiles = f.tiles[:0]
	f.next = 0
}

// Tiles implements FloorSource.
func (f *Floor) Tiles() []Tile { return f.tiles }

// Process adds tiles up to the render distance and drops those left behind.
func (f *Floor) Process(player float64) {
	if f.tileLength <= 0 {
		return
	}
	if len(f.tiles) == 0 {
		f.next = player - f.renderDistance*unloadFraction
	}
	for f.next < player+f.renderDistance {
		for row := 0; row < f.rows; row++ {
			f.tiles = append(f.tiles, Tile{Row: row, Z: f.next, Length: f.tileLength, Model: "floorTile"})
		}
		f.next += f.tileLength
	}

	kept := f.tiles[:0]
	for _, t := range f.tiles {
		if t.Z-player >= -unloadFraction*f.renderDistance {
			kept = append(kept, t)
		}
	}
	f.tiles = kept
}

// BattleFloor is a fixed strip per row spanning the player and the boss.
type BattleFloor struct {
	padding float64
	tiles   []Tile
}

// NewBattleFloor creates an empty battle floor.
func NewBattleFloor(padding float64) *BattleFloor {
	return &BattleFloor{padding: padding}
}

// Generate lays one strip per row from player to boss plus padding on both
// ends.
func (f *BattleFloor) Generate(rows int, player, boss float64) {
	dist := boss - player
	f.tiles = f.tiles[:0]
	for row := 0; row < rows; row++ {
		f.tiles = append(f.tiles, Tile{
			Row:    row,
			Z:      player + dist/2,
			Length: dist + 2*f.padding,
			Model:  "battleFloor",
		})
	}
}

// Tiles implements FloorSource.
func (f *BattleFloor) Tiles() []Tile { return f.tiles }
