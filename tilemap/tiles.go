package tilemap

import "math/rand"

//go:generate go run ../cmd/tilegen -root .. -tsx ../assets/sprites/tiles.tsx -out tiles_gen.go

// Tile is a terrain type. Its value is the tile's slot in the tile set image,
// which is also the ordinal handed to the renderer.
type Tile uint16

// DefaultTile fills grids that have not been generated yet.
const DefaultTile = Void

// Ordinal returns the tile set slot of t.
func (t Tile) Ordinal() uint32 {
	return uint32(t)
}

// Valid reports whether t is one of the generated tile types.
func (t Tile) Valid() bool {
	for _, v := range All {
		if v == t {
			return true
		}
	}
	return false
}

func (t Tile) IsGrass() bool {
	switch t {
	case Grass, Grass1, Grass2, Grass3:
		return true
	}
	return false
}

func (t Tile) IsSand() bool {
	switch t {
	case Beach,
		BeachTop, BeachTopLeft, BeachTopRight,
		BeachBottom, BeachBottomLeft, BeachBottomRight,
		BeachLeft, BeachRight:
		return true
	}
	return false
}

func (t Tile) IsWaterDeep() bool {
	switch t {
	case WaterDeep, WaterDeepWave, WaterDeepWaveAlt, WaterDeepTurbulent:
		return true
	}
	return false
}

func (t Tile) IsWaterShallow() bool {
	switch t {
	case WaterShallow, WaterShallowWave, WaterShallowWaveAlt,
		WaterShallowTurbulent, WaterShallowLilly, WaterShallowDirt:
		return true
	}
	return false
}

func (t Tile) IsWater() bool {
	return t.IsWaterDeep() || t.IsWaterShallow()
}

func (t Tile) IsLand() bool {
	return !t.IsWater()
}

// ParseTile looks a tile type up by its tile set name, e.g. "water_deep".
func ParseTile(name string) (Tile, bool) {
	for _, t := range All {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}

// grassVariant picks a cosmetic grass tile: 10% Grass1, 10% Grass2, else Grass.
func grassVariant(rng *rand.Rand) Tile {
	switch v := rng.Float32(); {
	case v < 0.1:
		return Grass1
	case v < 0.2:
		return Grass2
	default:
		return Grass
	}
}
