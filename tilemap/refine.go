package tilemap

import "image"

// RefineConf controls the shoreline refinement run after generation.
type RefineConf struct {
	// MaxPasses bounds the number of passes. Refinement stops earlier once a
	// pass changes nothing. Zero disables refinement.
	MaxPasses int
}

func DefaultRefineConf() RefineConf {
	return RefineConf{MaxPasses: 1}
}

// UntilStable returns a conf that runs refinement to its fixed point. Every
// pass but the last two turns some land into water or some deep water
// shallow, and neither is ever undone.
func UntilStable() RefineConf {
	return RefineConf{MaxPasses: 2*ChunkTileCount + 2}
}

type RefineStats struct {
	Passes  int
	Changed int
	// Stable is set when the last pass changed nothing.
	Stable bool
}

// Refine rewrites g in passes until it is stable or conf.MaxPasses passes ran.
func Refine(g *Grid, conf RefineConf) RefineStats {
	var stats RefineStats
	for stats.Passes < conf.MaxPasses {
		n := RefinePass(g)
		stats.Passes++
		stats.Changed += n
		if n == 0 {
			stats.Stable = true
			break
		}
	}
	return stats
}

// RefinePass runs every rule once over g and returns the number of tiles
// changed. Rules read the grid as it was when the pass started, so a tile
// changed in this pass is not seen by its neighbors until the next one.
func RefinePass(g *Grid) int {
	prev := *g
	changed := 0
	for x := 0; x < ChunkTiles; x++ {
		for y := 0; y < ChunkTiles; y++ {
			pos := image.Pt(x, y)
			t, _ := prev.Get(pos)
			next := refineTile(t, NeighborsOf(pos, &prev))
			if next != t {
				g.Set(pos, next)
				changed++
			}
		}
	}
	return changed
}

func refineTile(t Tile, n Neighbors[Tile]) Tile {
	switch {
	case t.IsSand():
		return refineSand(t, n)
	case t.IsGrass():
		return refineGrass(t, n)
	case t.IsWater():
		return refineWater(t, n)
	}
	return t
}

// refineWater turns deep water next to land shallow.
func refineWater(t Tile, n Neighbors[Tile]) Tile {
	if t.IsWaterDeep() && !n.Filter(Tile.IsLand).IsEmpty() {
		return WaterShallow
	}
	return t
}

// refineSand removes sand islands and turns shore sand into the beach tile
// facing the water.
func refineSand(t Tile, n Neighbors[Tile]) Tile {
	water := n.Filter(Tile.IsWater)
	if water.IsEmpty() {
		return t
	}
	if water.Count() == 4 {
		return WaterShallow
	}

	north, south := water.Has(North), water.Has(South)
	east, west := water.Has(East), water.Has(West)
	switch {
	case north && east:
		return BeachTopRight
	case north && west:
		return BeachTopLeft
	case north:
		return BeachTop
	case south && east:
		return BeachBottomRight
	case south && west:
		return BeachBottomLeft
	case south:
		return BeachBottom
	case east:
		return BeachLeft
	case west:
		return BeachRight
	}
	return t
}

// refineGrass drowns single grass tiles surrounded by water.
func refineGrass(t Tile, n Neighbors[Tile]) Tile {
	if n.Filter(Tile.IsWater).Count() == 4 {
		return WaterShallow
	}
	return t
}
