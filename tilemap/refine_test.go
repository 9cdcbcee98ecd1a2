package tilemap

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled(t Tile) *Grid {
	g := NewGrid()
	g.Fill(t)
	return g
}

func at(g *Grid, x, y int) Tile {
	t, _ := g.Get(image.Pt(x, y))
	return t
}

func TestRefineSandIslandDrowns(t *testing.T) {
	g := filled(WaterDeep)
	g.Set(image.Pt(10, 10), Beach)

	// The island and the four deep tiles around it.
	assert.Equal(t, 5, RefinePass(g))
	assert.Equal(t, WaterShallow, at(g, 10, 10))
}

func TestRefineGrassIslandDrowns(t *testing.T) {
	g := filled(WaterShallow)
	g.Set(image.Pt(5, 5), Grass2)

	RefinePass(g)
	assert.Equal(t, WaterShallow, at(g, 5, 5))
}

func TestRefineDeepWaterNextToLand(t *testing.T) {
	g := filled(Grass)
	g.Set(image.Pt(20, 20), WaterDeep)
	g.Set(image.Pt(30, 30), WaterDeep)
	g.Set(image.Pt(30, 31), WaterDeep)

	RefinePass(g)
	assert.Equal(t, WaterShallow, at(g, 20, 20))
	assert.Equal(t, WaterShallow, at(g, 30, 30))
}

func TestRefineDeepWaterAwayFromLandStays(t *testing.T) {
	g := filled(WaterDeep)
	g.Set(image.Pt(0, 0), Grass)

	RefinePass(g)
	assert.Equal(t, WaterDeep, at(g, 2, 2))
	assert.Equal(t, WaterShallow, at(g, 1, 0))
	assert.Equal(t, WaterShallow, at(g, 0, 1))
}

func TestRefineBeachFacing(t *testing.T) {
	cases := []struct {
		water []Direction
		want  Tile
	}{
		{[]Direction{North, East}, BeachTopRight},
		{[]Direction{North, West}, BeachTopLeft},
		{[]Direction{North}, BeachTop},
		{[]Direction{North, South}, BeachTop},
		{[]Direction{South, East}, BeachBottomRight},
		{[]Direction{South, West}, BeachBottomLeft},
		{[]Direction{South}, BeachBottom},
		{[]Direction{East}, BeachLeft},
		{[]Direction{West}, BeachRight},
		{[]Direction{East, West}, BeachLeft},
		{nil, Beach},
	}
	center := image.Pt(25, 25)
	for _, c := range cases {
		g := filled(Grass)
		g.Set(center, Beach)
		for _, d := range c.water {
			g.Set(center.Add(d.Offset()), WaterShallow)
		}
		RefinePass(g)
		assert.Equal(t, c.want, at(g, center.X, center.Y), "water at %v", c.water)
	}
}

func TestRefineReadsPassSnapshot(t *testing.T) {
	// The grass tile drowns in this pass, yet all four deep neighbors must
	// still see it as land, including the ones visited after it.
	g := filled(WaterDeep)
	center := image.Pt(5, 5)
	g.Set(center, Grass)

	assert.Equal(t, 5, RefinePass(g))
	assert.Equal(t, WaterShallow, at(g, center.X, center.Y))
	for _, d := range VisitOrder {
		p := center.Add(d.Offset())
		assert.Equal(t, WaterShallow, at(g, p.X, p.Y), d.String())
	}

	assert.Zero(t, RefinePass(g))
}

func TestRefineDisabled(t *testing.T) {
	g := filled(WaterDeep)
	g.Set(image.Pt(10, 10), Beach)
	before := *g

	stats := Refine(g, RefineConf{})
	assert.Zero(t, stats.Passes)
	assert.Equal(t, before, *g)
}

func TestRefineStopsWhenStable(t *testing.T) {
	g := filled(WaterDeep)
	stats := Refine(g, RefineConf{MaxPasses: 10})
	assert.Equal(t, RefineStats{Passes: 1, Changed: 0, Stable: true}, stats)
}

func TestRefineFixedPoint(t *testing.T) {
	for _, id := range []ChunkID{{0, 0}, {4, -2}, {-7, 9}} {
		g := Generate(DefaultGenerateConf(), id)
		stats := Refine(g, UntilStable())
		require.True(t, stats.Stable, id.String())
		assert.Zero(t, RefinePass(g), id.String())
	}
}
