package tilemap

import (
	"image"
	"math/rand"
)

// GenerateConf is the world generation configuration. Treat it as immutable:
// a changed world gets a new value, see Manager.Reconfigure.
type GenerateConf struct {
	// Seed is the world seed.
	Seed uint32
	// ContinentScale in [0, 1]; higher values give more, smaller landmasses.
	ContinentScale float64
	Noise          NoiseKind
}

func DefaultGenerateConf() GenerateConf {
	return GenerateConf{
		Seed:           0xdead,
		ContinentScale: 1.0,
		Noise:          NoisePerlin,
	}
}

// Terrain thresholds. Each band is closed at the top.
const (
	deepWaterMax    = 0.10
	shallowWaterMax = 0.20
	beachMax        = 0.25
)

// rngWarmup draws are discarded from every chunk source before use.
const rngWarmup = 32

// Generate returns the tiles of chunk id. The same conf and id always give
// the same grid.
func Generate(conf GenerateConf, id ChunkID) *Grid {
	g := NewGrid()
	GenerateInto(NewNoiseField(conf), conf, id, g)
	return g
}

// GenerateInto fills g with the tiles of chunk id. field must have been built
// from conf.
func GenerateInto(field *NoiseField, conf GenerateConf, id ChunkID, g *Grid) {
	rng := chunkRand(conf.Seed, id)
	origin := id.TileOrigin()

	for x := 0; x < ChunkTiles; x++ {
		for y := 0; y < ChunkTiles; y++ {
			v := field.At(float64(origin.X+x), float64(origin.Y+y))
			g.Set(image.Pt(x, y), Classify(v, rng))
		}
	}
}

// Classify maps a noise value to a terrain type. rng is only drawn from for
// grass.
func Classify(v float64, rng *rand.Rand) Tile {
	switch {
	case v <= deepWaterMax:
		return WaterDeep
	case v <= shallowWaterMax:
		return WaterShallow
	case v <= beachMax:
		return Beach
	default:
		return grassVariant(rng)
	}
}

func chunkRand(seed uint32, id ChunkID) *rand.Rand {
	rng := rand.New(rand.NewSource(chunkSeed(seed, id)))
	for i := 0; i < rngWarmup; i++ {
		rng.Uint64()
	}
	return rng
}

// chunkSeed mixes the world seed and chunk coordinates into a 64-bit source
// seed. Must stay stable: changing it changes every world.
func chunkSeed(seed uint32, id ChunkID) int64 {
	h := seed
	h ^= uint32(int32(id.X)) * 0x9e3779b1
	h ^= uint32(int32(id.Y)) * 0x85ebca6b
	lo := hash32(h)
	hi := hash32(lo ^ seed ^ 0xc2b2ae35)
	return int64(uint64(hi)<<32 | uint64(lo))
}

// hash32 is a murmur style finalizer.
func hash32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}
