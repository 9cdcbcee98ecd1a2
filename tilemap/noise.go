package tilemap

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// ErrUnknownNoise is returned by ParseNoiseKind for unsupported names.
var ErrUnknownNoise = errors.New("unknown noise kind")

// NoiseKind selects the single octave source the noise field is built on.
type NoiseKind int

const (
	NoisePerlin NoiseKind = iota
	NoiseSimplex
)

func (k NoiseKind) String() string {
	switch k {
	case NoisePerlin:
		return "perlin"
	case NoiseSimplex:
		return "simplex"
	}
	return fmt.Sprintf("NoiseKind(%d)", int(k))
}

func ParseNoiseKind(s string) (NoiseKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "perlin":
		return NoisePerlin, nil
	case "simplex", "opensimplex":
		return NoiseSimplex, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNoise, s)
}

const (
	noiseOctaves     = 6
	noisePersistence = 0.5
	noiseLacunarity  = 2.25

	freqMin = 1.0
	freqMax = 4.0

	// Larger continent scale means a smaller coordinate scale, so more and
	// smaller continents.
	scaleMin = 0.005
	scaleMax = 0.0005
)

type source2D interface {
	Eval2(x, y float64) float64
}

type perlinSource struct {
	p *perlin.Perlin
}

func (s perlinSource) Eval2(x, y float64) float64 {
	return s.p.Noise2D(x, y)
}

// NoiseField is fractal noise over tile space, clamped to [0, 1]. It is
// read-only after construction and safe to share between goroutines.
type NoiseField struct {
	source    source2D
	scale     float64
	frequency float64
}

func NewNoiseField(conf GenerateConf) *NoiseField {
	cs := clamp01(conf.ContinentScale)

	var src source2D
	switch conf.Noise {
	case NoiseSimplex:
		src = opensimplex.New(int64(conf.Seed))
	default:
		// One octave per call, the field does its own layering.
		src = perlinSource{p: perlin.NewPerlin(1/noisePersistence, noiseLacunarity, 1, int64(conf.Seed))}
	}

	return &NoiseField{
		source:    src,
		scale:     scaleMin + (scaleMax-scaleMin)*cs,
		frequency: freqMin + (freqMax-freqMin)*cs,
	}
}

// At samples the field at tile space coordinate (x, y).
func (f *NoiseField) At(x, y float64) float64 {
	x *= f.scale * f.frequency
	y *= f.scale * f.frequency

	v := 0.0
	amp := 1.0
	for i := 0; i < noiseOctaves; i++ {
		v += f.source.Eval2(x, y) * amp
		amp *= noisePersistence
		x *= noiseLacunarity
		y *= noiseLacunarity
	}
	return clamp01(v)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
