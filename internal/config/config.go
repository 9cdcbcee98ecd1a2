// Package config reads the host's settings from command-line flags, with
// ARCHIPELAGO_* environment variables as defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"Archipelago/tilemap"
)

const envPrefix = "ARCHIPELAGO_"

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Generate tilemap.GenerateConf
	Refine   tilemap.RefineConf

	// MaxLoadsPerStep caps chunk generation per frame, zero loads everything
	// visible at once.
	MaxLoadsPerStep int
	Workers         int
	CacheSize       int

	Width, Height int
	Debug         bool
	// Verbose logs every streaming step.
	Verbose bool
}

func Default() Config {
	return Config{
		Generate:        tilemap.DefaultGenerateConf(),
		Refine:          tilemap.DefaultRefineConf(),
		MaxLoadsPerStep: 64,
		CacheSize:       tilemap.DefaultCacheSize,
		Width:           1280,
		Height:          720,
	}
}

// Load parses args on top of the environment. getenv is usually os.Getenv.
func Load(name string, args []string, getenv func(string) string) (Config, error) {
	cfg := Default()
	env := func(key string) string {
		return strings.TrimSpace(getenv(envPrefix + key))
	}

	var err error
	seed := strconv.FormatUint(uint64(cfg.Generate.Seed), 10)
	if v := env("SEED"); v != "" {
		seed = v
	}
	scale := cfg.Generate.ContinentScale
	if v := env("CONTINENT_SCALE"); v != "" {
		if scale, err = strconv.ParseFloat(v, 64); err != nil {
			return cfg, fmt.Errorf("%w: %sCONTINENT_SCALE: %v", ErrInvalid, envPrefix, err)
		}
	}
	noise := cfg.Generate.Noise.String()
	if v := env("NOISE"); v != "" {
		noise = v
	}
	passes := cfg.Refine.MaxPasses
	ints := []struct {
		key string
		dst *int
	}{
		{"REFINE_PASSES", &passes},
		{"MAX_LOADS", &cfg.MaxLoadsPerStep},
		{"WORKERS", &cfg.Workers},
		{"CACHE_SIZE", &cfg.CacheSize},
	}
	for _, e := range ints {
		if err := intEnv(envPrefix+e.key, env(e.key), e.dst); err != nil {
			return cfg, err
		}
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&seed, "seed", seed, "world seed, decimal or 0x hex")
	fs.Float64Var(&scale, "scale", scale, "continent scale in [0, 1]")
	fs.StringVar(&noise, "noise", noise, "noise kind: perlin or simplex")
	fs.IntVar(&passes, "refine", passes, "refinement passes, 0 disables, -1 runs to a fixed point")
	fs.IntVar(&cfg.MaxLoadsPerStep, "loads", cfg.MaxLoadsPerStep, "chunks generated per frame, 0 for no limit")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "generation workers, 0 for GOMAXPROCS")
	fs.IntVar(&cfg.CacheSize, "cache", cfg.CacheSize, "evicted chunks kept for reuse, negative disables")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "window width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "window height")
	fs.BoolVar(&cfg.Debug, "debug", env("DEBUG") == "1", "start with the debug overlay")
	fs.BoolVar(&cfg.Verbose, "v", false, "log every streaming step")
	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	s, err := strconv.ParseUint(seed, 0, 32)
	if err != nil {
		return cfg, fmt.Errorf("%w: seed %q: %v", ErrInvalid, seed, err)
	}
	if scale < 0 || scale > 1 {
		return cfg, fmt.Errorf("%w: continent scale %v outside [0, 1]", ErrInvalid, scale)
	}
	kind, err := tilemap.ParseNoiseKind(noise)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("%w: window size %dx%d", ErrInvalid, cfg.Width, cfg.Height)
	}

	cfg.Generate = tilemap.GenerateConf{Seed: uint32(s), ContinentScale: scale, Noise: kind}
	cfg.Refine = tilemap.RefineConf{MaxPasses: passes}
	if passes < 0 {
		cfg.Refine = tilemap.UntilStable()
	}
	return cfg, nil
}

// intEnv stores v in dst unless it is empty.
func intEnv(key, v string, dst *int) error {
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, key, err)
	}
	*dst = n
	return nil
}
