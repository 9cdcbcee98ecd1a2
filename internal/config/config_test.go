package config

import (
	"errors"
	"testing"

	"Archipelago/tilemap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("test", nil, envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, uint32(0xdead), cfg.Generate.Seed)
	assert.Equal(t, 1, cfg.Refine.MaxPasses)
}

func TestLoadEnvironment(t *testing.T) {
	cfg, err := Load("test", nil, envMap(map[string]string{
		"ARCHIPELAGO_SEED":            "0x10",
		"ARCHIPELAGO_CONTINENT_SCALE": "0.25",
		"ARCHIPELAGO_NOISE":           "simplex",
		"ARCHIPELAGO_REFINE_PASSES":   "0",
		"ARCHIPELAGO_MAX_LOADS":       " 16 ",
		"ARCHIPELAGO_WORKERS":         "3",
		"ARCHIPELAGO_CACHE_SIZE":      "-1",
	}))
	require.NoError(t, err)
	assert.Equal(t, tilemap.GenerateConf{Seed: 16, ContinentScale: 0.25, Noise: tilemap.NoiseSimplex}, cfg.Generate)
	assert.Equal(t, tilemap.RefineConf{}, cfg.Refine)
	assert.Equal(t, 16, cfg.MaxLoadsPerStep)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, -1, cfg.CacheSize)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := Load("test",
		[]string{"-seed", "7", "-noise", "perlin", "-refine", "-1", "-loads", "0", "-debug"},
		envMap(map[string]string{"ARCHIPELAGO_SEED": "99", "ARCHIPELAGO_NOISE": "simplex"}))
	require.NoError(t, err)
	assert.Equal(t, uint32(7), cfg.Generate.Seed)
	assert.Equal(t, tilemap.NoisePerlin, cfg.Generate.Noise)
	assert.Equal(t, tilemap.UntilStable(), cfg.Refine)
	assert.Zero(t, cfg.MaxLoadsPerStep)
	assert.True(t, cfg.Debug)
}

func TestLoadRejects(t *testing.T) {
	cases := map[string][]string{
		"seed":    {"-seed", "banana"},
		"range":   {"-seed", "0x1ffffffff"},
		"scale":   {"-scale", "1.5"},
		"noise":   {"-noise", "worley"},
		"size":    {"-width", "0"},
		"unknown": {"-nope"},
	}
	for name, args := range cases {
		_, err := Load("test", args, envMap(nil))
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, ErrInvalid), name)
	}

	_, err := Load("test", []string{"-noise", "worley"}, envMap(nil))
	assert.True(t, errors.Is(err, tilemap.ErrUnknownNoise))

	_, err = Load("test", nil, envMap(map[string]string{"ARCHIPELAGO_CONTINENT_SCALE": "big"}))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadRejectsMalformedIntegers(t *testing.T) {
	for _, key := range []string{"REFINE_PASSES", "MAX_LOADS", "WORKERS", "CACHE_SIZE"} {
		name := "ARCHIPELAGO_" + key
		_, err := Load("test", nil, envMap(map[string]string{name: "not a number"}))
		require.Error(t, err, name)
		assert.ErrorIs(t, err, ErrInvalid, name)
		assert.Contains(t, err.Error(), name)
	}

	// A flag still wins over a valid environment value.
	cfg, err := Load("test", []string{"-loads", "5"}, envMap(map[string]string{"ARCHIPELAGO_MAX_LOADS": "9"}))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MaxLoadsPerStep)
}
