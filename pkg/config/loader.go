package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu     sync.RWMutex
	cached *Config
)

// Load reads Config from the environment.
//
// Without paths the default .env in the working directory is loaded if it
// exists. Explicit paths must exist. Variables already set in the process
// environment are never overridden by .env files.
//
// The first successful result is cached and returned by later calls,
// whatever paths they pass.
func Load(paths ...string) (Config, error) {
	mu.RLock()
	if cached != nil {
		cfg := *cached
		mu.RUnlock()
		return cfg, nil
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if cached != nil {
		return *cached, nil
	}

	if len(paths) == 0 {
		// The default file is optional.
		_ = godotenv.Load()
	} else if err := godotenv.Load(paths...); err != nil {
		return Config{}, errors.Join(ErrLoadingEnvFile, err)
	}

	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: Prefix})
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %q", err, cfg.LogFormat)
	}

	cached = &cfg
	return cfg, nil
}

// MustLoad works like Load but panics if loading fails.
func MustLoad(paths ...string) Config {
	cfg, err := Load(paths...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}

// ResetCache drops the cached Config so the next Load reads the environment again.
func ResetCache() {
	mu.Lock()
	cached = nil
	mu.Unlock()
}
