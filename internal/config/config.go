// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

// Package config handles r2pb configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/tz-bb/r2pb/internal/locate"
	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the default name of the configuration file.
const FileName = "r2pb.yaml"

// Environment variables that override file settings.
const (
	EnvDistro     = "R2PB_DISTRO"
	EnvCacheDir   = "R2PB_CACHE_DIR"
	EnvOutput     = "R2PB_OUTPUT"
	EnvSearchPath = "R2PB_SEARCH_PATH"
	EnvOffline    = "R2PB_OFFLINE"
)

// Config represents the r2pb.yaml configuration file.
type Config struct {
	Version            int                          `yaml:"version"`
	Distro             string                       `yaml:"distro"`
	Output             string                       `yaml:"output,omitempty"`
	Format             string                       `yaml:"format,omitempty"`
	Strict             bool                         `yaml:"strict,omitempty"`
	Offline            bool                         `yaml:"offline,omitempty"`
	CacheDir           string                       `yaml:"cache_dir,omitempty"`
	SearchPaths        []string                     `yaml:"search_paths,omitempty"`
	Remotes            []string                     `yaml:"remotes,omitempty"`
	Repositories       map[string]locate.Repository `yaml:"repositories,omitempty"`
	FallbackRepository string                       `yaml:"fallback_repository,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version:            CurrentConfigVersion,
		Distro:             "noetic",
		Output:             ".",
		Format:             "protobuf",
		CacheDir:           locate.DefaultCacheDir(),
		Repositories:       locate.DefaultRepositories(),
		FallbackRepository: locate.DefaultFallback,
	}
}

// Load reads a Config from a file path. Settings missing from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	cfg := Default()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, err
	}
	cfg.resolvePaths(filepath.Dir(path))
	return cfg, nil
}

// LoadOrDefault loads path when it exists and falls back to Default otherwise.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// LoadDotEnv loads .env from the working directory into the process
// environment. A missing file is not an error.
func LoadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// ApplyEnv overrides settings from environment variables.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := strings.TrimSpace(getenv(EnvDistro)); v != "" {
		c.Distro = v
	}
	if v := strings.TrimSpace(getenv(EnvCacheDir)); v != "" {
		c.CacheDir = v
	}
	if v := strings.TrimSpace(getenv(EnvOutput)); v != "" {
		c.Output = v
	}
	if v := strings.TrimSpace(getenv(EnvSearchPath)); v != "" {
		c.SearchPaths = append(filepath.SplitList(v), c.SearchPaths...)
	}
	if v := strings.TrimSpace(getenv(EnvOffline)); v != "" {
		offline, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvOffline, err)
		}
		c.Offline = offline
	}
	return nil
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Distro == "" {
		return errors.New("distro is required")
	}
	if c.CacheDir == "" {
		return errors.New("cache_dir is required")
	}
	for name, repo := range c.Repositories {
		if repo.URL == "" {
			return fmt.Errorf("repository %q has no url", name)
		}
	}
	if c.FallbackRepository != "" {
		if _, ok := c.Repositories[c.FallbackRepository]; !ok {
			return fmt.Errorf("fallback repository %q is not configured", c.FallbackRepository)
		}
	}
	return nil
}

// resolvePaths makes relative search paths relative to the config file.
func (c *Config) resolvePaths(base string) {
	for i, p := range c.SearchPaths {
		if !filepath.IsAbs(p) {
			c.SearchPaths[i] = filepath.Join(base, p)
		}
	}
}
