// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

// Package session provides configuration loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tz-bb/r2pb/internal/config"
	"github.com/tz-bb/r2pb/internal/locate"
)

// ErrInvalidConfig indicates the config file exists but is invalid.
var ErrInvalidConfig = errors.New("invalid configuration")

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved configuration for a command invocation.
type Context struct {
	// Config is the configuration with environment overrides applied.
	Config *config.Config

	// Out receives progress output from locators and the converter.
	Out io.Writer
}

// Load loads the configuration at path (defaults when it does not exist),
// applies environment overrides and returns a new context.Context with the
// session Context stored in it.
func Load(ctx context.Context, path string, getenv func(string) string) (context.Context, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.ApplyEnv(getenv); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return With(ctx, &Context{Config: cfg, Out: os.Stdout}), nil
}

// With returns a copy of ctx carrying s.
func With(ctx context.Context, s *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if s, ok := ctx.Value(contextKey{}).(*Context); ok {
		return s
	}
	return nil
}

// Locator builds the configured locator chain: search paths, then remote
// URLs, then git repositories, behind an LRU cache.
func (s *Context) Locator() (locate.Locator, error) {
	cfg := s.Config

	var chain locate.Chain
	if len(cfg.SearchPaths) > 0 {
		chain = append(chain, &locate.Local{Paths: cfg.SearchPaths})
	}
	if len(cfg.Remotes) > 0 && !cfg.Offline {
		chain = append(chain, locate.NewRemote(cfg.Remotes, cfg.Distro))
	}
	if len(cfg.Repositories) > 0 {
		chain = append(chain, &locate.Git{
			CacheDir:     cfg.CacheDir,
			Distro:       cfg.Distro,
			Repositories: cfg.Repositories,
			Fallback:     cfg.FallbackRepository,
			Offline:      cfg.Offline,
			Out:          s.Out,
		})
	}

	cached, err := locate.NewCached(chain, locate.DefaultCacheSize)
	if err != nil {
		return nil, err
	}
	return cached, nil
}
