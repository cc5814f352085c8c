// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

package convert

import (
	"context"
	"io"

	"github.com/tz-bb/r2pb/internal/locate"
	"github.com/tz-bb/r2pb/internal/translate"
)

// Options configures Run.
type Options struct {
	Locator    locate.Locator
	Translator translate.Translator
	Strict     bool
	Out        io.Writer
}

// Run converts root into outputDir/<package>/<Name><ext>.
func Run(ctx context.Context, root, outputDir string, opts Options) (*Summary, error) {
	c := &Converter{
		Locator:    opts.Locator,
		Translator: opts.Translator,
		Sink:       &FileSink{Root: outputDir, Ext: opts.Translator.FileExtension()},
		Strict:     opts.Strict,
		Out:        opts.Out,
	}
	return c.Convert(ctx, root)
}
