// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

package locate

import (
	"context"
	"fmt"

	"github.com/viant/afs"
)

// Remote downloads definitions from URL templates such as
// https://raw.githubusercontent.com/ros/common_msgs/{distro}-devel/{package}/msg/{type}.msg.
// Any scheme supported by afs works, including file:// and mem://.
type Remote struct {
	URLs   []string
	Distro string
	FS     afs.Service
}

// NewRemote creates a Remote locator backed by the default afs service.
func NewRemote(urls []string, distro string) *Remote {
	return &Remote{
		URLs:   urls,
		Distro: distro,
		FS:     afs.New(),
	}
}

// Resolve implements Locator.
func (r *Remote) Resolve(ctx context.Context, pkg, name string) (string, error) {
	for _, tmpl := range r.URLs {
		url := expand(tmpl, pkg, name, r.Distro)

		ok, err := r.FS.Exists(ctx, url)
		if err != nil {
			return "", fmt.Errorf("check %s: %w", url, err)
		}
		if !ok {
			continue
		}

		data, err := r.FS.DownloadWithURL(ctx, url)
		if err != nil {
			return "", fmt.Errorf("download %s: %w", url, err)
		}
		return string(data), nil
	}
	return "", notFound(pkg, name)
}
