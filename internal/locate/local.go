// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

package locate

import (
	"context"
	"path/filepath"
)

// Local searches package directories on disk. Each path is a root holding
// one directory per package, e.g. <path>/std_msgs/msg/Header.msg.
type Local struct {
	Paths []string
}

// Resolve implements Locator.
func (l *Local) Resolve(_ context.Context, pkg, name string) (string, error) {
	for _, root := range l.Paths {
		if p, ok := findMsgFile(filepath.Join(root, pkg), name); ok {
			return readFile(p)
		}
	}
	return "", notFound(pkg, name)
}
