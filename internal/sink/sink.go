// SPDX-License-Identifier: EPL-2.0

// Package sink stores converted WAV files.
package sink

import (
	"context"
	"errors"
	"path"
	"strings"
)

// ContentType of everything a Sink stores.
const ContentType = "audio/wav"

var ErrInvalidName = errors.New("sink: invalid object name")

// Sink stores one named object per converted clip. Implementations are safe
// for concurrent use.
type Sink interface {
	Put(ctx context.Context, name string, data []byte) error
	// Exists reports whether name was already stored.
	Exists(ctx context.Context, name string) (bool, error)
}

// cleanName validates a slash-separated relative name.
func cleanName(name string) (string, error) {
	if name == "" || strings.HasPrefix(name, "/") || strings.Contains(name, "\\") {
		return "", ErrInvalidName
	}
	clean := path.Clean(name)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", ErrInvalidName
	}
	return clean, nil
}
