// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Writer streams every object to one io.Writer, typically stdout. Names are
// ignored; concurrent Puts are serialized so files never interleave.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (s *Writer) Put(ctx context.Context, _ string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.w.Write(data); err != nil {
		return fmt.Errorf("sink: %w", err)
	}
	return nil
}

// Exists is always false: a stream has no notion of stored objects.
func (s *Writer) Exists(context.Context, string) (bool, error) {
	return false, nil
}
