// Package cursor persists the next block height the indexer will fetch.
package cursor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creachadair/atomicfile"
)

var ErrCorrupt = errors.New("cursor is not a height")

// FileStore keeps the height as decimal text in a single file. Writes replace
// the file atomically so a crash never leaves a partial value behind.
type FileStore struct {
	path    string
	metrics Metrics
}

func NewFileStore(path string, metrics Metrics) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("cursor path is empty")
	}
	if metrics == nil {
		return nil, errors.New("metrics is nil")
	}
	return &FileStore{path: path, metrics: metrics}, nil
}

func (s *FileStore) Load(ctx context.Context) (height uint64, found bool, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("load_cursor", err, started)
	}()

	if err = ctx.Err(); err != nil {
		return 0, false, err
	}
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read cursor: %w", err)
	}
	height, err = parseHeight(string(raw))
	if err != nil {
		return 0, false, err
	}
	return height, true, nil
}

func (s *FileStore) Save(ctx context.Context, height uint64) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("save_cursor", err, started)
	}()

	if err = ctx.Err(); err != nil {
		return err
	}
	if _, err = atomicfile.WriteAll(s.path, strings.NewReader(strconv.FormatUint(height, 10)+"\n"), 0o644); err != nil {
		return fmt.Errorf("write cursor: %w", err)
	}
	return nil
}

func parseHeight(raw string) (uint64, error) {
	height, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrCorrupt, raw)
	}
	return height, nil
}
