package stylesheet

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const lockRetryDelay = 50 * time.Millisecond

// ReadFile parses an existing stylesheet. A missing file yields no rules.
func ReadFile(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}
	return ParseRules(data)
}

// MergeFile merges rules into the stylesheet at path while holding an
// exclusive lock on path+".lock". Rules already present in the file win. The
// file is replaced atomically and the number of added rules is returned.
func MergeFile(ctx context.Context, path string, rules []Rule) (int, error) {
	ctx = ensureContext(ctx)
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("create stylesheet directory: %w", err)
		}
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return 0, fmt.Errorf("lock stylesheet: %w", err)
	}
	if !locked {
		return 0, fmt.Errorf("lock stylesheet: %s is held by another process", lock.Path())
	}
	defer func() { _ = lock.Unlock() }()

	existing, err := ReadFile(path)
	if err != nil {
		return 0, err
	}
	registry := NewRegistry()
	registry.Seed(existing)
	added := registry.Seed(rules)

	tmp, err := os.CreateTemp(filepath.Dir(path), ".stylesheet-*")
	if err != nil {
		return 0, fmt.Errorf("create temp stylesheet: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := registry.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		return 0, fmt.Errorf("write stylesheet: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("close stylesheet: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return 0, fmt.Errorf("replace stylesheet: %w", err)
	}
	return added, nil
}
