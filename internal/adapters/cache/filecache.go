// Package cache provides the same-device plan backup store: one JSON file
// per client under a configurable directory. It backs the load fallback used
// when the primary store is unreachable.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/advisorkit/fna_app/internal/core/domain"
	portsrepo "github.com/advisorkit/fna_app/internal/core/ports/repositories"
)

const backupExt = ".json"

// FileCache implements the plan backup store on the local filesystem.
type FileCache struct {
	dir string
}

var _ portsrepo.PlanCache = (*FileCache)(nil)

// NewFileCache creates the backup directory if needed and returns the store.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory %s: %w", dir, err)
	}
	return &FileCache{dir: dir}, nil
}

func (c *FileCache) backupPath(clientID string) string {
	// Client IDs are UUIDs; Base guards against anything path-like anyway.
	return filepath.Join(c.dir, filepath.Base(clientID)+backupExt)
}

// WriteBackup writes the backup atomically via a temp file rename so a crash
// mid-write never corrupts an existing backup.
func (c *FileCache) WriteBackup(ctx context.Context, backup domain.CachedPlanBackup) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode backup for client %s: %w", backup.ClientID, err)
	}

	target := c.backupPath(backup.ClientID)
	tmp, err := os.CreateTemp(c.dir, "backup-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp backup file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write backup for client %s: %w", backup.ClientID, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp backup file: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move backup into place: %w", err)
	}
	return nil
}

// ReadBackup returns the stored backup for a client, or nil when none exists.
func (c *FileCache) ReadBackup(ctx context.Context, clientID string) (*domain.CachedPlanBackup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(c.backupPath(clientID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backup for client %s: %w", clientID, err)
	}

	var backup domain.CachedPlanBackup
	if err := json.Unmarshal(data, &backup); err != nil {
		return nil, fmt.Errorf("failed to decode backup for client %s: %w", clientID, err)
	}
	return &backup, nil
}

// Prune removes backups whose recorded save time is older than maxAge,
// returning how many files were removed.
func (c *FileCache) Prune(ctx context.Context, maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read cache directory: %w", err)
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), backupExt) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, entry.Name())); err != nil {
			return removed, fmt.Errorf("failed to remove stale backup %s: %w", entry.Name(), err)
		}
		removed++
	}
	return removed, nil
}
