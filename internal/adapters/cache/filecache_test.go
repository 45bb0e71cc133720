package cache_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/advisorkit/fna_app/internal/adapters/cache"
	"github.com/advisorkit/fna_app/internal/core/domain"
)

func testBackup(clientID string) domain.CachedPlanBackup {
	assets := domain.DefaultAssetLineItems()
	assets[0].PresentValue = decimal.NewFromInt(5000)
	return domain.CachedPlanBackup{
		ClientID: clientID,
		Assets:   assets,
		Totals: domain.TotalsSnapshot{
			TotalPresentValue: decimal.NewFromInt(5000),
			NetWorth:          decimal.NewFromInt(5000),
		},
		SavedAt: time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	assert.NoError(t, err)

	backup := testBackup("client-1")
	assert.NoError(t, fc.WriteBackup(ctx, backup))

	got, err := fc.ReadBackup(ctx, "client-1")
	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Equal(t, "client-1", got.ClientID)
		assert.Len(t, got.Assets, len(domain.AssetCatalog))
		assert.True(t, got.Assets[0].PresentValue.Equal(decimal.NewFromInt(5000)))
		assert.True(t, got.SavedAt.Equal(backup.SavedAt))
	}
}

func TestFileCacheMissingBackupIsNotAnError(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	assert.NoError(t, err)

	got, err := fc.ReadBackup(context.Background(), "never-saved")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileCacheOverwriteKeepsLatest(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	assert.NoError(t, err)

	first := testBackup("client-1")
	assert.NoError(t, fc.WriteBackup(ctx, first))

	second := testBackup("client-1")
	second.Assets[0].PresentValue = decimal.NewFromInt(9999)
	assert.NoError(t, fc.WriteBackup(ctx, second))

	got, err := fc.ReadBackup(ctx, "client-1")
	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.True(t, got.Assets[0].PresentValue.Equal(decimal.NewFromInt(9999)))
	}
}

func TestFileCachePrune(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	fc, err := cache.NewFileCache(dir)
	assert.NoError(t, err)

	assert.NoError(t, fc.WriteBackup(ctx, testBackup("stale-client")))
	assert.NoError(t, fc.WriteBackup(ctx, testBackup("fresh-client")))

	// Age the first backup past the cutoff.
	old := time.Now().Add(-48 * time.Hour)
	assert.NoError(t, os.Chtimes(filepath.Join(dir, "stale-client.json"), old, old))

	removed, err := fc.Prune(ctx, 24*time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, 1, removed)

	stale, err := fc.ReadBackup(ctx, "stale-client")
	assert.NoError(t, err)
	assert.Nil(t, stale)

	fresh, err := fc.ReadBackup(ctx, "fresh-client")
	assert.NoError(t, err)
	assert.NotNil(t, fresh)
}

func TestFileCacheRespectsCancellation(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, fc.WriteBackup(ctx, testBackup("client-1")))
	_, err = fc.ReadBackup(ctx, "client-1")
	assert.Error(t, err)
}
