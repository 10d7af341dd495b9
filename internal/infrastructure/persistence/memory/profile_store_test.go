package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/v1/internal/domain/preference"
	"github.com/platewise/v1/internal/infrastructure/persistence/memory"
)

func TestProfileStoreUnknownUserIsNil(t *testing.T) {
	store := memory.NewProfileStore()

	profile, err := store.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestProfileStoreUpdateCreatesProfile(t *testing.T) {
	store := memory.NewProfileStore()
	ctx := context.Background()

	err := store.Update(ctx, "user-1", func(p *preference.Profile) error {
		p.Cuisines["thai"] += 3.0
		return nil
	})
	require.NoError(t, err)

	profile, err := store.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, 3.0, profile.Cuisines["thai"])
}

func TestProfileStoreGetReturnsSnapshot(t *testing.T) {
	store := memory.NewProfileStore()
	ctx := context.Background()

	require.NoError(t, store.Update(ctx, "user-1", func(p *preference.Profile) error {
		p.Cuisines["thai"] = 1.0
		return nil
	}))

	snapshot, err := store.Get(ctx, "user-1")
	require.NoError(t, err)
	snapshot.Cuisines["thai"] = 99.0

	fresh, err := store.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1.0, fresh.Cuisines["thai"])
}

func TestProfileStoreConcurrentUpdates(t *testing.T) {
	store := memory.NewProfileStore()
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = store.Update(ctx, "user-1", func(p *preference.Profile) error {
				p.Cuisines["thai"] += 1.0
				return nil
			})
		}()
	}
	wg.Wait()

	profile, err := store.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, float64(workers), profile.Cuisines["thai"])
}
