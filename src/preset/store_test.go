package preset_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presetctl/src/preset"
)

func TestStoreReloadKeepsPreviousOnFailure(t *testing.T) {
	path := writeFile(t, "presets.yaml", yamlDoc)
	reg, err := preset.LoadFile(path)
	require.NoError(t, err)

	store := preset.NewStore(reg)
	require.NoError(t, os.WriteFile(path, []byte(strings.Replace(yamlDoc, "200000", "0", 1)), 0644))

	next, err := store.ReloadFile(path)
	require.ErrorIs(t, err, preset.ErrValidation)
	assert.Nil(t, next)
	assert.Same(t, reg, store.Current())

	require.NoError(t, os.WriteFile(path, []byte(strings.Replace(yamlDoc, "Be brief.", "Be thorough.", 1)), 0644))
	next, err = store.ReloadFile(path)
	require.NoError(t, err)
	assert.Same(t, next, store.Current())

	rec, err := store.Current().Get("GPT-5 (270k)")
	require.NoError(t, err)
	assert.Equal(t, "Be thorough.", rec.LLMSystemPrompt)
}

func TestStoreConcurrentReaders(t *testing.T) {
	reg, err := preset.LoadBuiltin()
	require.NoError(t, err)
	store := preset.NewStore(reg)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				cur := store.Current()
				if cur.Len() != 7 {
					t.Errorf("observed registry with %d presets", cur.Len())
					return
				}
				if _, err := cur.Get("Grok 4 (200k)"); err != nil {
					t.Errorf("Get: %v", err)
					return
				}
			}
		}()
	}
	for i := 0; i < 20; i++ {
		_, err := store.Reload(func() (*preset.Registry, error) {
			return preset.LoadBuiltin()
		})
		require.NoError(t, err)
	}
	wg.Wait()
}

func TestStoreWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0644))

	reg, err := preset.LoadFile(path)
	require.NoError(t, err)
	store := preset.NewStore(reg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var attempts int32
	done := make(chan error, 1)
	go func() {
		done <- store.Watch(ctx, path, func(*preset.Registry, error) {
			atomic.AddInt32(&attempts, 1)
		})
	}()

	updated := strings.Replace(yamlDoc, "Be brief.", "Watched.", 1)
	assert.Eventually(t, func() bool {
		if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
			return false
		}
		rec, err := store.Current().Get("GPT-5 (270k)")
		return err == nil && rec.LLMSystemPrompt == "Watched."
	}, 5*time.Second, 100*time.Millisecond)
	assert.Positive(t, atomic.LoadInt32(&attempts))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
