package storage

import (
	"context"
	"testing"

	"github.com/Mxolisi-Shongwe/my-policy-pal/app/config"
)

func TestNewFromConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("inline returns no store", func(t *testing.T) {
		for _, typ := range []string{"", "inline"} {
			store, err := NewFromConfig(ctx, config.StorageConfig{Type: typ})
			if err != nil {
				t.Fatalf("NewFromConfig(%q) error = %v", typ, err)
			}
			if store != nil {
				t.Errorf("NewFromConfig(%q) = %T, want nil", typ, store)
			}
		}
	})

	t.Run("memory", func(t *testing.T) {
		store, err := NewFromConfig(ctx, config.StorageConfig{Type: "memory"})
		if err != nil {
			t.Fatalf("NewFromConfig() error = %v", err)
		}
		if _, ok := store.(*MemoryStore); !ok {
			t.Errorf("NewFromConfig() = %T, want *MemoryStore", store)
		}
	})

	t.Run("filesystem", func(t *testing.T) {
		store, err := NewFromConfig(ctx, config.StorageConfig{Type: "filesystem", Root: t.TempDir()})
		if err != nil {
			t.Fatalf("NewFromConfig() error = %v", err)
		}
		if _, ok := store.(*FileSystemStore); !ok {
			t.Errorf("NewFromConfig() = %T, want *FileSystemStore", store)
		}
	})

	t.Run("filesystem without root", func(t *testing.T) {
		if _, err := NewFromConfig(ctx, config.StorageConfig{Type: "filesystem"}); err == nil {
			t.Error("NewFromConfig() succeeded, want error")
		}
	})

	t.Run("s3 without bucket", func(t *testing.T) {
		if _, err := NewFromConfig(ctx, config.StorageConfig{Type: "s3"}); err == nil {
			t.Error("NewFromConfig() succeeded, want error")
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		if _, err := NewFromConfig(ctx, config.StorageConfig{Type: "tape"}); err == nil {
			t.Error("NewFromConfig() succeeded, want error")
		}
	})
}
