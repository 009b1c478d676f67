package ecobee

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testTokens() *Tokens {
	return &Tokens{
		AccessToken:      "access-abc",
		RefreshToken:     "refresh-def",
		TokenType:        "Bearer",
		Scope:            "smartWrite",
		AccessExpiresAt:  time.Now().Add(time.Hour).Truncate(time.Second),
		RefreshExpiresAt: time.Now().Add(365 * 24 * time.Hour).Truncate(time.Second),
	}
}

func TestFileTokenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save and load round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tokens.json")
		store := NewFileTokenStore(path)

		want := testTokens()
		if err := store.SaveTokens(ctx, want); err != nil {
			t.Fatalf("SaveTokens: %v", err)
		}

		got, err := store.LoadTokens(ctx)
		if err != nil {
			t.Fatalf("LoadTokens: %v", err)
		}
		if got.AccessToken != want.AccessToken || got.RefreshToken != want.RefreshToken {
			t.Errorf("loaded tokens = %+v, want %+v", got, want)
		}
		if !got.AccessExpiresAt.Equal(want.AccessExpiresAt) {
			t.Errorf("AccessExpiresAt = %v, want %v", got.AccessExpiresAt, want.AccessExpiresAt)
		}
	})

	t.Run("token file is not world readable", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tokens.json")
		store := NewFileTokenStore(path)
		if err := store.SaveTokens(ctx, testTokens()); err != nil {
			t.Fatalf("SaveTokens: %v", err)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Stat: %v", err)
		}
		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("file mode = %o, want 0600", perm)
		}
	})

	t.Run("save creates missing directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "tokens.json")
		store := NewFileTokenStore(path)
		if err := store.SaveTokens(ctx, testTokens()); err != nil {
			t.Fatalf("SaveTokens: %v", err)
		}
		if !store.Exists() {
			t.Error("token file should exist after save")
		}
	})

	t.Run("save leaves no temp file behind", func(t *testing.T) {
		dir := t.TempDir()
		store := NewFileTokenStore(filepath.Join(dir, "tokens.json"))
		if err := store.SaveTokens(ctx, testTokens()); err != nil {
			t.Fatalf("SaveTokens: %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir: %v", err)
		}
		if len(entries) != 1 || entries[0].Name() != "tokens.json" {
			t.Errorf("directory contents = %v, want only tokens.json", entries)
		}
	})

	t.Run("nil tokens rejected", func(t *testing.T) {
		store := NewFileTokenStore(filepath.Join(t.TempDir(), "tokens.json"))
		if err := store.SaveTokens(ctx, nil); err == nil {
			t.Error("expected error for nil tokens")
		}
	})

	t.Run("load missing file fails", func(t *testing.T) {
		store := NewFileTokenStore(filepath.Join(t.TempDir(), "missing.json"))
		if _, err := store.LoadTokens(ctx); !errors.Is(err, ErrNoStoredTokens) {
			t.Errorf("error = %v, want ErrNoStoredTokens", err)
		}
		if store.Exists() {
			t.Error("Exists should be false for missing file")
		}
	})

	t.Run("load corrupt file fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tokens.json")
		if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		store := NewFileTokenStore(path)
		if _, err := store.LoadTokens(ctx); err == nil {
			t.Error("expected error for corrupt file")
		}
	})

	t.Run("delete removes the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tokens.json")
		store := NewFileTokenStore(path)
		if err := store.SaveTokens(ctx, testTokens()); err != nil {
			t.Fatalf("SaveTokens: %v", err)
		}
		if err := store.Delete(ctx); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if store.Exists() {
			t.Error("file should be gone after delete")
		}
		// Deleting a missing file is not an error.
		if err := store.Delete(ctx); err != nil {
			t.Errorf("second Delete: %v", err)
		}
	})

	t.Run("delete cleans up a stale staging file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tokens.json")
		if err := os.WriteFile(path+".tmp", []byte("{"), 0600); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		store := NewFileTokenStore(path)
		if err := store.Delete(ctx); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := os.Stat(path + ".tmp"); !errors.Is(err, fs.ErrNotExist) {
			t.Error("staging file should be gone after delete")
		}
	})
}

func TestMemoryTokenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save and load", func(t *testing.T) {
		store := NewMemoryTokenStore()
		want := testTokens()
		if err := store.SaveTokens(ctx, want); err != nil {
			t.Fatalf("SaveTokens: %v", err)
		}
		got, err := store.LoadTokens(ctx)
		if err != nil {
			t.Fatalf("LoadTokens: %v", err)
		}
		if got.AccessToken != want.AccessToken {
			t.Errorf("AccessToken = %q, want %q", got.AccessToken, want.AccessToken)
		}
	})

	t.Run("empty store fails load", func(t *testing.T) {
		store := NewMemoryTokenStore()
		if _, err := store.LoadTokens(ctx); !errors.Is(err, ErrNoStoredTokens) {
			t.Errorf("error = %v, want ErrNoStoredTokens", err)
		}
	})

	t.Run("stores a copy", func(t *testing.T) {
		store := NewMemoryTokenStore()
		saved := testTokens()
		if err := store.SaveTokens(ctx, saved); err != nil {
			t.Fatalf("SaveTokens: %v", err)
		}
		saved.AccessToken = "mutated-after-save"

		got, err := store.LoadTokens(ctx)
		if err != nil {
			t.Fatalf("LoadTokens: %v", err)
		}
		if got.AccessToken != "access-abc" {
			t.Errorf("AccessToken = %q, want the saved value", got.AccessToken)
		}
		got.RefreshToken = "mutated-after-load"
		again, _ := store.LoadTokens(ctx)
		if again.RefreshToken != "refresh-def" {
			t.Error("loaded tokens should not alias the stored set")
		}
	})

	t.Run("clear forgets tokens", func(t *testing.T) {
		store := NewMemoryTokenStore()
		if err := store.SaveTokens(ctx, testTokens()); err != nil {
			t.Fatalf("SaveTokens: %v", err)
		}
		store.Clear()
		if _, err := store.LoadTokens(ctx); err == nil {
			t.Error("expected error after clear")
		}
	})
}
