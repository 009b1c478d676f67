package ecobee

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// tmpSuffix marks the staging file SaveTokens writes before renaming it into
// place.
const tmpSuffix = ".tmp"

// FileTokenStore persists the token set as a JSON file. The refresh token is
// a long-lived credential, so the file is written 0600 and any parent
// directories are created 0700. Writes stage to a temporary file and rename
// so a crash mid-save never leaves a truncated token file behind.
type FileTokenStore struct {
	path string
	mu   sync.RWMutex
}

// NewFileTokenStore returns a store backed by the file at path.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// SaveTokens writes the token set to the backing file.
func (f *FileTokenStore) SaveTokens(ctx context.Context, tokens *Tokens) error {
	if tokens == nil {
		return fmt.Errorf("ecobee: cannot save nil tokens")
	}
	data, err := marshalJSON(tokens)
	if err != nil {
		return fmt.Errorf("ecobee: encoding tokens: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("ecobee: creating token directory: %w", err)
		}
	}

	tmp := f.path + tmpSuffix
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("ecobee: writing token file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("ecobee: replacing token file: %w", err)
	}
	return nil
}

// LoadTokens reads the token set back from the backing file. A missing file
// reports ErrNoStoredTokens.
func (f *FileTokenStore) LoadTokens(ctx context.Context) (*Tokens, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w (%s)", ErrNoStoredTokens, f.path)
	}
	if err != nil {
		return nil, fmt.Errorf("ecobee: reading token file: %w", err)
	}

	var tokens Tokens
	if err := json.Unmarshal(data, &tokens); err != nil {
		return nil, fmt.Errorf("ecobee: parsing token file: %w", err)
	}
	return &tokens, nil
}

// Delete removes the token file and any staging leftover. Deleting a store
// that was never saved is not an error.
func (f *FileTokenStore) Delete(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	os.Remove(f.path + tmpSuffix)
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("ecobee: deleting token file: %w", err)
	}
	return nil
}

// Exists reports whether a token file has been saved.
func (f *FileTokenStore) Exists() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	_, err := os.Stat(f.path)
	return err == nil
}

// MemoryTokenStore keeps the token set in memory. Tokens saved this way are
// lost on process exit, so every restart repeats the PIN flow; it is meant
// for tests and short-lived tools.
type MemoryTokenStore struct {
	tokens *Tokens
	mu     sync.RWMutex
}

// NewMemoryTokenStore returns an empty in-memory store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

// SaveTokens records a copy of the token set.
func (m *MemoryTokenStore) SaveTokens(ctx context.Context, tokens *Tokens) error {
	if tokens == nil {
		return fmt.Errorf("ecobee: cannot save nil tokens")
	}
	copied := *tokens

	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens = &copied
	return nil
}

// LoadTokens returns a copy of the stored token set, or ErrNoStoredTokens.
func (m *MemoryTokenStore) LoadTokens(ctx context.Context) (*Tokens, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.tokens == nil {
		return nil, ErrNoStoredTokens
	}
	copied := *m.tokens
	return &copied, nil
}

// Clear forgets the stored token set.
func (m *MemoryTokenStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens = nil
}
