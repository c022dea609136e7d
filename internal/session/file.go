package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	logx "github.com/trendify-core/client/pkg/logger"
)

type fileRecord struct {
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}

// FileStore keeps one JSON file per profile under dir.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(dir, profile string) *FileStore {
	if profile == "" {
		profile = "default"
	}
	return &FileStore{path: filepath.Join(dir, "session-"+profile+".json")}
}

func (f *FileStore) Path() string { return f.path }

func (f *FileStore) Token(context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var rec fileRecord
	if err := readJSON(f.path, &rec); err != nil {
		logx.Error().Err(err).Str("path", f.path).Msg("failed to read session file")
		return "", fmt.Errorf("read session: %w", err)
	}
	return rec.Token, nil
}

func (f *FileStore) SetToken(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	rec := fileRecord{Token: token, SavedAt: time.Now().UTC()}
	if err := writeJSON(f.path, rec, 0o600); err != nil {
		logx.Error().Err(err).Str("path", f.path).Msg("failed to write session file")
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (f *FileStore) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

var _ Store = (*FileStore)(nil)

// readJSON best-effort reads path into out; a missing file is not an error.
func readJSON(path string, out any) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// writeJSON writes JSON via a temp file then rename.
func writeJSON(path string, v any, mode os.FileMode) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, mode); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
