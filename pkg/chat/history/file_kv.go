package history

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileKV stores each record as a JSON file under a base directory, for
// single-node deployments without Redis.
type FileKV struct {
	dir string
}

func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileKV{dir: dir}, nil
}

// keys become file names; anything outside [a-zA-Z0-9_-] is replaced
func (f *FileKV) path(key string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, key)
	return filepath.Join(f.dir, sanitized+".json")
}

func (f *FileKV) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (f *FileKV) Set(ctx context.Context, key string, value []byte) error {
	return os.WriteFile(f.path(key), value, 0o644)
}

func (f *FileKV) Delete(ctx context.Context, key string) error {
	err := os.Remove(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
