package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"

	errs "movegraph/internal/errors"
)

// FileMovesetStore reads the moveset document from disk on every call.
type FileMovesetStore struct {
	path string
}

// NewFileMovesetStore resolves path against the working directory so that
// Location and not-found errors always name an absolute file.
func NewFileMovesetStore(path string) *FileMovesetStore {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &FileMovesetStore{path: path}
}

func (f *FileMovesetStore) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", errs.ErrMovesetNotFound, f.path)
		}
		return nil, fmt.Errorf("read moveset %s: %w", f.path, err)
	}
	return data, nil
}

func (f *FileMovesetStore) Location() string {
	return f.path
}

// RedisMovesetStore keeps the whole document under a single string key.
type RedisMovesetStore struct {
	client *redis.Client
	key    string
}

func NewRedisMovesetStore(client *redis.Client, key string) *RedisMovesetStore {
	return &RedisMovesetStore{
		client: client,
		key:    key,
	}
}

func (r *RedisMovesetStore) Load(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", errs.ErrMovesetNotFound, r.Location())
		}
		return nil, fmt.Errorf("get moveset %s: %w", r.Location(), err)
	}
	return data, nil
}

func (r *RedisMovesetStore) Location() string {
	return fmt.Sprintf("redis://%s/%s", r.client.Options().Addr, r.key)
}

// Import replaces the stored document. Callers are expected to have checked
// that doc is valid JSON.
func (r *RedisMovesetStore) Import(ctx context.Context, doc []byte) error {
	if err := r.client.Set(ctx, r.key, doc, 0).Err(); err != nil {
		return fmt.Errorf("store moveset %s: %w", r.Location(), err)
	}
	return nil
}
