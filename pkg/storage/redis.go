package storage

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	dasherrors "github.com/dashdoc/dash/pkg/errors"
	"github.com/dashdoc/dash/pkg/observability"
)

// RedisKeyPrefix is prepended to document names to form Redis keys.
const RedisKeyPrefix = "dash:doc:"

// scanCount is the COUNT hint passed to SCAN when listing documents.
const scanCount = 100

// RedisStore keeps each document as a string value under dash:doc:<name>.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore connects to the server at rawURL (redis:// or rediss://)
// and checks the connection with PING.
func NewRedisStore(ctx context.Context, rawURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, dasherrors.Wrap(dasherrors.ErrCodeInvalidInput, err, "invalid redis URL")
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, storageError(err, "connect redis %s", opts.Addr)
	}
	return NewRedisStoreWithClient(client, RedisKeyPrefix), nil
}

// NewRedisStoreWithClient wraps an existing client. Keys are prefix+name.
func NewRedisStoreWithClient(client redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(name string) string {
	return s.prefix + name
}

// Get returns the value stored under the document's key.
func (s *RedisStore) Get(ctx context.Context, name string) ([]byte, error) {
	if err := dasherrors.ValidateName(name); err != nil {
		return nil, err
	}
	start := time.Now()
	data, err := s.client.Get(ctx, s.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		observability.Store().OnGet(ctx, "redis", name, false, time.Since(start))
		return nil, notFound(name)
	}
	if err != nil {
		return nil, storageError(err, "get %s", name)
	}
	observability.Store().OnGet(ctx, "redis", name, true, time.Since(start))
	return data, nil
}

// Put sets the document's key without expiration.
func (s *RedisStore) Put(ctx context.Context, name string, data []byte) error {
	if err := dasherrors.ValidateName(name); err != nil {
		return err
	}
	start := time.Now()
	err := s.client.Set(ctx, s.key(name), data, 0).Err()
	if err != nil {
		err = storageError(err, "set %s", name)
	}
	observability.Store().OnPut(ctx, "redis", name, len(data), time.Since(start), err)
	return err
}

// Delete removes the document's key.
func (s *RedisStore) Delete(ctx context.Context, name string) error {
	if err := dasherrors.ValidateName(name); err != nil {
		return err
	}
	start := time.Now()
	n, err := s.client.Del(ctx, s.key(name)).Result()
	switch {
	case err != nil:
		err = storageError(err, "del %s", name)
	case n == 0:
		err = notFound(name)
	}
	observability.Store().OnDelete(ctx, "redis", name, time.Since(start), err)
	return err
}

// List scans for keys with the store's prefix.
func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	var names []string
	iter := s.client.Scan(ctx, 0, s.prefix+"*", scanCount).Iterator()
	for iter.Next(ctx) {
		if name, ok := strings.CutPrefix(iter.Val(), s.prefix); ok {
			names = append(names, name)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, storageError(err, "scan %s*", s.prefix)
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}

// Close closes the client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
