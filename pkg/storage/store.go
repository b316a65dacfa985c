package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	stderrors "errors"
	"net/url"
	"strings"

	"github.com/dashdoc/dash/pkg/errors"
)

// ErrNotFound is wrapped by every error a store returns for a missing
// document. Check it with errors.Is, or check the code with
// errors.Is(err, errors.ErrCodeDocumentNotFound) from package pkg/errors.
var ErrNotFound = stderrors.New("document not found")

// Store holds Dash documents as raw JSON keyed by name.
//
// Implementations must be safe for concurrent use. Names are validated with
// [errors.ValidateName] before they reach the backend.
type Store interface {
	// Get returns the stored JSON for name.
	Get(ctx context.Context, name string) ([]byte, error)

	// Put stores data under name, replacing any previous document.
	Put(ctx context.Context, name string, data []byte) error

	// Delete removes the document stored under name.
	Delete(ctx context.Context, name string) error

	// List returns the names of all stored documents in ascending order.
	List(ctx context.Context) ([]string, error)

	// Close releases resources held by the store.
	Close() error
}

// Open returns the store selected by rawURL:
//
//	file:///var/lib/dash   bundles under a directory (a plain path works too)
//	memory://              in-process map
//	redis://host:6379/0    Redis keys dash:doc:<name>
//	mongodb://host/dash    MongoDB collection "documents"
func Open(ctx context.Context, rawURL string) (Store, error) {
	switch {
	case rawURL == "":
		return nil, errors.New(errors.ErrCodeInvalidInput, "store URL cannot be empty")
	case strings.HasPrefix(rawURL, "memory:"):
		return NewMemoryStore(), nil
	case strings.HasPrefix(rawURL, "redis://"), strings.HasPrefix(rawURL, "rediss://"):
		return NewRedisStore(ctx, rawURL)
	case strings.HasPrefix(rawURL, "mongodb://"), strings.HasPrefix(rawURL, "mongodb+srv://"):
		return NewMongoStore(ctx, rawURL)
	case strings.HasPrefix(rawURL, "file://"):
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid store URL %q", rawURL)
		}
		dir := u.Path
		if u.Host != "" {
			dir = u.Host + u.Path
		}
		return NewFileStore(dir)
	case strings.Contains(rawURL, "://"):
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported store URL %q", rawURL)
	default:
		return NewFileStore(rawURL)
	}
}

// Hash returns the SHA-256 of data as 64 hex characters. The HTTP API uses
// it as an entity tag.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func notFound(name string) error {
	return errors.Wrap(errors.ErrCodeDocumentNotFound, ErrNotFound, "%s", name)
}

func storageError(err error, format string, args ...any) error {
	return errors.Wrap(errors.ErrCodeStorage, err, format, args...)
}
