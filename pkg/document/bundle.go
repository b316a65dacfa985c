package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dashdoc/dash/pkg/errors"
)

// BundleExt is the conventional extension of bundle directories.
const BundleExt = ".dash"

// ContentsFile is the name of the JSON file inside a bundle.
const ContentsFile = "contents.json"

// IsBundle reports whether path names a bundle: an existing directory or a
// path ending in [BundleExt].
func IsBundle(path string) bool {
	if info, err := os.Stat(path); err == nil {
		return info.IsDir()
	}
	return strings.EqualFold(filepath.Ext(path), BundleExt)
}

// ContentsPath returns the JSON file storing the document at path.
func ContentsPath(path string) string {
	if IsBundle(path) {
		return filepath.Join(path, ContentsFile)
	}
	return path
}

// ReadFile loads the document stored at path, which is either a bundle
// directory or a plain JSON file.
func ReadFile(path string) (*Document, error) {
	return ReadFileContext(context.Background(), path)
}

// ReadFileContext is [ReadFile] reporting to the observability hooks through ctx.
func ReadFileContext(ctx context.Context, path string) (*Document, error) {
	data, err := ReadContents(path)
	if err != nil {
		return nil, err
	}
	d := &Document{}
	if err := d.LoadContext(ctx, data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// ReadContents returns the raw JSON stored at path.
func ReadContents(path string) ([]byte, error) {
	file := ContentsPath(path)
	data, err := os.ReadFile(file)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "document not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	return data, nil
}

// WriteFile saves doc at path. Bundle paths get a directory holding
// contents.json; other files already in the bundle are left alone. Any
// other path is written as a plain JSON file.
func WriteFile(path string, doc *Document, indent bool) error {
	data, err := doc.SaveContext(context.Background(), indent)
	if err != nil {
		return err
	}
	return WriteContents(path, data)
}

// WriteContents stores raw JSON at path using the same layout rules as
// [WriteFile].
func WriteContents(path string, data []byte) error {
	file := path
	if IsBundle(path) {
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("create bundle: %w", err)
		}
		file = filepath.Join(path, ContentsFile)
	} else if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	if err := os.WriteFile(file, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}
	return nil
}
