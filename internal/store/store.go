// Package store manages the patterns output directory. Documents are
// write-once: saved atomically, then only read and listed.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

var (
	// ErrNotFound means no stored document has the requested filename.
	ErrNotFound = errors.New("pattern document not found")
	// ErrInvalidFilename means the name is not a plain PDF filename.
	ErrInvalidFilename = errors.New("invalid pattern filename")
)

// Store is the pattern document store backed by a single flat directory.
type Store struct {
	dir   string
	cache *listingCache
}

// Entry describes one stored pattern document. Fit and garment style are
// recovered from the filename the generator derives.
type Entry struct {
	Filename     string    `json:"filename"`
	Size         int64     `json:"size"`
	Created      time.Time `json:"created"`
	Fit          string    `json:"fit_type"`
	GarmentStyle string    `json:"garment_style"`
}

// New creates the store, ensuring the directory exists.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create patterns directory: %w", err)
	}
	return &Store{dir: dir, cache: newListingCache()}, nil
}

// Dir returns the patterns directory path.
func (s *Store) Dir() string {
	return s.dir
}

// ValidateFilename rejects names that could escape the patterns directory or
// that are not PDF documents.
func ValidateFilename(name string) error {
	if !strings.HasSuffix(name, ".pdf") ||
		strings.Contains(name, "..") ||
		strings.ContainsAny(name, `/\`) {
		return ErrInvalidFilename
	}
	return nil
}

// Save writes a document atomically: content goes to a temp file in the same
// directory, then a rename publishes it under the final name. Readers never
// observe a partially written document.
func (s *Store) Save(filename string, data []byte) error {
	if err := ValidateFilename(filename); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".pattern-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, filepath.Join(s.dir, filename)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("publish document: %w", err)
	}

	s.cache.invalidate()
	return nil
}

// Resolve returns the on-disk path of a stored document.
func (s *Store) Resolve(filename string) (string, error) {
	if err := ValidateFilename(filename); err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, filename)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("stat document: %w", err)
	}
	return path, nil
}

// List returns stored documents matching the glob pattern, newest first. An
// empty pattern lists everything. Results come from the cached directory
// scan when it is still valid.
func (s *Store) List(glob string) ([]Entry, error) {
	entries, err := s.cache.get(s.scan)
	if err != nil {
		return nil, err
	}
	if glob == "" {
		return entries, nil
	}

	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		ok, err := doublestar.Match(glob, e.Filename)
		if err != nil {
			return nil, fmt.Errorf("bad listing pattern %q: %w", glob, err)
		}
		if ok {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (s *Store) scan() ([]Entry, error) {
	dirents, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read patterns directory: %w", err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		name := de.Name()
		if de.IsDir() || !strings.HasSuffix(name, ".pdf") {
			continue
		}
		info, err := de.Info()
		if err != nil {
			// Raced with a delete; skip the entry.
			continue
		}
		entries = append(entries, Entry{
			Filename:     name,
			Size:         info.Size(),
			Created:      info.ModTime(),
			Fit:          fitFromFilename(name),
			GarmentStyle: styleFromFilename(name),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Created.Equal(entries[j].Created) {
			return entries[i].Created.After(entries[j].Created)
		}
		return entries[i].Filename < entries[j].Filename
	})
	return entries, nil
}

func fitFromFilename(name string) string {
	switch {
	case strings.Contains(name, "slim"):
		return "slim"
	case strings.Contains(name, "loose"):
		return "loose"
	default:
		return "regular"
	}
}

func styleFromFilename(name string) string {
	switch {
	case strings.Contains(name, "dress_shirt"):
		return "Men's Dress Shirt"
	case strings.Contains(name, "casual"):
		return "Casual Shirt"
	default:
		return "Shirt"
	}
}
