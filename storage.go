package finance

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"reflect"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Keys under which the application state is persisted.
const (
	KeyTransactions   = "transactions"
	KeyAssets         = "assets"
	KeyCategories     = "categories"
	KeyBudgetSettings = "budget_settings"
	KeyCustomPrices   = "custom_prices"
)

// Storage is a string-keyed JSON store backed by a directory, one file per key.
// It is the local-storage analogue: reads fall back gracefully on missing or
// malformed data, writes replace the whole value for a key.
type Storage struct {
	dir string
}

// NewStorage creates a Storage rooted at dir, creating the directory if needed.
func NewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create storage directory %q: %w", dir, err)
	}
	return &Storage{dir: dir}, nil
}

// Dir returns the directory backing this storage.
func (s *Storage) Dir() string { return s.dir }

func (s *Storage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get decodes the value stored under key into out, which must be a non-nil
// pointer. It returns false and leaves out untouched when the key is absent
// or its content is malformed; malformed content is logged, never fatal.
func (s *Storage) Get(key string, out any) bool {
	content, err := os.ReadFile(s.path(key))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("warning: could not read %q: %v", key, err)
		}
		return false
	}
	ptr := reflect.ValueOf(out)
	if ptr.Kind() != reflect.Pointer || ptr.IsNil() {
		log.Printf("warning: cannot decode %q into %T", key, out)
		return false
	}
	// Decode into a scratch value first: unmarshalling can populate part of
	// the target before failing halfway through a document.
	scratch := reflect.New(ptr.Type().Elem())
	if err := json.Unmarshal(content, scratch.Interface()); err != nil {
		log.Printf("warning: malformed data under %q ignored: %v", key, err)
		return false
	}
	ptr.Elem().Set(scratch.Elem())
	return true
}

// Set encodes v as JSON and stores it under key. The write is atomic: the
// value is written to a temporary file and then renamed over the target.
func (s *Storage) Set(key string, v any) error {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode %q: %w", key, err)
	}
	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temp file for %q: %w", key, err)
	}
	_, werr := tmp.Write(content)
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not write %q: %w", key, errors.Join(werr, cerr))
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not store %q: %w", key, err)
	}
	return nil
}

// Remove deletes the value stored under key. Removing an absent key is a no-op.
func (s *Storage) Remove(key string) {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning: could not remove %q: %v", key, err)
	}
}

// Clear deletes every value in the storage directory.
func (s *Storage) Clear() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("could not list storage directory: %w", err)
	}
	var errs error
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}
