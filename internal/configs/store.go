package configs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/perchhub/perch-config/internal/document"
	"github.com/perchhub/perch-config/internal/schema"
)

// Store reads and rewrites one config document on disk. Each command
// invocation constructs a fresh Store, performs a single read or write, and
// discards it; nothing is cached across invocations.
type Store struct {
	// ConfigPath is the path of the YAML config document.
	ConfigPath string

	// LockTimeout bounds the wait for the write lock. Zero means
	// DefaultLockTimeout.
	LockTimeout time.Duration
}

// NewStore returns a Store for the config document at configPath.
func NewStore(configPath string) *Store {
	return &Store{ConfigPath: configPath, LockTimeout: DefaultLockTimeout}
}

// Load reads the current config document. A missing file yields an empty
// document; any other I/O or parse failure propagates.
func (s *Store) Load() (document.Mapping, error) {
	data, err := os.ReadFile(s.ConfigPath)
	if os.IsNotExist(err) {
		return document.Mapping{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.ConfigPath, err)
	}
	return document.UnmarshalYAML(data)
}

// Show writes the current document to w as YAML, optionally scoped to the
// node at keyPath. It takes no lock and runs no validation; it is purely a
// projection for display.
func (s *Store) Show(w io.Writer, keyPath string) error {
	doc, err := s.Load()
	if err != nil {
		return err
	}

	var node document.Node = doc
	if keyPath != "" {
		path, err := document.ParsePath(keyPath)
		if err != nil {
			return err
		}
		node, err = document.Get(doc, path)
		if err != nil {
			return err
		}
	}

	data, err := document.MarshalYAML(node)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Set sets the value at keyPath, creating intermediate mappings as needed.
func (s *Store) Set(keyPath string, value document.Node, validate bool) error {
	path, err := document.ParsePath(keyPath)
	if err != nil {
		return err
	}
	return s.update(validate, func(doc document.Mapping) (document.Mapping, error) {
		return document.Set(doc, path, value), nil
	})
}

// Unset deletes the key at keyPath and prunes emptied ancestors.
func (s *Store) Unset(keyPath string, validate bool) error {
	path, err := document.ParsePath(keyPath)
	if err != nil {
		return err
	}
	return s.update(validate, func(doc document.Mapping) (document.Mapping, error) {
		return document.Unset(doc, path)
	})
}

// AddItem appends value to the list at keyPath, creating it when absent.
func (s *Store) AddItem(keyPath string, value document.Node, validate bool) error {
	path, err := document.ParsePath(keyPath)
	if err != nil {
		return err
	}
	return s.update(validate, func(doc document.Mapping) (document.Mapping, error) {
		return document.AddItem(doc, path, value), nil
	})
}

// RemoveItem removes the first occurrence of value from the list at keyPath.
func (s *Store) RemoveItem(keyPath string, value document.Node, validate bool) error {
	path, err := document.ParsePath(keyPath)
	if err != nil {
		return err
	}
	return s.update(validate, func(doc document.Mapping) (document.Mapping, error) {
		return document.RemoveItem(doc, path, value)
	})
}

// update runs one write transaction: lock, load, mutate, validate unless
// bypassed, rewrite. Any failure aborts before the file is touched.
func (s *Store) update(validate bool, mutate func(document.Mapping) (document.Mapping, error)) error {
	return s.withLock(func() error {
		doc, err := s.Load()
		if err != nil {
			return err
		}

		candidate, err := mutate(doc)
		if err != nil {
			return err
		}

		if validate {
			if err := schema.Validate(candidate); err != nil {
				return err
			}
		}

		return s.write(candidate)
	})
}

// write serializes the document and moves it into place atomically via a
// uniquely named temporary sibling.
func (s *Store) write(doc document.Mapping) error {
	data, err := document.MarshalYAML(doc)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.ConfigPath), 0o755); err != nil {
		return err
	}

	tmp := fmt.Sprintf("%s.%s.tmp", s.ConfigPath, uuid.NewString()[:8])
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.ConfigPath); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
