// SPDX-License-Identifier: MIT

package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"
	"sync"

	xglog "github.com/ManuGH/settings/internal/log"
	"github.com/ManuGH/settings/internal/metrics"
	"github.com/rs/zerolog"
)

// Placeholder entry written by GenerateInitialConfig.
const (
	PlaceholderKey   = "key"
	PlaceholderValue = "value"
)

const filePerm = 0o600

// Values is the settings mapping: unique string keys to string values.
type Values map[string]string

// Template returns the mapping written by GenerateInitialConfig.
func Template() Values {
	return Values{PlaceholderKey: PlaceholderValue}
}

// Store holds the settings loaded from a single config.json.
// It is safe for concurrent use; a load replaces the whole mapping at once.
type Store struct {
	path   string
	logger *zerolog.Logger

	mu     sync.RWMutex
	values Values // nil until Load or GenerateInitialConfig succeeds
}

// Option configures a Store.
type Option func(*Store)

// WithPath binds the store to path instead of DefaultPath.
func WithPath(path string) Option {
	return func(s *Store) {
		s.path = path
	}
}

// WithLogger replaces the component logger. The store adds its path field.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = &logger
	}
}

// New creates an uninitialised store bound to DefaultPath unless WithPath is given.
func New(opts ...Option) (*Store, error) {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	if s.path == "" {
		path, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		s.path = path
	}

	if s.logger == nil {
		l := xglog.Derive(func(c *zerolog.Context) {
			*c = c.Str(xglog.FieldComponent, "settings").Str(xglog.FieldPath, s.path)
		})
		s.logger = &l
	} else {
		l := s.logger.With().Str(xglog.FieldPath, s.path).Logger()
		s.logger = &l
	}
	return s, nil
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load reads and parses config.json and replaces the current mapping.
// On any error the previously loaded mapping, if any, is kept.
// Failures are returned to the caller and only logged at debug level.
func (s *Store) Load() error {
	// #nosec G304 -- path is fixed beside the executable or injected by the host
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.loadFailed(metrics.ResultMissing, err)
			return fmt.Errorf("%w (looked in %s)", ErrConfigFileMissing, s.path)
		}
		s.loadFailed(metrics.ResultReadError, err)
		return fmt.Errorf("read settings file: %w", err)
	}

	values, err := decodeValues(s.path, data)
	if err != nil {
		s.loadFailed(metrics.ResultParseError, err)
		return err
	}

	s.replace(values)
	metrics.RecordLoad(metrics.ResultOK)
	s.logger.Debug().
		Str(xglog.FieldEvent, "settings.loaded").
		Int(xglog.FieldKeyCount, len(values)).
		Msg("settings loaded")
	return nil
}

func (s *Store) loadFailed(result string, err error) {
	metrics.RecordLoad(result)
	s.logger.Debug().
		Err(err).
		Str(xglog.FieldEvent, "settings.load_failed").
		Str(xglog.FieldResult, result).
		Msg("settings load failed")
}

// GenerateInitialConfig overwrites config.json with the placeholder template
// and makes it the current mapping. The file is replaced atomically.
func (s *Store) GenerateInitialConfig() error {
	values := Template()
	data, err := encodeValues(values)
	if err != nil {
		return fmt.Errorf("encode settings template: %w", err)
	}

	if err := writeFile(*s.logger, s.path, data); err != nil {
		metrics.RecordGenerate(metrics.ResultWriteError)
		s.logger.Debug().
			Err(err).
			Str(xglog.FieldEvent, "settings.generate_failed").
			Str(xglog.FieldResult, metrics.ResultWriteError).
			Msg("failed to write initial settings file")
		return err
	}

	s.replace(values)
	metrics.RecordGenerate(metrics.ResultOK)
	s.logger.Info().
		Str(xglog.FieldEvent, "settings.generated").
		Msg("initial settings file written")
	return nil
}

func (s *Store) replace(values Values) {
	s.mu.Lock()
	s.values = values
	s.mu.Unlock()
	metrics.SetKeys(s.path, len(values))
}

// Get returns the value for key and whether it was present.
// An uninitialised store behaves as an empty mapping.
func (s *Store) Get(key string) (string, bool) {
	s.mu.RLock()
	v, ok := s.values[key]
	s.mu.RUnlock()
	metrics.RecordLookup(ok)
	return v, ok
}

// GetOr returns the value for key, or defaultValue when key is absent.
func (s *Store) GetOr(key, defaultValue string) string {
	if v, ok := s.Get(key); ok {
		return v
	}
	return defaultValue
}

// Loaded reports whether a Load or GenerateInitialConfig has succeeded.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values != nil
}

// Len returns the number of keys in the current mapping.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// Keys returns the current keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.values))
}

// Snapshot returns a copy of the current mapping, or nil before the first load.
func (s *Store) Snapshot() Values {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.values)
}
