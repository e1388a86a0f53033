package file

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/textpipe/internal/core/ports/driven"
)

// Ensure StopListStore implements the interface.
var _ driven.StopWordStore = (*StopListStore)(nil)

// Stoplist is the YAML layout of a stop-word list file.
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist reads a stop-word list from a YAML file.
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, fmt.Errorf("parse stop list %s: %w", path, err)
	}
	return &sl, nil
}

// defaultStoplists are written to the list directory on first use and
// returned when a list file cannot be read.
var defaultStoplists = map[string][]string{
	"punctuation": {".", ",", "”", "„", "-", "(", ")", ":", "«", "»", ";", "–", "{", "}", "™"},
	"english": {
		"a", "an", "and", "are", "as", "at", "be", "by", "for", "from", "in", "is",
		"it", "of", "on", "or", "that", "the", "this", "to", "was", "with",
	},
	"ukrainian": {
		"а", "але", "в", "від", "до", "з", "за", "і", "й", "на", "не", "по", "при",
		"та", "також", "у", "це", "що", "як",
	},
}

// StopListStore loads stop-word lists from YAML files in a directory.
// The directory is created and seeded with the built-in lists lazily, on
// the first Load.
type StopListStore struct {
	mu       sync.RWMutex
	dir      string
	cache    map[string][]string
	initOnce sync.Once
	initErr  error
}

// NewStopListStore creates a stop-list store.
// If dir is empty, defaults to ~/.textpipe/stopwords/.
func NewStopListStore(dir string) (*StopListStore, error) {
	if dir == "" {
		base, err := DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		dir = filepath.Join(base, "stopwords")
	}

	return &StopListStore{
		dir:   dir,
		cache: make(map[string][]string),
	}, nil
}

// Load returns the terms of a list. name is either a path to a YAML file
// or the name of a list in the store directory. Named lists fall back to
// the built-in list of the same name when their file cannot be read.
func (s *StopListStore) Load(name string) ([]string, error) {
	if isListPath(name) {
		sl, err := LoadStoplist(name)
		if err != nil {
			return nil, err
		}
		return sl.Terms, nil
	}

	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		if terms, ok := defaultStoplists[name]; ok {
			return slices.Clone(terms), nil
		}
		return nil, fmt.Errorf("stop list store init failed: %w", s.initErr)
	}

	s.mu.RLock()
	if terms, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return slices.Clone(terms), nil
	}
	s.mu.RUnlock()

	sl, err := LoadStoplist(s.listPath(name))
	if err != nil {
		if terms, ok := defaultStoplists[name]; ok {
			return slices.Clone(terms), nil
		}
		return nil, fmt.Errorf("load stop list %q: %w", name, err)
	}

	s.mu.Lock()
	if cached, ok := s.cache[name]; ok {
		sl.Terms = cached
	} else {
		s.cache[name] = sl.Terms
	}
	s.mu.Unlock()

	return slices.Clone(sl.Terms), nil
}

// Names returns the built-in list names in sorted order.
func (s *StopListStore) Names() []string {
	return slices.Sorted(maps.Keys(defaultStoplists))
}

// Reload clears the cache, forcing fresh reads from disk.
func (s *StopListStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string][]string)
	s.mu.Unlock()
}

// Dir returns the list directory path.
func (s *StopListStore) Dir() string {
	return s.dir
}

// initialise creates the directory and writes missing built-in lists.
func (s *StopListStore) initialise() {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		s.initErr = fmt.Errorf("create stop list directory: %w", err)
		return
	}

	for name, terms := range defaultStoplists {
		path := s.listPath(name)
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			continue
		}
		data, err := yaml.Marshal(Stoplist{Terms: terms})
		if err != nil {
			s.initErr = fmt.Errorf("encode default stop list %q: %w", name, err)
			return
		}
		if err := os.WriteFile(path, data, 0600); err != nil {
			s.initErr = fmt.Errorf("create default stop list %q: %w", name, err)
			return
		}
	}
}

func (s *StopListStore) listPath(name string) string {
	return filepath.Join(s.dir, name+".yaml")
}

// isListPath reports whether name refers to a file rather than a list name.
func isListPath(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml" || strings.ContainsRune(name, filepath.Separator)
}
