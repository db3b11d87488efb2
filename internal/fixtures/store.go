// Package fixtures loads the environment-keyed fixture file and resolves
// tagged records from it.
//
// The file is a single JSON object whose top-level keys are environment names.
// Each environment maps root keys (users, accounts, categories, tokens,
// transactions, default_errors) to arrays of objects, and every object carries
// a non-empty "profiles" array of tags:
//
//	{
//	  "localhost": {
//	    "users": [{"profiles": ["valid"], "email": "...", "password": "..."}]
//	  }
//	}
//
// A Store is loaded once and is read-only afterwards.
package fixtures

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"sort"
	"strings"
	"sync"
)

// ErrFixtureNotFound is matched by every NotFoundError.
var ErrFixtureNotFound = errors.New("fixture not found")

// NotFoundError reports a Resolve call that matched zero records.
type NotFoundError struct {
	Environment string
	Root        string
	Profiles    []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("fixture not found: root %q with profiles [%s] in environment %q",
		e.Root, strings.Join(e.Profiles, " "), e.Environment)
}

// Is reports whether target is ErrFixtureNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrFixtureNotFound
}

// Store holds the fixtures of one environment.
type Store struct {
	environment string
	roots       map[string][]Record

	mu  sync.Mutex
	rnd *rand.Rand
}

// Option configures a Store.
type Option func(*Store)

// WithRand sets the random source used to pick among matching records.
func WithRand(r *rand.Rand) Option {
	return func(s *Store) {
		s.rnd = r
	}
}

// Load reads the fixture file at path and keeps the section for environment.
func Load(path, environment string, opts ...Option) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file %s: %w", path, err)
	}
	store, err := Parse(data, environment, opts...)
	if err != nil {
		return nil, fmt.Errorf("fixture file %s: %w", path, err)
	}
	return store, nil
}

// Parse decodes fixture JSON and keeps the section for environment.
func Parse(data []byte, environment string, opts ...Option) (*Store, error) {
	var file map[string]map[string][]map[string]json.RawMessage
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}

	section, ok := file[environment]
	if !ok {
		envs := make([]string, 0, len(file))
		for name := range file {
			envs = append(envs, name)
		}
		sort.Strings(envs)
		return nil, fmt.Errorf("no fixtures for environment %q (available: %s)", environment, strings.Join(envs, ", "))
	}

	s := &Store{
		environment: environment,
		roots:       make(map[string][]Record, len(section)),
		rnd:         rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(s)
	}

	for root, objects := range section {
		if strings.TrimSpace(root) == "" {
			return nil, fmt.Errorf("environment %q has a fixture group with an empty root key", environment)
		}
		records := make([]Record, 0, len(objects))
		for i, obj := range objects {
			rec, err := newRecord(root, obj)
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", root, i, err)
			}
			records = append(records, rec)
		}
		s.roots[root] = records
	}

	return s, nil
}

// Environment returns the environment the store was loaded for.
func (s *Store) Environment() string {
	return s.environment
}

// Roots returns the root keys present in the store, sorted.
func (s *Store) Roots() []string {
	roots := make([]string, 0, len(s.roots))
	for root := range s.roots {
		roots = append(roots, root)
	}
	sort.Strings(roots)
	return roots
}

// Records returns every record under root, in file order.
func (s *Store) Records(root string) []Record {
	records := s.roots[root]
	out := make([]Record, len(records))
	copy(out, records)
	return out
}

// Match returns the records under root whose tags are a superset of the
// space-separated profile expression.
func (s *Store) Match(root, profiles string) []Record {
	tags := strings.Fields(profiles)
	var matches []Record
	for _, rec := range s.roots[root] {
		if rec.HasAll(tags...) {
			matches = append(matches, rec)
		}
	}
	return matches
}

// Resolve returns one record, chosen uniformly at random, among those matching
// the profile expression. Zero matches yield a *NotFoundError.
func (s *Store) Resolve(root, profiles string) (Record, error) {
	matches := s.Match(root, profiles)
	if len(matches) == 0 {
		return Record{}, &NotFoundError{
			Environment: s.environment,
			Root:        root,
			Profiles:    strings.Fields(profiles),
		}
	}

	s.mu.Lock()
	idx := s.rnd.IntN(len(matches))
	s.mu.Unlock()

	return matches[idx], nil
}

// MustResolve is Resolve for package-level test tables; it panics on a miss.
func (s *Store) MustResolve(root, profiles string) Record {
	rec, err := s.Resolve(root, profiles)
	if err != nil {
		panic(err)
	}
	return rec
}
