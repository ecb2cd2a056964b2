// Package forecastcache persists forecast snapshots as JSON files so
// repeated lookups within a snapshot's lifetime skip the network.
package forecastcache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/V3lvetStorm/pyweather/internal/domain"
	"github.com/V3lvetStorm/pyweather/internal/ports"
)

const indexFile = "index.jsonl"

type JSONStore struct {
	dir        string
	writeIndex bool
	now        func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables an append-only JSONL index next to the snapshots.
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(dir string, opts ...Option) *JSONStore {
	s := &JSONStore{
		dir: dir,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultDir resolves the platform cache directory for pyweather.
func DefaultDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", &domain.OpError{
			Op:   "forecastcache.dir",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	return filepath.Join(base, "pyweather"), nil
}

var _ ports.ForecastCache = (*JSONStore)(nil)

// snapshot is the on-disk envelope around a cached forecast.
type snapshot struct {
	Key       string          `json:"key"`
	FetchedAt time.Time       `json:"fetched_at"`
	ExpiresAt time.Time       `json:"expires_at"`
	Forecast  domain.Forecast `json:"forecast"`
}

func (s *JSONStore) Get(key string) (domain.Forecast, bool, error) {
	path := s.pathFor(key)

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Forecast{}, false, nil
		}
		return domain.Forecast{}, false, &domain.OpError{
			Op:   "forecastcache.get",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	var snap snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return domain.Forecast{}, false, &domain.OpError{
			Op:   "forecastcache.get",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.now().After(snap.ExpiresAt) {
		return domain.Forecast{}, false, nil
	}
	return snap.Forecast, true, nil
}

func (s *JSONStore) Put(key string, fc domain.Forecast, ttl time.Duration) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return &domain.OpError{
			Op:   "forecastcache.mkdir",
			Kind: domain.KindExecution,
			Path: s.dir,
			Err:  err,
		}
	}

	now := s.now().UTC()
	snap := snapshot{
		Key:       key,
		FetchedAt: now,
		ExpiresAt: now.Add(ttl),
		Forecast:  fc,
	}

	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return &domain.OpError{
			Op:   "forecastcache.put",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	path := s.pathFor(key)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return &domain.OpError{
			Op:   "forecastcache.put",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		// Best effort: the snapshot itself is already durable.
		_ = s.appendIndex(refFromSnapshot(snap, path))
	}
	return nil
}

func (s *JSONStore) List() ([]domain.SnapshotRef, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &domain.OpError{
			Op:   "forecastcache.list",
			Kind: domain.KindExecution,
			Path: s.dir,
			Err:  err,
		}
	}

	var refs []domain.SnapshotRef
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == indexFile || !strings.HasSuffix(name, ".json") {
			continue
		}
		path := filepath.Join(s.dir, name)

		b, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var snap snapshot
		if err := json.Unmarshal(b, &snap); err != nil {
			// Corrupt entries are skipped, not fatal.
			continue
		}
		refs = append(refs, refFromSnapshot(snap, path))
	}

	sort.Slice(refs, func(i, j int) bool {
		return refs[i].FetchedAt.After(refs[j].FetchedAt)
	})
	return refs, nil
}

func (s *JSONStore) appendIndex(ref domain.SnapshotRef) error {
	f, err := os.OpenFile(filepath.Join(s.dir, indexFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(ref)
}

func (s *JSONStore) pathFor(key string) string {
	return filepath.Join(s.dir, sanitizeKey(key)+".json")
}

func refFromSnapshot(snap snapshot, path string) domain.SnapshotRef {
	return domain.SnapshotRef{
		Key:       snap.Key,
		Location:  snap.Forecast.Location.Display(),
		Range:     snap.Forecast.Range.String(),
		FetchedAt: snap.FetchedAt,
		ExpiresAt: snap.ExpiresAt,
		Path:      path,
	}
}

// sanitizeKey keeps snapshot filenames portable.
func sanitizeKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '-'
		}
	}, key)
}
