package fontengine_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/fontkeeper/internal/application/port"
	"github.com/bnema/fontkeeper/internal/domain/entity"
	"github.com/bnema/fontkeeper/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type memStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	saves   int
	loadErr error
	saveErr error
	deletes int
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (s *memStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, false, s.loadErr
	}
	d, ok := s.data[key]
	return d, ok, nil
}

func (s *memStore) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.data[key] = append([]byte(nil), data...)
	return nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes++
	delete(s.data, key)
	return nil
}

func (s *memStore) get(key string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[key]
}

func (s *memStore) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// gatedLoader resolves instantly except for families listed in gates, which
// block until their channel is closed.
type gatedLoader struct {
	mu      sync.Mutex
	gates   map[string]chan struct{}
	entered map[string]chan struct{}
	revoked []string
	pinned  []string
	all     int
}

func newGatedLoader() *gatedLoader {
	return &gatedLoader{gates: map[string]chan struct{}{}, entered: map[string]chan struct{}{}}
}

func (l *gatedLoader) gate(family string) (entered <-chan struct{}, release func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	g := make(chan struct{})
	e := make(chan struct{})
	l.gates[family] = g
	l.entered[family] = e
	return e, func() { close(g) }
}

func (l *gatedLoader) Resolve(_ context.Context, rec entity.FontRecord) (string, error) {
	l.mu.Lock()
	g, gated := l.gates[rec.Family]
	e := l.entered[rec.Family]
	if gated {
		delete(l.gates, rec.Family)
	}
	l.mu.Unlock()

	if gated {
		close(e)
		<-g
	}
	if rec.Family == "Broken" {
		return "", fmt.Errorf("%w: broken", entity.ErrAssetUnavailable)
	}
	return "blob:" + rec.ID, nil
}

func (l *gatedLoader) Pin(ref string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pinned = append(l.pinned, ref)
}

func (l *gatedLoader) Revoke(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.revoked = append(l.revoked, id)
}

func (l *gatedLoader) RevokeAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.all++
}

type fakeDetector struct{ best string }

func (d fakeDetector) GetAvailableFonts(context.Context) ([]string, error) {
	return []string{d.best}, nil
}

func (d fakeDetector) SelectBestFont(_ context.Context, _ port.FontCategory, _ []string) string {
	return d.best
}

func (d fakeDetector) IsAvailable(context.Context) bool { return true }

type failingStorage struct{ port.ObjectStorage }

func (failingStorage) Remove(context.Context, string) error { return errors.New("permission denied") }

var installedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func record(id, family, ext string) entity.FontRecord {
	return entity.FontRecord{
		ID:          id,
		Name:        family,
		Family:      family,
		StoragePath: "/data/public/fontkeeper/fonts/" + family + ext,
		FileExt:     ext,
		FileSize:    1024,
		InstalledAt: installedAt,
	}
}
