package fontengine

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/bnema/fontkeeper/internal/application/port"
	"github.com/bnema/fontkeeper/internal/domain/entity"
	"github.com/bnema/fontkeeper/internal/infrastructure/cache"
	"github.com/bnema/fontkeeper/internal/logging"
)

// AssetLoader turns a record into a reference usable from a font-face rule.
// Resolve failures wrap entity.ErrAssetUnavailable.
type AssetLoader interface {
	Resolve(ctx context.Context, rec entity.FontRecord) (string, error)
	// Pin marks ref as the reference the injected stylesheet uses. "" means
	// no stylesheet references a font.
	Pin(ref string)
	// Revoke releases any handle cached for id. Repeated calls are no-ops.
	Revoke(id string)
	// RevokeAll releases every cached handle.
	RevokeAll()
}

// DirectURLLoader maps storage paths below a public prefix to URLs the host
// serves directly, e.g. /data/public/fk/fonts/My Font.ttf becomes
// /public/fk/fonts/My%20Font.ttf.
type DirectURLLoader struct {
	prefix string
	base   string
}

var _ AssetLoader = (*DirectURLLoader)(nil)

// NewDirectURLLoader creates a loader for storage paths under prefix served at base.
func NewDirectURLLoader(prefix, base string) *DirectURLLoader {
	return &DirectURLLoader{prefix: prefix, base: base}
}

func (l *DirectURLLoader) Resolve(_ context.Context, rec entity.FontRecord) (string, error) {
	if rec.StoragePath == "" || !strings.HasPrefix(rec.StoragePath, l.prefix) {
		return "", fmt.Errorf("%w: %q is not publicly exposed", entity.ErrAssetUnavailable, rec.StoragePath)
	}
	rel := strings.TrimPrefix(rec.StoragePath, l.prefix)
	if rel == "" {
		return "", fmt.Errorf("%w: %q has no public path", entity.ErrAssetUnavailable, rec.StoragePath)
	}

	segments := strings.Split(rel, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return l.base + strings.Join(segments, "/"), nil
}

func (l *DirectURLLoader) Pin(string) {}

func (l *DirectURLLoader) Revoke(string) {}

func (l *DirectURLLoader) RevokeAll() {}

type cachedAsset struct {
	url  string
	path string
}

type evictedAsset struct {
	id string
	cachedAsset
}

// FetchLoader reads font bytes from storage once per record and hands out
// in-memory object URLs, cached by record id. Concurrent resolutions of the
// same record share one fetch.
//
// A handle returned by Resolve stays valid until the next Pin, a Revoke of
// its record, or RevokeAll. Capacity eviction only retires a handle; Pin
// releases every retired handle except the pinned one.
type FetchLoader struct {
	storage port.ObjectStorage
	urls    port.ObjectURLs
	cache   *cache.LRU[string, cachedAsset]
	group   singleflight.Group

	// mu guards every cache mutation, so the eviction hook runs with it held.
	mu       sync.Mutex
	epoch    uint64
	idEpochs map[string]uint64
	evicted  []evictedAsset
}

var _ AssetLoader = (*FetchLoader)(nil)

// NewFetchLoader creates a loader that caches at most capacity object URLs.
func NewFetchLoader(storage port.ObjectStorage, urls port.ObjectURLs, capacity int) *FetchLoader {
	l := &FetchLoader{
		storage:  storage,
		urls:     urls,
		idEpochs: map[string]uint64{},
	}
	l.cache = cache.NewLRU[string, cachedAsset](capacity, func(id string, a cachedAsset) {
		l.evicted = append(l.evicted, evictedAsset{id: id, cachedAsset: a})
	})
	return l
}

func (l *FetchLoader) Resolve(ctx context.Context, rec entity.FontRecord) (string, error) {
	if ref, ok := l.lookup(rec); ok {
		return ref, nil
	}

	v, err, shared := l.group.Do(rec.ID, func() (any, error) {
		return l.fetch(ctx, rec)
	})
	if err != nil {
		return "", err
	}
	if shared {
		logging.FromContext(logging.WithFontID(ctx, rec.ID)).Debug().Msg("joined in-flight font fetch")
	}
	return v.(string), nil
}

// lookup returns a handle still valid for rec, cached or retired.
func (l *FetchLoader) lookup(rec entity.FontRecord) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if a, ok := l.cache.Get(rec.ID); ok {
		if a.path == rec.StoragePath {
			return a.url, true
		}
		l.cache.Remove(rec.ID)
	}
	for _, e := range l.evicted {
		if e.id == rec.ID && e.path == rec.StoragePath {
			return e.url, true
		}
	}
	return "", false
}

func (l *FetchLoader) fetch(ctx context.Context, rec entity.FontRecord) (string, error) {
	log := logging.FromContext(logging.WithFontID(ctx, rec.ID))
	epoch, idEpoch := l.epochs(rec.ID)

	data, err := l.storage.Get(ctx, rec.StoragePath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", entity.ErrAssetUnavailable, err)
	}
	objURL, err := l.urls.CreateObjectURL(data, rec.Format().MIMEType())
	if err != nil {
		return "", fmt.Errorf("%w: %w", entity.ErrAssetUnavailable, err)
	}

	l.mu.Lock()
	stale := l.epoch != epoch || l.idEpochs[rec.ID] != idEpoch
	if !stale {
		l.cache.Set(rec.ID, cachedAsset{url: objURL, path: rec.StoragePath})
	}
	l.mu.Unlock()

	if stale {
		l.urls.RevokeObjectURL(objURL)
		log.Debug().Msg("font revoked while fetching; discarding handle")
		return "", fmt.Errorf("%w: %s was revoked", entity.ErrAssetUnavailable, rec.ID)
	}

	log.Debug().Int("bytes", len(data)).Msg("font asset cached")
	return objURL, nil
}

func (l *FetchLoader) epochs(id string) (uint64, uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.epoch, l.idEpochs[id]
}

func (l *FetchLoader) Pin(ref string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.releaseLocked(func(e evictedAsset) bool { return e.url != ref })
}

func (l *FetchLoader) Revoke(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.idEpochs[id]++
	l.cache.Remove(id)
	l.releaseLocked(func(e evictedAsset) bool { return e.id == id })
}

func (l *FetchLoader) RevokeAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.epoch++
	l.cache.Clear()
	l.releaseLocked(func(evictedAsset) bool { return true })
}

// releaseLocked revokes the retired handles matching release. The caller holds mu.
func (l *FetchLoader) releaseLocked(release func(evictedAsset) bool) {
	kept := l.evicted[:0]
	for _, e := range l.evicted {
		if release(e) {
			l.urls.RevokeObjectURL(e.url)
			continue
		}
		kept = append(kept, e)
	}
	clear(l.evicted[len(kept):])
	l.evicted = kept
}

// Cached returns the number of handles in the cache.
func (l *FetchLoader) Cached() int {
	return l.cache.Len()
}

// Retired returns the number of evicted handles not yet released.
func (l *FetchLoader) Retired() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.evicted)
}
