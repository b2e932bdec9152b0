package document

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/bnema/fontkeeper/internal/application/port"
)

// MemoryURLs hands out blob-style references and tracks which are live.
type MemoryURLs struct {
	mu      sync.Mutex
	next    int
	live    map[string]int
	revoked map[string]int
}

var _ port.ObjectURLs = (*MemoryURLs)(nil)

func NewMemoryURLs() *MemoryURLs {
	return &MemoryURLs{live: map[string]int{}, revoked: map[string]int{}}
}

func (u *MemoryURLs) CreateObjectURL(data []byte, _ string) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.next++
	url := fmt.Sprintf("blob:fontkeeper/%d", u.next)
	u.live[url] = len(data)
	return url, nil
}

func (u *MemoryURLs) RevokeObjectURL(url string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.live[url]; !ok {
		return
	}
	delete(u.live, url)
	u.revoked[url]++
}

// Live returns the number of unrevoked references.
func (u *MemoryURLs) Live() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.live)
}

// Created returns the number of references ever created.
func (u *MemoryURLs) Created() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.next
}

// RevokeCount returns how many times url was actually released.
func (u *MemoryURLs) RevokeCount(url string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.revoked[url]
}

// DataURLs embeds the bytes into self-contained data: URLs. Nothing needs
// releasing, so revocation is a no-op.
type DataURLs struct{}

var _ port.ObjectURLs = DataURLs{}

func (DataURLs) CreateObjectURL(data []byte, mimeType string) (string, error) {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func (DataURLs) RevokeObjectURL(string) {}

// RecordingFontLoader records warm-up requests and returns Err for each.
type RecordingFontLoader struct {
	mu    sync.Mutex
	specs []string
	Err   error
}

var _ port.FontFaceLoader = (*RecordingFontLoader)(nil)

func (l *RecordingFontLoader) LoadFont(_ context.Context, spec string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.specs = append(l.specs, spec)
	return l.Err
}

// Specs returns the requested font specs in order.
func (l *RecordingFontLoader) Specs() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.specs...)
}

// Mode is a static port.HostMode.
type Mode bool

func (m Mode) ReadOnly() bool { return bool(m) }

// Writable and ReadOnly are the two host modes.
const (
	Writable Mode = false
	ReadOnly Mode = true
)
