package cache

import (
	"sync"

	"github.com/DreKwasi/brazilian-ecom-analysis/models"
)

// ── Loaded frame cache ───────────────────────────────────────────────────────
// The backing files are immutable for the lifetime of a session, so the
// loader's output is cached per addGeo argument with no TTL. Invalidate is
// the explicit teardown hook (tests, data file swap on deploy).

type frameEntry struct {
	orders []models.Order
}

var (
	frameMu sync.RWMutex
	frames  = map[bool]*frameEntry{}
	version uint64
)

// GetFrame returns the cached loader output for addGeo, if present.
func GetFrame(addGeo bool) ([]models.Order, bool) {
	frameMu.RLock()
	defer frameMu.RUnlock()
	if e, ok := frames[addGeo]; ok {
		return e.orders, true
	}
	return nil, false
}

func SetFrame(addGeo bool, orders []models.Order) {
	frameMu.Lock()
	defer frameMu.Unlock()
	frames[addGeo] = &frameEntry{orders: orders}
	version++
}

// FrameVersion changes whenever a frame is (re)loaded; result-cache keys
// include it so derived entries can never outlive their source frame.
func FrameVersion() uint64 {
	frameMu.RLock()
	defer frameMu.RUnlock()
	return version
}

// Invalidate drops every cached frame and all derived results.
func Invalidate() {
	frameMu.Lock()
	frames = map[bool]*frameEntry{}
	version++
	frameMu.Unlock()

	InvalidateResults()
}
