package cache

import (
	"sync"

	"github.com/mitchellh/hashstructure/v2"
)

// ── Derived result cache ─────────────────────────────────────────────────────
// Filtering and aggregation are pure functions of (frame version, selection,
// spec), so their outputs are memoized under a hash of that tuple. Misses on
// a hash failure are fine; the pipeline just recomputes.

type Key struct {
	Kind         string
	FrameVersion uint64
	ArgsHash     uint64
}

var (
	resultMu sync.RWMutex
	results  = map[Key]any{}
)

// ResultKey derives a memo key for a named pure operation and its argument
// tuple. ok is false when the arguments are not hashable.
func ResultKey(kind string, args any) (Key, bool) {
	h, err := hashstructure.Hash(args, hashstructure.FormatV2, nil)
	if err != nil {
		return Key{}, false
	}
	return Key{Kind: kind, FrameVersion: FrameVersion(), ArgsHash: h}, true
}

func GetResult(key Key) (any, bool) {
	resultMu.RLock()
	defer resultMu.RUnlock()
	v, ok := results[key]
	return v, ok
}

func SetResult(key Key, value any) {
	resultMu.Lock()
	defer resultMu.Unlock()
	results[key] = value
}

// InvalidateResults drops all memoized derived results.
func InvalidateResults() {
	resultMu.Lock()
	results = map[Key]any{}
	resultMu.Unlock()
}
