package deals

import (
	"context"
	"fmt"
	"sync"
)

// Deduper decides whether a (app, discount) pair was already announced to a
// subscriber. A changed discount on the same app counts as a new deal.
type Deduper interface {
	// ShouldNotify marks the pair as announced and reports whether it was
	// new. The check and the mark are one atomic step.
	ShouldNotify(ctx context.Context, subscriberID string, appID int64, discountPercent int) (bool, error)
}

// MemoryDeduper keeps announced pairs for the process lifetime.
type MemoryDeduper struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewMemoryDeduper() *MemoryDeduper {
	return &MemoryDeduper{
		seen: make(map[string]struct{}),
	}
}

func (d *MemoryDeduper) ShouldNotify(_ context.Context, subscriberID string, appID int64, discountPercent int) (bool, error) {
	key := DedupKey(subscriberID, appID, discountPercent)

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[key]; ok {
		return false, nil
	}

	d.seen[key] = struct{}{}

	return true, nil
}

// DedupKey keeps the legacy "<appID>_<discount>" pair format, prefixed with
// the subscriber it was announced to.
func DedupKey(subscriberID string, appID int64, discountPercent int) string {
	return fmt.Sprintf("%s:%d_%d", subscriberID, appID, discountPercent)
}
