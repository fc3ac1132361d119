package relevance

import "sync"

// trackerCapacity is how many recent search outcomes the tracker remembers.
const trackerCapacity = 3

// Tracker records the hit/miss outcome of recent searches. It reports a
// struggling user when every remembered outcome is a miss. In-memory only;
// state does not survive a restart. Safe for concurrent use.
type Tracker struct {
	mu       sync.Mutex
	outcomes []bool
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{outcomes: make([]bool, 0, trackerCapacity)}
}

// Record appends one search outcome, evicting the oldest when over capacity.
func (t *Tracker) Record(hit bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.outcomes = append(t.outcomes, hit)
	if len(t.outcomes) > trackerCapacity {
		t.outcomes = t.outcomes[1:]
	}
}

// Struggling reports whether the last trackerCapacity outcomes were all
// misses. Fewer recorded outcomes than capacity is never struggling.
func (t *Tracker) Struggling() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.outcomes) < trackerCapacity {
		return false
	}
	for _, hit := range t.outcomes {
		if hit {
			return false
		}
	}
	return true
}
