package relevance

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerEmpty(t *testing.T) {
	tracker := NewTracker()
	assert.False(t, tracker.Struggling())
}

func TestTrackerNeedsFullHistory(t *testing.T) {
	tracker := NewTracker()
	tracker.Record(false)
	tracker.Record(false)
	assert.False(t, tracker.Struggling())

	tracker.Record(false)
	assert.True(t, tracker.Struggling())
}

func TestTrackerHitResets(t *testing.T) {
	tracker := NewTracker()
	tracker.Record(false)
	tracker.Record(false)
	tracker.Record(false)
	assert.True(t, tracker.Struggling())

	tracker.Record(true)
	assert.False(t, tracker.Struggling())
}

func TestTrackerEvictsOldest(t *testing.T) {
	tracker := NewTracker()
	tracker.Record(true)
	tracker.Record(false)
	tracker.Record(false)
	assert.False(t, tracker.Struggling())

	// The hit falls out of the window after a third miss.
	tracker.Record(false)
	assert.True(t, tracker.Struggling())
}

func TestTrackerConcurrentRecords(t *testing.T) {
	tracker := NewTracker()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.Record(false)
		}()
	}
	wg.Wait()

	assert.True(t, tracker.Struggling())
}
