package ecobee

import (
	"sync"
)

// RevisionTracker remembers the last summary revisions seen for each
// thermostat and reports which thermostats changed between polls. It is safe
// for concurrent access.
//
// The vendor asks integrators to poll ThermostatSummary (at most every 3
// minutes) and fetch full thermostat data only for thermostats whose revision
// stamps moved. Feed each poll's parsed revisions to Update and fetch only
// the returned identifiers.
type RevisionTracker struct {
	seen map[string]SummaryRevision
	mu   sync.RWMutex
}

// NewRevisionTracker creates an empty revision tracker.
func NewRevisionTracker() *RevisionTracker {
	return &RevisionTracker{
		seen: make(map[string]SummaryRevision),
	}
}

// Update records the revisions from one summary poll and returns the
// revisions of thermostats seen for the first time or changed since the
// previous poll.
func (t *RevisionTracker) Update(revs []SummaryRevision) []SummaryRevision {
	t.mu.Lock()
	defer t.mu.Unlock()

	var changed []SummaryRevision
	for _, rev := range revs {
		prev, ok := t.seen[rev.Identifier]
		if !ok || prev != rev {
			changed = append(changed, rev)
		}
		t.seen[rev.Identifier] = rev
	}
	return changed
}

// Last returns the most recently recorded revision for a thermostat.
func (t *RevisionTracker) Last(identifier string) (SummaryRevision, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	rev, ok := t.seen[identifier]
	return rev, ok
}

// Clear forgets all recorded revisions.
func (t *RevisionTracker) Clear() {
	t.mu.Lock()
	t.seen = make(map[string]SummaryRevision)
	t.mu.Unlock()
}

// Size returns the number of thermostats the tracker has seen.
func (t *RevisionTracker) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.seen)
}
