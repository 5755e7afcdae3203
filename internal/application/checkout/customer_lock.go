package checkout

import "sync"

// customerLocks serializes checkouts per customer so two concurrent
// requests from the same customer cannot interleave their cart reads
// and order writes. Entries are refcounted and dropped when the last
// holder releases, so the map only tracks customers with a checkout
// in flight rather than growing for the process lifetime.
type customerLocks struct {
	mu      sync.Mutex
	entries map[int64]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newCustomerLocks() *customerLocks {
	return &customerLocks{entries: make(map[int64]*lockEntry)}
}

func (c *customerLocks) Lock(customerID int64) {
	c.mu.Lock()
	entry, ok := c.entries[customerID]
	if !ok {
		entry = &lockEntry{}
		c.entries[customerID] = entry
	}
	entry.refs++
	c.mu.Unlock()

	entry.mu.Lock()
}

func (c *customerLocks) Unlock(customerID int64) {
	c.mu.Lock()
	entry, ok := c.entries[customerID]
	if !ok {
		c.mu.Unlock()
		return
	}
	entry.refs--
	if entry.refs == 0 {
		delete(c.entries, customerID)
	}
	c.mu.Unlock()

	entry.mu.Unlock()
}
