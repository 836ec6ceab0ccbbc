// Package ttable implements the transposition table of a game-tree search
// engine: a fixed-capacity, lossy map from 64-bit position fingerprints to
// previously computed search results (best move, bound type, depth, score).
//
// The table is best-effort shared state, not a source of truth. Workers
// probe and store concurrently with plain unsynchronized memory accesses;
// simultaneous writes to one cluster may interleave and a probe may observe
// a torn record. Callers absorb this by re-checking Entry.Key against their
// own position key and by checking the bound flags before trusting a value.
// A wrong or corrupted slot is simply overwritten on a later store.
package ttable

import "errors"

// ErrTableTooSmall is returned by New and Resize when the memory budget
// cannot host even a single cluster.
var ErrTableTooSmall = errors.New("ttable: budget too small for one cluster")

const bytesPerMegabyte = 1 << 20

// Table owns a contiguous power-of-two array of clusters plus the search
// epoch counter that drives aging. Construct one per engine process and
// share it by reference with every search worker.
//
// Keys are truncated to 32 bits for storage, so two distinct positions can
// alias the same slot. At 2^k stored positions the expected false-hit rate
// follows the birthday bound k^2/2^33 per probe; a search re-validates via
// move legality anyway, so this is an accepted trade-off rather than a
// fault. A position whose low 32 key bits are all zero is indistinguishable
// from an empty slot and falls under the same budget.
//
// Resize and Clear must not run concurrently with Probe or Store; call them
// at a quiescent point between searches. Everything else is non-blocking
// and bounded by a single 4-slot scan.
type Table struct {
	clusters   []cluster
	mask       uint32
	generation uint8
}

// New returns a table sized to the given memory budget in megabytes.
func New(megabytes int) (*Table, error) {
	var t Table
	if err := t.Resize(megabytes); err != nil {
		return nil, err
	}

	return &t, nil
}

// Resize reallocates the backing array to the largest power-of-two cluster
// count that fits the budget, dropping every stored entry. On error the
// previous storage is left intact.
func (t *Table) Resize(megabytes int) error {
	if megabytes < 1 {
		return ErrTableTooSmall
	}

	n := clustersForBudget(uintptr(megabytes) * bytesPerMegabyte)
	if n == 0 {
		return ErrTableTooSmall
	}

	// Bucket selection uses 32 key bits, more clusters are unreachable.
	if n > 1<<32 {
		n = 1 << 32
	}

	t.clusters = make([]cluster, n)
	t.mask = uint32(n - 1)

	return nil
}

// Clear resets every entry to the empty state in place, without touching
// the allocation. Not safe to run concurrently with probes or stores.
func (t *Table) Clear() {
	for i := range t.clusters {
		t.clusters[i] = cluster{}
	}
}

// clusterFor maps a position key to its bucket. The low key bits masked by
// the power-of-two size are the sole hashing step; collisions are resolved
// only by the in-cluster scan plus key comparison.
func (t *Table) clusterFor(key uint64) *cluster {
	return &t.clusters[uint32(key)&t.mask]
}

// Probe looks the position up and returns its entry on a hit. The entry is
// a live pointer into the table: it may be rewritten underneath the caller,
// and reading it does not refresh its generation. Call Refresh explicitly
// if the hit was useful and should survive replacement pressure.
func (t *Table) Probe(key uint64) (*Entry, bool) {
	c := t.clusterFor(key)
	k := uint32(key)

	for i := range c.entries {
		if e := &c.entries[i]; e.key32 == k {
			return e, true
		}
	}

	return nil, false
}

// Refresh stamps the entry with the current search epoch, protecting it
// from aging-based eviction for the remainder of this search.
func (t *Table) Refresh(e *Entry) {
	e.gen8 = t.generation
}

// NewSearch advances the search epoch. Call it once at the start of each
// top-level search; it is the only mechanism that makes old entries stale.
func (t *Table) NewSearch() {
	t.generation++
}

// Store records a search result for the position. A slot already holding
// the same truncated key is merged into (see Entry bound merging);
// otherwise the weakest slot in the cluster is evicted: empty slots first,
// then the oldest epoch, then the shallowest depth.
func (t *Table) Store(key uint64, value int16, bound Bound, depth int16, move Move) {
	c := t.clusterFor(key)
	k := uint32(key)

	var victim *Entry
	for i := range c.entries {
		e := &c.entries[i]
		if e.key32 == k {
			e.update(value, bound, depth, move, t.generation)
			return
		}

		if victim == nil || t.weaker(e, victim) {
			victim = e
		}
	}

	victim.save(k, value, bound, depth, move, t.generation)
}

// weaker reports whether a is a better eviction candidate than b.
// Relative age is computed with wrapping uint8 subtraction so the epoch
// counter can roll over without inverting the ordering.
func (t *Table) weaker(a, b *Entry) bool {
	if (a.key32 == 0) != (b.key32 == 0) {
		return a.key32 == 0
	}

	ageA := t.generation - a.gen8
	ageB := t.generation - b.gen8
	if ageA != ageB {
		return ageA > ageB
	}

	return a.depth() < b.depth()
}
