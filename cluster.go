package ttable

import "unsafe"

const (
	// clusterSize is the number of candidate slots behind one bucket index.
	// A probe or store touches exactly one cluster.
	clusterSize = 4

	cacheLine  = 64
	entryBytes = 16
)

// cluster groups the slots that share a hash bucket.
//
// 4 entries of 16 bytes fill one 64-byte cache line exactly, so a lookup
// costs a single line of memory traffic and a slot never straddles two
// lines. If Entry ever shrinks, pad cluster back up to cacheLine rather
// than letting two clusters share a line.
type cluster struct {
	entries [clusterSize]Entry
}

// Layout checks. Each constant underflows (and fails to compile) if the
// struct drifts away from the sizes the comments above promise.
const (
	_ = uint(entryBytes - unsafe.Sizeof(Entry{}))
	_ = uint(unsafe.Sizeof(Entry{}) - entryBytes)
	_ = uint(cacheLine - unsafe.Sizeof(cluster{}))
)
