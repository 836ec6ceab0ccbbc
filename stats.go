package ttable

import "unsafe"

// Stats is a point-in-time snapshot of table shape and occupancy.
type Stats struct {
	Clusters  int
	Capacity  int // entry slots
	SizeBytes int
	Hashfull  int // permille of slots written this search, sampled
}

// hashfullSample bounds the Hashfull scan so it stays cheap on big tables.
const hashfullSample = 1000

func (t *Table) Stats() Stats {
	return Stats{
		Clusters:  len(t.clusters),
		Capacity:  len(t.clusters) * clusterSize,
		SizeBytes: len(t.clusters) * int(unsafe.Sizeof(cluster{})),
		Hashfull:  t.Hashfull(),
	}
}

// Hashfull estimates, in permille, how much of the table holds entries
// written or refreshed during the current search. It samples the first
// hashfullSample clusters, the way UCI engines report `hashfull`, so the
// figure is an estimate rather than an exact count.
func (t *Table) Hashfull() int {
	sample := min(len(t.clusters), hashfullSample)
	if sample == 0 {
		return 0
	}

	used := 0
	for i := 0; i < sample; i++ {
		for j := range t.clusters[i].entries {
			e := &t.clusters[i].entries[j]
			if e.key32 != 0 && e.gen8 == t.generation {
				used++
			}
		}
	}

	return used * 1000 / (sample * clusterSize)
}
