package ttable

import (
	"math/bits"
	"unsafe"
)

// Returns the largest power of 2 not greater than the given value `v`,
// or 0 when v is 0.
func PrevPowerOf2(v uint64) uint64 {
	if v == 0 {
		return 0
	}

	return uint64(1) << (bits.Len64(v) - 1)
}

// clustersForBudget returns the largest power-of-two cluster count whose
// backing array fits in `size` bytes.
func clustersForBudget(size uintptr) uint64 {
	return PrevPowerOf2(uint64(size / unsafe.Sizeof(cluster{})))
}

// Estimates capacity (number of entry slots) actually bought by a memory
// budget of `size` bytes, after rounding down to a power-of-two cluster
// count.
func EntriesForBudget(size uintptr) int {
	return int(clustersForBudget(size)) * clusterSize
}
