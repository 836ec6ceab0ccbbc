package ttable

import (
	"math/rand"
	"testing"
)

const benchMegabytes = 16

func genBenchKeys(n int) []uint64 {
	rng := rand.New(rand.NewSource(42))

	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = rng.Uint64() | 1
	}

	return keys
}

func BenchmarkProbe_Hit(b *testing.B) {
	tt, _ := New(benchMegabytes)
	keys := genBenchKeys(1 << 16)
	for _, k := range keys {
		tt.Store(k, 10, BoundExact, 8, Move(1))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tt.Probe(keys[i%len(keys)])
	}
}

func BenchmarkProbe_Miss(b *testing.B) {
	tt, _ := New(benchMegabytes)
	keys := genBenchKeys(1 << 17)
	for _, k := range keys[:1<<16] {
		tt.Store(k, 10, BoundExact, 8, Move(1))
	}
	misses := keys[1<<16:]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tt.Probe(misses[i%len(misses)])
	}
}

func BenchmarkStore(b *testing.B) {
	keys := genBenchKeys(1 << 18)

	b.Run("variant=ttable", func(b *testing.B) {
		tt, _ := New(benchMegabytes)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			tt.Store(keys[i%len(keys)], int16(i), BoundLower, int16(i%32), Move(i))
		}
	})

	// Baseline: what the naive map-backed table costs per store.
	b.Run("variant=stdMap", func(b *testing.B) {
		type result struct {
			value int16
			depth int16
			move  Move
		}
		m := make(map[uint64]result, 1<<16)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			m[keys[i%len(keys)]] = result{int16(i), int16(i % 32), Move(i)}
		}
	})
}

func BenchmarkNewSearchAging(b *testing.B) {
	tt, _ := New(benchMegabytes)
	keys := genBenchKeys(1 << 16)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%1024 == 0 {
			tt.NewSearch()
		}
		tt.Store(keys[i%len(keys)], int16(i), BoundExact, int16(i%32), Move(i))
	}
}
