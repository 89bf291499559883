package metrics

import "runtime"

// MemorySnapshot holds a point-in-time reading of the runtime allocator.
type MemorySnapshot struct {
	HeapAlloc  uint64 // bytes of live heap objects
	TotalAlloc uint64 // cumulative bytes allocated
	Mallocs    uint64 // cumulative heap objects allocated
	Sys        uint64 // total bytes obtained from the OS
	NumGC      uint32 // completed GC cycles
}

// AllocDelta is the allocation activity between two snapshots.
type AllocDelta struct {
	Bytes   uint64
	Objects uint64
	GCs     uint32
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:  m.HeapAlloc,
		TotalAlloc: m.TotalAlloc,
		Mallocs:    m.Mallocs,
		Sys:        m.Sys,
		NumGC:      m.NumGC,
	}
}

// Since returns the allocations made between before and s. The cumulative
// counters never decrease, so the result is always well defined.
func (s MemorySnapshot) Since(before MemorySnapshot) AllocDelta {
	return AllocDelta{
		Bytes:   s.TotalAlloc - before.TotalAlloc,
		Objects: s.Mallocs - before.Mallocs,
		GCs:     s.NumGC - before.NumGC,
	}
}
