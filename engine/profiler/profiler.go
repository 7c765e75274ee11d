package profiler

import (
	"log"
	"runtime"
	"sync"
	"time"
)

// Snapshot holds the totals accumulated by a Profiler.
type Snapshot struct {
	Files   int
	Bytes   int64
	Elapsed time.Duration

	// Slowest is the label of the longest single parse.
	Slowest        string
	SlowestElapsed time.Duration
}

// Throughput returns the parse throughput in MB/s, or 0 when nothing was tracked.
//
// Returns:
//   - float64: megabytes parsed per second of tracked time
func (s Snapshot) Throughput() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Bytes) / 1024 / 1024 / s.Elapsed.Seconds()
}

// Profiler tracks parse throughput and memory statistics for performance monitoring.
// Track may be called from several goroutines; Report outputs the totals to the log.
type Profiler struct {
	mu             sync.Mutex
	totals         Snapshot
	startTime      time.Time
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// NewProfiler creates a new Profiler with empty totals.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	p := &Profiler{
		startTime: time.Now(),
		memStats:  runtime.MemStats{},
	}
	runtime.ReadMemStats(&p.memStats)
	p.lastGCCount = p.memStats.NumGC
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return p
}

// Track records one completed parse.
//
// Parameters:
//   - label: the name of the parsed source
//   - bytes: the number of bytes consumed
//   - elapsed: the wall time the parse took
func (p *Profiler) Track(label string, bytes int64, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.totals.Files++
	p.totals.Bytes += bytes
	p.totals.Elapsed += elapsed
	if elapsed > p.totals.SlowestElapsed {
		p.totals.Slowest = label
		p.totals.SlowestElapsed = elapsed
	}
}

// Snapshot returns the totals tracked so far.
//
// Returns:
//   - Snapshot: the accumulated file count, bytes and parse time
func (p *Profiler) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totals
}

// Report logs the tracked totals alongside memory statistics gathered since the previous report.
// Statistics include: files, MB/s, the slowest parse, heap usage, allocation rate, GC count/pause times, total memory.
func (p *Profiler) Report() {
	p.mu.Lock()
	defer p.mu.Unlock()

	currentTime := time.Now()
	wall := currentTime.Sub(p.startTime)

	runtime.ReadMemStats(&p.memStats)
	// Alloc: Bytes of allocated heap objects (live memory)
	// TotalAlloc: Cumulative bytes allocated for heap objects (increases forever, tracks churn)
	// Sys: Total bytes of memory obtained from the OS (actual process footprint)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	var allocRateMB float64
	if wall > 0 {
		allocRateMB = float64(allocDelta) / 1024 / 1024 / wall.Seconds()
	}

	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of last 256 GC pauses
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			pause := p.memStats.PauseNs[i%256] / 1000
			if pause > maxPauseUs {
				maxPauseUs = pause
			}
		}
	}

	log.Printf("[Profiler] Files: %d | Parsed: %.2f MB at %.2f MB/s | Slowest: %s (%s) | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		p.totals.Files, float64(p.totals.Bytes)/1024/1024, p.totals.Throughput(),
		p.totals.Slowest, p.totals.SlowestElapsed,
		allocMB, allocRateMB, gcCount-p.lastGCCount, lastPauseUs, maxPauseUs, sysMB)

	p.startTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
}
