package profiler

import (
	"log"
	"runtime"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/engine/orbit"
)

// Profiler tracks tick rate, camera update counts and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval. Not safe for concurrent use: call it from the
// tick goroutine only.
type Profiler struct {
	tickCount      int
	updateCount    int
	activeChanges  int
	lastStats      orbit.TickStats
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
		memStats:       runtime.MemStats{},
	}
}

// SetInterval changes how often stats are logged.
//
// Parameters:
//   - d: the logging interval
func (p *Profiler) SetInterval(d time.Duration) {
	p.updateInterval = d
}

// Tick should be called once per engine tick with that tick's orbit stats.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: tick rate, camera count, camera writes per second, active camera changes,
// heap usage, allocation rate, GC count/pause times, total memory.
//
// Parameters:
//   - stats: the stats returned by orbit.System.Tick
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(stats orbit.TickStats) bool {
	p.tickCount++
	p.updateCount += stats.Updated
	if stats.ActiveChanged {
		p.activeChanges++
	}
	p.lastStats = stats

	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	seconds := max(elapsed.Seconds(), 1e-9)
	tps := float64(p.tickCount) / seconds
	writesPerSec := float64(p.updateCount) / seconds

	runtime.ReadMemStats(&p.memStats)
	// Alloc: Bytes of allocated heap objects (live memory)
	// TotalAlloc: Cumulative bytes allocated for heap objects (increases forever, tracks churn)
	// Sys: Total bytes of memory obtained from the OS (actual process footprint)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / seconds

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
			maxPauseUs = max(maxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	log.Printf("[Profiler] TPS: %.2f | Cameras: %d | Writes: %.1f/s | Active: %d (%d changes) | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		tps, p.lastStats.Cameras, writesPerSec, p.lastStats.Active, p.activeChanges,
		allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)

	p.tickCount = 0
	p.updateCount = 0
	p.activeChanges = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
