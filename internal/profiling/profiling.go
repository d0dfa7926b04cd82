package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Per-frame CPU timings, keyed "subsystem.Operation".

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
)

// Track returns a stop function that adds the elapsed time to name.
// Usage: defer profiling.Track("renderer.Render")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears the current totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(frameTotals)
	mu.Unlock()
}

// Snapshot returns a copy of the current totals
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(frameTotals))
	for k, v := range frameTotals {
		out[k] = v
	}
	return out
}

// TopN formats the n largest totals, e.g. "renderer.Render:4.2ms, engine.applyLoad:1ms"
func TopN(n int) string {
	type entry struct {
		name string
		dur  time.Duration
	}
	snap := Snapshot()
	list := make([]entry, 0, len(snap))
	for k, v := range snap {
		list = append(list, entry{k, v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for _, e := range list[:n] {
		parts = append(parts, e.name+":"+formatMs(e.dur))
	}
	return strings.Join(parts, ", ")
}

// formatMs keeps one decimal and drops a trailing ".0"
func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}
