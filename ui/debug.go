package ui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/piece"
)

// FrameHistory is a ring of recent frame times in milliseconds, laid out for plotting.
type FrameHistory struct {
	samples []float32
	next    int
	count   int
}

func NewFrameHistory(frames int) *FrameHistory {
	return &FrameHistory{samples: make([]float32, max(frames, 1))}
}

// Record stores d, overwriting the oldest sample once the ring is full.
func (h *FrameHistory) Record(d time.Duration) {
	h.samples[h.next] = float32(d.Seconds() * 1000)
	h.next = (h.next + 1) % len(h.samples)
	h.count = min(h.count+1, len(h.samples))
}

// Samples returns the ring in storage order. It is never empty; unrecorded slots are zero.
func (h *FrameHistory) Samples() []float32 {
	return h.samples
}

func (h *FrameHistory) Len() int {
	return h.count
}

// Average is the mean of the recorded samples, zero before the first one.
func (h *FrameHistory) Average() float32 {
	if h.count == 0 {
		return 0
	}
	var total float32
	for _, ms := range h.samples {
		total += ms
	}
	return total / float32(h.count)
}

// SystemColumns names the cells of a SystemRows row.
var SystemColumns = []string{"System", "Runs", "Last ms", "Avg ms", "Max ms"}

// SystemRows formats per-system timings in registration order.
func SystemRows(stats *loop.SchedulerStats) [][]string {
	rows := make([][]string, 0, len(stats.Systems))
	for _, st := range stats.Systems {
		rows = append(rows, []string{
			st.Name,
			strconv.FormatInt(st.ExecutionCount, 10),
			millis(st.LastDuration),
			millis(st.AvgDuration()),
			millis(st.MaxDuration),
		})
	}
	return rows
}

// KindColumns names the cells of a KindRows row.
var KindColumns = []string{"Kind", "Locks"}

// KindRows lists the lock count of every kind, including kinds that never locked.
func KindRows(games *loop.GameStats) [][]string {
	rows := make([][]string, 0, len(piece.Kinds))
	for _, k := range piece.Kinds {
		rows = append(rows, []string{k.String(), strconv.Itoa(games.LocksOf(k))})
	}
	return rows
}

func millis(d time.Duration) string {
	return fmt.Sprintf("%.3f", float64(d)/float64(time.Millisecond))
}
