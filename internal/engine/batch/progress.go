package batch

import (
	"sync"
	"time"
)

const percentMultiplier = 100

// Progress counts processed items and batches. It is safe for concurrent use.
type Progress struct {
	mu sync.Mutex

	totalItems       int
	totalBatches     int
	processedItems   int
	processedBatches int
	start            time.Time
}

// NewProgress starts a progress tracker.
func NewProgress(totalItems, totalBatches int) *Progress {
	return &Progress{totalItems: totalItems, totalBatches: totalBatches, start: time.Now()}
}

// Add records one finished batch of n items and returns the new state.
func (p *Progress) Add(n int) ProgressSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.processedItems += n
	p.processedBatches++
	return p.snapshotLocked()
}

// Snapshot returns the current state.
func (p *Progress) Snapshot() ProgressSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *Progress) snapshotLocked() ProgressSnapshot {
	s := ProgressSnapshot{
		TotalItems:       p.totalItems,
		ProcessedItems:   p.processedItems,
		TotalBatches:     p.totalBatches,
		ProcessedBatches: p.processedBatches,
		Elapsed:          time.Since(p.start),
	}
	if p.totalItems > 0 {
		s.PercentComplete = float64(p.processedItems) / float64(p.totalItems) * percentMultiplier
	}
	return s
}

// ProgressSnapshot is an immutable copy of Progress.
type ProgressSnapshot struct {
	TotalItems       int
	ProcessedItems   int
	TotalBatches     int
	ProcessedBatches int
	PercentComplete  float64
	Elapsed          time.Duration
}

// Complete reports whether every item has been processed.
func (s ProgressSnapshot) Complete() bool {
	return s.ProcessedItems >= s.TotalItems
}
