package batch

import (
	"sync"
	"time"
)

const percentMultiplier = 100

// Progress tracks how many items and batches are done. It is safe for
// concurrent use.
type Progress struct {
	mu sync.Mutex

	totalItems       int
	processedItems   int
	totalBatches     int
	processedBatches int
	batchSize        int
	startTime        time.Time
	lastUpdate       time.Time
}

// NewProgress starts tracking a run.
func NewProgress(totalItems, totalBatches, batchSize int) *Progress {
	now := time.Now()
	return &Progress{
		totalItems:   totalItems,
		totalBatches: totalBatches,
		batchSize:    batchSize,
		startTime:    now,
		lastUpdate:   now,
	}
}

// AddProcessed records one finished batch of n items and returns the state
// after it.
func (p *Progress) AddProcessed(n int) ProgressSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.processedItems += n
	p.processedBatches++
	p.lastUpdate = time.Now()
	return p.snapshotLocked()
}

// Snapshot returns the current state.
func (p *Progress) Snapshot() ProgressSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *Progress) snapshotLocked() ProgressSnapshot {
	return ProgressSnapshot{
		TotalItems:       p.totalItems,
		ProcessedItems:   p.processedItems,
		TotalBatches:     p.totalBatches,
		ProcessedBatches: p.processedBatches,
		BatchSize:        p.batchSize,
		StartTime:        p.startTime,
		LastUpdateTime:   p.lastUpdate,
	}
}

// ProgressSnapshot is a copy of the progress state at one point in time.
type ProgressSnapshot struct {
	TotalItems       int
	ProcessedItems   int
	TotalBatches     int
	ProcessedBatches int
	BatchSize        int
	StartTime        time.Time
	LastUpdateTime   time.Time
}

// PercentComplete returns the share of items done, from 0 to 100.
func (s ProgressSnapshot) PercentComplete() float64 {
	if s.TotalItems == 0 {
		return 0
	}
	return float64(s.ProcessedItems) / float64(s.TotalItems) * percentMultiplier
}

// IsComplete reports whether every item is done.
func (s ProgressSnapshot) IsComplete() bool {
	return s.ProcessedItems >= s.TotalItems
}

// Elapsed is the time between the start and the last update.
func (s ProgressSnapshot) Elapsed() time.Duration {
	return s.LastUpdateTime.Sub(s.StartTime)
}

// ItemsPerSecond is the average rate up to the last update.
func (s ProgressSnapshot) ItemsPerSecond() float64 {
	secs := s.Elapsed().Seconds()
	if secs == 0 {
		return 0
	}
	return float64(s.ProcessedItems) / secs
}

// EstimatedTimeRemaining extrapolates the average time per item. It is zero
// before the first item is done.
func (s ProgressSnapshot) EstimatedTimeRemaining() time.Duration {
	if s.ProcessedItems == 0 {
		return 0
	}
	perItem := s.Elapsed() / time.Duration(s.ProcessedItems)
	return perItem * time.Duration(s.TotalItems-s.ProcessedItems)
}
