package store

import (
	"strconv"
	"sync"
	"time"
)

type IDGenerator interface {
	NextID() string
}

// TimestampIDs issues Unix-millisecond identifiers. When the clock has not
// moved past the previous id it issues previous+1 instead.
type TimestampIDs struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewTimestampIDs(now func() time.Time) *TimestampIDs {
	if now == nil {
		now = time.Now
	}
	return &TimestampIDs{now: now}
}

func (g *TimestampIDs) NextID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return strconv.FormatInt(id, 10)
}
