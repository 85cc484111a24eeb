package ids

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Generator issues time-based identifiers of the form <prefix>_<unix ms>.
// Millisecond stamps never repeat within one generator: a second call in the
// same millisecond takes the next one.
type Generator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func New() *Generator {
	return &Generator{now: time.Now}
}

// WithClock returns a generator reading time from now.
func WithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

func (g *Generator) stamp() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return ms
}

// Next returns prefix_<ms>.
func (g *Generator) Next(prefix string) string {
	return prefix + "_" + strconv.FormatInt(g.stamp(), 10)
}

// Random returns prefix_<ms>_<random suffix>. Good enough to tell UI rows
// apart, not meant to be unguessable.
func (g *Generator) Random(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return g.Next(prefix) + "_" + suffix
}
