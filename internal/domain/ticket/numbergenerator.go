package ticket

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// NumberGenerator produces human-readable ticket numbers. Numbers are
// display-only; lookups always go through the numeric ID.
type NumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// DefaultNumberGenerator issues TK-YYYYMMDD-NNNN numbers with a counter
// that restarts each UTC day. The counter is process-local; uniqueness of
// stored numbers is enforced by the database.
type DefaultNumberGenerator struct {
	mu      sync.Mutex
	day     string
	counter int
}

func NewDefaultNumberGenerator() *DefaultNumberGenerator {
	return &DefaultNumberGenerator{}
}

func (g *DefaultNumberGenerator) Generate(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	day := time.Now().UTC().Format("20060102")
	if day != g.day {
		g.day = day
		g.counter = 0
	}
	g.counter++

	return fmt.Sprintf("TK-%s-%04d", day, g.counter), nil
}
