package testutil

import (
	"fmt"
	"sync"
)

// SequentialIDs returns "<prefix>-0001", "<prefix>-0002", ... for deterministic
// report identifiers in tests and golden files.
//
// Thread-safety: safe for concurrent use via internal mutex.
type SequentialIDs struct {
	mu     sync.Mutex
	prefix string
	n      int
}

// NewSequentialIDs creates a generator. An empty prefix defaults to "report".
func NewSequentialIDs(prefix string) *SequentialIDs {
	if prefix == "" {
		prefix = "report"
	}
	return &SequentialIDs{prefix: prefix}
}

// Generate returns the next identifier.
func (g *SequentialIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%04d", g.prefix, g.n)
}
