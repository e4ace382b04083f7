// Package ids generates opaque task identifiers.
package ids

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/knakagawa/taskpad/internal/domain"
)

// Ensure Generator implements domain.IDGenerator.
var _ domain.IDGenerator = (*Generator)(nil)

// Generator produces random hex task IDs.
type Generator struct {
	mu      sync.Mutex
	counter uint64
}

// New creates a new Generator.
func New() *Generator {
	return &Generator{}
}

// NewID returns a fresh unique task ID. IDs are 16 hex characters from
// crypto/rand; if the system randomness source is unavailable, a
// timestamp-and-counter ID is used so that NewID never fails.
func (g *Generator) NewID() string {
	var b [8]byte
	if _, err := io.ReadFull(rand.Reader, b[:]); err == nil {
		return hex.EncodeToString(b[:])
	}

	g.mu.Lock()
	g.counter++
	c := g.counter
	g.mu.Unlock()
	return fmt.Sprintf("t%x-%x", time.Now().UnixNano(), c)
}
