// Package testutil provides shared test doubles.
package testutil

import (
	"fmt"
	"time"

	"github.com/knakagawa/taskpad/internal/domain"
)

// MockStore is a test double for domain.TaskStore. It records every
// saved snapshot and can be primed with load data or a save failure.
// Fields are ordered to minimize memory padding.
type MockStore struct {
	SaveErr   error
	LoadTasks []*domain.Task
	Saved     [][]*domain.Task
}

// Load returns the primed tasks.
func (m *MockStore) Load() []*domain.Task {
	return m.LoadTasks
}

// Save records the snapshot, or fails with SaveErr if set.
func (m *MockStore) Save(tasks []*domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	snapshot := make([]*domain.Task, len(tasks))
	copy(snapshot, tasks)
	m.Saved = append(m.Saved, snapshot)
	return nil
}

// LastSaved returns the most recent snapshot, or nil if none.
func (m *MockStore) LastSaved() []*domain.Task {
	if len(m.Saved) == 0 {
		return nil
	}
	return m.Saved[len(m.Saved)-1]
}

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the fixed time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// SeqIDs is a test double for domain.IDGenerator producing
// "id-1", "id-2", ...
type SeqIDs struct {
	N int
}

// NewID returns the next sequential ID.
func (s *SeqIDs) NewID() string {
	s.N++
	return fmt.Sprintf("id-%d", s.N)
}

// Ensure the doubles satisfy their ports.
var (
	_ domain.TaskStore   = (*MockStore)(nil)
	_ domain.Clock       = (*MockClock)(nil)
	_ domain.IDGenerator = (*SeqIDs)(nil)
)
