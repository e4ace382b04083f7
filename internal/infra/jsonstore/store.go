// Package jsonstore provides the JSON file implementation of TaskStore.
//
// The data directory is the storage medium and the tasks file name is
// the fixed key; its value is a JSON array of task records. The medium
// is treated as occasionally hostile (quota limits, read-only mounts,
// stale schema from a prior version): Load absorbs any malformed input
// and Save failures are reported but never fatal.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knakagawa/taskpad/internal/domain"
)

// record is the wire representation of a task.
// Fields are ordered to minimize memory padding.
type record struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"` // Epoch milliseconds
	Completed bool   `json:"completed"`
}

// Store implements domain.TaskStore using a JSON file.
type Store struct {
	ids  domain.IDGenerator
	path string
}

// New creates a new Store for the given file path. The file does not
// need to exist; it is created on first save. The ID generator supplies
// replacement IDs for loaded records whose ID is missing or invalid.
func New(path string, ids domain.IDGenerator) *Store {
	return &Store{
		path: path,
		ids:  ids,
	}
}

// Load reads the task collection. Missing file, unreadable file,
// invalid JSON, or a non-array payload all yield an empty collection.
// Individual elements are coerced field by field; elements whose text
// is empty after trimming are dropped. Load never fails.
func (s *Store) Load() []*domain.Task {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil
	}

	now := time.Now()
	seen := make(map[string]bool, len(raw))
	tasks := make([]*domain.Task, 0, len(raw))
	for _, el := range raw {
		var fields map[string]any
		if err := json.Unmarshal(el, &fields); err != nil {
			continue
		}
		task := s.coerce(fields, now)
		if task == nil {
			continue
		}
		if seen[task.ID] {
			// Duplicate IDs from a corrupt file: keep the task, reassign.
			task.ID = s.ids.NewID()
		}
		seen[task.ID] = true
		tasks = append(tasks, task)
	}
	return tasks
}

// coerce builds a task from loosely-typed JSON fields, defaulting each
// field to its expected type. Unknown fields are ignored. Returns nil
// when the resulting text is empty.
func (s *Store) coerce(fields map[string]any, now time.Time) *domain.Task {
	text, _ := fields["text"].(string)
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	id, _ := fields["id"].(string)
	if id == "" {
		id = s.ids.NewID()
	}

	completed, _ := fields["completed"].(bool)

	created := now
	if ms, ok := fields["createdAt"].(float64); ok && ms > 0 {
		created = time.UnixMilli(int64(ms))
	}

	return &domain.Task{
		ID:        id,
		Text:      text,
		Completed: completed,
		CreatedAt: created,
	}
}

// Save serializes the full collection and overwrites the prior state.
// The write goes to a temp file first, then renames for atomicity.
func (s *Store) Save(tasks []*domain.Task) error {
	records := make([]record, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, record{
			ID:        t.ID,
			Text:      t.Text,
			Completed: t.Completed,
			CreatedAt: t.CreatedAt.UnixMilli(),
		})
	}

	content, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements TaskStore.
var _ domain.TaskStore = (*Store)(nil)
