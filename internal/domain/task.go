// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"
	"time"
)

// Task is a single to-do item.
// Fields are ordered to minimize memory padding.
type Task struct {
	CreatedAt time.Time `json:"createdAt"` // Creation time (immutable)
	ID        string    `json:"id"`        // Opaque unique identifier (immutable)
	Text      string    `json:"text"`      // Trimmed, never empty inside a collection
	Completed bool      `json:"completed"` // Completion flag
}

// NewTask creates a task with the given ID and trimmed text.
// Returns nil if the trimmed text is empty.
func NewTask(id, text string, now time.Time) *Task {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return &Task{
		ID:        id,
		Text:      text,
		CreatedAt: now,
	}
}
