// Package usecase contains application use cases.
package usecase

import (
	"fmt"

	"github.com/knakagawa/taskpad/internal/domain"
)

// persist saves the full collection after a mutation. Persistence is
// best-effort: on failure the in-memory state stands, the error is
// logged, and the caller proceeds as if storage were absent.
func persist(list *domain.TaskList, store domain.TaskStore, logger domain.Logger) {
	if err := store.Save(list.Tasks()); err != nil && logger != nil {
		logger.Warn("store", fmt.Sprintf("save failed: %v", err))
	}
}
