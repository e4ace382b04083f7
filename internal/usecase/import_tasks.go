package usecase

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knakagawa/taskpad/internal/domain"
	"gopkg.in/yaml.v3"
)

// ImportTasksInput contains the parameters for importing tasks.
type ImportTasksInput struct {
	Path string // YAML file to read
}

// ImportTasksOutput contains the result of importing tasks.
type ImportTasksOutput struct {
	Imported int // Number of tasks added
	Skipped  int // Entries dropped for empty trimmed text
}

// taskEntry is one entry in an import file.
type taskEntry struct {
	Text      string `yaml:"text"`
	Completed bool   `yaml:"completed"`
}

// ImportTasks is the use case for bulk-adding tasks from a YAML file.
// The file is a sequence of entries:
//
//	- text: Buy milk
//	- text: Ship release
//	  completed: true
//
// Unlike the interactive commands, a missing or malformed file is a
// real error reported to the user.
type ImportTasks struct {
	list   *domain.TaskList
	store  domain.TaskStore
	ids    domain.IDGenerator
	clock  domain.Clock
	logger domain.Logger
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(list *domain.TaskList, store domain.TaskStore, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *ImportTasks {
	return &ImportTasks{
		list:   list,
		store:  store,
		ids:    ids,
		clock:  clock,
		logger: logger,
	}
}

// Execute adds one task per usable entry, in file order. Entries are
// added newest-first like interactive adds, so the last entry of the
// file ends up at the top of the list.
func (uc *ImportTasks) Execute(_ context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	content, err := os.ReadFile(in.Path)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}

	var entries []taskEntry
	if err := yaml.Unmarshal(content, &entries); err != nil {
		return nil, fmt.Errorf("parse import file: %w", err)
	}

	out := &ImportTasksOutput{}
	for _, e := range entries {
		if strings.TrimSpace(e.Text) == "" {
			out.Skipped++
			continue
		}
		task := uc.list.Add(uc.ids.NewID(), e.Text, uc.clock.Now())
		if task == nil {
			out.Skipped++
			continue
		}
		if e.Completed {
			uc.list.Toggle(task.ID)
		}
		out.Imported++
	}

	if out.Imported > 0 {
		persist(uc.list, uc.store, uc.logger)
	}

	if uc.logger != nil {
		uc.logger.Info("import", fmt.Sprintf("imported %d tasks from %s", out.Imported, in.Path))
	}

	return out, nil
}
