// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knakagawa/taskpad/internal/domain"
	"github.com/knakagawa/taskpad/internal/infra/config"
	"github.com/knakagawa/taskpad/internal/infra/ids"
	"github.com/knakagawa/taskpad/internal/infra/jsonstore"
	"github.com/knakagawa/taskpad/internal/infra/logging"
	"github.com/knakagawa/taskpad/internal/usecase"
)

// Paths holds the resolved application paths.
type Paths struct {
	DataDir   string // Data directory (tasks file, logs)
	ConfigDir string // Config directory
	StorePath string // Path to the tasks file
}

// Container provides dependency injection for the application.
// It holds the port implementations, the task list loaded once at
// startup, and factory methods for the use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks        domain.TaskStore
	Clock        domain.Clock
	IDs          domain.IDGenerator
	ConfigLoader domain.ConfigLoader

	// Pointer fields
	List   *domain.TaskList
	Logger *logging.Logger

	// Configuration
	Paths Paths
}

// New creates a new Container using the default XDG directories.
func New() (*Container, error) {
	configDir := config.DefaultConfigDir()
	configLoader := config.NewLoader(configDir)
	cfg, cfgErr := configLoader.Load() // invalid config falls back to defaults

	dataDir := defaultDataDir()

	storePath := cfg.Store.Path
	if storePath == "" {
		storePath = domain.StorePath(dataDir)
	}

	logger := logging.New(dataDir, logging.ParseLevel(cfg.Log.Level))
	if cfgErr != nil {
		logger.Warn("config", fmt.Sprintf("using defaults: %v", cfgErr))
	}

	gen := ids.New()
	store := jsonstore.New(storePath, gen)

	// The collection is loaded exactly once; the TaskList is the single
	// authority afterwards and every mutation writes it back whole.
	list := domain.NewTaskList(store.Load())

	return &Container{
		Tasks:        store,
		Clock:        domain.RealClock{},
		IDs:          gen,
		ConfigLoader: configLoader,
		List:         list,
		Logger:       logger,
		Paths: Paths{
			DataDir:   dataDir,
			ConfigDir: configDir,
			StorePath: storePath,
		},
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(list *domain.TaskList, store domain.TaskStore, clock domain.Clock, gen domain.IDGenerator) *Container {
	return &Container{
		Tasks: store,
		Clock: clock,
		IDs:   gen,
		List:  list,
	}
}

// Close releases container resources.
func (c *Container) Close() error {
	if c.Logger != nil {
		return c.Logger.Close()
	}
	return nil
}

// defaultDataDir returns the default data directory
// (XDG_DATA_HOME or ~/.local/share, plus the taskpad subdirectory).
func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return domain.DataDir(dataHome)
}

// logger returns the domain.Logger for use cases, nil when disabled.
func (c *Container) logger() domain.Logger {
	if c.Logger == nil {
		return nil
	}
	return c.Logger
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.List, c.Tasks, c.IDs, c.Clock, c.logger())
}

// ToggleTaskUseCase returns a new ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.List, c.Tasks, c.logger())
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.List, c.Tasks, c.logger())
}

// StartEditingUseCase returns a new StartEditing use case.
func (c *Container) StartEditingUseCase() *usecase.StartEditing {
	return usecase.NewStartEditing(c.List)
}

// CancelEditingUseCase returns a new CancelEditing use case.
func (c *Container) CancelEditingUseCase() *usecase.CancelEditing {
	return usecase.NewCancelEditing(c.List)
}

// SaveEditingUseCase returns a new SaveEditing use case.
func (c *Container) SaveEditingUseCase() *usecase.SaveEditing {
	return usecase.NewSaveEditing(c.List, c.Tasks, c.logger())
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.List)
}

// ClearCompletedUseCase returns a new ClearCompleted use case.
func (c *Container) ClearCompletedUseCase() *usecase.ClearCompleted {
	return usecase.NewClearCompleted(c.List, c.Tasks, c.logger())
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.List, c.Tasks, c.IDs, c.Clock, c.logger())
}
