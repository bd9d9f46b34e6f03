package file

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"my-daily-planner/internal/task/repository"
	"my-daily-planner/pkg/log"
)

type implRepository struct {
	fs   afero.Fs
	path string
	l    log.Logger
}

// New creates a Repository that keeps the task slot as <dir>/tasks.json on fs.
func New(fs afero.Fs, opt repository.FileOptions, l log.Logger) repository.Repository {
	if fs == nil {
		panic("task/repository/file: fs is required")
	}
	dir := opt.Dir
	if dir == "" {
		dir = "."
	}
	return &implRepository{
		fs:   fs,
		path: filepath.Join(dir, repository.SlotKey+".json"),
		l:    l,
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/file.%s", method)
}
