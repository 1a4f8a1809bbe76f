package storage

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/josepacelli/pty-table/internal/config"
	"github.com/josepacelli/pty-table/internal/pty"
)

var (
	fs      afero.Fs
	dataDir string
	table   *pty.Table
)

// Setup mounts the data directory and loads the PTY table.
func Setup(c config.Config) error {
	log.Info("storage: setting up storage module")

	if c.Table.DataDir == "" {
		return errors.New("storage: table.data_dir must be configured")
	}

	log.WithField("data_dir", c.Table.DataDir).Info("storage: mounting data directory")
	if err := os.MkdirAll(c.Table.DataDir, 0755); err != nil {
		return errors.Wrap(err, "storage: create data directory error")
	}

	return SetupFs(afero.NewBasePathFs(afero.NewOsFs(), c.Table.DataDir), c)
}

// SetupFs sets up the storage module using the given (already mounted)
// filesystem. An error is returned when the table file exists but could
// not be read.
func SetupFs(f afero.Fs, c config.Config) error {
	schema, err := pty.ParseSchema(c.Table.Schema)
	if err != nil {
		return errors.Wrap(err, "storage: parse schema error")
	}

	seed, err := pty.Seed(c.Table.Seed)
	if err != nil {
		return errors.Wrap(err, "storage: get seed list error")
	}

	fs = f
	dataDir = c.Table.DataDir
	table = pty.NewTable(fs, pty.TableConfig{
		Path:   c.Table.File,
		Schema: schema,
		Seed:   seed,
	})

	st := table.Load()
	log.WithFields(log.Fields{
		"path":   c.Table.File,
		"schema": schema,
		"seed":   c.Table.Seed,
		"count":  table.Count(),
		"status": st,
	}).Info("storage: table loaded")

	// the table must not be saved over a file it could not read
	if st == pty.StatusIOError {
		return errors.Errorf("storage: load table %s error: %s", c.Table.File, st)
	}

	return nil
}

// FS returns the mounted filesystem.
func FS() afero.Fs {
	return fs
}

// DataDir returns the configured data directory.
func DataDir() string {
	return dataDir
}

// Table returns the PTY table.
func Table() *pty.Table {
	return table
}

// Ping checks that the mounted filesystem is accessible.
func Ping() error {
	if fs == nil {
		return errors.New("storage not setup")
	}

	if _, err := fs.Stat("/"); err != nil {
		return errors.Wrap(err, "stat data directory error")
	}
	return nil
}
