// Package test contains helpers shared by the package tests.
package test

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/josepacelli/pty-table/internal/config"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

// GetConfig returns the test configuration.
func GetConfig() config.Config {
	log.SetLevel(log.ErrorLevel)

	var c config.Config
	c.General.LogLevel = int(log.ErrorLevel)
	c.Table.DataDir = os.TempDir()
	c.Table.File = "/custom_ptys.csv"
	c.Table.Schema = "code"
	c.Table.Seed = "fortaleza"

	if v := os.Getenv("TEST_DATA_DIR"); v != "" {
		c.Table.DataDir = v
	}

	return c
}

// MustWriteFile writes the given content to path, or exits.
func MustWriteFile(fs afero.Fs, path, content string) {
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		log.Fatal(err)
	}
}

// MustReadFile returns the content of path, or exits.
func MustReadFile(fs afero.Fs, path string) string {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		log.Fatal(err)
	}
	return string(b)
}

// ErrInjected is returned by FailingFs.
var ErrInjected = errors.New("injected filesystem error")

// FailingFs wraps an afero.Fs and fails file operations, depending on the
// flags that are set.
type FailingFs struct {
	afero.Fs

	FailOpen  bool
	FailWrite bool
	FailStat  bool

	// FailReadAfter makes reads of opened files fail once the given number
	// of bytes has been read. Zero disables the failure.
	FailReadAfter int
}

// NewFailingFs returns a new FailingFs backed by an in-memory filesystem.
func NewFailingFs() *FailingFs {
	return &FailingFs{Fs: afero.NewMemMapFs()}
}

// Open implements afero.Fs.
func (f *FailingFs) Open(name string) (afero.File, error) {
	if f.FailOpen {
		return nil, ErrInjected
	}
	return f.wrap(f.Fs.Open(name))
}

// OpenFile implements afero.Fs.
func (f *FailingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if f.FailWrite && flag&(os.O_WRONLY|os.O_RDWR) != 0 {
		return nil, ErrInjected
	}
	if f.FailOpen && flag&(os.O_WRONLY|os.O_RDWR) == 0 {
		return nil, ErrInjected
	}
	return f.wrap(f.Fs.OpenFile(name, flag, perm))
}

// Stat implements afero.Fs.
func (f *FailingFs) Stat(name string) (os.FileInfo, error) {
	if f.FailStat {
		return nil, ErrInjected
	}
	return f.Fs.Stat(name)
}

func (f *FailingFs) wrap(file afero.File, err error) (afero.File, error) {
	if err != nil || f.FailReadAfter <= 0 {
		return file, err
	}
	return &failingFile{File: file, remaining: f.FailReadAfter}, nil
}

type failingFile struct {
	afero.File
	remaining int
}

func (f *failingFile) Read(p []byte) (int, error) {
	if f.remaining <= 0 {
		return 0, ErrInjected
	}
	if len(p) > f.remaining {
		p = p[:f.remaining]
	}
	n, err := f.File.Read(p)
	f.remaining -= n
	return n, err
}
