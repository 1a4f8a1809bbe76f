// Package pty implements the persisted table mapping FM broadcast
// frequencies to program type (PTY) and station name metadata.
//
// The table is not safe for concurrent use. Callers sharing a Table between
// goroutines must serialize access themselves.
package pty

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// MatchToleranceKHz defines the max. distance between a queried frequency
// and a table entry for the entry to match, when there is no exact match.
const MatchToleranceKHz = 100

// TableConfig holds the table configuration.
type TableConfig struct {
	// Path of the persisted file within the filesystem.
	Path string

	// Schema of the persisted file.
	Schema Schema

	// Seed is installed by Load when the persisted file does not exist.
	// When nil, Load leaves the table empty in that case.
	Seed []Entry
}

// Table is an ordered list of entries, backed by a CSV file.
type Table struct {
	fs      afero.Fs
	path    string
	schema  Schema
	seed    []Entry
	entries []Entry
}

// NewTable creates a new (empty) table. Call Load to populate it.
func NewTable(fs afero.Fs, c TableConfig) *Table {
	schema := c.Schema
	if schema == "" {
		schema = SchemaCode
	}

	var seed []Entry
	if c.Seed != nil {
		seed = make([]Entry, len(c.Seed))
		copy(seed, c.Seed)
	}

	return &Table{
		fs:     fs,
		path:   c.Path,
		schema: schema,
		seed:   seed,
	}
}

// Path returns the path of the persisted file.
func (t *Table) Path() string {
	return t.path
}

// Schema returns the schema of the persisted file.
func (t *Table) Schema() Schema {
	return t.schema
}

// Load clears the table and (re)populates it from the persisted file. When
// the file does not exist, the seed list is installed (if configured).
//
// Malformed lines are skipped and result in StatusMalformed, the valid
// entries are still loaded. When the file can not be opened or read,
// StatusIOError is returned.
func (t *Table) Load() Status {
	t.entries = nil

	log.WithField("path", t.path).Debug("pty: loading table")

	exists, err := afero.Exists(t.fs, t.path)
	if err != nil {
		log.WithError(err).WithField("path", t.path).Error("pty: stat table file error")
		tableLoadCounter("error").Inc()
		return StatusIOError
	}

	if !exists {
		log.WithField("path", t.path).Info("pty: table file does not exist")
		if t.seed != nil {
			t.LoadSeed()
		} else {
			tableLoadCounter("empty").Inc()
		}
		return StatusOK
	}

	f, err := t.fs.Open(t.path)
	if err != nil {
		log.WithError(err).WithField("path", t.path).Error("pty: open table file error")
		tableLoadCounter("error").Inc()
		return StatusIOError
	}
	defer f.Close()

	st, err := t.read(f)
	if err != nil {
		log.WithError(err).WithField("path", t.path).Error("pty: read table file error")
		tableLoadCounter("error").Inc()
		return StatusIOError
	}

	log.WithFields(log.Fields{
		"path":  t.path,
		"count": len(t.entries),
	}).Info("pty: table loaded")
	tableLoadCounter("file").Inc()

	return st
}

func (t *Table) read(r io.Reader) (Status, error) {
	st := StatusOK
	br := bufio.NewReader(r)

	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return st, errors.Wrap(err, "read line error")
		}

		if line != "" {
			e, ok, lst := ParseLine(line, t.schema)
			if lst == StatusMalformed {
				st = StatusMalformed
				log.WithFields(log.Fields{
					"path": t.path,
					"line": lineNo,
				}).Warning("pty: malformed line")
			}
			if ok {
				t.entries = append(t.entries, e)
				log.WithFields(log.Fields{
					"frequency_khz": e.FrequencyKHz,
					"tag":           e.Tag,
					"code":          e.Code,
					"name":          e.Name,
				}).Debug("pty: entry loaded")
			}
		}

		if err == io.EOF {
			return st, nil
		}
	}
}

// LoadSeed replaces the table content with the configured seed list.
func (t *Table) LoadSeed() {
	t.entries = make([]Entry, len(t.seed))
	copy(t.entries, t.seed)

	log.WithField("count", len(t.entries)).Info("pty: seed list loaded")
	tableLoadCounter("seed").Inc()
}

// Save writes the table to the persisted file, replacing its content.
func (t *Table) Save() Status {
	f, err := t.fs.OpenFile(t.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		log.WithError(err).WithField("path", t.path).Error("pty: open table file for writing error")
		tableSaveCounter(StatusIOError).Inc()
		return StatusIOError
	}

	err = t.write(f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = errors.Wrap(cerr, "close error")
	}
	if err != nil {
		log.WithError(err).WithField("path", t.path).Error("pty: write table file error")
		tableSaveCounter(StatusIOError).Inc()
		return StatusIOError
	}

	log.WithFields(log.Fields{
		"path":  t.path,
		"count": len(t.entries),
	}).Debug("pty: table saved")
	tableSaveCounter(StatusOK).Inc()

	return StatusOK
}

func (t *Table) write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range t.entries {
		if _, err := bw.WriteString(FormatLine(e, t.schema) + "\n"); err != nil {
			return errors.Wrap(err, "write line error")
		}
	}
	return errors.Wrap(bw.Flush(), "flush error")
}

// Count returns the number of entries.
func (t *Table) Count() int {
	return len(t.entries)
}

// Get returns the entry at the given index. The zero Entry is returned when
// the index is out of range.
func (t *Table) Get(i int) Entry {
	if i < 0 || i >= len(t.entries) {
		return Entry{}
	}
	return t.entries[i]
}

// Entries returns a copy of all entries, in table order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Find returns the entry for the given frequency. The first entry with an
// exact frequency match wins. When there is none, the first entry (in table
// order, not the nearest one) within MatchToleranceKHz is returned.
func (t *Table) Find(freqKHz uint32) (Entry, Status) {
	for _, e := range t.entries {
		if e.FrequencyKHz == freqKHz {
			lookupCounter("exact").Inc()
			return e, StatusOK
		}
	}

	for _, e := range t.entries {
		if absDiff(e.FrequencyKHz, freqKHz) <= MatchToleranceKHz {
			lookupCounter("tolerance").Inc()
			return e, StatusOK
		}
	}

	lookupCounter("miss").Inc()
	return Entry{}, StatusNotFound
}

// FindTag returns the tag for the given frequency, or an empty string.
func (t *Table) FindTag(freqKHz uint32) string {
	e, _ := t.Find(freqKHz)
	return e.Tag
}

// FindCode returns the program type code for the given frequency, or -1.
func (t *Table) FindCode(freqKHz uint32) int {
	e, st := t.Find(freqKHz)
	if st != StatusOK {
		return -1
	}
	return int(e.Code)
}

// FindName returns the station name for the given frequency, or an empty
// string.
func (t *Table) FindName(freqKHz uint32) string {
	e, _ := t.Find(freqKHz)
	return e.Name
}

// Add appends the given entry and saves the table.
func (t *Table) Add(e Entry) Status {
	t.entries = append(t.entries, e)

	log.WithFields(log.Fields{
		"frequency_khz": e.FrequencyKHz,
		"tag":           e.Tag,
		"code":          e.Code,
		"name":          e.Name,
	}).Info("pty: entry added")

	return t.Save()
}

// Remove deletes the entry at the given index and saves the table. An out
// of range index is a no-op and returns StatusNotFound.
func (t *Table) Remove(i int) Status {
	if i < 0 || i >= len(t.entries) {
		return StatusNotFound
	}

	e := t.entries[i]
	t.entries = append(t.entries[:i], t.entries[i+1:]...)

	log.WithFields(log.Fields{
		"index":         i,
		"frequency_khz": e.FrequencyKHz,
	}).Info("pty: entry removed")

	return t.Save()
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
