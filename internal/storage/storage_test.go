package storage

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/josepacelli/pty-table/internal/pty"
	"github.com/josepacelli/pty-table/internal/test"
)

func TestSetup(t *testing.T) {
	t.Run("Seed fallback", func(t *testing.T) {
		assert := require.New(t)

		conf := test.GetConfig()
		conf.Table.DataDir = t.TempDir()
		assert.NoError(Setup(conf))
		assert.NoError(Ping())

		assert.Equal(39, Table().Count())
		assert.Equal(pty.SchemaCode, Table().Schema())

		assert.Equal(pty.StatusOK, Table().Add(pty.Entry{FrequencyKHz: 108000, Code: 3, Name: "TEST"}))

		b, err := afero.ReadFile(afero.NewOsFs(), filepath.Join(conf.Table.DataDir, conf.Table.File))
		assert.NoError(err)
		assert.Contains(string(b), "108,3,TEST\n")
	})

	t.Run("Existing file", func(t *testing.T) {
		assert := require.New(t)

		fs := afero.NewMemMapFs()
		test.MustWriteFile(fs, "/custom_ptys.csv", "102.7,Pop Music\n")

		conf := test.GetConfig()
		conf.Table.Schema = "tag"
		conf.Table.Seed = "none"
		assert.NoError(SetupFs(fs, conf))

		assert.Equal(1, Table().Count())
		assert.Equal("Pop Music", Table().FindTag(102700))
	})

	t.Run("Unreadable file", func(t *testing.T) {
		assert := require.New(t)

		content := "102.7,10,RADIO BEACH PARK\n99,20\n88.1,1,NEWS\n"
		fs := test.NewFailingFs()
		test.MustWriteFile(fs, "/custom_ptys.csv", content)
		fs.FailOpen = true

		conf := test.GetConfig()
		assert.Error(SetupFs(fs, conf))

		fs.FailOpen = false
		assert.Equal(content, test.MustReadFile(fs, "/custom_ptys.csv"))
	})

	t.Run("File failing mid-read", func(t *testing.T) {
		assert := require.New(t)

		content := "102.7,10,RADIO BEACH PARK\n99,20\n88.1,1,NEWS\n"
		fs := test.NewFailingFs()
		test.MustWriteFile(fs, "/custom_ptys.csv", content)
		fs.FailReadAfter = 10

		conf := test.GetConfig()
		assert.Error(SetupFs(fs, conf))

		fs.FailReadAfter = 0
		assert.Equal(content, test.MustReadFile(fs, "/custom_ptys.csv"))
	})

	t.Run("Invalid schema", func(t *testing.T) {
		assert := require.New(t)

		conf := test.GetConfig()
		conf.Table.Schema = "xml"
		assert.Error(SetupFs(afero.NewMemMapFs(), conf))
	})

	t.Run("Unknown seed", func(t *testing.T) {
		assert := require.New(t)

		conf := test.GetConfig()
		conf.Table.Seed = "lisbon"
		assert.Error(SetupFs(afero.NewMemMapFs(), conf))
	})

	t.Run("No data directory", func(t *testing.T) {
		assert := require.New(t)

		conf := test.GetConfig()
		conf.Table.DataDir = ""
		assert.Error(Setup(conf))
	})
}
