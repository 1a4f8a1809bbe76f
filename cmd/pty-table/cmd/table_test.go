package cmd

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, cfg string, args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(ioutil.Discard)
	rootCmd.SetArgs(append([]string{"-c", cfg}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, schema, seed string) (string, string) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "pty-table.toml")
	content := fmt.Sprintf(`[general]
log_level=2

[table]
data_dir="%s"
file="/custom_ptys.csv"
schema="%s"
seed="%s"
`, dir, schema, seed)
	require.NoError(t, ioutil.WriteFile(cfg, []byte(content), 0644))
	return cfg, filepath.Join(dir, "custom_ptys.csv")
}

func TestTableCommands(t *testing.T) {
	t.Run("Code schema with seed", func(t *testing.T) {
		assert := require.New(t)
		cfg, file := writeConfig(t, "code", "fortaleza")

		out, err := execute(t, cfg, "lookup", "102.7")
		assert.NoError(err)
		assert.Equal("102.7\tPop Music\tRADIO BEACH PARK FM 102.7\n", out)

		out, err = execute(t, cfg, "add", "108", "religion", "NEW", "STATION")
		assert.NoError(err)
		assert.Equal("added 108,20,NEW STATION at index 39\n", out)

		b, err := ioutil.ReadFile(file)
		assert.NoError(err)
		assert.Contains(string(b), "79.7,10,RADIO METROPOLITANA FM 79.7MHZ\n")
		assert.Contains(string(b), "108,20,NEW STATION\n")

		out, err = execute(t, cfg, "lookup", "108050")
		assert.NoError(err)
		assert.Equal("108\t20 (Religion)\tNEW STATION\n", out)

		_, err = execute(t, cfg, "add", "108", "polka")
		assert.Error(err)

		out, err = execute(t, cfg, "remove", "39")
		assert.NoError(err)
		assert.Equal("removed index 39\n", out)

		_, err = execute(t, cfg, "remove", "39")
		assert.Error(err)

		_, err = execute(t, cfg, "lookup", "108.2")
		assert.Error(err)

		out, err = execute(t, cfg, "seed")
		assert.NoError(err)
		assert.Equal("installed 39 entries\n", out)
	})

	t.Run("Tag schema without seed", func(t *testing.T) {
		assert := require.New(t)
		cfg, file := writeConfig(t, "tag", "none")

		out, err := execute(t, cfg, "list")
		assert.NoError(err)
		assert.Equal("INDEX  FREQUENCY  PTY  NAME\n", out)

		_, err = execute(t, cfg, "add", "102.7", "Pop Music")
		assert.NoError(err)
		_, err = execute(t, cfg, "add", "99", "Talk & News")
		assert.NoError(err)

		b, err := ioutil.ReadFile(file)
		assert.NoError(err)
		assert.Equal("102.7,Pop Music\n99,Talk & News\n", string(b))

		out, err = execute(t, cfg, "lookup", "99.05")
		assert.NoError(err)
		assert.Equal("99\tTalk & News\t\n", out)

		_, err = execute(t, cfg, "add", "101.3", "Jazz\nMusic")
		assert.Error(err)
		_, err = execute(t, cfg, "add", "101.3", "Jazz Music", "SMOOTH\r\nFM")
		assert.Error(err)

		b, err = ioutil.ReadFile(file)
		assert.NoError(err)
		assert.Equal("102.7,Pop Music\n99,Talk & News\n", string(b))

		_, err = execute(t, cfg, "seed")
		assert.Error(err)
	})
}

func TestConfigfileCommand(t *testing.T) {
	assert := require.New(t)
	cfg, _ := writeConfig(t, "tag", "none")

	out, err := execute(t, cfg, "configfile")
	assert.NoError(err)
	assert.Contains(out, `schema="tag"`)
	assert.Contains(out, `seed="none"`)
	assert.Contains(out, "log_level=2")
}
