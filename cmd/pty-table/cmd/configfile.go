package cmd

import (
	"text/template"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/josepacelli/pty-table/internal/config"
)

// when updating this template, don't forget to update the defaults in root.go!
const configTemplate = `[general]
# Log level
#
# debug=5, info=4, warning=3, error=2, fatal=1, panic=0
log_level={{ .General.LogLevel }}

# Log to syslog.
#
# When set to true, log messages are being written to syslog.
log_to_syslog={{ .General.LogToSyslog }}


# PTY table settings.
[table]
# Data directory.
#
# This is the mount root of the (flash) filesystem holding the table file.
# It is created when it does not exist.
data_dir="{{ .Table.DataDir }}"

# Table file.
#
# Path of the CSV file, relative to the data directory. Each line holds
# <frequency>,<metadata>. The frequency is written in MHz (e.g. 102.7 or
# 99), or in kHz from 2000 MHz on. When reading, integer values below 2000
# are MHz, other integer values are kHz.
file="{{ .Table.File }}"

# Schema of the metadata.
#
# Valid options are:
# * tag  - free-text program type: <frequency>,<tag>
# * code - RDS program type code (0 - 31) and optional station name:
#          <frequency>,<code>[,<name>]
schema="{{ .Table.Schema }}"

# Seed list.
#
# The seed list is installed when the table file does not exist. It is
# written to the table file on the first add or remove.
#
# Valid options are:
# * fortaleza - FM stations of Fortaleza (CE, Brazil)
# * none      - start with an empty table
seed="{{ .Table.Seed }}"


# Monitoring settings.
#
# The monitoring endpoint is started by the 'serve' command.
[monitoring]
# IP:port to bind the monitoring endpoint to.
#
# When left blank, the monitoring endpoint will be disabled.
bind="{{ .Monitoring.Bind }}"

# Prometheus metrics endpoint (/metrics).
prometheus_endpoint={{ .Monitoring.PrometheusEndpoint }}

# Healthcheck endpoint (/health).
#
# This returns 200 OK when the data directory is accessible.
healthcheck_endpoint={{ .Monitoring.HealthcheckEndpoint }}

# Table API endpoint.
#
# GET /api/ptys returns all entries, GET /api/ptys/lookup?frequency=102.7
# returns the entry matching the given frequency (within 100 kHz).
api_endpoint={{ .Monitoring.APIEndpoint }}
`

var configCmd = &cobra.Command{
	Use:   "configfile",
	Short: "Print the pty-table configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		t := template.Must(template.New("config").Parse(configTemplate))
		err := t.Execute(cmd.OutOrStdout(), &config.C)
		if err != nil {
			return errors.Wrap(err, "execute config template error")
		}
		return nil
	},
}
