package config

// Version defines the pty-table version.
var Version string

// Config defines the configuration structure.
type Config struct {
	General struct {
		LogLevel    int  `mapstructure:"log_level"`
		LogToSyslog bool `mapstructure:"log_to_syslog"`
	} `mapstructure:"general"`

	Table struct {
		// DataDir is the mount root of the (flash) filesystem.
		DataDir string `mapstructure:"data_dir"`

		// File is the path of the CSV file, relative to DataDir.
		File string `mapstructure:"file"`

		// Schema is either 'tag' or 'code'.
		Schema string `mapstructure:"schema"`

		// Seed is the name of the seed list installed when File does not
		// exist ('none' to disable).
		Seed string `mapstructure:"seed"`
	} `mapstructure:"table"`

	Monitoring struct {
		Bind                string `mapstructure:"bind"`
		PrometheusEndpoint  bool   `mapstructure:"prometheus_endpoint"`
		HealthcheckEndpoint bool   `mapstructure:"healthcheck_endpoint"`
		APIEndpoint         bool   `mapstructure:"api_endpoint"`
	} `mapstructure:"monitoring"`
}

// C holds the global configuration.
var C Config
