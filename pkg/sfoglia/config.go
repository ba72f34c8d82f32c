package sfoglia

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
)

// Options configures navigator initialization.
type Options struct {
	MountID  string `toml:"mount_id"`  // Id of the element whose contents are replaced on navigation
	LogPath  string `toml:"log_path"`  // Full path for the log file including filename (creates parent directories)
	LogLevel string `toml:"log_level"` // Minimum log level: "debug", "info", "warn", "error"
	Locale   string `toml:"locale"`    // BCP 47 tag for page content ("en", "it")
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		MountID:  constants.DefaultMountID,
		LogLevel: "info",
		Locale:   "en",
	}
}

// LoadOptions reads options from a TOML file, overlaying the defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	if _, err := toml.DecodeFile(path, &opts); err != nil {
		return Options{}, fmt.Errorf("sfoglia: loading options from %s: %w", path, err)
	}
	return opts, nil
}

// withDefaults fills zero-valued fields from DefaultOptions.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.MountID == "" {
		o.MountID = def.MountID
	}
	if o.LogLevel == "" {
		o.LogLevel = def.LogLevel
	}
	if o.Locale == "" {
		o.Locale = def.Locale
	}
	return o
}
