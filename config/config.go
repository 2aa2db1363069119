package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings understood by crossfill. Every one of these can be supplied as a
// command-line flag (--data-path=...), as an environment variable
// (CROSSFILL_DATA_PATH=...), or left at its default.
const (
	DataPath     = "data-path"
	Debug        = "debug"
	Randomize    = "randomize"
	SolveTimeout = "solve-timeout"
	CPUProfile   = "cpu-profile"
	Batch        = "batch"
)

type Config struct {
	v    *viper.Viper
	args []string
}

// Load parses the given command-line arguments (typically os.Args[1:]) and
// binds them, along with CROSSFILL_-prefixed environment variables, on top
// of the defaults.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("crossfill", pflag.ContinueOnError)
	fs.String(DataPath, "./data", "directory holding structure and word files")
	fs.Bool(Debug, false, "enable debug logging")
	fs.Bool(Randomize, false, "randomize heuristic tie-breaks")
	fs.Duration(SolveTimeout, 0, "abandon a solve after this long (0 = no limit)")
	fs.String(CPUProfile, "", "write a CPU profile to this file")
	fs.String(Batch, "", "solve every job in this YAML file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c.v = viper.New()
	c.v.SetEnvPrefix("crossfill")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	if err := c.v.BindPFlags(fs); err != nil {
		return err
	}
	c.args = fs.Args()
	return nil
}

// Args returns the positional arguments left over after flag parsing.
func (c *Config) Args() []string {
	return c.args
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetDuration(key string) time.Duration {
	return c.v.GetDuration(key)
}

func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

// AdjustRelativePaths rebases any relative path settings onto the given
// executable directory, so that running the binary from anywhere still finds
// its data files.
func (c *Config) AdjustRelativePaths(exPath string) {
	for _, key := range []string{DataPath} {
		p := c.v.GetString(key)
		if p != "" && !filepath.IsAbs(p) {
			c.v.Set(key, filepath.Join(exPath, p))
		}
	}
}

// AllSettings returns every setting for display at startup.
func (c *Config) AllSettings() map[string]any {
	return c.v.AllSettings()
}
