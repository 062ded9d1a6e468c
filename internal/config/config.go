/*
Package config holds the configuration of the acsearch command.

Configuration values are looked up, in order of precedence, from command line
flags, environment variables prefixed with ACSEARCH_ (dashes and dots replaced
by underscores), an optional configuration file given by --config, and
built-in defaults.

Besides the typed Config, the same source is exposed as a
schuko.Configuration, from which tracing reads its adapter and trace levels:

	tracing:
	  adapter: zerolog      # or "go", "zerolog-console"
	tracelevel:
	  root: Error
	  acsearch: Info
	  tsvdict: Debug
*/
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding configuration.
const EnvPrefix = "ACSEARCH"

// Config holds the settings of a search run.
type Config struct {
	DictionaryFile  string   `mapstructure:"dictionary-file"`
	TextFiles       []string `mapstructure:"text-file"`
	OutputFile      string   `mapstructure:"output-file"`
	CaseInsensitive bool     `mapstructure:"case-insensitive"`
	WordBounds      bool     `mapstructure:"word-bounds"`
	NFC             bool     `mapstructure:"nfc"`
	YAML            bool     `mapstructure:"yaml"`
	Workers         int      `mapstructure:"workers"`
}

// Validate checks for missing or inconsistent settings.
func (c *Config) Validate() error {
	if c.DictionaryFile == "" {
		return errors.New("dictionary file is required")
	}
	if len(c.TextFiles) == 0 {
		return errors.New("at least one text file is required")
	}
	if c.OutputFile == "" {
		return errors.New("output file must not be empty")
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid number of workers: %d", c.Workers)
	}
	return nil
}

// NewFlagSet creates the command line flags of the acsearch command.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("dictionary-file", "d", "", "file containing the dictionary of keywords to find")
	fs.StringArrayP("text-file", "t", nil, "file containing text to search in (repeatable)")
	fs.StringP("output-file", "o", "output.tsv", "file to write matches to, '-' for stdout")
	fs.BoolP("case-insensitive", "c", false, "make matches case-insensitive")
	fs.BoolP("word-bounds", "w", false, "report only matches delimited by word boundaries")
	fs.Bool("nfc", false, "normalize dictionary and texts to Unicode NFC")
	fs.Bool("yaml", false, "dictionary file is YAML instead of TSV")
	fs.Int("workers", 0, "number of texts searched concurrently (0 = number of CPUs)")
	fs.String("config", "", "configuration file (YAML, TOML or JSON)")
	return fs
}

// Settings is the configuration source of a run. It implements
// schuko.Configuration.
type Settings struct {
	v *viper.Viper
}

var _ schuko.Configuration = &Settings{}

// New creates a configuration source holding the defaults only.
func New() *Settings {
	s := &Settings{v: viper.New()}
	s.InitDefaults()
	s.v.SetEnvPrefix(EnvPrefix)
	s.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	s.v.AutomaticEnv()
	return s
}

// Load creates a configuration source from parsed command line flags, the
// environment and, if flag --config names one, a configuration file.
func Load(flags *pflag.FlagSet) (*Settings, *Config, error) {
	s := New()
	if err := s.v.BindPFlags(flags); err != nil {
		return nil, nil, fmt.Errorf("binding flags: %w", err)
	}
	if path := s.v.GetString("config"); path != "" {
		s.v.SetConfigFile(path)
		if err := s.v.ReadInConfig(); err != nil {
			return nil, nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	conf := &Config{}
	if err := s.v.Unmarshal(conf); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return s, conf, nil
}

// InitDefaults sets the built-in defaults.
func (s *Settings) InitDefaults() {
	s.v.SetDefault("output-file", "output.tsv")
	s.v.SetDefault("workers", 0)
	s.v.SetDefault("tracing.adapter", "go")
	s.v.SetDefault("tracing.online", false)
	s.v.SetDefault("tracelevel.root", "Error")
	s.v.SetDefault("tracelevel.acsearch", "Error")
}

// Set overrides a configuration value.
func (s *Settings) Set(key string, value interface{}) {
	s.v.Set(key, value)
}

// IsSet is a predicate whether a configuration key has a value.
func (s *Settings) IsSet(key string) bool {
	return s.v.IsSet(key)
}

// GetString returns a configuration property as a string.
func (s *Settings) GetString(key string) string {
	return s.v.GetString(key)
}

// GetInt returns a configuration property as an integer.
func (s *Settings) GetInt(key string) int {
	return s.v.GetInt(key)
}

// GetBool returns a configuration property as a boolean value.
func (s *Settings) GetBool(key string) bool {
	return s.v.GetBool(key)
}

// IsInteractive reports configuration key "tracing.online".
func (s *Settings) IsInteractive() bool {
	return s.v.GetBool("tracing.online")
}
