package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// fileConfig holds per-user defaults for the geometry flags. A flag given
// on the command line always wins over the file.
type fileConfig struct {
	OuterMargin string   `yaml:"omargin"`
	InnerMargin string   `yaml:"imargin"`
	Bleed       string   `yaml:"bleed"`
	Creep       string   `yaml:"creep"`
	Paper       string   `yaml:"paper"`
	Bind        string   `yaml:"bind"`
	Marks       []string `yaml:"marks"`
}

// defaultConfigPath is the conventional location of the defaults file.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "bindery", "config.yaml")
}

// loadConfig reads the defaults file at path, or the conventional location
// when path is empty. A missing file at the conventional location is not an
// error; an explicitly named file must exist.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// apply fills flag values the user did not set from the defaults file.
func (c fileConfig) apply(flags *pflag.FlagSet, opts *imposeFlags) {
	set := func(name string, dst *string, val string) {
		if val != "" && !flags.Changed(name) {
			*dst = val
		}
	}
	set("omargin", &opts.omargin, c.OuterMargin)
	set("imargin", &opts.imargin, c.InnerMargin)
	set("bleed", &opts.bleed, c.Bleed)
	set("bind", &opts.bind, c.Bind)
	set("paper", &opts.paperSize, c.Paper)
	if flags.Lookup("creep") != nil {
		set("creep", &opts.creep, c.Creep)
	}
	if len(c.Marks) > 0 && !flags.Changed("mark") {
		opts.mark = c.Marks
	}
}
