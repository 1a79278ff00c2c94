package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fwojciec/fontloc"
	"github.com/fwojciec/fontloc/localize"
	"gopkg.in/yaml.v3"
)

// BuildConfig is the build file read by the build command.
type BuildConfig struct {
	FontDirectory    string         `yaml:"fontDirectory" toml:"fontDirectory"`
	MountPrefix      string         `yaml:"mountPrefix" toml:"mountPrefix"`
	DefaultFallbacks []string       `yaml:"defaultFallbacks" toml:"defaultFallbacks"`
	Stylesheets      []string       `yaml:"remoteFontFaceStylesheetURLs" toml:"remoteFontFaceStylesheetURLs"`
	Fonts            []fontloc.Font `yaml:"fonts" toml:"fonts"`
}

// LoadConfig reads and validates a build file, filling in defaults.
// Files ending in .toml are decoded as TOML, everything else as YAML.
func LoadConfig(path string) (*BuildConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fontloc.Errorf(fontloc.ENOTFOUND, "config file not found: %s", path)
	} else if err != nil {
		return nil, err
	}

	var cfg BuildConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fontloc.Errorf(fontloc.EINVALID, "invalid config %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.FontDirectory == "" {
		cfg.FontDirectory = localize.DefaultAssetDir
	}
	if cfg.MountPrefix == "" {
		cfg.MountPrefix = localize.DefaultMountPrefix
	}
	return &cfg, nil
}

// Validate returns an error if the config contains invalid fields.
func (c *BuildConfig) Validate() error {
	if len(c.Stylesheets) == 0 && len(c.Fonts) == 0 {
		return fontloc.Errorf(fontloc.EINVALID, "config lists no stylesheets or fonts")
	}
	for i := range c.Fonts {
		if err := c.Fonts[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
