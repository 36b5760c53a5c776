// Package config loads the ratcalc configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

const (
	DefaultPrecision = 10
	DefaultPrompt    = "> "
	DefaultLogLevel  = "error"
)

type Custom struct {
	Display struct {
		Precision int  `toml:"precision"`
		Canonical bool `toml:"canonical"`
	} `toml:"display"`
	REPL struct {
		Prompt  string `toml:"prompt"`
		History string `toml:"history"`
	} `toml:"repl"`
	Log struct {
		Level   string `toml:"level"`
		Filter  string `toml:"filter"`
		Limiter int    `toml:"limiter"`
	} `toml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() *Custom {
	var config Custom
	config.setDefaults(nil)
	return &config
}

// Initialize reads the TOML file at path. Missing settings get their default
// value.
func Initialize(file string) (*Custom, error) {
	f, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return Parse(f)
}

// Parse decodes a TOML document. Missing settings get their default value;
// settings present in the document are kept as is, zero values included.
func Parse(data []byte) (*Custom, error) {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return nil, err
	}
	var config Custom
	err = tree.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	config.setDefaults(tree)
	err = config.Validate()
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks settings that have no meaningful value when out of range.
// It must be called again after command line overrides.
func (c *Custom) Validate() error {
	if c.Display.Precision < 0 {
		return fmt.Errorf("config: display.precision %d is negative", c.Display.Precision)
	}
	if c.Log.Limiter < 0 {
		return fmt.Errorf("config: log.limiter %d is negative", c.Log.Limiter)
	}
	return nil
}

// setDefaults fills in the settings missing from tree. A nil tree has no
// settings.
func (c *Custom) setDefaults(tree *toml.Tree) {
	has := func(key string) bool {
		return tree != nil && tree.Has(key)
	}
	if !has("display.precision") {
		c.Display.Precision = DefaultPrecision
	}
	if !has("repl.prompt") {
		c.REPL.Prompt = DefaultPrompt
	}
	if !has("log.level") {
		c.Log.Level = DefaultLogLevel
	}
}
