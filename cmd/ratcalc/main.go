// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ratcalc is an RPN calculator on exact rational numbers.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/db47h/rational/internal/calc"
	"github.com/db47h/rational/internal/config"
	"github.com/db47h/rational/internal/logger"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

const version = "v0.1.0"

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "ratcalc"
	app.Usage = "An RPN calculator on exact rational numbers."
	app.Version = version
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "the TOML configuration file",
		},
		&cli.StringFlag{
			Name:    "log",
			Aliases: []string{"l"},
			Value:   config.DefaultLogLevel,
			Usage:   "the log level: error, info, verbose or debug",
		},
		&cli.StringFlag{
			Name:  "filter",
			Usage: "the RE2 regex pattern to filter log",
		},
		&cli.IntFlag{
			Name:  "limiter",
			Usage: "the maximum number of times a log message is repeated",
		},
		&cli.IntFlag{
			Name:    "precision",
			Aliases: []string{"p"},
			Value:   config.DefaultPrecision,
			Usage:   "the number of digits after the decimal point printed by f",
		},
		&cli.BoolFlag{
			Name:  "canonical",
			Usage: "reduce every value to lowest terms",
		},
	}
	app.EnableBashCompletion = true
	app.Action = replCmd
	app.Commands = []*cli.Command{
		{
			Name:      "eval",
			Aliases:   []string{"e"},
			Usage:     "Evaluate an expression and print the top of the stack",
			ArgsUsage: "EXPR...",
			Action:    evalCmd,
		},
		{
			Name:    "repl",
			Aliases: []string{"r"},
			Usage:   "Read and evaluate lines until end of input",
			Action:  replCmd,
		},
	}
	return app
}

// setup loads the configuration and applies the command line overrides.
func setup(c *cli.Context) (*config.Custom, error) {
	custom := config.Default()
	if file := c.String("config"); file != "" {
		var err error
		custom, err = config.Initialize(file)
		if err != nil {
			return nil, err
		}
	}
	if c.IsSet("log") {
		custom.Log.Level = c.String("log")
	}
	if c.IsSet("filter") {
		custom.Log.Filter = c.String("filter")
	}
	if c.IsSet("limiter") {
		custom.Log.Limiter = c.Int("limiter")
	}
	if c.IsSet("precision") {
		custom.Display.Precision = c.Int("precision")
	}
	if c.IsSet("canonical") {
		custom.Display.Canonical = c.Bool("canonical")
	}
	err := custom.Validate()
	if err != nil {
		return nil, err
	}

	level, err := logger.ParseLevel(custom.Log.Level)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(level)
	logger.SetLimiter(custom.Log.Limiter)
	err = logger.SetFilter(custom.Log.Filter)
	if err != nil {
		return nil, err
	}
	logger.Verbosef("config: %+v", *custom)
	return custom, nil
}

func evalCmd(c *cli.Context) error {
	custom, err := setup(c)
	if err != nil {
		return err
	}
	if c.NArg() == 0 {
		return errors.New("eval: missing expression")
	}
	rc := calc.New(c.App.Writer, custom.Display.Canonical, custom.Display.Precision)
	err = rc.Eval(strings.Join(c.Args().Slice(), " "))
	if err != nil {
		return err
	}
	top, err := rc.Top()
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, top)
	return nil
}

func replCmd(c *cli.Context) error {
	custom, err := setup(c)
	if err != nil {
		return err
	}
	if c.NArg() > 0 {
		return fmt.Errorf("unexpected arguments %q, did you mean eval?", c.Args().Slice())
	}
	rc := calc.New(os.Stdout, custom.Display.Canonical, custom.Display.Precision)
	if isatty.IsTerminal(os.Stdin.Fd()) {
		return interactive(rc, custom)
	}
	return batch(rc, os.Stdin, os.Stderr)
}
