// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/db47h/rational/internal/calc"
	"github.com/db47h/rational/internal/config"
	"github.com/db47h/rational/internal/logger"
	"github.com/peterh/liner"
)

func isQuit(line string) bool {
	switch strings.TrimSpace(line) {
	case "q", "quit", "exit":
		return true
	}
	return false
}

// batch evaluates r line by line. Errors are reported to errw and evaluation
// continues with the next line. Lines have no length limit.
func batch(rc *calc.Calc, r io.Reader, errw io.Writer) error {
	br := bufio.NewReader(r)
	for n := 1; ; n++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if line == "" && err == io.EOF {
			return nil
		}
		line = strings.TrimRight(line, "\r\n")
		if isQuit(line) {
			return nil
		}
		if err := rc.Eval(line); err != nil {
			logger.Verbosef("line %d: %q: %v", n, line, err)
			fmt.Fprintf(errw, "line %d: %v\n", n, err)
		}
		if err == io.EOF {
			return nil
		}
	}
}

// interactive runs a line editor on the terminal.
func interactive(rc *calc.Calc, custom *config.Custom) error {
	cli := liner.NewLiner()
	defer cli.Close()
	cli.SetCtrlCAborts(true)

	if h := custom.REPL.History; h != "" {
		if f, err := os.Open(h); err == nil {
			_, _ = cli.ReadHistory(f)
			f.Close()
		}
		defer func() {
			f, err := os.Create(h)
			if err != nil {
				logger.Errorf("history: %v", err)
				return
			}
			defer f.Close()
			if _, err := cli.WriteHistory(f); err != nil {
				logger.Errorf("history: %v", err)
			}
		}()
	}

	for {
		line, err := cli.Prompt(custom.REPL.Prompt)
		switch err {
		case nil:
		case liner.ErrPromptAborted:
			continue
		case io.EOF:
			fmt.Println()
			return nil
		default:
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		cli.AppendHistory(line)
		if isQuit(line) {
			return nil
		}
		if err := rc.Eval(line); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}
