// Package logger is the leveled logger of ratcalc. Messages at or below the
// current level are written with the standard log package; verbose and debug
// messages can also be filtered by a regular expression and rate limited.
package logger

import (
	"fmt"
	"io"
	"log"
	"regexp"
	"strings"
	"sync/atomic"

	"github.com/cornelk/hashmap"
)

const (
	ERROR   = 1
	INFO    = 2
	VERBOSE = 3
	DEBUG   = 7
)

var levels = map[string]int{
	"error":   ERROR,
	"info":    INFO,
	"verbose": VERBOSE,
	"debug":   DEBUG,
}

var (
	level   = ERROR
	limiter int
	filter  *regexp.Regexp
	counter *hashmap.HashMap
)

func init() {
	counter = &hashmap.HashMap{}
}

// ParseLevel returns the level named s, or a numeric level.
func ParseLevel(s string) (int, error) {
	if l, ok := levels[strings.ToLower(s)]; ok {
		return l, nil
	}
	var l int
	if _, err := fmt.Sscanf(s, "%d", &l); err != nil || l < 0 {
		return 0, fmt.Errorf("logger: unknown level %q", s)
	}
	return l, nil
}

func Level() int {
	return level
}

func SetLevel(l int) {
	level = l
}

// SetLimiter sets the number of times a given verbose or debug message is
// printed. 0 means no limit.
func SetLimiter(l int) {
	limiter = l
}

// SetFilter only lets through verbose and debug messages matching pattern. An
// empty pattern removes the filter.
func SetFilter(pattern string) error {
	if pattern == "" {
		filter = nil
		return nil
	}
	// https://github.com/google/re2/wiki/Syntax
	reg, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	filter = reg
	return nil
}

func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

func Errorf(format string, v ...interface{}) {
	if level >= ERROR {
		log.Printf(format, v...)
	}
}

func Println(v ...interface{}) {
	if level >= INFO {
		log.Println(v...)
	}
}

func Printf(format string, v ...interface{}) {
	if level >= INFO {
		log.Printf(format, v...)
	}
}

func Verbosef(format string, v ...interface{}) {
	printfAtLevel(VERBOSE, format, v...)
}

func Debugf(format string, v ...interface{}) {
	printfAtLevel(DEBUG, format, v...)
}

func printfAtLevel(l int, format string, v ...interface{}) {
	if level < l {
		return
	}
	out := filterOutput(format, v...)
	if out == "" {
		return
	}
	if !limiterAvailable(out) {
		return
	}
	log.Print(out)
}

func limiterAvailable(out string) bool {
	if limiter == 0 {
		return true
	}
	var i int64
	val, _ := counter.GetOrInsert(out, &i)
	actual := (val).(*int64)
	count := atomic.LoadInt64(actual)
	atomic.AddInt64(actual, 1)
	return count < int64(limiter)
}

func filterOutput(format string, v ...interface{}) string {
	out := fmt.Sprintf(format, v...)
	if filter == nil || filter.MatchString(out) {
		return out
	}
	return ""
}
