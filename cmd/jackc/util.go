package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	jackerrors "github.com/deepnoodle-ai/jackc/errors"
)

// errFailed is returned by commands that already reported their errors.
var errFailed = errors.New("failed")

func fatal(msg interface{}) {
	var s string
	switch msg := msg.(type) {
	case string:
		s = msg
	case error:
		s = msg.Error()
	default:
		s = fmt.Sprintf("%v", msg)
	}
	fmt.Fprintf(os.Stderr, "%s\n", red(s))
	os.Exit(1)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Reads global flags from Viper and adjusts the environment accordingly.
func processGlobalFlags() {
	if viper.GetBool("no-color") || !isTerminal(os.Stdout) {
		color.NoColor = true
	}
}

// newLogger returns a console logger on stderr at the configured level.
func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(viper.GetString("log-level"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: color.NoColor}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func marshalJSON(v any) ([]byte, error) {
	if color.NoColor {
		return json.MarshalIndent(v, "", "  ")
	}
	return prettyjson.Marshal(v)
}

// printErrors reports compile errors with source context. Errors that carry
// no location are printed as plain messages.
func printErrors(w io.Writer, errs []error) {
	formatter := jackerrors.NewFormatter(!color.NoColor)
	var formatted []*jackerrors.FormattedError
	for _, err := range errs {
		if ce, ok := jackerrors.As(err); ok {
			formatted = append(formatted, ce.ToFormatted())
			continue
		}
		fmt.Fprintln(w, red(err.Error()))
	}
	fmt.Fprint(w, formatter.FormatMultiple(formatted))
}
