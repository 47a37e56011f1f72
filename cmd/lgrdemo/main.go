// Command lgrdemo sends sample messages at every level through the
// process-wide logger, to try thresholds, formatters and sinks from a shell.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	lgr "github.com/abyssdigger/lgrcore"
)

const envLevel = "LGR_LEVEL"

type options struct {
	level   string
	verbose bool
	json    bool
	color   string
	file    string
	maxSize int
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "lgrdemo [message...]",
		Short: "Log sample messages at every level",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			closer, err := configure(opts, stdout, stderr)
			if err != nil {
				return err
			}
			if closer != nil {
				defer closer.Close()
			}
			if len(args) == 0 {
				args = []string{"<test>"}
			}
			emit(lgr.GetLogger(), strings.Join(args, " "))
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	level := os.Getenv(envLevel)
	if level == "" {
		level = lgr.DEFAULT_LOG_LEVEL.String()
	}
	f := cmd.Flags()
	f.StringVarP(&opts.level, "level", "l", level, "threshold label (off, fatal, error, warn, info, debug, trace); env "+envLevel)
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "emit VERBOSE messages")
	f.BoolVar(&opts.json, "json", false, "render messages as JSON")
	f.StringVar(&opts.color, "color", "auto", "colorize level tags: auto, always or never")
	f.StringVar(&opts.file, "file", "", "also append messages to this (rotated) file")
	f.IntVar(&opts.maxSize, "max-size", 0, "rotate the file after this many megabytes")
	return cmd
}

// configure maps command line options to logger options.
func configure(opts *options, stdout, stderr io.Writer) (io.Closer, error) {
	level, ok := lgr.LevelFromLabel(opts.level)
	if !ok || !level.Standard() {
		return nil, fmt.Errorf("unknown level %q", opts.level)
	}

	var format lgr.Formatter = lgr.PlainFormatter
	switch {
	case opts.json:
		format = lgr.JSONFormatter
	case opts.color == "always", opts.color == "auto" && lgr.ColorSupported(stdout):
		format = lgr.ColorFormatter(nil)
	case opts.color != "never" && opts.color != "auto":
		return nil, fmt.Errorf("unknown color mode %q", opts.color)
	}

	sinks := lgr.ConsoleSinks(stdout, stderr)
	var closer io.Closer
	if opts.file != "" {
		fileSink, c, err := lgr.FileSink(lgr.FileConfig{Path: opts.file, MaxSizeMB: opts.maxSize}, stderr)
		if err != nil {
			return nil, err
		}
		closer = c
		for l, s := range sinks {
			sinks[l] = lgr.TeeSink(s, fileSink)
		}
	}

	_, err := lgr.CreateLogger(
		lgr.WithLevel(level),
		lgr.WithVerbose(opts.verbose),
		lgr.WithFormatter(format),
		lgr.WithFallback(stderr),
		lgr.WithSinkMap(sinks),
	)
	if err != nil && closer != nil {
		closer.Close()
	}
	return closer, err
}

func emit(l *lgr.Logger, text string) {
	l.Fatal(text)
	l.Error(text, fmt.Errorf("sample error"))
	l.Warn(text)
	l.Info(text, "with", 2, "primitives", map[string]int{"and": 1})
	l.Debug(text)
	l.Trace(text)
	l.Verbose(text)
	l.Force(text)
	l.Print(text)
}
