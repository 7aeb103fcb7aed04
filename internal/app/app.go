// wiring config, storage, composer and service for one generation run
package app

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ds124wfegd/dmg-background/config"
	"github.com/ds124wfegd/dmg-background/internal/database"
	"github.com/ds124wfegd/dmg-background/internal/pkg/composer"
	"github.com/ds124wfegd/dmg-background/internal/pkg/storage"
	"github.com/ds124wfegd/dmg-background/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

const description = `Generate the background image for the macOS DMG installer window.

Creates an 800x450 PNG with a transparent background, an optional curved
arrow and centred instructional text.`

const examples = `Examples:
  dmgbackground
  dmgbackground --text "Drop to Applications"
  dmgbackground --output custom-background.png`

type Options struct {
	Fs     afero.Fs
	Stdout io.Writer
	Stderr io.Writer
}

// Run parses args, generates the background and returns the process exit code.
// It is the only place errors are reported.
func Run(args []string, opts Options) int {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}

	flags := newFlagSet(opts)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ExitOK
		}
		fmt.Fprintf(opts.Stderr, "%v\nRun with --help for usage.\n", err)
		return ExitUsage
	}

	if err := generate(flags, opts); err != nil {
		fmt.Fprintf(opts.Stderr, "Error generating DMG background: %v\n", err)
		printTrace(opts.Stderr, err)
		return ExitError
	}
	return ExitOK
}

func newFlagSet(opts Options) *pflag.FlagSet {
	flags := pflag.NewFlagSet("dmgbackground", pflag.ContinueOnError)
	flags.SetOutput(opts.Stderr)
	flags.String("text", "", fmt.Sprintf("Custom text to display (default: %q)", config.DefaultText))
	flags.String("output", "", fmt.Sprintf("Output file path (default: %s)", config.DefaultOutputPath))
	flags.Usage = func() {
		fmt.Fprintf(opts.Stdout, "%s\n\nUsage:\n  dmgbackground [options]\n\nOptions:\n%s\n%s\n",
			description, flags.FlagUsages(), examples)
	}
	return flags
}

func generate(flags *pflag.FlagSet, opts Options) error {
	v, err := config.LoadConfig(flags, opts.Fs)
	if err != nil {
		return err
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log, opts.Stderr)
	if err != nil {
		return err
	}

	layout, err := cfg.Layout()
	if err != nil {
		return err
	}

	fileStorage := storage.NewFileStorage(opts.Fs, "")
	repo := database.NewBackgroundRepository(fileStorage)
	comp := composer.NewComposer(fileStorage, nil, logger)
	svc := service.NewBackgroundService(repo, comp, logger)

	res, err := svc.Generate(layout)
	if err != nil {
		return err
	}

	fmt.Fprintf(opts.Stdout, "%s (%dx%d, %.1f KB)\n", res.Path, res.Width, res.Height, float64(res.Bytes)/1024)
	return nil
}

func newLogger(cfg config.LogConfig, out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	logger.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "json":
		logger.SetFormatter(new(logrus.JSONFormatter))
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
	return logger, nil
}

// printTrace writes every error in the wrap chain, outermost first.
func printTrace(w io.Writer, err error) {
	fmt.Fprintln(w, "Trace:")
	for depth := 0; err != nil; depth++ {
		fmt.Fprintf(w, "  %d: %T: %v\n", depth, err, err)
		err = errors.Unwrap(err)
	}
}
