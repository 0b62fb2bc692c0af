package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	LogLevel string           `help:"Log level (debug, info, warn, error)"`
	NoColor  bool             `help:"Disable colored output"`

	Play PlayCmd `cmd:"" default:"1" help:"Play hands of no-limit hold'em at one terminal"`
	Odds OddsCmd `cmd:"" help:"Estimate the equity of a hand or range"`
	Rank RankCmd `cmd:"" help:"Rank hole cards on a board"`
}

// env carries the process wiring each command runs with.
type env struct {
	logger   *log.Logger
	levelSet bool
	in       io.Reader
	out      io.Writer
	clock    quartz.Clock
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("No-limit Texas hold'em at the terminal, with hand ranking and equity estimates"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	logger, err := newLogger(os.Stderr, cli.LogLevel, cli.NoColor)
	ctx.FatalIfErrorf(err)
	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	err = ctx.Run(&env{
		logger:   logger,
		levelSet: cli.LogLevel != "",
		in:       os.Stdin,
		out:      os.Stdout,
		clock:    quartz.NewReal(),
	})
	ctx.FatalIfErrorf(err)
}

func newLogger(w io.Writer, level string, noColor bool) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "holdem",
		Level:           log.WarnLevel,
	})
	if level != "" {
		lvl, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		logger.SetLevel(lvl)
	}
	if noColor {
		logger.SetColorProfile(termenv.Ascii)
	}
	return logger, nil
}
