// Command cnmotool inspects, validates and converts CNM Online level and
// config files.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/logicossoftware/go-lparse/internal/cli"
	"github.com/logicossoftware/go-lparse/internal/config"
)

func main() {
	a := &app{stdout: os.Stdout, stderr: os.Stderr}
	if err := a.root().Execute(os.Args[1:]); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app carries what every subcommand shares: output streams, the loaded
// config and the logger built from it.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	cfg        *config.Config
	log        *slog.Logger
}

func (a *app) root() *cli.Command {
	return &cli.Command{
		Name:        "cnmotool",
		Description: "cnmotool reads and writes CNM Online level files (.cnmb/.cnms) and config files (.cnma).",
		Stderr:      a.stderr,
		Subcommands: []*cli.Command{
			a.inspectCommand(),
			a.validateCommand(),
			a.exportCommand(),
			a.importCommand(),
			a.newCommand(),
			{
				Name:    "cnma",
				Summary: "Check and normalize Cnma config files",
				Subcommands: []*cli.Command{
					a.cnmaFmtCommand(),
					a.cnmaCheckCommand(),
				},
			},
		},
	}
}

// flagSet returns a flag set carrying the flags every command accepts.
func (a *app) flagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringVar(&a.configPath, "config", "", "config file (default $"+config.EnvVar+")")
	return fs
}

// setup loads the config and builds the logger. Commands call it first in Run.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = cli.NewLogger(a.stderr, cfg.LogFormat, level)
	return nil
}

func wantArgs(args []string, n int, usage string) error {
	if len(args) != n {
		return fmt.Errorf("expected %s, got %d argument(s)", usage, len(args))
	}
	return nil
}
