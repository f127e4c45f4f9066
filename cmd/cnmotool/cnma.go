package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/logicossoftware/go-lparse/cnma"
	"github.com/logicossoftware/go-lparse/internal/cli"
)

func (a *app) cnmaFmtCommand() *cli.Command {
	var toStdout bool
	return &cli.Command{
		Name:        "fmt",
		Summary:     "Parse a Cnma file and rewrite it in canonical form",
		Description: "Parse a Cnma file and rewrite it in canonical form. Blank lines are\ndropped and numbers are printed in their shortest form.",
		Usage:       "cnmotool cnma fmt <file.cnma> [flags]",
		Flags: func() *pflag.FlagSet {
			fs := a.flagSet("cnma fmt")
			fs.BoolVar(&toStdout, "stdout", false, "print the result instead of rewriting the file")
			return fs
		},
		Run: func(args []string) error {
			if err := wantArgs(args, 1, "one .cnma file"); err != nil {
				return err
			}
			if err := a.setup(); err != nil {
				return err
			}
			c, err := cnma.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if toStdout {
				_, err := c.WriteTo(a.stdout)
				return err
			}

			before, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if string(before) == c.String() {
				a.log.Debug("already formatted", "path", args[0])
				return nil
			}
			if err := c.WriteFile(args[0]); err != nil {
				return err
			}
			a.log.Info("formatted", "path", args[0], "modes", len(c.Modes))
			return nil
		},
	}
}

func (a *app) cnmaCheckCommand() *cli.Command {
	return &cli.Command{
		Name:    "check",
		Summary: "Parse a Cnma file and list its modes",
		Usage:   "cnmotool cnma check <file.cnma> [flags]",
		Flags:   func() *pflag.FlagSet { return a.flagSet("cnma check") },
		Run: func(args []string) error {
			if err := wantArgs(args, 1, "one .cnma file"); err != nil {
				return err
			}
			if err := a.setup(); err != nil {
				return err
			}
			c, err := cnma.ReadFile(args[0])
			if err == nil {
				err = c.Validate()
			}
			if err != nil {
				a.log.Error("invalid cnma file", "path", args[0], "error", err)
				return &cli.ExitError{Code: 1}
			}
			for _, m := range c.Modes {
				fmt.Fprintf(a.stdout, "%-22s %s\n", m.Name(), describeMode(m))
			}
			return nil
		},
	}
}

func describeMode(m cnma.Mode) string {
	switch m := m.(type) {
	case cnma.MusicIDs:
		return fmt.Sprintf("%d tracks", len(m.Resources))
	case cnma.SoundIDs:
		return fmt.Sprintf("%d sounds", len(m.Resources))
	case cnma.LevelSelectOrder:
		return fmt.Sprintf("%d levels", len(m.Levels))
	case cnma.MaxPowerDef:
		return fmt.Sprintf("ability %s", m.Ability)
	case cnma.LuaAutorun:
		return fmt.Sprintf("%d bytes of lua", len(m.Code))
	case cnma.PetDefs:
		return fmt.Sprintf("%d pets", len(m.Pets))
	}
	return ""
}
