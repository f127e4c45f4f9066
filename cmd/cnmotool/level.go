package main

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"github.com/logicossoftware/go-lparse"
	"github.com/logicossoftware/go-lparse/internal/cli"
	"github.com/logicossoftware/go-lparse/leveldata"
	"github.com/logicossoftware/go-lparse/leveldoc"
)

type entrySummary struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type containerSummary struct {
	Path     string         `json:"path"`
	Version  uint32         `json:"version"`
	Capacity int            `json:"capacity"`
	Entries  []entrySummary `json:"entries"`
}

func (a *app) inspectCommand() *cli.Command {
	return &cli.Command{
		Name:    "inspect",
		Summary: "Print the entry table of an LParse file as JSON",
		Usage:   "cnmotool inspect <file.cnmb|file.cnms> [flags]",
		Flags:   func() *pflag.FlagSet { return a.flagSet("inspect") },
		Run: func(args []string) error {
			if err := wantArgs(args, 1, "one file"); err != nil {
				return err
			}
			if err := a.setup(); err != nil {
				return err
			}
			c, err := lparse.ReadFile(args[0])
			if err != nil {
				return err
			}
			s := containerSummary{
				Path:     args[0],
				Version:  c.Version(),
				Capacity: c.Spec().MaxEntries,
				Entries:  []entrySummary{},
			}
			for _, e := range c.Entries() {
				s.Entries = append(s.Entries, entrySummary{Name: e.Name, Type: e.Type.String(), Count: e.Len()})
			}
			slices.SortFunc(s.Entries, func(x, y entrySummary) int { return strings.Compare(x.Name, y.Name) })

			b, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, string(b))
			return nil
		},
	}
}

// loadLevel decodes a level, logging every lenient substitution.
func (a *app) loadLevel(cnmbPath, cnmsPath string, lenient bool) (*leveldata.LevelData, int, error) {
	warnings := 0
	l, err := leveldata.LoadFiles(cnmbPath, cnmsPath,
		leveldata.WithLenient(lenient || a.cfg.Lenient),
		leveldata.WithWarningHandler(func(err error) {
			warnings++
			a.log.Warn("substituted corrupted value", "error", err)
		}),
	)
	return l, warnings, err
}

func (a *app) validateCommand() *cli.Command {
	var lenient bool
	return &cli.Command{
		Name:        "validate",
		Summary:     "Decode a level and check it can be saved again",
		Description: "Decode a level from its block and spawner files, then encode it into\nfresh containers. Exits 1 if either step fails.",
		Usage:       "cnmotool validate <level.cnmb> <level.cnms> [flags]",
		Flags: func() *pflag.FlagSet {
			fs := a.flagSet("validate")
			fs.BoolVar(&lenient, "lenient", false, "replace corrupted values with defaults")
			return fs
		},
		Run: func(args []string) error {
			if err := wantArgs(args, 2, "a .cnmb and a .cnms file"); err != nil {
				return err
			}
			if err := a.setup(); err != nil {
				return err
			}
			l, warnings, err := a.loadLevel(args[0], args[1], lenient)
			if err != nil {
				a.log.Error("level does not decode", "cnmb", args[0], "cnms", args[1], "error", err)
				return &cli.ExitError{Code: 1}
			}

			cnmb, err := lparse.New(l.Version.Version)
			if err != nil {
				return err
			}
			cnms, err := lparse.New(l.Version.Version)
			if err != nil {
				return err
			}
			if err := l.Save(cnmb, cnms); err != nil {
				a.log.Error("level does not encode", "error", err)
				return &cli.ExitError{Code: 1}
			}

			fmt.Fprintf(a.stdout, "%s: %dx%d cells, %d tiles, %d spawners, %d warnings\n",
				l.Metadata.Title, l.Cells.Width(), l.Cells.Height(),
				len(l.TileProperties), len(l.Spawners), warnings)
			return nil
		},
	}
}

// docFormat picks the snapshot format: the flag, then the path extension,
// then the configured default.
func (a *app) docFormat(flagValue, path string) (leveldoc.Format, error) {
	if flagValue != "" {
		return leveldoc.ParseFormat(flagValue)
	}
	if f, ok := leveldoc.FormatFromPath(path); ok {
		return f, nil
	}
	return leveldoc.ParseFormat(a.cfg.ExportFormat)
}

func (a *app) exportCommand() *cli.Command {
	var format, out string
	var lenient bool
	return &cli.Command{
		Name:    "export",
		Summary: "Write a level as a YAML or CBOR snapshot",
		Usage:   "cnmotool export <level.cnmb> <level.cnms> [flags]",
		Flags: func() *pflag.FlagSet {
			fs := a.flagSet("export")
			fs.StringVarP(&format, "format", "f", "", "snapshot format: yaml or cbor")
			fs.StringVarP(&out, "out", "o", "", "output file (default stdout)")
			fs.BoolVar(&lenient, "lenient", false, "replace corrupted values with defaults")
			return fs
		},
		Run: func(args []string) error {
			if err := wantArgs(args, 2, "a .cnmb and a .cnms file"); err != nil {
				return err
			}
			if err := a.setup(); err != nil {
				return err
			}
			f, err := a.docFormat(format, out)
			if err != nil {
				return err
			}
			l, _, err := a.loadLevel(args[0], args[1], lenient)
			if err != nil {
				return err
			}

			doc := leveldoc.FromLevel(l)
			if out == "" || out == "-" {
				return leveldoc.Encode(a.stdout, doc, f)
			}
			if err := leveldoc.WriteFile(out, doc, f); err != nil {
				return err
			}
			a.log.Info("exported level", "out", out, "format", string(f), "spawners", len(l.Spawners))
			return nil
		},
	}
}

func (a *app) importCommand() *cli.Command {
	var format, cnmbPath, cnmsPath string
	return &cli.Command{
		Name:    "import",
		Summary: "Build level files from a snapshot",
		Usage:   "cnmotool import <snapshot> --cnmb <level.cnmb> --cnms <level.cnms> [flags]",
		Flags: func() *pflag.FlagSet {
			fs := a.flagSet("import")
			fs.StringVarP(&format, "format", "f", "", "snapshot format (default from extension)")
			fs.StringVar(&cnmbPath, "cnmb", "", "block file to write")
			fs.StringVar(&cnmsPath, "cnms", "", "spawner file to write")
			return fs
		},
		Run: func(args []string) error {
			if err := wantArgs(args, 1, "one snapshot file"); err != nil {
				return err
			}
			if cnmbPath == "" || cnmsPath == "" {
				return fmt.Errorf("--cnmb and --cnms are required")
			}
			if err := a.setup(); err != nil {
				return err
			}
			f, err := a.docFormat(format, args[0])
			if err != nil {
				return err
			}
			doc, err := leveldoc.ReadFile(args[0], f)
			if err != nil {
				return err
			}
			l, err := doc.Level()
			if err != nil {
				return err
			}
			if err := l.SaveFiles(cnmbPath, cnmsPath); err != nil {
				return err
			}
			a.log.Info("imported level", "cnmb", cnmbPath, "cnms", cnmsPath, "title", l.Metadata.Title)
			return nil
		},
	}
}

func (a *app) newCommand() *cli.Command {
	var cnmbPath, cnmsPath, title, subtitle string
	var width, height int
	var difficulty uint8
	return &cli.Command{
		Name:    "new",
		Summary: "Create a blank level",
		Usage:   "cnmotool new --cnmb <level.cnmb> --cnms <level.cnms> [flags]",
		Flags: func() *pflag.FlagSet {
			fs := a.flagSet("new")
			fs.StringVar(&cnmbPath, "cnmb", "", "block file to write")
			fs.StringVar(&cnmsPath, "cnms", "", "spawner file to write")
			fs.StringVar(&title, "title", "Untitled", "level title")
			fs.StringVar(&subtitle, "subtitle", "", "level subtitle")
			fs.IntVar(&width, "width", 512, "width in tiles")
			fs.IntVar(&height, "height", 256, "height in tiles")
			fs.Uint8Var(&difficulty, "difficulty", uint8(leveldata.DifficultyNormal), "difficulty, 0 (tutorial) to 9 (ultra death)")
			return fs
		},
		Run: func(args []string) error {
			if err := wantArgs(args, 0, "no arguments"); err != nil {
				return err
			}
			if cnmbPath == "" || cnmsPath == "" {
				return fmt.Errorf("--cnmb and --cnms are required")
			}
			if leveldata.Difficulty(difficulty) > leveldata.DifficultyUltraDeath {
				return fmt.Errorf("--difficulty must be at most %d", leveldata.DifficultyUltraDeath)
			}
			if width < 1 || height < 1 {
				return fmt.Errorf("--width and --height must be positive")
			}
			if err := a.setup(); err != nil {
				return err
			}

			l, err := leveldata.New(lparse.VersionV1)
			if err != nil {
				return err
			}
			l.Cells.Resize(width, height)
			l.Metadata.Title = title
			l.Metadata.Subtitle = subtitle
			l.Metadata.Difficulty = leveldata.Difficulty(difficulty)
			if err := l.SaveFiles(cnmbPath, cnmsPath); err != nil {
				return err
			}
			a.log.Info("created level", "cnmb", cnmbPath, "cnms", cnmsPath, "difficulty", l.Metadata.Difficulty.String())
			return nil
		},
	}
}
