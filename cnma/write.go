package cnma

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/logicossoftware/go-lparse/internal/atomicfile"
)

// WriteTo writes c as Cnma text. Every mode is rendered before anything is
// written, so an unwritable value leaves w untouched.
func (c *Cnma) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for i, m := range c.Modes {
		if err := writeMode(&buf, m); err != nil {
			return 0, fmt.Errorf("mode %d: %w", i, err)
		}
	}
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// String returns c as Cnma text, or "" if c cannot be written.
func (c *Cnma) String() string {
	var b strings.Builder
	if _, err := c.WriteTo(&b); err != nil {
		return ""
	}
	return b.String()
}

// Validate reports the first value WriteTo would reject.
func (c *Cnma) Validate() error {
	_, err := c.WriteTo(io.Discard)
	return err
}

// WriteFile atomically replaces path with c.
func (c *Cnma) WriteFile(path string) error {
	return atomicfile.Write(path, func(w io.Writer) error {
		_, err := c.WriteTo(w)
		return err
	})
}

func writeMode(b *bytes.Buffer, m Mode) error {
	if m == nil {
		return invalidValue("nil mode")
	}
	fmt.Fprintf(b, "MODE %s\n", m.Name())

	switch m := m.(type) {
	case MusicIDs:
		return writeResources(b, m.Resources)
	case SoundIDs:
		return writeResources(b, m.Resources)
	case MusicVolumeOverride:
	case LevelSelectOrder:
		for i := len(m.Levels) - 1; i >= 0; i-- {
			e := m.Levels[i]
			if !isWord(e.Name) {
				return invalidValue("level name %q", e.Name)
			}
			if e.Score == 0 {
				fmt.Fprintf(b, "%s _\n", e.Name)
			} else {
				fmt.Fprintf(b, "%s %d\n", e.Name, e.Score)
			}
		}
	case MaxPowerDef:
		if m.Ability > AbilityMarioBounce {
			return invalidValue("ability %d", m.Ability)
		}
		fmt.Fprintf(b, "spd %s\n", formatFloat(m.Speed))
		fmt.Fprintf(b, "jmp %s\n", formatFloat(m.Jump))
		fmt.Fprintf(b, "grav %s\n", formatFloat(m.Gravity))
		fmt.Fprintf(b, "hpcost %s\n", formatFloat(m.HPCost))
		fmt.Fprintf(b, "strength %s\n", formatFloat(m.Strength))
		fmt.Fprintf(b, "ability %d\n", m.Ability)
	case LuaAutorun:
		for _, l := range strings.Split(m.Code, "\n") {
			if strings.TrimSpace(l) == endLua {
				return invalidValue("lua code contains the %s terminator", endLua)
			}
		}
		if m.Code != "" {
			b.WriteString(m.Code)
			b.WriteByte('\n')
		}
		b.WriteString(endLua + "\n")
	case PetDefs:
		for _, p := range m.Pets {
			if err := writePet(b, p); err != nil {
				return err
			}
		}
		b.WriteString(endPets + "\n")
	default:
		return invalidValue("unknown mode type %T", m)
	}
	return nil
}

func writeResources(b *bytes.Buffer, rs []ResourceID) error {
	for _, r := range rs {
		if r.Path == "" || r.Path != strings.TrimSpace(r.Path) || strings.ContainsAny(r.Path, "\r\n") {
			return invalidValue("resource %d path %q", r.ID, r.Path)
		}
		fmt.Fprintf(b, "%d %s\n", r.ID, r.Path)
	}
	return nil
}

func writePet(b *bytes.Buffer, p PetDef) error {
	if strings.ContainsAny(p.Name, "\"\r\n") {
		return invalidValue("pet name %q", p.Name)
	}
	fmt.Fprintf(b, "\"%s\" %d %d %d %d %d ", p.Name, p.AnimBaseX, p.AnimBaseY, p.IconBaseX, p.IconBaseY, p.IdleSound)
	switch ai := p.AI.(type) {
	case PetFly:
		fmt.Fprintf(b, "f %d\n", ai.FlyFrames)
	case PetWalk:
		fmt.Fprintf(b, "w %d %d %d\n", ai.IdleFrames, ai.WalkFrames, ai.FallFrames)
	case PetBounce:
		idly := 0
		if ai.BounceIdly {
			idly = 1
		}
		fmt.Fprintf(b, "b %d %d %d %s\n", ai.IdleFrames, ai.BounceFrames, idly, formatFloat(ai.JumpHeight))
	default:
		return invalidValue("pet %q has no ai", p.Name)
	}
	return nil
}

// isWord reports whether s survives as a single whitespace separated field
// that the parser will not mistake for a header or terminator.
func isWord(s string) bool {
	if s == "" || strings.ContainsFunc(s, unicode.IsSpace) {
		return false
	}
	switch s {
	case "MODE", endLua, endPets:
		return false
	}
	return true
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
