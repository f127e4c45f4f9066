package cnma

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
)

const maxLineLen = 1 << 20

// Parse parses Cnma text.
func Parse(s string) (*Cnma, error) {
	return Decode(strings.NewReader(s))
}

// ReadFile parses the Cnma file at path.
func ReadFile(path string) (*Cnma, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads Cnma text from r.
//
// Lines are processed in order. A "MODE <name>" line closes the current mode
// and opens the next one, except inside LUA_AUTORUN and PETDEFS, which only
// end at their terminator line. Blank lines are skipped everywhere but inside
// a Lua script. A locked mode still open at end of input is kept as read.
//
// Errors in the text are returned as *LineError.
func Decode(r io.Reader) (*Cnma, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineLen)

	p := &parser{c: &Cnma{}}
	n := 0
	for sc.Scan() {
		n++
		if err := p.line(sc.Text()); err != nil {
			return nil, &LineError{Line: n, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading cnma: %w", err)
	}
	p.flush()
	return p.c, nil
}

type parser struct {
	c      *Cnma
	cur    Mode
	locked bool
	lua    []string
}

func (p *parser) flush() {
	switch m := p.cur.(type) {
	case nil:
		return
	case LevelSelectOrder:
		slices.Reverse(m.Levels)
		p.cur = m
	case LuaAutorun:
		m.Code = strings.Join(p.lua, "\n")
		p.lua = nil
		p.cur = m
	}
	p.c.Modes = append(p.c.Modes, p.cur)
	p.cur = nil
	p.locked = false
}

func (p *parser) line(text string) error {
	if p.locked {
		return p.lockedLine(text)
	}

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "MODE":
		p.flush()
		if len(fields) < 2 {
			return corruptedEntry("expected a mode name after MODE")
		}
		m, err := newMode(fields[1])
		if err != nil {
			return err
		}
		p.cur = m
		switch m.(type) {
		case LuaAutorun, PetDefs:
			p.locked = true
		}
		return nil
	case endLua:
		return corruptedEntry("%s outside of %s", endLua, nameLuaAutorun)
	case endPets:
		return corruptedEntry("%s outside of %s", endPets, namePetDefs)
	}

	switch m := p.cur.(type) {
	case nil:
		return ErrNoMode
	case MusicIDs:
		r, err := parseResource(text, fields)
		if err != nil {
			return err
		}
		m.Resources = append(m.Resources, r)
		p.cur = m
	case SoundIDs:
		r, err := parseResource(text, fields)
		if err != nil {
			return err
		}
		m.Resources = append(m.Resources, r)
		p.cur = m
	case MusicVolumeOverride:
	case LevelSelectOrder:
		e, err := parseLevel(fields)
		if err != nil {
			return err
		}
		m.Levels = append(m.Levels, e)
		p.cur = m
	case MaxPowerDef:
		if err := parseMaxPowerField(&m, fields); err != nil {
			return err
		}
		p.cur = m
	}
	return nil
}

func (p *parser) lockedLine(text string) error {
	switch m := p.cur.(type) {
	case LuaAutorun:
		if strings.TrimSpace(text) == endLua {
			p.flush()
			return nil
		}
		p.lua = append(p.lua, text)
	case PetDefs:
		trimmed := strings.TrimSpace(text)
		switch trimmed {
		case "":
			return nil
		case endPets:
			p.flush()
			return nil
		}
		pet, err := parsePet(trimmed)
		if err != nil {
			return err
		}
		m.Pets = append(m.Pets, pet)
		p.cur = m
	}
	return nil
}

func newMode(name string) (Mode, error) {
	switch name {
	case nameMusic:
		return MusicIDs{}, nil
	case nameSounds:
		return SoundIDs{}, nil
	case nameMusicVolumeOverride:
		return MusicVolumeOverride{}, nil
	case nameLevelSelectOrder:
		return LevelSelectOrder{}, nil
	case nameLuaAutorun:
		return LuaAutorun{}, nil
	case namePetDefs:
		return PetDefs{}, nil
	}
	if slot, ok := strings.CutPrefix(name, nameMaxPower); ok {
		id, err := strconv.ParseUint(slot, 10, 8)
		if err != nil {
			return nil, corruptedEntry("bad max power slot %q", slot)
		}
		return MaxPowerDef{ID: uint8(id)}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownMode, name)
}

// parseResource reads "id path". The path runs to the end of the line.
func parseResource(text string, fields []string) (ResourceID, error) {
	if len(fields) < 2 {
		return ResourceID{}, corruptedEntry("expected an id and a path")
	}
	id, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return ResourceID{}, corruptedEntry("bad resource id %q", fields[0])
	}
	path := strings.TrimSpace(text)
	path = strings.TrimSpace(path[len(fields[0]):])
	return ResourceID{ID: uint32(id), Path: path}, nil
}

func parseLevel(fields []string) (LevelEntry, error) {
	e := LevelEntry{Name: fields[0]}
	if len(fields) < 2 || fields[1] == "_" {
		return e, nil
	}
	score, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return LevelEntry{}, corruptedEntry("bad level score %q", fields[1])
	}
	e.Score = uint32(score)
	return e, nil
}

func parseMaxPowerField(d *MaxPowerDef, fields []string) error {
	if len(fields) < 2 {
		return corruptedEntry("expected a field name and a value")
	}
	name, value := fields[0], fields[1]
	if name == "ability" {
		a, err := strconv.ParseUint(value, 10, 8)
		if err != nil || MaxPowerAbility(a) > AbilityMarioBounce {
			return corruptedEntry("bad ability %q", value)
		}
		d.Ability = MaxPowerAbility(a)
		return nil
	}

	var dst *float32
	switch name {
	case "spd":
		dst = &d.Speed
	case "jmp":
		dst = &d.Jump
	case "grav":
		dst = &d.Gravity
	case "hpcost":
		dst = &d.HPCost
	case "strength":
		dst = &d.Strength
	default:
		return corruptedEntry("unknown max power field %q", name)
	}
	f, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return corruptedEntry("bad %s value %q", name, value)
	}
	*dst = float32(f)
	return nil
}

// parsePet reads `"name" animx animy iconx icony idle_snd kind fields...`.
func parsePet(text string) (PetDef, error) {
	if !strings.HasPrefix(text, `"`) {
		return PetDef{}, corruptedEntry("pet name must be quoted")
	}
	end := strings.IndexByte(text[1:], '"')
	if end < 0 {
		return PetDef{}, corruptedEntry("unterminated pet name")
	}
	pet := PetDef{Name: text[1 : 1+end]}
	fields := strings.Fields(text[end+2:])
	if len(fields) < 6 {
		return PetDef{}, corruptedEntry("pet %q: expected 6 fields after the name, got %d", pet.Name, len(fields))
	}

	ints, err := parseInts(fields[:5])
	if err != nil {
		return PetDef{}, corruptedEntry("pet %q: %v", pet.Name, err)
	}
	pet.AnimBaseX, pet.AnimBaseY = ints[0], ints[1]
	pet.IconBaseX, pet.IconBaseY = ints[2], ints[3]
	pet.IdleSound = ints[4]

	kind, args := fields[5], fields[6:]
	want := map[string]int{"f": 1, "w": 3, "b": 4}[kind]
	if want == 0 {
		return PetDef{}, corruptedEntry("pet %q: unknown ai kind %q", pet.Name, kind)
	}
	if len(args) != want {
		return PetDef{}, corruptedEntry("pet %q: ai kind %s takes %d fields, got %d", pet.Name, kind, want, len(args))
	}

	switch kind {
	case "f":
		n, err := parseInts(args)
		if err != nil {
			return PetDef{}, corruptedEntry("pet %q: %v", pet.Name, err)
		}
		pet.AI = PetFly{FlyFrames: n[0]}
	case "w":
		n, err := parseInts(args)
		if err != nil {
			return PetDef{}, corruptedEntry("pet %q: %v", pet.Name, err)
		}
		pet.AI = PetWalk{IdleFrames: n[0], WalkFrames: n[1], FallFrames: n[2]}
	case "b":
		n, err := parseInts(args[:2])
		if err != nil {
			return PetDef{}, corruptedEntry("pet %q: %v", pet.Name, err)
		}
		var idly bool
		switch args[2] {
		case "0":
		case "1":
			idly = true
		default:
			return PetDef{}, corruptedEntry("pet %q: bad bounce flag %q", pet.Name, args[2])
		}
		jump, err := strconv.ParseFloat(args[3], 32)
		if err != nil {
			return PetDef{}, corruptedEntry("pet %q: bad jump height %q", pet.Name, args[3])
		}
		pet.AI = PetBounce{IdleFrames: n[0], BounceFrames: n[1], BounceIdly: idly, JumpHeight: float32(jump)}
	}
	return pet, nil
}

func parseInts(fields []string) ([]int32, error) {
	out := make([]int32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", f)
		}
		out[i] = int32(v)
	}
	return out, nil
}
