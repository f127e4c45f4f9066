package cnma

import "fmt"

// Mode is one section of a Cnma file. The concrete types are MusicIDs,
// SoundIDs, MusicVolumeOverride, LevelSelectOrder, MaxPowerDef, LuaAutorun
// and PetDefs.
type Mode interface {
	// Name is the word following MODE in the section header.
	Name() string
	mode()
}

// ResourceID binds a numeric id to an asset path.
type ResourceID struct {
	ID   uint32
	Path string
}

type MusicIDs struct{ Resources []ResourceID }

type SoundIDs struct{ Resources []ResourceID }

// MusicVolumeOverride carries no data; its presence is the setting.
type MusicVolumeOverride struct{}

// LevelEntry is one row of the level select menu. A Score of zero is written
// as the "_" placeholder.
type LevelEntry struct {
	Name  string
	Score uint32
}

// LevelSelectOrder lists levels in menu order. The file stores them in
// reverse.
type LevelSelectOrder struct{ Levels []LevelEntry }

type MaxPowerAbility uint8

const (
	AbilityNone MaxPowerAbility = iota
	AbilityDoubleJump
	AbilityFlying
	AbilityDropShield
	AbilityMarioBounce
)

func (a MaxPowerAbility) String() string {
	switch a {
	case AbilityNone:
		return "None"
	case AbilityDoubleJump:
		return "Double Jump"
	case AbilityFlying:
		return "Flying"
	case AbilityDropShield:
		return "Drop Shield"
	case AbilityMarioBounce:
		return "Mario Bounce"
	}
	return fmt.Sprintf("MaxPowerAbility(%d)", uint8(a))
}

// MaxPowerDef tunes the player physics of one max power slot.
type MaxPowerDef struct {
	ID       uint8
	Speed    float32
	Jump     float32
	Gravity  float32
	HPCost   float32
	Strength float32
	Ability  MaxPowerAbility
}

// LuaAutorun holds script source run when the game starts. Code has no
// trailing newline unless the script ends with a blank line.
type LuaAutorun struct{ Code string }

// PetAI is one of PetFly, PetWalk or PetBounce.
type PetAI interface{ petAI() }

type PetFly struct{ FlyFrames int32 }

type PetWalk struct {
	IdleFrames int32
	WalkFrames int32
	FallFrames int32
}

type PetBounce struct {
	IdleFrames   int32
	BounceFrames int32
	BounceIdly   bool
	JumpHeight   float32
}

// PetDef describes one pet. Bases are tile coordinates in the graphics file.
// IdleSound is -1 for no sound.
type PetDef struct {
	Name      string
	AnimBaseX int32
	AnimBaseY int32
	IconBaseX int32
	IconBaseY int32
	IdleSound int32
	AI        PetAI
}

type PetDefs struct{ Pets []PetDef }

const (
	nameMusic               = "MUSIC"
	nameSounds              = "SOUNDS"
	nameMusicVolumeOverride = "MUSIC_VOLUME_OVERRIDE"
	nameLevelSelectOrder    = "LEVELSELECT_ORDER"
	nameMaxPower            = "MAXPOWER"
	nameLuaAutorun          = "LUA_AUTORUN"
	namePetDefs             = "PETDEFS"

	endLua  = "__ENDLUA__"
	endPets = "ENDPETS"
)

func (MusicIDs) Name() string            { return nameMusic }
func (SoundIDs) Name() string            { return nameSounds }
func (MusicVolumeOverride) Name() string { return nameMusicVolumeOverride }
func (LevelSelectOrder) Name() string    { return nameLevelSelectOrder }
func (d MaxPowerDef) Name() string       { return fmt.Sprintf("%s%d", nameMaxPower, d.ID) }
func (LuaAutorun) Name() string          { return nameLuaAutorun }
func (PetDefs) Name() string             { return namePetDefs }

func (MusicIDs) mode()            {}
func (SoundIDs) mode()            {}
func (MusicVolumeOverride) mode() {}
func (LevelSelectOrder) mode()    {}
func (MaxPowerDef) mode()         {}
func (LuaAutorun) mode()          {}
func (PetDefs) mode()             {}

func (PetFly) petAI()    {}
func (PetWalk) petAI()   {}
func (PetBounce) petAI() {}

// Cnma is a parsed config file. Modes keep file order; a mode name may
// repeat.
type Cnma struct {
	Modes []Mode
}
