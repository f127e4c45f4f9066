package leveldata

// WobjType is the kind and settings of the world object a spawner creates.
//
// It is a closed set: every implementation is a struct declared in this
// package. Switch on the concrete type to inspect one.
type WobjType interface {
	wobj()
}

type TunesTriggerSize uint8

const (
	TunesTriggerSmall TunesTriggerSize = iota
	TunesTriggerBig
	TunesTriggerVeryBig
)

type RuneType uint8

const (
	RuneFire RuneType = iota
	RuneIce
	RuneAir
	RuneLightning
)

type TtNodeType uint8

const (
	TtNodeNormalTrigger TtNodeType = iota
	TtNodeChaseTrigger
	TtNodeWaypoint
)

type PushZoneType uint8

const (
	PushZoneHorizontal PushZoneType = iota
	PushZoneVertical
	PushZoneHorizontalSmall
)

type KeyColor uint8

const (
	KeyRed KeyColor = iota
	KeyGreen
	KeyBlue
)

type RockGuyType uint8

const (
	RockGuyMedium RockGuyType = iota
	RockGuySmall1
	RockGuySmall2
)

type BackgroundSwitcherShape uint8

const (
	BackgroundSwitcherSmall BackgroundSwitcherShape = iota
	BackgroundSwitcherHorizontal
	BackgroundSwitcherVertical
)

type UpgradeKind uint8

const (
	UpgradeWings UpgradeKind = iota
	UpgradeDeephausBoots
	UpgradeCrystalWings
	UpgradeVortex
	UpgradeMaxPowerRune
	UpgradeNone
)

// PlatformType is the behavior of a customizable moving platform at the end
// of its path.
type PlatformType uint8

const (
	PlatformNormal PlatformType = iota
	PlatformDespawn
	PlatformOneWay
)

// Teleport is a teleport pad. It is also the row type of the teleport table.
type Teleport struct {
	Name string
	Cost int32
	Loc  Point
}

type Slime struct{ Flying bool }

type TunesTrigger struct {
	Size    TunesTriggerSize
	MusicID uint32
}

type PlayerSpawn struct{}

// TextSpawner shows Text, one line per text table row, either as ending text
// or in a dialogue box.
type TextSpawner struct {
	DialogueBox bool
	Text        string
}

type MovingPlatform struct {
	Vertical bool
	Dist     float32
	Speed    float32
}

// BreakableWall uses the default skin when SkinID is nil.
type BreakableWall struct {
	SkinID *uint8
	Health float32
}

// BackgroundSwitcher enables the background layers in [Start, End).
type BackgroundSwitcher struct {
	Shape      BackgroundSwitcherShape
	Start, End uint32
}

type DroppedItem struct{ Item ItemType }

type WandRune struct{ Rune RuneType }

type Heavy struct {
	Speed    float32
	FaceLeft bool
}

type Dragon struct{ SpaceSkin bool }

type BozoPin struct{ FlyingSpeed float32 }

type Bozo struct{ MarkII bool }

type SilverSlime struct{}

type LavaMonster struct{ FaceLeft bool }

type TtMinion struct{ Small bool }

type SlimeWalker struct{}

type MegaFish struct {
	WaterLevel    int32
	SwimmingSpeed float32
}

// LavaDragonHead has at most 32 body segments.
type LavaDragonHead struct {
	Len    uint32
	Health float32
}

// TtNode is a trigger for the TT boss. Waypoint is only used by
// TtNodeWaypoint nodes.
type TtNode struct {
	Node     TtNodeType
	Waypoint int32
}

type TtBoss struct{ Speed float32 }

type EaterBug struct{ PopUpSpeed float32 }

type SpiderWalker struct{ Speed float32 }

type SpikeTrap struct{}

// RotatingFireColumnPiece is one piece of a fire column rotating around the
// horizontal origin OriginX.
type RotatingFireColumnPiece struct {
	OriginX          int32
	DegreesPerSecond float32
}

type MovingFire struct {
	Vertical bool
	Dist     int32
	Speed    float32
	Despawn  bool
}

type SuperDragon struct{ WaypointID uint8 }

type SuperDragonLandingZone struct{ WaypointID uint8 }

type BozoLaserMinion struct{ Speed float32 }

type Checkpoint struct{}

type SpikeGuy struct{}

type BanditGuy struct{ Speed float32 }

type PushZone struct {
	Type      PushZoneType
	PushSpeed float32
}

type VerticalWindZone struct{ Acceleration float32 }

// DisappearingPlatform times are in seconds.
type DisappearingPlatform struct {
	TimeOn  float32
	TimeOff float32
}

type KamakaziSlime struct{}

type SpringBoard struct{ JumpVelocity float32 }

type Jumpthrough struct{ Big bool }

type BreakablePlatform struct{ TimeTillFall float32 }

type LockedBlock struct {
	Color      KeyColor
	ConsumeKey bool
}

// RockGuy. FaceLeft only applies to RockGuySmall2.
type RockGuy struct {
	Type     RockGuyType
	FaceLeft bool
}

type RockGuySlider struct{}

type RockGuySmasher struct{}

type HealthSetTrigger struct{ TargetHealth float32 }

type Vortex struct{ AttractEnemies bool }

// CustomizableMovingPlatform moves by TargetRelative at Speed pixels per
// frame and back. BitmapX and BitmapY select its look in 32 pixel units;
// BitmapX must fit in 4 bits and BitmapY in 12.
type CustomizableMovingPlatform struct {
	BitmapX, BitmapY uint32
	TargetRelative   Point
	Speed            float32
	StartPaused      bool
	Type             PlatformType
}

type GraphicsChangeTrigger struct{ GfxFile string }

type BossBarInfo struct{ BossName string }

type BgSpeed struct {
	VerticalAxis bool
	Layer        uint32
	Speed        float32
}

type BgTransparency struct {
	Layer        uint32
	Transparency uint8
}

type TeleportTrigger1 struct {
	LinkID    uint32
	DelaySecs float32
}

// TeleportArea1 sends players touching it to Loc. LinkID pairs it with
// TeleportTrigger1 objects.
type TeleportArea1 struct {
	LinkID uint32
	Loc    Point
}

// TeleportArea2 is TeleportArea1 with the second area skin.
type TeleportArea2 struct {
	LinkID uint32
	Loc    Point
}

type SfxPoint struct{ SoundID uint32 }

type Wolf struct{}

type Supervirus struct{}

// Lua spawns the script-defined object type Type.
type Lua struct{ Type uint8 }

// UpgradeTrigger gives players an upgrade. SkinOverride is only used by
// UpgradeMaxPowerRune; nil keeps the player's skin.
type UpgradeTrigger struct {
	Kind         UpgradeKind
	SkinOverride *uint8
}

// FinishTrigger ends the level, continuing to NextLevel when set.
type FinishTrigger struct{ NextLevel string }

type GravityTrigger struct{ Gravity float32 }

type SkinUnlock struct{ ID uint8 }

// CoolPlatform cycles off, on, off. Times are in game frames.
type CoolPlatform struct {
	TimeOffBefore int32
	TimeOn        int32
	TimeOffAfter  int32
}

func (Teleport) wobj()                   {}
func (Slime) wobj()                      {}
func (TunesTrigger) wobj()               {}
func (PlayerSpawn) wobj()                {}
func (TextSpawner) wobj()                {}
func (MovingPlatform) wobj()             {}
func (BreakableWall) wobj()              {}
func (BackgroundSwitcher) wobj()         {}
func (DroppedItem) wobj()                {}
func (WandRune) wobj()                   {}
func (Heavy) wobj()                      {}
func (Dragon) wobj()                     {}
func (BozoPin) wobj()                    {}
func (Bozo) wobj()                       {}
func (SilverSlime) wobj()                {}
func (LavaMonster) wobj()                {}
func (TtMinion) wobj()                   {}
func (SlimeWalker) wobj()                {}
func (MegaFish) wobj()                   {}
func (LavaDragonHead) wobj()             {}
func (TtNode) wobj()                     {}
func (TtBoss) wobj()                     {}
func (EaterBug) wobj()                   {}
func (SpiderWalker) wobj()               {}
func (SpikeTrap) wobj()                  {}
func (RotatingFireColumnPiece) wobj()    {}
func (MovingFire) wobj()                 {}
func (SuperDragon) wobj()                {}
func (SuperDragonLandingZone) wobj()     {}
func (BozoLaserMinion) wobj()            {}
func (Checkpoint) wobj()                 {}
func (SpikeGuy) wobj()                   {}
func (BanditGuy) wobj()                  {}
func (PushZone) wobj()                   {}
func (VerticalWindZone) wobj()           {}
func (DisappearingPlatform) wobj()       {}
func (KamakaziSlime) wobj()              {}
func (SpringBoard) wobj()                {}
func (Jumpthrough) wobj()                {}
func (BreakablePlatform) wobj()          {}
func (LockedBlock) wobj()                {}
func (RockGuy) wobj()                    {}
func (RockGuySlider) wobj()              {}
func (RockGuySmasher) wobj()             {}
func (HealthSetTrigger) wobj()           {}
func (Vortex) wobj()                     {}
func (CustomizableMovingPlatform) wobj() {}
func (GraphicsChangeTrigger) wobj()      {}
func (BossBarInfo) wobj()                {}
func (BgSpeed) wobj()                    {}
func (BgTransparency) wobj()             {}
func (TeleportTrigger1) wobj()           {}
func (TeleportArea1) wobj()              {}
func (TeleportArea2) wobj()              {}
func (SfxPoint) wobj()                   {}
func (Wolf) wobj()                       {}
func (Supervirus) wobj()                 {}
func (Lua) wobj()                        {}
func (UpgradeTrigger) wobj()             {}
func (FinishTrigger) wobj()              {}
func (GravityTrigger) wobj()             {}
func (SkinUnlock) wobj()                 {}
func (CoolPlatform) wobj()               {}

// WobjKinds returns the zero value of every WobjType implementation.
func WobjKinds() []WobjType {
	return []WobjType{
		Teleport{}, Slime{}, TunesTrigger{}, PlayerSpawn{}, TextSpawner{},
		MovingPlatform{}, BreakableWall{}, BackgroundSwitcher{}, DroppedItem{},
		WandRune{}, Heavy{}, Dragon{}, BozoPin{}, Bozo{}, SilverSlime{},
		LavaMonster{}, TtMinion{}, SlimeWalker{}, MegaFish{}, LavaDragonHead{},
		TtNode{}, TtBoss{}, EaterBug{}, SpiderWalker{}, SpikeTrap{},
		RotatingFireColumnPiece{}, MovingFire{}, SuperDragon{},
		SuperDragonLandingZone{}, BozoLaserMinion{}, Checkpoint{}, SpikeGuy{},
		BanditGuy{}, PushZone{}, VerticalWindZone{}, DisappearingPlatform{},
		KamakaziSlime{}, SpringBoard{}, Jumpthrough{}, BreakablePlatform{},
		LockedBlock{}, RockGuy{}, RockGuySlider{}, RockGuySmasher{},
		HealthSetTrigger{}, Vortex{}, CustomizableMovingPlatform{},
		GraphicsChangeTrigger{}, BossBarInfo{}, BgSpeed{}, BgTransparency{},
		TeleportTrigger1{}, TeleportArea1{}, TeleportArea2{}, SfxPoint{}, Wolf{},
		Supervirus{}, Lua{}, UpgradeTrigger{}, FinishTrigger{}, GravityTrigger{},
		SkinUnlock{}, CoolPlatform{},
	}
}
