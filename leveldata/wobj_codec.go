package leveldata

import "math"

// On-disk object type ids.
const (
	idTeleport                = 1
	idSlime                   = 2
	idLegacyShotgun           = 4
	idTunesTriggerSmall       = 6
	idTunesTriggerBig         = 7
	idPlayerSpawn             = 8
	idEndingText              = 9
	idMovingPlatform          = 10
	idBreakableWall           = 11
	idBackgroundSwitcher      = 12
	idLegacyKnife             = 14
	idLegacyApple             = 15
	idDroppedItem             = 16
	idRuneIce                 = 19
	idRuneAir                 = 20
	idRuneFire                = 21
	idRuneLightning           = 22
	idDeephausBoots           = 32
	idWings                   = 33
	idCrystalWings            = 34
	idFlyingSlime             = 35
	idHeavy                   = 36
	idDragon                  = 38
	idBozoPin                 = 40
	idBozo                    = 41
	idSilverSlime             = 42
	idLavaMonster             = 43
	idTtMinionSmall           = 44
	idTtMinionBig             = 45
	idSlimeWalker             = 46
	idMegaFish                = 47
	idLavaDragonHead          = 48
	idTtChaseTrigger          = 51
	idTtNormalTrigger         = 52
	idTtWaypoint              = 53
	idTtBoss                  = 54
	idEaterBug                = 55
	idSpiderWalker            = 57
	idSpikeTrap               = 59
	idRotatingFireColumnPiece = 60
	idMovingFireVertical      = 61
	idMovingFireHorizontal    = 62
	idSuperDragon             = 63
	idSuperDragonLandingZone  = 64
	idBozoLaserMinion         = 69
	idBozoMarkII              = 72
	idCheckpoint              = 73
	idSpikeGuy                = 74
	idBanditGuy               = 76
	idPushZoneHorizontal      = 77
	idPushZoneVertical        = 78
	idVerticalWindZone        = 79
	idPushZoneHorizontalSmall = 80
	idMovingPlatformVertical  = 82
	idDisappearingPlatform    = 83
	idKamakaziSlime           = 84
	idSpringBoard             = 86
	idBackgroundSwitcherH     = 87
	idBackgroundSwitcherV     = 88
	idTunesTriggerVeryBig     = 89
	idJumpthrough             = 90
	idJumpthroughBig          = 91
	idBreakablePlatform       = 92
	idBreakableWallSkinned    = 93
	idLockedBlockRed          = 94
	idLockedBlockGreen        = 95
	idLockedBlockBlue         = 96
	idRockGuyMedium           = 97
	idRockGuySmall1           = 98
	idRockGuySmall2           = 99
	idRockGuySlider           = 100
	idRockGuySmasher          = 101
	idHealthSetTrigger        = 104
	idVortex                  = 105
	idUpgradeVortex           = 106
	idCustomizablePlatform    = 107
	idDialogueBox             = 108
	idGraphicsChangeTrigger   = 109
	idMaxPowerRune            = 114
	idBossBarInfo             = 115
	idBgSpeedHorizontal       = 116
	idBgSpeedVertical         = 117
	idBgTransparency          = 118
	idTeleportTrigger1        = 119
	idTeleportArea1           = 120
	idSfxPoint                = 121
	idWolf                    = 122
	idSupervirus              = 123
	idLuaFirst                = 124
	idLuaLast                 = 139
	idUpgradeNone             = 140
	idTeleportArea2           = 141
	idFinishTrigger           = 142
	idGravityTrigger          = 143
	idSkinUnlock              = 144
	idCoolPlatform            = 145
)

// maxLavaDragonLen is the longest lava dragon body the engine can spawn.
const maxLavaDragonLen = 32

func b2i(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// decodeWobj maps a spawner's type id and custom values back to a WobjType,
// resolving table references through t.
func decodeWobj(id, ci int32, cf float32, t *tables, cfg *decodeConfig) (WobjType, error) {
	// bad reports a corrupted payload and returns def in lenient mode.
	bad := func(def WobjType, format string, args ...any) (WobjType, error) {
		if err := cfg.recover(corrupted(format, args...)); err != nil {
			return nil, err
		}
		return def, nil
	}

	switch id {
	case idTeleport:
		tp, ok := t.teleport(ci)
		if !ok {
			return bad(Teleport{}, "teleport row %d out of range", ci)
		}
		return tp, nil
	case idTeleportArea1, idTeleportArea2:
		tp, ok := t.teleport(ci)
		if !ok {
			tp = Teleport{}
			if err := cfg.recover(corrupted("teleport area row %d out of range", ci)); err != nil {
				return nil, err
			}
		}
		if id == idTeleportArea2 {
			return TeleportArea2{LinkID: uint32(cf), Loc: tp.Loc}, nil
		}
		return TeleportArea1{LinkID: uint32(cf), Loc: tp.Loc}, nil
	case idTunesTriggerSmall:
		return TunesTrigger{Size: TunesTriggerSmall, MusicID: uint32(ci)}, nil
	case idTunesTriggerBig:
		return TunesTrigger{Size: TunesTriggerBig, MusicID: uint32(ci)}, nil
	case idTunesTriggerVeryBig:
		return TunesTrigger{Size: TunesTriggerVeryBig, MusicID: uint32(ci)}, nil
	case idPlayerSpawn, idCheckpoint:
		var w WobjType = PlayerSpawn{}
		if id == idCheckpoint {
			w = Checkpoint{}
		}
		if ci < 0 || int(ci) >= t.spawnRows {
			return bad(w, "spawn row %d out of range", ci)
		}
		return w, nil
	case idEndingText, idDialogueBox:
		end := int32(cf)
		if cf == 0 {
			// Levels from older editors store only the first row.
			end = ci + 1
		}
		text, ok := t.lines(ci, end)
		if !ok {
			return bad(TextSpawner{DialogueBox: id == idDialogueBox}, "text rows [%d, %v) out of range", ci, cf)
		}
		return TextSpawner{DialogueBox: id == idDialogueBox, Text: text}, nil
	case idBackgroundSwitcher, idBackgroundSwitcherH, idBackgroundSwitcherV:
		shape := BackgroundSwitcherSmall
		switch id {
		case idBackgroundSwitcherH:
			shape = BackgroundSwitcherHorizontal
		case idBackgroundSwitcherV:
			shape = BackgroundSwitcherVertical
		}
		return BackgroundSwitcher{Shape: shape, Start: uint32(ci), End: uint32(cf)}, nil
	case idDroppedItem:
		item, ok := ItemTypeFromID(uint32(ci))
		if !ok {
			return bad(DroppedItem{Item: ItemApple}, "dropped item id %d", ci)
		}
		return DroppedItem{Item: item}, nil
	case idLegacyKnife:
		return DroppedItem{Item: ItemKnife}, nil
	case idLegacyApple:
		return DroppedItem{Item: ItemApple}, nil
	case idLegacyShotgun:
		return DroppedItem{Item: ItemShotgun}, nil
	case idTtChaseTrigger:
		return TtNode{Node: TtNodeChaseTrigger}, nil
	case idTtNormalTrigger:
		return TtNode{Node: TtNodeNormalTrigger}, nil
	case idTtWaypoint:
		return TtNode{Node: TtNodeWaypoint, Waypoint: ci}, nil
	case idRotatingFireColumnPiece:
		return RotatingFireColumnPiece{OriginX: ci, DegreesPerSecond: cf * FrameRate}, nil
	case idMovingFireVertical, idMovingFireHorizontal:
		return MovingFire{
			Vertical: id == idMovingFireVertical,
			Dist:     ci,
			Speed:    float32(math.Abs(float64(cf))),
			Despawn:  math.Signbit(float64(cf)),
		}, nil
	case idPushZoneHorizontal:
		return PushZone{Type: PushZoneHorizontal, PushSpeed: cf}, nil
	case idPushZoneVertical:
		return PushZone{Type: PushZoneVertical, PushSpeed: cf}, nil
	case idPushZoneHorizontalSmall:
		return PushZone{Type: PushZoneHorizontalSmall, PushSpeed: cf}, nil
	case idVerticalWindZone:
		return VerticalWindZone{Acceleration: cf}, nil
	case idSuperDragonLandingZone:
		return SuperDragonLandingZone{WaypointID: uint8(ci)}, nil
	case idSuperDragon:
		return SuperDragon{WaypointID: uint8(ci)}, nil
	case idJumpthrough, idJumpthroughBig:
		return Jumpthrough{Big: id == idJumpthroughBig}, nil
	case idHealthSetTrigger:
		return HealthSetTrigger{TargetHealth: cf}, nil
	case idGraphicsChangeTrigger:
		s, ok := t.line(ci)
		if !ok {
			return bad(GraphicsChangeTrigger{}, "text row %d out of range", ci)
		}
		return GraphicsChangeTrigger{GfxFile: s}, nil
	case idBossBarInfo:
		s, ok := t.line(ci)
		if !ok {
			return bad(BossBarInfo{}, "text row %d out of range", ci)
		}
		return BossBarInfo{BossName: s}, nil
	case idFinishTrigger:
		s, ok := t.line(ci)
		if !ok {
			return bad(FinishTrigger{}, "text row %d out of range", ci)
		}
		return FinishTrigger{NextLevel: s}, nil
	case idBgSpeedHorizontal, idBgSpeedVertical:
		return BgSpeed{VerticalAxis: id == idBgSpeedVertical, Layer: uint32(ci), Speed: cf}, nil
	case idBgTransparency:
		return BgTransparency{Layer: uint32(ci), Transparency: uint8(cf)}, nil
	case idTeleportTrigger1:
		return TeleportTrigger1{LinkID: uint32(ci), DelaySecs: cf}, nil
	case idSfxPoint:
		return SfxPoint{SoundID: uint32(ci)}, nil
	case idBreakableWall:
		return BreakableWall{Health: cf}, nil
	case idBreakableWallSkinned:
		skin := uint8(ci)
		return BreakableWall{SkinID: &skin, Health: cf}, nil
	case idMovingPlatform, idMovingPlatformVertical:
		return MovingPlatform{Vertical: id == idMovingPlatformVertical, Dist: cf * float32(ci), Speed: cf}, nil
	case idDisappearingPlatform:
		return DisappearingPlatform{TimeOn: float32(ci) / FrameRate, TimeOff: cf / FrameRate}, nil
	case idSpringBoard:
		return SpringBoard{JumpVelocity: cf}, nil
	case idBreakablePlatform:
		return BreakablePlatform{TimeTillFall: float32(ci) / FrameRate}, nil
	case idCustomizablePlatform:
		return decodePlatform(ci, cf), nil
	case idLockedBlockRed:
		return LockedBlock{Color: KeyRed, ConsumeKey: ci != 0}, nil
	case idLockedBlockGreen:
		return LockedBlock{Color: KeyGreen, ConsumeKey: ci != 0}, nil
	case idLockedBlockBlue:
		return LockedBlock{Color: KeyBlue, ConsumeKey: ci != 0}, nil
	case idVortex:
		return Vortex{AttractEnemies: ci != 0}, nil
	case idRuneIce:
		return WandRune{Rune: RuneIce}, nil
	case idRuneAir:
		return WandRune{Rune: RuneAir}, nil
	case idRuneFire:
		return WandRune{Rune: RuneFire}, nil
	case idRuneLightning:
		return WandRune{Rune: RuneLightning}, nil
	case idMaxPowerRune:
		u := UpgradeTrigger{Kind: UpgradeMaxPowerRune}
		if ci > 0 && ci <= 256 {
			skin := uint8(ci - 1)
			u.SkinOverride = &skin
		}
		return u, nil
	case idDeephausBoots:
		return UpgradeTrigger{Kind: UpgradeDeephausBoots}, nil
	case idWings:
		return UpgradeTrigger{Kind: UpgradeWings}, nil
	case idCrystalWings:
		return UpgradeTrigger{Kind: UpgradeCrystalWings}, nil
	case idUpgradeVortex:
		return UpgradeTrigger{Kind: UpgradeVortex}, nil
	case idUpgradeNone:
		return UpgradeTrigger{Kind: UpgradeNone}, nil
	case idSlime, idFlyingSlime:
		return Slime{Flying: id == idFlyingSlime}, nil
	case idHeavy:
		return Heavy{Speed: float32(math.Abs(float64(cf))), FaceLeft: math.Signbit(float64(cf))}, nil
	case idDragon:
		return Dragon{SpaceSkin: ci != 0}, nil
	case idBozoPin:
		return BozoPin{FlyingSpeed: cf}, nil
	case idBozo, idBozoMarkII:
		return Bozo{MarkII: id == idBozoMarkII}, nil
	case idSilverSlime:
		return SilverSlime{}, nil
	case idLavaMonster:
		return LavaMonster{FaceLeft: ci != 0}, nil
	case idTtMinionSmall, idTtMinionBig:
		return TtMinion{Small: id == idTtMinionSmall}, nil
	case idSlimeWalker:
		return SlimeWalker{}, nil
	case idMegaFish:
		return MegaFish{WaterLevel: ci, SwimmingSpeed: cf}, nil
	case idLavaDragonHead:
		if ci < 0 || ci > maxLavaDragonLen {
			return bad(LavaDragonHead{Len: maxLavaDragonLen, Health: cf}, "lava dragon has %d segments", ci)
		}
		return LavaDragonHead{Len: uint32(ci), Health: cf}, nil
	case idTtBoss:
		return TtBoss{Speed: cf}, nil
	case idEaterBug:
		return EaterBug{PopUpSpeed: cf}, nil
	case idSpiderWalker:
		return SpiderWalker{Speed: cf}, nil
	case idSpikeTrap:
		return SpikeTrap{}, nil
	case idBozoLaserMinion:
		return BozoLaserMinion{Speed: cf}, nil
	case idSpikeGuy:
		return SpikeGuy{}, nil
	case idBanditGuy:
		return BanditGuy{Speed: cf}, nil
	case idKamakaziSlime:
		return KamakaziSlime{}, nil
	case idRockGuyMedium:
		return RockGuy{Type: RockGuyMedium}, nil
	case idRockGuySmall1:
		return RockGuy{Type: RockGuySmall1}, nil
	case idRockGuySmall2:
		return RockGuy{Type: RockGuySmall2, FaceLeft: ci != 0}, nil
	case idRockGuySlider:
		return RockGuySlider{}, nil
	case idRockGuySmasher:
		return RockGuySmasher{}, nil
	case idWolf:
		return Wolf{}, nil
	case idSupervirus:
		return Supervirus{}, nil
	case idGravityTrigger:
		return GravityTrigger{Gravity: cf}, nil
	case idSkinUnlock:
		return SkinUnlock{ID: uint8(ci)}, nil
	case idCoolPlatform:
		return CoolPlatform{
			TimeOffBefore: ci & 0xffff,
			TimeOn:        int32(cf),
			TimeOffAfter:  int32(uint32(ci) >> 16),
		}, nil
	}
	if id >= idLuaFirst && id <= idLuaLast {
		return Lua{Type: uint8(id - idLuaFirst)}, nil
	}
	return bad(Slime{}, "unknown object type %d", id)
}

// encodeWobj maps w to its type id and custom values, adding table rows to b.
// pos is the spawner position, used by spawn and checkpoint rows.
func encodeWobj(w WobjType, b *tableBuilder, pos Point) (id, ci int32, cf float32, err error) {
	switch w := w.(type) {
	case Teleport:
		ci, err = b.addTeleport(w)
		return idTeleport, ci, 0, err
	case TeleportArea1:
		ci, err = b.addTeleport(Teleport{Name: teleArea1Name, Loc: w.Loc})
		return idTeleportArea1, ci, float32(w.LinkID), err
	case TeleportArea2:
		ci, err = b.addTeleport(Teleport{Name: teleArea2Name, Loc: w.Loc})
		return idTeleportArea2, ci, float32(w.LinkID), err
	case TunesTrigger:
		switch w.Size {
		case TunesTriggerBig:
			id = idTunesTriggerBig
		case TunesTriggerVeryBig:
			id = idTunesTriggerVeryBig
		default:
			id = idTunesTriggerSmall
		}
		return id, int32(w.MusicID), 0, nil
	case PlayerSpawn:
		ci, err = b.addSpawn(pos)
		return idPlayerSpawn, ci, 0, err
	case Checkpoint:
		ci, err = b.addCheckpoint(pos)
		return idCheckpoint, ci, 0, err
	case TextSpawner:
		id = idEndingText
		if w.DialogueBox {
			id = idDialogueBox
		}
		var end int32
		ci, end, err = b.addText(w.Text)
		return id, ci, float32(end), err
	case GraphicsChangeTrigger:
		ci, err = b.addLine(w.GfxFile)
		return idGraphicsChangeTrigger, ci, 0, err
	case BossBarInfo:
		ci, err = b.addLine(w.BossName)
		return idBossBarInfo, ci, 0, err
	case FinishTrigger:
		ci, err = b.addLine(w.NextLevel)
		return idFinishTrigger, ci, 0, err
	case BackgroundSwitcher:
		switch w.Shape {
		case BackgroundSwitcherHorizontal:
			id = idBackgroundSwitcherH
		case BackgroundSwitcherVertical:
			id = idBackgroundSwitcherV
		default:
			id = idBackgroundSwitcher
		}
		return id, int32(w.Start), float32(w.End), nil
	case DroppedItem:
		if w.Item >= numItemTypes {
			return 0, 0, 0, invalidValue("item %d", w.Item)
		}
		return idDroppedItem, int32(w.Item.ID()), 0, nil
	case TtNode:
		switch w.Node {
		case TtNodeChaseTrigger:
			return idTtChaseTrigger, 0, 0, nil
		case TtNodeWaypoint:
			return idTtWaypoint, w.Waypoint, 0, nil
		default:
			return idTtNormalTrigger, 0, 0, nil
		}
	case RotatingFireColumnPiece:
		return idRotatingFireColumnPiece, w.OriginX, w.DegreesPerSecond / FrameRate, nil
	case MovingFire:
		id = idMovingFireHorizontal
		if w.Vertical {
			id = idMovingFireVertical
		}
		cf = float32(math.Abs(float64(w.Speed)))
		if w.Despawn {
			cf = float32(math.Copysign(float64(cf), -1))
		}
		return id, w.Dist, cf, nil
	case PushZone:
		switch w.Type {
		case PushZoneVertical:
			id = idPushZoneVertical
		case PushZoneHorizontalSmall:
			id = idPushZoneHorizontalSmall
		default:
			id = idPushZoneHorizontal
		}
		return id, 0, w.PushSpeed, nil
	case VerticalWindZone:
		return idVerticalWindZone, 0, w.Acceleration, nil
	case SuperDragonLandingZone:
		return idSuperDragonLandingZone, int32(w.WaypointID), 0, nil
	case SuperDragon:
		return idSuperDragon, int32(w.WaypointID), 0, nil
	case Jumpthrough:
		id = idJumpthrough
		if w.Big {
			id = idJumpthroughBig
		}
		return id, 0, 0, nil
	case HealthSetTrigger:
		return idHealthSetTrigger, 0, w.TargetHealth, nil
	case BgSpeed:
		id = idBgSpeedHorizontal
		if w.VerticalAxis {
			id = idBgSpeedVertical
		}
		return id, int32(w.Layer), w.Speed, nil
	case BgTransparency:
		return idBgTransparency, int32(w.Layer), float32(w.Transparency), nil
	case TeleportTrigger1:
		return idTeleportTrigger1, int32(w.LinkID), w.DelaySecs, nil
	case SfxPoint:
		return idSfxPoint, int32(w.SoundID), 0, nil
	case BreakableWall:
		if w.SkinID != nil {
			return idBreakableWallSkinned, int32(*w.SkinID), w.Health, nil
		}
		return idBreakableWall, 0, w.Health, nil
	case MovingPlatform:
		id = idMovingPlatform
		if w.Vertical {
			id = idMovingPlatformVertical
		}
		if w.Speed == 0 {
			if w.Dist != 0 {
				return 0, 0, 0, invalidValue("moving platform travels %v at speed 0", w.Dist)
			}
			return id, 0, 0, nil
		}
		return id, int32(math.Round(float64(w.Dist / w.Speed))), w.Speed, nil
	case DisappearingPlatform:
		return idDisappearingPlatform, int32(math.Round(float64(w.TimeOn * FrameRate))), w.TimeOff * FrameRate, nil
	case SpringBoard:
		return idSpringBoard, 0, w.JumpVelocity, nil
	case BreakablePlatform:
		return idBreakablePlatform, int32(math.Round(float64(w.TimeTillFall * FrameRate))), 0, nil
	case CustomizableMovingPlatform:
		ci, cf, err = encodePlatform(w)
		return idCustomizablePlatform, ci, cf, err
	case LockedBlock:
		switch w.Color {
		case KeyGreen:
			id = idLockedBlockGreen
		case KeyBlue:
			id = idLockedBlockBlue
		default:
			id = idLockedBlockRed
		}
		return id, b2i(w.ConsumeKey), 0, nil
	case Vortex:
		return idVortex, b2i(w.AttractEnemies), 0, nil
	case WandRune:
		switch w.Rune {
		case RuneIce:
			return idRuneIce, 0, 0, nil
		case RuneAir:
			return idRuneAir, 0, 0, nil
		case RuneLightning:
			return idRuneLightning, 0, 0, nil
		default:
			return idRuneFire, 0, 0, nil
		}
	case UpgradeTrigger:
		switch w.Kind {
		case UpgradeMaxPowerRune:
			if w.SkinOverride != nil {
				return idMaxPowerRune, int32(*w.SkinOverride) + 1, 0, nil
			}
			return idMaxPowerRune, 0, 0, nil
		case UpgradeDeephausBoots:
			return idDeephausBoots, 0, 0, nil
		case UpgradeCrystalWings:
			return idCrystalWings, 0, 0, nil
		case UpgradeVortex:
			return idUpgradeVortex, 0, 0, nil
		case UpgradeNone:
			return idUpgradeNone, 0, 0, nil
		default:
			return idWings, 0, 0, nil
		}
	case Slime:
		id = idSlime
		if w.Flying {
			id = idFlyingSlime
		}
		return id, 0, 0, nil
	case Heavy:
		cf = float32(math.Abs(float64(w.Speed)))
		if w.FaceLeft {
			cf = float32(math.Copysign(float64(cf), -1))
		}
		return idHeavy, 0, cf, nil
	case Dragon:
		return idDragon, b2i(w.SpaceSkin), 0, nil
	case BozoPin:
		return idBozoPin, 0, w.FlyingSpeed, nil
	case Bozo:
		id = idBozo
		if w.MarkII {
			id = idBozoMarkII
		}
		return id, 0, 0, nil
	case SilverSlime:
		return idSilverSlime, 0, 0, nil
	case LavaMonster:
		return idLavaMonster, b2i(w.FaceLeft), 0, nil
	case TtMinion:
		id = idTtMinionBig
		if w.Small {
			id = idTtMinionSmall
		}
		return id, 0, 0, nil
	case SlimeWalker:
		return idSlimeWalker, 0, 0, nil
	case MegaFish:
		return idMegaFish, w.WaterLevel, w.SwimmingSpeed, nil
	case LavaDragonHead:
		if w.Len > maxLavaDragonLen {
			return 0, 0, 0, invalidValue("lava dragon has %d segments, at most %d", w.Len, maxLavaDragonLen)
		}
		return idLavaDragonHead, int32(w.Len), w.Health, nil
	case TtBoss:
		return idTtBoss, 0, w.Speed, nil
	case EaterBug:
		return idEaterBug, 0, w.PopUpSpeed, nil
	case SpiderWalker:
		return idSpiderWalker, 0, w.Speed, nil
	case SpikeTrap:
		return idSpikeTrap, 0, 0, nil
	case BozoLaserMinion:
		return idBozoLaserMinion, 0, w.Speed, nil
	case SpikeGuy:
		return idSpikeGuy, 0, 0, nil
	case BanditGuy:
		return idBanditGuy, 0, w.Speed, nil
	case KamakaziSlime:
		return idKamakaziSlime, 0, 0, nil
	case RockGuy:
		switch w.Type {
		case RockGuySmall1:
			return idRockGuySmall1, 0, 0, nil
		case RockGuySmall2:
			return idRockGuySmall2, b2i(w.FaceLeft), 0, nil
		default:
			return idRockGuyMedium, 0, 0, nil
		}
	case RockGuySlider:
		return idRockGuySlider, 0, 0, nil
	case RockGuySmasher:
		return idRockGuySmasher, 0, 0, nil
	case Wolf:
		return idWolf, 0, 0, nil
	case Supervirus:
		return idSupervirus, 0, 0, nil
	case Lua:
		if int32(w.Type) > idLuaLast-idLuaFirst {
			return 0, 0, 0, invalidValue("lua object type %d", w.Type)
		}
		return idLuaFirst + int32(w.Type), 0, 0, nil
	case GravityTrigger:
		return idGravityTrigger, 0, w.Gravity, nil
	case SkinUnlock:
		return idSkinUnlock, int32(w.ID), 0, nil
	case CoolPlatform:
		if w.TimeOffBefore < 0 || w.TimeOffBefore > 0xffff || w.TimeOffAfter < 0 || w.TimeOffAfter > 0x7fff {
			return 0, 0, 0, invalidValue("cool platform times %d/%d", w.TimeOffBefore, w.TimeOffAfter)
		}
		return idCoolPlatform, w.TimeOffBefore | w.TimeOffAfter<<16, float32(w.TimeOn), nil
	case nil:
		return 0, 0, 0, invalidValue("spawner has no object type")
	}
	return 0, 0, 0, invalidValue("object type %T", w)
}
