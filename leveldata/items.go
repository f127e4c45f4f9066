package leveldata

import "fmt"

// ItemType is an item an object can drop or a player can pick up.
type ItemType uint8

const (
	ItemShotgun ItemType = iota
	ItemKnife
	ItemApple
	ItemCake
	ItemStrengthPotion
	ItemSpeedPotion
	ItemJumpPotion
	ItemSword
	ItemHealthPotion
	ItemSniper
	ItemMoney50
	ItemMoney100
	ItemMoney500
	ItemCheeseburger
	ItemGoldenAxe
	ItemUnboundWand
	ItemFireWand
	ItemIceWand
	ItemAirWand
	ItemLightningWand
	ItemGoldenShotgun
	ItemLaserRifle
	ItemRocketLauncher
	ItemFirePotion
	ItemMinigun
	ItemMegaPotion
	ItemUltraMegaPotion
	ItemAwp
	ItemFlamethrower
	ItemPoisonousStrengthPotion
	ItemPoisonousSpeedPotion
	ItemPoisonousJumpPotion
	ItemBeastchurger
	ItemUltraSword
	ItemHeavyHammer
	ItemFissionGun
	ItemKeyRed
	ItemKeyGreen
	ItemKeyBlue

	numItemTypes
)

var itemNames = [numItemTypes]string{
	"Shotgun", "Knife", "Apple", "Cake", "StrengthPotion", "SpeedPotion", "JumpPotion",
	"Sword", "HealthPotion", "Sniper", "Money50", "Money100", "Money500", "Cheeseburger",
	"GoldenAxe", "UnboundWand", "FireWand", "IceWand", "AirWand", "LightningWand",
	"GoldenShotgun", "LaserRifle", "RocketLauncher", "FirePotion", "Minigun", "MegaPotion",
	"UltraMegaPotion", "Awp", "Flamethrower", "PoisonousStrengthPotion",
	"PoisonousSpeedPotion", "PoisonousJumpPotion", "Beastchurger", "UltraSword",
	"HeavyHammer", "FissionGun", "KeyRed", "KeyGreen", "KeyBlue",
}

func (t ItemType) String() string {
	if t < numItemTypes {
		return itemNames[t]
	}
	return fmt.Sprintf("ItemType(%d)", uint8(t))
}

// ID is the on-disk item id. 0 is reserved for "no item".
func (t ItemType) ID() uint32 { return uint32(t) + 1 }

// ItemTypeFromID maps an on-disk item id back to an item. ok is false for 0
// and for ids past the last item.
func ItemTypeFromID(id uint32) (t ItemType, ok bool) {
	if id == 0 || id > uint32(numItemTypes) {
		return 0, false
	}
	return ItemType(id - 1), true
}

// ItemTypes lists every item in id order.
func ItemTypes() []ItemType {
	out := make([]ItemType, numItemTypes)
	for i := range out {
		out[i] = ItemType(i)
	}
	return out
}
