// Package cnma reads and writes Cnma files, the line oriented game
// configuration format of CNM Online.
//
// A file is a sequence of sections, each opened by a header line:
//
//	MODE MUSIC
//	0 music/title.mid
//	1 music/caves.mid
//	MODE LEVELSELECT_ORDER
//	caves _
//	title _
//	MODE LUA_AUTORUN
//	print("hello")
//	__ENDLUA__
//
// LUA_AUTORUN and PETDEFS are locked sections: their lines are taken as data
// until the __ENDLUA__ or ENDPETS terminator, even when they begin with MODE.
//
// LEVELSELECT_ORDER is stored bottom first. Parse and WriteTo both reverse it,
// so LevelSelectOrder.Levels is always in menu order.
package cnma
