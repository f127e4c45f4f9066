// Package leveldata decodes and encodes CNM Online levels.
//
// A level is stored as two LParse containers: the block file (.cnmb) holds
// the cell grid, the tile table and the background layers, and the spawner
// file (.cnms) holds the spawners and the auxiliary tables they reference
// (teleports, text rows, player spawns and checkpoints).
//
// # Basic Usage
//
//	level, err := leveldata.LoadFiles("level.cnmb", "level.cnms")
//	if err != nil {
//		return err
//	}
//	level.Metadata.Title = "Lava Caves"
//	level.Spawners = append(level.Spawners, leveldata.Spawner{
//		Pos:  leveldata.Point{X: 64, Y: 128},
//		Type: leveldata.PlayerSpawn{},
//	})
//	return level.SaveFiles("level.cnmb", "level.cnms")
//
// # World Objects
//
// Each spawner carries a WobjType. On disk it is flattened into a type id, a
// custom int and a custom float; variants with strings or positions store
// them in the auxiliary tables and keep the row index. Equal rows are shared
// between spawners, so the fixed-size tables fill up only with distinct
// values. Running out of rows fails the save with ErrCapacity.
//
// # Corrupted Levels
//
// Decoding is strict by default. Levels made by old tools sometimes carry
// garbage values; WithLenient replaces those with defaults and
// WithWarningHandler reports each replacement.
package leveldata
