// Package lparse implements the LParse binary container used by CNM Online
// level files (.cnmb block files and .cnms spawner files).
//
// A container is a fixed-capacity table of named, typed arrays. Higher level
// structures (tile grids, tile properties, spawners) are projected onto these
// arrays by package leveldata.
//
// # File Format Overview
//
// An LParse file consists of:
//   - The 4-byte magic "CNML" and a little-endian uint32 version id
//   - Exactly MaxEntries entry headers, each a NUL-padded name followed by
//     little-endian uint32 type tag, element count and absolute byte offset
//   - The payload region: each entry's elements packed little-endian
//
// Element types are i32, u32, u8, u16, f32 and rect (four i32). Null and
// dummy entries carry no payload. Unused header slots are written as null
// headers with an empty name.
//
// # Basic Usage
//
//	c, _ := lparse.New(lparse.VersionV1)
//	c.SetI32("BLOCKS_HEADER", []int32{512, 256, 257})
//	err := c.WriteFile("level.cnmb")
//
// Reading is type-checked; asking for the wrong element type returns
// [ErrWrongType] instead of panicking:
//
//	c, err := lparse.ReadFile("level.cnmb")
//	hdr, err := c.I32("BLOCKS_HEADER")
//
// # Security Considerations
//
// Decode bounds the input size and per-entry element counts with [Limits] and
// rejects payloads that point outside the file before allocating for them.
package lparse
