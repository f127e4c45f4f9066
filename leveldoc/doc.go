// Package leveldoc converts levels to and from snapshot documents in YAML or
// CBOR.
//
// A snapshot holds everything LevelData holds, in a form that survives hand
// editing. World objects are tagged by their Go type name:
//
//	spawners:
//	  - pos: {x: 64, y: 128}
//	    object:
//	      kind: TextSpawner
//	      params:
//	        dialoguebox: false
//	        text: Welcome!
//
// The CBOR form uses core deterministic encoding, so snapshots of equal levels
// are byte identical.
//
//	doc := leveldoc.FromLevel(level)
//	err := leveldoc.WriteFile("level.yaml", doc, leveldoc.FormatYAML)
package leveldoc
