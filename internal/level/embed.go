package level

import "embed"

//go:embed levels/LVL*.txt
var builtinFS embed.FS

// Builtin returns a loader over the levels compiled into the binary.
func Builtin() *FSLoader {
	return NewFSLoader(builtinFS, "levels")
}
