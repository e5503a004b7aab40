package sand

import (
	"fmt"

	"sand-ca/internal/core"
)

// ParticleType describes how a particle code is drawn and whether it falls.
type ParticleType struct {
	Color      uint8
	HasGravity bool
}

// particleTypes is indexed by particle code. Colors equal codes so a moved
// particle keeps its code.
var particleTypes = [...]ParticleType{
	core.CodeAir:  {Color: core.CodeAir},
	core.CodeSand: {Color: core.CodeSand, HasGravity: true},
	core.CodeWall: {Color: core.CodeWall},
}

// Lookup returns the particle type for code. A code outside the table can
// only come from a corrupted grid and panics.
func Lookup(code uint8) ParticleType {
	if int(code) >= len(particleTypes) {
		panic(fmt.Sprintf("sand: particle code %d outside table", code))
	}
	return particleTypes[code]
}

// NumTypes returns the number of defined particle codes.
func NumTypes() int { return len(particleTypes) }
