package sand

import (
	"testing"

	"sand-ca/internal/core"
)

func TestParticleTable(t *testing.T) {
	if NumTypes() != 3 {
		t.Fatalf("expected 3 particle types, got %d", NumTypes())
	}
	if Lookup(core.CodeAir).HasGravity || Lookup(core.CodeWall).HasGravity {
		t.Fatal("air and wall must not fall")
	}
	if !Lookup(core.CodeSand).HasGravity {
		t.Fatal("sand must fall")
	}
	for code := 0; code < NumTypes(); code++ {
		if got := Lookup(uint8(code)).Color; got != uint8(code) {
			t.Fatalf("code %d has color %d", code, got)
		}
	}
}

func TestLookupPanicsOutsideTable(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for code 3")
		}
	}()
	Lookup(3)
}
