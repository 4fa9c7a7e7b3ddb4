package ezid

import (
	"crypto/rand"
	"fmt"
	"io"
)

// rander is the entropy source for the random component. Overridable in
// tests; anything assigned here must be safe for concurrent use.
var rander = rand.Reader

// randomBytes returns 16 fresh bytes from the CSPRNG. An entropy failure
// means no ID can be safely generated, so panic is appropriate.
func randomBytes() [randomnessBytes]byte {
	var b [randomnessBytes]byte
	if _, err := io.ReadFull(rander, b[:]); err != nil {
		panic(fmt.Errorf("ezid: cannot generate random bytes: %v", err))
	}
	return b
}
