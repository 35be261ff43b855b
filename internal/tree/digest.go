package tree

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Digest returns a hex-encoded BLAKE3 digest of the rendered structure of
// the [Tree]. Trees of identical structure always share the same digest.
func (t *Tree) Digest() string {
	hasher := blake3.New()

	// Writes to a hasher never fail.
	_ = t.Render(hasher)

	return hex.EncodeToString(hasher.Sum(nil))
}
