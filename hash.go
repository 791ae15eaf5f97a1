package cow

import (
	"hash/maphash"

	"golang.org/x/crypto/blake2b"
)

// Hash returns a seed-stable hash of the container's projected view.
//
// Hash is consistent with Equal: containers with equal views hash
// identically under the same seed, regardless of variant mix, so a Cow
// can key a hash table without forcing promotion.
func Hash[O Viewer[B], B comparable](seed maphash.Seed, c Cow[O, B]) uint64 {
	return maphash.Comparable(seed, c.View())
}

// Digest returns a stable BLAKE2b-256 fingerprint of the projected
// view's serialized form under codec.
//
// Because the wire form carries no variant tag, two containers with
// equal views produce identical digests. Unlike Hash, a digest is
// stable across processes and suitable for content addressing or
// change detection.
func Digest[O Viewer[B], B any](c Cow[O, B], codec Codec) ([]byte, error) {
	data, err := Marshal(c, codec)
	if err != nil {
		return nil, err
	}
	sum := blake2b.Sum256(data)
	return sum[:], nil
}
