// Package entropy provides the secure seed source for lottery draws.
package entropy

import (
	"context"
	"crypto/rand"
	"encoding/binary"
)

// CryptoSeedSource draws 32-bit seeds from crypto/rand. The seed is stored
// with the draw record, so it stays small enough to read off an acta while
// remaining unpredictable at draw time.
type CryptoSeedSource struct{}

func (CryptoSeedSource) NewSeed(_ context.Context) (uint64, error) {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return uint64(binary.BigEndian.Uint32(buf[:])), nil
}
