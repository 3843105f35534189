package generator

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand"
)

// Source yields uniformly distributed integers in [0, n).
type Source interface {
	Intn(n int) int
}

type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand. It is safe for concurrent use.
func NewCryptoSource() Source {
	return cryptoSource{}
}

func (cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("generator: invalid range %d", n))
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("generator: crypto source failed: %v", err))
	}
	return int(v.Int64())
}

// NewSeededSource returns a deterministic Source. It is not safe for concurrent use.
func NewSeededSource(seed int64) Source {
	return mrand.New(mrand.NewSource(seed))
}
