package benchmarking

import (
	"math/rand"
)

// RandomBits creates a random [0,1] bit slice of length len.
func RandomBits(rng *rand.Rand, len int) []uint8 {
	bits := make([]uint8, len)
	for i := range bits {
		bits[i] = uint8(rng.Intn(2))
	}
	return bits
}
