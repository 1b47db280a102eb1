package linearblock

import (
	"math/rand"
	"strconv"
	"testing"

	mat "github.com/nathanhack/sparsemat"
)

func TestOrderUnorderVector(t *testing.T) {
	vec := mat.DOKVec(100)
	columns := make([]int, vec.Len())
	for i := 0; i < vec.Len(); i++ {
		vec.Set(i, rand.Intn(2))
		columns[i] = i
	}

	rand.Shuffle(len(columns), func(i, j int) {
		columns[i], columns[j] = columns[j], columns[i]
	})

	swapped := ToSystematic(vec, columns)
	actual := ToNonSystematic(swapped, columns)

	if !vec.Equals(actual) {
		t.Fatalf("expected %v but found %v", vec, actual)
	}
}

func TestBitsVectorConversion(t *testing.T) {
	tests := []struct {
		bits []uint8
	}{
		{[]uint8{0}},
		{[]uint8{1, 0, 1, 1}},
		{[]uint8{0, 0, 0, 1, 1, 1, 0}},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			v := VectorFromBits(test.bits)
			if v.Len() != len(test.bits) {
				t.Fatalf("expected length %v but found %v", len(test.bits), v.Len())
			}
			actual := make([]uint8, len(test.bits))
			BitsFromVector(v, actual)
			for j := range actual {
				if actual[j] != test.bits[j] {
					t.Fatalf("expected %v but found %v", test.bits, actual)
				}
			}
		})
	}
}
