package modulation

import (
	"fmt"
	"strconv"
	"testing"
)

func TestBPSK_RoundTrip(t *testing.T) {
	tests := []struct {
		bits []uint8
	}{
		{[]uint8{}},
		{[]uint8{0}},
		{[]uint8{1}},
		{[]uint8{1, 0, 1, 1, 0, 0, 0, 1}},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			m := BPSK{}
			actual := m.Demodulate(m.Modulate(test.bits))
			if len(actual) != len(test.bits) {
				t.Fatalf("expected %v bits but found %v", len(test.bits), len(actual))
			}
			for j := range actual {
				if actual[j] != test.bits[j] {
					t.Fatalf("expected %v but found %v", test.bits, actual)
				}
			}
		})
	}
}

func TestBPSK_DemodulateBoundary(t *testing.T) {
	bits := BPSK{}.Demodulate([]complex128{0, -1e-9, complex(0.2, -3), complex(-0.2, 3)})
	expected := []uint8{1, 0, 1, 0}
	for i := range expected {
		if bits[i] != expected[i] {
			t.Fatalf("expected %v but found %v", expected, bits)
		}
	}
}

func ExampleBPSK() {
	m := BPSK{}
	fmt.Println(m.Modulate([]uint8{0, 1, 1}))
	//Output:
	// [(-1+0i) (1+0i) (1+0i)]
}
