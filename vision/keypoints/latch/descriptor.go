package latch

import (
	"encoding/binary"
	"encoding/hex"
	"math/bits"

	"github.com/steakknife/hamming"
)

// Descriptor is a 512-bit LATCH descriptor. Bit i, for triplet i, is bit 7-i%8 of byte i/8.
type Descriptor [DescriptorSize]byte

// Bit returns the bit computed for triplet i.
func (d *Descriptor) Bit(i int) bool {
	return d[i/8]&(0x80>>(i%8)) != 0
}

// Uint64s returns the descriptor as eight little endian words, the layout of a descriptor
// written into a uint64 buffer on little endian hosts.
func (d *Descriptor) Uint64s() [DescriptorSize / 8]uint64 {
	var words [DescriptorSize / 8]uint64
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(d[i*8:])
	}
	return words
}

// LSBFirst returns the descriptor with the bits of every byte reversed, so that triplet i is
// bit i%8 of byte i/8.
func (d *Descriptor) LSBFirst() Descriptor {
	var out Descriptor
	for i, b := range d {
		out[i] = bits.Reverse8(b)
	}
	return out
}

// Weight returns the number of set bits.
func (d *Descriptor) Weight() int {
	words := d.Uint64s()
	return hamming.CountBitsUint64s(words[:])
}

// HammingDistance returns the number of bits that differ between d and other.
func (d *Descriptor) HammingDistance(other *Descriptor) int {
	a, b := d.Uint64s(), other.Uint64s()
	return hamming.Uint64s(a[:], b[:])
}

func (d Descriptor) String() string {
	return hex.EncodeToString(d[:])
}
