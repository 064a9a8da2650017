package nandc

import (
	"fmt"
	"math/bits"
)

const (
	DefaultECCStep     = 1024
	DefaultECCStrength = 24

	// oobReserved leading OOB bytes hold the bad block marker.
	oobReserved = 2
)

// Geometry is what the protocol engine learns from the chip's ID response.
type Geometry struct {
	PageSize int
	OOBSize  int
}

func (g Geometry) String() string {
	return fmt.Sprintf("%d+%d", g.PageSize, g.OOBSize)
}

// EccGeometry describes one ECC codeword.
type EccGeometry struct {
	Step     int // data bytes per codeword
	Strength int // correctable bit errors per codeword
	Bytes    int // code bytes per codeword
}

// ByteRange is a contiguous run of OOB bytes.
type ByteRange struct {
	Offset int
	Length int
}

// End returns the first offset past the range.
func (r ByteRange) End() int { return r.Offset + r.Length }

// OobLayout is the on-media placement of ECC and free bytes in the OOB area.
type OobLayout struct {
	ECCBytes int
	ECC      ByteRange
	Free     []ByteRange
}

// ECCPositions returns the OOB offset of every ECC byte in order.
func (l OobLayout) ECCPositions() []int {
	pos := make([]int, l.ECC.Length)
	for i := range pos {
		pos[i] = l.ECC.Offset + i
	}
	return pos
}

// FreeBytes returns the total number of free OOB bytes.
func (l OobLayout) FreeBytes() int {
	n := 0
	for _, r := range l.Free {
		n += r.Length
	}
	return n
}

// CodeBytes returns the number of BCH parity bytes per step. A BCH code over
// GF(2^m) needs m*strength parity bits, where m is the bit length of the
// codeword size in bits. The truncating division is part of the on-media
// format.
func CodeBytes(step, strength int) int {
	return bits.Len(uint(1+8*step)) * strength / 8
}

// Plan computes the ECC codeword parameters and the OOB layout for a chip.
// Non-positive step and strength select DefaultECCStep and
// DefaultECCStrength.
func Plan(g Geometry, step, strength int) (EccGeometry, OobLayout, error) {
	if step <= 0 {
		step = DefaultECCStep
	}
	if strength <= 0 {
		strength = DefaultECCStrength
	}

	lerr := &LayoutError{PageSize: g.PageSize, OOBSize: g.OOBSize, Step: step, Strength: strength}
	if g.PageSize <= 0 || g.OOBSize <= 0 {
		lerr.Reason = "unknown page geometry"
		return EccGeometry{}, OobLayout{}, lerr
	}

	eg := EccGeometry{
		Step:     step,
		Strength: strength,
		Bytes:    CodeBytes(step, strength),
	}
	eccbytes := g.PageSize / step * eg.Bytes

	free := g.OOBSize - eccbytes - oobReserved
	if free < 0 {
		lerr.ECCBytes = eccbytes
		return EccGeometry{}, OobLayout{}, lerr
	}

	return eg, OobLayout{
		ECCBytes: eccbytes,
		ECC:      ByteRange{Offset: g.OOBSize - eccbytes, Length: eccbytes},
		Free:     []ByteRange{{Offset: oobReserved, Length: free}},
	}, nil
}
