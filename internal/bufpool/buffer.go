package bufpool

import "unsafe"

const (
	alignment = 64 // bytes; cache-line and AVX-512 register width
	elemSize  = 8  // bytes per float64
	padElems  = alignment / elemSize
)

// Buffer is an aligned float64 slice checked out from a Pool. The zero
// value is not usable; obtain one via Pool.Acquire.
type Buffer struct {
	data   []float64 // aligned view, len == requested element count
	raw    []float64 // backing over-allocated slice; owns the memory
	bucket int       // element count this buffer was acquired/released at
}

// Data returns the aligned slice view. Its first element's address is a
// multiple of 64 bytes.
func (b *Buffer) Data() []float64 { return b.data }

// Len returns the number of elements in the buffer.
func (b *Buffer) Len() int { return len(b.data) }

func newAligned(n int) *Buffer {
	if n <= 0 {
		return &Buffer{data: []float64{}, raw: []float64{}, bucket: n}
	}
	raw := make([]float64, n+padElems)
	base := uintptr(unsafe.Pointer(&raw[0]))
	misalign := base % alignment
	offset := 0
	if misalign != 0 {
		offset = int((alignment - misalign) / elemSize)
	}
	data := raw[offset : offset+n : offset+n]
	return &Buffer{data: data, raw: raw, bucket: n}
}

func (b *Buffer) byteFootprint() int64 {
	return int64(cap(b.raw)) * elemSize
}
