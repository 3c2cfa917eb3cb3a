package bits

// This package implements the bit-addressable byte buffer the codec reads and
// writes. Bits are addressed MSB-first: bit index i lives in byte i/8 at bit
// position 7-(i%8), so the first bit written is the high bit of byte 0.
//
// Buffer holds raw bytes (a loaded input file or an accumulating code stream).
// Writer and Reader layer fixed-width integer fields on top of it.

const (
	// GrowthFactor is the multiplier applied to the capacity when an append would exceed it.
	GrowthFactor = 2

	// initialCap is the capacity of a freshly made Buffer.
	initialCap = 8
)

type (
	// Buffer is a growable sequence of bytes with bit-level access.
	// It is not safe for concurrent use.
	Buffer struct {
		data []byte
	}

	// Writer appends fixed-width MSB-first fields to a Buffer.
	// The cursor is the index of the next bit to write.
	Writer struct {
		*Buffer
		bitOffset int
	}

	// Reader consumes fixed-width MSB-first fields from a Buffer.
	Reader struct {
		*Buffer
		bitOffset int
	}
)

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{
		data: make([]byte, 0, initialCap),
	}
}

// FromBytes wraps b without copying. Length and capacity follow the slice.
func FromBytes(b []byte) *Buffer {
	return &Buffer{data: b}
}

// Len returns the logical length in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Cap returns the allocated capacity in bytes.
func (b *Buffer) Cap() int {
	return cap(b.data)
}

// BitLen returns the number of addressable bits (Len()*8).
func (b *Buffer) BitLen() int {
	return len(b.data) * 8
}

// Bytes returns the logical contents. The slice shares memory with the buffer.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// grow multiplies the capacity by GrowthFactor until at least n more bytes fit.
func (b *Buffer) grow(n int) {
	need := len(b.data) + n
	if need <= cap(b.data) {
		return
	}
	newCap := cap(b.data)
	if newCap == 0 {
		newCap = initialCap
	}
	for newCap < need {
		newCap *= GrowthFactor
	}
	data := make([]byte, len(b.data), newCap)
	copy(data, b.data)
	b.data = data
}

// AppendByte appends v to the end of the buffer.
func (b *Buffer) AppendByte(v byte) {
	b.grow(1)
	b.data = append(b.data, v)
}

// Append appends every byte of v.
func (b *Buffer) Append(v []byte) {
	b.grow(len(v))
	b.data = append(b.data, v...)
}

// Bit reports whether bit i is set.
//
// WARNING: i must be below BitLen(); out-of-range access panics.
func (b *Buffer) Bit(i int) bool {
	return b.data[i/8]&(1<<(7-uint(i%8))) != 0
}

// SetBit sets (v == true) or clears bit i. If i lies beyond the current
// length, the buffer is first extended with zero bytes to cover it.
func (b *Buffer) SetBit(i int, v bool) {
	for i/8 >= len(b.data) {
		b.AppendByte(0)
	}
	mask := byte(1) << (7 - uint(i%8))
	if v {
		b.data[i/8] |= mask
	} else {
		b.data[i/8] &^= mask
	}
}

// NewWriter creates a writer that appends after the last byte of buf.
func NewWriter(buf *Buffer) *Writer {
	return &Writer{
		Buffer:    buf,
		bitOffset: buf.BitLen(),
	}
}

// Write appends the lowest 'bits' bits of v, most significant first.
// Example: Write(3, 5) -> writes binary '101'.
func (w *Writer) Write(bits int, v uint64) {
	for j := bits - 1; j >= 0; j-- {
		w.SetBit(w.bitOffset, v&(1<<uint(j)) != 0)
		w.bitOffset++
	}
}

// BitsWritten returns the cursor position: the number of bits before the next write.
func (w *Writer) BitsWritten() int {
	return w.bitOffset
}

// NewReader creates a reader positioned at the first bit of buf.
func NewReader(buf *Buffer) *Reader {
	return &Reader{
		Buffer: buf,
	}
}

// Read extracts 'bits' bits as an unsigned integer and advances the cursor.
//
// WARNING: panics if fewer than 'bits' bits remain; check NonReadBits first.
func (r *Reader) Read(bits int) (v uint64) {
	if bits > r.NonReadBits() {
		panic("bits: read past end of buffer")
	}
	for j := 0; j < bits; j++ {
		v <<= 1
		if r.Bit(r.bitOffset) {
			v |= 1
		}
		r.bitOffset++
	}
	return
}

// View peeks at the next 'bits' bits without advancing the cursor.
func (r *Reader) View(bits int) (v uint64) {
	cp := *r
	return cp.Read(bits)
}

// Offset returns the index of the next bit to read.
func (r *Reader) Offset() int {
	return r.bitOffset
}

// NonReadBits returns the number of unread bits, padding included.
func (r *Reader) NonReadBits() int {
	return r.BitLen() - r.bitOffset
}
