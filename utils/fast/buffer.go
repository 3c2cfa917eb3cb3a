package fast

// buffer.go provides a lightweight, non-thread-safe cursor over a byte slice.
//
// The encoder scans its input one byte at a time; Reader keeps that scan to an
// index increment. It performs NO bounds checking (reading past the end panics),
// so callers test Empty first.

// Reader consumes a byte slice front to back.
type Reader struct {
	// buf is the underlying data source.
	buf []byte
	// offset is the index of the next unread byte.
	offset int
}

// NewReader creates a Reader over bb.
func NewReader(bb []byte) *Reader {
	return &Reader{
		buf:    bb,
		offset: 0,
	}
}

// Read consumes and returns the next 'n' bytes.
// The returned slice shares memory with the underlying buffer.
func (b *Reader) Read(n int) []byte {
	res := b.buf[b.offset : b.offset+n]
	b.offset += n
	return res
}

// ReadByte consumes and returns a single byte.
// WARNING: Panics if the reader is empty.
func (b *Reader) ReadByte() byte {
	res := b.buf[b.offset]
	b.offset++
	return res
}

// Position returns the number of bytes consumed so far.
func (b *Reader) Position() int {
	return b.offset
}

// Remaining returns the number of unread bytes.
func (b *Reader) Remaining() int {
	return len(b.buf) - b.offset
}

// Bytes returns the entire underlying buffer.
func (b *Reader) Bytes() []byte {
	return b.buf
}

// Empty reports whether every byte has been consumed.
func (b *Reader) Empty() bool {
	return len(b.buf) == b.offset
}
