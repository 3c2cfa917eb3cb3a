package bits

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testWord is a single value to write and read back.
// 'bits' is the field width, 'v' the value (fits in 'bits').
type testWord struct {
	bits int
	v    uint64
}

// bytesToFit returns the minimum number of bytes holding the given number of bits.
func bytesToFit(bits int) int {
	if bits%8 == 0 {
		return bits / 8
	}
	return bits/8 + 1
}

// genTestWords generates up to maxCount random words of 1..maxBits bits each.
func genTestWords(r *rand.Rand, maxCount int, maxBits int) []testWord {
	count := r.Intn(maxCount)
	words := make([]testWord, count)
	for i := range words {
		if maxBits == 1 {
			words[i].bits = 1
		} else {
			words[i].bits = 1 + r.Intn(maxBits-1)
		}
		words[i].v = uint64(r.Int63n(1 << uint(words[i].bits)))
	}
	return words
}

// testBitBuffer writes all words, checks the byte length, reads them back and
// checks the cursor accounting and padding.
func testBitBuffer(t *testing.T, words []testWord, name string) {
	buf := NewBuffer()
	writer := NewWriter(buf)
	reader := NewReader(buf)

	totalBitsWritten := 0
	for _, w := range words {
		writer.Write(w.bits, w.v)
		totalBitsWritten += w.bits
	}
	assert.EqualValuesf(t, bytesToFit(totalBitsWritten), buf.Len(), "%s: byte length mismatch", name)
	assert.EqualValuesf(t, totalBitsWritten, writer.BitsWritten(), "%s: cursor mismatch", name)

	totalBitsRead := 0
	for _, w := range words {
		assert.EqualValuesf(t, bytesToFit(totalBitsWritten)*8-totalBitsRead, reader.NonReadBits(), "%s: NonReadBits mismatch before read", name)

		v := reader.Read(w.bits)
		assert.EqualValuesf(t, w.v, v, "%s: read value mismatch", name)
		totalBitsRead += w.bits
	}

	assert.Panicsf(t, func() {
		reader.Read(reader.NonReadBits() + 1)
	}, "%s: should panic when reading past the end", name)

	// Padding up to the byte boundary is zero.
	zero := reader.Read(reader.NonReadBits())
	assert.EqualValuesf(t, uint64(0), zero, "%s: padding bits must be zero", name)
	assert.EqualValuesf(t, 0, reader.NonReadBits(), "%s: should have 0 bits left", name)
}

func TestBitBufferEmpty(t *testing.T) {
	testBitBuffer(t, []testWord{}, "empty")
}

func TestBitBufferB1(t *testing.T) {
	testBitBuffer(t, []testWord{{1, 0b1}}, "b1")
}

// TestBitBufferPattern9 crosses a byte boundary (8 bits + 1 bit).
func TestBitBufferPattern9(t *testing.T) {
	testBitBuffer(t, []testWord{{9, 0b010101010}}, "b010101010")
}

// TestBitBufferPattern32 writes the widest code the codec uses.
func TestBitBufferPattern32(t *testing.T) {
	testBitBuffer(t, []testWord{{32, 0xDEADBEEF}, {32, 0xFFFFFFFF}, {3, 0b101}}, "32 bits")
}

func TestBitBufferRand17(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	for i := 0; i < 50; i++ {
		testBitBuffer(t, genTestWords(r, 50, 17), fmt.Sprintf("17 bits, case#%d", i))
	}
}

func TestBitBufferRand32(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		testBitBuffer(t, genTestWords(r, 50, 32), fmt.Sprintf("32 bits, case#%d", i))
	}
}

// TestBuffer_MSBFirst checks the bit numbering inside a byte.
func TestBuffer_MSBFirst(t *testing.T) {
	buf := NewBuffer()
	buf.AppendByte(0b10110000)

	assert.True(t, buf.Bit(0))
	assert.False(t, buf.Bit(1))
	assert.True(t, buf.Bit(2))
	assert.True(t, buf.Bit(3))
	assert.False(t, buf.Bit(4))
	assert.False(t, buf.Bit(7))
	assert.Panics(t, func() { buf.Bit(8) })
}

func TestBuffer_SetBit(t *testing.T) {
	t.Run("extends with zero bytes", func(t *testing.T) {
		buf := NewBuffer()
		buf.SetBit(17, true)
		require.Equal(t, []byte{0x00, 0x00, 0x40}, buf.Bytes())
	})

	t.Run("clear", func(t *testing.T) {
		buf := FromBytes([]byte{0xFF})
		buf.SetBit(0, false)
		buf.SetBit(7, false)
		require.Equal(t, []byte{0x7E}, buf.Bytes())
	})

	t.Run("idempotent", func(t *testing.T) {
		buf := NewBuffer()
		buf.SetBit(3, true)
		buf.SetBit(3, true)
		require.Equal(t, []byte{0x10}, buf.Bytes())
	})
}

// TestBuffer_Growth verifies that capacity only ever multiplies by GrowthFactor.
func TestBuffer_Growth(t *testing.T) {
	buf := NewBuffer()
	require.Equal(t, initialCap, buf.Cap())

	prevCap := buf.Cap()
	for i := 0; i < 1000; i++ {
		buf.AppendByte(byte(i))
		require.LessOrEqual(t, buf.Len(), buf.Cap())
		if buf.Cap() != prevCap {
			require.Equal(t, prevCap*GrowthFactor, buf.Cap(), "growth at len %d", buf.Len())
			prevCap = buf.Cap()
		}
	}
	require.Equal(t, 1000, buf.Len())
	for i := 0; i < 1000; i++ {
		require.Equal(t, byte(i), buf.Bytes()[i])
	}

	empty := FromBytes(nil)
	empty.AppendByte(7)
	require.Equal(t, []byte{7}, empty.Bytes())
}

func TestReader_View(t *testing.T) {
	buf := NewBuffer()
	writer := NewWriter(buf)
	writer.Write(8, 0xAA)
	writer.Write(8, 0x55)

	reader := NewReader(buf)
	assert.EqualValues(t, 0xAA, reader.View(8), "View() should return correct value")
	assert.Equal(t, 16, reader.NonReadBits(), "View() should not consume bits")
	assert.EqualValues(t, 0xAA, reader.Read(8))
	assert.EqualValues(t, 8, reader.Offset())
	assert.EqualValues(t, 0x55, reader.Read(8))
}

// TestWriter_Appends checks that a writer on a non-empty buffer starts after its last byte.
func TestWriter_Appends(t *testing.T) {
	buf := FromBytes([]byte{0x01})
	writer := NewWriter(buf)
	writer.Write(4, 0xF)
	require.Equal(t, []byte{0x01, 0xF0}, buf.Bytes())
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")

	src := FromBytes([]byte{0x00, 0xFF, 0x10, 0x00})
	require.NoError(t, src.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, src.Bytes(), loaded.Bytes())
	require.Equal(t, 4, loaded.Len())

	_, err = Load(filepath.Join(dir, "missing.bin"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing.bin")

	err = src.Save(filepath.Join(dir, "no", "such", "dir", "out.bin"))
	require.Error(t, err)
}

func BenchmarkWriter_write(b *testing.B) {
	for _, bits := range []int{8, 9, 12, 16, 32} {
		b.Run(fmt.Sprintf("%d bits", bits), func(b *testing.B) {
			buf := NewBuffer()
			writer := NewWriter(buf)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				writer.Write(bits, 0xff)
			}
		})
	}
}

func BenchmarkReader_read(b *testing.B) {
	for _, bits := range []int{8, 9, 12, 16, 32} {
		b.Run(fmt.Sprintf("%d bits", bits), func(b *testing.B) {
			buf := FromBytes(make([]byte, bytesToFit(bits*b.N)))
			reader := NewReader(buf)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = reader.Read(bits)
			}
		})
	}
}
