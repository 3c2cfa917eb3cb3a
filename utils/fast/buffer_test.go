package fast

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReader_Sequential(t *testing.T) {
	require := require.New(t)

	const N = 100
	src := make([]byte, N)
	for i := range src {
		src[i] = byte(i)
	}

	r := NewReader(src)
	require.False(r.Empty(), "New reader should not be empty")
	require.Equal(0, r.Position())
	require.Equal(N, r.Remaining())

	for exp := byte(0); exp < N; exp++ {
		require.Equal(exp, r.ReadByte(), "ReadByte mismatch at index %d", exp)
	}
	require.True(r.Empty())
	require.Equal(N, r.Position())
	require.Equal(0, r.Remaining())
	require.Panics(func() { r.ReadByte() })
}

func TestReader_Boundaries(t *testing.T) {
	t.Run("Empty Buffer", func(t *testing.T) {
		r := NewReader([]byte{})
		require.True(t, r.Empty())
		require.Equal(t, 0, r.Position())

		require.True(t, NewReader(nil).Empty())
	})

	t.Run("Partial Reads", func(t *testing.T) {
		data := []byte{1, 2, 3, 4, 5}
		r := NewReader(data)

		require.Equal(t, []byte{1, 2}, r.Read(2))
		require.Equal(t, 2, r.Position())
		require.False(t, r.Empty())

		require.Equal(t, byte(3), r.ReadByte())
		require.Equal(t, []byte{4, 5}, r.Read(2))
		require.True(t, r.Empty())
		require.Equal(t, data, r.Bytes())
	})
}

// Benchmark compares the cursor against bytes.Reader.
func Benchmark(b *testing.B) {
	src := make([]byte, 1000)
	_, _ = rand.Read(src)

	b.Run("Std", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			r := bytes.NewReader(src)
			for j := 0; j < len(src); j++ {
				_, _ = r.ReadByte()
			}
		}
	})
	b.Run("Fast", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			r := NewReader(src)
			for !r.Empty() {
				_ = r.ReadByte()
			}
		}
	})
}
