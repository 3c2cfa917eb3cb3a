package lzw

import (
	"bufio"
	"fmt"
	"io"
)

// Report writes every learned entry (codes from SeedSize upward), one per line:
// the code right-aligned in four columns, a space, then each byte of the word
// in two columns. Visible ASCII ('!' through '~') prints as a space and the
// character, anything else as two uppercase hex digits.
//
//	 256  a a
//	 257 0A00
func (d *Dictionary) Report(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := SeedSize; i < len(d.words); i++ {
		fmt.Fprintf(bw, "%4d ", i)
		writeWord(bw, d.words[i])
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func writeWord(bw *bufio.Writer, word string) {
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c > ' ' && c <= '~' {
			bw.WriteByte(' ')
			bw.WriteByte(c)
		} else {
			fmt.Fprintf(bw, "%02X", c)
		}
	}
}
