/*
Package lzw implements an adaptive-dictionary (LZW) byte-sequence codec.

Format: a flat sequence of fixed-width unsigned codes, Width bits each
(8..32), packed MSB-first with no separators and no header. The last byte is
padded with zero bits; fewer than Width trailing bits are never a code. The
width is not stored in the stream, so encoder and decoder must agree on it.

Dictionary: codes 0..255 are the single bytes. The encoder emits the code of
the longest known word and learns that word extended by the next input byte.
The decoder learns the same entries one code later, completing each from the
first byte of the word that follows. Once 2^Width entries exist the
dictionary is frozen and both sides keep working with it.

Use Encode(src, opts) and Decode(src, opts) for whole buffers, Encoder and
Decoder to keep the dictionary for inspection, and NewWriter / NewReader to
work on io streams.

# Examples

Round trip with the default width:

	enc, err := lzw.Encode(data, nil)
	if err != nil {
		return err
	}
	dec, err := lzw.Decode(enc, nil)
	if err != nil {
		return err
	}
	// dec equals data

Encode a file and print what the dictionary learned:

	in, err := bits.Load("input.txt")
	if err != nil {
		return err
	}
	e, err := lzw.NewEncoder(&lzw.Options{Width: 12})
	if err != nil {
		return err
	}
	if err := e.Encode(in).Save("input.lzw"); err != nil {
		return err
	}
	return e.Dictionary().Report(os.Stdout)

Stream compression:

	w, err := lzw.NewWriter(dst, &lzw.Options{Width: 16})
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, src); err != nil {
		return err
	}
	return w.Close()
*/
package lzw
