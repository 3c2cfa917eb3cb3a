package lzw

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rony4d/go-lzw/utils/bits"
)

// expander is the incremental core of the decoder. It resolves one code at a
// time and learns the word the encoder added one step earlier: the previous
// word extended by the first byte of the current one.
type expander struct {
	dict      *Dictionary
	log       logrus.FieldLogger
	prev      string
	saturated bool
}

// next resolves code to its word and grows the dictionary.
func (x *expander) next(code Code) (string, error) {
	size := uint64(x.dict.Len())

	var cur string
	switch {
	case uint64(code) < size:
		cur = x.dict.word(code)
	case uint64(code) == size && x.prev != "" && !x.dict.Full():
		// The encoder learned this entry and used it in the very next step,
		// which only happens when it starts with the previous word's first byte.
		cur = x.prev + x.prev[:1]
	default:
		return "", fmt.Errorf("%w: code %d with %d dictionary entries", ErrMalformedStream, code, size)
	}

	if x.prev != "" {
		if !x.dict.add(x.prev+cur[:1]) && !x.saturated {
			x.saturated = true
			x.log.WithField("entries", x.dict.Len()).Debug("dictionary saturated")
		}
	}
	x.prev = cur
	return cur, nil
}

// Decoder turns fixed-width code streams back into byte sequences.
// Each Decoder owns its dictionary; call Reset before reusing it for a new,
// unrelated stream. It is not safe for concurrent use.
type Decoder struct {
	width int
	log   logrus.FieldLogger
	dict  *Dictionary
}

// NewDecoder creates a decoder. Options nil means DefaultOptions().
func NewDecoder(opts *Options) (*Decoder, error) {
	opts, log, err := normalize(opts)
	if err != nil {
		return nil, err
	}
	dict, err := NewDictionary(opts.Width)
	if err != nil {
		return nil, err
	}
	return &Decoder{
		width: opts.Width,
		log:   log,
		dict:  dict,
	}, nil
}

// Dictionary returns the decoder's dictionary in its current state.
func (d *Decoder) Dictionary() *Dictionary {
	return d.dict
}

// Reset restores the seed dictionary.
func (d *Decoder) Reset() {
	d.dict.reset()
}

// Decode expands the code stream in. Decoding stops when fewer than width
// bits remain; those bits are padding. A code that references an entry the
// dictionary cannot hold yet returns an error wrapping ErrMalformedStream.
func (d *Decoder) Decode(in *bits.Buffer) (*bits.Buffer, error) {
	out := bits.NewBuffer()
	r := bits.NewReader(in)
	x := &expander{dict: d.dict, log: d.log}

	codes := 0
	for r.NonReadBits() >= d.width {
		offset := r.Offset()
		word, err := x.next(Code(r.Read(d.width)))
		if err != nil {
			return nil, fmt.Errorf("decode at bit %d: %w", offset, err)
		}
		out.Append([]byte(word))
		codes++
	}

	d.log.WithFields(logrus.Fields{
		"in":      in.Len(),
		"out":     out.Len(),
		"codes":   codes,
		"entries": d.dict.Len(),
	}).Debug("decoded")

	return out, nil
}

// Decode expands src with a fresh dictionary. Options nil means DefaultOptions().
func Decode(src []byte, opts *Options) ([]byte, error) {
	dec, err := NewDecoder(opts)
	if err != nil {
		return nil, err
	}
	out, err := dec.Decode(bits.FromBytes(src))
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
