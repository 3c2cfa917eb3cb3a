package lzw

import (
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
	"github.com/sirupsen/logrus"
)

// Writer is an io.WriteCloser that encodes everything written to it.
// The pending match carries over between Write calls, so the output is the
// same as Encode on the concatenated input. Close must be called to emit the
// last code and the padding bits.
type Writer struct {
	bw     *bitio.Writer
	m      *matcher
	log    logrus.FieldLogger
	err    error
	closed bool
}

// NewWriter returns a Writer encoding to w. Options nil means DefaultOptions().
// Close does not close w.
func NewWriter(w io.Writer, opts *Options) (*Writer, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	opts, log, err := normalize(opts)
	if err != nil {
		return nil, err
	}
	dict, err := NewDictionary(opts.Width)
	if err != nil {
		return nil, err
	}

	sw := &Writer{
		bw:  bitio.NewWriter(w),
		log: log,
	}
	width := uint8(opts.Width)
	sw.m = &matcher{
		dict: dict,
		log:  log,
		emit: func(c Code) {
			if sw.err == nil {
				sw.err = sw.bw.WriteBits(uint64(c), width)
			}
		},
	}
	return sw, nil
}

// Write encodes p. It returns the first error from the underlying writer.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	if w.err != nil {
		return 0, w.err
	}
	for i, c := range p {
		w.m.feed(c)
		if w.err != nil {
			return i, w.err
		}
	}
	return len(p), nil
}

// Close emits the pending code and pads the final byte with zero bits.
func (w *Writer) Close() error {
	if w.closed {
		return w.err
	}
	w.closed = true

	w.m.flush()
	if w.err != nil {
		return w.err
	}
	w.err = w.bw.Close()

	w.log.WithFields(logrus.Fields{
		"codes":   w.m.codes,
		"entries": w.m.dict.Len(),
	}).Debug("stream encoded")
	return w.err
}

// Dictionary returns the writer's dictionary in its current state.
func (w *Writer) Dictionary() *Dictionary {
	return w.m.dict
}

// Reader is an io.Reader that decodes a code stream read from an underlying reader.
type Reader struct {
	br      *bitio.Reader
	width   uint8
	x       *expander
	pending []byte
	offset  int64
	err     error
}

// NewReader returns a Reader decoding from r. Options nil means DefaultOptions().
func NewReader(r io.Reader, opts *Options) (*Reader, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	opts, log, err := normalize(opts)
	if err != nil {
		return nil, err
	}
	dict, err := NewDictionary(opts.Width)
	if err != nil {
		return nil, err
	}
	return &Reader{
		br:    bitio.NewReader(r),
		width: uint8(opts.Width),
		x:     &expander{dict: dict, log: log},
	}, nil
}

// Read decodes into p. It returns io.EOF once fewer than width bits remain in
// the underlying stream, and an error wrapping ErrMalformedStream on a bad code.
func (r *Reader) Read(p []byte) (int, error) {
	for len(r.pending) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		r.fill()
	}
	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

// fill decodes one code into pending, or records the terminal error.
func (r *Reader) fill() {
	v, err := r.br.ReadBits(r.width)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			r.err = io.EOF
		} else {
			r.err = err
		}
		return
	}

	word, err := r.x.next(Code(v))
	if err != nil {
		r.err = fmt.Errorf("decode at bit %d: %w", r.offset, err)
		return
	}
	r.offset += int64(r.width)
	r.pending = append(r.pending[:0], word...)
}

// Dictionary returns the reader's dictionary in its current state.
func (r *Reader) Dictionary() *Dictionary {
	return r.x.dict
}
