package lzw

import (
	"github.com/sirupsen/logrus"

	"github.com/rony4d/go-lzw/utils/bits"
	"github.com/rony4d/go-lzw/utils/fast"
)

// matcher is the incremental core of the encoder. It holds the longest
// dictionary word matched so far and calls emit whenever that match cannot be
// extended by the next byte.
type matcher struct {
	dict      *Dictionary
	log       logrus.FieldLogger
	emit      func(Code)
	match     []byte
	code      Code // code of match, valid while match is non-empty
	codes     int
	saturated bool
}

// feed extends the current match by c, emitting and learning a word when the
// extension is not in the dictionary.
func (m *matcher) feed(c byte) {
	m.match = append(m.match, c)
	if code, ok := m.dict.Lookup(m.match); ok {
		m.code = code
		return
	}

	m.emit(m.code)
	m.codes++
	if !m.dict.Add(m.match) && !m.saturated {
		m.saturated = true
		m.log.WithField("entries", m.dict.Len()).Debug("dictionary saturated")
	}

	m.match = append(m.match[:0], c)
	m.code = Code(c)
}

// flush emits the pending match, if any.
func (m *matcher) flush() {
	if len(m.match) == 0 {
		return
	}
	m.emit(m.code)
	m.codes++
	m.match = m.match[:0]
}

// Encoder turns byte sequences into fixed-width code streams.
// Each Encoder owns its dictionary; call Reset before reusing it for a new,
// unrelated input. It is not safe for concurrent use.
type Encoder struct {
	width int
	log   logrus.FieldLogger
	dict  *Dictionary
}

// NewEncoder creates an encoder. Options nil means DefaultOptions().
func NewEncoder(opts *Options) (*Encoder, error) {
	opts, log, err := normalize(opts)
	if err != nil {
		return nil, err
	}
	dict, err := NewDictionary(opts.Width)
	if err != nil {
		return nil, err
	}
	return &Encoder{
		width: opts.Width,
		log:   log,
		dict:  dict,
	}, nil
}

// Dictionary returns the encoder's dictionary in its current state.
func (e *Encoder) Dictionary() *Dictionary {
	return e.dict
}

// Reset restores the seed dictionary.
func (e *Encoder) Reset() {
	e.dict.reset()
}

// Encode compresses the bytes of in and returns the code stream. Codes are
// packed back to back, MSB-first; the last byte is zero-padded. An empty
// input yields an empty buffer.
func (e *Encoder) Encode(in *bits.Buffer) *bits.Buffer {
	out := bits.NewBuffer()
	w := bits.NewWriter(out)

	m := &matcher{
		dict: e.dict,
		log:  e.log,
		emit: func(c Code) {
			w.Write(e.width, uint64(c))
		},
	}

	r := fast.NewReader(in.Bytes())
	for !r.Empty() {
		m.feed(r.ReadByte())
	}
	m.flush()

	e.log.WithFields(logrus.Fields{
		"in":      in.Len(),
		"out":     out.Len(),
		"codes":   m.codes,
		"entries": e.dict.Len(),
	}).Debug("encoded")

	return out
}

// Encode compresses src with a fresh dictionary. Options nil means DefaultOptions().
func Encode(src []byte, opts *Options) ([]byte, error) {
	enc, err := NewEncoder(opts)
	if err != nil {
		return nil, err
	}
	return enc.Encode(bits.FromBytes(src)).Bytes(), nil
}
