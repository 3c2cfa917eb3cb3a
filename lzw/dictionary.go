package lzw

// Dictionary maps codes to words (byte sequences) and words back to codes.
//
// Codes 0..255 are bound to the single bytes 0x00..0xFF. New words are appended
// at the next free code until the dictionary holds 2^width entries; after that
// Add is a silent no-op (saturation is not an error).
//
// A Dictionary is not safe for concurrent use.
type Dictionary struct {
	width int
	max   uint64
	words []string
	// index holds the lowest code of every stored word.
	index map[string]Code
}

// NewDictionary returns a dictionary seeded with the 256 single-byte words.
func NewDictionary(width int) (*Dictionary, error) {
	if err := ValidateWidth(width); err != nil {
		return nil, err
	}
	d := &Dictionary{
		width: width,
		max:   uint64(1) << uint(width),
	}
	d.reset()
	return d, nil
}

// reset drops every learned word and restores the seed entries.
func (d *Dictionary) reset() {
	d.words = make([]string, SeedSize, 2*SeedSize)
	d.index = make(map[string]Code, 2*SeedSize)
	for i := 0; i < SeedSize; i++ {
		w := string([]byte{byte(i)})
		d.words[i] = w
		d.index[w] = Code(i)
	}
}

// Width returns the code width the dictionary was sized for.
func (d *Dictionary) Width() int {
	return d.width
}

// Len returns the number of entries, seed entries included.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// MaxLen returns the capacity, 2^width.
func (d *Dictionary) MaxLen() uint64 {
	return d.max
}

// Full reports whether the dictionary is saturated.
func (d *Dictionary) Full() bool {
	return uint64(len(d.words)) >= d.max
}

// Lookup returns the code of the first entry whose word equals word exactly
// (same length, same bytes). Prefixes never match.
func (d *Dictionary) Lookup(word []byte) (Code, bool) {
	c, ok := d.index[string(word)]
	return c, ok
}

// Add appends word at the next free code. It reports false, leaving the
// dictionary unchanged, when the dictionary is saturated.
func (d *Dictionary) Add(word []byte) bool {
	return d.add(string(word))
}

func (d *Dictionary) add(w string) bool {
	if d.Full() {
		return false
	}
	code := Code(len(d.words))
	d.words = append(d.words, w)
	if _, ok := d.index[w]; !ok {
		d.index[w] = code
	}
	return true
}

// Word returns a copy of the word stored at code.
//
// WARNING: code must be below Len(); out-of-range access panics.
func (d *Dictionary) Word(code Code) []byte {
	return []byte(d.words[code])
}

// word returns the stored word without copying.
func (d *Dictionary) word(code Code) string {
	return d.words[code]
}
