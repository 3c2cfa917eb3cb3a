package lzw

import (
	"fmt"
	"io/ioutil"

	"github.com/sirupsen/logrus"
)

// Code width limits, in bits.
const (
	MinWidth     = 8
	MaxWidth     = 32
	DefaultWidth = 10
)

// SeedSize is the number of single-byte words every dictionary starts with.
const SeedSize = 256

// Code identifies one dictionary entry.
type Code uint32

// Options configures an encode or decode run. Both sides of a stream must use the same Width.
type Options struct {
	// Width is the number of bits per code, in [MinWidth, MaxWidth].
	Width int
	// Logger receives debug output. Nil discards it.
	Logger logrus.FieldLogger
}

// DefaultOptions returns options with DefaultWidth and no logging.
func DefaultOptions() *Options {
	return &Options{
		Width: DefaultWidth,
	}
}

// ValidateWidth returns an ErrInvalidWidth error unless width is in [MinWidth, MaxWidth].
func ValidateWidth(width int) error {
	if width < MinWidth || width > MaxWidth {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidWidth, width, MinWidth, MaxWidth)
	}
	return nil
}

// normalize fills defaults for nil options and validates the width.
func normalize(opts *Options) (*Options, logrus.FieldLogger, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := ValidateWidth(opts.Width); err != nil {
		return nil, nil, err
	}
	log := opts.Logger
	if log == nil {
		discard := logrus.New()
		discard.Out = ioutil.Discard
		log = discard
	}
	return opts, log.WithField("width", opts.Width), nil
}
