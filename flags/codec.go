package flags

import (
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-lzw/lzw"
)

// CodecFlags holds the per-command knobs of deflate and inflate.

func CodecFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:  "bits, b",
			Usage: "Bits per code, between 8 and 32 (must match on both sides)",
			Value: lzw.DefaultWidth,
		},
		cli.BoolFlag{
			Name:  "dict, d",
			Usage: "Print the learned dictionary entries after the run",
		},
	}
}
