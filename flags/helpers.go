package flags

import (
	"io"

	cli "gopkg.in/urfave/cli.v1"
)

// ArgsUsage is the positional argument summary shared by deflate and inflate.
const ArgsUsage = "[-d] [-b bits] infile outfile"

// NewApp creates the base application writing its normal output to w.
// Commands are attached by the launcher.
func NewApp(w io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "lzw"
	app.Usage = "LZW file compressor (deflate) and decompressor (inflate)"
	app.Version = "0.1.0"
	app.Flags = CommonFlags()
	app.Writer = w
	return app

}
