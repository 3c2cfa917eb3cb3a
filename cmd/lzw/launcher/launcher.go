package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-lzw/flags"
	"github.com/rony4d/go-lzw/lzw"
	"github.com/rony4d/go-lzw/utils/bits"
)

// ErrUsage is returned when a command does not get exactly an input and an output file.
var ErrUsage = errors.New("usage: lzw <deflate|inflate> " + flags.ArgsUsage)

// Launch parses args and runs the selected command.
func Launch(args []string) error {
	return newApp(os.Stdout, os.Stderr).Run(args)
}

// newApp wires the deflate and inflate commands. Dictionary reports go to
// stdout, logs to stderr.
func newApp(stdout, stderr io.Writer) *cli.App {
	app := flags.NewApp(stdout)
	app.Commands = []cli.Command{
		{
			Name:      "deflate",
			Usage:     "Compress infile into outfile",
			ArgsUsage: flags.ArgsUsage,
			Flags:     flags.CodecFlags(),
			Action:    commandAction(deflate, stdout, stderr),
		},
		{
			Name:      "inflate",
			Usage:     "Decompress infile into outfile",
			ArgsUsage: flags.ArgsUsage,
			Flags:     flags.CodecFlags(),
			Action:    commandAction(inflate, stdout, stderr),
		},
	}
	return app
}

// codecFunc turns the loaded input into the output buffer and reports the
// dictionary the run ended with.
type codecFunc func(in *bits.Buffer, opts *lzw.Options) (*bits.Buffer, *lzw.Dictionary, error)

func deflate(in *bits.Buffer, opts *lzw.Options) (*bits.Buffer, *lzw.Dictionary, error) {
	enc, err := lzw.NewEncoder(opts)
	if err != nil {
		return nil, nil, err
	}
	return enc.Encode(in), enc.Dictionary(), nil
}

func inflate(in *bits.Buffer, opts *lzw.Options) (*bits.Buffer, *lzw.Dictionary, error) {
	dec, err := lzw.NewDecoder(opts)
	if err != nil {
		return nil, nil, err
	}
	out, err := dec.Decode(in)
	if err != nil {
		return nil, nil, err
	}
	return out, dec.Dictionary(), nil
}

func commandAction(run codecFunc, stdout, stderr io.Writer) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		if len(ctx.Args()) != 2 {
			return ErrUsage
		}

		cfg, err := MakeAllConfigs(ctx)
		if err != nil {
			return err
		}
		log, err := NewLogger(cfg, stderr)
		if err != nil {
			return err
		}

		inPath := resolvePath(ctx.Args().Get(0))
		outPath := resolvePath(ctx.Args().Get(1))
		logger := log.WithFields(logrus.Fields{
			"cmd": ctx.Command.Name,
			"in":  inPath,
			"out": outPath,
		})

		if err := execute(run, cfg, inPath, outPath, stdout, logger); err != nil {
			logger.WithError(err).Error("run failed")
			return err
		}
		return nil
	}
}

// execute loads the input, runs the codec, saves the output and prints the
// dictionary report when asked. Nothing is written when the codec fails.
func execute(run codecFunc, cfg Config, inPath, outPath string, stdout io.Writer, log logrus.FieldLogger) error {
	in, err := bits.Load(inPath)
	if err != nil {
		return err
	}

	out, dict, err := run(in, &lzw.Options{Width: cfg.Codec.Bits, Logger: log})
	if err != nil {
		return err
	}
	if err := out.Save(outPath); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"bits":      cfg.Codec.Bits,
		"in_bytes":  in.Len(),
		"out_bytes": out.Len(),
		"entries":   dict.Len(),
	}).Info("done")

	if cfg.Codec.Dict {
		if err := dict.Report(stdout); err != nil {
			return fmt.Errorf("dictionary report: %w", err)
		}
	}
	return nil
}
