package launcher

import "github.com/rony4d/go-lzw/lzw"

// Defaults bundles the baseline configuration values the launcher uses
// before the config file and flags override them.

type Defaults struct {
	Codec   CodecDefaults
	Logging LoggingDefaults
}

// CodecDefaults holds the codec settings.
type CodecDefaults struct {
	Bits int  //	Code width in bits. The stream does not record it, so inflate must be given the value deflate used.
	Dict bool //	Print the learned dictionary entries once the run completes.
}

// LoggingDefaults controls log verbosity/format.
type LoggingDefaults struct {
	Verbosity int    //	Log level numeric (0=fatal, 1=error, 2=warn, 3=info, 4=debug, 5=trace).
	Format    string //	Log output format (text vs json).
	Color     bool   //	Whether to use ANSI color codes in logs.
}

// DefaultConfig returns a fully populated Defaults instance.

func DefaultConfig() Defaults {
	return Defaults{
		Codec: CodecDefaults{
			Bits: lzw.DefaultWidth,
			Dict: false,
		},
		Logging: LoggingDefaults{
			Verbosity: 3,
			Format:    "text",
			Color:     false,
		},
	}
}
