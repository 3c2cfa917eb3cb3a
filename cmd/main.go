package main

import (
	"fmt"
	"os"

	"github.com/rony4d/go-lzw/cmd/lzw/launcher"
)

func main() {

	// Hand the full argument list to the launcher and report any failure.
	if err := launcher.Launch(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

}
