// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	flag "github.com/spf13/pflag"
)

// levelEnv names the environment variable that sets the default log level.
const levelEnv = "WAVKIT_LOG_LEVEL"

var (
	flagLevel   string
	flagJSON    bool
	flagNoColor bool
	flagBatch   int
	flagHelp    bool
	flagVersion bool
)

var version = "dev"

func init() {
	flag.StringVarP(&flagLevel, "level", "l", os.Getenv(levelEnv), "Log level (debug, info, warn, error)")
	flag.BoolVarP(&flagJSON, "json", "j", false, "Emit logs and reports as JSON")
	flag.BoolVarP(&flagNoColor, "no-color", "", false, "Disable coloured output")
	flag.IntVarP(&flagBatch, "batch", "b", 0, "Stream in batches of NUM frames instead of decoding at once")

	flag.BoolVarP(&flagHelp, "help", "h", false, "Print usage information and exit")
	flag.BoolVarP(&flagVersion, "version", "v", false, "Print version information and exit")
}

const helpString = `Inspect and decode WAVE files

Usage: wavinfo [OPTION]... FILE...

Decoding:
  -b, --batch=NUM        Stream in batches of NUM frames (default: whole file)

Output:
  -j, --json             Emit logs and reports as JSON
      --no-color         Disable coloured output
  -l, --level=LEVEL      Log level: debug, info, warn, error
                         (default: $WAVKIT_LOG_LEVEL, then info)

Miscellaneous:
  -h, --help             Prints this help message and exits
  -v, --version          Prints version information and exits`

// help prints the banner and usage text to w.
func help(w io.Writer) {
	c := color.New(color.FgCyan, color.Bold)

	c.Fprint(w, "wavinfo")
	fmt.Fprintf(w, " %s\n\n", version)
	fmt.Fprintln(w, helpString)
}
