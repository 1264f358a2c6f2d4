// SPDX-License-Identifier: EPL-2.0

// Command wavinfo prints the format of WAVE files and the per channel peak
// and RMS level of their decoded samples.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/ik5/wavkit/audio"
	"github.com/ik5/wavkit/formats/wav"
)

// options holds the parsed command line.
type options struct {
	level zerolog.Level
	json  bool
	color bool
	batch int
}

func main() {
	flag.Parse()

	color.NoColor = color.NoColor || flagNoColor

	if flagHelp {
		help(os.Stdout)
		os.Exit(0)
	}

	if flagVersion {
		fmt.Println("wavinfo", version)
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		help(os.Stderr)
		os.Exit(2)
	}

	opts := options{
		level: parseLevel(flagLevel),
		json:  flagJSON,
		color: !color.NoColor,
		batch: flagBatch,
	}

	os.Exit(run(opts, flag.Args(), os.Stdout, os.Stderr))
}

// run inspects every file and returns the process exit status.
func run(opts options, files []string, stdout, stderr io.Writer) int {
	log := newLogger(stderr, opts.level, opts.json, !opts.color)

	if opts.batch < 0 {
		log.Error().Int("batch", opts.batch).Msg("batch must not be negative")
		return 2
	}

	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{Logger: &log, BatchFrames: opts.batch})

	in := inspector{log: log, reg: reg, batch: opts.batch}
	out := zerolog.New(stdout)
	status := 0

	for i, path := range files {
		r, err := in.inspect(path)
		if err != nil {
			log.Error().Err(err).Str("file", path).Msg("inspect failed")
			status = 1
			continue
		}

		log.Debug().Str("file", path).Int("frames", r.Frames).Bool("streamed", r.Streamed).Msg("decoded")

		if opts.json {
			logReport(out, r)
			continue
		}

		if i > 0 {
			fmt.Fprintln(stdout)
		}
		printReport(stdout, r)
	}

	return status
}
