// SPDX-License-Identifier: EPL-2.0

// Command audiotar rebuilds a target recording from rescaled copies of a
// template and writes the result as a mono 16-bit WAV.
//
//	audiotar [flags] target template output
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/ik5/audiotar"
	"github.com/ik5/audiotar/decompose"
	"github.com/ik5/audiotar/stretch"
)

var errUsage = errors.New("usage: audiotar [flags] target template output")

func main() {
	err := run(os.Args[1:], os.Stderr)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitCode(err))
}

// exitCode is 0 on success and for -h, 1 for every other error.
func exitCode(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 1
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("audiotar", flag.ContinueOnError)
	fs.SetOutput(stderr)

	levels := fs.Int("levels", audiotar.DefaultLevels, "maximum recursion depth")
	rate := fs.Int("rate", 0, "output sample rate in Hz (0 = target's rate)")
	interp := fs.String("interp", stretch.Floor.String(), "basis interpolation: floor, linear or cubic")
	split := fs.String("split", decompose.SplitShared.String(), "odd segment policy: shared or exact")
	parallel := fs.Int("parallel", 0, "match halves of segments at least this long concurrently (0 = off)")
	verbose := fs.Bool("v", false, "log every matched segment")

	fs.Usage = func() {
		fmt.Fprintln(stderr, errUsage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		fs.Usage()
		return errUsage
	}

	mode, err := stretch.ParseMode(*interp)
	if err != nil {
		return err
	}
	policy, err := decompose.ParseSplit(*split)
	if err != nil {
		return err
	}

	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	targetPath, templatePath, outputPath := fs.Arg(0), fs.Arg(1), fs.Arg(2)

	target, err := audiotar.LoadMono(targetPath, nil)
	if err != nil {
		return err
	}
	template, err := audiotar.LoadMono(templatePath, nil)
	if err != nil {
		return err
	}

	if template.SampleRate != target.SampleRate {
		logger.Warn("sample rates differ, template is used as is",
			slog.Int("target_rate", target.SampleRate),
			slog.Int("template_rate", template.SampleRate))
	}

	start := time.Now()
	out, err := audiotar.Combine(target.Samples, template.Samples, *levels,
		audiotar.WithMode(mode),
		audiotar.WithSplit(policy),
		audiotar.WithLogger(logger),
		audiotar.WithParallel(*parallel),
	)
	if err != nil {
		return err
	}

	outRate := *rate
	if outRate <= 0 {
		outRate = target.SampleRate
	}

	if err := audiotar.SaveMono(outputPath, outRate, out); err != nil {
		return err
	}

	logger.Info("done",
		slog.Int("samples", len(out)),
		slog.Int("depth", audiotar.MaxDepth(len(out), *levels)),
		slog.Duration("elapsed", time.Since(start)))

	return nil
}
