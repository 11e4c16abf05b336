// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/structviz"
	"github.com/cockroachdb/structviz/render"
	"github.com/spf13/cobra"
)

var (
	kindName    string
	optionsPath string
	realtime    bool
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "structviz [command] (flags)",
	Short: "animated data structure visualizer",
	Long:  ``,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		runCmd,
		randomCmd,
		benchCmd,
		serveCmd,
		commandsCmd,
		optionsCmd,
	)

	for _, cmd := range []*cobra.Command{runCmd, randomCmd, commandsCmd} {
		cmd.Flags().StringVarP(
			&kindName, "kind", "k", "sll",
			"structure kind (sll, dll, cll, stack, queue, bst or a full kind name)")
	}
	for _, cmd := range []*cobra.Command{runCmd, randomCmd, benchCmd, serveCmd, optionsCmd} {
		cmd.Flags().StringVar(
			&optionsPath, "options", "", "path to an INI file with structure options")
	}
	for _, cmd := range []*cobra.Command{runCmd, serveCmd} {
		cmd.Flags().BoolVar(
			&realtime, "realtime", false, "sleep for the animation delays instead of skipping them")
		cmd.Flags().BoolVarP(
			&verbose, "verbose", "v", false, "log animation events")
	}

	runCmd.Flags().StringVarP(
		&runConfig.exec, "exec", "e", "", "commands to run, separated by ';' (instead of a script file)")
	runCmd.Flags().BoolVar(
		&runConfig.frames, "frames", false, "draw every recorded frame instead of the last one")
	runCmd.Flags().BoolVar(
		&runConfig.diff, "diff", false, "draw the first frame and the changes of every following frame")
	runCmd.Flags().BoolVar(
		&runConfig.table, "table", false, "print the elements of the last frame as tables")
	runCmd.Flags().BoolVar(
		&runConfig.plot, "plot", false, "plot the number of visible elements per frame")
	runCmd.Flags().BoolVar(
		&runConfig.url, "url", false, "print a URL replaying the recorded frames")
	runCmd.Flags().StringVar(
		&runConfig.codec, "codec", render.Snappy.String(), "compression of the frames in --url (snappy, minlz or zstd)")
	randomCmd.Flags().BoolVar(
		&runConfig.table, "table", false, "print the elements as tables")

	benchCmd.Flags().StringVar(
		&benchConfig.kinds, "kinds", "all", "comma-separated structure kinds")
	benchCmd.Flags().IntVarP(
		&benchConfig.ops, "ops", "n", 1000, "number of random commands per worker")
	benchCmd.Flags().IntVarP(
		&benchConfig.concurrency, "concurrency", "c", 1, "number of workers per kind")
	benchCmd.Flags().Uint64Var(
		&benchConfig.seed, "seed", 0, "random seed (0 picks one)")

	serveCmd.Flags().StringVar(
		&serveConfig.addr, "addr", "localhost:8080", "address to listen on")
	serveCmd.Flags().Float64Var(
		&serveConfig.rate, "rate", 10, "commands per second admitted per session")
	serveCmd.Flags().Float64Var(
		&serveConfig.burst, "burst", 20, "command burst admitted per session")
	serveCmd.Flags().IntVar(
		&serveConfig.maxFrames, "max-frames", 1000, "frames kept per session")
	serveCmd.Flags().IntVar(
		&serveConfig.maxSessions, "max-sessions", 100, "maximum number of live sessions")
	serveCmd.Flags().IntVar(
		&serveConfig.maxCapacity, "max-capacity", 1024, "maximum capacity of array-backed structures")

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}

// instantClock skips every animation delay.
type instantClock struct{}

func (instantClock) Sleep(time.Duration) {}

// loadOptions returns the options from --options, with the clock selected by
// --realtime.
func loadOptions() (*structviz.Options, error) {
	opts := &structviz.Options{}
	if optionsPath != "" {
		data, err := os.ReadFile(optionsPath)
		if err != nil {
			return nil, err
		}
		if err := opts.Parse(string(data)); err != nil {
			return nil, errors.Wrapf(err, "%s", optionsPath)
		}
	}
	if !realtime {
		opts.Clock = instantClock{}
	}
	return opts, nil
}

// printingEventListener prints reports and output lines to w. With
// --verbose, all events are also logged.
func printingEventListener(w io.Writer) *structviz.EventListener {
	l := structviz.EventListener{
		Message: func(info structviz.MessageInfo) {
			fmt.Fprintln(w, info)
		},
		OutputLine: func(info structviz.OutputLineInfo) {
			fmt.Fprintf(w, "output: %s\n", info.Text)
		},
	}
	if verbose {
		l = structviz.TeeEventListener(l, structviz.MakeLoggingEventListener(structviz.DefaultLogger))
	}
	return &l
}

func asciiOptions(opts *structviz.Options) render.ASCIIOptions {
	o := render.DefaultASCIIOptions
	if opts.NodeSpacing > 0 {
		o.NodeSpacing = opts.NodeSpacing
	}
	if opts.LevelSpacing > 0 {
		o.LevelSpacing = opts.LevelSpacing
	}
	return o
}
