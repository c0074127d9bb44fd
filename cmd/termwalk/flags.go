// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --config, --theme, --glyph, --debug, --log-file, --version

package main

import (
	"flag"
	"io"
)

type cliArgs struct {
	config  string
	theme   string
	glyph   string
	logFile string
	debug   bool
	version bool
}

// parseFlags parses argv (without the program name). Errors and -h
// output go to stderr via the FlagSet.
func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs

	fs := flag.NewFlagSet("termwalk", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&args.config, "config", "", "Path to a YAML settings file (default ~/.termwalk/config.yaml)")
	fs.StringVar(&args.theme, "theme", "", "Color theme: default, dark, light, monochrome")
	fs.StringVar(&args.glyph, "glyph", "", "Two-cell glyph drawn for the entity")
	fs.StringVar(&args.logFile, "log-file", "", "Append log output to this file")
	fs.BoolVar(&args.debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return args, err
	}
	return args, nil
}
