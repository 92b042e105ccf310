package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds every command-line flag.
type cliFlags struct {
	dir       string
	output    string
	format    string
	formatSet bool // --format given explicitly, even if empty
	tag       bool
	verbose   bool
	help      bool
	config    string
	doctor    bool
	json      bool
	version   bool
}

// newFlagSet declares the flags on a fresh FlagSet bound to f.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("rmdrender", flag.ContinueOnError)

	fs.StringVarP(&f.dir, "dir", "d", "", "output and intermediates directory")
	fs.StringVarP(&f.output, "output", "o", "", "final output file")
	fs.StringVarP(&f.format, "format", "f", "", "output format: pdf, html")
	fs.BoolVarP(&f.tag, "tag", "t", false, "append a timestamp tag to derived names")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "print derivation details")
	fs.BoolVarP(&f.help, "help", "h", false, "show usage")
	fs.StringVar(&f.config, "config", "", "config file name or path")
	fs.BoolVar(&f.doctor, "doctor", false, "check the rendering environment")
	fs.BoolVar(&f.json, "json", false, "doctor output as JSON")
	fs.BoolVar(&f.version, "version", false, "show version")

	// -? is the traditional alias of -h; it has no long form of its own.
	fs.BoolVarP(&f.help, "usage", "?", false, "show usage")
	_ = fs.MarkHidden("usage")

	// Errors and usage are reported by runMain.
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	return fs
}

// parseFlags parses args (without the program name) and returns the
// positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}
	fs := newFlagSet(f)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.formatSet = fs.Changed("format")

	return f, fs.Args(), nil
}
