package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// buildFlags holds all flags for the build run.
type buildFlags struct {
	config    string
	out       string
	siteTitle string
	style     string
	assetPath string
	quiet     bool
	verbose   bool
	version   bool
	help      bool
}

// parseFlags parses command-line flags and returns positional args.
// The only positional argument is the optional input directory.
func parseFlags(args []string) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("ruby2html", flag.ContinueOnError)
	f := &buildFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.out, "out", "o", "", "output directory (default: input directory)")
	fs.StringVar(&f.siteTitle, "site-title", "", "index page title")
	fs.StringVar(&f.style, "style", "", "style name for the generated stylesheet")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show extra build detail")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show usage")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
