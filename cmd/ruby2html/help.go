package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ruby2html [flags] [input-dir]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build an HTML reading site from annotated story files.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Stories are .txt (or .md) files using base(pronunciation) annotations.")
	fmt.Fprintln(w, "Each story becomes one page; an index page links them all. With no")
	fmt.Fprintln(w, "arguments the current directory is built in place.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input-dir    Directory containing story files (default: .)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --out <dir>         Output directory (default: input directory)")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "      --site-title <s>    Index page title")
	fmt.Fprintln(w, "      --style <name>      Style name for the generated stylesheet")
	fmt.Fprintln(w, "      --asset-path <dir>  Custom asset directory")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show extra build detail")
	fmt.Fprintln(w, "      --version           Show version information")
	fmt.Fprintln(w, "  -h, --help              Show this help")
}
