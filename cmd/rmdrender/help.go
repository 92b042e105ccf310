package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: rmdrender [flags] <input>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render an R Markdown document with rmarkdown::render.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Source document (.Rmd, .md or .Rhtml)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -d, --dir <dir>         Output and intermediates directory")
	fmt.Fprintln(w, "                          (default: input path without extension)")
	fmt.Fprintln(w, "  -o, --output <file>     Final output file (default: <dir>/<input name>.<format>)")
	fmt.Fprintln(w, "  -f, --format <s>        Output format: pdf, html (default: pdf)")
	fmt.Fprintln(w, "  -t, --tag               Append _LP<YYMMDD_HHmm> to derived names")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "      --config <name>     Config file name or path")
	fmt.Fprintln(w, "                          Environment: RMDRENDER_CONFIG, RMDRENDER_RSCRIPT,")
	fmt.Fprintln(w, "                          RMDRENDER_FORMAT, RMDRENDER_TAG_LABEL, RMDRENDER_TAG_FORMAT")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "      --doctor            Check the rendering environment")
	fmt.Fprintln(w, "      --json              Doctor output as JSON")
	fmt.Fprintln(w, "      --version           Show version")
	fmt.Fprintln(w, "  -v, --verbose           Print derivation details")
	fmt.Fprintln(w, "  -h, -?, --help          Show this help")
}
