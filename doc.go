// Package rmdrender prepares and runs a single R Markdown render.
//
// The package never renders anything itself. It checks the input document,
// derives where the output and the intermediate files go, makes sure those
// directories exist, and then hands the job to rmarkdown::render through the
// Rscript entry point.
//
// # Quick Start
//
//	r, err := rmdrender.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := r.LocateEngine(); err != nil {
//	    log.Fatal(err)
//	}
//	plan, err := r.Plan(rmdrender.Request{InputFile: "report.Rmd", Format: "html"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := r.Render(ctx, plan); err != nil {
//	    log.Fatal(err)
//	}
//
// For input /tmp/x/report.Rmd with no overrides, intermediates go to
// /tmp/x/report and the document is written to /tmp/x/report/report.pdf.
//
// # Pipeline
//
//  1. Input existence and extension check (Rmd, md, Rhtml)
//  2. Input path normalization
//  3. Output directory derivation and creation
//  4. Output format validation (pdf, html)
//  5. Output file derivation and parent creation
//  6. One Rscript child process, whose exit status is reported as *ExitError
//
// # Name Tags
//
// With Request.Tag set, "_" + label + timestamp is appended to the derived
// directory and file names, e.g. report_LP250307_0905/report_LP250307_0905.pdf.
// The label and timestamp format are set with WithTagLabel and WithTagFormat.
//
// # Engine Invocation
//
// Paths are passed to Rscript as separate arguments and read back with
// commandArgs(), so file names are never spliced into R source code.
package rmdrender
