package rmdrender

import (
	"fmt"
	"strings"

	"github.com/alnah/go-rmdrender/internal/fileutil"
)

// InputFormat is the document family of an input file.
type InputFormat string

// Input families.
const (
	InputMarkdown InputFormat = "markdown"
	InputHTML     InputFormat = "html"
)

// SupportedExtensions lists accepted input extensions, case-sensitive.
var SupportedExtensions = []string{"Rmd", "md", "Rhtml"}

var inputFormats = map[string]InputFormat{
	"Rmd":   InputMarkdown,
	"md":    InputMarkdown,
	"Rhtml": InputHTML,
}

// ClassifyInput maps the extension of path to its InputFormat.
// Returns ErrUnsupportedExtension naming the extension otherwise.
func ClassifyInput(path string) (InputFormat, error) {
	ext := fileutil.Ext(path)
	f, ok := inputFormats[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q (allowed: %s)", ErrUnsupportedExtension, ext, strings.Join(SupportedExtensions, ", "))
	}
	return f, nil
}

// OutputFormat pairs a user-facing format name with the engine's
// identifier and the file extension it produces.
type OutputFormat struct {
	Name      string // "pdf"
	EngineID  string // "pdf_document"
	Extension string // "pdf"
}

// Output formats understood by the engine.
var (
	FormatPDF  = OutputFormat{Name: "pdf", EngineID: "pdf_document", Extension: "pdf"}
	FormatHTML = OutputFormat{Name: "html", EngineID: "html_document", Extension: "html"}
)

// DefaultFormat is used when no format is requested.
const DefaultFormat = "pdf"

// SupportedFormats lists accepted output format names.
var SupportedFormats = []string{FormatPDF.Name, FormatHTML.Name}

// ParseOutputFormat resolves a format name. An empty name selects DefaultFormat.
func ParseOutputFormat(name string) (OutputFormat, error) {
	if name == "" {
		name = DefaultFormat
	}
	switch name {
	case FormatPDF.Name:
		return FormatPDF, nil
	case FormatHTML.Name:
		return FormatHTML, nil
	default:
		return OutputFormat{}, fmt.Errorf("%w: %q (allowed: %s)", ErrUnsupportedFormat, name, strings.Join(SupportedFormats, ", "))
	}
}
