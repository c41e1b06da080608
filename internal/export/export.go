// Package export renders resume content into downloadable TXT, RTF, and PDF
// artifacts. The three format writers are independent; they share only the
// element classification that maps lines to display roles.
package export

import (
	"log"
	"strings"
)

// Supported format identifiers.
const (
	FormatTXT = "txt"
	FormatRTF = "rtf"
	FormatPDF = "pdf"
)

// Result is a finished artifact plus the metadata a download response needs.
type Result struct {
	Data      []byte
	MIMEType  string
	Extension string
}

// Export renders content in the requested format. isHTML marks the content
// as editor HTML rather than plain text. Failures inside a writer are logged
// and returned wrapped so callers never treat a partial artifact as success.
func Export(content, format string, isHTML bool) (Result, error) {
	switch format {
	case FormatTXT:
		data, err := exportTXT(content, isHTML)
		if err != nil {
			return Result{}, logged(&ExportError{Format: FormatTXT, Message: "text extraction", Cause: err})
		}
		return Result{Data: data, MIMEType: "text/plain; charset=utf-8", Extension: "txt"}, nil

	case FormatRTF:
		data, err := exportRTF(content, isHTML)
		if err != nil {
			return Result{}, logged(&ExportError{Format: FormatRTF, Message: "document generation", Cause: err})
		}
		return Result{Data: data, MIMEType: "application/rtf", Extension: "rtf"}, nil

	case FormatPDF:
		data, err := exportPDF(content, isHTML)
		if err != nil {
			return Result{}, logged(&ExportError{Format: FormatPDF, Message: "document generation", Cause: err})
		}
		return Result{Data: data, MIMEType: "application/pdf", Extension: "pdf"}, nil

	default:
		return Result{}, logged(&UnsupportedFormatError{Format: format})
	}
}

// DownloadName builds the attachment file name "optimized-<base>.<ext>",
// replacing any extension the caller-supplied name already carries.
func DownloadName(fileName, extension string) string {
	base := strings.TrimSpace(fileName)
	if base == "" {
		base = "resume"
	}
	if dot := strings.LastIndex(base, "."); dot > 0 {
		base = base[:dot]
	}
	return "optimized-" + base + "." + extension
}

func logged(err error) error {
	log.Printf("Export error: %v", err)
	return err
}
