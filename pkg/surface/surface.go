// Package surface defines output rendering interfaces for scorelens
// reports. Implementations handle different output targets: terminal,
// JSON, Markdown.
package surface

import (
	"fmt"
	"io"

	"github.com/scorelens/scorelens/pkg/analytics"
)

// Renderer produces formatted output from a ClientReport.
type Renderer interface {
	// Render writes the formatted report to the writer.
	Render(w io.Writer, report *analytics.ClientReport) error
}

// ForFormat returns the renderer for an output format name.
func ForFormat(format, locale string) (Renderer, error) {
	switch format {
	case "text", "":
		return &TerminalRenderer{Locale: locale}, nil
	case "json":
		return &JSONRenderer{}, nil
	case "markdown":
		return &MarkdownRenderer{Locale: locale}, nil
	}
	return nil, fmt.Errorf("unknown output format %q (want text, json, or markdown)", format)
}
