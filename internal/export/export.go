// Package export turns finished document content into downloadable artifacts.
//
// Encoders receive the fully merged content string; byte-level fidelity for
// the office formats is delegated to whatever consumes the download (the
// original export path ships the raw content under the target media type).
package export

import (
	"fmt"
	"html"
	"strings"
)

// Encoder renders finished document content in one target format.
type Encoder interface {
	Encode(content string) ([]byte, error)
	ContentType() string
	Extension() string
}

// ForFormat returns the encoder for the given format name.
func ForFormat(format string) (Encoder, error) {
	switch strings.ToLower(format) {
	case "txt", "text":
		return textEncoder{}, nil
	case "md", "markdown":
		return markdownEncoder{}, nil
	case "html":
		return htmlEncoder{}, nil
	case "pdf":
		return mediaTypeEncoder{contentType: "application/pdf", ext: ".pdf"}, nil
	case "doc":
		return mediaTypeEncoder{contentType: "application/msword", ext: ".doc"}, nil
	}
	return nil, fmt.Errorf("export: unknown format %q", format)
}

// Formats lists the supported format names.
func Formats() []string {
	return []string{"txt", "md", "html", "pdf", "doc"}
}

type textEncoder struct{}

func (textEncoder) Encode(content string) ([]byte, error) { return []byte(content), nil }
func (textEncoder) ContentType() string                   { return "text/plain; charset=utf-8" }
func (textEncoder) Extension() string                     { return ".txt" }

type markdownEncoder struct{}

func (markdownEncoder) Encode(content string) ([]byte, error) { return []byte(content), nil }
func (markdownEncoder) ContentType() string                   { return "text/markdown; charset=utf-8" }
func (markdownEncoder) Extension() string                     { return ".md" }

// htmlEncoder escapes the content and renders line breaks explicitly. No raw
// markup from the document survives into the output.
type htmlEncoder struct{}

func (htmlEncoder) Encode(content string) ([]byte, error) {
	escaped := html.EscapeString(content)
	body := strings.ReplaceAll(escaped, "\n", "<br>\n")
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<body>\n")
	b.WriteString(body)
	b.WriteString("\n</body>\n</html>\n")
	return []byte(b.String()), nil
}

func (htmlEncoder) ContentType() string { return "text/html; charset=utf-8" }
func (htmlEncoder) Extension() string   { return ".html" }

// mediaTypeEncoder passes content through under an office media type.
type mediaTypeEncoder struct {
	contentType string
	ext         string
}

func (e mediaTypeEncoder) Encode(content string) ([]byte, error) { return []byte(content), nil }
func (e mediaTypeEncoder) ContentType() string                   { return e.contentType }
func (e mediaTypeEncoder) Extension() string                     { return e.ext }
