// Package export renders plans, paths and categories as markdown documents
// and converts them to standalone HTML pages.
package export

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Format is an output format of the plan command.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
)

// ParseFormat accepts "md", "markdown" or "html".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "md", "markdown":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want md or html)", s)
	}
}

// Converter turns exported markdown into HTML.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter creates a converter with GFM tables and frontmatter support.
func NewConverter() *Converter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			meta.Meta,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
	return &Converter{md: md}
}

// ToHTML converts a document to a standalone HTML page. The frontmatter title,
// when present, becomes the page title.
func (c *Converter) ToHTML(markdown string) (string, error) {
	var body bytes.Buffer
	ctx := parser.NewContext()
	if err := c.md.Convert([]byte(markdown), &body, parser.WithContext(ctx)); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}

	title := "Skill Matrix"
	if t, ok := meta.Get(ctx)["title"].(string); ok && strings.TrimSpace(t) != "" {
		title = strings.TrimSpace(t)
	}

	var page strings.Builder
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&page, "<title>%s</title>\n", html.EscapeString(title))
	page.WriteString("</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.String(), nil
}

// ToHTML converts with a default converter.
func ToHTML(markdown string) (string, error) {
	return NewConverter().ToHTML(markdown)
}

// Render returns the document in the requested format.
func Render(markdown string, format Format) (string, error) {
	if format == FormatHTML {
		return ToHTML(markdown)
	}
	return markdown, nil
}
