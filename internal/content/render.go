package content

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// richTextPolicy keeps what the notice editor produces: UGC markup plus
// headings, tables and inline styling.
var richTextPolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("h1", "h2", "h3", "h4", "h5", "h6")
	p.AllowElements("table", "thead", "tbody", "tr", "th", "td")
	p.AllowAttrs("style").OnElements("p", "span", "div", "h1", "h2", "h3", "h4", "h5", "h6", "table", "tr", "td", "th")
	p.AllowAttrs("class").OnElements("p", "span", "div", "ul", "ol", "li", "table", "tr", "td", "th")
	return p
}()

// Raw HTML in term documents is escaped: WithUnsafe is not set.
var termRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// SanitizeRichText strips markup that is not allowed in notice bodies.
func SanitizeRichText(html string) string {
	return richTextPolicy.Sanitize(html)
}

// RenderTerm converts a plain-text term document to HTML for preview.
func RenderTerm(text string) (string, error) {
	var buf bytes.Buffer
	if err := termRenderer.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("render term: %w", err)
	}

	return buf.String(), nil
}
