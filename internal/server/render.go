package server

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Raw HTML in model output is dropped; goldmark escapes it unless WithUnsafe is set.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// renderMarkdown converts the assessment to HTML for the result page.
func renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render assessment markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
