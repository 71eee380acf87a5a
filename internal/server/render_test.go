package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown(t *testing.T) {
	html, err := renderMarkdown("## Strengths\n\n- **Niche** market\n")
	require.NoError(t, err)

	assert.Contains(t, string(html), "<h2>Strengths</h2>")
	assert.Contains(t, string(html), "<strong>Niche</strong>")
}

func TestRenderMarkdown_DropsRawHTML(t *testing.T) {
	html, err := renderMarkdown("ok <script>alert(1)</script>")
	require.NoError(t, err)

	assert.NotContains(t, string(html), "<script>")
}
