package utils

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
)

// CleanMarkdown strips the outer code fence models like to wrap their answer
// in, leaving plain markdown.
func CleanMarkdown(input string) string {
	cleaned := strings.TrimSpace(input)

	if strings.HasPrefix(cleaned, "```markdown") && strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```markdown")
		cleaned = strings.TrimSuffix(cleaned, "```")
		return strings.TrimSpace(cleaned)
	}
	if strings.HasPrefix(cleaned, "```") && strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		return strings.TrimSpace(cleaned)
	}
	return cleaned
}

// RenderHTML converts commentary markdown to HTML for the dashboard.
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("markdown render failed: %w", err)
	}
	return buf.String(), nil
}
