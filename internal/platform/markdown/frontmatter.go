// Package markdown reads and writes the daily notes parents keep next to the data dir.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const fence = "---\n"

// Split separates a YAML header from the body and decodes the header into meta.
// Content without a header leaves meta untouched and returns it whole as the body.
func Split(content string, meta any) (string, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(content, fence) {
		return content, nil
	}
	rest := content[len(fence):]
	idx := strings.Index(rest, "\n"+fence)
	if idx < 0 {
		return "", fmt.Errorf("frontmatter: missing closing fence")
	}
	if err := yaml.Unmarshal([]byte(rest[:idx]), meta); err != nil {
		return "", fmt.Errorf("frontmatter: %w", err)
	}
	return rest[idx+1+len(fence):], nil
}

// Render writes meta as a YAML header followed by a blank line and body.
func Render(meta any, body string) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(fence)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(meta); err != nil {
		return "", fmt.Errorf("frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("frontmatter: %w", err)
	}
	buf.WriteString(fence)
	buf.WriteString("\n")
	buf.WriteString(strings.TrimLeft(body, "\n"))
	return buf.String(), nil
}
