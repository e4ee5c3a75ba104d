package markdown

import "strings"

// Block is a region of a note rewritten by the app. Text outside it belongs to the reader.
type Block struct {
	Start string
	End   string
}

// Replace swaps the block's contents, appending the block when body has none.
func (b Block) Replace(body, generated string) string {
	section := b.Start + "\n" + strings.TrimRight(generated, "\n") + "\n" + b.End
	start := strings.Index(body, b.Start)
	if start >= 0 {
		if end := strings.Index(body[start:], b.End); end >= 0 {
			return body[:start] + section + body[start+end+len(b.End):]
		}
	}
	switch {
	case strings.TrimSpace(body) == "":
		return section + "\n"
	case strings.HasSuffix(body, "\n"):
		return body + "\n" + section + "\n"
	default:
		return body + "\n\n" + section + "\n"
	}
}

// Contents returns what sits between the markers, if the block is present.
func (b Block) Contents(body string) (string, bool) {
	start := strings.Index(body, b.Start)
	if start < 0 {
		return "", false
	}
	inner := body[start+len(b.Start):]
	end := strings.Index(inner, b.End)
	if end < 0 {
		return "", false
	}
	return strings.Trim(inner[:end], "\n"), true
}
