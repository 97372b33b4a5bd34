// Package markdown converts free text with light markdown markers into the
// block list the document database API expects. Only line-level prefixes are
// recognized; inline styling passes through as plain text.
package markdown

import "strings"

// BlockType enumerates the supported block kinds.
type BlockType string

const (
	Heading1  BlockType = "heading_1"
	Heading2  BlockType = "heading_2"
	Bullet    BlockType = "bulleted_list_item"
	Paragraph BlockType = "paragraph"
)

// Block is one content block: a kind and its text with the marker stripped.
type Block struct {
	Type BlockType
	Text string
}

// Parse splits content into lines and classifies each by its prefix:
//
//	"## "       — second-level heading
//	"# "        — first-level heading
//	"- " / "* " — bulleted list item
//	anything else — paragraph
//
// Blank lines produce no block. A line consisting only of a marker ("#",
// "-") is treated as a paragraph since the marker needs a trailing space.
func Parse(content string) []Block {
	var blocks []Block

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "## "):
			blocks = append(blocks, Block{Type: Heading2, Text: strings.TrimPrefix(trimmed, "## ")})
		case strings.HasPrefix(trimmed, "# "):
			blocks = append(blocks, Block{Type: Heading1, Text: strings.TrimPrefix(trimmed, "# ")})
		case strings.HasPrefix(trimmed, "- "):
			blocks = append(blocks, Block{Type: Bullet, Text: strings.TrimPrefix(trimmed, "- ")})
		case strings.HasPrefix(trimmed, "* "):
			blocks = append(blocks, Block{Type: Bullet, Text: strings.TrimPrefix(trimmed, "* ")})
		default:
			blocks = append(blocks, Block{Type: Paragraph, Text: trimmed})
		}
	}

	return blocks
}
