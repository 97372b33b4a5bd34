package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	content := "# Title\n\n## Section\nSome prose here.\n- first\n* second\n\nClosing thought."

	blocks := Parse(content)

	assert.Equal(t, []Block{
		{Type: Heading1, Text: "Title"},
		{Type: Heading2, Text: "Section"},
		{Type: Paragraph, Text: "Some prose here."},
		{Type: Bullet, Text: "first"},
		{Type: Bullet, Text: "second"},
		{Type: Paragraph, Text: "Closing thought."},
	}, blocks)
}

func TestParse_HeadingOrderMatters(t *testing.T) {
	// "## " must not be mistaken for "# " with a leading "#"
	blocks := Parse("## Subtitle")
	assert.Equal(t, []Block{{Type: Heading2, Text: "Subtitle"}}, blocks)
}

func TestParse_MarkerWithoutSpaceIsParagraph(t *testing.T) {
	blocks := Parse("#hashtag\n-dash")
	assert.Equal(t, []Block{
		{Type: Paragraph, Text: "#hashtag"},
		{Type: Paragraph, Text: "-dash"},
	}, blocks)
}

func TestParse_EmptyInput(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("\n\n\n"))
}
