package markup_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/folio/pkg/document"
	"github.com/yaklabco/folio/pkg/markup"
)

func scan(t *testing.T, lines ...string) []markup.Block {
	t.Helper()
	doc := document.New(strings.Join(lines, "\n"))
	blocks := markup.NewScanner(markup.DefaultRegistry()).Scan(doc)
	requirePartition(t, blocks, doc.LineCount())
	return blocks
}

// requirePartition asserts that blocks cover [0, lineCount) in order with
// no gaps or overlaps.
func requirePartition(t *testing.T, blocks []markup.Block, lineCount int) {
	t.Helper()

	next := 0
	for idx, block := range blocks {
		require.Equalf(t, next, block.StartLine, "block %d starts at %d, want %d", idx, block.StartLine, next)
		require.Greaterf(t, block.EndLine, block.StartLine, "block %d is empty", idx)
		next = block.EndLine
	}
	require.Equal(t, lineCount, next, "blocks must cover every line")
}

func kinds(blocks []markup.Block) []markup.BlockKind {
	out := make([]markup.BlockKind, len(blocks))
	for idx, block := range blocks {
		out[idx] = block.Kind
	}
	return out
}

func TestScanHeadings(t *testing.T) {
	t.Parallel()

	blocks := scan(t, "# One", "## Two", "### Three", "#### Four")
	require.Len(t, blocks, 4)

	assert.Equal(t, markup.BlockHeading, blocks[0].Kind)
	assert.Equal(t, 1, blocks[0].Level)
	assert.Equal(t, "One", blocks[0].Text)

	assert.Equal(t, 2, blocks[1].Level)
	assert.Equal(t, "Two", blocks[1].Text)

	assert.Equal(t, 3, blocks[2].Level)
	assert.Equal(t, "Three", blocks[2].Text)

	assert.Equal(t, markup.BlockParagraph, blocks[3].Kind)
}

func TestScanFence(t *testing.T) {
	t.Parallel()

	blocks := scan(t, "intro", "```bash ", "  nmap -sV 10.0.0.1", "", "# not a heading", "```", "after")
	assert.Equal(t, []markup.BlockKind{markup.BlockParagraph, markup.BlockCode, markup.BlockParagraph}, kinds(blocks))

	code := blocks[1]
	assert.Equal(t, "bash", code.Language)
	assert.True(t, code.Closed)
	assert.Equal(t, 1, code.StartLine)
	assert.Equal(t, 6, code.EndLine)
	assert.Equal(t, []string{"  nmap -sV 10.0.0.1", "", "# not a heading"}, code.Content)
}

func TestScanFenceWithoutLanguage(t *testing.T) {
	t.Parallel()

	blocks := scan(t, "```", "x", "```")
	require.Len(t, blocks, 1)
	assert.Empty(t, blocks[0].Language)
	assert.Equal(t, []string{"x"}, blocks[0].Content)
}

func TestScanUnterminatedFence(t *testing.T) {
	t.Parallel()

	blocks := scan(t, "# Title", "```python", "print(1)", "", "``` not a close")
	require.Len(t, blocks, 2)

	code := blocks[1]
	assert.Equal(t, markup.BlockCode, code.Kind)
	assert.False(t, code.Closed)
	assert.Equal(t, 5, code.EndLine)
	assert.Equal(t, []string{"print(1)", "", "``` not a close"}, code.Content)
}

func TestScanEmptyFence(t *testing.T) {
	t.Parallel()

	blocks := scan(t, "```", "```")
	require.Len(t, blocks, 1)
	assert.Empty(t, blocks[0].Content)
	assert.True(t, blocks[0].Closed)
}

func TestScanImage(t *testing.T) {
	t.Parallel()

	blocks := scan(t, "![Service Enumeration](/images/writeups/aria/1.png)", "![broken", "next")
	assert.Equal(t, []markup.BlockKind{markup.BlockImage, markup.BlockDiscarded, markup.BlockParagraph}, kinds(blocks))
	assert.Equal(t, "Service Enumeration", blocks[0].Alt)
	assert.Equal(t, "/images/writeups/aria/1.png", blocks[0].Src)
	assert.Equal(t, "next", blocks[2].Text)
}

func TestScanComponentSingleLine(t *testing.T) {
	t.Parallel()

	blocks := scan(t, `<InfoStatus title="Info Status:" message="Start with creds" />`)
	require.Len(t, blocks, 1)

	block := blocks[0]
	assert.Equal(t, markup.BlockComponent, block.Kind)
	assert.Equal(t, "InfoStatus", block.Tag)
	assert.Equal(t, markup.Attributes{"title": "Info Status:", "message": "Start with creds"}, block.Attrs)
}

func TestScanComponentMultiLine(t *testing.T) {
	t.Parallel()

	blocks := scan(t,
		"<InfoStatus ",
		`  title="Zero-Width Steganography:" `,
		`  message="Hidden bits.`,
		"",
		`• **U+200B** → bit 0" `,
		`  type="error"`,
		"/>",
		"after",
	)
	require.Len(t, blocks, 2)

	block := blocks[0]
	assert.Equal(t, markup.BlockComponent, block.Kind)
	assert.Equal(t, 0, block.StartLine)
	assert.Equal(t, 7, block.EndLine)
	assert.Equal(t, "Hidden bits.\n\n• **U+200B** → bit 0", block.Attrs["message"])
	assert.Equal(t, "error", block.Attrs["type"])
	assert.Equal(t, "after", blocks[1].Text)
}

func TestScanComponentUnterminated(t *testing.T) {
	t.Parallel()

	blocks := scan(t, `<InfoStatus title="x"`, "# Heading")
	assert.Equal(t, []markup.BlockKind{markup.BlockDiscarded, markup.BlockHeading}, kinds(blocks))
}

func TestScanUnknownTagIsParagraph(t *testing.T) {
	t.Parallel()

	blocks := scan(t, `<Other title="x" />`, `<InfoStatusBox title="x" message="y" />`)
	assert.Equal(t, []markup.BlockKind{markup.BlockParagraph, markup.BlockParagraph}, kinds(blocks))
}

func TestScanNilRegistry(t *testing.T) {
	t.Parallel()

	doc := document.New(`<InfoStatus title="x" message="y" />`)
	blocks := markup.NewScanner(nil).Scan(doc)
	require.Len(t, blocks, 1)
	assert.Equal(t, markup.BlockParagraph, blocks[0].Kind)
}

func TestScanBlankLines(t *testing.T) {
	t.Parallel()

	blocks := scan(t, "", "   ", "\t", "text")
	assert.Equal(t, []markup.BlockKind{
		markup.BlockBlank, markup.BlockBlank, markup.BlockBlank, markup.BlockParagraph,
	}, kinds(blocks))
}

func TestScanPartitionMixedDocument(t *testing.T) {
	t.Parallel()

	scan(t,
		"# Walkthrough",
		"",
		"## Enumeration",
		"Some `code` and **bold**.",
		"```bash",
		"nmap -p- 10.0.0.1",
		"```",
		"![shot](/1.png)",
		"![bad",
		`<InfoStatus title="t"`,
		`message="m" />`,
		"```",
		"unterminated",
	)
}
