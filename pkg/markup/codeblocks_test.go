package markup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/folio/pkg/document"
	"github.com/yaklabco/folio/pkg/markup"
)

func TestExtractCodeBlocks(t *testing.T) {
	t.Parallel()

	doc := document.New("```bash\nid\n```\ntext\n```\nplain\n```")
	blocks := markup.ExtractCodeBlocks(doc, markup.Options{})

	assert.Equal(t, []markup.CodeBlock{
		{Language: "bash", Code: "id"},
		{Language: "", Code: "plain"},
	}, blocks)
	assert.Equal(t, blocks, markup.Render(doc, markup.Options{}).CodeBlocks())
}

func TestExtractCodeBlocksRegistry(t *testing.T) {
	t.Parallel()

	doc := document.New("<InfoStatus title=\"a\"\n```bash\nid\n```\nmessage=\"m\" />")

	assert.Empty(t, markup.ExtractCodeBlocks(doc, markup.Options{}), "fence belongs to the component")

	opts := markup.Options{Registry: markup.NewRegistry()}
	blocks := markup.ExtractCodeBlocks(doc, opts)
	assert.Equal(t, []markup.CodeBlock{{Language: "bash", Code: "id"}}, blocks)
	assert.Equal(t, blocks, markup.Render(doc, opts).CodeBlocks())
}

func TestCopyAllText(t *testing.T) {
	t.Parallel()

	got := markup.CopyAllText([]markup.CodeBlock{
		{Language: "bash", Code: "id"},
		{Code: "plain"},
		{Language: "python", Code: "print(1)\nprint(2)"},
	})
	assert.Equal(t, "# bash\nid\n\nplain\n\n# python\nprint(1)\nprint(2)", got)
	assert.Empty(t, markup.CopyAllText(nil))
}
