package feishu

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockText(t *testing.T) {
	tests := map[string]struct {
		block Block
		want  string
	}{
		"Paragraph": {
			block: textBlock("p", "  hello  "),
			want:  "hello",
		},
		"Heading": {
			block: headingBlock("h", BlockTypeHeading3, "Section"),
			want:  "Section",
		},
		"Multiple runs concatenated in order": {
			block: Block{
				BlockType: BlockTypeText,
				Paragraph: &TextBody{Elements: []TextElement{
					{TextRun: &TextRun{Content: "one "}},
					{},
					{TextRun: &TextRun{Content: "two"}},
				}},
			},
			want: "one two",
		},
		"No payload": {
			block: Block{BlockID: "x", BlockType: 27},
			want:  "",
		},
		"Empty runs": {
			block: Block{BlockType: BlockTypeText, Paragraph: &TextBody{}},
			want:  "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.block.Text())
		})
	}
}

func TestBlockHeadingLevel(t *testing.T) {
	for blockType, wantLevel := range map[int]int{3: 1, 4: 2, 5: 3, 6: 4, 7: 5, 8: 6} {
		level, ok := (&Block{BlockType: blockType}).HeadingLevel()
		require.True(t, ok)
		assert.Equal(t, wantLevel, level)
	}

	for _, blockType := range []int{0, 1, 2, 9, 27} {
		_, ok := (&Block{BlockType: blockType}).HeadingLevel()
		assert.False(t, ok, "block type %d must not map to a heading", blockType)
	}
}

func TestGetDocContent(t *testing.T) {
	fake := &fakeDocServer{tree: map[string][]Block{
		"doc-1": {
			headingBlock("h1", BlockTypeHeading1, "Title"),
			textBlock("p1", "first line"),
			{BlockID: "img", BlockType: 27}, // no text, skipped
			textBlock("p2", "second line"),
		},
	}}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	content, err := client.GetDocContent(context.Background(), "doc-1", 0, 0)
	require.NoError(t, err)

	assert.Equal(t, "doc-1", content.DocumentID)
	assert.Equal(t, 4, content.BlockCount)
	assert.Equal(t, "Title\nfirst line\nsecond line", content.Content)
	assert.Equal(t, len("Title")+len("first line")+len("second line"), content.TextLength)
	assert.False(t, content.Truncated)
}

func TestGetDocContentTruncation(t *testing.T) {
	fake := &fakeDocServer{tree: map[string][]Block{
		"doc-1": {
			textBlock("p1", "abcde"),
			textBlock("p2", "fghij"),
			textBlock("p3", "klmno"),
		},
	}}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	content, err := client.GetDocContent(context.Background(), "doc-1", 0, 8)
	require.NoError(t, err)

	// The second piece is cut to exactly fill the 8 character budget.
	assert.Equal(t, "abcde\nfgh", content.Content)
	assert.Equal(t, 8, content.TextLength)
	assert.True(t, content.Truncated)
}

func TestGetDocContentTruncationCountsRunes(t *testing.T) {
	fake := &fakeDocServer{tree: map[string][]Block{
		"doc-1": {textBlock("p1", "文档管理测试")},
	}}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	content, err := client.GetDocContent(context.Background(), "doc-1", 0, 4)
	require.NoError(t, err)

	assert.Equal(t, "文档管理", content.Content)
	assert.Equal(t, 4, content.TextLength)
	assert.True(t, content.Truncated)
}

func TestGetDocContentExactBudgetSetsTruncated(t *testing.T) {
	fake := &fakeDocServer{tree: map[string][]Block{
		"doc-1": {textBlock("p1", "abcd")},
	}}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	content, err := client.GetDocContent(context.Background(), "doc-1", 0, 4)
	require.NoError(t, err)
	assert.Equal(t, "abcd", content.Content)
	assert.True(t, content.Truncated)
}

func TestGetDocOutline(t *testing.T) {
	fake := &fakeDocServer{tree: map[string][]Block{
		"doc-1": {
			headingBlock("h1", BlockTypeHeading1, "Overview"),
			textBlock("p1", "intro text"),
			headingBlock("h2", BlockTypeHeading2, "Details"),
		},
		"h2": {
			headingBlock("h3", BlockTypeHeading6, "Fine print"),
		},
	}}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	outline, err := client.GetDocOutline(context.Background(), "doc-1", 0)
	require.NoError(t, err)

	assert.Equal(t, 3, outline.HeadingCount)
	require.Len(t, outline.Outline, 3)
	assert.Equal(t, HeadingEntry{Level: 1, Text: "Overview", BlockID: "h1"}, outline.Outline[0])
	assert.Equal(t, HeadingEntry{Level: 2, Text: "Details", BlockID: "h2"}, outline.Outline[1])
	assert.Equal(t, HeadingEntry{Level: 6, Text: "Fine print", BlockID: "h3"}, outline.Outline[2])
	for _, entry := range outline.Outline {
		assert.GreaterOrEqual(t, entry.Level, 1)
		assert.LessOrEqual(t, entry.Level, 6)
	}
}

func TestGetDocOutlineNoHeadings(t *testing.T) {
	fake := &fakeDocServer{tree: map[string][]Block{
		"doc-1": {textBlock("p1", strings.Repeat("x", 10))},
	}}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	outline, err := client.GetDocOutline(context.Background(), "doc-1", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, outline.HeadingCount)
	assert.Empty(t, outline.Outline)
}
