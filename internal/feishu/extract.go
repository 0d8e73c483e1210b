package feishu

import (
	"context"
	"strings"
)

// DefaultMaxChars bounds the text emitted by GetDocContent.
const DefaultMaxChars = 20000

// DocContent is the flattened text of a document.
type DocContent struct {
	DocumentID string `json:"document_id"`
	BlockCount int    `json:"block_count"`
	TextLength int    `json:"text_length"`
	Content    string `json:"content"`
	Truncated  bool   `json:"truncated"`
}

// DocOutline is the heading structure of a document.
type DocOutline struct {
	DocumentID   string         `json:"document_id"`
	HeadingCount int            `json:"heading_count"`
	Outline      []HeadingEntry `json:"outline"`
}

// GetDocContent collects the document's blocks and joins their text
// into newline-separated lines. Blocks with no extractable text are
// skipped. Accumulation stops once maxChars characters have been
// emitted; the last piece is cut to exactly fill the budget and the
// Truncated flag is set when the budget was fully consumed.
func (c *Client) GetDocContent(ctx context.Context, documentID string, maxBlocks, maxChars int) (*DocContent, error) {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}

	blocks, err := c.CollectBlocks(ctx, documentID, maxBlocks)
	if err != nil {
		return nil, err
	}

	var lines []string
	totalChars := 0

	for i := range blocks {
		text := blocks[i].Text()
		if text == "" {
			continue
		}
		remaining := maxChars - totalChars
		if remaining <= 0 {
			break
		}
		piece := []rune(text)
		if len(piece) > remaining {
			piece = piece[:remaining]
		}
		lines = append(lines, string(piece))
		totalChars += len(piece)
	}

	return &DocContent{
		DocumentID: documentID,
		BlockCount: len(blocks),
		TextLength: totalChars,
		Content:    strings.Join(lines, "\n"),
		Truncated:  totalChars >= maxChars,
	}, nil
}

// GetDocOutline collects the document's blocks and returns the ordered
// heading entries. Only the six heading block types contribute; all
// other blocks are ignored.
func (c *Client) GetDocOutline(ctx context.Context, documentID string, maxBlocks int) (*DocOutline, error) {
	blocks, err := c.CollectBlocks(ctx, documentID, maxBlocks)
	if err != nil {
		return nil, err
	}

	outline := make([]HeadingEntry, 0)
	for i := range blocks {
		level, ok := blocks[i].HeadingLevel()
		if !ok {
			continue
		}
		outline = append(outline, HeadingEntry{
			Level:   level,
			Text:    blocks[i].Text(),
			BlockID: blocks[i].BlockID,
		})
	}

	return &DocOutline{
		DocumentID:   documentID,
		HeadingCount: len(outline),
		Outline:      outline,
	}, nil
}
