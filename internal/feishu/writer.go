package feishu

import (
	"context"
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/takak2166/feishudocs/internal/logger"
)

const createDocPath = "/docx/v1/documents"

// AppendAtEnd inserts after the last existing child.
const AppendAtEnd = -1

// WriteResult reports an append: the target document, the length of the
// written content in characters, and the raw descriptors of the blocks
// the API created.
type WriteResult struct {
	DocumentID           string  `json:"document_id"`
	WrittenContentLength int     `json:"written_content_length"`
	NewBlocks            []Block `json:"new_blocks"`
}

type createDocData struct {
	Document struct {
		DocumentID string `json:"document_id"`
		Title      string `json:"title"`
		URL        string `json:"url"`
		RevisionID int    `json:"revision_id"`
	} `json:"document"`
}

// CreateDoc creates a new docx document inside the given folder.
func (c *Client) CreateDoc(ctx context.Context, title, folderToken string) (*Document, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if folderToken == "" {
		return nil, fmt.Errorf("%w: folder_token is required", ErrInvalidInput)
	}

	body := map[string]string{
		"title":        title,
		"folder_token": folderToken,
	}

	var data createDocData
	if err := c.transport.call(ctx, http.MethodPost, createDocPath, c.token, nil, body, &data); err != nil {
		return nil, err
	}

	logger.Info("Created document", map[string]interface{}{
		"document_id": data.Document.DocumentID,
		"title":       data.Document.Title,
	})

	return &Document{
		DocumentID:  data.Document.DocumentID,
		Title:       data.Document.Title,
		URL:         data.Document.URL,
		RevisionID:  data.Document.RevisionID,
		FolderToken: folderToken,
	}, nil
}

type writeDocData struct {
	Children []Block `json:"children"`
}

// WriteDoc appends content to a document as a single plain paragraph
// block, inserted into the root block's children at index. Pass
// AppendAtEnd to insert after the last child.
func (c *Client) WriteDoc(ctx context.Context, documentID, content string, index int) (*WriteResult, error) {
	if documentID == "" {
		return nil, fmt.Errorf("%w: document_id is required", ErrInvalidInput)
	}
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}

	path := fmt.Sprintf("/docx/v1/documents/%s/blocks/%s/children", documentID, documentID)
	body := map[string]interface{}{
		"index": index,
		"children": []Block{
			{
				BlockType: BlockTypeText,
				Paragraph: &TextBody{
					Elements: []TextElement{
						{TextRun: &TextRun{Content: content}},
					},
				},
			},
		},
	}

	var data writeDocData
	if err := c.transport.call(ctx, http.MethodPost, path, c.token, nil, body, &data); err != nil {
		return nil, err
	}

	logger.Debug("Appended content to document", map[string]interface{}{
		"document_id": documentID,
		"length":      utf8.RuneCountInString(content),
	})

	return &WriteResult{
		DocumentID:           documentID,
		WrittenContentLength: utf8.RuneCountInString(content),
		NewBlocks:            data.Children,
	}, nil
}
