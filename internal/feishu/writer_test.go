package feishu

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDoc(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, createDocPath, r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Meeting notes", body["title"])
		assert.Equal(t, "folder-1", body["folder_token"])

		_, _ = w.Write([]byte(`{"code":0,"msg":"ok","data":{"document":{"document_id":"doc-123","title":"Meeting notes","url":"https://example.com/doc-123","revision_id":1}}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	doc, err := client.CreateDoc(context.Background(), "Meeting notes", "folder-1")
	require.NoError(t, err)

	assert.Equal(t, "doc-123", doc.DocumentID)
	assert.Equal(t, "Meeting notes", doc.Title)
	assert.Equal(t, "https://example.com/doc-123", doc.URL)
	assert.Equal(t, 1, doc.RevisionID)
	assert.Equal(t, "folder-1", doc.FolderToken)
}

func TestCreateDocValidation(t *testing.T) {
	client := newTestClient(t, "http://unused.invalid")

	tests := map[string]struct {
		title  string
		folder string
	}{
		"Empty title":  {title: "", folder: "folder-1"},
		"Empty folder": {title: "Notes", folder: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := client.CreateDoc(context.Background(), tt.title, tt.folder)
			require.Error(t, err)
			assert.True(t, IsInvalidInput(err))
		})
	}
}

func TestWriteDoc(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		// Content is inserted into the root block, whose id equals the
		// document id.
		require.Equal(t, "/docx/v1/documents/doc-123/blocks/doc-123/children", r.URL.Path)

		var body struct {
			Index    int     `json:"index"`
			Children []Block `json:"children"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, AppendAtEnd, body.Index)
		require.Len(t, body.Children, 1)
		assert.Equal(t, BlockTypeText, body.Children[0].BlockType)
		require.NotNil(t, body.Children[0].Paragraph)
		require.Len(t, body.Children[0].Paragraph.Elements, 1)
		assert.Equal(t, "hello world", body.Children[0].Paragraph.Elements[0].TextRun.Content)

		_, _ = w.Write([]byte(`{"code":0,"msg":"ok","data":{"children":[{"block_id":"blk-1","block_type":2,"paragraph":{"elements":[{"text_run":{"content":"hello world"}}]}}]}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	result, err := client.WriteDoc(context.Background(), "doc-123", "hello world", AppendAtEnd)
	require.NoError(t, err)

	assert.Equal(t, "doc-123", result.DocumentID)
	assert.Equal(t, len("hello world"), result.WrittenContentLength)
	require.Len(t, result.NewBlocks, 1)
	assert.Equal(t, "blk-1", result.NewBlocks[0].BlockID)
}

func TestWriteDocContentLengthInRunes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":0,"msg":"ok","data":{"children":[]}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	result, err := client.WriteDoc(context.Background(), "doc-123", "文档管理", AppendAtEnd)
	require.NoError(t, err)
	assert.Equal(t, 4, result.WrittenContentLength)
}

func TestWriteDocValidation(t *testing.T) {
	client := newTestClient(t, "http://unused.invalid")

	tests := map[string]struct {
		documentID string
		content    string
	}{
		"Empty document id": {documentID: "", content: "hi"},
		"Empty content":     {documentID: "doc-123", content: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := client.WriteDoc(context.Background(), tt.documentID, tt.content, AppendAtEnd)
			require.Error(t, err)
			assert.True(t, IsInvalidInput(err))
		})
	}
}

func TestWriteDocAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":1770002,"msg":"document not found"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.WriteDoc(context.Background(), "missing", "hi", AppendAtEnd)
	require.Error(t, err)
	assert.True(t, IsRequestError(err))
}
