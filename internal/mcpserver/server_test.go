package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takak2166/feishudocs/internal/action"
)

func TestNewServer(t *testing.T) {
	s := NewServer(&action.Runner{})
	require.NotNil(t, s)
}

func TestNewServerNilRunner(t *testing.T) {
	require.NotNil(t, NewServer(nil))
}

func TestRunReturnsEnvelope(t *testing.T) {
	t.Setenv(action.EnvAccessToken, "")
	t.Setenv(action.EnvAppID, "")
	t.Setenv(action.EnvAppSecret, "")
	t.Setenv(action.EnvFolderToken, "")

	// Missing credentials: the tool must surface the failure envelope
	// as an error result without returning a Go error.
	result, err := run(context.Background(), &action.Runner{}, action.ActionGetDocContent, action.Params{
		DocumentID: "doc-1",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)

	require.Len(t, result.Content, 1)
	tc, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)

	var envelope struct {
		OK     bool            `json:"ok"`
		Action string          `json:"action"`
		Data   json.RawMessage `json:"data"`
		Error  string          `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(tc.Text), &envelope))
	assert.False(t, envelope.OK)
	assert.Equal(t, action.ActionGetDocContent, envelope.Action)
	assert.Equal(t, "{}", string(envelope.Data))
	assert.NotEmpty(t, envelope.Error)
}
