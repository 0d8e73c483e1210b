// Package mcpserver exposes the document-manager actions as MCP tools
// so agent hosts can call them directly. Every tool returns the same
// JSON envelope the CLI prints.
package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/takak2166/feishudocs/internal/action"
)

const Version = "0.1.0"

// credentialArgs are shared by every tool; empty fields fall back to
// the FEISHU_* environment variables.
type credentialArgs struct {
	AccessToken string `json:"access_token,omitempty"`
	AppID       string `json:"app_id,omitempty"`
	AppSecret   string `json:"app_secret,omitempty"`
}

// folderArgs accept the folder token under both of its historical
// names.
type folderArgs struct {
	FolderToken   string `json:"folder_token,omitempty"`
	AIFolderToken string `json:"ai_folder_token,omitempty"`
}

func (f folderArgs) folder() string {
	if f.FolderToken != "" {
		return f.FolderToken
	}
	return f.AIFolderToken
}

type listFolderDocsArgs struct {
	credentialArgs
	folderArgs
	PageSize    int    `json:"page_size,omitempty"`
	MaxItems    int    `json:"max_items,omitempty"`
}

type createDocArgs struct {
	credentialArgs
	folderArgs
	Title string `json:"title"`
}

type writeDocArgs struct {
	credentialArgs
	DocumentID string `json:"document_id"`
	Content    string `json:"content"`
	Index      *int   `json:"index,omitempty"`
}

type getDocContentArgs struct {
	credentialArgs
	DocumentID string `json:"document_id"`
	MaxBlocks  int    `json:"max_blocks,omitempty"`
	MaxChars   int    `json:"max_chars,omitempty"`
}

type getDocOutlineArgs struct {
	credentialArgs
	DocumentID string `json:"document_id"`
	MaxBlocks  int    `json:"max_blocks,omitempty"`
}

type selfTestArgs struct {
	credentialArgs
	folderArgs
	// RunWriteTest accepts bool or the loose string forms "1", "true",
	// "yes", "y", "on".
	RunWriteTest interface{} `json:"run_write_test,omitempty"`
}

// NewServer builds an MCP server with one tool per action.
func NewServer(runner *action.Runner) *server.MCPServer {
	if runner == nil {
		runner = &action.Runner{}
	}

	s := server.NewMCPServer(
		"Feishu Docs Manager",
		Version,
		server.WithToolCapabilities(false),
	)

	credentialOpts := []mcp.ToolOption{
		mcp.WithString("access_token", mcp.Description("Personal access token; preferred when available")),
		mcp.WithString("app_id", mcp.Description("App id for tenant credential exchange")),
		mcp.WithString("app_secret", mcp.Description("App secret for tenant credential exchange")),
	}

	listTool := mcp.NewTool(action.ActionListFolderDocs,
		append([]mcp.ToolOption{
			mcp.WithDescription("List documents inside the managed drive folder, most recently edited first"),
			mcp.WithString("folder_token", mcp.Description("Drive folder token; falls back to FEISHU_AI_FOLDER_TOKEN")),
			mcp.WithString("ai_folder_token", mcp.Description("Alias for folder_token")),
			mcp.WithNumber("page_size", mcp.Description("Page size, clamped to 1-200, default 100")),
			mcp.WithNumber("max_items", mcp.Description("Maximum total entries, default 500")),
		}, credentialOpts...)...,
	)
	s.AddTool(listTool, mcp.NewTypedToolHandler(func(ctx context.Context, request mcp.CallToolRequest, args listFolderDocsArgs) (*mcp.CallToolResult, error) {
		return run(ctx, runner, action.ActionListFolderDocs, action.Params{
			AccessToken: args.AccessToken,
			AppID:       args.AppID,
			AppSecret:   args.AppSecret,
			FolderToken: args.folder(),
			PageSize:    args.PageSize,
			MaxItems:    args.MaxItems,
		})
	}))

	createTool := mcp.NewTool(action.ActionCreateDoc,
		append([]mcp.ToolOption{
			mcp.WithDescription("Create a new document inside the managed drive folder"),
			mcp.WithString("title", mcp.Required(), mcp.Description("Title of the new document")),
			mcp.WithString("folder_token", mcp.Description("Drive folder token; falls back to FEISHU_AI_FOLDER_TOKEN")),
			mcp.WithString("ai_folder_token", mcp.Description("Alias for folder_token")),
		}, credentialOpts...)...,
	)
	s.AddTool(createTool, mcp.NewTypedToolHandler(func(ctx context.Context, request mcp.CallToolRequest, args createDocArgs) (*mcp.CallToolResult, error) {
		return run(ctx, runner, action.ActionCreateDoc, action.Params{
			AccessToken: args.AccessToken,
			AppID:       args.AppID,
			AppSecret:   args.AppSecret,
			FolderToken: args.folder(),
			Title:       args.Title,
		})
	}))

	writeTool := mcp.NewTool(action.ActionWriteDoc,
		append([]mcp.ToolOption{
			mcp.WithDescription("Append a plain text paragraph to an existing document"),
			mcp.WithString("document_id", mcp.Required(), mcp.Description("Target document id")),
			mcp.WithString("content", mcp.Required(), mcp.Description("Text to append")),
			mcp.WithNumber("index", mcp.Description("Insertion index among the root block's children, -1 appends at the end")),
		}, credentialOpts...)...,
	)
	s.AddTool(writeTool, mcp.NewTypedToolHandler(func(ctx context.Context, request mcp.CallToolRequest, args writeDocArgs) (*mcp.CallToolResult, error) {
		return run(ctx, runner, action.ActionWriteDoc, action.Params{
			AccessToken: args.AccessToken,
			AppID:       args.AppID,
			AppSecret:   args.AppSecret,
			DocumentID:  args.DocumentID,
			Content:     args.Content,
			Index:       args.Index,
		})
	}))

	contentTool := mcp.NewTool(action.ActionGetDocContent,
		append([]mcp.ToolOption{
			mcp.WithDescription("Read a document's flattened text content"),
			mcp.WithString("document_id", mcp.Required(), mcp.Description("Target document id")),
			mcp.WithNumber("max_blocks", mcp.Description("Maximum blocks to collect, default 2000")),
			mcp.WithNumber("max_chars", mcp.Description("Maximum characters to emit, default 20000")),
		}, credentialOpts...)...,
	)
	s.AddTool(contentTool, mcp.NewTypedToolHandler(func(ctx context.Context, request mcp.CallToolRequest, args getDocContentArgs) (*mcp.CallToolResult, error) {
		return run(ctx, runner, action.ActionGetDocContent, action.Params{
			AccessToken: args.AccessToken,
			AppID:       args.AppID,
			AppSecret:   args.AppSecret,
			DocumentID:  args.DocumentID,
			MaxBlocks:   args.MaxBlocks,
			MaxChars:    args.MaxChars,
		})
	}))

	outlineTool := mcp.NewTool(action.ActionGetDocOutline,
		append([]mcp.ToolOption{
			mcp.WithDescription("Read a document's heading outline"),
			mcp.WithString("document_id", mcp.Required(), mcp.Description("Target document id")),
			mcp.WithNumber("max_blocks", mcp.Description("Maximum blocks to collect, default 2000")),
		}, credentialOpts...)...,
	)
	s.AddTool(outlineTool, mcp.NewTypedToolHandler(func(ctx context.Context, request mcp.CallToolRequest, args getDocOutlineArgs) (*mcp.CallToolResult, error) {
		return run(ctx, runner, action.ActionGetDocOutline, action.Params{
			AccessToken: args.AccessToken,
			AppID:       args.AppID,
			AppSecret:   args.AppSecret,
			DocumentID:  args.DocumentID,
			MaxBlocks:   args.MaxBlocks,
		})
	}))

	selfTestTool := mcp.NewTool(action.ActionSelfTest,
		append([]mcp.ToolOption{
			mcp.WithDescription("Run the integration self-test against the managed folder"),
			mcp.WithString("folder_token", mcp.Description("Drive folder token; falls back to FEISHU_AI_FOLDER_TOKEN")),
			mcp.WithString("ai_folder_token", mcp.Description("Alias for folder_token")),
			mcp.WithBoolean("run_write_test", mcp.Description("Also exercise create/write/read, default false")),
		}, credentialOpts...)...,
	)
	s.AddTool(selfTestTool, mcp.NewTypedToolHandler(func(ctx context.Context, request mcp.CallToolRequest, args selfTestArgs) (*mcp.CallToolResult, error) {
		return run(ctx, runner, action.ActionSelfTest, action.Params{
			AccessToken:  args.AccessToken,
			AppID:        args.AppID,
			AppSecret:    args.AppSecret,
			FolderToken:  args.folder(),
			RunWriteTest: action.ParseFlag(args.RunWriteTest, false),
		})
	}))

	return s
}

// run executes the action and hands the envelope back as tool text.
// The envelope already distinguishes success from failure, so failed
// actions surface as error results with the same JSON body.
func run(ctx context.Context, runner *action.Runner, name string, p action.Params) (*mcp.CallToolResult, error) {
	result := runner.Run(ctx, name, p)
	if !result.OK {
		return mcp.NewToolResultError(result.JSON()), nil
	}
	return mcp.NewToolResultText(result.JSON()), nil
}
