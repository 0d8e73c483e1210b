package main

import (
	"github.com/spf13/cobra"

	"github.com/takak2166/feishudocs/internal/action"
	"github.com/takak2166/feishudocs/internal/feishu"
)

var (
	listPageSize int
	listMaxItems int

	createTitle string

	writeDocumentID string
	writeContent    string
	writeIndex      int

	contentDocumentID string
	contentMaxBlocks  int
	contentMaxChars   int

	outlineDocumentID string
	outlineMaxBlocks  int

	selfTestWrite bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents in the managed folder",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := baseParams()
		p.PageSize = listPageSize
		p.MaxItems = listMaxItems
		return runAction(cmd, action.ActionListFolderDocs, p)
	},
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new document in the managed folder",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := baseParams()
		p.Title = createTitle
		return runAction(cmd, action.ActionCreateDoc, p)
	},
}

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Append a text paragraph to a document",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := baseParams()
		p.DocumentID = writeDocumentID
		p.Content = writeContent
		index := writeIndex
		p.Index = &index
		return runAction(cmd, action.ActionWriteDoc, p)
	},
}

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Read a document's text content",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := baseParams()
		p.DocumentID = contentDocumentID
		p.MaxBlocks = contentMaxBlocks
		p.MaxChars = contentMaxChars
		return runAction(cmd, action.ActionGetDocContent, p)
	},
}

var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Read a document's heading outline",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := baseParams()
		p.DocumentID = outlineDocumentID
		p.MaxBlocks = outlineMaxBlocks
		return runAction(cmd, action.ActionGetDocOutline, p)
	},
}

var selfTestCmd = &cobra.Command{
	Use:   "self-test",
	Short: "Run the integration self-test",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := baseParams()
		p.RunWriteTest = selfTestWrite
		return runAction(cmd, action.ActionSelfTest, p)
	},
}

func init() {
	listCmd.Flags().IntVar(&listPageSize, "page-size", feishu.DefaultPageSize, "page size per request (1-200)")
	listCmd.Flags().IntVar(&listMaxItems, "max-items", feishu.DefaultMaxItems, "maximum total entries")

	createCmd.Flags().StringVar(&createTitle, "title", "", "title of the new document")

	writeCmd.Flags().StringVar(&writeDocumentID, "document-id", "", "target document id")
	writeCmd.Flags().StringVar(&writeContent, "content", "", "text to append")
	writeCmd.Flags().IntVar(&writeIndex, "index", feishu.AppendAtEnd, "insertion index, -1 appends at the end")

	contentCmd.Flags().StringVar(&contentDocumentID, "document-id", "", "target document id")
	contentCmd.Flags().IntVar(&contentMaxBlocks, "max-blocks", feishu.DefaultMaxBlocks, "maximum blocks to collect")
	contentCmd.Flags().IntVar(&contentMaxChars, "max-chars", feishu.DefaultMaxChars, "maximum characters to emit")

	outlineCmd.Flags().StringVar(&outlineDocumentID, "document-id", "", "target document id")
	outlineCmd.Flags().IntVar(&outlineMaxBlocks, "max-blocks", feishu.DefaultMaxBlocks, "maximum blocks to collect")

	selfTestCmd.Flags().BoolVar(&selfTestWrite, "write", false, "also exercise the create/write/read path")

	rootCmd.AddCommand(listCmd, createCmd, writeCmd, contentCmd, outlineCmd, selfTestCmd)
}
