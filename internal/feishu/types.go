package feishu

import "strings"

// Block type codes used by the docx API.
const (
	BlockTypePage     = 1
	BlockTypeText     = 2
	BlockTypeHeading1 = 3
	BlockTypeHeading2 = 4
	BlockTypeHeading3 = 5
	BlockTypeHeading4 = 6
	BlockTypeHeading5 = 7
	BlockTypeHeading6 = 8
)

// headingLevels maps heading block type codes to outline levels 1-6.
var headingLevels = map[int]int{
	BlockTypeHeading1: 1,
	BlockTypeHeading2: 2,
	BlockTypeHeading3: 3,
	BlockTypeHeading4: 4,
	BlockTypeHeading5: 5,
	BlockTypeHeading6: 6,
}

// docTypes are the drive file types treated as documents when listing.
var docTypes = map[string]struct{}{
	"doc":  {},
	"docx": {},
	"wiki": {},
}

// TextRun is a single run of inline text.
type TextRun struct {
	Content string `json:"content"`
}

// TextElement is one inline element of a rich text body. Only text runs
// carry extractable content; other element kinds are ignored.
type TextElement struct {
	TextRun *TextRun `json:"text_run,omitempty"`
}

// TextBody holds the ordered inline elements of a paragraph or heading.
type TextBody struct {
	Elements []TextElement `json:"elements"`
}

func (tb *TextBody) text() string {
	if tb == nil {
		return ""
	}
	var sb strings.Builder
	for _, el := range tb.Elements {
		if el.TextRun != nil {
			sb.WriteString(el.TextRun.Content)
		}
	}
	return strings.TrimSpace(sb.String())
}

// Block is one node of a document's content tree. Children are fetched
// separately through the block-children endpoint, never embedded.
type Block struct {
	BlockID   string    `json:"block_id"`
	ParentID  string    `json:"parent_id,omitempty"`
	BlockType int       `json:"block_type"`
	Paragraph *TextBody `json:"paragraph,omitempty"`
	Heading1  *TextBody `json:"heading1,omitempty"`
	Heading2  *TextBody `json:"heading2,omitempty"`
	Heading3  *TextBody `json:"heading3,omitempty"`
	Heading4  *TextBody `json:"heading4,omitempty"`
	Heading5  *TextBody `json:"heading5,omitempty"`
	Heading6  *TextBody `json:"heading6,omitempty"`
}

// Text returns the concatenated inline text of the block's payload,
// trimmed of surrounding whitespace. Blocks without a paragraph or
// heading payload yield the empty string.
func (b *Block) Text() string {
	for _, body := range []*TextBody{
		b.Paragraph,
		b.Heading1, b.Heading2, b.Heading3,
		b.Heading4, b.Heading5, b.Heading6,
	} {
		if t := body.text(); t != "" {
			return t
		}
	}
	return ""
}

// HeadingLevel returns the outline level (1-6) for heading blocks and
// false for every other block type.
func (b *Block) HeadingLevel() (int, bool) {
	level, ok := headingLevels[b.BlockType]
	return level, ok
}

// DocumentSummary is one entry of a folder listing.
type DocumentSummary struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Token        string `json:"token"`
	URL          string `json:"url"`
	OwnerID      string `json:"owner_id"`
	ModifiedTime string `json:"modified_time"`
}

// Document describes a docx document created through the writer.
type Document struct {
	DocumentID  string `json:"document_id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	RevisionID  int    `json:"revision_id"`
	FolderToken string `json:"folder_token"`
}

// HeadingEntry is one row of a document outline.
type HeadingEntry struct {
	Level   int    `json:"level"`
	Text    string `json:"text"`
	BlockID string `json:"block_id"`
}
