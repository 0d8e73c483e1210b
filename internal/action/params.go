package action

import (
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Environment fallbacks for credentials and the target folder.
const (
	EnvAccessToken = "FEISHU_ACCESS_TOKEN"
	EnvAppID       = "FEISHU_APP_ID"
	EnvAppSecret   = "FEISHU_APP_SECRET"
	EnvFolderToken = "FEISHU_AI_FOLDER_TOKEN"
)

// Params carries every input an action can take. Unused fields are
// ignored by actions that do not read them.
type Params struct {
	AccessToken string `json:"access_token,omitempty"`
	AppID       string `json:"app_id,omitempty"`
	AppSecret   string `json:"app_secret,omitempty"`

	FolderToken string `json:"folder_token,omitempty"`

	PageSize int `json:"page_size,omitempty"`
	MaxItems int `json:"max_items,omitempty"`

	Title      string `json:"title,omitempty"`
	DocumentID string `json:"document_id,omitempty"`
	Content    string `json:"content,omitempty"`
	// Index is the insertion position for write_doc; nil appends at
	// the end.
	Index *int `json:"index,omitempty"`

	MaxBlocks int `json:"max_blocks,omitempty"`
	MaxChars  int `json:"max_chars,omitempty"`

	RunWriteTest bool `json:"run_write_test,omitempty"`
}

// withEnvFallback fills credential and folder fields from the FEISHU_*
// environment variables when they were not passed explicitly.
func (p Params) withEnvFallback() Params {
	if strings.TrimSpace(p.AccessToken) == "" {
		p.AccessToken = strings.TrimSpace(os.Getenv(EnvAccessToken))
	}
	if strings.TrimSpace(p.AppID) == "" {
		p.AppID = strings.TrimSpace(os.Getenv(EnvAppID))
	}
	if strings.TrimSpace(p.AppSecret) == "" {
		p.AppSecret = strings.TrimSpace(os.Getenv(EnvAppSecret))
	}
	if strings.TrimSpace(p.FolderToken) == "" {
		p.FolderToken = strings.TrimSpace(os.Getenv(EnvFolderToken))
	}
	return p
}

// validate checks the required fields of the given action before any
// network call is made.
func (p Params) validate(action string) error {
	if strings.TrimSpace(p.AccessToken) == "" &&
		(strings.TrimSpace(p.AppID) == "" || strings.TrimSpace(p.AppSecret) == "") {
		return errCredentialRequired
	}

	switch action {
	case ActionListFolderDocs, ActionSelfTest:
		return validation.ValidateStruct(&p,
			validation.Field(&p.FolderToken, validation.Required.Error("ai_folder_token/folder_token is required")),
		)
	case ActionCreateDoc:
		return validation.ValidateStruct(&p,
			validation.Field(&p.Title, validation.Required),
			validation.Field(&p.FolderToken, validation.Required.Error("ai_folder_token/folder_token is required")),
		)
	case ActionWriteDoc:
		return validation.ValidateStruct(&p,
			validation.Field(&p.DocumentID, validation.Required),
			validation.Field(&p.Content, validation.Required),
		)
	case ActionGetDocContent, ActionGetDocOutline:
		return validation.ValidateStruct(&p,
			validation.Field(&p.DocumentID, validation.Required),
		)
	}
	return nil
}

// ParseFlag coerces a loosely typed flag value to bool, accepting the
// truthy string forms "1", "true", "yes", "y" and "on". Nil and empty
// values select the default.
func ParseFlag(value interface{}, def bool) bool {
	switch v := value.(type) {
	case nil:
		return def
	case bool:
		return v
	case int:
		return v != 0
	case float64:
		return v != 0
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		if s == "" {
			return def
		}
		switch s {
		case "1", "true", "yes", "y", "on":
			return true
		}
		return false
	default:
		return def
	}
}
