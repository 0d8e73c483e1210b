package action

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/takak2166/feishudocs/internal/feishu"
	"github.com/takak2166/feishudocs/internal/logger"
)

// Supported actions.
const (
	ActionListFolderDocs = "list_folder_docs"
	ActionCreateDoc      = "create_doc"
	ActionWriteDoc       = "write_doc"
	ActionGetDocContent  = "get_doc_content"
	ActionGetDocOutline  = "get_doc_outline"
	ActionSelfTest       = "self_test"
)

var allowedActions = map[string]struct{}{
	ActionListFolderDocs: {},
	ActionCreateDoc:      {},
	ActionWriteDoc:       {},
	ActionGetDocContent:  {},
	ActionGetDocOutline:  {},
	ActionSelfTest:       {},
}

var errCredentialRequired = errors.New(
	"missing credentials: provide access_token, or app_id/app_secret, or the FEISHU_* environment variables")

// AllowedActions returns the closed action set, sorted.
func AllowedActions() []string {
	names := make([]string, 0, len(allowedActions))
	for name := range allowedActions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Runner dispatches actions against the Feishu API. The zero value is
// usable; fields exist so tests can point it at a fake server.
type Runner struct {
	// BaseURL overrides the API root. Empty means feishu.BaseURL.
	BaseURL string
	// Doer overrides the HTTP client used for every request.
	Doer feishu.Doer
	// Now supplies timestamps for self-test document names. Nil means
	// time.Now.
	Now func() time.Time
}

// Run executes one action and folds the outcome into the uniform
// envelope. Inputs are validated and the credential resolved before
// the action-specific call; every error becomes an ok=false envelope
// and nothing propagates past this boundary.
func (r *Runner) Run(ctx context.Context, name string, p Params) Result {
	name = strings.TrimSpace(name)
	if name == "" {
		return failure("unknown", "action is required")
	}
	if _, ok := allowedActions[name]; !ok {
		return failure(name, fmt.Sprintf(
			"unsupported action %q, use one of: %s", name, strings.Join(AllowedActions(), ", ")))
	}

	p = p.withEnvFallback()
	if err := p.validate(name); err != nil {
		return failure(name, "invalid request: "+err.Error())
	}

	client, err := feishu.New(ctx, feishu.Config{
		AccessToken: p.AccessToken,
		AppID:       p.AppID,
		AppSecret:   p.AppSecret,
		BaseURL:     r.BaseURL,
		Doer:        r.Doer,
	})
	if err != nil {
		logger.Error("Credential resolution failed", err, map[string]interface{}{
			"action": name,
		})
		return failure(name, err.Error())
	}

	data, err := r.dispatch(ctx, client, name, p)
	if err != nil {
		logger.Error("Action failed", err, map[string]interface{}{
			"action": name,
		})
		return failure(name, err.Error())
	}
	return success(name, data)
}

func (r *Runner) dispatch(ctx context.Context, client *feishu.Client, name string, p Params) (interface{}, error) {
	switch name {
	case ActionListFolderDocs:
		return client.ListFolderDocs(ctx, p.FolderToken, feishu.ListOptions{
			PageSize: p.PageSize,
			MaxItems: p.MaxItems,
		})
	case ActionCreateDoc:
		return client.CreateDoc(ctx, p.Title, p.FolderToken)
	case ActionWriteDoc:
		index := feishu.AppendAtEnd
		if p.Index != nil {
			index = *p.Index
		}
		return client.WriteDoc(ctx, p.DocumentID, p.Content, index)
	case ActionGetDocContent:
		return client.GetDocContent(ctx, p.DocumentID, p.MaxBlocks, p.MaxChars)
	case ActionGetDocOutline:
		return client.GetDocOutline(ctx, p.DocumentID, p.MaxBlocks)
	case ActionSelfTest:
		now := r.Now
		if now == nil {
			now = time.Now
		}
		return runSelfTest(ctx, client, p.FolderToken, p.RunWriteTest, now)
	}
	return nil, fmt.Errorf("unsupported action %q", name)
}
