package feishu

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const (
	// DefaultMaxBlocks bounds one collection pass.
	DefaultMaxBlocks = 2000

	childrenPageSize = 200
)

type blockChildrenData struct {
	Items         []Block `json:"items"`
	Children      []Block `json:"children"`
	HasMore       bool    `json:"has_more"`
	PageToken     string  `json:"page_token"`
	NextPageToken string  `json:"next_page_token"`
}

// blockChildren fetches all direct children of one block, paginating
// until the API stops reporting more pages or stops handing back a
// cursor. The endpoint has returned the list under both "items" and
// "children" across API revisions, so both are accepted.
func (c *Client) blockChildren(ctx context.Context, documentID, blockID string) ([]Block, error) {
	path := fmt.Sprintf("/docx/v1/documents/%s/blocks/%s/children", documentID, blockID)

	var children []Block
	pageToken := ""

	for {
		params := url.Values{}
		params.Set("page_size", strconv.Itoa(childrenPageSize))
		if pageToken != "" {
			params.Set("page_token", pageToken)
		}

		var data blockChildrenData
		if err := c.transport.call(ctx, http.MethodGet, path, c.token, params, nil, &data); err != nil {
			return nil, err
		}

		part := data.Items
		if len(part) == 0 {
			part = data.Children
		}
		children = append(children, part...)

		pageToken = data.PageToken
		if pageToken == "" {
			pageToken = data.NextPageToken
		}
		if !data.HasMore || pageToken == "" {
			break
		}
	}

	return children, nil
}

// CollectBlocks walks the document's block tree depth first, starting
// from the root block whose id equals the document id, and returns up
// to maxBlocks blocks. The walk keeps an explicit stack instead of
// recursing and a visited set so no block id is taken twice, even if
// the raw responses contain cycles. Hitting the cap truncates the walk
// silently with unexplored children remaining.
func (c *Client) CollectBlocks(ctx context.Context, documentID string, maxBlocks int) ([]Block, error) {
	if documentID == "" {
		return nil, fmt.Errorf("%w: document_id is required", ErrInvalidInput)
	}
	if maxBlocks <= 0 {
		maxBlocks = DefaultMaxBlocks
	}

	stack := []string{documentID}
	visited := make(map[string]struct{})
	blocks := make([]Block, 0)

	for len(stack) > 0 && len(blocks) < maxBlocks {
		parentID := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children, err := c.blockChildren(ctx, documentID, parentID)
		if err != nil {
			return nil, err
		}

		for _, block := range children {
			bid := block.BlockID
			if bid == "" {
				continue
			}
			if _, seen := visited[bid]; seen {
				continue
			}
			visited[bid] = struct{}{}
			blocks = append(blocks, block)
			stack = append(stack, bid)
			if len(blocks) >= maxBlocks {
				break
			}
		}
	}

	return blocks, nil
}
