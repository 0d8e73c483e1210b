package feishu

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/takak2166/feishudocs/internal/logger"
)

const listFilesPath = "/drive/v1/files"

// Listing defaults and bounds.
const (
	DefaultPageSize = 100
	MaxPageSize     = 200
	DefaultMaxItems = 500
)

// ListOptions bounds a folder listing. Zero values select the defaults.
type ListOptions struct {
	PageSize int // clamped to [1, MaxPageSize]
	MaxItems int // total cap across pages, minimum 1
}

// FolderListing is the result of ListFolderDocs.
type FolderListing struct {
	FolderToken string            `json:"folder_token"`
	Count       int               `json:"count"`
	Items       []DocumentSummary `json:"items"`
}

type listFilesData struct {
	Files []struct {
		Name    string `json:"name"`
		Type    string `json:"type"`
		Token   string `json:"token"`
		URL     string `json:"url"`
		OwnerID struct {
			ID string `json:"id"`
		} `json:"owner_id"`
		ModifiedTime string `json:"modified_time"`
	} `json:"files"`
	HasMore       bool   `json:"has_more"`
	NextPageToken string `json:"next_page_token"`
}

// ListFolderDocs pages through a drive folder ordered by most recently
// edited first and returns its documents, filtered to the supported
// document types and capped at MaxItems. An empty folder yields an
// empty listing, not an error.
func (c *Client) ListFolderDocs(ctx context.Context, folderToken string, opts ListOptions) (*FolderListing, error) {
	if folderToken == "" {
		return nil, fmt.Errorf("%w: folder_token is required", ErrInvalidInput)
	}

	size := opts.PageSize
	if size == 0 {
		size = DefaultPageSize
	}
	if size < 1 {
		size = 1
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	limit := opts.MaxItems
	if limit == 0 {
		limit = DefaultMaxItems
	}
	if limit < 1 {
		limit = 1
	}

	items := make([]DocumentSummary, 0, size)
	pageToken := ""

	for {
		params := url.Values{}
		params.Set("folder_token", folderToken)
		params.Set("page_size", strconv.Itoa(size))
		params.Set("order_by", "EditedTime")
		params.Set("direction", "DESC")
		if pageToken != "" {
			params.Set("page_token", pageToken)
		}

		var data listFilesData
		if err := c.transport.call(ctx, http.MethodGet, listFilesPath, c.token, params, nil, &data); err != nil {
			return nil, err
		}

		for _, f := range data.Files {
			if _, ok := docTypes[strings.ToLower(f.Type)]; !ok {
				continue
			}
			items = append(items, DocumentSummary{
				Name:         f.Name,
				Type:         f.Type,
				Token:        f.Token,
				URL:          f.URL,
				OwnerID:      f.OwnerID.ID,
				ModifiedTime: f.ModifiedTime,
			})
			if len(items) >= limit {
				break
			}
		}

		// Continue only while the API reports more pages AND hands
		// back a cursor. Either signal missing ends the walk.
		pageToken = data.NextPageToken
		if len(items) >= limit || !data.HasMore || pageToken == "" {
			break
		}
	}

	logger.Debug("Listed folder documents", map[string]interface{}{
		"folder_token": folderToken,
		"count":        len(items),
	})

	return &FolderListing{
		FolderToken: folderToken,
		Count:       len(items),
		Items:       items,
	}, nil
}
