package dceapi

import (
	"context"
)

const (
	pathArticleByPage = "/dceapi/cms/info/articleByPage"
	pathArticleDetail = "/dceapi/cms/info/articleDetail"
)

// defaultSiteID selects the exchange's public site.
const defaultSiteID = 5

// Article column identifiers accepted by ArticleByPage.
const (
	ColumnExchangeAnnouncements = "244"
	ColumnExchangeNotices       = "245"
	ColumnDeliveryInformation   = "246"
	ColumnMemberAnnouncements   = "248"
	ColumnOptionsAnnouncements  = "1076"
	ColumnNews                  = "242"
)

var validColumnIDs = map[string]struct{}{
	ColumnExchangeAnnouncements: {},
	ColumnExchangeNotices:       {},
	ColumnDeliveryInformation:   {},
	ColumnMemberAnnouncements:   {},
	ColumnOptionsAnnouncements:  {},
	ColumnNews:                  {},
}

// IsValidColumnID reports whether the exchange publishes a column with the
// given identifier.
func IsValidColumnID(columnID string) bool {
	_, ok := validColumnIDs[columnID]
	return ok
}

// Article is a published news item or announcement.
type Article struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	SubTitle   string `json:"subTitle"`
	Summary    string `json:"infoSummary"`
	ShowDate   string `json:"showDate"`
	CreateDate string `json:"createDate"`
	Content    string `json:"content"`
	Keywords   string `json:"keywords"`
	PageName   string `json:"pageName"`
}

// ArticleByPageRequest selects a column and page of articles.
type ArticleByPageRequest struct {
	// ColumnID must be one of the Column* constants.
	ColumnID string `json:"columnId"`

	// PageNo is 1-indexed.
	PageNo   int `json:"pageNo"`
	PageSize int `json:"pageSize"`

	// SiteID defaults to the public site when zero.
	SiteID int `json:"siteId"`
}

// ArticleByPageResponse is one page of a column's articles.
type ArticleByPageResponse struct {
	ColumnID   string    `json:"columnId"`
	TotalCount int       `json:"totalCount"`
	ResultList []Article `json:"resultList"`
}

// NewsService provides article and announcement endpoints.
type NewsService service

// ArticleByPage returns one page of the given column's articles.
func (s *NewsService) ArticleByPage(ctx context.Context, req *ArticleByPageRequest, opts *RequestOptions) (*ArticleByPageResponse, error) {
	if req == nil || !IsValidColumnID(req.ColumnID) {
		return nil, &ValidationError{
			Field:  "ColumnID",
			Reason: "must be one of: 244, 245, 246, 248, 1076, 242",
		}
	}

	body := *req
	if body.SiteID == 0 {
		body.SiteID = defaultSiteID
	}

	var out ArticleByPageResponse
	if err := s.client.post(ctx, pathArticleByPage, &body, opts, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ArticleDetail returns the full content of a single article.
func (s *NewsService) ArticleDetail(ctx context.Context, articleID string, opts *RequestOptions) (*Article, error) {
	if articleID == "" {
		return nil, &ValidationError{Field: "articleID", Reason: "article ID is required"}
	}

	body := struct {
		ArticleID string `json:"articleId"`
	}{ArticleID: articleID}

	var out Article
	if err := s.client.post(ctx, pathArticleDetail, &body, opts, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
