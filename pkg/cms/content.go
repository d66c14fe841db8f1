package cms

import (
	"net/url"
	"strconv"
)

// ContentItem represents a single content entry returned by the CMS.
type ContentItem struct {
	Envelope

	ID        int    `json:"id"         xml:"id"         yaml:"id"`
	Title     string `json:"title"      xml:"title"      yaml:"title"`
	Body      string `json:"body"       xml:"body"       yaml:"body"`
	Author    string `json:"author"     xml:"author"     yaml:"author"`
	Published bool   `json:"published"  xml:"published"  yaml:"published"`
	UpdatedAt string `json:"updated_at" xml:"updated_at" yaml:"updated_at"`
}

// ContentList represents a list of content entries.
type ContentList struct {
	Envelope

	Items []ContentItem `json:"items" xml:"items>item" yaml:"items"`
}

// NewContentGetQuery builds a read query for one content item.
func NewContentGetQuery(id int, format ResponseFormat) *ActionQuery {
	return &ActionQuery{
		Action:    "getcontent",
		QueryType: QueryTypeRead,
		Response:  format,
		FieldValues: url.Values{
			"id": []string{strconv.Itoa(id)},
		},
	}
}

// NewContentListQuery builds a read query for all content items.
func NewContentListQuery(format ResponseFormat) *ActionQuery {
	return &ActionQuery{
		Action:    "listcontent",
		QueryType: QueryTypeRead,
		Response:  format,
	}
}

// NewContentCreateQuery builds a create query carrying the given fields as
// the request body.
func NewContentCreateQuery(fields url.Values, format ResponseFormat) *ActionQuery {
	return &ActionQuery{
		Action:      "createcontent",
		QueryType:   QueryTypeCreate,
		Response:    format,
		FieldValues: fields,
	}
}

// NewContentUpdateQuery builds an update query for one content item.
func NewContentUpdateQuery(id int, fields url.Values, format ResponseFormat) *ActionQuery {
	if fields == nil {
		fields = url.Values{}
	}

	fields.Set("id", strconv.Itoa(id))

	return &ActionQuery{
		Action:      "updatecontent",
		QueryType:   QueryTypeUpdate,
		Response:    format,
		FieldValues: fields,
	}
}
