package desk

// Meta carries cursor pagination state for endpoints that use cursor-based
// lists.
type Meta struct {
	HasMore      bool   `json:"has_more"                yaml:"has_more"`
	AfterCursor  string `json:"after_cursor,omitempty"  yaml:"after_cursor,omitempty"`
	BeforeCursor string `json:"before_cursor,omitempty" yaml:"before_cursor,omitempty"`
}

// PageLinks carries cursor pagination links.
type PageLinks struct {
	Next string `json:"next,omitempty" yaml:"next,omitempty"`
	Prev string `json:"prev,omitempty" yaml:"prev,omitempty"`
}

// ListResponse represents one page of a paginated list response, unwrapped
// from its envelope key. The next-page locator is carried verbatim from the
// server, either as an offset-style next_page URL or as cursor meta/links.
type ListResponse[T any] struct {
	Items        []T
	Count        int
	NextPage     *string
	PreviousPage *string
	Meta         *Meta
	Links        *PageLinks
}

// NextLocator returns the URL of the next page, or "" when the list is
// exhausted. Cursor links take precedence when the server says more pages
// exist; otherwise the offset next_page URL is used as-is. The locator is
// never recomputed client-side.
func (r *ListResponse[T]) NextLocator() string {
	if r.Meta != nil && r.Links != nil {
		if r.Meta.HasMore {
			return r.Links.Next
		}

		return ""
	}

	if r.NextPage != nil {
		return *r.NextPage
	}

	return ""
}
