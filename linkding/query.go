package linkding

import (
	"strconv"
	"strings"
)

// QueryStringer is implemented by the filter arguments of list operations.
type QueryStringer interface {
	QueryString() string
}

// ListBookmarksArgs filters ListBookmarks and ListArchivedBookmarks.
// A nil field is left out of the query.
type ListBookmarksArgs struct {
	Query  *string
	Limit  *int
	Offset *int
}

// QueryString renders q, limit and offset, in that order. Query is not
// escaped; callers must pass a query-safe string.
func (a ListBookmarksArgs) QueryString() string {
	return joinQuery(
		queryPair{"q", a.Query},
		queryPair{"limit", intValue(a.Limit)},
		queryPair{"offset", intValue(a.Offset)},
	)
}

// ListTagsArgs filters ListTags.
type ListTagsArgs struct {
	Limit  *int
	Offset *int
}

func (a ListTagsArgs) QueryString() string {
	return joinQuery(
		queryPair{"limit", intValue(a.Limit)},
		queryPair{"offset", intValue(a.Offset)},
	)
}

// String returns a pointer to v.
func String(v string) *string { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

type queryPair struct {
	key   string
	value *string
}

func joinQuery(pairs ...queryPair) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if p.value == nil {
			continue
		}
		parts = append(parts, p.key+"="+*p.value)
	}
	return strings.Join(parts, "&")
}

func intValue(v *int) *string {
	if v == nil {
		return nil
	}
	s := strconv.Itoa(*v)
	return &s
}
