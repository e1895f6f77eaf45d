package linkding

import (
	"fmt"
	"net/http"
)

// Operation identifies one logical call of the linkding API.
type Operation int

const (
	OpListBookmarks Operation = iota
	OpListArchivedBookmarks
	OpGetBookmark
	OpCheckURL
	OpCreateBookmark
	OpUpdateBookmark
	OpArchiveBookmark
	OpUnarchiveBookmark
	OpDeleteBookmark
	OpListTags
	OpGetTag
	OpCreateTag
	OpGetUserProfile
	OpListBookmarkAssets
	OpRetrieveBookmarkAsset
	OpDownloadBookmarkAsset
	OpUploadBookmarkAsset
	OpDeleteBookmarkAsset

	operationCount
)

type contentKind int

const (
	contentJSON contentKind = iota
	contentDownload
	contentUpload
)

type route struct {
	name    string
	method  string
	path    string // fmt template, one %d per interpolated ID
	ids     int
	content contentKind
}

// routes is indexed by Operation. Adding an Operation without a route
// leaves a zero entry, which TestRoutesComplete rejects.
var routes = [operationCount]route{
	OpListBookmarks:         {"list bookmarks", http.MethodGet, "/api/bookmarks/", 0, contentJSON},
	OpListArchivedBookmarks: {"list archived bookmarks", http.MethodGet, "/api/bookmarks/archived/", 0, contentJSON},
	OpGetBookmark:           {"get bookmark", http.MethodGet, "/api/bookmarks/%d/", 1, contentJSON},
	OpCheckURL:              {"check url", http.MethodGet, "/api/bookmarks/check/", 0, contentJSON},
	OpCreateBookmark:        {"create bookmark", http.MethodPost, "/api/bookmarks/", 0, contentJSON},
	OpUpdateBookmark:        {"update bookmark", http.MethodPatch, "/api/bookmarks/%d/", 1, contentJSON},
	OpArchiveBookmark:       {"archive bookmark", http.MethodPost, "/api/bookmarks/%d/archive/", 1, contentJSON},
	OpUnarchiveBookmark:     {"unarchive bookmark", http.MethodPost, "/api/bookmarks/%d/unarchive/", 1, contentJSON},
	OpDeleteBookmark:        {"delete bookmark", http.MethodDelete, "/api/bookmarks/%d/", 1, contentJSON},
	OpListTags:              {"list tags", http.MethodGet, "/api/tags/", 0, contentJSON},
	OpGetTag:                {"get tag", http.MethodGet, "/api/tags/%d/", 1, contentJSON},
	OpCreateTag:             {"create tag", http.MethodPost, "/api/tags/", 0, contentJSON},
	OpGetUserProfile:        {"get user profile", http.MethodGet, "/api/user/profile/", 0, contentJSON},
	OpListBookmarkAssets:    {"list bookmark assets", http.MethodGet, "/api/bookmarks/%d/assets/", 1, contentJSON},
	OpRetrieveBookmarkAsset: {"retrieve bookmark asset", http.MethodGet, "/api/bookmarks/%d/assets/%d/", 2, contentJSON},
	OpDownloadBookmarkAsset: {"download bookmark asset", http.MethodGet, "/api/bookmarks/%d/assets/%d/download/", 2, contentDownload},
	OpUploadBookmarkAsset:   {"upload bookmark asset", http.MethodPost, "/api/bookmarks/%d/assets/upload/", 1, contentUpload},
	OpDeleteBookmarkAsset:   {"delete bookmark asset", http.MethodDelete, "/api/bookmarks/%d/assets/%d/", 2, contentJSON},
}

func (op Operation) route() route {
	if op < 0 || op >= operationCount {
		panic(fmt.Sprintf("linkding: unknown operation %d", int(op)))
	}
	return routes[op]
}

func (op Operation) String() string {
	if op < 0 || op >= operationCount {
		return fmt.Sprintf("Operation(%d)", int(op))
	}
	return routes[op].name
}

// Endpoint is an Operation together with the arguments that vary per call.
// Build one with the constructor for its operation; the zero value is a
// ListBookmarks with no filters.
type Endpoint struct {
	op       Operation
	id       int // bookmark or tag ID
	assetID  int
	checkURL string
	args     QueryStringer
}

func ListBookmarksEndpoint(args ListBookmarksArgs) Endpoint {
	return Endpoint{op: OpListBookmarks, args: args}
}

func ListArchivedBookmarksEndpoint(args ListBookmarksArgs) Endpoint {
	return Endpoint{op: OpListArchivedBookmarks, args: args}
}

func GetBookmarkEndpoint(id int) Endpoint {
	return Endpoint{op: OpGetBookmark, id: id}
}

func CheckURLEndpoint(url string) Endpoint {
	return Endpoint{op: OpCheckURL, checkURL: url}
}

func CreateBookmarkEndpoint() Endpoint {
	return Endpoint{op: OpCreateBookmark}
}

func UpdateBookmarkEndpoint(id int) Endpoint {
	return Endpoint{op: OpUpdateBookmark, id: id}
}

func ArchiveBookmarkEndpoint(id int) Endpoint {
	return Endpoint{op: OpArchiveBookmark, id: id}
}

func UnarchiveBookmarkEndpoint(id int) Endpoint {
	return Endpoint{op: OpUnarchiveBookmark, id: id}
}

func DeleteBookmarkEndpoint(id int) Endpoint {
	return Endpoint{op: OpDeleteBookmark, id: id}
}

func ListTagsEndpoint(args ListTagsArgs) Endpoint {
	return Endpoint{op: OpListTags, args: args}
}

func GetTagEndpoint(id int) Endpoint {
	return Endpoint{op: OpGetTag, id: id}
}

func CreateTagEndpoint() Endpoint {
	return Endpoint{op: OpCreateTag}
}

func GetUserProfileEndpoint() Endpoint {
	return Endpoint{op: OpGetUserProfile}
}

func ListBookmarkAssetsEndpoint(bookmarkID int) Endpoint {
	return Endpoint{op: OpListBookmarkAssets, id: bookmarkID}
}

func RetrieveBookmarkAssetEndpoint(bookmarkID, assetID int) Endpoint {
	return Endpoint{op: OpRetrieveBookmarkAsset, id: bookmarkID, assetID: assetID}
}

func DownloadBookmarkAssetEndpoint(bookmarkID, assetID int) Endpoint {
	return Endpoint{op: OpDownloadBookmarkAsset, id: bookmarkID, assetID: assetID}
}

func UploadBookmarkAssetEndpoint(bookmarkID int) Endpoint {
	return Endpoint{op: OpUploadBookmarkAsset, id: bookmarkID}
}

func DeleteBookmarkAssetEndpoint(bookmarkID, assetID int) Endpoint {
	return Endpoint{op: OpDeleteBookmarkAsset, id: bookmarkID, assetID: assetID}
}

// Operation returns the operation e resolves.
func (e Endpoint) Operation() Operation {
	return e.op
}

// Method returns the HTTP method of e.
func (e Endpoint) Method() string {
	return e.op.route().method
}

// Path returns the request path with IDs interpolated, without a query.
func (e Endpoint) Path() string {
	r := e.op.route()
	switch r.ids {
	case 1:
		return fmt.Sprintf(r.path, e.id)
	case 2:
		return fmt.Sprintf(r.path, e.id, e.assetID)
	}
	return r.path
}

// Query returns the raw query string of e, without the leading "?".
// CheckURL passes its URL through untouched.
func (e Endpoint) Query() string {
	switch e.op {
	case OpCheckURL:
		return "url=" + e.checkURL
	case OpListBookmarks, OpListArchivedBookmarks, OpListTags:
		if e.args == nil {
			return ""
		}
		return e.args.QueryString()
	}
	return ""
}

// RequestURI returns the path and query as sent on the request line.
func (e Endpoint) RequestURI() string {
	q := e.Query()
	if q == "" {
		return e.Path()
	}
	return e.Path() + "?" + q
}

// Header returns the default headers for e. Authorization is added by the
// client. Downloads carry no JSON headers; uploads only Accept, since the
// multipart writer supplies the Content-Type.
func (e Endpoint) Header() http.Header {
	h := http.Header{}
	switch e.op.route().content {
	case contentJSON:
		h.Set("Accept", "application/json")
		h.Set("Content-Type", "application/json")
	case contentUpload:
		h.Set("Accept", "application/json")
	case contentDownload:
	}
	return h
}
