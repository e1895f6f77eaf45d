package linkding

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutesComplete(t *testing.T) {
	for op := Operation(0); op < operationCount; op++ {
		r := routes[op]
		require.NotEmpty(t, r.name, "operation %d has no route", int(op))
		require.NotEmpty(t, r.method, "%s has no method", op)
		require.NotEmpty(t, r.path, "%s has no path", op)
		assert.Equal(t, byte('/'), r.path[len(r.path)-1], "%s path must end in a slash", op)
	}
}

func TestEndpointResolution(t *testing.T) {
	tests := []struct {
		endpoint   Endpoint
		method     string
		requestURI string
	}{
		{ListBookmarksEndpoint(ListBookmarksArgs{}), http.MethodGet, "/api/bookmarks/"},
		{ListBookmarksEndpoint(ListBookmarksArgs{Offset: Int(100)}), http.MethodGet, "/api/bookmarks/?offset=100"},
		{ListArchivedBookmarksEndpoint(ListBookmarksArgs{Query: String("go"), Limit: Int(10)}), http.MethodGet, "/api/bookmarks/archived/?q=go&limit=10"},
		{GetBookmarkEndpoint(7), http.MethodGet, "/api/bookmarks/7/"},
		{CheckURLEndpoint("https://example.com"), http.MethodGet, "/api/bookmarks/check/?url=https://example.com"},
		{CreateBookmarkEndpoint(), http.MethodPost, "/api/bookmarks/"},
		{UpdateBookmarkEndpoint(7), http.MethodPatch, "/api/bookmarks/7/"},
		{ArchiveBookmarkEndpoint(42), http.MethodPost, "/api/bookmarks/42/archive/"},
		{UnarchiveBookmarkEndpoint(42), http.MethodPost, "/api/bookmarks/42/unarchive/"},
		{DeleteBookmarkEndpoint(42), http.MethodDelete, "/api/bookmarks/42/"},
		{ListTagsEndpoint(ListTagsArgs{Limit: Int(5), Offset: Int(0)}), http.MethodGet, "/api/tags/?limit=5&offset=0"},
		{GetTagEndpoint(3), http.MethodGet, "/api/tags/3/"},
		{CreateTagEndpoint(), http.MethodPost, "/api/tags/"},
		{GetUserProfileEndpoint(), http.MethodGet, "/api/user/profile/"},
		{ListBookmarkAssetsEndpoint(1), http.MethodGet, "/api/bookmarks/1/assets/"},
		{RetrieveBookmarkAssetEndpoint(1, 2), http.MethodGet, "/api/bookmarks/1/assets/2/"},
		{DownloadBookmarkAssetEndpoint(1, 1), http.MethodGet, "/api/bookmarks/1/assets/1/download/"},
		{UploadBookmarkAssetEndpoint(9), http.MethodPost, "/api/bookmarks/9/assets/upload/"},
		{DeleteBookmarkAssetEndpoint(1, 2), http.MethodDelete, "/api/bookmarks/1/assets/2/"},
	}

	seen := make(map[Operation]bool)
	for _, tt := range tests {
		seen[tt.endpoint.Operation()] = true
		t.Run(tt.endpoint.Operation().String(), func(t *testing.T) {
			assert.Equal(t, tt.method, tt.endpoint.Method())
			assert.Equal(t, tt.requestURI, tt.endpoint.RequestURI())
			// same input, same request line
			assert.Equal(t, tt.endpoint.RequestURI(), tt.endpoint.RequestURI())
		})
	}
	assert.Len(t, seen, int(operationCount), "every operation needs a resolution case")
}

func TestEndpointHeaders(t *testing.T) {
	json := GetBookmarkEndpoint(1).Header()
	assert.Equal(t, "application/json", json.Get("Accept"))
	assert.Equal(t, "application/json", json.Get("Content-Type"))

	download := DownloadBookmarkAssetEndpoint(1, 1).Header()
	assert.Empty(t, download.Get("Accept"))
	assert.Empty(t, download.Get("Content-Type"))

	upload := UploadBookmarkAssetEndpoint(1).Header()
	assert.Equal(t, "application/json", upload.Get("Accept"))
	assert.Empty(t, upload.Get("Content-Type"))

	assert.Empty(t, json.Get("Authorization"), "authorization is attached by the client")
}

func TestZeroEndpointListsBookmarks(t *testing.T) {
	var e Endpoint
	assert.Equal(t, OpListBookmarks, e.Operation())
	assert.Equal(t, "/api/bookmarks/", e.RequestURI())
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "archive bookmark", OpArchiveBookmark.String())
	assert.Equal(t, "Operation(99)", Operation(99).String())
}
