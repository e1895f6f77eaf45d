package linkding

import "context"

// ClientInterface defines the interface for the linkding API client.
type ClientInterface interface {
	ListBookmarks(ctx context.Context, args ListBookmarksArgs) (*BookmarkList, error)
	ListArchivedBookmarks(ctx context.Context, args ListBookmarksArgs) (*BookmarkList, error)
	GetBookmark(ctx context.Context, id int) (*Bookmark, error)
	CheckURL(ctx context.Context, rawURL string) (*CheckURLResponse, error)
	CreateBookmark(ctx context.Context, body CreateBookmarkBody) (*Bookmark, error)
	UpdateBookmark(ctx context.Context, id int, body UpdateBookmarkBody) (*Bookmark, error)
	ArchiveBookmark(ctx context.Context, id int) (bool, error)
	UnarchiveBookmark(ctx context.Context, id int) (bool, error)
	DeleteBookmark(ctx context.Context, id int) (bool, error)
	ListTags(ctx context.Context, args ListTagsArgs) (*TagList, error)
	GetTag(ctx context.Context, id int) (*Tag, error)
	CreateTag(ctx context.Context, name string) (*Tag, error)
	GetUserProfile(ctx context.Context) (*UserProfile, error)
	ListBookmarkAssets(ctx context.Context, bookmarkID int) (*BookmarkAssetList, error)
	RetrieveBookmarkAsset(ctx context.Context, bookmarkID, assetID int) (*BookmarkAsset, error)
	DownloadBookmarkAsset(ctx context.Context, bookmarkID, assetID int) ([]byte, error)
	UploadBookmarkAsset(ctx context.Context, bookmarkID int, filename string, data []byte) (*BookmarkAsset, error)
	DeleteBookmarkAsset(ctx context.Context, bookmarkID, assetID int) (bool, error)
}

var _ ClientInterface = (*Client)(nil)
