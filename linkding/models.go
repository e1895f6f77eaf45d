package linkding

import "time"

// List is the paginated envelope every list endpoint returns. Next and
// Previous are opaque page links; a nil Next marks the last page.
type List[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// IsLastPage reports whether there is no further page after l.
func (l *List[T]) IsLastPage() bool {
	return l.Next == nil
}

type (
	BookmarkList      = List[Bookmark]
	TagList           = List[Tag]
	BookmarkAssetList = List[BookmarkAsset]
)

type Bookmark struct {
	ID                    int       `json:"id"`
	URL                   string    `json:"url"`
	Title                 string    `json:"title"`
	Description           string    `json:"description"`
	Notes                 string    `json:"notes"`
	WebArchiveSnapshotURL string    `json:"web_archive_snapshot_url"`
	FaviconURL            *string   `json:"favicon_url"`
	PreviewImageURL       *string   `json:"preview_image_url"`
	IsArchived            bool      `json:"is_archived"`
	Unread                bool      `json:"unread"`
	Shared                bool      `json:"shared"`
	TagNames              []string  `json:"tag_names"`
	DateAdded             time.Time `json:"date_added"`
	DateModified          time.Time `json:"date_modified"`
	WebsiteTitle          *string   `json:"website_title"`
	WebsiteDescription    *string   `json:"website_description"`
}

// CreateBookmarkBody is the payload of CreateBookmark. Only URL is
// required; nil fields are left for the server to fill in. If the URL is
// already bookmarked the server updates that bookmark instead.
type CreateBookmarkBody struct {
	URL                   string     `json:"url"`
	Title                 *string    `json:"title,omitempty"`
	Description           *string    `json:"description,omitempty"`
	Notes                 *string    `json:"notes,omitempty"`
	WebArchiveSnapshotURL *string    `json:"web_archive_snapshot_url,omitempty"`
	FaviconURL            *string    `json:"favicon_url,omitempty"`
	PreviewImageURL       *string    `json:"preview_image_url,omitempty"`
	IsArchived            *bool      `json:"is_archived,omitempty"`
	Unread                *bool      `json:"unread,omitempty"`
	Shared                *bool      `json:"shared,omitempty"`
	TagNames              []string   `json:"tag_names,omitempty"`
	DateAdded             *time.Time `json:"date_added,omitempty"`
	DateModified          *time.Time `json:"date_modified,omitempty"`
	WebsiteTitle          *string    `json:"website_title,omitempty"`
	WebsiteDescription    *string    `json:"website_description,omitempty"`
}

// UpdateBookmarkBody is the PATCH payload of UpdateBookmark. Set only the
// fields to change. A non-nil empty TagNames clears the tags.
type UpdateBookmarkBody struct {
	URL                   *string    `json:"url,omitempty"`
	Title                 *string    `json:"title,omitempty"`
	Description           *string    `json:"description,omitempty"`
	Notes                 *string    `json:"notes,omitempty"`
	WebArchiveSnapshotURL *string    `json:"web_archive_snapshot_url,omitempty"`
	FaviconURL            *string    `json:"favicon_url,omitempty"`
	PreviewImageURL       *string    `json:"preview_image_url,omitempty"`
	IsArchived            *bool      `json:"is_archived,omitempty"`
	Unread                *bool      `json:"unread,omitempty"`
	Shared                *bool      `json:"shared,omitempty"`
	TagNames              *[]string  `json:"tag_names,omitempty"`
	DateAdded             *time.Time `json:"date_added,omitempty"`
	DateModified          *time.Time `json:"date_modified,omitempty"`
	WebsiteTitle          *string    `json:"website_title,omitempty"`
	WebsiteDescription    *string    `json:"website_description,omitempty"`
}

// PageMetadata is what the server scraped from a URL passed to CheckURL.
type PageMetadata struct {
	URL          string  `json:"url"`
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	PreviewImage *string `json:"preview_image"`
}

// CheckURLResponse holds the existing bookmark for a URL, if any, and the
// page metadata, which is always present.
type CheckURLResponse struct {
	Bookmark *Bookmark    `json:"bookmark"`
	Metadata PageMetadata `json:"metadata"`
	AutoTags []string     `json:"auto_tags"`
}

type Tag struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	DateAdded time.Time `json:"date_added"`
}

type createTagBody struct {
	Name string `json:"name"`
}
