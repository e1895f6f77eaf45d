package linkding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const (
	defaultUserAgent = "linkdingo/0.1"
	maxErrorBody     = 64 << 10
)

// Client is a linkding API client. It holds no mutable state after
// NewClient returns and is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	token      string
	httpClient *http.Client
	userAgent  string
	logger     Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client. Timeouts and connection
// reuse are configured there; the default client has neither timeout nor
// retries.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger logs every HTTP exchange at debug level.
func WithLogger(l Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithUserAgent overrides the User-Agent header. An empty value leaves the
// header to the transport.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a client for the linkding instance at baseURL
// authenticating with token. Only scheme, host and port of baseURL are
// used; request paths replace any path it carries.
func NewClient(baseURL string, token string, opts ...Option) (*Client, error) {
	parsedURL, err := url.ParseRequestURI(baseURL)
	if err != nil {
		return nil, &Error{Kind: KindInvalidURL, Op: "new client", Err: err}
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{Kind: KindURLBuild, Op: "new client", Err: fmt.Errorf("base URL %q needs a scheme and host", baseURL)}
	}

	c := &Client{
		baseURL:    parsedURL,
		token:      token,
		httpClient: &http.Client{},
		userAgent:  defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger != nil {
		c.httpClient = withLogging(c.httpClient, c.logger)
	}
	return c, nil
}

// BaseURL returns the base URL the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// do sends the request for e and returns the response when its status is
// 2xx. Any other status becomes a KindTransport error wrapping *APIError.
func (c *Client) do(ctx context.Context, e Endpoint, body io.Reader, contentType string) (*http.Response, error) {
	req, err := c.newRequest(ctx, e, body, contentType)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newError(KindTransport, e.op, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer func() { _ = resp.Body.Close() }()
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, newError(KindTransport, e.op, &APIError{
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
			Body:       data,
		})
	}
	return resp, nil
}

// doJSON sends the request for e and decodes the JSON response into v.
func (c *Client) doJSON(ctx context.Context, e Endpoint, body io.Reader, contentType string, v any) error {
	resp, err := c.do(ctx, e, body, contentType)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return newError(KindResponseParse, e.op, fmt.Errorf("failed to decode response body: %w", err))
	}
	return nil
}

// doNoContent sends the request for e and reports whether the server
// answered 204 No Content.
func (c *Client) doNoContent(ctx context.Context, e Endpoint) (bool, error) {
	resp, err := c.do(ctx, e, nil, "")
	if err != nil {
		return false, err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusNoContent, nil
}

// ListBookmarks lists unarchived bookmarks. Pages are walked by the
// caller through args.Offset until the result's Next is nil.
func (c *Client) ListBookmarks(ctx context.Context, args ListBookmarksArgs) (*BookmarkList, error) {
	var list BookmarkList
	if err := c.doJSON(ctx, ListBookmarksEndpoint(args), nil, "", &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ListArchivedBookmarks lists archived bookmarks.
func (c *Client) ListArchivedBookmarks(ctx context.Context, args ListBookmarksArgs) (*BookmarkList, error) {
	var list BookmarkList
	if err := c.doJSON(ctx, ListArchivedBookmarksEndpoint(args), nil, "", &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetBookmark fetches a bookmark by ID.
func (c *Client) GetBookmark(ctx context.Context, id int) (*Bookmark, error) {
	var bookmark Bookmark
	if err := c.doJSON(ctx, GetBookmarkEndpoint(id), nil, "", &bookmark); err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// CheckURL reports whether rawURL is already bookmarked and returns the
// page metadata the server scraped. rawURL is sent unescaped; pre-encode
// it with url.QueryEscape if it contains '&', '#' or spaces.
func (c *Client) CheckURL(ctx context.Context, rawURL string) (*CheckURLResponse, error) {
	var check CheckURLResponse
	if err := c.doJSON(ctx, CheckURLEndpoint(rawURL), nil, "", &check); err != nil {
		return nil, err
	}
	return &check, nil
}

// CreateBookmark creates a bookmark, or updates the existing one for the
// same URL.
func (c *Client) CreateBookmark(ctx context.Context, body CreateBookmarkBody) (*Bookmark, error) {
	e := CreateBookmarkEndpoint()
	reqBody, err := encodeJSON(e.op, body)
	if err != nil {
		return nil, err
	}
	var bookmark Bookmark
	if err := c.doJSON(ctx, e, reqBody, "", &bookmark); err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// UpdateBookmark patches the fields set in body.
func (c *Client) UpdateBookmark(ctx context.Context, id int, body UpdateBookmarkBody) (*Bookmark, error) {
	e := UpdateBookmarkEndpoint(id)
	reqBody, err := encodeJSON(e.op, body)
	if err != nil {
		return nil, err
	}
	var bookmark Bookmark
	if err := c.doJSON(ctx, e, reqBody, "", &bookmark); err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// ArchiveBookmark archives a bookmark. It returns true when the server
// answers 204 No Content.
func (c *Client) ArchiveBookmark(ctx context.Context, id int) (bool, error) {
	return c.doNoContent(ctx, ArchiveBookmarkEndpoint(id))
}

// UnarchiveBookmark takes a bookmark out of the archive.
func (c *Client) UnarchiveBookmark(ctx context.Context, id int) (bool, error) {
	return c.doNoContent(ctx, UnarchiveBookmarkEndpoint(id))
}

// DeleteBookmark deletes a bookmark.
func (c *Client) DeleteBookmark(ctx context.Context, id int) (bool, error) {
	return c.doNoContent(ctx, DeleteBookmarkEndpoint(id))
}

func (c *Client) ListTags(ctx context.Context, args ListTagsArgs) (*TagList, error) {
	var list TagList
	if err := c.doJSON(ctx, ListTagsEndpoint(args), nil, "", &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) GetTag(ctx context.Context, id int) (*Tag, error) {
	var tag Tag
	if err := c.doJSON(ctx, GetTagEndpoint(id), nil, "", &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

func (c *Client) CreateTag(ctx context.Context, name string) (*Tag, error) {
	e := CreateTagEndpoint()
	reqBody, err := encodeJSON(e.op, createTagBody{Name: name})
	if err != nil {
		return nil, err
	}
	var tag Tag
	if err := c.doJSON(ctx, e, reqBody, "", &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetUserProfile fetches the preferences of the token's user.
func (c *Client) GetUserProfile(ctx context.Context) (*UserProfile, error) {
	var profile UserProfile
	if err := c.doJSON(ctx, GetUserProfileEndpoint(), nil, "", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) ListBookmarkAssets(ctx context.Context, bookmarkID int) (*BookmarkAssetList, error) {
	var list BookmarkAssetList
	if err := c.doJSON(ctx, ListBookmarkAssetsEndpoint(bookmarkID), nil, "", &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// RetrieveBookmarkAsset fetches the metadata of one asset.
func (c *Client) RetrieveBookmarkAsset(ctx context.Context, bookmarkID, assetID int) (*BookmarkAsset, error) {
	var asset BookmarkAsset
	if err := c.doJSON(ctx, RetrieveBookmarkAssetEndpoint(bookmarkID, assetID), nil, "", &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

// DownloadBookmarkAsset returns the asset's content exactly as served.
func (c *Client) DownloadBookmarkAsset(ctx context.Context, bookmarkID, assetID int) ([]byte, error) {
	e := DownloadBookmarkAssetEndpoint(bookmarkID, assetID)
	resp, err := c.do(ctx, e, nil, "")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newError(KindTransport, e.op, fmt.Errorf("failed to read response body: %w", err))
	}
	return data, nil
}

// UploadBookmarkAsset attaches data to a bookmark as a file named filename.
func (c *Client) UploadBookmarkAsset(ctx context.Context, bookmarkID int, filename string, data []byte) (*BookmarkAsset, error) {
	e := UploadBookmarkAssetEndpoint(bookmarkID)
	reqBody, contentType, err := encodeMultipart(e.op, filename, data)
	if err != nil {
		return nil, err
	}
	var asset BookmarkAsset
	if err := c.doJSON(ctx, e, reqBody, contentType, &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

// DeleteBookmarkAsset deletes an asset, returning true on 204 No Content.
func (c *Client) DeleteBookmarkAsset(ctx context.Context, bookmarkID, assetID int) (bool, error) {
	return c.doNoContent(ctx, DeleteBookmarkAssetEndpoint(bookmarkID, assetID))
}
