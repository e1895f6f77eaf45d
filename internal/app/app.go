package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"linkdingo/internal/config"
	"linkdingo/internal/crypto"
	"linkdingo/internal/logger"
	"linkdingo/internal/snapshot"
	"linkdingo/linkding"
)

const defaultPageSize = 100

// ErrUsage is returned for unknown commands or wrong arguments.
var ErrUsage = errors.New("usage error")

// App holds the application's core dependencies and configuration.
type App struct {
	Config *config.Config
	Client linkding.ClientInterface
	Logger *logger.Logger
	Out    io.Writer
}

// Option is a functional option for configuring the App.
type Option func(*App)

// NewApp creates a new App instance with the given options.
func NewApp(opts ...Option) *App {
	app := &App{
		Logger: logger.New(logger.INFO),
		Out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// WithConfig sets the application configuration.
func WithConfig(cfg *config.Config) Option {
	return func(a *App) {
		a.Config = cfg
	}
}

// WithLinkdingClient sets the linkding API client.
func WithLinkdingClient(client linkding.ClientInterface) Option {
	return func(a *App) {
		a.Client = client
	}
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithOutput sets where command results are printed.
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.Out = w
	}
}

// ResolveToken returns the plaintext API token, decrypting
// linkding.encrypted_token when no plain token is configured.
func ResolveToken(cfg *config.Config) (string, error) {
	if cfg.Linkding.Token != "" {
		return cfg.Linkding.Token, nil
	}
	token, err := crypto.DecryptToken(cfg.Linkding.EncryptedToken, cfg.Linkding.TokenSecret)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt linkding token, re-run encrypt-token with the configured secret: %w", err)
	}
	return token, nil
}

// NewClient builds a linkding client from cfg. HTTP exchanges are logged
// when the logger runs at debug level.
func NewClient(cfg *config.Config, log *logger.Logger) (*linkding.Client, error) {
	token, err := ResolveToken(cfg)
	if err != nil {
		return nil, err
	}
	opts := []linkding.Option{
		linkding.WithHTTPClient(&http.Client{Timeout: cfg.HTTP.Timeout}),
	}
	if log != nil && log.Level() >= logger.DEBUG {
		opts = append(opts, linkding.WithLogger(log))
	}
	return linkding.NewClient(cfg.Linkding.Host, token, opts...)
}

// Run executes one command. args[0] is the command name.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", ErrUsage)
	}
	if a.Client == nil {
		return errors.New("linkding client is not configured")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "count":
		fs := flag.NewFlagSet("count", flag.ContinueOnError)
		archived := fs.Bool("archived", false, "count archived bookmarks")
		pageSize := fs.Int("page-size", defaultPageSize, "bookmarks per request")
		if err := fs.Parse(rest); err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		total, err := a.CountBookmarks(ctx, *archived, *pageSize)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(a.Out, "Total bookmarks: %d\n", total)
		return nil
	case "check":
		if len(rest) != 1 {
			return fmt.Errorf("%w: check <url>", ErrUsage)
		}
		return a.CheckURL(ctx, rest[0])
	case "profile":
		return a.PrintProfile(ctx)
	case "tags":
		return a.PrintTags(ctx)
	case "download":
		if len(rest) != 3 {
			return fmt.Errorf("%w: download <bookmark-id> <asset-id> <file>", ErrUsage)
		}
		ids, err := parseIDs(rest[:2])
		if err != nil {
			return err
		}
		return a.DownloadAsset(ctx, ids[0], ids[1], rest[2])
	case "upload":
		if len(rest) != 2 {
			return fmt.Errorf("%w: upload <bookmark-id> <file>", ErrUsage)
		}
		ids, err := parseIDs(rest[:1])
		if err != nil {
			return err
		}
		asset, err := a.UploadAsset(ctx, ids[0], rest[1])
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(a.Out, "Uploaded asset %d (%s, %s)\n", asset.ID, asset.DisplayName, asset.Status)
		return nil
	}
	return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
}

// CountBookmarks walks every page by offset and returns the number of
// bookmarks seen.
func (a *App) CountBookmarks(ctx context.Context, archived bool, pageSize int) (int, error) {
	if pageSize <= 0 {
		return 0, fmt.Errorf("%w: page size must be positive", ErrUsage)
	}
	list := a.Client.ListBookmarks
	if archived {
		list = a.Client.ListArchivedBookmarks
	}

	total, offset := 0, 0
	for {
		page, err := list(ctx, linkding.ListBookmarksArgs{Limit: linkding.Int(pageSize), Offset: linkding.Int(offset)})
		if err != nil {
			return 0, fmt.Errorf("failed to fetch bookmarks at offset %d: %w", offset, err)
		}
		total += len(page.Results)
		a.Logger.Debugf("fetched %d bookmarks at offset %d", len(page.Results), offset)
		if page.IsLastPage() || len(page.Results) == 0 {
			return total, nil
		}
		offset += pageSize
	}
}

// CheckURL prints whether rawURL is bookmarked and what the server scraped.
func (a *App) CheckURL(ctx context.Context, rawURL string) error {
	check, err := a.Client.CheckURL(ctx, rawURL)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", rawURL, err)
	}
	if check.Bookmark != nil {
		_, _ = fmt.Fprintf(a.Out, "Bookmarked as #%d: %s\n", check.Bookmark.ID, check.Bookmark.Title)
	} else {
		_, _ = fmt.Fprintln(a.Out, "Not bookmarked")
	}
	if check.Metadata.Title != nil {
		_, _ = fmt.Fprintf(a.Out, "Title: %s\n", *check.Metadata.Title)
	}
	if len(check.AutoTags) > 0 {
		_, _ = fmt.Fprintf(a.Out, "Auto tags: %v\n", check.AutoTags)
	}
	return nil
}

func (a *App) PrintProfile(ctx context.Context) error {
	profile, err := a.Client.GetUserProfile(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch user profile: %w", err)
	}
	_, _ = fmt.Fprintf(a.Out, "Theme: %s\nDate display: %s\nLink target: %s\nTag search: %s\nWeb archive: %t\nSort: %s\n",
		profile.Theme,
		profile.BookmarkDateDisplay,
		profile.BookmarkLinkTarget,
		profile.TagSearch,
		bool(profile.WebArchiveIntegration),
		profile.SearchPreferences.Sort,
	)
	return nil
}

// PrintTags prints every tag, one per line.
func (a *App) PrintTags(ctx context.Context) error {
	offset := 0
	for {
		page, err := a.Client.ListTags(ctx, linkding.ListTagsArgs{Limit: linkding.Int(defaultPageSize), Offset: linkding.Int(offset)})
		if err != nil {
			return fmt.Errorf("failed to fetch tags at offset %d: %w", offset, err)
		}
		for _, tag := range page.Results {
			_, _ = fmt.Fprintf(a.Out, "%d\t%s\n", tag.ID, tag.Name)
		}
		if page.IsLastPage() || len(page.Results) == 0 {
			return nil
		}
		offset += defaultPageSize
	}
}

// DownloadAsset saves an asset to path and reports what was saved.
func (a *App) DownloadAsset(ctx context.Context, bookmarkID, assetID int, path string) error {
	data, err := a.Client.DownloadBookmarkAsset(ctx, bookmarkID, assetID)
	if err != nil {
		return fmt.Errorf("could not download asset %d of bookmark %d: %w", assetID, bookmarkID, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("could not write asset file %s: %w", path, err)
	}

	info, err := snapshot.Inspect(data)
	if err != nil {
		a.Logger.Warnf("could not inspect downloaded asset: %v", err)
	}
	_, _ = fmt.Fprintf(a.Out, "Saved %d bytes (%s) to %s\n", len(data), info.MIME, path)
	if info.Title != "" {
		_, _ = fmt.Fprintf(a.Out, "Snapshot title: %s\n", info.Title)
	}
	return nil
}

// UploadAsset attaches the file at path to a bookmark.
func (a *App) UploadAsset(ctx context.Context, bookmarkID int, path string) (*linkding.BookmarkAsset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	asset, err := a.Client.UploadBookmarkAsset(ctx, bookmarkID, filepath.Base(path), data)
	if err != nil {
		return nil, fmt.Errorf("could not upload %s to bookmark %d: %w", path, bookmarkID, err)
	}
	return asset, nil
}

func parseIDs(args []string) ([]int, error) {
	ids := make([]int, len(args))
	for i, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("%w: invalid id %q", ErrUsage, arg)
		}
		ids[i] = id
	}
	return ids, nil
}
