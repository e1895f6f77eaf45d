package linkding

import (
	"encoding/json"
	"fmt"
	"slices"
)

// UserProfile holds the preferences of the user owning the API token.
type UserProfile struct {
	Theme                 Theme             `json:"theme"`
	BookmarkDateDisplay   DateDisplay       `json:"bookmark_date_display"`
	BookmarkLinkTarget    LinkTarget        `json:"bookmark_link_target"`
	WebArchiveIntegration Toggle            `json:"web_archive_integration"`
	TagSearch             TagSearch         `json:"tag_search"`
	EnableSharing         bool              `json:"enable_sharing"`
	EnablePublicSharing   bool              `json:"enable_public_sharing"`
	EnableFavicons        bool              `json:"enable_favicons"`
	DisplayURL            bool              `json:"display_url"`
	PermanentNotes        bool              `json:"permanent_notes"`
	SearchPreferences     SearchPreferences `json:"search_preferences"`
}

// SearchPreferences are the default search filters. Missing keys fall back
// to title ascending, not shared, not unread.
type SearchPreferences struct {
	Sort   SortOrder `json:"sort"`
	Shared bool      `json:"shared"`
	Unread bool      `json:"unread"`
}

func (p *SearchPreferences) UnmarshalJSON(data []byte) error {
	type plain SearchPreferences
	v := plain{Sort: SortTitleAsc}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = SearchPreferences(v)
	return nil
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

func (t *Theme) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, t, ThemeLight, ThemeDark, ThemeAuto)
}

type DateDisplay string

const (
	DateDisplayRelative DateDisplay = "relative"
	DateDisplayAbsolute DateDisplay = "absolute"
	DateDisplayHidden   DateDisplay = "hidden"
)

func (d *DateDisplay) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, d, DateDisplayRelative, DateDisplayAbsolute, DateDisplayHidden)
}

// LinkTarget is where bookmark links open. The wire tokens are the HTML
// target attribute values.
type LinkTarget string

const (
	LinkTargetSameWindow LinkTarget = "_self"
	LinkTargetNewWindow  LinkTarget = "_blank"
)

func (l *LinkTarget) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, l, LinkTargetSameWindow, LinkTargetNewWindow)
}

type TagSearch string

const (
	TagSearchStrict TagSearch = "strict"
	TagSearchLax    TagSearch = "lax"
)

func (t *TagSearch) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, t, TagSearchStrict, TagSearchLax)
}

type SortOrder string

const (
	SortTitleAsc  SortOrder = "title_asc"
	SortTitleDesc SortOrder = "title_desc"
	SortAddedAsc  SortOrder = "added_asc"
	SortAddedDesc SortOrder = "added_desc"
)

func (s *SortOrder) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, s, SortTitleAsc, SortTitleDesc, SortAddedAsc, SortAddedDesc)
}

// Toggle is a boolean sent as "enabled" or "disabled".
type Toggle bool

func (t Toggle) MarshalJSON() ([]byte, error) {
	if t {
		return []byte(`"enabled"`), nil
	}
	return []byte(`"disabled"`), nil
}

func (t *Toggle) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "enabled":
		*t = true
	case "disabled":
		*t = false
	default:
		return fmt.Errorf("invalid toggle value %q", s)
	}
	return nil
}

// unmarshalEnum decodes a JSON string into dst, rejecting any token not in
// allowed.
func unmarshalEnum[T ~string](data []byte, dst *T, allowed ...T) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if !slices.Contains(allowed, T(s)) {
		return fmt.Errorf("invalid %T value %q", *dst, s)
	}
	*dst = T(s)
	return nil
}
