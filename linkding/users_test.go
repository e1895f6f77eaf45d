package linkding

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUserProfile(t *testing.T) {
	data := `{
		"theme": "auto",
		"bookmark_date_display": "relative",
		"bookmark_link_target": "_blank",
		"web_archive_integration": "disabled",
		"tag_search": "strict",
		"enable_sharing": false,
		"enable_public_sharing": false,
		"enable_favicons": false,
		"display_url": false,
		"permanent_notes": false,
		"search_preferences": {"sort": "title_asc", "shared": true, "unread": true}
	}`

	var profile UserProfile
	require.NoError(t, json.Unmarshal([]byte(data), &profile))
	assert.Equal(t, ThemeAuto, profile.Theme)
	assert.Equal(t, DateDisplayRelative, profile.BookmarkDateDisplay)
	assert.Equal(t, LinkTargetNewWindow, profile.BookmarkLinkTarget)
	assert.False(t, bool(profile.WebArchiveIntegration))
	assert.Equal(t, TagSearchStrict, profile.TagSearch)
	assert.False(t, profile.EnableSharing)
	assert.Equal(t, SortTitleAsc, profile.SearchPreferences.Sort)
	assert.True(t, profile.SearchPreferences.Shared)
	assert.True(t, profile.SearchPreferences.Unread)
}

func TestDecodeUserProfileWithoutSearchPreferences(t *testing.T) {
	data := `{
		"theme": "light",
		"bookmark_date_display": "hidden",
		"bookmark_link_target": "_self",
		"web_archive_integration": "enabled",
		"tag_search": "lax",
		"enable_sharing": true,
		"enable_public_sharing": true,
		"enable_favicons": true,
		"display_url": true,
		"permanent_notes": true,
		"search_preferences": {}
	}`

	var profile UserProfile
	require.NoError(t, json.Unmarshal([]byte(data), &profile))
	assert.Equal(t, LinkTargetSameWindow, profile.BookmarkLinkTarget)
	assert.True(t, bool(profile.WebArchiveIntegration))
	assert.Equal(t, SortTitleAsc, profile.SearchPreferences.Sort)
	assert.False(t, profile.SearchPreferences.Shared)
	assert.False(t, profile.SearchPreferences.Unread)
}

func TestUnknownEnumTokensFail(t *testing.T) {
	tests := []struct {
		name string
		dst  any
		data string
	}{
		{"theme", new(Theme), `"solarized"`},
		{"date display", new(DateDisplay), `"sometimes"`},
		{"link target", new(LinkTarget), `"_parent"`},
		{"tag search", new(TagSearch), `"fuzzy"`},
		{"sort", new(SortOrder), `"random"`},
		{"toggle", new(Toggle), `"maybe"`},
		{"asset type", new(AssetType), `"import"`},
		{"asset status", new(AssetStatus), `"queued"`},
		{"not a string", new(Theme), `3`},
		{"empty token", new(AssetStatus), `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, json.Unmarshal([]byte(tt.data), tt.dst))
		})
	}
}

func TestEnumsEncodeToWireTokens(t *testing.T) {
	data, err := json.Marshal(struct {
		Target  LinkTarget `json:"target"`
		Archive Toggle     `json:"archive"`
		Sort    SortOrder  `json:"sort"`
	}{LinkTargetNewWindow, true, SortAddedDesc})
	require.NoError(t, err)
	assert.JSONEq(t, `{"target": "_blank", "archive": "enabled", "sort": "added_desc"}`, string(data))

	data, err = json.Marshal(Toggle(false))
	require.NoError(t, err)
	assert.Equal(t, `"disabled"`, string(data))
}
