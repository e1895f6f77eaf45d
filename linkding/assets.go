package linkding

import "time"

type AssetType string

const (
	AssetTypeUpload   AssetType = "upload"
	AssetTypeSnapshot AssetType = "snapshot"
)

func (t *AssetType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, t, AssetTypeUpload, AssetTypeSnapshot)
}

type AssetStatus string

const (
	AssetStatusPending  AssetStatus = "pending"
	AssetStatusComplete AssetStatus = "complete"
	AssetStatusFailure  AssetStatus = "failure"
)

func (s *AssetStatus) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, s, AssetStatusPending, AssetStatusComplete, AssetStatusFailure)
}

// BookmarkAsset is a file attached to a bookmark: an HTML snapshot taken by
// the server or a file uploaded by the user.
type BookmarkAsset struct {
	ID          int         `json:"id"`
	Bookmark    int         `json:"bookmark"`
	AssetType   AssetType   `json:"asset_type"`
	DateCreated time.Time   `json:"date_created"`
	ContentType string      `json:"content_type"`
	DisplayName string      `json:"display_name"`
	Status      AssetStatus `json:"status"`
}
