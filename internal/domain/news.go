package domain

import "strings"

// NewsType is the closed set of news item kinds.
type NewsType string

const (
	NewsStatus NewsType = "status"
	NewsVisual NewsType = "visual"
	NewsVideo  NewsType = "video"
	NewsLink   NewsType = "link"
)

func (t NewsType) Valid() bool {
	switch t {
	case NewsStatus, NewsVisual, NewsVideo, NewsLink:
		return true
	}
	return false
}

// NewsItem is a single entry of the news feed as stored in the static data file.
type NewsItem struct {
	ID           int              `json:"_id" validate:"required"`
	Type         NewsType         `json:"type" validate:"required,oneof=status visual video link"`
	Happened     string           `json:"happened" validate:"required"`
	Description  []string         `json:"description"`
	LinkText     string           `json:"link_text,omitempty"`
	Link         string           `json:"link,omitempty" validate:"omitempty,url"`
	PictureLarge string           `json:"picture_large,omitempty"`
	PictureFull  string           `json:"picture_full,omitempty"`
	PictureAlt   string           `json:"picture_alt,omitempty"`
	Video        string           `json:"video,omitempty"`
	SubPosts     []SubPost        `json:"post_sub,omitempty" validate:"dive"`
	Structured   []StructuredData `json:"structuredData,omitempty" validate:"dive"`
}

func (n NewsItem) HappenedAt() string {
	return n.Happened
}

// DefaultPictureAlt is used for pictures of items without any text.
const DefaultPictureAlt = "News picture"

// AltText falls back to the first non-blank paragraph when no alt text was set.
func (n NewsItem) AltText() string {
	if strings.TrimSpace(n.PictureAlt) != "" {
		return n.PictureAlt
	}
	for _, p := range n.Description {
		if strings.TrimSpace(p) != "" {
			return p
		}
	}
	return DefaultPictureAlt
}

// SubPost is a linked picture attached to a news item.
type SubPost struct {
	ID           int      `json:"_id" validate:"required"`
	Type         NewsType `json:"type" validate:"required,oneof=status visual video link"`
	LinkText     string   `json:"link_text" validate:"required"`
	Link         string   `json:"link" validate:"required,url"`
	PictureLarge string   `json:"picture_large" validate:"required"`
	PictureFull  string   `json:"picture_full,omitempty"`
	PictureAlt   string   `json:"picture_alt,omitempty"`
}

// StructuredData is the schema.org metadata attached to a news item
// and emitted as JSON-LD on the news page.
type StructuredData struct {
	Context     string `json:"@context" validate:"required"`
	Type        string `json:"@type" validate:"required,oneof=MusicEvent MusicRecording MusicAlbum VideoObject ImageObject NewsArticle"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty" validate:"omitempty,url"`
	Image       string `json:"image,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	UploadDate  string `json:"uploadDate,omitempty"`
	Location    string `json:"location,omitempty"`
}
