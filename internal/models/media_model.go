package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Media types stored in the media table. A record's type is fixed at creation.
const (
	MediaTypeImage    = "image"
	MediaTypeVideo    = "video"
	MediaTypeAudio    = "audio"
	MediaTypeDocument = "document"
)

// MediaRecord is one row of the media table: a stored file plus its display
// metadata. FileURL points at the object in storage and is set once at
// creation. Tags are ordered; the first tag is treated as the display category.
type MediaRecord struct {
	ID           string         `gorm:"primaryKey;size:36" json:"id"`
	Title        string         `gorm:"size:255" json:"title"`
	Description  string         `gorm:"type:text" json:"description,omitempty"`
	MediaType    string         `gorm:"size:20;index" json:"media_type"`
	FileURL      string         `gorm:"size:500" json:"file_url"`
	ThumbnailURL string         `gorm:"size:500" json:"thumbnail_url,omitempty"`
	Tags         datatypes.JSON `json:"tags,omitempty"`
	Duration     *int           `json:"duration,omitempty"`
	FileSize     int64          `json:"file_size,omitempty"`
	Featured     bool           `gorm:"default:false" json:"featured"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
}

func (m *MediaRecord) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

// TagList decodes the stored tags column. A missing or malformed column
// yields an empty list.
func (m *MediaRecord) TagList() []string {
	if len(m.Tags) == 0 {
		return nil
	}
	var tags []string
	if err := json.Unmarshal(m.Tags, &tags); err != nil {
		return nil
	}
	return tags
}

// Category returns the first tag, or a per-type fallback label when the
// record carries no tags.
func (m *MediaRecord) Category() string {
	if tags := m.TagList(); len(tags) > 0 && tags[0] != "" {
		return tags[0]
	}
	switch m.MediaType {
	case MediaTypeImage:
		return "Photo"
	case MediaTypeVideo:
		return "Vidéo"
	case MediaTypeAudio:
		return "Audio"
	default:
		return "Autre"
	}
}

// EncodeTags marshals an ordered tag list into the JSON column.
func EncodeTags(tags []string) datatypes.JSON {
	if len(tags) == 0 {
		return nil
	}
	raw, _ := json.Marshal(tags)
	return raw
}
