// Package catalog builds the browsable media listings: dynamic records from
// the media table merged with a fixed editorial fallback set, grouped by
// category and filtered client-side style (one fetch, pure in-memory filter).
package catalog

import (
	"time"

	"github.com/ekralade/ministry-api/internal/models"
)

// AllCategory is the pseudo-category matching every item.
const AllCategory = "Tous"

type Source string

const (
	SourceStatic  Source = "static"
	SourceDynamic Source = "dynamic"
)

// Item is the normalized listing shape. Static editorial entries and dynamic
// media records both collapse into it before filtering or rendering.
type Item struct {
	ID           string    `json:"id,omitempty"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	MediaType    string    `json:"media_type"`
	FileURL      string    `json:"file_url,omitempty"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	Category     string    `json:"category"`
	Duration     *int      `json:"duration,omitempty"`
	Date         time.Time `json:"date"`
	ExternalURL  string    `json:"external_url,omitempty"`
	Source       Source    `json:"source"`
}

// FromRecord normalizes a stored media record into a listing item.
func FromRecord(r models.MediaRecord) Item {
	return Item{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		MediaType:    r.MediaType,
		FileURL:      r.FileURL,
		ThumbnailURL: r.ThumbnailURL,
		Category:     r.Category(),
		Duration:     r.Duration,
		Date:         r.CreatedAt,
		Source:       SourceDynamic,
	}
}

// Merge combines dynamic items with the editorial fallback for a media type.
// Photos always show the editorial set first with uploads appended; audio and
// video listings fall back to the editorial set only when no uploads exist.
func Merge(mediaType string, dynamic []Item) []Item {
	switch mediaType {
	case models.MediaTypeImage:
		merged := make([]Item, 0, len(photoFallback)+len(dynamic))
		merged = append(merged, photoFallback...)
		merged = append(merged, dynamic...)
		return merged
	case models.MediaTypeVideo:
		if len(dynamic) > 0 {
			return dynamic
		}
		return videoFallback
	case models.MediaTypeAudio:
		if len(dynamic) > 0 {
			return dynamic
		}
		return audioFallback
	default:
		return dynamic
	}
}

// Categories derives the filter bar: AllCategory first, then each distinct
// category in order of first appearance.
func Categories(items []Item) []string {
	categories := []string{AllCategory}
	seen := map[string]bool{}
	for _, item := range items {
		if item.Category == "" || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		categories = append(categories, item.Category)
	}
	return categories
}

// Filter returns the subset of items in the given category. AllCategory (or
// an empty category) is the identity. The predicate is pure: filtering never
// touches the database.
func Filter(items []Item, category string) []Item {
	if category == "" || category == AllCategory {
		return items
	}
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
