package catalog

import (
	"github.com/ekralade/ministry-api/internal/database"
	"github.com/ekralade/ministry-api/internal/models"
	"github.com/ekralade/ministry-api/internal/response"
	"github.com/gofiber/fiber/v2"
)

func mediaTypeForKind(kind string) string {
	switch kind {
	case "photos":
		return models.MediaTypeImage
	case "videos":
		return models.MediaTypeVideo
	case "audio":
		return models.MediaTypeAudio
	default:
		return ""
	}
}

// ListCatalogHandler serves the public listing for one media kind. The whole
// merged list and its category set come back in one response; category
// filtering is applied over the same merged list, never a second query.
func ListCatalogHandler(c *fiber.Ctx) error {
	mediaType := mediaTypeForKind(c.Params("kind"))
	if mediaType == "" {
		return response.NotFound(c, "Catalog")
	}

	items, err := Load(mediaType)
	if err != nil {
		return response.InternalError(c, "Failed to fetch media")
	}

	category := c.Query("category", AllCategory)
	filtered := Filter(items, category)

	return response.Success(c, fiber.Map{
		"items":      filtered,
		"categories": Categories(items),
		"category":   category,
		"total":      len(filtered),
	}, "Catalog retrieved successfully")
}

// Load fetches the dynamic records for a media type (newest first) and merges
// them with the editorial fallback.
func Load(mediaType string) ([]Item, error) {
	var records []models.MediaRecord
	err := database.DB.
		Where("media_type = ?", mediaType).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	dynamic := make([]Item, 0, len(records))
	for _, r := range records {
		// A record with no stored object is not browsable yet.
		if r.FileURL == "" {
			continue
		}
		dynamic = append(dynamic, FromRecord(r))
	}

	return Merge(mediaType, dynamic), nil
}
