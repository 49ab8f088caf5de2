// Package convert registers audio records extracted from TikTok videos. The
// extraction itself is a placeholder: the record points at a stub URL until an
// ffmpeg-backed pipeline replaces it.
package convert

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ekralade/ministry-api/internal/database"
	"github.com/ekralade/ministry-api/internal/models"
	"github.com/ekralade/ministry-api/internal/response"
	"github.com/gofiber/fiber/v2"
	"github.com/microcosm-cc/bluemonday"
)

var (
	videoIDPattern = regexp.MustCompile(`video/(\d+)`)
	policy         = bluemonday.UGCPolicy()
)

type tiktokRequest struct {
	TikTokURL   string `json:"tiktok_url"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// extractVideoID pulls the numeric id out of a TikTok video URL. Unmatched
// URLs still convert, under an "unknown" id.
func extractVideoID(url string) string {
	if m := videoIDPattern.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	return "unknown"
}

// TikTokToAudioHandler registers a TikTok video as an audio record.
func TikTokToAudioHandler(c *fiber.Ctx) error {
	var req tiktokRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body", nil)
	}

	if strings.TrimSpace(req.TikTokURL) == "" {
		return response.ValidationError(c, map[string]string{
			"tiktok_url": "tiktok_url is required",
		})
	}

	videoID := extractVideoID(req.TikTokURL)

	// TODO: run the actual audio extraction instead of storing a placeholder.
	audioURL := fmt.Sprintf("https://placeholder-audio-url.com/%s.mp3", videoID)

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = "Audio TikTok " + videoID
	}
	description := policy.Sanitize(req.Description)
	if description == "" {
		description = "Audio extrait de vidéo TikTok"
	}

	record := models.MediaRecord{
		Title:       policy.Sanitize(title),
		Description: description,
		MediaType:   models.MediaTypeAudio,
		FileURL:     audioURL,
		Tags:        models.EncodeTags([]string{"tiktok", "conversion"}),
	}

	if err := database.DB.Create(&record).Error; err != nil {
		return response.InternalError(c, "Failed to save converted audio")
	}

	return response.Created(c, fiber.Map{
		"media_id":  record.ID,
		"audio_url": audioURL,
	}, "Audio ajouté avec succès")
}
