package media

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ekralade/ministry-api/internal/database"
	"github.com/ekralade/ministry-api/internal/models"
	"github.com/ekralade/ministry-api/internal/response"
	"github.com/ekralade/ministry-api/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.UGCPolicy()

func sanitizeInput(input string) string {
	return policy.Sanitize(input)
}

// Thematic groups an operator can file an upload under. Fixed sets; the
// chosen group becomes the record's first tag and therefore its category.
var (
	AudioGroups = []string{
		"Prédications",
		"Témoignages",
		"Formations",
		"Prières",
		"Enseignements",
		"Méditations",
		"Séminaires BARA",
	}
	VideoGroups = []string{
		"Prédications",
		"Témoignages",
		"Séminaires",
		"Formations",
		"Événements",
		"Interviews",
		"Conférences",
	}
)

func isValidGroup(group string, groups []string) bool {
	for _, g := range groups {
		if g == group {
			return true
		}
	}
	return false
}

// Per-kind upload limits, following the original site's expectations.
func maxSizeFor(mimePrefix string) int64 {
	switch mimePrefix {
	case "video/":
		return 100 * 1024 * 1024
	case "audio/":
		return 50 * 1024 * 1024
	default:
		return 10 * 1024 * 1024
	}
}

// UploadPhotoHandler ingests an image: the thumbnail URL mirrors the file URL
// and the only tag is the operator marker.
func UploadPhotoHandler(c *fiber.Ctx) error {
	return ingest(c, storage.KindPhotos, models.MediaTypeImage, "image/", nil)
}

func UploadVideoHandler(c *fiber.Ctx) error {
	return ingest(c, storage.KindVideos, models.MediaTypeVideo, "video/", VideoGroups)
}

func UploadAudioHandler(c *fiber.Ctx) error {
	return ingest(c, storage.KindAudio, models.MediaTypeAudio, "audio/", AudioGroups)
}

// ingest runs the upload-then-register sequence: validate everything locally,
// push the binary to object storage, then insert the metadata row. Validation
// failures must reject before any storage or database call.
func ingest(c *fiber.Ctx, kind, mediaType, mimePrefix string, groups []string) error {
	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return response.ValidationError(c, map[string]string{
			"title": "title is required",
		})
	}

	group := c.FormValue("group", "")
	if groups != nil {
		if group == "" {
			return response.ValidationError(c, map[string]string{
				"group": "group is required",
			})
		}
		if !isValidGroup(group, groups) {
			return response.BadRequest(c, "Unknown group", map[string]interface{}{
				"group":   group,
				"allowed": groups,
			})
		}
	}

	file, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "File is required", nil)
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, mimePrefix) {
		return response.BadRequest(c, "Invalid file type", map[string]string{
			"expected": mimePrefix + "*",
			"got":      contentType,
		})
	}

	maxSize := maxSizeFor(mimePrefix)
	if file.Size > maxSize {
		return response.BadRequest(c, "File too large", map[string]interface{}{
			"max_size_mb":  maxSize / (1024 * 1024),
			"file_size_mb": file.Size / (1024 * 1024),
		})
	}

	url, err := storage.Upload(kind, file)
	if err != nil {
		return response.InternalError(c, "Failed to upload file: "+err.Error())
	}

	record := models.MediaRecord{
		Title:       title,
		Description: sanitizeInput(c.FormValue("description", "")),
		MediaType:   mediaType,
		FileURL:     url,
		FileSize:    file.Size,
	}

	switch mediaType {
	case models.MediaTypeImage:
		record.ThumbnailURL = url
		record.Tags = models.EncodeTags([]string{"Admin"})
	case models.MediaTypeAudio:
		// Placeholder estimate from byte size; real duration would need a
		// container probe at ingestion time.
		estimated := int(math.Round(float64(file.Size) / 16000))
		record.Duration = &estimated
		record.Tags = models.EncodeTags([]string{group, "Admin"})
	default:
		record.Tags = models.EncodeTags([]string{group, "Admin"})
	}

	if err := database.DB.Create(&record).Error; err != nil {
		// The object was already stored; reclaim it so a failed insert does
		// not leave an orphan behind.
		_ = storage.Delete(kind, url)
		return response.InternalError(c, "Failed to save media metadata")
	}

	return response.Created(c, record, "Media uploaded successfully")
}

// ListMediaHandler returns records of one media type, newest first.
func ListMediaHandler(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	mediaType := c.Query("type", "")

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	var records []models.MediaRecord
	var total int64

	query := database.DB.Model(&models.MediaRecord{})
	if mediaType != "" {
		query = query.Where("media_type = ?", mediaType)
	}

	query.Count(&total)
	query.Offset(offset).
		Limit(limit).
		Order("created_at DESC").
		Find(&records)

	meta := response.CalculateMeta(page, limit, total)
	return response.SuccessWithMeta(c, records, meta, "Media retrieved successfully")
}

func GetMediaHandler(c *fiber.Ctx) error {
	id := c.Params("id")

	var record models.MediaRecord
	if err := database.DB.First(&record, "id = ?", id).Error; err != nil {
		return response.NotFound(c, "Media")
	}

	return response.Success(c, record, "Media retrieved successfully")
}

// DeleteMediaHandler removes the metadata row only. The storage object is
// left in place, so an already-shared URL keeps resolving.
func DeleteMediaHandler(c *fiber.Ctx) error {
	id := c.Params("id")

	var record models.MediaRecord
	if err := database.DB.First(&record, "id = ?", id).Error; err != nil {
		return response.NotFound(c, "Media")
	}

	if err := database.DB.Delete(&record).Error; err != nil {
		return response.InternalError(c, "Failed to delete media")
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// ListGroupsHandler exposes the fixed group enumerations to the admin forms.
func ListGroupsHandler(c *fiber.Ctx) error {
	return response.Success(c, fiber.Map{
		"audio": AudioGroups,
		"video": VideoGroups,
	}, "Groups retrieved successfully")
}

func GetMediaStatsHandler(c *fiber.Ctx) error {
	var stats struct {
		TotalRecords  int64            `json:"total_records"`
		TotalBytes    int64            `json:"total_bytes"`
		ByType        map[string]int64 `json:"by_type"`
		RecentUploads int64            `json:"recent_uploads_24h"`
		StorageMode   string           `json:"storage_mode"`
	}

	database.DB.Model(&models.MediaRecord{}).Count(&stats.TotalRecords)
	database.DB.Model(&models.MediaRecord{}).
		Select("COALESCE(SUM(file_size), 0)").
		Scan(&stats.TotalBytes)

	stats.ByType = make(map[string]int64)
	rows, err := database.DB.Model(&models.MediaRecord{}).
		Select("media_type, COUNT(*) as count").
		Group("media_type").Rows()
	if err == nil {
		defer rows.Close()
		for rows.Next() {
			var mediaType string
			var count int64
			rows.Scan(&mediaType, &count)
			stats.ByType[mediaType] = count
		}
	}

	database.DB.Model(&models.MediaRecord{}).
		Where("created_at > ?", time.Now().Add(-24*time.Hour)).
		Count(&stats.RecentUploads)

	stats.StorageMode = storage.StorageMode()

	return response.Success(c, stats, "Media statistics retrieved successfully")
}
