package convert_test

import (
	"testing"

	"github.com/ekralade/ministry-api/internal/database"
	"github.com/ekralade/ministry-api/internal/models"
	"github.com/ekralade/ministry-api/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestTikTokConversionCreatesAudioRecord(t *testing.T) {
	app := testutils.SetupTestApp(t)
	token := testutils.GetAdminToken(t)

	resp, err := testutils.MakeRequest(app, "POST", "/convert/tiktok", map[string]string{
		"tiktok_url": "https://www.tiktok.com/@abelfabriceekra/video/7486104899072150790",
	}, token)
	assert.NoError(t, err)
	assert.Equal(t, 201, resp.Code)

	var record models.MediaRecord
	assert.NoError(t, database.DB.First(&record).Error)
	assert.Equal(t, models.MediaTypeAudio, record.MediaType)
	assert.Equal(t, "Audio TikTok 7486104899072150790", record.Title)
	assert.Equal(t, "Audio extrait de vidéo TikTok", record.Description)
	assert.Equal(t, []string{"tiktok", "conversion"}, record.TagList())
	assert.Contains(t, record.FileURL, "7486104899072150790.mp3")
}

func TestTikTokConversionKeepsProvidedMetadata(t *testing.T) {
	app := testutils.SetupTestApp(t)
	token := testutils.GetAdminToken(t)

	resp, err := testutils.MakeRequest(app, "POST", "/convert/tiktok", map[string]string{
		"tiktok_url":  "https://www.tiktok.com/@abelfabriceekra/video/123",
		"title":       "La Foi au Quotidien",
		"description": "Message inspirant",
	}, token)
	assert.NoError(t, err)
	assert.Equal(t, 201, resp.Code)

	var record models.MediaRecord
	assert.NoError(t, database.DB.First(&record).Error)
	assert.Equal(t, "La Foi au Quotidien", record.Title)
	assert.Equal(t, "Message inspirant", record.Description)
}

func TestTikTokConversionUnmatchedURL(t *testing.T) {
	app := testutils.SetupTestApp(t)
	token := testutils.GetAdminToken(t)

	resp, err := testutils.MakeRequest(app, "POST", "/convert/tiktok", map[string]string{
		"tiktok_url": "https://www.tiktok.com/@abelfabriceekra",
	}, token)
	assert.NoError(t, err)
	assert.Equal(t, 201, resp.Code)

	var record models.MediaRecord
	assert.NoError(t, database.DB.First(&record).Error)
	assert.Equal(t, "Audio TikTok unknown", record.Title)
	assert.Contains(t, record.FileURL, "unknown.mp3")
}

func TestTikTokConversionRequiresURL(t *testing.T) {
	app := testutils.SetupTestApp(t)
	token := testutils.GetAdminToken(t)

	resp, err := testutils.MakeRequest(app, "POST", "/convert/tiktok", map[string]string{}, token)
	assert.NoError(t, err)
	assert.Equal(t, 422, resp.Code)
	testutils.AssertError(t, resp, "VALIDATION_ERROR")
}

func TestTikTokConversionRequiresAuth(t *testing.T) {
	app := testutils.SetupTestApp(t)

	resp, err := testutils.MakeRequest(app, "POST", "/convert/tiktok", map[string]string{
		"tiktok_url": "https://www.tiktok.com/@abelfabriceekra/video/123",
	}, "")
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.Code)
}
